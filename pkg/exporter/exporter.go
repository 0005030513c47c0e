// Package exporter writes skill scaffolds and converts existing skills into
// the on-disk layout of another platform.
package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/hongkongkiwi/alltheskills/pkg/skillerrors"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// scaffoldData feeds the per-platform templates.
type scaffoldData struct {
	ID          string
	Name        string
	Description string
	Version     string
	Author      string
	Tags        []string
	Body        string
}

// initialVersion is the version stamped on freshly scaffolded skills.
const initialVersion = "0.1.0"

var templateFuncs = template.FuncMap{
	"json": func(v any) (string, error) {
		out, err := json.Marshal(v)
		return string(out), err
	},
}

// fileTemplates maps each platform to the files a skill of that platform is
// made of. Every platform gets its manifest plus a markdown body where the
// platform reads one.
var fileTemplates = map[types.SourceType]map[string]string{
	types.SourceTypeClaude: {
		"claude.json": manifestJSON,
		"SKILL.md":    skillMarkdown,
		"README.md":   readmeMarkdown,
	},
	types.SourceTypeCline: {
		"cline.json":             manifestJSON,
		"custom-instructions.md": skillBody,
		"README.md":              readmeMarkdown,
	},
	types.SourceTypeCursor: {
		"cursor.json":  manifestJSON,
		".cursorrules": skillBody,
	},
	types.SourceTypeRooCode: {
		"roo.json":  manifestJSON,
		"README.md": readmeMarkdown,
	},
	types.SourceTypeOpenClaw: {
		"skill.json": manifestJSON,
		"README.md":  readmeMarkdown,
	},
	types.SourceTypeMoltbot: {
		"manifest.json": manifestJSON,
		"SKILL.md":      skillMarkdown,
	},
	types.SourceTypeCodex: {
		"codex.json":      manifestJSON,
		"instructions.md": skillBody,
	},
	types.SourceTypeKiloCode: {
		"kilo.yaml":       kiloYAML,
		"instructions.md": skillBody,
	},
	types.SourceTypeVercel: {
		"skill.json": manifestJSON,
		"README.md":  readmeMarkdown,
	},
	types.SourceTypeCloudflare: {
		"wrangler.toml": wranglerTOML,
		"worker.js":     workerStub,
	},
	types.SourceTypeLocal: {
		"claude.json": manifestJSON,
		"README.md":   readmeMarkdown,
	},
}

const manifestJSON = `{
  "name": {{json .Name}},
  "description": {{json .Description}},
  "version": {{json .Version}},
  "author": {{json .Author}}{{if .Tags}},
  "tags": {{json .Tags}}{{end}}
}
`

const skillMarkdown = `---
name: {{.ID}}
description: {{.Description}}
version: {{.Version}}
---

# {{.Name}}

{{if .Body}}{{.Body}}{{else}}Describe what this skill does and when to use it.{{end}}
`

const skillBody = `# {{.Name}}

{{if .Body}}{{.Body}}{{else}}{{.Description}}{{end}}
`

const readmeMarkdown = `# {{.Name}}

{{.Description}}
`

const kiloYAML = `name: {{.Name}}
description: {{.Description}}
version: {{.Version}}
{{if .Tags}}tags:
{{range .Tags}}  - {{.}}
{{end}}{{end}}`

const wranglerTOML = `name = {{json .ID}}
description = {{json .Description}}
main = "worker.js"
compatibility_date = "2024-01-01"
`

const workerStub = `export default {
  async fetch(request, env, ctx) {
    return new Response("{{.Name}}");
  },
};
`

// Scaffold creates a new skill directory for the given platform under dir.
// The directory is named after the skill's identifier and must not already
// exist.
func Scaffold(dir, name, description string, sourceType types.SourceType) (string, error) {
	skill := types.Skill{
		ID:          types.SkillID(name),
		Name:        name,
		Description: description,
		Version:     initialVersion,
		SourceType:  sourceType,
	}
	target := filepath.Join(dir, skill.ID)
	if _, err := os.Stat(target); err == nil {
		return "", skillerrors.Install("skill directory already exists: %s", target)
	}
	if err := Export(skill, "", sourceType, target); err != nil {
		return "", err
	}
	return target, nil
}

// Export writes the skill in the target platform's layout into dir,
// creating it as needed. Content, when non-empty, becomes the markdown body
// of the exported skill.
func Export(skill types.Skill, content string, target types.SourceType, dir string) error {
	files, ok := fileTemplates[target]
	if !ok {
		return skillerrors.New(skillerrors.KindUnsupportedFormat,
			"no export layout for source type %q", target)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return skillerrors.IO(err, "cannot create skill directory %s", dir)
	}

	data := scaffoldData{
		ID:          skill.ID,
		Name:        skill.Name,
		Description: skill.Description,
		Version:     skill.Version,
		Author:      skill.Metadata.Author,
		Tags:        skill.Metadata.Tags,
		Body:        strings.TrimSpace(content),
	}
	if data.ID == "" {
		data.ID = types.SkillID(skill.Name)
	}
	if data.Version == "" {
		data.Version = initialVersion
	}

	for name, text := range files {
		tmpl, err := template.New(name).Funcs(templateFuncs).Parse(text)
		if err != nil {
			return errors.Wrapf(err, "invalid template for %s", name)
		}

		var buf strings.Builder
		if err := tmpl.Execute(&buf, data); err != nil {
			return errors.Wrapf(err, "failed to render %s", name)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(buf.String()), 0o644); err != nil {
			return skillerrors.IO(err, "cannot write %s", path)
		}
	}

	return nil
}

// SupportedTargets returns the source types Export can produce.
func SupportedTargets() []types.SourceType {
	targets := make([]types.SourceType, 0, len(fileTemplates))
	for sourceType := range fileTemplates {
		targets = append(targets, sourceType)
	}
	return targets
}
