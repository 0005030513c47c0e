package providers

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"

	"github.com/hongkongkiwi/alltheskills/pkg/skillerrors"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// manifest is a decoded structured manifest, regardless of dialect.
type manifest map[string]any

// decodeJSONManifest reads and decodes a JSON manifest file. A read failure
// on an existing file is an IO error; undecodable content is a Parse error.
func decodeJSONManifest(path string) (manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, skillerrors.IO(err, "failed to read %s", path)
	}

	var m manifest
	if err := json.Unmarshal(content, &m); err != nil {
		return nil, skillerrors.Parse(err, "failed to parse %s", filepath.Base(path))
	}
	return m, nil
}

// str returns the string value for key, or empty when absent or mistyped.
func (m manifest) str(key string) string {
	val, _ := m[key].(string)
	return val
}

// strList returns the string entries of an array value for key.
func (m manifest) strList(key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// metadata maps the common optional manifest fields into SkillMetadata,
// including the dependency list.
func (m manifest) metadata() types.SkillMetadata {
	return types.SkillMetadata{
		Author:       m.str("author"),
		Tags:         m.strList("tags"),
		Homepage:     m.str("homepage"),
		Repository:   m.str("repository"),
		License:      m.str("license"),
		Requirements: m.strList("requirements"),
		Dependencies: ParseDependencies(m["dependencies"]),
	}
}

// ParseDependencies normalizes a manifest's dependency list. Entries may be
// bare name strings or objects with name, version (or version_req), source,
// and optional fields. Duplicate names keep the first occurrence.
func ParseDependencies(raw any) []types.SkillDependency {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	var deps []types.SkillDependency
	seen := make(map[string]struct{})

	add := func(dep types.SkillDependency) {
		if dep.Name == "" {
			return
		}
		if _, dup := seen[dep.Name]; dup {
			return
		}
		seen[dep.Name] = struct{}{}
		deps = append(deps, dep)
	}

	for _, item := range items {
		switch entry := item.(type) {
		case string:
			add(types.SkillDependency{Name: entry})
		case map[string]any:
			m := manifest(entry)
			versionReq := m.str("version")
			if versionReq == "" {
				versionReq = m.str("version_req")
			}
			optional, _ := entry["optional"].(bool)
			add(types.SkillDependency{
				Name:       m.str("name"),
				VersionReq: versionReq,
				Source:     m.str("source"),
				Optional:   optional,
			})
		}
	}

	return deps
}

// parseFrontmatter extracts YAML frontmatter metadata and the markdown body
// from a SKILL.md-style file. Files without frontmatter yield an empty
// manifest and the full content as body.
func parseFrontmatter(content []byte) (manifest, string, error) {
	md := goldmark.New(goldmark.WithExtensions(meta.Meta))

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, "", skillerrors.Parse(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return manifest{}, string(content), nil
	}

	m := make(manifest, len(metaData))
	for key, val := range metaData {
		m[key] = normalizeYAML(val)
	}

	return m, extractBody(string(content)), nil
}

// normalizeYAML converts goldmark-meta's yaml.v2 container types into the
// same shapes encoding/json produces, so manifest helpers work on both.
func normalizeYAML(val any) any {
	switch v := val.(type) {
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			if s, ok := key.(string); ok {
				out[s] = normalizeYAML(item)
			}
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeYAML(item)
		}
		return out
	case int:
		return float64(v)
	default:
		return val
	}
}

// extractBody strips the leading YAML frontmatter block.
func extractBody(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\n")
		}
	}
	return content
}

// buildSkill assembles a Skill from a decoded manifest, falling back to the
// directory name when the manifest names nothing.
func buildSkill(dir string, m manifest, sourceType types.SourceType, format types.SkillFormat) types.Skill {
	name := nameOrDir(m.str("name"), dir)
	return types.Skill{
		ID:          types.SkillID(name),
		Name:        name,
		Description: m.str("description"),
		Version:     m.str("version"),
		Source:      types.LocalSource(dir),
		SourceType:  sourceType,
		Path:        dir,
		InstalledAt: time.Now().UTC(),
		Metadata:    m.metadata(),
		Format:      format,
	}
}

// ParseSkillDir inspects a directory with every known manifest dialect and
// returns the parsed skill. This is the platform-agnostic entry point used
// for validating skill directories that have not been claimed by a specific
// provider yet.
func ParseSkillDir(dir string) (*types.Skill, error) {
	jsonManifests := []string{
		"claude.json", "skill.json", "manifest.json", "cline.json",
		"codex.json", "roo.json", "cursor.json", "ai.config.json",
	}
	for _, name := range jsonManifests {
		path := filepath.Join(dir, name)
		if !fileExists(path) {
			continue
		}
		m, err := decodeJSONManifest(path)
		if err != nil {
			return nil, err
		}
		skill := buildSkill(dir, m, types.SourceTypeLocal, types.FormatGenericJSON)
		return &skill, nil
	}

	for _, name := range []string{"kilo.yaml", "kilo.yml"} {
		path := filepath.Join(dir, name)
		if !fileExists(path) {
			continue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, skillerrors.IO(err, "failed to read %s", path)
		}
		var m manifest
		if err := yaml.Unmarshal(content, &m); err != nil {
			return nil, skillerrors.Parse(err, "failed to parse %s", name)
		}
		skill := buildSkill(dir, m, types.SourceTypeLocal, types.FormatKiloSkill)
		return &skill, nil
	}

	for _, name := range []string{"SKILL.md", "skill.md"} {
		path := filepath.Join(dir, name)
		if !fileExists(path) {
			continue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, skillerrors.IO(err, "failed to read %s", path)
		}
		m, body, err := parseFrontmatter(content)
		if err != nil {
			return nil, err
		}
		skill := buildSkill(dir, m, types.SourceTypeLocal, types.FormatGenericMarkdown)
		if skill.Description == "" {
			skill.Description = firstLine(body)
		}
		return &skill, nil
	}

	if path := filepath.Join(dir, "README.md"); fileExists(path) {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, skillerrors.IO(err, "failed to read %s", path)
		}
		skill := buildSkill(dir, manifest{"description": firstLine(string(content))},
			types.SourceTypeLocal, types.FormatGenericMarkdown)
		return &skill, nil
	}

	return nil, skillerrors.New(skillerrors.KindUnsupportedFormat,
		"no recognized skill manifest in %s", dir)
}

// firstLine returns the first non-empty line of content, used as a
// description fallback for bare markdown skills.
func firstLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(strings.TrimLeft(line, "# "))
		if trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// nameOrDir returns name when set, else the directory's base name.
func nameOrDir(name, dir string) string {
	if name != "" {
		return name
	}
	return filepath.Base(dir)
}
