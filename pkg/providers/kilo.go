package providers

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hongkongkiwi/alltheskills/pkg/skillerrors"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// KiloProvider reads Kilo Code skills from ~/.kilo/skills, defined by a
// kilo.yaml (or kilo.yml) YAML manifest with markdown instructions.
type KiloProvider struct {
	detect *Detector
}

// NewKiloProvider creates a Kilo Code skills provider.
func NewKiloProvider(detect *Detector) *KiloProvider {
	return &KiloProvider{detect: detect}
}

func (p *KiloProvider) Name() string {
	return "Kilo Code Skills"
}

func (p *KiloProvider) SourceType() types.SourceType {
	return types.SourceTypeKiloCode
}

func (p *KiloProvider) CanHandle(source types.SkillSource) bool {
	return source.Kind == types.SourceKindLocal && strings.Contains(source.Path, "kilo")
}

func (p *KiloProvider) ListSkills(ctx context.Context, _ types.SourceConfig) ([]types.Skill, error) {
	root, ok := p.detect.KiloSkillsDir()
	if !ok {
		return nil, nil
	}
	return listSkillDirs(ctx, root, p.Name(), p.parseSkillDir)
}

func (p *KiloProvider) ReadSkill(_ context.Context, skill types.Skill) (string, error) {
	return readFirstExisting(skill, "instructions.md", "README.md", "kilo.yaml", "kilo.yml")
}

func (p *KiloProvider) Install(_ context.Context, source types.SkillSource, target string) (types.Skill, error) {
	return installLocal(source, target, "Kilo Code", p.parseSkillDir)
}

func (p *KiloProvider) parseSkillDir(dir string) (*types.Skill, error) {
	for _, name := range []string{"kilo.yaml", "kilo.yml"} {
		yamlPath := filepath.Join(dir, name)
		if !fileExists(yamlPath) {
			continue
		}

		content, err := os.ReadFile(yamlPath)
		if err != nil {
			return nil, skillerrors.IO(err, "failed to read %s", yamlPath)
		}

		var m manifest
		if err := yaml.Unmarshal(content, &m); err != nil {
			return nil, skillerrors.Parse(err, "failed to parse %s", name)
		}

		skill := buildSkill(dir, m, types.SourceTypeKiloCode, types.FormatKiloSkill)
		if language := m.str("language"); language != "" {
			skill.Metadata.Tags = append(skill.Metadata.Tags, language)
		}
		return &skill, nil
	}

	if fileExists(filepath.Join(dir, "instructions.md")) {
		skill := buildSkill(dir, manifest{"description": "Kilo Code skill"},
			types.SourceTypeKiloCode, types.FormatKiloSkill)
		return &skill, nil
	}

	if fileExists(filepath.Join(dir, "README.md")) {
		skill := buildSkill(dir, manifest{"description": "Kilo Code skill (markdown format)"},
			types.SourceTypeKiloCode, types.FormatGenericMarkdown)
		return &skill, nil
	}

	return nil, nil
}
