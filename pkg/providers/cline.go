package providers

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// ClineProvider reads Cline skills from ~/.cline/skills. Skills are either
// cline.json manifests or markdown custom instructions.
type ClineProvider struct {
	detect *Detector
}

// NewClineProvider creates a Cline skills provider.
func NewClineProvider(detect *Detector) *ClineProvider {
	return &ClineProvider{detect: detect}
}

func (p *ClineProvider) Name() string {
	return "Cline Skills"
}

func (p *ClineProvider) SourceType() types.SourceType {
	return types.SourceTypeCline
}

func (p *ClineProvider) CanHandle(source types.SkillSource) bool {
	return source.Kind == types.SourceKindLocal && strings.Contains(source.Path, "cline")
}

func (p *ClineProvider) ListSkills(ctx context.Context, _ types.SourceConfig) ([]types.Skill, error) {
	root, ok := p.detect.ClineSkillsDir()
	if !ok {
		return nil, nil
	}
	return listSkillDirs(ctx, root, p.Name(), p.parseSkillDir)
}

func (p *ClineProvider) ReadSkill(_ context.Context, skill types.Skill) (string, error) {
	return readFirstExisting(skill, "custom-instructions.md", "README.md", "cline.json")
}

func (p *ClineProvider) Install(_ context.Context, source types.SkillSource, target string) (types.Skill, error) {
	return installLocal(source, target, "Cline", p.parseSkillDir)
}

func (p *ClineProvider) parseSkillDir(dir string) (*types.Skill, error) {
	if jsonPath := filepath.Join(dir, "cline.json"); fileExists(jsonPath) {
		m, err := decodeJSONManifest(jsonPath)
		if err != nil {
			return nil, err
		}
		skill := buildSkill(dir, m, types.SourceTypeCline, types.FormatClineSkill)
		return &skill, nil
	}

	if instructions := filepath.Join(dir, "custom-instructions.md"); fileExists(instructions) {
		content, err := os.ReadFile(instructions)
		if err != nil {
			return nil, err
		}
		skill := buildSkill(dir, manifest{"description": firstLine(string(content))},
			types.SourceTypeCline, types.FormatClineSkill)
		skill.Metadata.Tags = []string{"custom-instructions"}
		return &skill, nil
	}

	if fileExists(filepath.Join(dir, "README.md")) {
		skill := buildSkill(dir, manifest{"description": "Cline skill (markdown format)"},
			types.SourceTypeCline, types.FormatGenericMarkdown)
		return &skill, nil
	}

	return nil, nil
}
