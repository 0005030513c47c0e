package providers

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// RooProvider reads Roo Code skills from ~/.roo/skills, defined by a
// roo.json manifest or a .roomodes mode configuration.
type RooProvider struct {
	detect *Detector
}

// NewRooProvider creates a Roo Code skills provider.
func NewRooProvider(detect *Detector) *RooProvider {
	return &RooProvider{detect: detect}
}

func (p *RooProvider) Name() string {
	return "Roo Code Skills"
}

func (p *RooProvider) SourceType() types.SourceType {
	return types.SourceTypeRooCode
}

func (p *RooProvider) CanHandle(source types.SkillSource) bool {
	return source.Kind == types.SourceKindLocal && strings.Contains(source.Path, "roo")
}

func (p *RooProvider) ListSkills(ctx context.Context, _ types.SourceConfig) ([]types.Skill, error) {
	root, ok := p.detect.RooSkillsDir()
	if !ok {
		return nil, nil
	}
	return listSkillDirs(ctx, root, p.Name(), p.parseSkillDir)
}

func (p *RooProvider) ReadSkill(_ context.Context, skill types.Skill) (string, error) {
	return readFirstExisting(skill, "README.md", "roo.json", ".roomodes")
}

func (p *RooProvider) Install(_ context.Context, source types.SkillSource, target string) (types.Skill, error) {
	return installLocal(source, target, "Roo Code", p.parseSkillDir)
}

func (p *RooProvider) parseSkillDir(dir string) (*types.Skill, error) {
	if jsonPath := filepath.Join(dir, "roo.json"); fileExists(jsonPath) {
		m, err := decodeJSONManifest(jsonPath)
		if err != nil {
			return nil, err
		}
		skill := buildSkill(dir, m, types.SourceTypeRooCode, types.FormatRooSkill)
		return &skill, nil
	}

	// .roomodes is a JSON mode definition without a conventional name field.
	if modesPath := filepath.Join(dir, ".roomodes"); fileExists(modesPath) {
		m, err := decodeJSONManifest(modesPath)
		if err != nil {
			return nil, err
		}
		skill := buildSkill(dir, m, types.SourceTypeRooCode, types.FormatRooSkill)
		if skill.Description == "" {
			skill.Description = "Roo Code mode configuration"
		}
		return &skill, nil
	}

	if fileExists(filepath.Join(dir, "README.md")) {
		skill := buildSkill(dir, manifest{"description": "Roo Code skill"},
			types.SourceTypeRooCode, types.FormatGenericMarkdown)
		return &skill, nil
	}

	return nil, nil
}
