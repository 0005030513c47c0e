package providers

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// OpenClawProvider reads OpenClaw skills from ~/.openclaw/skills, defined
// by a skill.json manifest.
type OpenClawProvider struct {
	detect *Detector
}

// NewOpenClawProvider creates an OpenClaw skills provider.
func NewOpenClawProvider(detect *Detector) *OpenClawProvider {
	return &OpenClawProvider{detect: detect}
}

func (p *OpenClawProvider) Name() string {
	return "OpenClaw Skills"
}

func (p *OpenClawProvider) SourceType() types.SourceType {
	return types.SourceTypeOpenClaw
}

func (p *OpenClawProvider) CanHandle(source types.SkillSource) bool {
	return source.Kind == types.SourceKindLocal && strings.Contains(source.Path, "openclaw")
}

func (p *OpenClawProvider) ListSkills(ctx context.Context, _ types.SourceConfig) ([]types.Skill, error) {
	root, ok := p.detect.OpenClawSkillsDir()
	if !ok {
		return nil, nil
	}
	return listSkillDirs(ctx, root, p.Name(), p.parseSkillDir)
}

func (p *OpenClawProvider) ReadSkill(_ context.Context, skill types.Skill) (string, error) {
	return readFirstExisting(skill, "README.md", "skill.json")
}

func (p *OpenClawProvider) Install(_ context.Context, source types.SkillSource, target string) (types.Skill, error) {
	return installLocal(source, target, "OpenClaw", p.parseSkillDir)
}

func (p *OpenClawProvider) parseSkillDir(dir string) (*types.Skill, error) {
	if jsonPath := filepath.Join(dir, "skill.json"); fileExists(jsonPath) {
		m, err := decodeJSONManifest(jsonPath)
		if err != nil {
			return nil, err
		}
		skill := buildSkill(dir, m, types.SourceTypeOpenClaw, types.FormatOpenClawSkill)
		return &skill, nil
	}

	if fileExists(filepath.Join(dir, "README.md")) {
		skill := buildSkill(dir, manifest{"description": "OpenClaw skill"},
			types.SourceTypeOpenClaw, types.FormatGenericMarkdown)
		return &skill, nil
	}

	return nil, nil
}
