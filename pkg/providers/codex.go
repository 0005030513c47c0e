package providers

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// CodexProvider reads OpenAI Codex skills from ~/.codex/skills, defined by
// a codex.json manifest with optional instructions.md content.
type CodexProvider struct {
	detect *Detector
}

// NewCodexProvider creates an OpenAI Codex skills provider.
func NewCodexProvider(detect *Detector) *CodexProvider {
	return &CodexProvider{detect: detect}
}

func (p *CodexProvider) Name() string {
	return "OpenAI Codex Skills"
}

func (p *CodexProvider) SourceType() types.SourceType {
	return types.SourceTypeCodex
}

func (p *CodexProvider) CanHandle(source types.SkillSource) bool {
	return source.Kind == types.SourceKindLocal && strings.Contains(source.Path, "codex")
}

func (p *CodexProvider) ListSkills(ctx context.Context, _ types.SourceConfig) ([]types.Skill, error) {
	root, ok := p.detect.CodexSkillsDir()
	if !ok {
		return nil, nil
	}
	return listSkillDirs(ctx, root, p.Name(), p.parseSkillDir)
}

func (p *CodexProvider) ReadSkill(_ context.Context, skill types.Skill) (string, error) {
	return readFirstExisting(skill, "instructions.md", "README.md", "codex.json")
}

func (p *CodexProvider) Install(_ context.Context, source types.SkillSource, target string) (types.Skill, error) {
	return installLocal(source, target, "OpenAI Codex", p.parseSkillDir)
}

func (p *CodexProvider) parseSkillDir(dir string) (*types.Skill, error) {
	if jsonPath := filepath.Join(dir, "codex.json"); fileExists(jsonPath) {
		m, err := decodeJSONManifest(jsonPath)
		if err != nil {
			return nil, err
		}
		skill := buildSkill(dir, m, types.SourceTypeCodex, types.FormatCodexSkill)

		// Codex manifests may pin a model and declare tool requirements.
		if model := m.str("model"); model != "" {
			skill.Metadata.Requirements = append(skill.Metadata.Requirements, "model: "+model)
		}
		skill.Metadata.Requirements = append(skill.Metadata.Requirements, m.strList("tools")...)

		return &skill, nil
	}

	if fileExists(filepath.Join(dir, "instructions.md")) {
		skill := buildSkill(dir, manifest{"description": "OpenAI Codex skill"},
			types.SourceTypeCodex, types.FormatCodexSkill)
		return &skill, nil
	}

	if fileExists(filepath.Join(dir, "README.md")) {
		skill := buildSkill(dir, manifest{"description": "OpenAI Codex skill (markdown format)"},
			types.SourceTypeCodex, types.FormatGenericMarkdown)
		return &skill, nil
	}

	return nil, nil
}
