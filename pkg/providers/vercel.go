package providers

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// VercelProvider reads Vercel AI SDK skills from ~/.vercel/ai/skills,
// defined by a skill.json or ai.config.json manifest.
type VercelProvider struct {
	detect *Detector
}

// NewVercelProvider creates a Vercel AI SDK skills provider.
func NewVercelProvider(detect *Detector) *VercelProvider {
	return &VercelProvider{detect: detect}
}

func (p *VercelProvider) Name() string {
	return "Vercel AI Skills"
}

func (p *VercelProvider) SourceType() types.SourceType {
	return types.SourceTypeVercel
}

func (p *VercelProvider) CanHandle(source types.SkillSource) bool {
	return source.Kind == types.SourceKindLocal && strings.Contains(source.Path, "vercel")
}

func (p *VercelProvider) ListSkills(ctx context.Context, _ types.SourceConfig) ([]types.Skill, error) {
	root, ok := p.detect.VercelSkillsDir()
	if !ok {
		return nil, nil
	}
	return listSkillDirs(ctx, root, p.Name(), p.parseSkillDir)
}

func (p *VercelProvider) ReadSkill(_ context.Context, skill types.Skill) (string, error) {
	return readFirstExisting(skill, "README.md", "skill.json", "ai.config.json")
}

func (p *VercelProvider) Install(_ context.Context, source types.SkillSource, target string) (types.Skill, error) {
	return installLocal(source, target, "Vercel AI", p.parseSkillDir)
}

func (p *VercelProvider) parseSkillDir(dir string) (*types.Skill, error) {
	for _, name := range []string{"skill.json", "ai.config.json"} {
		jsonPath := filepath.Join(dir, name)
		if !fileExists(jsonPath) {
			continue
		}
		m, err := decodeJSONManifest(jsonPath)
		if err != nil {
			return nil, err
		}
		skill := buildSkill(dir, m, types.SourceTypeVercel, types.FormatVercelSkill)
		// skill.json may carry an explicit id distinct from the name slug.
		if id := m.str("id"); id != "" {
			skill.ID = id
		}
		return &skill, nil
	}

	return nil, nil
}
