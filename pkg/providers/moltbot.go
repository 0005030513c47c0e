package providers

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// MoltbotProvider reads Moltbot (formerly ClawdBot) skills. Skills live
// under ~/.moltbot/skills (legacy ~/.clawdbot/skills) and carry a
// manifest.json plus a SKILL.md instruction file.
type MoltbotProvider struct {
	detect *Detector
}

// NewMoltbotProvider creates a Moltbot skills provider.
func NewMoltbotProvider(detect *Detector) *MoltbotProvider {
	return &MoltbotProvider{detect: detect}
}

func (p *MoltbotProvider) Name() string {
	return "Moltbot Skills"
}

func (p *MoltbotProvider) SourceType() types.SourceType {
	return types.SourceTypeMoltbot
}

func (p *MoltbotProvider) CanHandle(source types.SkillSource) bool {
	return source.Kind == types.SourceKindLocal &&
		(strings.Contains(source.Path, "moltbot") || strings.Contains(source.Path, "clawdbot"))
}

func (p *MoltbotProvider) ListSkills(ctx context.Context, _ types.SourceConfig) ([]types.Skill, error) {
	root, ok := p.detect.MoltbotSkillsDir()
	if !ok {
		return nil, nil
	}
	return listSkillDirs(ctx, root, p.Name(), p.parseSkillDir)
}

func (p *MoltbotProvider) ReadSkill(_ context.Context, skill types.Skill) (string, error) {
	return readFirstExisting(skill, "SKILL.md", "README.md", "manifest.json")
}

func (p *MoltbotProvider) Install(_ context.Context, source types.SkillSource, target string) (types.Skill, error) {
	return installLocal(source, target, "Moltbot", p.parseSkillDir)
}

func (p *MoltbotProvider) parseSkillDir(dir string) (*types.Skill, error) {
	if manifestPath := filepath.Join(dir, "manifest.json"); fileExists(manifestPath) {
		m, err := decodeJSONManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		skill := buildSkill(dir, m, types.SourceTypeMoltbot, types.FormatMoltbotSkill)
		return &skill, nil
	}

	if skillMD := filepath.Join(dir, "SKILL.md"); fileExists(skillMD) {
		content, err := os.ReadFile(skillMD)
		if err != nil {
			return nil, err
		}
		m, body, err := parseFrontmatter(content)
		if err != nil {
			return nil, err
		}
		if m.str("description") == "" {
			m["description"] = firstLine(body)
		}
		skill := buildSkill(dir, m, types.SourceTypeMoltbot, types.FormatMoltbotSkill)
		return &skill, nil
	}

	if fileExists(filepath.Join(dir, "README.md")) {
		skill := buildSkill(dir, manifest{"description": "Moltbot skill"},
			types.SourceTypeMoltbot, types.FormatGenericMarkdown)
		return &skill, nil
	}

	return nil, nil
}
