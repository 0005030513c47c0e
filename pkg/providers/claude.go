package providers

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// ClaudeProvider reads Claude Code skills. Skills live under
// ~/.claude/skills (or ~/.claude/plugins/skills) as directories holding
// either a claude.json manifest or a SKILL.md with YAML frontmatter.
type ClaudeProvider struct {
	detect *Detector
}

// NewClaudeProvider creates a Claude skills provider.
func NewClaudeProvider(detect *Detector) *ClaudeProvider {
	return &ClaudeProvider{detect: detect}
}

func (p *ClaudeProvider) Name() string {
	return "Claude Skills"
}

func (p *ClaudeProvider) SourceType() types.SourceType {
	return types.SourceTypeClaude
}

func (p *ClaudeProvider) CanHandle(source types.SkillSource) bool {
	return source.Kind == types.SourceKindLocal && strings.Contains(source.Path, "claude")
}

func (p *ClaudeProvider) ListSkills(ctx context.Context, _ types.SourceConfig) ([]types.Skill, error) {
	root, ok := p.detect.ClaudeSkillsDir()
	if !ok {
		return nil, nil
	}
	return listSkillDirs(ctx, root, p.Name(), p.parseSkillDir)
}

func (p *ClaudeProvider) ReadSkill(_ context.Context, skill types.Skill) (string, error) {
	return readFirstExisting(skill, "SKILL.md", "skill.md", "README.md", "claude.json")
}

func (p *ClaudeProvider) Install(_ context.Context, source types.SkillSource, target string) (types.Skill, error) {
	return installLocal(source, target, "Claude", p.parseSkillDir)
}

func (p *ClaudeProvider) parseSkillDir(dir string) (*types.Skill, error) {
	if jsonPath := filepath.Join(dir, "claude.json"); fileExists(jsonPath) {
		m, err := decodeJSONManifest(jsonPath)
		if err != nil {
			return nil, err
		}
		skill := buildSkill(dir, m, types.SourceTypeClaude, types.FormatClaudeSkill)
		return &skill, nil
	}

	for _, name := range []string{"SKILL.md", "skill.md"} {
		mdPath := filepath.Join(dir, name)
		if !fileExists(mdPath) {
			continue
		}
		content, err := os.ReadFile(mdPath)
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
		skill := buildSkill(dir, m, types.SourceTypeClaude, types.FormatClaudeSkill)
		return &skill, nil
	}

	return nil, nil
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
