package providers

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hongkongkiwi/alltheskills/pkg/logger"
	"github.com/hongkongkiwi/alltheskills/pkg/skillerrors"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// CursorProvider reads Cursor editor rules. Global rules live under
// ~/.cursor/rules as loose files or directories; a project may additionally
// carry a .cursorrules file or a .cursor/rules directory at its root.
// Unlike the directory-per-skill platforms, a single rules file is itself a
// skill, so Path may point at a file rather than a directory.
type CursorProvider struct {
	detect *Detector
}

// NewCursorProvider creates a Cursor rules provider.
func NewCursorProvider(detect *Detector) *CursorProvider {
	return &CursorProvider{detect: detect}
}

func (p *CursorProvider) Name() string {
	return "Cursor Rules"
}

func (p *CursorProvider) SourceType() types.SourceType {
	return types.SourceTypeCursor
}

func (p *CursorProvider) CanHandle(source types.SkillSource) bool {
	return source.Kind == types.SourceKindLocal &&
		(strings.Contains(source.Path, "cursor") || strings.HasSuffix(source.Path, ".cursorrules"))
}

func (p *CursorProvider) ListSkills(ctx context.Context, _ types.SourceConfig) ([]types.Skill, error) {
	var skills []types.Skill

	if root, ok := p.detect.CursorRulesDir(); ok {
		entries, err := os.ReadDir(root)
		if err != nil && !os.IsNotExist(err) {
			return nil, skillerrors.IO(err, "failed to read rules directory %s", root)
		}
		for _, entry := range entries {
			path := filepath.Join(root, entry.Name())
			if entry.IsDir() {
				if skill := p.parseRulesDir(ctx, path); skill != nil {
					skills = append(skills, *skill)
				}
				continue
			}
			if skill := p.parseRulesFile(ctx, path); skill != nil {
				skills = append(skills, *skill)
			}
		}
	}

	// Project-level rules in the working directory.
	if cwd := p.detect.WorkDir(); cwd != "" {
		if project := filepath.Join(cwd, ".cursorrules"); fileExists(project) {
			if skill := p.parseRulesFile(ctx, project); skill != nil {
				skills = append(skills, *skill)
			}
		}
		projectRules := filepath.Join(cwd, ".cursor", "rules")
		if entries, err := os.ReadDir(projectRules); err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				if skill := p.parseRulesFile(ctx, filepath.Join(projectRules, entry.Name())); skill != nil {
					skills = append(skills, *skill)
				}
			}
		}
	}

	return skills, nil
}

func (p *CursorProvider) ReadSkill(_ context.Context, skill types.Skill) (string, error) {
	if fileExists(skill.Path) {
		content, err := os.ReadFile(skill.Path)
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
	return readFirstExisting(skill, ".cursorrules", "cursor.json", "README.md")
}

func (p *CursorProvider) Install(ctx context.Context, source types.SkillSource, target string) (types.Skill, error) {
	return installLocal(source, target, "Cursor", func(dir string) (*types.Skill, error) {
		if skill := p.parseRulesDir(ctx, dir); skill != nil {
			return skill, nil
		}
		return nil, nil
	})
}

// parseRulesFile turns one loose rules file into a skill named after the
// file stem. Unreadable files are logged and skipped.
func (p *CursorProvider) parseRulesFile(ctx context.Context, path string) *types.Skill {
	content, err := os.ReadFile(path)
	if err != nil {
		logger.G(ctx).WithError(err).
			WithField("provider", p.Name()).
			WithField("path", path).
			Warn("skipping unreadable rules file")
		return nil
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = strings.TrimPrefix(name, ".")
	if name == "" {
		name = "cursorrules"
	}

	return &types.Skill{
		ID:          types.SkillID(name),
		Name:        name,
		Description: firstLine(string(content)),
		Source:      types.LocalSource(path),
		SourceType:  types.SourceTypeCursor,
		Path:        path,
		InstalledAt: time.Now().UTC(),
		Format:      types.FormatCursorRules,
	}
}

// parseRulesDir handles a directory-shaped rule set: cursor.json metadata
// when present, else a .cursorrules file inside the directory. Malformed
// manifests are logged and the candidate omitted.
func (p *CursorProvider) parseRulesDir(ctx context.Context, dir string) *types.Skill {
	if jsonPath := filepath.Join(dir, "cursor.json"); fileExists(jsonPath) {
		m, err := decodeJSONManifest(jsonPath)
		if err != nil {
			logger.G(ctx).WithError(err).
				WithField("provider", p.Name()).
				WithField("dir", dir).
				Warn("skipping unparseable skill directory")
			return nil
		}
		skill := buildSkill(dir, m, types.SourceTypeCursor, types.FormatCursorRules)
		return &skill
	}

	if rules := filepath.Join(dir, ".cursorrules"); fileExists(rules) {
		content, err := os.ReadFile(rules)
		if err != nil {
			logger.G(ctx).WithError(err).
				WithField("provider", p.Name()).
				WithField("path", rules).
				Warn("skipping unreadable rules file")
			return nil
		}
		skill := buildSkill(dir, manifest{"description": firstLine(string(content))},
			types.SourceTypeCursor, types.FormatCursorRules)
		return &skill
	}

	return nil
}
