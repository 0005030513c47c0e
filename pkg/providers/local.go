package providers

import (
	"context"
	"path/filepath"

	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// LocalProvider reads skills from an arbitrary local directory, typically
// the working directory or an ALLTHESKILLS_LOCAL_DIR override. It accepts
// any subdirectory with a claude.json or a README.md.
type LocalProvider struct {
	detect *Detector
}

// NewLocalProvider creates a local directory provider.
func NewLocalProvider(detect *Detector) *LocalProvider {
	return &LocalProvider{detect: detect}
}

func (p *LocalProvider) Name() string {
	return "Local Directory"
}

func (p *LocalProvider) SourceType() types.SourceType {
	return types.SourceTypeLocal
}

func (p *LocalProvider) CanHandle(source types.SkillSource) bool {
	return source.Kind == types.SourceKindLocal
}

func (p *LocalProvider) ListSkills(ctx context.Context, _ types.SourceConfig) ([]types.Skill, error) {
	root, ok := p.detect.LocalSkillsDir()
	if !ok {
		return nil, nil
	}
	return listSkillDirs(ctx, root, p.Name(), p.parseSkillDir)
}

func (p *LocalProvider) ReadSkill(_ context.Context, skill types.Skill) (string, error) {
	return readFirstExisting(skill, "README.md", "claude.json")
}

func (p *LocalProvider) Install(_ context.Context, source types.SkillSource, target string) (types.Skill, error) {
	return installLocal(source, target, "Local", p.parseSkillDir)
}

func (p *LocalProvider) parseSkillDir(dir string) (*types.Skill, error) {
	if jsonPath := filepath.Join(dir, "claude.json"); fileExists(jsonPath) {
		m, err := decodeJSONManifest(jsonPath)
		if err != nil {
			return nil, err
		}
		skill := buildSkill(dir, m, types.SourceTypeLocal, types.FormatGenericJSON)
		return &skill, nil
	}

	if fileExists(filepath.Join(dir, "README.md")) {
		skill := buildSkill(dir, manifest{"description": "Local skill"},
			types.SourceTypeLocal, types.FormatGenericMarkdown)
		return &skill, nil
	}

	return nil, nil
}
