package providers

import (
	"context"
	"os"
	"path/filepath"

	"github.com/hongkongkiwi/alltheskills/pkg/gitexec"
	"github.com/hongkongkiwi/alltheskills/pkg/skillerrors"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// GitHubProvider installs skills by cloning a repository. It is an
// install-only adapter: once installed, the skill directory becomes visible
// to whichever platform provider recognizes its manifest, so listing here
// is always empty.
type GitHubProvider struct{}

// NewGitHubProvider creates a GitHub repository provider.
func NewGitHubProvider() *GitHubProvider {
	return &GitHubProvider{}
}

func (p *GitHubProvider) Name() string {
	return "GitHub Repository"
}

func (p *GitHubProvider) SourceType() types.SourceType {
	return types.SourceTypeGitHub
}

func (p *GitHubProvider) CanHandle(source types.SkillSource) bool {
	return source.Kind == types.SourceKindGitHub
}

func (p *GitHubProvider) ListSkills(_ context.Context, _ types.SourceConfig) ([]types.Skill, error) {
	return nil, nil
}

func (p *GitHubProvider) ReadSkill(_ context.Context, skill types.Skill) (string, error) {
	return readFirstExisting(skill, "README.md", "SKILL.md")
}

func (p *GitHubProvider) Install(ctx context.Context, source types.SkillSource, target string) (types.Skill, error) {
	if source.Kind != types.SourceKindGitHub {
		return types.Skill{}, skillerrors.Install("GitHub provider only supports github sources")
	}

	url := gitexec.RepoURL(source.Owner, source.Repo)
	if err := gitexec.Clone(ctx, url, target, source.Branch); err != nil {
		return types.Skill{}, skillerrors.Wrap(err, skillerrors.KindInstall, "failed to clone %s", url)
	}

	skillPath := target
	if source.Subdir != "" {
		skillPath = filepath.Join(target, filepath.FromSlash(source.Subdir))
	}

	skill, err := p.parseClonedDir(skillPath)
	if err != nil {
		return types.Skill{}, skillerrors.Wrap(err, skillerrors.KindInstall, "failed to parse cloned skill at %s", skillPath)
	}
	if skill == nil {
		return types.Skill{}, skillerrors.Install("no recognized skill manifest in %s/%s", source.Owner, source.Repo)
	}

	skill.Source = source
	skill.Metadata.Repository = url
	return *skill, nil
}

// parseClonedDir recognizes whichever manifest dialect the repository ships.
func (p *GitHubProvider) parseClonedDir(dir string) (*types.Skill, error) {
	for _, name := range []string{"claude.json", "skill.json", "manifest.json"} {
		jsonPath := filepath.Join(dir, name)
		if !fileExists(jsonPath) {
			continue
		}
		m, err := decodeJSONManifest(jsonPath)
		if err != nil {
			return nil, err
		}
		skill := buildSkill(dir, m, types.SourceTypeGitHub, types.FormatGenericJSON)
		return &skill, nil
	}

	for _, name := range []string{"SKILL.md", "README.md"} {
		mdPath := filepath.Join(dir, name)
		if !fileExists(mdPath) {
			continue
		}
		content, err := os.ReadFile(mdPath)
		if err != nil {
			return nil, skillerrors.IO(err, "failed to read %s", mdPath)
		}
		m, body, err := parseFrontmatter(content)
		if err != nil {
			return nil, err
		}
		if m.str("description") == "" {
			m["description"] = firstLine(body)
		}
		skill := buildSkill(dir, m, types.SourceTypeGitHub, types.FormatGenericMarkdown)
		return &skill, nil
	}

	return nil, nil
}
