// Package providers implements the source adapters that translate each AI
// assistant platform's on-disk manifest dialect into the unified skill
// model. Every adapter satisfies the Provider interface; the reader package
// fans out over a registry of them.
package providers

import (
	"context"
	"os"
	"path/filepath"

	"github.com/hongkongkiwi/alltheskills/pkg/logger"
	"github.com/hongkongkiwi/alltheskills/pkg/skillerrors"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
	"github.com/hongkongkiwi/alltheskills/pkg/utils"
)

// Provider is the capability contract every source adapter implements.
//
// Providers hold no mutable state and must be safe for concurrent use; the
// filesystem is the source of truth and listings are rebuilt on every call.
type Provider interface {
	// Name returns the human-readable provider name used in diagnostics.
	Name() string

	// SourceType returns the platform tag stamped on every emitted skill.
	SourceType() types.SourceType

	// CanHandle is a fast local check whether this provider can process the
	// given source, used by install routing. A true result does not
	// guarantee ListSkills will find anything.
	CanHandle(source types.SkillSource) bool

	// ListSkills enumerates all skills currently visible to this provider.
	// A missing platform directory is success with zero results; a
	// malformed manifest is logged and its candidate omitted. Only an
	// unreadable-but-present root directory fails the call.
	ListSkills(ctx context.Context, config types.SourceConfig) ([]types.Skill, error)

	// ReadSkill returns the primary human-readable content for a skill,
	// trying the platform's candidate filenames in order.
	ReadSkill(ctx context.Context, skill types.Skill) (string, error)

	// Install materializes a skill at the target directory and returns the
	// freshly parsed entity. Unsupported source kinds fail fast with an
	// install error.
	Install(ctx context.Context, source types.SkillSource, target string) (types.Skill, error)
}

// DefaultProviders returns the full ordered adapter registry backed by the
// given detector.
func DefaultProviders(detect *Detector) []Provider {
	return []Provider{
		NewClaudeProvider(detect),
		NewClineProvider(detect),
		NewCursorProvider(detect),
		NewRooProvider(detect),
		NewOpenClawProvider(detect),
		NewMoltbotProvider(detect),
		NewCodexProvider(detect),
		NewKiloProvider(detect),
		NewVercelProvider(detect),
		NewCloudflareProvider(detect),
		NewGitHubProvider(),
		NewLocalProvider(detect),
	}
}

// parseFunc parses one candidate skill directory. Returning (nil, nil) means
// the directory holds no recognized manifest and is silently skipped.
type parseFunc func(dir string) (*types.Skill, error)

// listSkillDirs walks the immediate subdirectories of root and parses each
// with parse. Absent roots yield an empty listing; per-directory parse
// failures are reported on the context logger and skipped.
func listSkillDirs(ctx context.Context, root, providerName string, parse parseFunc) ([]types.Skill, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, skillerrors.IO(err, "failed to read skills directory %s", root)
	}

	var skills []types.Skill
	for _, entry := range entries {
		dir := filepath.Join(root, entry.Name())
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		skill, err := parse(dir)
		if err != nil {
			logger.G(ctx).WithError(err).
				WithField("provider", providerName).
				WithField("dir", dir).
				Warn("skipping unparseable skill directory")
			continue
		}
		if skill != nil {
			skills = append(skills, *skill)
		}
	}

	return skills, nil
}

// readFirstExisting returns the content of the first candidate file that
// exists under the skill's path.
func readFirstExisting(skill types.Skill, candidates ...string) (string, error) {
	for _, name := range candidates {
		path := filepath.Join(skill.Path, name)
		content, err := os.ReadFile(path)
		if err == nil {
			return string(content), nil
		}
		if !os.IsNotExist(err) {
			return "", skillerrors.IO(err, "failed to read %s", path)
		}
	}
	return "", skillerrors.NotFound(skill.Name)
}

// installLocal copies a local source directory to target and re-parses the
// result. It is the install path shared by all local-only adapters.
func installLocal(source types.SkillSource, target, providerName string, parse parseFunc) (types.Skill, error) {
	if source.Kind != types.SourceKindLocal {
		return types.Skill{}, skillerrors.Install("%s provider only supports local installation", providerName)
	}
	if !utils.IsSkillDir(source.Path) {
		return types.Skill{}, skillerrors.Install("%s does not look like a skill directory", source.Path)
	}

	if err := utils.CopyDir(source.Path, target); err != nil {
		return types.Skill{}, skillerrors.Wrap(err, skillerrors.KindInstall, "failed to copy skill from %s", source.Path)
	}

	skill, err := parse(target)
	if err != nil {
		return types.Skill{}, skillerrors.Wrap(err, skillerrors.KindInstall, "failed to parse installed skill at %s", target)
	}
	if skill == nil {
		return types.Skill{}, skillerrors.Install("no recognized %s manifest at %s", providerName, target)
	}

	return *skill, nil
}
