package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hongkongkiwi/alltheskills/pkg/gitexec"
	"github.com/hongkongkiwi/alltheskills/pkg/presenter"
	"github.com/hongkongkiwi/alltheskills/pkg/providers"
	"github.com/hongkongkiwi/alltheskills/pkg/resolver"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
	"github.com/hongkongkiwi/alltheskills/pkg/utils"
)

var installCmd = &cobra.Command{
	Use:   "install <path-or-github-url>",
	Short: "Install a skill from a local directory or a GitHub repository",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		target, _ := cmd.Flags().GetString("target")
		branch, _ := cmd.Flags().GetString("branch")

		source, err := resolveInstallSource(args[0], branch)
		if err != nil {
			presenter.Error(err, "Invalid install source")
			os.Exit(1)
		}

		if target == "" {
			base, err := defaultInstallDir()
			if err != nil {
				presenter.Error(err, "Cannot determine install directory")
				os.Exit(1)
			}
			target = filepath.Join(base, installName(source))
		}

		r := newReader()
		provider := routeInstall(r.Providers(), source)
		if provider == nil {
			presenter.Error(fmt.Errorf("no provider can install from this source"), "Install failed")
			os.Exit(1)
		}

		skill, err := provider.Install(ctx, source, target)
		if err != nil {
			presenter.Error(err, "Install failed")
			os.Exit(1)
		}
		presenter.Success(fmt.Sprintf("Installed %s to %s", skill.Name, skill.Path))

		reportMissingDependencies(cmd, skill)
	},
}

// resolveInstallSource interprets the argument as a GitHub URL first and
// falls back to a local path.
func resolveInstallSource(arg, branch string) (types.SkillSource, error) {
	if source, err := gitexec.ParseGitHubURL(arg); err == nil {
		source.Branch = branch
		return source, nil
	}

	abs, err := filepath.Abs(arg)
	if err != nil {
		return types.SkillSource{}, err
	}
	if _, err := os.Stat(abs); err != nil {
		return types.SkillSource{}, fmt.Errorf("not a GitHub URL and not an existing path: %s", arg)
	}
	return types.LocalSource(abs), nil
}

// routeInstall picks the first provider claiming the source, in registry
// order. The local provider accepts any local path, so routing always
// terminates for filesystem sources.
func routeInstall(ps []providers.Provider, source types.SkillSource) providers.Provider {
	for _, p := range ps {
		if p.CanHandle(source) {
			return p
		}
	}
	return nil
}

// installName derives the directory name for an installed skill.
func installName(source types.SkillSource) string {
	switch source.Kind {
	case types.SourceKindGitHub:
		if source.Subdir != "" {
			return utils.SanitizeFilename(filepath.Base(source.Subdir))
		}
		return utils.SanitizeFilename(source.Repo)
	default:
		return utils.SanitizeFilename(filepath.Base(source.Path))
	}
}

// reportMissingDependencies resolves the freshly installed skill against
// everything already on the machine and lists what is still missing.
func reportMissingDependencies(cmd *cobra.Command, skill types.Skill) {
	if len(skill.Metadata.Dependencies) == 0 {
		return
	}

	ctx := cmd.Context()
	installed, err := newReader().ListAll(ctx)
	if err != nil {
		return
	}

	plan, err := resolver.NewWithInstalled(installed).ResolveDependencies(skill)
	if err != nil {
		presenter.Error(err, "Dependency resolution failed")
		return
	}
	for _, dep := range plan {
		req := dep.VersionReq
		if req == "" {
			req = "any version"
		}
		presenter.Warning(fmt.Sprintf("Missing dependency: %s (%s)", dep.Name, req))
	}
}

func init() {
	installCmd.Flags().String("target", "", "Directory to install into (defaults to the configured install dir)")
	installCmd.Flags().String("branch", "", "Branch to clone for GitHub sources")
}
