package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/hongkongkiwi/alltheskills/pkg/presenter"
	"github.com/hongkongkiwi/alltheskills/pkg/providers"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate a skill directory's manifest",
	Long: `Check that a directory is a well-formed skill: it carries a manifest
one of the supported platforms understands, and the manifest's fields are
usable. Defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			presenter.Error(err, "Invalid directory")
			os.Exit(1)
		}

		skill, err := providers.ParseSkillDir(abs)
		if err != nil {
			presenter.Error(err, "Validation failed")
			os.Exit(1)
		}

		issues := lintSkill(*skill)

		presenter.Success(fmt.Sprintf("%s parses as a valid skill", abs))
		presenter.KeyValue("Name", skill.Name)
		if skill.Version != "" {
			presenter.KeyValue("Version", skill.Version)
		}

		if issues == nil {
			return
		}
		for _, issue := range issues.Errors {
			presenter.Warning(issue.Error())
		}
		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			os.Exit(1)
		}
	},
}

// lintSkill collects non-fatal quality issues with a parsed skill.
func lintSkill(skill types.Skill) *multierror.Error {
	var issues *multierror.Error

	if skill.Description == "" {
		issues = multierror.Append(issues, fmt.Errorf("missing description"))
	}
	if skill.Version == "" {
		issues = multierror.Append(issues, fmt.Errorf("missing version"))
	}
	for _, dep := range skill.Metadata.Dependencies {
		if dep.Name == "" {
			issues = multierror.Append(issues, fmt.Errorf("dependency with empty name"))
		}
	}
	return issues
}

func init() {
	validateCmd.Flags().Bool("strict", false, "Exit non-zero when quality issues are found")
}
