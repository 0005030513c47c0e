package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hongkongkiwi/alltheskills/pkg/gitexec"
	"github.com/hongkongkiwi/alltheskills/pkg/logger"
	"github.com/hongkongkiwi/alltheskills/pkg/presenter"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

var updateCmd = &cobra.Command{
	Use:   "update [skill]",
	Short: "Update git-backed skills by pulling their repositories",
	Long: `Update skills whose directories are git checkouts. With no argument
every git-backed skill is updated; skills that are not git checkouts are
skipped.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		r := newReader()
		var targets []types.Skill

		if len(args) == 1 {
			skill, err := findSkill(ctx, r, args[0], "")
			if err != nil {
				presenter.Error(err, "Cannot update skill")
				os.Exit(1)
			}
			targets = []types.Skill{skill}
		} else {
			all, err := r.ListAll(ctx)
			if err != nil {
				presenter.Error(err, "Cannot list skills")
				os.Exit(1)
			}
			targets = all
		}

		updated := 0
		for _, skill := range targets {
			if !gitexec.IsRepo(skill.Path) {
				logger.G(ctx).WithField("skill", skill.ID).Debug("not a git checkout, skipping")
				continue
			}
			if err := gitexec.Pull(ctx, skill.Path); err != nil {
				presenter.Error(err, fmt.Sprintf("Failed to update %s", skill.Name))
				continue
			}
			presenter.Success(fmt.Sprintf("Updated %s", skill.Name))
			updated++
		}

		if updated == 0 {
			presenter.Info("Nothing to update.")
		}
	},
}
