package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hongkongkiwi/alltheskills/pkg/presenter"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

var removeCmd = &cobra.Command{
	Use:   "remove <skill>",
	Short: "Remove an installed skill from disk",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		force, _ := cmd.Flags().GetBool("force")
		sourceType, _ := cmd.Flags().GetString("source")

		r := newReader()
		skill, err := findSkill(ctx, r, args[0], types.SourceType(sourceType))
		if err != nil {
			presenter.Error(err, "Cannot remove skill")
			os.Exit(1)
		}

		if !force {
			answer := presenter.Prompt(
				fmt.Sprintf("Remove %s (%s)?", skill.Name, skill.Path), "y", "N")
			if answer != "y" && answer != "Y" {
				presenter.Info("Aborted.")
				return
			}
		}

		if err := os.RemoveAll(skill.Path); err != nil {
			presenter.Error(err, "Cannot remove skill")
			os.Exit(1)
		}
		presenter.Success(fmt.Sprintf("Removed %s", skill.Name))
	},
}

func init() {
	removeCmd.Flags().Bool("force", false, "Remove without confirmation")
	removeCmd.Flags().String("source", "", "Disambiguate by source type when names collide")
}
