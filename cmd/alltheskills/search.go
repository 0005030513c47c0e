package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hongkongkiwi/alltheskills/pkg/presenter"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search skills by name, description, or tag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		query := strings.ToLower(args[0])

		matched, err := newReader().Search(ctx, func(skill types.Skill) bool {
			if strings.Contains(strings.ToLower(skill.Name), query) ||
				strings.Contains(strings.ToLower(skill.Description), query) {
				return true
			}
			for _, tag := range skill.Metadata.Tags {
				if strings.Contains(strings.ToLower(tag), query) {
					return true
				}
			}
			return false
		})
		if err != nil {
			presenter.Error(err, "Search failed")
			os.Exit(1)
		}

		if len(matched) == 0 {
			presenter.Info("No skills matched.")
			return
		}
		printSkillTable(matched)
	},
}
