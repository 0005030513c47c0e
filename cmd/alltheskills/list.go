package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hongkongkiwi/alltheskills/pkg/presenter"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills across all detected platforms",
	Long: `List every skill found on this machine. Platforms that are not
installed or cannot be read contribute nothing; the listing never fails as
a whole.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		sourceFilter, _ := cmd.Flags().GetString("source")
		asJSON, _ := cmd.Flags().GetBool("json")

		r := newReader()
		skills, err := r.ListAll(ctx)
		if err != nil {
			presenter.Error(err, "Failed to list skills")
			os.Exit(1)
		}

		if sourceFilter != "" {
			filtered := skills[:0]
			for _, skill := range skills {
				if skill.SourceType == types.SourceType(sourceFilter) {
					filtered = append(filtered, skill)
				}
			}
			skills = filtered
		}

		if asJSON {
			out, err := json.MarshalIndent(skills, "", "  ")
			if err != nil {
				presenter.Error(err, "Failed to encode skills")
				os.Exit(1)
			}
			fmt.Println(string(out))
			return
		}

		if len(skills) == 0 {
			presenter.Info("No skills found.")
			return
		}

		printSkillTable(skills)

		if errs := r.LastErrors(); errs != nil {
			presenter.Separator()
			presenter.Warning("Some platforms could not be read; run with --log-level=info for details")
		}
	},
}

func printSkillTable(skills []types.Skill) {
	current := types.SourceType("")
	for _, skill := range skills {
		if skill.SourceType != current {
			if current != "" {
				presenter.Info("")
			}
			current = skill.SourceType
			presenter.Section(string(current))
		}

		line := fmt.Sprintf("  %-28s", skill.ID)
		if skill.Version != "" {
			line += fmt.Sprintf(" %-10s", skill.Version)
		}
		if skill.Description != "" {
			line += " " + skill.Description
		}
		presenter.Info(line)
	}
}

func init() {
	listCmd.Flags().String("source", "", "Only list skills from one source type (claude, cline, cursor, ...)")
	listCmd.Flags().Bool("json", false, "Output the listing as JSON")
}
