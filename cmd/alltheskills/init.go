package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hongkongkiwi/alltheskills/pkg/exporter"
	"github.com/hongkongkiwi/alltheskills/pkg/presenter"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Scaffold a new skill directory",
	Long: `Create the starting files for a new skill in the layout of the chosen
platform. The directory is named after the skill identifier and is created
in the current directory unless --dir says otherwise.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		description, _ := cmd.Flags().GetString("description")
		sourceType, _ := cmd.Flags().GetString("type")
		dir, _ := cmd.Flags().GetString("dir")

		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				presenter.Error(err, "Cannot determine working directory")
				os.Exit(1)
			}
			dir = cwd
		}

		st := types.SourceType(sourceType)
		if !st.IsKnown() {
			presenter.Error(fmt.Errorf("unknown source type %q", sourceType), "Cannot scaffold skill")
			os.Exit(1)
		}

		target, err := exporter.Scaffold(dir, name, description, st)
		if err != nil {
			presenter.Error(err, "Cannot scaffold skill")
			os.Exit(1)
		}
		presenter.Success(fmt.Sprintf("Created %s skill at %s", sourceType, target))
	},
}

func init() {
	initCmd.Flags().String("type", "claude", "Platform layout to scaffold (claude, cline, cursor, ...)")
	initCmd.Flags().String("description", "", "Short description for the new skill")
	initCmd.Flags().String("dir", "", "Parent directory for the new skill (defaults to the current directory)")
}
