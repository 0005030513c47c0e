package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hongkongkiwi/alltheskills/pkg/exporter"
	"github.com/hongkongkiwi/alltheskills/pkg/presenter"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <skill>",
	Short: "Convert an installed skill into another platform's layout",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		targetType, _ := cmd.Flags().GetString("to")
		output, _ := cmd.Flags().GetString("output")
		sourceType, _ := cmd.Flags().GetString("source")

		r := newReader()
		skill, err := findSkill(ctx, r, args[0], types.SourceType(sourceType))
		if err != nil {
			presenter.Error(err, "Cannot export skill")
			os.Exit(1)
		}

		var content string
		if provider, ok := providerFor(r, skill.SourceType); ok {
			// Content is optional in the export; some layouts are
			// manifest-only.
			content, _ = provider.ReadSkill(ctx, skill)
		}

		if output == "" {
			output = filepath.Join(".", skill.ID+"-"+targetType)
		}

		if err := exporter.Export(skill, content, types.SourceType(targetType), output); err != nil {
			presenter.Error(err, "Export failed")
			os.Exit(1)
		}
		presenter.Success(fmt.Sprintf("Exported %s as %s layout to %s", skill.Name, targetType, output))
	},
}

func init() {
	exportCmd.Flags().String("to", "claude", "Target platform layout")
	exportCmd.Flags().String("output", "", "Output directory (defaults to ./<skill>-<target>)")
	exportCmd.Flags().String("source", "", "Disambiguate by source type when names collide")
}
