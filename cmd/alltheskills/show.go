package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hongkongkiwi/alltheskills/pkg/presenter"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <skill>",
	Short: "Print a skill's instruction content",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		sourceType, _ := cmd.Flags().GetString("source")

		r := newReader()
		skill, err := findSkill(ctx, r, args[0], types.SourceType(sourceType))
		if err != nil {
			presenter.Error(err, "Cannot show skill")
			os.Exit(1)
		}

		provider, ok := providerFor(r, skill.SourceType)
		if !ok {
			presenter.Error(fmt.Errorf("no provider for source type %s", skill.SourceType), "Cannot read skill")
			os.Exit(1)
		}

		content, err := provider.ReadSkill(ctx, skill)
		if err != nil {
			presenter.Error(err, "Cannot read skill content")
			os.Exit(1)
		}
		fmt.Print(content)
	},
}

func init() {
	showCmd.Flags().String("source", "", "Disambiguate by source type when names collide")
}
