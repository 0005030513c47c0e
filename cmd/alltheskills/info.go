package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hongkongkiwi/alltheskills/pkg/presenter"
	"github.com/hongkongkiwi/alltheskills/pkg/resolver"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

var infoCmd = &cobra.Command{
	Use:   "info <skill>",
	Short: "Show details for one skill, including its dependency plan",
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

		presenter.Section(skill.Name)
		presenter.KeyValue("ID", skill.ID)
		presenter.KeyValue("Source", string(skill.SourceType))
		presenter.KeyValue("Format", string(skill.Format))
		presenter.KeyValue("Path", skill.Path)
		if skill.Version != "" {
			presenter.KeyValue("Version", skill.Version)
		}
		if skill.Description != "" {
			presenter.KeyValue("Description", skill.Description)
		}
		if skill.Metadata.Author != "" {
			presenter.KeyValue("Author", skill.Metadata.Author)
		}
		if skill.Metadata.License != "" {
			presenter.KeyValue("License", skill.Metadata.License)
		}
		if len(skill.Metadata.Tags) > 0 {
			presenter.KeyValue("Tags", strings.Join(skill.Metadata.Tags, ", "))
		}
		if len(skill.Metadata.Requirements) > 0 {
			presenter.KeyValue("Requires", strings.Join(skill.Metadata.Requirements, ", "))
		}

		if len(skill.Metadata.Dependencies) == 0 {
			return
		}

		presenter.Separator()
		presenter.Section("Dependencies")
		for _, dep := range skill.Metadata.Dependencies {
			line := "  " + dep.Name
			if dep.VersionReq != "" {
				line += " (" + dep.VersionReq + ")"
			}
			if dep.Optional {
				line += " [optional]"
			}
			presenter.Info(line)
		}

		installed, err := r.ListAll(ctx)
		if err != nil {
			presenter.Error(err, "Cannot resolve dependencies")
			os.Exit(1)
		}

		plan, err := resolver.NewWithInstalled(installed).ResolveDependencies(skill)
		if err != nil {
			presenter.Error(err, "Dependency resolution failed")
			os.Exit(1)
		}

		if len(plan) == 0 {
			presenter.Success("All required dependencies are installed")
			return
		}
		presenter.Warning(fmt.Sprintf("%d dependencies are missing:", len(plan)))
		for _, dep := range plan {
			presenter.Info("  " + dep.Name)
		}
	},
}

func init() {
	infoCmd.Flags().String("source", "", "Disambiguate by source type when names collide")
}
