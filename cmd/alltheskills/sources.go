package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hongkongkiwi/alltheskills/pkg/config"
	"github.com/hongkongkiwi/alltheskills/pkg/presenter"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage configured skill sources",
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured sources",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			presenter.Error(err, "Cannot load configuration")
			os.Exit(1)
		}

		if len(cfg.Sources) == 0 {
			presenter.Info("No sources configured.")
			return
		}

		presenter.Section("Configured Sources")
		for _, source := range cfg.Sources {
			state := "enabled"
			if !source.Enabled {
				state = "disabled"
			}
			presenter.Info(fmt.Sprintf("  %-20s %-10s %-8s priority=%d (%s)",
				source.Name, source.SourceType, source.Scope, source.Priority, state))
		}
	},
}

var sourcesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or replace a configured source",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sourceType, _ := cmd.Flags().GetString("type")
		scope, _ := cmd.Flags().GetString("scope")
		priority, _ := cmd.Flags().GetInt("priority")
		disabled, _ := cmd.Flags().GetBool("disabled")

		st := types.SourceType(sourceType)
		if !st.IsKnown() {
			presenter.Error(fmt.Errorf("unknown source type %q", sourceType), "Cannot add source")
			os.Exit(1)
		}

		cfg, err := config.Load()
		if err != nil {
			presenter.Error(err, "Cannot load configuration")
			os.Exit(1)
		}

		cfg.AddSource(types.SourceConfig{
			Name:       args[0],
			SourceType: st,
			Enabled:    !disabled,
			Scope:      types.ParseScope(scope),
			Priority:   priority,
		})

		if err := config.Save(cfg); err != nil {
			presenter.Error(err, "Cannot save configuration")
			os.Exit(1)
		}
		presenter.Success(fmt.Sprintf("Added source %s", args[0]))
	},
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a configured source",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			presenter.Error(err, "Cannot load configuration")
			os.Exit(1)
		}

		if !cfg.RemoveSource(args[0]) {
			presenter.Error(fmt.Errorf("no source named %q", args[0]), "Cannot remove source")
			os.Exit(1)
		}

		if err := config.Save(cfg); err != nil {
			presenter.Error(err, "Cannot save configuration")
			os.Exit(1)
		}
		presenter.Success(fmt.Sprintf("Removed source %s", args[0]))
	},
}

func init() {
	sourcesAddCmd.Flags().String("type", "local", "Source type (claude, cline, cursor, github, local, ...)")
	sourcesAddCmd.Flags().String("scope", "user", "Source scope (global, user, project)")
	sourcesAddCmd.Flags().Int("priority", 0, "Ordering priority; higher wins")
	sourcesAddCmd.Flags().Bool("disabled", false, "Add the source in disabled state")

	sourcesCmd.AddCommand(sourcesListCmd)
	sourcesCmd.AddCommand(sourcesAddCmd)
	sourcesCmd.AddCommand(sourcesRemoveCmd)
}
