package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hongkongkiwi/alltheskills/pkg/logger"
	"github.com/hongkongkiwi/alltheskills/pkg/presenter"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("ALLTHESKILLS")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("alltheskills")
	viper.SetConfigType("toml")
	viper.AddConfigPath("$HOME/.config/alltheskills")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "alltheskills",
	Short: "Aggregate AI assistant skills across every platform on this machine",
	Long: `alltheskills discovers, inspects, installs, and converts AI assistant
skills across the platforms installed on this machine, including Claude,
Cline, Cursor, Roo Code, Codex, and others.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			presenter.Warning(fmt.Sprintf("invalid log level %q, using default", viper.GetString("log_level")))
		}
		logger.SetLogFormat(viper.GetString("log_format"))

		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			presenter.SetQuiet(true)
		}

		cmd.SetContext(logger.WithLogger(cmd.Context(), logger.L))
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
		os.Exit(1)
	},
}

func main() {
	// Add global flags
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text or json)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress informational output")

	// Bind flags to viper
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(versionCmd)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
