// Package root contains the root command for the application.
package root

import (
	"fjacquet/testimony-csv/internal/config"
	"fjacquet/testimony-csv/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands.
type CommonFlags struct {
	Input     string
	Output    string
	RulesFile string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "testimony-csv",
		Short: "A CLI tool to categorize and analyze testimony/survey CSV exports.",
		Long: `testimony-csv parses delimited testimony and survey exports, assigns each
record to a category using keyword rules, buckets records by month, and
reports aggregate statistics. Filtered subsets can be exported back to CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to testimony-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()
			logging.SetDefaultLogger(logging.NewLogrusAdapterFromLogger(Log))
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific analyze/export command flags
	DateColumn    string
	PreviewColumn string
	Month         string
	Category      string
	Format        string

	// Specific rules command flags
	RuleName     string
	RuleKeywords []string
	RuleColor    string
	RuleID       string
)

// Init initializes the root command and all flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.RulesFile, "rules", "r", "", "Rules file (default from configuration)")
}
