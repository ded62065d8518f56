// Package analyze handles the record analysis command.
package analyze

import (
	"fmt"

	"fjacquet/testimony-csv/cmd/common"
	"fjacquet/testimony-csv/cmd/root"
	"fjacquet/testimony-csv/internal/logging"
	"fjacquet/testimony-csv/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a testimony CSV export",
	Long: `Parse a delimited testimony export, classify every record against the
keyword rules, bucket records by month, and print the aggregate statistics.`,
	RunE: analyzeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.DateColumn, "date-column", "d", "", "Column holding the record date")
	Cmd.Flags().StringVarP(&root.PreviewColumn, "preview-column", "p", "", "Column aggregated into the value distribution")
	Cmd.Flags().StringVarP(&root.Month, "month", "m", "", `Month filter, e.g. "April 2025" (default "All Time")`)
	Cmd.Flags().StringVarP(&root.Format, "format", "f", "text", "Report format: text, json, or csv")
}

func analyzeFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Analyze command called")

	cfg, err := common.LoadConfig()
	if err != nil {
		return err
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	sess, _, err := common.NewSessionFromInput(cfg, logger)
	if err != nil {
		return err
	}
	common.ApplySelections(sess, cfg)

	result := sess.Analysis()

	generator := report.NewGenerator(logger)
	out, err := generator.Generate(result, root.Format)
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
