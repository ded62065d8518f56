// Package export handles the filtered CSV export command.
package export

import (
	"fmt"
	"os"

	"fjacquet/testimony-csv/cmd/common"
	"fjacquet/testimony-csv/cmd/root"
	"fjacquet/testimony-csv/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export filtered records to CSV",
	Long: `Parse a delimited testimony export, classify every record, apply the month
and category filters, and write the result as CSV with the derived Category,
MatchedKeywords, and MonthYear columns first.`,
	RunE: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.DateColumn, "date-column", "d", "", "Column holding the record date")
	Cmd.Flags().StringVarP(&root.Month, "month", "m", "", `Month filter, e.g. "April 2025" (default "All Time")`)
	Cmd.Flags().StringVarP(&root.Category, "category", "c", "", `Category filter (default "All")`)
}

func exportFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Export command called")

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

	output := root.SharedFlags.Output
	if output == "" {
		output = sess.ExportFilename()
	}

	text := sess.ExportText()
	if err := os.WriteFile(output, []byte(text), 0644); err != nil {
		return fmt.Errorf("error writing export file: %w", err)
	}

	root.Log.WithField("file", output).Info("Export written")
	return nil
}
