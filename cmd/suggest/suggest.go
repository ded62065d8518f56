// Package suggest handles the AI keyword suggestion command.
package suggest

import (
	"context"
	"fmt"
	"os"
	"time"

	"fjacquet/testimony-csv/cmd/common"
	"fjacquet/testimony-csv/cmd/root"
	"fjacquet/testimony-csv/internal/classifier"
	"fjacquet/testimony-csv/internal/logging"
	"fjacquet/testimony-csv/internal/suggest"
	"fjacquet/testimony-csv/internal/textparser"

	"github.com/spf13/cobra"
)

// Cmd represents the suggest command
var Cmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest rule keywords using the Gemini model",
	Long: `Read sample records from the input file and ask the Gemini model for
keywords that would match the named category. Requires ai.enabled and a
GEMINI_API_KEY.`,
	RunE: suggestFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.RuleName, "name", "n", "", "Category name to suggest keywords for")
	_ = Cmd.MarkFlagRequired("name")
}

func suggestFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Suggest command called")

	cfg, err := common.LoadConfig()
	if err != nil {
		return err
	}
	if !cfg.AI.Enabled {
		return fmt.Errorf("AI suggestions are disabled; set ai.enabled or TESTIMONY_AI_ENABLED")
	}

	input := root.SharedFlags.Input
	if input == "" {
		return fmt.Errorf("input file is required")
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	samples := sampleDetailText(string(data))
	if len(samples) == 0 {
		return fmt.Errorf("no sample text found in %s", input)
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	client := suggest.NewGeminiClient(cfg.AI.APIKey, cfg.AI.Model, logger)
	suggester := suggest.NewSuggester(client, logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
	defer cancel()

	keywords, err := suggester.SuggestKeywords(ctx, root.RuleName, samples)
	if err != nil {
		return err
	}

	fmt.Printf("Suggested keywords for %q:\n", root.RuleName)
	for _, keyword := range keywords {
		fmt.Printf("  %s\n", keyword)
	}
	return nil
}

// sampleDetailText pulls the detail column values (all columns when no
// detail column is present) from the parsed upload.
func sampleDetailText(text string) []string {
	table := textparser.Parse(text)
	columns := classifier.ActiveScanColumns(table.Headers)
	if len(columns) == 0 {
		columns = table.Headers
	}

	var samples []string
	for _, row := range table.Rows {
		for _, column := range columns {
			if value := row[column]; value != "" {
				samples = append(samples, value)
			}
		}
	}
	return samples
}
