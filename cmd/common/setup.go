// Package common provides shared helpers for the CLI commands.
package common

import (
	"fmt"
	"os"

	"fjacquet/testimony-csv/cmd/root"
	"fjacquet/testimony-csv/internal/config"
	"fjacquet/testimony-csv/internal/logging"
	"fjacquet/testimony-csv/internal/models"
	"fjacquet/testimony-csv/internal/rules"
	"fjacquet/testimony-csv/internal/session"
)

// LoadConfig initializes the hierarchical configuration.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize configuration: %w", err)
	}
	return cfg, nil
}

// RulesFile resolves the rules file from the flag or configuration.
func RulesFile(cfg *config.Config) string {
	if root.SharedFlags.RulesFile != "" {
		return root.SharedFlags.RulesFile
	}
	return cfg.Rules.File
}

// NewSessionFromInput builds a session from the configured rules file and
// the --input file's contents.
func NewSessionFromInput(cfg *config.Config, logger logging.Logger) (*session.Session, *rules.RuleStore, error) {
	store := rules.NewRuleStore(RulesFile(cfg), logger)
	ruleList, err := store.LoadRules()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading rules: %w", err)
	}

	sess := session.New(rules.NewRuleSet(ruleList, logger), logger)

	input := root.SharedFlags.Input
	if input == "" {
		return nil, nil, fmt.Errorf("input file is required")
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading input file: %w", err)
	}
	sess.Load(string(data))

	return sess, store, nil
}

// ApplySelections sets the column and filter selections from flags,
// falling back to the configured defaults.
func ApplySelections(sess *session.Session, cfg *config.Config) {
	dateColumn := root.DateColumn
	if dateColumn == "" {
		dateColumn = cfg.Analyze.DateColumn
	}
	previewColumn := root.PreviewColumn
	if previewColumn == "" {
		previewColumn = cfg.Analyze.PreviewColumn
	}
	month := root.Month
	if month == "" {
		month = cfg.Analyze.Month
	}
	if month == "" {
		month = models.MonthAllTime
	}
	category := root.Category
	if category == "" {
		category = cfg.Analyze.Category
	}
	if category == "" {
		category = models.CategoryAll
	}

	sess.SetDateColumn(dateColumn)
	sess.SetPreviewColumn(previewColumn)
	sess.SetMonthFilter(month)
	sess.SetCategoryFilter(category)
}
