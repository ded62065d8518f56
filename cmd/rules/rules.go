// Package rules handles the keyword rule management commands.
package rules

import (
	"fmt"
	"strings"

	"fjacquet/testimony-csv/cmd/common"
	"fjacquet/testimony-csv/cmd/root"
	"fjacquet/testimony-csv/internal/logging"
	"fjacquet/testimony-csv/internal/rules"

	"github.com/spf13/cobra"
)

// Cmd represents the rules command group
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage categorization keyword rules",
	Long:  `List, add, and remove the keyword rules stored in the rules YAML file.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rules in order",
	RunE:  listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a rule",
	RunE:  addFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a rule by identifier",
	RunE:  removeFunc,
}

func init() {
	addCmd.Flags().StringVarP(&root.RuleName, "name", "n", "", "Rule name, also the category label")
	addCmd.Flags().StringSliceVarP(&root.RuleKeywords, "keywords", "k", nil, "Comma-separated keywords")
	addCmd.Flags().StringVar(&root.RuleColor, "color", "", "Display color tag (cosmetic)")

	removeCmd.Flags().StringVar(&root.RuleID, "id", "", "Rule identifier")
	_ = removeCmd.MarkFlagRequired("id")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
}

func newRuleSet(logger logging.Logger) (*rules.RuleSet, *rules.RuleStore, error) {
	cfg, err := common.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	store := rules.NewRuleStore(common.RulesFile(cfg), logger)
	ruleList, err := store.LoadRules()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading rules: %w", err)
	}
	return rules.NewRuleSet(ruleList, logger), store, nil
}

func listFunc(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	ruleSet, _, err := newRuleSet(logger)
	if err != nil {
		return err
	}

	for i, rule := range ruleSet.Rules() {
		fmt.Printf("%2d. %s  [%s]\n    keywords: %s\n", i+1, rule.Name, rule.ID, strings.Join(rule.Keywords, ", "))
	}
	if ruleSet.Len() == 0 {
		fmt.Println("No rules defined")
	}
	return nil
}

func addFunc(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	ruleSet, store, err := newRuleSet(logger)
	if err != nil {
		return err
	}

	rule := ruleSet.Add(root.RuleName, root.RuleKeywords, root.RuleColor)
	if rule == nil {
		// Empty name or keywords: a silent no-op in the pipeline, but the
		// CLI at least tells the user nothing was saved.
		root.Log.Warn("Nothing added: rule name and at least one keyword are required")
		return nil
	}

	if err := store.SaveRules(ruleSet.Rules()); err != nil {
		return fmt.Errorf("error saving rules: %w", err)
	}

	root.Log.WithField("id", rule.ID).Infof("Added rule %q", rule.Name)
	return nil
}

func removeFunc(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	ruleSet, store, err := newRuleSet(logger)
	if err != nil {
		return err
	}

	before := ruleSet.Len()
	ruleSet.Remove(root.RuleID)
	if ruleSet.Len() == before {
		root.Log.WithField("id", root.RuleID).Warn("No rule with that identifier")
		return nil
	}

	if err := store.SaveRules(ruleSet.Rules()); err != nil {
		return fmt.Errorf("error saving rules: %w", err)
	}

	root.Log.WithField("id", root.RuleID).Info("Rule removed")
	return nil
}
