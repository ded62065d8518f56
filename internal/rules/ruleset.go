// Package rules manages the ordered list of user-defined categorization
// rules and its YAML-backed store.
package rules

import (
	"strings"

	"fjacquet/testimony-csv/internal/logging"
	"fjacquet/testimony-csv/internal/models"

	"github.com/google/uuid"
)

// RuleSet holds the ordered rule list. Order is significant: it is the
// tie-break priority during classification and the iteration order of the
// category counts. Identifiers are unique and stable across edits.
type RuleSet struct {
	rules  []models.Rule
	logger logging.Logger
}

// NewRuleSet creates a RuleSet seeded with the given rules, preserving
// their order.
func NewRuleSet(rules []models.Rule, logger logging.Logger) *RuleSet {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &RuleSet{
		rules:  append([]models.Rule(nil), rules...),
		logger: logger,
	}
}

// Add appends a new rule and returns it. Adding a rule with an empty name
// or no non-empty keywords is a silent no-op returning nil; user-input
// validation never surfaces as an error.
func (s *RuleSet) Add(name string, keywords []string, color string) *models.Rule {
	name = strings.TrimSpace(name)

	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			cleaned = append(cleaned, kw)
		}
	}

	if name == "" || len(cleaned) == 0 {
		s.logger.Debug("Ignoring rule with empty name or keywords")
		return nil
	}

	rule := models.Rule{
		ID:       uuid.NewString(),
		Name:     name,
		Keywords: cleaned,
		Color:    color,
	}
	s.rules = append(s.rules, rule)

	s.logger.WithFields(
		logging.Field{Key: logging.FieldRuleID, Value: rule.ID},
		logging.Field{Key: logging.FieldRule, Value: rule.Name},
		logging.Field{Key: logging.FieldCount, Value: len(rule.Keywords)},
	).Debug("Rule added")

	return &rule
}

// Remove deletes the rule with the given identifier. Removal of an unknown
// identifier is a silent no-op.
func (s *RuleSet) Remove(id string) {
	kept := s.rules[:0]
	removed := false
	for _, rule := range s.rules {
		if rule.ID == id {
			removed = true
			continue
		}
		kept = append(kept, rule)
	}
	s.rules = kept

	if removed {
		s.logger.WithField(logging.FieldRuleID, id).Debug("Rule removed")
	} else {
		s.logger.WithField(logging.FieldRuleID, id).Debug("Rule not found, nothing removed")
	}
}

// Rules returns a copy of the ordered rule list.
func (s *RuleSet) Rules() []models.Rule {
	return append([]models.Rule(nil), s.rules...)
}

// Names returns the rule names in list order.
func (s *RuleSet) Names() []string {
	names := make([]string, len(s.rules))
	for i, rule := range s.rules {
		names[i] = rule.Name
	}
	return names
}

// Len returns the number of rules.
func (s *RuleSet) Len() int {
	return len(s.rules)
}
