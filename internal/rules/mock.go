package rules

import "fjacquet/testimony-csv/internal/models"

// MockStore is an in-memory Store implementation for testing.
type MockStore struct {
	Rules []models.Rule

	LoadRulesError error
	SaveRulesError error
}

// LoadRules returns the mock rules.
func (m *MockStore) LoadRules() ([]models.Rule, error) {
	if m.LoadRulesError != nil {
		return nil, m.LoadRulesError
	}
	return append([]models.Rule(nil), m.Rules...), nil
}

// SaveRules replaces the mock rules.
func (m *MockStore) SaveRules(rules []models.Rule) error {
	if m.SaveRulesError != nil {
		return m.SaveRulesError
	}
	m.Rules = append([]models.Rule(nil), rules...)
	return nil
}
