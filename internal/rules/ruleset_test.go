package rules

import (
	"testing"

	"fjacquet/testimony-csv/internal/logging"
	"fjacquet/testimony-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleSetAdd(t *testing.T) {
	set := NewRuleSet(nil, &logging.MockLogger{})

	rule := set.Add("  Healing  ", []string{" healed ", "", "cancer"}, "green")

	require.NotNil(t, rule)
	assert.NotEmpty(t, rule.ID)
	assert.Equal(t, "Healing", rule.Name)
	assert.Equal(t, []string{"healed", "cancer"}, rule.Keywords)
	assert.Equal(t, "green", rule.Color)
	assert.Equal(t, 1, set.Len())
}

func TestRuleSetAddInvalid(t *testing.T) {
	tests := []struct {
		name     string
		ruleName string
		keywords []string
	}{
		{"Empty name", "", []string{"healed"}},
		{"Whitespace name", "   ", []string{"healed"}},
		{"No keywords", "Healing", nil},
		{"Only empty keywords", "Healing", []string{"", "  "}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set := NewRuleSet(nil, &logging.MockLogger{})
			assert.Nil(t, set.Add(tc.ruleName, tc.keywords, ""))
			assert.Zero(t, set.Len())
		})
	}
}

func TestRuleSetAddUniqueIDs(t *testing.T) {
	set := NewRuleSet(nil, &logging.MockLogger{})

	first := set.Add("Healing", []string{"healed"}, "")
	second := set.Add("Career", []string{"job"}, "")

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRuleSetRemove(t *testing.T) {
	set := NewRuleSet(nil, &logging.MockLogger{})
	rule := set.Add("Healing", []string{"healed"}, "")
	set.Add("Career", []string{"job"}, "")

	set.Remove(rule.ID)

	assert.Equal(t, []string{"Career"}, set.Names())
}

func TestRuleSetRemoveUnknownID(t *testing.T) {
	set := NewRuleSet(nil, &logging.MockLogger{})
	set.Add("Healing", []string{"healed"}, "")

	set.Remove("no-such-id")

	assert.Equal(t, 1, set.Len())
}

func TestRuleSetOrderPreserved(t *testing.T) {
	seed := []models.Rule{
		{ID: "1", Name: "Healing", Keywords: []string{"healed"}},
		{ID: "2", Name: "Career", Keywords: []string{"job"}},
	}
	set := NewRuleSet(seed, &logging.MockLogger{})
	set.Add("Family", []string{"married"}, "")

	assert.Equal(t, []string{"Healing", "Career", "Family"}, set.Names())
}

func TestRuleSetRulesReturnsCopy(t *testing.T) {
	set := NewRuleSet(nil, &logging.MockLogger{})
	set.Add("Healing", []string{"healed"}, "")

	rules := set.Rules()
	rules[0].Name = "Changed"

	assert.Equal(t, []string{"Healing"}, set.Names())
}
