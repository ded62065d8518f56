package models

// Rule is one user-defined categorization rule. The rule name doubles as
// the category label assigned to matching rows. Color is a cosmetic tag for
// display and never affects classification.
type Rule struct {
	ID       string   `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Color    string   `yaml:"color,omitempty" json:"color,omitempty"`
}

// RulesConfig is the on-disk YAML structure for the rules file.
type RulesConfig struct {
	Rules []Rule `yaml:"rules"`
}
