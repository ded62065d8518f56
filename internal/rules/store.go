package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/testimony-csv/internal/logging"
	"fjacquet/testimony-csv/internal/models"

	"gopkg.in/yaml.v3"
)

// Store abstracts rule persistence so commands and tests can inject a
// file-backed or in-memory implementation.
type Store interface {
	LoadRules() ([]models.Rule, error)
	SaveRules(rules []models.Rule) error
}

// RuleStore loads and saves the rule list as YAML.
type RuleStore struct {
	RulesFile string
	logger    logging.Logger
}

// NewRuleStore creates a store for the given rules file. An empty filename
// defaults to "rules.yaml".
func NewRuleStore(rulesFile string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &RuleStore{RulesFile: rulesFile, logger: logger}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// Fall back to the user config directory.
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "testimony-csv", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules loads the rule list from the YAML file. A missing file is not an
// error: the user simply has no rules yet, so an empty list is returned.
func (s *RuleStore) LoadRules() ([]models.Rule, error) {
	filename := s.RulesFile
	if filename == "" {
		filename = "rules.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, filename).Warn("Rules file not found")
			return []models.Rule{}, nil
		}
		return nil, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	// Preferred structure: "rules: [...]".
	var config models.RulesConfig
	if err := yaml.Unmarshal(data, &config); err == nil && len(config.Rules) > 0 {
		s.logger.WithFields(
			logging.Field{Key: logging.FieldFile, Value: filePath},
			logging.Field{Key: logging.FieldCount, Value: len(config.Rules)},
		).Debug("Loaded rules")
		return config.Rules, nil
	}

	// Fallback: a bare list without the top-level key.
	var rules []models.Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rules)},
	).Debug("Loaded rules from bare list")
	return rules, nil
}

// SaveRules writes the rule list back to the YAML file, creating parent
// directories as needed.
func (s *RuleStore) SaveRules(rules []models.Rule) error {
	filename := s.RulesFile
	if filename == "" {
		filename = "rules.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error resolving rules file: %w", err)
		}
		filePath = filename
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(models.RulesConfig{Rules: rules})
	if err != nil {
		return fmt.Errorf("error marshaling rules: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing rules file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rules)},
	).Debug("Saved rules")
	return nil
}
