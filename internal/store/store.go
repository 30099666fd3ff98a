// Package store loads and saves the ordered category rule table.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"spendreport/internal/logging"
	"spendreport/internal/models"

	"gopkg.in/yaml.v3"
)

// RuleStore manages the categories YAML file. The file holds an ordered
// list; order is the tie-break for categorization, so the store never
// reorders what it reads.
type RuleStore struct {
	RulesFile string
	logger    logging.Logger
}

// NewRuleStore creates a store for the given rules file.
func NewRuleStore(rulesFile string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &RuleStore{
		RulesFile: rulesFile,
		logger:    logger,
	}
}

// FindRulesFile looks for the rules file in standard locations.
func (s *RuleStore) FindRulesFile() (string, error) {
	filename := s.RulesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// Fall back to the user's config directory
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".spendreport", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules loads the rule table from YAML. A missing file is not an
// error: the built-in default table is returned so the pipeline always has
// a total rule set to work with.
func (s *RuleStore) LoadRules() (models.RuleSet, error) {
	filePath, err := s.FindRulesFile()
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, s.RulesFile).
				Debug("Rules file not found, using built-in category table")
			return models.DefaultRules(), nil
		}
		return nil, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var rulesFile models.RulesFile
	if err := yaml.Unmarshal(data, &rulesFile); err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}

	rules := rulesFile.Categories
	if len(rules) == 0 {
		// Also accept a bare top-level list for hand-written files
		if err := yaml.Unmarshal(data, &rules); err != nil || len(rules) == 0 {
			s.logger.WithField(logging.FieldFile, filePath).
				Warn("Rules file contains no categories, using built-in category table")
			return models.DefaultRules(), nil
		}
	}

	rules = ensureFallback(rules)

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rules)},
	).Debug("Loaded category rules")
	return rules, nil
}

// SaveRules writes the rule table back to YAML, preserving order. Used to
// seed a starter file the user can audit and edit.
func (s *RuleStore) SaveRules(rules models.RuleSet) error {
	filePath, err := s.FindRulesFile()
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error resolving rules file: %w", err)
		}
		filePath = s.RulesFile
		if filePath == "" {
			filePath = "categories.yaml"
		}
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(models.RulesFile{Categories: rules})
	if err != nil {
		return fmt.Errorf("error marshaling rules: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("error writing rules file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rules)},
	).Debug("Saved category rules")
	return nil
}

// ensureFallback guarantees the table ends with a keywordless
// Miscellaneous entry so every description gets a label.
func ensureFallback(rules models.RuleSet) models.RuleSet {
	for _, rule := range rules {
		if rule.Name == models.CategoryMiscellaneous {
			return rules
		}
	}
	return append(rules, models.CategoryRule{Name: models.CategoryMiscellaneous})
}
