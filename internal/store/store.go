// Package store loads classifier rule tables from YAML files.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"dguaman/sri-facturas/internal/classifier"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// rulesFile mirrors the on-disk shape: an ordered list under a "rules" key.
// Order in the file is the evaluation order.
type rulesFile struct {
	Rules []classifier.Rule `yaml:"rules"`
}

// RuleStore resolves and loads the optional classifier rule file.
type RuleStore struct {
	RulesFile string
}

// NewRuleStore creates a store for the given rule file name or path.
func NewRuleStore(rulesFile string) *RuleStore {
	return &RuleStore{RulesFile: rulesFile}
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

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "sri-facturas", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules loads the ordered rule table from the YAML file. A missing file
// is not an error: the built-in table applies and an empty slice is returned.
func (s *RuleStore) LoadRules() ([]classifier.Rule, error) {
	filename := s.RulesFile
	if filename == "" {
		filename = "reglas.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", filename).Debug("Rule file not found, using built-in rules")
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving rule file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading rule file: %w", err)
	}

	var parsed rulesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing rule file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  filePath,
		"rules": len(parsed.Rules),
	}).Info("Loaded classifier rules")

	return parsed.Rules, nil
}
