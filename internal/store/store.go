// Package store loads and saves the classification rule tables. Rules live
// in YAML files so the vocabulary can be edited without a rebuild; when no
// file exists the built-in defaults are used.
package store

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"lmercier/finpipe/internal/logging"
	"lmercier/finpipe/internal/models"
)

// Rule maps a keyword to a category/sub-category pair. Rule order is
// significant: earlier rules win when several keywords match, so the tables
// are explicit ordered lists rather than maps.
type Rule struct {
	Keyword     string `yaml:"keyword"`
	Category    string `yaml:"category"`
	SubCategory string `yaml:"sub_category"`
}

// Label returns the rule's category pair.
func (r Rule) Label() models.Label {
	return models.Label{Category: r.Category, SubCategory: r.SubCategory}
}

// RuleStore manages loading and saving of the keyword and fuzzy-target
// rule tables.
type RuleStore struct {
	KeywordsFile string
	FuzzyFile    string
	logger       logging.Logger
}

// NewRuleStore creates a store backed by the given YAML files. Either path
// may be empty, in which case that table always resolves to its defaults.
func NewRuleStore(keywordsFile, fuzzyFile string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &RuleStore{
		KeywordsFile: keywordsFile,
		FuzzyFile:    fuzzyFile,
		logger:       logger,
	}
}

// LoadKeywordRules returns the ordered deterministic keyword table. A missing
// or empty file is not an error; the embedded defaults are returned instead.
func (s *RuleStore) LoadKeywordRules() ([]Rule, error) {
	return s.loadRules(s.KeywordsFile, DefaultKeywordRules())
}

// LoadFuzzyTargets returns the fuzzy-target vocabulary, falling back to the
// embedded defaults when no file is configured.
func (s *RuleStore) LoadFuzzyTargets() ([]Rule, error) {
	return s.loadRules(s.FuzzyFile, DefaultFuzzyTargets())
}

func (s *RuleStore) loadRules(filename string, defaults []Rule) ([]Rule, error) {
	if filename == "" {
		return defaults, nil
	}

	path, err := s.resolveFile(filename)
	if err != nil {
		s.logger.WithField("file", filename).Debug("Rule file not found, using defaults")
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return defaults, nil
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: len(rules)},
	).Debug("Loaded classification rules")
	return rules, nil
}

// SaveKeywordRules writes the keyword table back to its YAML file.
func (s *RuleStore) SaveKeywordRules(rules []Rule) error {
	return s.saveRules(s.KeywordsFile, rules)
}

// SaveFuzzyTargets writes the fuzzy-target table back to its YAML file.
func (s *RuleStore) SaveFuzzyTargets(rules []Rule) error {
	return s.saveRules(s.FuzzyFile, rules)
}

func (s *RuleStore) saveRules(filename string, rules []Rule) error {
	if filename == "" {
		return nil
	}
	data, err := yaml.Marshal(rules)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o600)
}

// resolveFile looks for a rule file in the working directory, a local
// config/ directory, and the user's config directory, in that order.
func (s *RuleStore) resolveFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err != nil {
			return "", err
		}
		return filename, nil
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "finpipe", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}
