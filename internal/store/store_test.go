package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lmercier/finpipe/internal/logging"
	"lmercier/finpipe/internal/models"
)

func TestLoadDefaultsWhenNoFileConfigured(t *testing.T) {
	s := NewRuleStore("", "", logging.NewMockLogger())

	rules, err := s.LoadKeywordRules()
	require.NoError(t, err)
	assert.Equal(t, DefaultKeywordRules(), rules)

	targets, err := s.LoadFuzzyTargets()
	require.NoError(t, err)
	assert.Equal(t, DefaultFuzzyTargets(), targets)
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	s := NewRuleStore(missing, missing, logging.NewMockLogger())

	rules, err := s.LoadKeywordRules()
	require.NoError(t, err)
	assert.Equal(t, DefaultKeywordRules(), rules)
}

func TestSaveAndLoadRoundTripPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	s := NewRuleStore(
		filepath.Join(dir, "keywords.yaml"),
		filepath.Join(dir, "fuzzy.yaml"),
		logging.NewMockLogger(),
	)

	rules := []Rule{
		{Keyword: "zebra store", Category: "Shopping", SubCategory: "Retail"},
		{Keyword: "apple orchard", Category: "Living", SubCategory: "Groceries"},
		{Keyword: "zebra", Category: "Entertainment", SubCategory: "Zoo"},
	}
	require.NoError(t, s.SaveKeywordRules(rules))

	loaded, err := s.LoadKeywordRules()
	require.NoError(t, err)
	assert.Equal(t, rules, loaded)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keyword: [unclosed"), 0o600))

	s := NewRuleStore(path, "", logging.NewMockLogger())
	_, err := s.LoadKeywordRules()
	assert.Error(t, err)
}

func TestLoadEmptyFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("[]\n"), 0o600))

	s := NewRuleStore(path, "", logging.NewMockLogger())
	rules, err := s.LoadKeywordRules()
	require.NoError(t, err)
	assert.Equal(t, DefaultKeywordRules(), rules)
}

func TestRuleLabel(t *testing.T) {
	rule := Rule{Keyword: "rent", Category: "Housing", SubCategory: "Rent"}
	assert.Equal(t, models.Label{Category: "Housing", SubCategory: "Rent"}, rule.Label())
}

func TestDefaultTableShape(t *testing.T) {
	rules := DefaultKeywordRules()
	require.NotEmpty(t, rules)
	for _, rule := range rules {
		assert.NotEmpty(t, rule.Keyword)
		assert.NotEmpty(t, rule.Category)
		assert.NotEmpty(t, rule.SubCategory)
	}

	// The scan is first-match; generic transfer wording must sit below the
	// more specific payment rules.
	indexOf := func(keyword string) int {
		for i, rule := range rules {
			if rule.Keyword == keyword {
				return i
			}
		}
		return -1
	}
	assert.Less(t, indexOf("visa payment"), indexOf("transfer"))
	assert.Less(t, indexOf("rent"), indexOf("transfer"))
}
