package rules

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lmercier/finpipe/internal/logging"
	"lmercier/finpipe/internal/store"
)

func TestExportRulesWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	keywordsPath := filepath.Join(dir, "keywords.yaml")
	fuzzyPath := filepath.Join(dir, "fuzzy.yaml")

	src := store.NewRuleStore("", "", logging.NewMockLogger())
	dst := store.NewRuleStore(keywordsPath, fuzzyPath, logging.NewMockLogger())

	require.NoError(t, exportRules(src, dst))

	// The exported files round-trip through the store in the same order.
	loaded, err := dst.LoadKeywordRules()
	require.NoError(t, err)
	assert.Equal(t, store.DefaultKeywordRules(), loaded)

	targets, err := dst.LoadFuzzyTargets()
	require.NoError(t, err)
	assert.Equal(t, store.DefaultFuzzyTargets(), targets)
}

func TestExportRulesCopiesConfiguredTables(t *testing.T) {
	dir := t.TempDir()

	custom := []store.Rule{
		{Keyword: "farm share", Category: "Living", SubCategory: "Groceries"},
		{Keyword: "gym", Category: "Health", SubCategory: "Fitness"},
	}
	srcKeywords := filepath.Join(dir, "src-keywords.yaml")
	src := store.NewRuleStore(srcKeywords, "", logging.NewMockLogger())
	require.NoError(t, src.SaveKeywordRules(custom))

	dst := store.NewRuleStore(filepath.Join(dir, "out-keywords.yaml"), filepath.Join(dir, "out-fuzzy.yaml"), logging.NewMockLogger())
	require.NoError(t, exportRules(src, dst))

	loaded, err := dst.LoadKeywordRules()
	require.NoError(t, err)
	assert.Equal(t, custom, loaded)
}
