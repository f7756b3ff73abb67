package classifier

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lmercier/finpipe/internal/logging"
	"lmercier/finpipe/internal/models"
	"lmercier/finpipe/internal/store"
)

func newDefaultClassifier(t *testing.T, enricher Enricher, cache Cache) *Classifier {
	t.Helper()
	ruleStore := store.NewRuleStore("", "", logging.NewMockLogger())
	c, err := New(ruleStore, enricher, cache, logging.NewMockLogger())
	require.NoError(t, err)
	return c
}

func TestKeywordStrategyOrderedScan(t *testing.T) {
	strategy := NewKeywordStrategy(store.DefaultKeywordRules(), logging.NewMockLogger())
	ctx := context.Background()

	tests := []struct {
		name        string
		description string
		expected    models.Label
	}{
		{
			// Contains both "rent" and "transfer"; the earlier rule wins.
			"Earlier rule wins on multiple matches",
			"monthly rent e-transfer",
			models.Label{Category: "Housing", SubCategory: "Rent"},
		},
		{
			"Substring match",
			"tim hortons #1234 toronto",
			models.Label{Category: "Food & Drink", SubCategory: "Coffee"},
		},
		{
			// "uber" precedes "uber eats" in the table, so delivery orders
			// resolve as ride share.
			"Uber eats resolves through the uber rule",
			"uber eats order",
			models.Label{Category: "Transport", SubCategory: "Ride Share"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			label, found, err := strategy.Classify(ctx, tc.description, models.ClassExpenses)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, tc.expected, label)
		})
	}
}

func TestKeywordStrategyNoMatch(t *testing.T) {
	strategy := NewKeywordStrategy(store.DefaultKeywordRules(), logging.NewMockLogger())

	_, found, err := strategy.Classify(context.Background(), "zzzqqq merchant", models.ClassExpenses)
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = strategy.Classify(context.Background(), "", models.ClassExpenses)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFuzzyStrategyTokenMatch(t *testing.T) {
	strategy := NewFuzzyStrategy(store.DefaultFuzzyTargets(), logging.NewMockLogger())

	label, found, err := strategy.Classify(context.Background(), "wendys burgers king st", models.ClassExpenses)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.Label{Category: "Food & Drink", SubCategory: "Fast Food"}, label)
}

func TestFuzzyStrategyDescriptionMatch(t *testing.T) {
	strategy := NewFuzzyStrategy(store.DefaultFuzzyTargets(), logging.NewMockLogger())

	// No single token clears the token cutoff, but the whole misspelled
	// description is close enough to "shoppers drug mart".
	label, found, err := strategy.Classify(context.Background(), "shopers drug mrt", models.ClassExpenses)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.Label{Category: "Health", SubCategory: "Pharmacy"}, label)
}

func TestFuzzyStrategyBelowCutoff(t *testing.T) {
	strategy := NewFuzzyStrategy(store.DefaultFuzzyTargets(), logging.NewMockLogger())

	_, found, err := strategy.Classify(context.Background(), "quarterly portfolio rebalance", models.ClassExpenses)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClassifyAssignsEveryRow(t *testing.T) {
	c := newDefaultClassifier(t, nil, nil)

	txs := []models.Transaction{
		{
			Date:        models.NewDate(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)),
			Description: "Payroll Deposit",
			Amount:      decimal.RequireFromString("2500.00"),
			Class:       models.ClassEarnings,
		},
		{
			Date:        models.NewDate(time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)),
			Description: "Unknown Merchant 77",
			Amount:      decimal.RequireFromString("-10.00"),
			Class:       models.ClassExpenses,
		},
		{
			Date:        models.NewDate(time.Date(2024, time.January, 4, 0, 0, 0, 0, time.UTC)),
			Description: "Side Gig Payment",
			Amount:      decimal.RequireFromString("120.00"),
			// Class left empty; it is derived from the sign.
		},
	}

	out := c.Classify(context.Background(), txs, false)
	require.Len(t, out, 3)

	assert.Equal(t, "Income", out[0].Category)
	assert.Equal(t, "Salary", out[0].SubCategory)

	// Unknown expense falls through to the class default.
	assert.Equal(t, models.CategoryOthers, out[1].Category)
	assert.Equal(t, models.SubCategoryOthers, out[1].SubCategory)

	// Unknown earning defaults on the derived class.
	assert.Equal(t, models.CategoryIncome, out[2].Category)
	assert.Equal(t, models.SubCategoryGeneral, out[2].SubCategory)
}

func TestClassifyDescriptionNormalizesInput(t *testing.T) {
	c := newDefaultClassifier(t, nil, nil)

	label := c.ClassifyDescription(context.Background(), "  STARBUCKS   #456 ", models.ClassExpenses, false)
	assert.Equal(t, models.Label{Category: "Food & Drink", SubCategory: "Coffee"}, label)
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()

	_, ok := cache.Lookup("coffee shop")
	assert.False(t, ok)

	entry := CacheEntry{Label: models.Label{Category: "Food & Drink", SubCategory: "Coffee"}, Answered: true}
	cache.Store("coffee shop", entry)

	got, ok := cache.Lookup("coffee shop")
	require.True(t, ok)
	assert.Equal(t, entry, got)
	assert.Equal(t, 1, cache.Len())

	// Misses are memoized too.
	cache.Store("unknown merchant", CacheEntry{})
	got, ok = cache.Lookup("unknown merchant")
	require.True(t, ok)
	assert.False(t, got.Answered)
	assert.Equal(t, 2, cache.Len())
}
