// Package classifier assigns category and sub-category labels to cleaned
// transactions using a layered strategy chain:
//  1. Deterministic keyword lookup against an ordered rule table
//  2. Fuzzy string matching against a target vocabulary
//  3. Optional remote enrichment (memoized, failure-tolerant)
//  4. A class-based default so every row leaves labeled
package classifier

import (
	"context"

	"lmercier/finpipe/internal/logging"
	"lmercier/finpipe/internal/models"
	"lmercier/finpipe/internal/store"
	"lmercier/finpipe/internal/textutils"
)

// Classifier runs the strategy chain over batches of transactions.
type Classifier struct {
	local      []Strategy
	enrichment Strategy
	logger     logging.Logger
}

// New creates a Classifier from the rule store. The enricher may be nil,
// in which case the enrichment strategy never answers. The cache is the
// injected memoization collaborator; nil gets a fresh in-memory cache.
func New(ruleStore *store.RuleStore, enricher Enricher, cache Cache, logger logging.Logger) (*Classifier, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	keywordRules, err := ruleStore.LoadKeywordRules()
	if err != nil {
		return nil, err
	}
	fuzzyTargets, err := ruleStore.LoadFuzzyTargets()
	if err != nil {
		return nil, err
	}

	return &Classifier{
		local: []Strategy{
			NewKeywordStrategy(keywordRules, logger),
			NewFuzzyStrategy(fuzzyTargets, logger),
		},
		enrichment: NewEnrichmentStrategy(enricher, cache, logger),
		logger:     logger,
	}, nil
}

// Classify labels every transaction, first local strategy to answer wins,
// then remote enrichment when enabled, then the class-based default. On
// return every row has a non-empty category and sub-category.
func (c *Classifier) Classify(ctx context.Context, txs []models.Transaction, useEnrichment bool) []models.Transaction {
	out := make([]models.Transaction, len(txs))
	for i, tx := range txs {
		class := tx.Class
		if class == "" {
			class = tx.DeriveClass()
		}
		label := c.classifyOne(ctx, textutils.NormalizeDescription(tx.Description), class, useEnrichment)
		tx.Category = label.Category
		tx.SubCategory = label.SubCategory
		out[i] = tx
	}
	return out
}

// ClassifyDescription labels a single description, used by the CLI.
func (c *Classifier) ClassifyDescription(ctx context.Context, description, class string, useEnrichment bool) models.Label {
	return c.classifyOne(ctx, textutils.NormalizeDescription(description), class, useEnrichment)
}

func (c *Classifier) classifyOne(ctx context.Context, normalized, class string, useEnrichment bool) models.Label {
	strategies := c.local
	if useEnrichment {
		strategies = append(append([]Strategy{}, c.local...), c.enrichment)
	}

	for _, strategy := range strategies {
		label, found, err := strategy.Classify(ctx, normalized, class)
		if err != nil {
			// Strategy errors degrade to the next strategy.
			c.logger.WithError(err).WithFields(
				logging.Field{Key: "strategy", Value: strategy.Name()},
			).Warn("Classification strategy failed")
			continue
		}
		if found {
			return label
		}
	}

	return models.DefaultLabel(class)
}
