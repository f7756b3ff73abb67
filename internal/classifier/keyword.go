package classifier

import (
	"context"
	"strings"

	"lmercier/finpipe/internal/logging"
	"lmercier/finpipe/internal/models"
	"lmercier/finpipe/internal/store"
)

// KeywordStrategy labels transactions by scanning the normalized description
// against an ordered keyword table. The scan runs top to bottom and the
// first keyword found as a substring wins, so rule order is the tie-break
// when several keywords match.
type KeywordStrategy struct {
	rules  []store.Rule
	logger logging.Logger
}

// NewKeywordStrategy creates a KeywordStrategy over the given ordered rules.
func NewKeywordStrategy(rules []store.Rule, logger logging.Logger) *KeywordStrategy {
	return &KeywordStrategy{rules: rules, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Classify scans the ordered rule table for the first keyword contained in
// the description.
func (s *KeywordStrategy) Classify(ctx context.Context, description, class string) (models.Label, bool, error) {
	if description == "" {
		return models.Label{}, false, nil
	}

	for _, rule := range s.rules {
		if strings.Contains(description, rule.Keyword) {
			s.logger.WithFields(
				logging.Field{Key: "strategy", Value: s.Name()},
				logging.Field{Key: "keyword", Value: rule.Keyword},
				logging.Field{Key: "category", Value: rule.Category},
			).Debug("Transaction labeled by keyword rule")
			return rule.Label(), true, nil
		}
	}

	return models.Label{}, false, nil
}
