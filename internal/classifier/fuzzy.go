package classifier

import (
	"context"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"lmercier/finpipe/internal/logging"
	"lmercier/finpipe/internal/models"
	"lmercier/finpipe/internal/store"
	"lmercier/finpipe/internal/textutils"
)

// Similarity cutoffs for the two fuzzy passes. Tokens must be near-exact
// matches; the whole-description pass is a looser last resort.
const (
	tokenCutoff       = 0.92
	descriptionCutoff = 0.80
)

// FuzzyStrategy labels transactions by approximate string similarity against
// a target vocabulary. It first matches individual description tokens at a
// high-precision cutoff, then the whole description at a looser one.
type FuzzyStrategy struct {
	targets []store.Rule
	logger  logging.Logger
}

// NewFuzzyStrategy creates a FuzzyStrategy over the given target vocabulary.
func NewFuzzyStrategy(targets []store.Rule, logger logging.Logger) *FuzzyStrategy {
	return &FuzzyStrategy{targets: targets, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *FuzzyStrategy) Name() string {
	return "Fuzzy"
}

// Classify matches description tokens, then the full description, against
// the fuzzy-target vocabulary.
func (s *FuzzyStrategy) Classify(ctx context.Context, description, class string) (models.Label, bool, error) {
	if description == "" || len(s.targets) == 0 {
		return models.Label{}, false, nil
	}

	for _, token := range textutils.Tokenize(description) {
		if rule, ok := s.closestTarget(token, tokenCutoff); ok {
			s.logger.WithFields(
				logging.Field{Key: "strategy", Value: s.Name()},
				logging.Field{Key: "token", Value: token},
				logging.Field{Key: "target", Value: rule.Keyword},
			).Debug("Transaction labeled by fuzzy token match")
			return rule.Label(), true, nil
		}
	}

	if rule, ok := s.closestTarget(description, descriptionCutoff); ok {
		s.logger.WithFields(
			logging.Field{Key: "strategy", Value: s.Name()},
			logging.Field{Key: "target", Value: rule.Keyword},
		).Debug("Transaction labeled by fuzzy description match")
		return rule.Label(), true, nil
	}

	return models.Label{}, false, nil
}

// closestTarget returns the vocabulary entry with the highest similarity
// ratio to the query, if any entry reaches the cutoff. Earlier entries win
// ratio ties.
func (s *FuzzyStrategy) closestTarget(query string, cutoff float64) (store.Rule, bool) {
	var best store.Rule
	bestRatio := 0.0
	found := false

	queryChars := splitChars(query)
	for _, target := range s.targets {
		ratio := difflib.NewMatcher(splitChars(target.Keyword), queryChars).Ratio()
		if ratio >= cutoff && ratio > bestRatio {
			best = target
			bestRatio = ratio
			found = true
		}
	}
	return best, found
}

// splitChars explodes a string into per-character elements for the sequence
// matcher, which compares slices of strings.
func splitChars(s string) []string {
	return strings.Split(s, "")
}
