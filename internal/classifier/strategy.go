package classifier

import (
	"context"

	"lmercier/finpipe/internal/models"
)

// Strategy defines one method of assigning a category pair to a transaction.
// Each strategy implements a specific approach (ordered keywords, fuzzy
// matching, remote enrichment) and reports whether it produced an answer.
type Strategy interface {
	// Classify attempts to label a transaction from its normalized
	// description and class. Returns the label, whether the strategy
	// answered, and any error encountered. Errors never abort
	// classification; the caller falls through to the next strategy.
	Classify(ctx context.Context, description, class string) (models.Label, bool, error)

	// Name returns the name of this strategy for logging and debugging.
	Name() string
}
