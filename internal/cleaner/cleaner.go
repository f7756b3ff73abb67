// Package cleaner finalizes normalized rows: it removes exact duplicates,
// re-coerces types defensively, standardizes descriptions and derives the
// class, weekday and month columns. Clean is idempotent.
package cleaner

import (
	"strings"

	"lmercier/finpipe/internal/dateutils"
	"lmercier/finpipe/internal/models"
	"lmercier/finpipe/internal/textutils"
)

// Clean returns the cleaned copy of the batch. Empty input is returned
// unchanged.
func Clean(txs []models.Transaction) []models.Transaction {
	if len(txs) == 0 {
		return txs
	}

	seen := make(map[string]bool, len(txs))
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		// The normalizer guarantees parseable date and amount; a zero
		// date here means a row was constructed outside the pipeline.
		if tx.Date.IsZero() {
			continue
		}

		key := rowKey(tx)
		if seen[key] {
			continue
		}
		seen[key] = true

		tx.Description = textutils.StandardizeDescription(tx.Description)
		tx.AccountName = strings.ToLower(strings.TrimSpace(tx.AccountName))
		if tx.AccountName == "" {
			tx.AccountName = models.AccountChequing
		}
		tx.Class = tx.DeriveClass()
		tx.WeekdayName = dateutils.WeekdayName(tx.Date.Time)
		tx.Month = dateutils.MonthKey(tx.Date.Time)

		out = append(out, tx)
	}
	return out
}

// rowKey identifies an exact full-row duplicate: every canonical input
// column equal. Duplicates guard against the same export being loaded twice.
func rowKey(tx models.Transaction) string {
	balance := ""
	if tx.Balance.Valid {
		balance = tx.Balance.Amount.String()
	}
	return strings.Join([]string{
		dateutils.ToISODate(tx.Date.Time),
		tx.Description,
		tx.Amount.String(),
		tx.AccountName,
		balance,
	}, "\x1f")
}
