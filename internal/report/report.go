// Package report produces read-only aggregations of the final labeled table
// for presentation collaborators. It never re-derives class or category.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"lmercier/finpipe/internal/models"
)

// Summary is a rollup of one classified batch.
type Summary struct {
	Rows            int
	TotalEarnings   decimal.Decimal
	TotalExpenses   decimal.Decimal // negative sum of outflows
	Delta           decimal.Decimal
	AveragePurchase decimal.Decimal
	ByCategory      map[string]decimal.Decimal
	ByMonth         map[string]decimal.Decimal
}

// Summarize aggregates a classified batch. Amounts keep their signs; the
// delta is earnings plus expenses.
func Summarize(txs []models.Transaction) Summary {
	s := Summary{
		ByCategory: make(map[string]decimal.Decimal),
		ByMonth:    make(map[string]decimal.Decimal),
	}

	purchaseTotal := decimal.Zero
	purchases := 0
	for _, tx := range txs {
		s.Rows++
		if tx.Class == models.ClassEarnings {
			s.TotalEarnings = s.TotalEarnings.Add(tx.Amount)
		} else {
			s.TotalExpenses = s.TotalExpenses.Add(tx.Amount)
			purchaseTotal = purchaseTotal.Add(tx.Amount.Abs())
			purchases++
		}
		s.ByCategory[tx.Category] = s.ByCategory[tx.Category].Add(tx.Amount)
		s.ByMonth[tx.Month] = s.ByMonth[tx.Month].Add(tx.Amount)
	}

	s.Delta = s.TotalEarnings.Add(s.TotalExpenses)
	if purchases > 0 {
		s.AveragePurchase = purchaseTotal.DivRound(decimal.NewFromInt(int64(purchases)), 2)
	}
	return s
}

// Write renders a plain-text summary.
func (s Summary) Write(out io.Writer) error {
	if _, err := fmt.Fprintf(out, "Rows: %d\n", s.Rows); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Total earnings:   %s\n", s.TotalEarnings.StringFixed(2)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Total expenses:   %s\n", s.TotalExpenses.Abs().StringFixed(2)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Delta:            %s\n", s.Delta.StringFixed(2)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Average purchase: %s\n", s.AveragePurchase.StringFixed(2)); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, "\nBy category:"); err != nil {
		return err
	}
	for _, category := range sortedKeys(s.ByCategory) {
		if _, err := fmt.Fprintf(out, "  %-20s %s\n", category, s.ByCategory[category].StringFixed(2)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(out, "\nBy month:"); err != nil {
		return err
	}
	for _, month := range sortedKeys(s.ByMonth) {
		if _, err := fmt.Fprintf(out, "  %-20s %s\n", month, s.ByMonth[month].StringFixed(2)); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
