package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lmercier/finpipe/internal/models"
)

func classified(day int, amount, class, category, month string) models.Transaction {
	return models.Transaction{
		Date:     models.NewDate(time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)),
		Amount:   decimal.RequireFromString(amount),
		Class:    class,
		Category: category,
		Month:    month,
	}
}

func TestSummarize(t *testing.T) {
	txs := []models.Transaction{
		classified(2, "2500.00", models.ClassEarnings, "Income", "2024-01"),
		classified(3, "-100.00", models.ClassExpenses, "Living", "2024-01"),
		classified(4, "-50.00", models.ClassExpenses, "Living", "2024-01"),
		classified(5, "-30.00", models.ClassExpenses, "Transport", "2024-02"),
	}

	s := Summarize(txs)

	assert.Equal(t, 4, s.Rows)
	assert.True(t, decimal.RequireFromString("2500").Equal(s.TotalEarnings))
	assert.True(t, decimal.RequireFromString("-180").Equal(s.TotalExpenses))
	assert.True(t, decimal.RequireFromString("2320").Equal(s.Delta))
	assert.True(t, decimal.RequireFromString("60").Equal(s.AveragePurchase))

	require.Contains(t, s.ByCategory, "Living")
	assert.True(t, decimal.RequireFromString("-150").Equal(s.ByCategory["Living"]))
	assert.True(t, decimal.RequireFromString("2350").Equal(s.ByMonth["2024-01"]))
	assert.True(t, decimal.RequireFromString("-30").Equal(s.ByMonth["2024-02"]))
}

func TestSummarizeEmptyBatch(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Rows)
	assert.True(t, s.Delta.IsZero())
	assert.True(t, s.AveragePurchase.IsZero())
}

func TestWrite(t *testing.T) {
	txs := []models.Transaction{
		classified(2, "2500.00", models.ClassEarnings, "Income", "2024-01"),
		classified(3, "-100.00", models.ClassExpenses, "Living", "2024-01"),
	}

	var buf strings.Builder
	require.NoError(t, Summarize(txs).Write(&buf))
	out := buf.String()

	assert.Contains(t, out, "Rows: 2")
	assert.Contains(t, out, "Total earnings:   2500.00")
	assert.Contains(t, out, "Total expenses:   100.00")
	assert.Contains(t, out, "Living")
	assert.Contains(t, out, "2024-01")
}
