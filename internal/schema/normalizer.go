// Package schema maps arbitrary bank CSV exports onto the canonical
// transaction schema. It detects encoding and delimiter, matches loosely
// named columns against candidate lists, coerces values, infers the account
// name and silently drops rows whose date or amount cannot be parsed.
package schema

import (
	"encoding/csv"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"lmercier/finpipe/internal/currencyutils"
	"lmercier/finpipe/internal/dateutils"
	"lmercier/finpipe/internal/logging"
	"lmercier/finpipe/internal/models"
	"lmercier/finpipe/internal/pipelineerror"
	"lmercier/finpipe/internal/textutils"
)

// Normalizer converts raw export bytes into canonical transactions.
type Normalizer struct {
	logger logging.Logger
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(logger logging.Logger) *Normalizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Normalizer{logger: logger}
}

// Normalize parses one export. The file name is used only as an
// account-inference hint. It returns a SchemaError when no date or
// description column is found, or when neither an amount column nor a
// debit/credit pair exists; unparseable rows are dropped, not reported.
func (n *Normalizer) Normalize(raw []byte, fileName string) ([]models.Transaction, error) {
	decoded := DecodeBytes(raw)
	delimiter := DetectDelimiter(decoded)

	reader := csv.NewReader(strings.NewReader(decoded))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &pipelineerror.SchemaError{FileName: fileName, Reason: "unreadable delimited text: " + err.Error()}
	}
	if len(records) < 1 {
		return nil, &pipelineerror.SchemaError{FileName: fileName, Reason: "file contains no header row"}
	}

	columns := mapColumns(records[0])
	if columns.date < 0 || columns.description < 0 {
		return nil, &pipelineerror.SchemaError{FileName: fileName, Reason: "required date or description column not found"}
	}
	if columns.amount < 0 && columns.debit < 0 && columns.credit < 0 {
		return nil, &pipelineerror.SchemaError{FileName: fileName, Reason: "could not determine amount columns"}
	}

	rows := records[1:]
	accountName := inferAccountName(fileName, accountColumnValue(rows, columns.account))

	txs := make([]models.Transaction, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}

		date, _, err := dateutils.ParseDate(textutils.CleanCell(cell(row, columns.date)))
		if err != nil {
			dropped++
			continue
		}

		amount, ok := deriveAmount(row, columns)
		if !ok {
			dropped++
			continue
		}

		tx := models.Transaction{
			Date:        models.NewDate(date),
			Description: textutils.CleanCell(cell(row, columns.description)),
			Amount:      amount,
			AccountName: accountName,
		}
		if columns.balance >= 0 {
			if balance, ok := currencyutils.ParseAmount(cell(row, columns.balance)); ok {
				tx.Balance = models.SomeAmount(balance)
			}
		}
		txs = append(txs, tx)
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date.Time)
	})

	n.logger.WithFields(
		logging.Field{Key: "file", Value: fileName},
		logging.Field{Key: "rows", Value: len(txs)},
		logging.Field{Key: "dropped", Value: dropped},
		logging.Field{Key: "account", Value: accountName},
	).Debug("Normalized export")

	return txs, nil
}

// deriveAmount prefers the single signed amount column; otherwise it
// synthesizes credit minus debit, treating missing or unparseable cells as
// zero the way running exports leave the unused side blank.
func deriveAmount(row []string, columns columnMap) (decimal.Decimal, bool) {
	if columns.amount >= 0 {
		return currencyutils.ParseAmount(cell(row, columns.amount))
	}

	debit := decimal.Zero
	credit := decimal.Zero
	if columns.debit >= 0 {
		if v, ok := currencyutils.ParseAmount(cell(row, columns.debit)); ok {
			debit = v
		}
	}
	if columns.credit >= 0 {
		if v, ok := currencyutils.ParseAmount(cell(row, columns.credit)); ok {
			credit = v
		}
	}
	return credit.Sub(debit), true
}

// accountColumnValue returns the first non-empty cleaned cell of the account
// column, or "" when the column is absent or empty.
func accountColumnValue(rows [][]string, accountIdx int) string {
	if accountIdx < 0 {
		return ""
	}
	for _, row := range rows {
		if value := textutils.CleanCell(cell(row, accountIdx)); value != "" {
			return value
		}
	}
	return ""
}

// inferAccountName prefers an explicit account value, then file-name
// substrings, then the chequing default.
func inferAccountName(fileName, accountValue string) string {
	if accountValue != "" {
		return strings.ToLower(accountValue)
	}
	if fileName == "" {
		return models.AccountChequing
	}
	lowered := strings.ToLower(fileName)
	switch {
	case strings.Contains(lowered, "sav"):
		return models.AccountSavings
	case strings.Contains(lowered, "visa"),
		strings.Contains(lowered, "credit"),
		strings.Contains(lowered, "card"):
		return models.AccountCreditCard
	case strings.Contains(lowered, "tfsa"):
		return models.AccountTFSA
	}
	return models.AccountChequing
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isBlankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
