// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"

	"lmercier/finpipe/internal/dateutils"
)

// Transaction is the canonical record every ingested source is mapped onto.
// Date, Description, Amount, AccountName and Balance are populated by the
// schema normalizer; Class, Category, SubCategory, WeekdayName and Month are
// derived by the cleaner and classifier.
type Transaction struct {
	Date        Date            `csv:"date"`
	Description string          `csv:"description"`
	Amount      decimal.Decimal `csv:"amount"`
	AccountName string          `csv:"account_name"`
	Balance     NullAmount      `csv:"balance"`
	Class       string          `csv:"class"`
	Category    string          `csv:"category"`
	SubCategory string          `csv:"sub_category"`
	WeekdayName string          `csv:"weekday_name"`
	Month       string          `csv:"month"`
}

// DeriveClass returns the class implied by the sign of the amount:
// Earnings iff amount > 0, Expenses otherwise.
func (t Transaction) DeriveClass() string {
	if t.Amount.IsPositive() {
		return ClassEarnings
	}
	return ClassExpenses
}

// IsEarning reports whether the transaction is an inflow.
func (t Transaction) IsEarning() bool {
	return t.Amount.IsPositive()
}

// AbsCents returns the absolute amount rounded to cents, the key transfer
// pairing matches on.
func (t Transaction) AbsCents() decimal.Decimal {
	return t.Amount.Abs().Round(2)
}

// Date wraps time.Time so the canonical table serializes dates as plain ISO
// calendar dates rather than RFC 3339 timestamps.
type Date struct {
	time.Time
}

// NewDate builds a Date from a time.Time, truncating to the calendar day.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// MarshalCSV implements the gocsv field marshaller.
func (d Date) MarshalCSV() (string, error) {
	if d.IsZero() {
		return "", nil
	}
	return dateutils.ToISODate(d.Time), nil
}

// UnmarshalCSV implements the gocsv field unmarshaller.
func (d *Date) UnmarshalCSV(value string) error {
	if value == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, _, err := dateutils.ParseDate(value)
	if err != nil {
		return err
	}
	*d = NewDate(parsed)
	return nil
}

// NullAmount is an optional decimal used for the running balance column,
// present only when the source file supplies one.
type NullAmount struct {
	Amount decimal.Decimal
	Valid  bool
}

// SomeAmount builds a present NullAmount.
func SomeAmount(amount decimal.Decimal) NullAmount {
	return NullAmount{Amount: amount, Valid: true}
}

// MarshalCSV renders an absent balance as an empty cell.
func (n NullAmount) MarshalCSV() (string, error) {
	if !n.Valid {
		return "", nil
	}
	return n.Amount.String(), nil
}

// UnmarshalCSV treats an empty or unparseable cell as absent.
func (n *NullAmount) UnmarshalCSV(value string) error {
	if value == "" {
		n.Valid = false
		return nil
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		n.Valid = false
		return nil
	}
	n.Amount = amount
	n.Valid = true
	return nil
}
