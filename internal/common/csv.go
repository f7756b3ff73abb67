// Package common provides the shared CSV output path. All canonical tables
// leave the pipeline through WriteTransactionsToCSV so delimiter and column
// conventions stay consistent.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"lmercier/finpipe/internal/logging"
	"lmercier/finpipe/internal/models"
)

var log = logging.GetLogger()

// Delimiter is the output CSV delimiter, configurable from config or the
// CSV_DELIMITER environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// WriteTransactionsToCSV writes the canonical table to a CSV file.
func WriteTransactionsToCSV(txs []models.Transaction, csvFile string) error {
	log.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(txs)},
	).Info("Writing transactions to CSV")

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return MarshalTransactions(txs, file)
}

// MarshalTransactions writes the canonical table to any writer.
func MarshalTransactions(txs []models.Transaction, out io.Writer) error {
	writer := csv.NewWriter(out)
	writer.Comma = Delimiter
	if err := gocsv.MarshalCSV(&txs, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	return nil
}

// ReadTransactionsFromCSV loads a previously written canonical table.
func ReadTransactionsFromCSV(csvFile string) ([]models.Transaction, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter

	var txs []models.Transaction
	if err := gocsv.UnmarshalDecoder(gocsv.NewSimpleDecoderFromCSVReader(reader), &txs); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	return txs, nil
}
