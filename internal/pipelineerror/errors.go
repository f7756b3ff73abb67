// Package pipelineerror defines the typed errors surfaced by the ingestion
// pipeline. File-level structural problems are fatal for the batch; row-level
// parse failures and enrichment failures are absorbed by their callers and
// never appear here as errors.
package pipelineerror

import "fmt"

// SchemaError reports that a file could not be mapped onto the canonical
// schema: a required date or description column is missing, or no usable
// amount source (single amount column or debit/credit pair) was found.
type SchemaError struct {
	FileName string
	Reason   string
}

func (e *SchemaError) Error() string {
	if e.FileName == "" {
		return fmt.Sprintf("schema error: %s", e.Reason)
	}
	return fmt.Sprintf("schema error in file '%s': %s", e.FileName, e.Reason)
}

// EnrichmentError wraps a failed remote enrichment call. It is logged and
// swallowed by the classifier, which falls through to the next strategy.
type EnrichmentError struct {
	Description string
	Err         error
}

func (e *EnrichmentError) Error() string {
	return fmt.Sprintf("enrichment failed for '%s': %v", e.Description, e.Err)
}

func (e *EnrichmentError) Unwrap() error {
	return e.Err
}
