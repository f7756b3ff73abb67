// Package pipeline orchestrates the batch transform: normalize each
// uploaded file, concatenate, remove internal transfers, clean and classify.
// One input batch in, one labeled table out; repeated runs on identical
// input are purely functional apart from the enrichment memo cache.
package pipeline

import (
	"context"

	"lmercier/finpipe/internal/classifier"
	"lmercier/finpipe/internal/cleaner"
	"lmercier/finpipe/internal/logging"
	"lmercier/finpipe/internal/models"
	"lmercier/finpipe/internal/schema"
	"lmercier/finpipe/internal/transfers"
)

// FilePayload is one uploaded or sampled export: raw bytes plus the file
// name used as an account-inference hint.
type FilePayload struct {
	Name    string
	Content []byte
}

// Pipeline wires the stages together.
type Pipeline struct {
	normalizer    *schema.Normalizer
	classifier    *classifier.Classifier
	toleranceDays int
	logger        logging.Logger
}

// New creates a Pipeline. toleranceDays <= 0 selects the default transfer
// matching tolerance.
func New(normalizer *schema.Normalizer, cls *classifier.Classifier, toleranceDays int, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if toleranceDays <= 0 {
		toleranceDays = transfers.DefaultToleranceDays
	}
	return &Pipeline{
		normalizer:    normalizer,
		classifier:    cls,
		toleranceDays: toleranceDays,
		logger:        logger,
	}
}

// LoadFiles normalizes every payload, concatenates the results and removes
// internal transfers across the combined batch. A SchemaError in any file
// fails the whole load: one malformed file poisons account inference and
// transfer matching for the rest.
func (p *Pipeline) LoadFiles(payloads []FilePayload) ([]models.Transaction, error) {
	var combined []models.Transaction
	for _, payload := range payloads {
		txs, err := p.normalizer.Normalize(payload.Content, payload.Name)
		if err != nil {
			return nil, err
		}
		combined = append(combined, txs...)
	}
	if len(combined) == 0 {
		return combined, nil
	}
	return transfers.RemoveInternalTransfers(combined, p.toleranceDays, p.logger), nil
}

// Run cleans and classifies a loaded batch.
func (p *Pipeline) Run(ctx context.Context, txs []models.Transaction, useEnrichment bool) []models.Transaction {
	cleaned := cleaner.Clean(txs)
	classified := p.classifier.Classify(ctx, cleaned, useEnrichment)

	p.logger.WithFields(
		logging.Field{Key: "rows", Value: len(classified)},
		logging.Field{Key: "enrichment", Value: useEnrichment},
	).Info("Pipeline run complete")

	return classified
}

// Process is the full path for one batch of files.
func (p *Pipeline) Process(ctx context.Context, payloads []FilePayload, useEnrichment bool) ([]models.Transaction, error) {
	loaded, err := p.LoadFiles(payloads)
	if err != nil {
		return nil, err
	}
	return p.Run(ctx, loaded, useEnrichment), nil
}
