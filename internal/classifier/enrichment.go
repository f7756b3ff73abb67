package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lmercier/finpipe/internal/logging"
	"lmercier/finpipe/internal/models"
	"lmercier/finpipe/internal/pipelineerror"
)

// DefaultEnrichmentTimeout bounds a single enrichment request.
const DefaultEnrichmentTimeout = 3 * time.Second

// Enricher is the remote-enrichment capability. The core classification
// logic depends only on this interface, so the real HTTP client can be
// replaced with a fake or a no-op.
type Enricher interface {
	// Enrich asks the remote service for a label. The boolean is false
	// when the service has no answer; errors cover transport and
	// protocol failures and are absorbed by the caller.
	Enrich(ctx context.Context, description string) (models.Label, bool, error)
}

// HTTPEnricher calls a JSON classification endpoint with a bearer
// credential. Any non-2xx/3xx status, network failure, timeout or malformed
// body is reported as an error and downgraded by the strategy to "no answer".
type HTTPEnricher struct {
	url    string
	apiKey string
	client *http.Client
	logger logging.Logger
}

// NewHTTPEnricher creates an enrichment client for the given endpoint and
// credential. Returns nil when either is missing, which disables the
// enrichment strategy entirely.
func NewHTTPEnricher(url, apiKey string, timeout time.Duration, logger logging.Logger) *HTTPEnricher {
	if url == "" || apiKey == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = DefaultEnrichmentTimeout
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &HTTPEnricher{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type enrichmentRequest struct {
	Description string `json:"description"`
}

type enrichmentResponse struct {
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
}

// Enrich issues a single POST to the enrichment endpoint.
func (e *HTTPEnricher) Enrich(ctx context.Context, description string) (models.Label, bool, error) {
	body, err := json.Marshal(enrichmentRequest{Description: description})
	if err != nil {
		return models.Label{}, false, &pipelineerror.EnrichmentError{Description: description, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return models.Label{}, false, &pipelineerror.EnrichmentError{Description: description, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return models.Label{}, false, &pipelineerror.EnrichmentError{Description: description, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close enrichment response body")
		}
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return models.Label{}, false, &pipelineerror.EnrichmentError{
			Description: description,
			Err:         fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var answer enrichmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return models.Label{}, false, &pipelineerror.EnrichmentError{Description: description, Err: err}
	}

	if answer.Category == "" {
		return models.Label{}, false, nil
	}
	subCategory := answer.SubCategory
	if subCategory == "" {
		// A category without a sub-category is completed, not rejected.
		subCategory = models.SubCategoryOthers
	}
	return models.Label{Category: answer.Category, SubCategory: subCategory}, true, nil
}

// EnrichmentStrategy wraps an Enricher with per-description memoization.
// Outcomes, including misses, are cached so a description hits the network
// at most once per process lifetime.
type EnrichmentStrategy struct {
	enricher Enricher
	cache    Cache
	logger   logging.Logger
}

// NewEnrichmentStrategy creates an EnrichmentStrategy. A nil cache gets a
// fresh in-memory one.
func NewEnrichmentStrategy(enricher Enricher, cache Cache, logger logging.Logger) *EnrichmentStrategy {
	if cache == nil {
		cache = NewMemoryCache()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &EnrichmentStrategy{enricher: enricher, cache: cache, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *EnrichmentStrategy) Name() string {
	return "Enrichment"
}

// Classify consults the memo cache, then the remote service. Remote failures
// are logged and reported as "no answer" rather than propagated.
func (s *EnrichmentStrategy) Classify(ctx context.Context, description, class string) (models.Label, bool, error) {
	if s.enricher == nil || description == "" {
		return models.Label{}, false, nil
	}

	if entry, ok := s.cache.Lookup(description); ok {
		return entry.Label, entry.Answered, nil
	}

	label, answered, err := s.enricher.Enrich(ctx, description)
	if err != nil {
		s.logger.WithError(err).WithFields(
			logging.Field{Key: "strategy", Value: s.Name()},
		).Debug("Enrichment call failed, treating as no answer")
		s.cache.Store(description, CacheEntry{})
		return models.Label{}, false, nil
	}

	s.cache.Store(description, CacheEntry{Label: label, Answered: answered})
	return label, answered, nil
}
