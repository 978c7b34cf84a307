package product

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/logger"
)

// offResponse is the subset of the Open Food Facts v0 product payload we read
type offResponse struct {
	Status        int    `json:"status"`
	StatusVerbose string `json:"status_verbose"`
	Code          string `json:"code"`
	Product       *struct {
		ProductName     string `json:"product_name"`
		Brands          string `json:"brands"`
		Categories      string `json:"categories"`
		IngredientsText string `json:"ingredients_text"`
	} `json:"product"`
}

// OpenFoodFactsClient resolves barcodes against the Open Food Facts API
type OpenFoodFactsClient struct {
	BaseURL    string
	Client     *http.Client
	UserAgent  string
	RetryDelay time.Duration
}

// NewOpenFoodFactsClient creates a client. Empty values fall back to the public API and DefaultTimeout.
func NewOpenFoodFactsClient(baseURL string, timeout time.Duration) *OpenFoodFactsClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OpenFoodFactsClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Client:     &http.Client{Timeout: timeout},
		UserAgent:  DefaultUserAgent,
		RetryDelay: RetryBaseDelay,
	}
}

// Lookup fetches one product. Server errors and transport failures are retried
// with exponential backoff; a 4xx answer or status 0 is final.
func (c *OpenFoodFactsClient) Lookup(ctx context.Context, barcode string) (*domain.Product, error) {
	log := logger.FromContext(ctx)
	url := c.BaseURL + fmt.Sprintf(ProductPathFormat, barcode)

	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay * time.Duration(1<<uint(attempt-1))
			log.Info(LogMsgLookupRetry, "attempt", attempt, "barcode", barcode, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %w", domain.ErrProductLookupFailed, ctx.Err())
			case <-time.After(delay):
			}
		}

		p, retry, err := c.fetch(ctx, url, barcode)
		if err == nil {
			return p, nil
		}
		lastErr = err
		if !retry {
			break
		}
	}

	log.Warn(LogMsgLookupFailed, "barcode", barcode, "error", lastErr)
	return nil, lastErr
}

// fetch performs one request. retry reports whether the failure is transient.
func (c *OpenFoodFactsClient) fetch(ctx context.Context, url, barcode string) (p *domain.Product, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to create request: %w", domain.ErrProductLookupFailed, err)
	}
	req.Header.Set(headerAccept, contentTypeJSON)
	if c.UserAgent != "" {
		req.Header.Set(headerUserAgent, c.UserAgent)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, fmt.Errorf("%w: %w", domain.ErrProductLookupFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, fmt.Errorf("%w: %s", domain.ErrProductNotFound, barcode)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, true, fmt.Errorf("%w: server error: %d", domain.ErrProductLookupFailed, resp.StatusCode)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, false, fmt.Errorf("%w: unexpected status: %d", domain.ErrProductLookupFailed, resp.StatusCode)
	}

	var body offResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return nil, false, fmt.Errorf("%w: failed to decode product: %w", domain.ErrProductLookupFailed, err)
	}

	if body.Status != offStatusFound || body.Product == nil || strings.TrimSpace(body.Product.ProductName) == "" {
		return nil, false, fmt.Errorf("%w: %s", domain.ErrProductNotFound, barcode)
	}

	brand := strings.TrimSpace(body.Product.Brands)
	if brand == "" {
		brand = BrandUnknown
	}
	return &domain.Product{
		Barcode:     barcode,
		Name:        strings.TrimSpace(body.Product.ProductName),
		Brand:       brand,
		Categories:  body.Product.Categories,
		Ingredients: body.Product.IngredientsText,
		Source:      SourceOpenFoodFacts,
	}, false, nil
}
