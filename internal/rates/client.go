// Package rates fetches and caches foreign-exchange rates. The cache sits
// in front of the exchangerate-api.com lookup and degrades to a fallback
// rate of 1 when the lookup fails, so a network problem never blocks
// expense registration.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the exchangerate-api v6 endpoint root.
	DefaultBaseURL = "https://v6.exchangerate-api.com/v6"

	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrInvalidKey indicates the API key was rejected.
	ErrInvalidKey = errors.New("rates: invalid API key")
	// ErrQuotaReached indicates the API request quota is exhausted.
	ErrQuotaReached = errors.New("rates: request quota reached")
)

// Source provides current exchange rates for one base currency.
// FetchRates returns a mapping from currency code to the value of one unit
// of the base currency in that currency.
type Source interface {
	FetchRates(ctx context.Context, base string) (map[string]float64, error)
}

// Client fetches rates from the exchangerate-api.com v6 API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a rate client. An empty baseURL selects the public API.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// latestResponse is the raw shape of the /latest endpoint.
type latestResponse struct {
	Result          string             `json:"result"`
	ErrorType       string             `json:"error-type"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// FetchRates returns the current rates for one unit of the base currency.
func (c *Client) FetchRates(ctx context.Context, base string) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, strings.ToUpper(base))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("rates: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("rates: reading response: %w", err)
	}

	var parsed latestResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("rates: parsing response: %w", err)
	}

	if parsed.Result != "success" {
		switch parsed.ErrorType {
		case "invalid-key", "inactive-account":
			return nil, ErrInvalidKey
		case "quota-reached":
			return nil, ErrQuotaReached
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("rates: unexpected status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("rates: API error %q", parsed.ErrorType)
	}

	if len(parsed.ConversionRates) == 0 {
		return nil, errors.New("rates: response missing conversion_rates")
	}
	return parsed.ConversionRates, nil
}
