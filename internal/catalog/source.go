package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultEndpoint is the catalog listing URL. The API is public, no auth.
const DefaultEndpoint = "https://api.escuelajs.co/api/v1/products"

// ErrBadFormat is returned when the response body is not a product list.
var ErrBadFormat = errors.New("catalog: response is not a product list")

// HTTPError is returned when the server responded with a non-2xx status.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("catalog: HTTP %d", e.StatusCode)
}

// FailureKind buckets fetch errors for user-facing messaging.
type FailureKind int

const (
	FailureNetwork FailureKind = iota // transport-level: no connectivity, timeout
	FailureServer                     // HTTP 5xx
	FailureClient                     // HTTP 4xx
	FailureFormat                     // body was not a product list
)

// Classify maps a FetchAll error to a failure bucket. Anything that is not
// an HTTP status or a format problem counts as a network failure.
func Classify(err error) FailureKind {
	var httpErr *HTTPError
	switch {
	case errors.As(err, &httpErr):
		if httpErr.StatusCode >= 500 {
			return FailureServer
		}
		return FailureClient
	case errors.Is(err, ErrBadFormat):
		return FailureFormat
	default:
		return FailureNetwork
	}
}

// Message returns the display string for this failure bucket.
func (k FailureKind) Message() string {
	switch k {
	case FailureServer:
		return "Server error - the catalog API is having trouble. Try again later."
	case FailureClient:
		return "Request rejected by the catalog API."
	case FailureFormat:
		return "The catalog API returned data in an unexpected format."
	default:
		return "Network unavailable - could not reach the catalog API."
	}
}

// Source fetches the product catalog over HTTP.
//
// A token-bucket limiter paces requests so repeated manual refreshes don't
// hammer the API. The limiter blocks (respecting ctx) rather than erroring.
type Source struct {
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
}

// NewSource creates a Source for the given endpoint. An empty endpoint
// falls back to DefaultEndpoint.
func NewSource(endpoint string, timeout time.Duration) *Source {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Source{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// FetchAll retrieves the complete catalog in a single request.
//
// There are no retries: a failed fetch is classified once (HTTPError,
// ErrBadFormat, or a wrapped transport error) and surfaced to the caller,
// which decides what to show the user.
func (f *Source) FetchAll(ctx context.Context) ([]Product, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("catalog: rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "shopfront/0.1 (https://github.com/calebwray/shopfront)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to read body: %w", err)
	}

	// Unknown fields are ignored; missing optional fields stay absent.
	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if products == nil {
		// A literal null body decodes without error but is not a list
		return nil, fmt.Errorf("%w: body is null", ErrBadFormat)
	}

	return products, nil
}
