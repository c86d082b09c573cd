package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestSource(url string) *Source {
	return NewSource(url, 5*time.Second)
}

func TestFetchAll(t *testing.T) {
	body := `[
		{"id": 1, "title": "Classic Tee", "price": 19.99,
		 "description": "A plain tee",
		 "category": {"id": 3, "name": "Clothes"},
		 "images": ["https://example.com/tee.png"],
		 "slug": "classic-tee"},
		{"id": 2, "title": "Mystery Box"}
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer server.Close()

	products, err := newTestSource(server.URL).FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	first := products[0]
	if first.Title != "Classic Tee" {
		t.Errorf("expected 'Classic Tee', got %s", first.Title)
	}
	if first.PriceValue() != 19.99 {
		t.Errorf("expected price 19.99, got %v", first.PriceValue())
	}
	if first.CategoryName() != "Clothes" {
		t.Errorf("expected category 'Clothes', got %s", first.CategoryName())
	}
	if len(first.Images) != 1 {
		t.Errorf("expected 1 image, got %d", len(first.Images))
	}

	// Missing optional fields stay absent, not zero
	second := products[1]
	if second.Price != nil {
		t.Errorf("expected absent price, got %v", *second.Price)
	}
	if second.Category != nil {
		t.Errorf("expected absent category, got %v", second.Category)
	}
	if second.Images != nil {
		t.Errorf("expected absent images, got %v", second.Images)
	}
}

func TestFetchAllServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestSource(server.URL).FetchAll(context.Background())
	if err == nil {
		t.Fatal("expected error for 503 response")
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %T: %v", err, err)
	}
	if httpErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", httpErr.StatusCode)
	}
	if Classify(err) != FailureServer {
		t.Errorf("expected FailureServer, got %v", Classify(err))
	}
}

func TestFetchAllClientError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestSource(server.URL).FetchAll(context.Background())
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if Classify(err) != FailureClient {
		t.Errorf("expected FailureClient, got %v", Classify(err))
	}
}

func TestFetchAllBadFormat(t *testing.T) {
	cases := map[string]string{
		"not json":    "definitely not json",
		"json object": `{"products": []}`,
		"json scalar": `42`,
		"json null":   `null`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(body))
			}))
			defer server.Close()

			_, err := newTestSource(server.URL).FetchAll(context.Background())
			if !errors.Is(err, ErrBadFormat) {
				t.Fatalf("expected ErrBadFormat, got %v", err)
			}
			if Classify(err) != FailureFormat {
				t.Errorf("expected FailureFormat, got %v", Classify(err))
			}
		})
	}
}

func TestFetchAllNetworkError(t *testing.T) {
	// Server closed before the request is made
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newTestSource(server.URL).FetchAll(context.Background())
	if err == nil {
		t.Fatal("expected error for unreachable server")
	}
	if Classify(err) != FailureNetwork {
		t.Errorf("expected FailureNetwork, got %v", Classify(err))
	}
}

func TestClassifyMessages(t *testing.T) {
	kinds := []FailureKind{FailureNetwork, FailureServer, FailureClient, FailureFormat}
	seen := make(map[string]bool)
	for _, k := range kinds {
		msg := k.Message()
		if msg == "" {
			t.Errorf("empty message for kind %v", k)
		}
		if seen[msg] {
			t.Errorf("duplicate message for kind %v: %q", k, msg)
		}
		seen[msg] = true
	}
}
