package ponsdict

import "context"

// RawDocument is an HTTP response consumed by the extractor.
type RawDocument struct {
	URL        string
	StatusCode int
	Body       string
}

// Fetcher retrieves dictionary pages.
type Fetcher interface {
	// Fetch performs a single GET request and returns the response.
	// Non-success statuses are returned in the document, not as errors;
	// errors are reserved for transport failures.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*RawDocument, error)
}
