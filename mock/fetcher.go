package mock

import (
	"context"

	"github.com/jiaulislam/ponsdict"
)

var _ ponsdict.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of ponsdict.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*ponsdict.RawDocument, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*ponsdict.RawDocument, error) {
	return f.FetchFn(ctx, url)
}
