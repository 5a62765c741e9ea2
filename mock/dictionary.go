package mock

import (
	"context"

	"github.com/jiaulislam/ponsdict"
)

var _ ponsdict.Dictionary = (*Dictionary)(nil)

// Dictionary is a mock implementation of ponsdict.Dictionary.
type Dictionary struct {
	LookupFn     func(ctx context.Context, req ponsdict.LookupRequest) (*ponsdict.LookupResult, error)
	LookupManyFn func(ctx context.Context, words []string, pair ponsdict.LanguagePair, all bool) ([]*ponsdict.LookupResult, error)
}

func (d *Dictionary) Lookup(ctx context.Context, req ponsdict.LookupRequest) (*ponsdict.LookupResult, error) {
	return d.LookupFn(ctx, req)
}

func (d *Dictionary) LookupMany(ctx context.Context, words []string, pair ponsdict.LanguagePair, all bool) ([]*ponsdict.LookupResult, error) {
	return d.LookupManyFn(ctx, words, pair, all)
}
