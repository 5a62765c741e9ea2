package ponsdict

import (
	"context"
	"strings"
	"unicode/utf8"
)

// MaxWordLength is the maximum number of characters in a lookup word.
const MaxWordLength = 50

// LookupRequest describes a single word lookup.
type LookupRequest struct {
	Word string
	Pair LanguagePair

	// All requests every candidate translation instead of only the first.
	All bool
}

// Validate returns an error if the word is not a valid payload.
// An empty word is valid; lookups short-circuit on it.
func (r *LookupRequest) Validate() error {
	if n := utf8.RuneCountInString(r.Word); n > MaxWordLength {
		return Errorf(EINVALID, "word is %d characters long, the limit is %d", n, MaxWordLength)
	}
	return nil
}

// ShortCircuit returns true if the lookup can be answered with the word
// itself, without a network call.
func (r *LookupRequest) ShortCircuit() bool {
	return strings.TrimSpace(r.Word) == "" || r.Pair.Same()
}

// LookupResult holds the translations found for a word, in page order.
type LookupResult struct {
	Word         string
	Translations []string
}

// Text returns the first translation, or an empty string if there is none.
func (r *LookupResult) Text() string {
	if r == nil || len(r.Translations) == 0 {
		return ""
	}
	return r.Translations[0]
}

// Dictionary looks up translations of words.
type Dictionary interface {
	// Lookup translates a single word.
	// Returns EINVALID for a bad payload, ERATELIMIT if the upstream
	// throttles, EREQUEST for any other non-success status, ENOELEMENT if
	// the page has no result container and ENOTFOUND if no candidate
	// survives filtering.
	Lookup(ctx context.Context, req LookupRequest) (*LookupResult, error)

	// LookupMany translates words sequentially in input order.
	// Returns EINVALID if words is empty. The first failure is returned
	// immediately and the remaining words are not looked up.
	LookupMany(ctx context.Context, words []string, pair LanguagePair, all bool) ([]*LookupResult, error)
}
