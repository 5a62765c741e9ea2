// Package pons implements ponsdict.Dictionary against the PONS online
// dictionary. The URL template and the result markup selectors below are
// the only site-specific parts of the lookup.
package pons

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/jiaulislam/ponsdict"
	"github.com/jiaulislam/ponsdict/goquery"
)

// Site-specific configuration.
const (
	BaseURL        = "https://en.pons.com/translate/"
	ContainerTag   = "div"
	ContainerClass = "target"
	LinkTag        = "a"
)

// DefaultSelector locates translations in a PONS result page.
var DefaultSelector = goquery.Selector{
	Tag:   ContainerTag,
	Class: ContainerClass,
	Link:  LinkTag,
}

var _ ponsdict.Dictionary = (*Service)(nil)

// Service looks up words on PONS. It holds no per-call state and can be
// shared between callers.
type Service struct {
	Fetcher   ponsdict.Fetcher
	Extractor ponsdict.Extractor

	// BaseURL overrides the site URL. Defaults to BaseURL.
	BaseURL string
}

// NewService creates a Service that scrapes PONS through fetcher.
func NewService(fetcher ponsdict.Fetcher) *Service {
	return &Service{
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(DefaultSelector),
		BaseURL:   BaseURL,
	}
}

// URL builds the lookup URL for word, e.g.
// https://en.pons.com/translate/fr-en/cr%C3%A8me.
func (s *Service) URL(word string, pair ponsdict.LanguagePair) string {
	base := s.BaseURL
	if base == "" {
		base = BaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + pair.String() + "/" + url.PathEscape(word)
}

// Lookup translates a single word.
func (s *Service) Lookup(ctx context.Context, req ponsdict.LookupRequest) (*ponsdict.LookupResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := req.Pair.Validate(); err != nil {
		return nil, err
	}

	if req.ShortCircuit() {
		return &ponsdict.LookupResult{Word: req.Word, Translations: []string{req.Word}}, nil
	}

	u := s.URL(req.Word, req.Pair)
	doc, err := s.Fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u, err)
	}

	switch {
	case doc.StatusCode == http.StatusTooManyRequests:
		return nil, ponsdict.Errorf(ponsdict.ERATELIMIT, "too many requests while looking up %q at %s, try again later", req.Word, u)
	case doc.StatusCode != http.StatusOK:
		return nil, ponsdict.Errorf(ponsdict.EREQUEST, "request for %q to %s failed with HTTP %d", req.Word, u, doc.StatusCode)
	}

	texts, err := s.Extractor.Extract(doc.Body)
	if err != nil {
		if ponsdict.ErrorCode(err) == ponsdict.ENOELEMENT {
			return nil, ponsdict.Errorf(ponsdict.ENOELEMENT, "no result element found for %q", req.Word)
		}
		return nil, err
	}

	candidates := Candidates(texts)
	if len(candidates) == 0 {
		return nil, ponsdict.Errorf(ponsdict.ENOTFOUND, "no translation found for %q", req.Word)
	}

	if !req.All {
		candidates = candidates[:1]
	}
	return &ponsdict.LookupResult{Word: req.Word, Translations: candidates}, nil
}

// LookupMany translates words one after another, stopping at the first failure.
func (s *Service) LookupMany(ctx context.Context, words []string, pair ponsdict.LanguagePair, all bool) ([]*ponsdict.LookupResult, error) {
	if len(words) == 0 {
		return nil, ponsdict.Errorf(ponsdict.EINVALID, "at least one word is required")
	}

	results := make([]*ponsdict.LookupResult, 0, len(words))
	for _, word := range words {
		result, err := s.Lookup(ctx, ponsdict.LookupRequest{Word: word, Pair: pair, All: all})
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Candidates drops texts whose trimmed length is one character or less.
// Surviving texts are returned unchanged and in order.
func Candidates(texts []string) []string {
	var candidates []string
	for _, text := range texts {
		if utf8.RuneCountInString(strings.TrimSpace(text)) > 1 {
			candidates = append(candidates, text)
		}
	}
	return candidates
}
