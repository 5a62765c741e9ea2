// Package goquery implements ponsdict.Extractor using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jiaulislam/ponsdict"
)

var _ ponsdict.Extractor = (*Extractor)(nil)

// Selector describes where translations live in a dictionary page.
type Selector struct {
	// Tag and Class identify one result container, e.g. div.target.
	Tag   string
	Class string

	// Link is the tag of the nested elements whose text is the translation.
	Link string
}

// CSS returns the container selector, e.g. "div.target".
func (s Selector) CSS() string {
	if s.Class == "" {
		return s.Tag
	}
	return s.Tag + "." + s.Class
}

// Extractor extracts translation texts from result containers.
type Extractor struct {
	selector Selector
}

// NewExtractor creates a new Extractor for the given selector.
func NewExtractor(selector Selector) *Extractor {
	return &Extractor{selector: selector}
}

// Extract returns one text per container, built from the text of every
// nested link element followed by a single space.
func (e *Extractor) Extract(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ponsdict.Errorf(ponsdict.EINVALID, "failed to parse HTML: %v", err)
	}

	containers := doc.Find(e.selector.CSS())
	if containers.Length() == 0 {
		return nil, ponsdict.Errorf(ponsdict.ENOELEMENT, "no %q element found", e.selector.CSS())
	}

	texts := make([]string, 0, containers.Length())
	containers.Each(func(_ int, container *goquery.Selection) {
		var b strings.Builder
		container.Find(e.selector.Link).Each(func(_ int, link *goquery.Selection) {
			b.WriteString(link.Text())
			b.WriteByte(' ')
		})
		texts = append(texts, b.String())
	})

	return texts, nil
}
