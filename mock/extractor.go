package mock

import "github.com/jiaulislam/ponsdict"

var _ ponsdict.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of ponsdict.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]string, error)
}

func (e *Extractor) Extract(html string) ([]string, error) {
	return e.ExtractFn(html)
}
