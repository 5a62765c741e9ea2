package ponsdict

// Extractor pulls translation texts out of a dictionary page.
type Extractor interface {
	// Extract parses HTML and returns one text per result container,
	// in document order, without filtering.
	// Returns ENOELEMENT if the page has no result container.
	Extract(html string) ([]string, error)
}
