package mock

import "github.com/fwojciec/docpack"

// Ensure Extractor implements docpack.Extractor.
var _ docpack.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docpack.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docpack.Page, error)
}

// Extract delegates to ExtractFn.
func (e *Extractor) Extract(html string) (*docpack.Page, error) {
	return e.ExtractFn(html)
}
