package mock

import "github.com/fwojciec/docpack"

// Ensure Renderer implements docpack.Renderer.
var _ docpack.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docpack.Renderer.
type Renderer struct {
	RenderFn func(set *docpack.DocumentSet) (string, error)
}

// Render delegates to RenderFn.
func (r *Renderer) Render(set *docpack.DocumentSet) (string, error) {
	return r.RenderFn(set)
}
