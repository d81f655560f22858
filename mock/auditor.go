package mock

import "github.com/fwojciec/docpack"

// Ensure Auditor implements docpack.Auditor.
var _ docpack.Auditor = (*Auditor)(nil)

// Auditor is a mock implementation of docpack.Auditor.
type Auditor struct {
	AuditFn func(html string, page *docpack.Page) ([]docpack.Finding, error)
}

// Audit delegates to AuditFn.
func (a *Auditor) Audit(html string, page *docpack.Page) ([]docpack.Finding, error) {
	return a.AuditFn(html, page)
}
