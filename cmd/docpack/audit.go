package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/docpack"
	"github.com/fwojciec/docpack/fs"
)

// Run executes the audit command. It re-extracts every page and reports
// where the pattern extractor's counts diverge from a DOM parse of the
// same file. Read-only: extraction output is never changed.
func (c *AuditCmd) Run(deps *Dependencies) error {
	files, err := fs.ListHTML(c.Dir)
	if err != nil {
		return err
	}

	clean := 0
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}

		page, err := deps.Extractor.Extract(string(data))
		if err != nil {
			return err
		}

		findings, err := deps.Auditor.Audit(string(data), page)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "%s: %s\n", filepath.Base(file), docpack.ErrorMessage(err))
			continue
		}

		if len(findings) == 0 {
			clean++
			continue
		}
		for _, f := range findings {
			fmt.Fprintf(deps.Stdout, "%s: %s: extracted %d, parsed %d\n",
				filepath.Base(file), f.Field, f.Extracted, f.Parsed)
		}
	}

	fmt.Fprintf(deps.Stdout, "%d/%d files extracted without divergence\n", clean, len(files))
	return nil
}
