package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/docpack"
	"github.com/fwojciec/docpack/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	files, err := fs.ListHTML(c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Hint: docpack extract expects a directory of downloaded *.html files\n")
		return err
	}

	pages := make([]*docpack.Page, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}

		page, err := deps.Extractor.Extract(string(data))
		if err != nil {
			return err
		}
		page.URL = fs.PathToURL(c.BaseURL, file)

		pages = append(pages, page)
	}

	set := docpack.NewDocumentSet(c.BaseURL, pages, deps.Now())
	if err := fs.WriteDocumentSet(c.Out, set); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "JSON output created with %d pages\n", len(pages))
	return nil
}
