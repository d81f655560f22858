package main

import (
	"fmt"

	"github.com/fwojciec/docpack/fs"
	"github.com/fwojciec/docpack/markdown"
)

// Run executes the render command. The progress lines are operator
// output, not a stable contract.
func (c *RenderCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Reading %s...\n", c.In)
	set, err := fs.ReadDocumentSet(c.In)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processing %d pages...\n", len(set.Pages))
	doc, err := deps.Renderer.Render(set)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Writing documentation to %s...\n", c.Out)
	if err := fs.WriteMarkdown(c.Out, doc); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Documentation generated successfully!\n")
	fmt.Fprintf(deps.Stdout, "Total characters: %d\n", len(doc))
	fmt.Fprintf(deps.Stdout, "Content digest: %s\n", markdown.ComputeHash(doc))
	fmt.Fprintf(deps.Stdout, "Output file: %s\n", c.Out)
	return nil
}
