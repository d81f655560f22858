package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/docpack"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Extractor docpack.Extractor
	Renderer  docpack.Renderer
	Auditor   docpack.Auditor

	// Now stamps the extraction time; tests swap it for a fixed clock.
	Now func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Extract ExtractCmd `cmd:"" help:"Parse downloaded HTML pages into a JSON document set"`
	Render  RenderCmd  `cmd:"" help:"Render a JSON document set into one Markdown document"`
	Audit   AuditCmd   `cmd:"" help:"Report where pattern extraction diverges from a DOM parse"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Dir     string `short:"d" default:"temp_docs" env:"DOCPACK_DIR" help:"Directory of downloaded HTML pages"`
	Out     string `short:"o" default:"docs-extracted.json" env:"DOCPACK_JSON" help:"Output JSON path"`
	BaseURL string `default:"https://hyperliquid.gitbook.io/hyperliquid-docs" env:"DOCPACK_BASE_URL" help:"Base URL the pages were downloaded from"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	In  string `short:"i" default:"docs-extracted.json" env:"DOCPACK_JSON" help:"Extracted JSON document set"`
	Out string `short:"o" default:"DOCUMENTATION.md" env:"DOCPACK_MD" help:"Output Markdown path"`
}

// AuditCmd is the "audit" subcommand.
type AuditCmd struct {
	Dir string `short:"d" default:"temp_docs" env:"DOCPACK_DIR" help:"Directory of downloaded HTML pages"`
}
