package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docpack/goquery"
	"github.com/fwojciec/docpack/markdown"
	"github.com/fwojciec/docpack/regexhtml"
	docpackslog "github.com/fwojciec/docpack/slog"
	"github.com/joho/godotenv"
)

func main() {
	// Flag defaults can come from the environment; a .env file in the
	// working directory feeds it when present.
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Extractor: regexhtml.NewExtractor(),
		Renderer:  markdown.NewRenderer(),
		Auditor:   goquery.NewAuditor(),
		Now:       time.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docpack"),
		kong.Description("Offline documentation extraction pipeline: HTML pages to JSON to one Markdown document."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docpack --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		deps.Extractor = docpackslog.NewLoggingExtractor(deps.Extractor, logger)
	}

	return kongCtx.Run(deps)
}
