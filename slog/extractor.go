// Package slog provides logging decorators for docpack interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docpack"
)

// Ensure LoggingExtractor implements docpack.Extractor.
var _ docpack.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   docpack.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docpack.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the input size, extraction counts and duration, then
// delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(html string) (page *docpack.Page, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		}
		if page != nil {
			attrs = append(attrs,
				"title", page.Title,
				"sections", len(page.Sections),
				"codeBlocks", len(page.CodeBlocks),
				"tables", len(page.Tables),
			)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
