// Package docpack provides an offline documentation extraction pipeline.
// It parses a directory of previously-downloaded HTML pages into a
// structured JSON document set, and renders that document set into a
// single consolidated Markdown file with a categorized table of contents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or mechanism (e.g., regexhtml/, goquery/,
// markdown/, fs/).
package docpack
