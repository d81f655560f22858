package regexhtml_test

import (
	"testing"

	"github.com/fwojciec/docpack/regexhtml"
	"github.com/stretchr/testify/assert"
)

func TestExtractText(t *testing.T) {
	t.Parallel()

	t.Run("joins text fragments with single spaces", func(t *testing.T) {
		t.Parallel()

		html := `<p>Hello</p><p>world</p>`

		assert.Equal(t, "Hello world", regexhtml.ExtractText(html))
	})

	t.Run("excludes script and style content", func(t *testing.T) {
		t.Parallel()

		html := `<head><script>var tracked = true;</script><style>.nav { display: none }</style></head><body><p>visible</p></body>`

		assert.Equal(t, "visible", regexhtml.ExtractText(html))
	})

	t.Run("decodes entities in text", func(t *testing.T) {
		t.Parallel()

		html := `<p>Fees &amp; Costs</p>`

		assert.Equal(t, "Fees & Costs", regexhtml.ExtractText(html))
	})

	t.Run("unclosed script suppresses the rest of the document", func(t *testing.T) {
		t.Parallel()

		// Flat flag tracking, not a recovery parser: once a script
		// element never closes, everything after it reads as script.
		html := `<p>kept</p><script>var leak = 1;`

		assert.Equal(t, "kept", regexhtml.ExtractText(html))
	})

	t.Run("returns empty string for markup-only input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, regexhtml.ExtractText(`<div><img src="x.png"/></div>`))
	})
}
