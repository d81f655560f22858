package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/docpack/cmd/docpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("extract then render end to end", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "index.html",
			`<html><head><title>Home | Hyperliquid Docs</title></head><body><p>Welcome</p></body></html>`)
		writeFile(t, dir, "trading_fees.html",
			`<html><head><title>Fees | Hyperliquid Docs</title></head><body>`+
				`<h1>Fees</h1><p>Fees are charged per fill.</p>`+
				`<pre><code class="language-python">get_fees()</code></pre>`+
				`</body></html>`)

		workDir := t.TempDir()
		jsonPath := filepath.Join(workDir, "docs.json")
		mdPath := filepath.Join(workDir, "DOCUMENTATION.md")

		m := main.NewMain()
		ctx := context.Background()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := m.Run(ctx, []string{
			"extract", "--dir", dir, "--out", jsonPath, "--base-url", baseURL,
		}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "JSON output created with 2 pages")

		err = m.Run(ctx, []string{
			"render", "--in", jsonPath, "--out", mdPath,
		}, stdout, stderr)
		require.NoError(t, err)

		data, err := os.ReadFile(mdPath)
		require.NoError(t, err)
		doc := string(data)

		assert.Contains(t, doc, "# Hyperliquid Complete Documentation")
		assert.Contains(t, doc, "## Trading")
		assert.Contains(t, doc, "### Fees")
		assert.Contains(t, doc, "```python\nget_fees()\n```")
		assert.Contains(t, doc, "**Source:** "+baseURL+"/trading/fees")
	})

	t.Run("no command prints usage and errors", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := m.Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help returns without error", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
	})

	t.Run("verbose extract logs to stderr", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "index.html",
			`<html><head><title>Home</title></head><body><p>Welcome</p></body></html>`)

		jsonPath := filepath.Join(t.TempDir(), "docs.json")

		m := main.NewMain()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := m.Run(context.Background(), []string{
			"-v", "extract", "--dir", dir, "--out", jsonPath, "--base-url", baseURL,
		}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "extract")
	})
}
