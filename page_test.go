package docpack_test

import (
	"testing"
	"time"

	"github.com/fwojciec/docpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentSet(t *testing.T) {
	t.Parallel()

	t.Run("totalPages tracks the page count", func(t *testing.T) {
		t.Parallel()

		pages := []*docpack.Page{
			{URL: "https://example.com/docs/a", Title: "A"},
			{URL: "https://example.com/docs/b", Title: "B"},
		}

		set := docpack.NewDocumentSet("https://example.com/docs", pages, time.Now())

		assert.Equal(t, 2, set.TotalPages)
		require.NoError(t, set.Validate())
	})

	t.Run("stamps extraction time as RFC3339 UTC", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

		set := docpack.NewDocumentSet("https://example.com/docs", nil, now)

		assert.Equal(t, "2025-01-15T10:30:00Z", set.ExtractedAt)
	})
}

func TestDocumentSet_Validate(t *testing.T) {
	t.Parallel()

	t.Run("rejects totalPages mismatch", func(t *testing.T) {
		t.Parallel()

		set := &docpack.DocumentSet{
			BaseURL:    "https://example.com/docs",
			Pages:      []*docpack.Page{{URL: "https://example.com/docs/a"}},
			TotalPages: 3,
		}

		err := set.Validate()

		require.Error(t, err)
		assert.Equal(t, docpack.EINVALID, docpack.ErrorCode(err))
	})

	t.Run("rejects missing base URL", func(t *testing.T) {
		t.Parallel()

		set := &docpack.DocumentSet{}

		err := set.Validate()

		require.Error(t, err)
		assert.Equal(t, docpack.EINVALID, docpack.ErrorCode(err))
	})
}

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	t.Run("rejects missing URL", func(t *testing.T) {
		t.Parallel()

		page := &docpack.Page{Title: "A"}

		err := page.Validate()

		require.Error(t, err)
		assert.Equal(t, docpack.EINVALID, docpack.ErrorCode(err))
	})

	t.Run("rejects out-of-range section level", func(t *testing.T) {
		t.Parallel()

		page := &docpack.Page{
			URL:      "https://example.com/docs/a",
			Sections: []docpack.Section{{Level: 7, Title: "Too deep"}},
		}

		err := page.Validate()

		require.Error(t, err)
		assert.Equal(t, docpack.EINVALID, docpack.ErrorCode(err))
	})

	t.Run("accepts a fully populated page", func(t *testing.T) {
		t.Parallel()

		page := &docpack.Page{
			URL:        "https://example.com/docs/a",
			Title:      "A",
			Sections:   []docpack.Section{{Level: 1, Title: "Intro"}},
			CodeBlocks: []docpack.CodeBlock{{Language: "go", Code: "fmt.Println()"}},
			Tables:     []docpack.Table{{Headers: []string{"k"}, Rows: [][]string{{"v"}}}},
		}

		require.NoError(t, page.Validate())
	})
}
