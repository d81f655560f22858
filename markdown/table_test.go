package markdown_test

import (
	"testing"

	"github.com/fwojciec/docpack/markdown"
	"github.com/stretchr/testify/assert"
)

func TestFormatTable(t *testing.T) {
	t.Parallel()

	t.Run("renders header, separator and left-justified rows", func(t *testing.T) {
		t.Parallel()

		got := markdown.FormatTable(
			[]string{"Tier", "Fee"},
			[][]string{
				{"0", "0.035%"},
				{"10", "0.030%"},
			},
		)

		want := "| Tier|Fee    |\n" +
			"| --|------ |\n" +
			"| 0 |0.035% |\n" +
			"| 10|0.030% |\n"
		assert.Equal(t, want, got)
	})

	t.Run("renders missing trailing cells as blank", func(t *testing.T) {
		t.Parallel()

		got := markdown.FormatTable(
			[]string{"A", "B"},
			[][]string{{"x"}},
		)

		want := "| A|B |\n" +
			"| -| |\n" +
			"| x| |\n"
		assert.Equal(t, want, got)
	})

	t.Run("drops cells beyond the header width", func(t *testing.T) {
		t.Parallel()

		got := markdown.FormatTable(
			[]string{"Only"},
			[][]string{{"a", "extra"}},
		)

		want := "| Only |\n" +
			"| - |\n" +
			"| a |\n"
		assert.Equal(t, want, got)
	})

	t.Run("returns empty string without headers or rows", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, markdown.FormatTable(nil, [][]string{{"x"}}))
		assert.Empty(t, markdown.FormatTable([]string{"A"}, nil))
	})
}
