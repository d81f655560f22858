package markdown

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash computes a hash of the rendered content using xxhash.
// It backs the digest line in operator output, making it easy to confirm
// two runs produced identical documents.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
