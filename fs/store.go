// Package fs provides the file-system boundary of the pipeline: listing
// downloaded HTML pages, persisting the extracted document set as JSON,
// and writing the rendered Markdown document.
package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docpack"
)

// ListHTML returns the paths of the *.html files directly inside dir.
// os.ReadDir yields entries sorted by name, so extraction order is
// deterministic across runs.
func ListHTML(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// PathToURL reconstructs a page URL from a downloaded file's name.
// Underscores in the name encode path separators, and "index" maps to
// the base URL itself. The mapping is lossy: an underscore that was part
// of an original path segment is indistinguishable from a separator.
func PathToURL(baseURL, path string) string {
	name := strings.TrimSuffix(filepath.Base(path), ".html")
	if name == "index" {
		return baseURL
	}
	return baseURL + "/" + strings.ReplaceAll(name, "_", "/")
}

// WriteDocumentSet serializes the set as 2-space-indented JSON.
func WriteDocumentSet(path string, set *docpack.DocumentSet) error {
	if err := set.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadDocumentSet loads a document set previously written by
// WriteDocumentSet.
func ReadDocumentSet(path string) (*docpack.DocumentSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var set docpack.DocumentSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, docpack.Errorf(docpack.EINVALID, "malformed document set %q: %v", path, err)
	}
	return &set, nil
}

// WriteMarkdown writes the rendered document to path.
func WriteMarkdown(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
