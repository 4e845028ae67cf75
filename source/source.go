// Package source is the file-system collaborator of the scan: it expands
// glob patterns into ordered file sets and opens files with transparent
// decompression.
package source

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/mohorko/zeeklog/core"
)

var ErrNoMatches = errors.New("no files match pattern")

// Resolve expands a glob pattern into a deduplicated, lexicographically
// sorted list of paths. An empty match set is an error: a scan over nothing
// is a structural failure, not an empty result.
func Resolve(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expand glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatches, pattern)
	}

	seen := make(map[string]struct{}, len(matches))
	files := make([]string, 0, len(matches))
	for _, match := range matches {
		if _, ok := seen[match]; ok {
			continue
		}
		seen[match] = struct{}{}
		files = append(files, match)
	}
	sort.Strings(files)

	return files, nil
}

var _ core.Opener = (*FS)(nil)

// FS opens files from the local file system, auto-detecting compression.
type FS struct{}

func NewFS() *FS {
	return &FS{}
}

func (*FS) Open(path string) (io.ReadCloser, error) {
	return OpenFile(path)
}
