package graph

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sword-zgz/deeplearning4j/internal/fileutil"
)

// FileName returns the dump file name for a result, e.g. "weights.1.f32".
func (r *Result) FileName() string {
	ext := "f32"
	if r.Ints != nil {
		ext = "i64"
	}
	return fmt.Sprintf("%s.%d.%s", r.Node, r.Fill, ext)
}

// WriteResults dumps every tensor into dir as raw little-endian elements and
// returns the paths written.
func WriteResults(dir string, results []Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	paths := make([]string, 0, len(results))
	for i := range results {
		res := &results[i]
		path := filepath.Join(dir, res.FileName())

		var err error
		if res.Ints != nil {
			err = fileutil.WriteTensor(path, res.Ints)
		} else {
			err = fileutil.WriteTensor(path, res.Floats)
		}
		if err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
