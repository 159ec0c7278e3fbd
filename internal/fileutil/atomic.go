// Package fileutil writes tensor dumps to disk.
package fileutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Sword-zgz/deeplearning4j/internal/statistics"
)

// WriteAtomic streams write's output into a temporary file next to filename,
// syncs it and renames it into place. Readers see either no file or the
// complete file, never a partial dump.
func WriteAtomic(filename string, perm os.FileMode, write func(w io.Writer) error) error {
	// Same directory keeps the rename on one filesystem.
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmpFile, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	bw := bufio.NewWriter(tmpFile)
	if err := write(bw); err != nil {
		return fmt.Errorf("failed to write %s: %w", base, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// WriteTensor dumps values as packed little-endian elements.
func WriteTensor[T statistics.Number](filename string, values []T) error {
	return WriteAtomic(filename, 0o644, func(w io.Writer) error {
		var buf [8]byte
		for _, v := range values {
			n := statistics.PutLittleEndian(buf[:], v)
			if _, err := w.Write(buf[:n]); err != nil {
				return err
			}
		}
		return nil
	})
}
