// Package scaffold writes config artifacts into the project directory. A file
// that already exists is never touched: no merge, no diff, no backup.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// Result says what Ensure did with the target file.
type Result int

const (
	Created Result = iota + 1
	Skipped
	WouldCreate
)

// Writer creates files unless they already exist.
type Writer struct {
	dir    string
	dryRun bool
}

// NewWriter returns a Writer rooted at dir. With dryRun set, Ensure reports
// what it would do without writing anything.
func NewWriter(dir string, dryRun bool) *Writer {
	return &Writer{dir: dir, dryRun: dryRun}
}

// Ensure writes content to name inside the writer's directory, unless the file
// is already there. Existing files are left byte-for-byte unchanged.
func (w *Writer) Ensure(name string, content string) (Result, error) {
	path := filepath.Join(w.dir, name)

	if _, err := os.Stat(path); err == nil {
		return Skipped, nil
	} else if !os.IsNotExist(err) {
		return 0, fmt.Errorf("checking %s: %w", name, err)
	}

	if w.dryRun {
		return WouldCreate, nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", name, err)
	}
	return Created, nil
}
