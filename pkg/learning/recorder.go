package learning

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LearningsDirName is the subdirectory of the memory root that holds the
// category files.
const LearningsDirName = "learnings"

// Recorder appends learning entries to category files under a memory
// directory. The directory and the per-category files are created lazily on
// first use; existing files are only ever appended to.
type Recorder struct {
	root string
	now  func() time.Time
}

// NewRecorder creates a recorder rooted at the given memory directory.
func NewRecorder(root string) *Recorder {
	return &Recorder{root: root, now: time.Now}
}

// WithClock overrides the clock used to stamp entries. Intended for tests.
func (r *Recorder) WithClock(now func() time.Time) *Recorder {
	r.now = now
	return r
}

// Record appends the entry to the category's note file, writing the file
// header first if the file does not exist yet. It returns the path written.
//
// The header (when needed) and the entry are flushed as a single O_APPEND
// write, so concurrent captures into the same file cannot interleave inside
// an entry.
func (r *Recorder) Record(category Category, e Entry) (string, error) {
	dir := filepath.Join(r.root, LearningsDirName)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("learning: init directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, category.Filename())

	if e.Date.IsZero() {
		e.Date = r.now()
	}

	var block []byte
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		block = append(block, header(category)...)
	} else if err != nil {
		return "", fmt.Errorf("learning: stat %s: %w", path, err)
	}
	block = append(block, e.Markdown()...)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return "", fmt.Errorf("learning: open %s: %w", path, err)
	}
	if _, err := f.Write(block); err != nil {
		f.Close()
		return "", fmt.Errorf("learning: append to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("learning: close %s: %w", path, err)
	}
	return path, nil
}
