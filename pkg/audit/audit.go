// Package audit scans a memory directory of note files and classifies them
// into hygiene buckets (stale, oversized, redundant), producing a
// human-readable report and a JSON sidecar snapshot. Scans are read-only and
// fully recomputed on every run.
package audit

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"
)

var ErrMissingDir = errors.New("audit: memory directory not found")
var ErrNoFiles = errors.New("audit: no note files found")

// redundancyAdvice is the fixed advisory attached to files with too many
// TODO markers. The TODO count is a crude proxy for "needs consolidation",
// not a semantic check.
const redundancyAdvice = "Contains many TODO items (consider consolidating)"

// Thresholds are the classification cutoffs. All comparisons are strict:
// a file sitting exactly at a threshold is not flagged.
type Thresholds struct {
	LargeBytes    int64 // Flag files larger than this many bytes
	StaleDays     int   // Flag files not modified for more than this many days
	TODOLimit     int   // Flag files containing more than this many TODO markers
	OrganizeTotal int   // Organization advisory requires more than this many files in total
	OrganizeRoot  int   // ...and more than this many note files directly in the root
}

// DefaultThresholds returns the standard cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LargeBytes:    50000,
		StaleDays:     60,
		TODOLimit:     5,
		OrganizeTotal: 10,
		OrganizeRoot:  3,
	}
}

// Scanner walks a memory directory and builds an audit Report. It never
// mutates the files it scans.
type Scanner struct {
	thresholds Thresholds
	patterns   []glob.Glob
	now        func() time.Time
}

// DefaultPatterns matches the conventional note file extension anywhere
// under the memory directory.
func DefaultPatterns() []string {
	return []string{"**.md"}
}

// NewScanner compiles the discovery patterns and returns a scanner. Patterns
// are matched against slash-separated paths relative to the memory
// directory; an empty pattern list falls back to DefaultPatterns.
func NewScanner(t Thresholds, patterns []string) (*Scanner, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns()
	}
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("audit: invalid pattern %q: %w", p, err)
		}
		compiled = append(compiled, g)
	}
	return &Scanner{
		thresholds: t,
		patterns:   compiled,
		now:        time.Now,
	}, nil
}

// WithClock overrides the clock used for staleness checks. Intended for tests.
func (s *Scanner) WithClock(now func() time.Time) *Scanner {
	s.now = now
	return s
}

// noteFile is one discovered note file with the metadata the checks need.
type noteFile struct {
	rel     string // Slash-separated path relative to the memory directory
	abs     string
	size    int64
	modTime time.Time
}

// Scan audits every note file under dir. It returns ErrMissingDir if the
// directory does not exist and ErrNoFiles if discovery comes up empty; in
// both cases no report is produced.
func (s *Scanner) Scan(dir string) (*Report, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingDir, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("audit: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrMissingDir, dir)
	}

	files, err := s.discover(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFiles, dir)
	}

	report := NewReport()
	now := s.now()

	var totalSize int64
	rootFiles := 0
	for _, f := range files {
		totalSize += f.size
		if !strings.Contains(f.rel, "/") {
			rootFiles++
		}

		if f.size > s.thresholds.LargeBytes {
			report.LargeFiles = append(report.LargeFiles, LargeFile{
				File:   f.rel,
				Size:   f.size,
				SizeKB: roundKB(f.size),
			})
		}

		ageDays := int(now.Sub(f.modTime).Hours() / 24)
		if ageDays > s.thresholds.StaleDays {
			report.StaleFiles = append(report.StaleFiles, StaleFile{
				File:         f.rel,
				LastModified: f.modTime.Format("2006-01-02"),
				AgeDays:      ageDays,
			})
		}

		content, err := os.ReadFile(f.abs)
		if err != nil {
			return nil, fmt.Errorf("audit: read %s: %w", f.abs, err)
		}
		if strings.Count(string(content), "TODO") > s.thresholds.TODOLimit {
			report.RedundancyWarnings = append(report.RedundancyWarnings, RedundancyWarning{
				File:  f.rel,
				Issue: redundancyAdvice,
			})
		}
	}

	if len(files) > s.thresholds.OrganizeTotal && rootFiles > s.thresholds.OrganizeRoot {
		report.OrganizationIssues = append(report.OrganizationIssues, fmt.Sprintf(
			"Many files (%d) in root directory - consider organizing into subdirectories",
			rootFiles,
		))
	}

	report.Stats = Stats{
		TotalFiles:    len(files),
		TotalSizeKB:   roundKB(totalSize),
		AvgFileSizeKB: math.Round(float64(totalSize)/float64(len(files))/1024*10) / 10,
	}
	return report, nil
}

// discover enumerates every file under dir whose relative path matches one
// of the scanner's patterns.
func (s *Scanner) discover(dir string) ([]noteFile, error) {
	var files []noteFile
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !s.matches(rel) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, noteFile{
			rel:     rel,
			abs:     path,
			size:    info.Size(),
			modTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("audit: walk %s: %w", dir, err)
	}
	return files, nil
}

func (s *Scanner) matches(rel string) bool {
	for _, g := range s.patterns {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// roundKB converts a byte count to kilobytes rounded to one decimal place.
func roundKB(bytes int64) float64 {
	return math.Round(float64(bytes)/1024*10) / 10
}
