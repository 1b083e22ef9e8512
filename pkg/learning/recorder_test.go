package learning

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestRecordCreatesFileWithHeader(t *testing.T) {
	root := t.TempDir()
	clock := fixedClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	for _, category := range Categories() {
		t.Run(string(category), func(t *testing.T) {
			recorder := NewRecorder(root).WithClock(clock)
			path, err := recorder.Record(category, Entry{
				Title:    "First lesson",
				Problem:  "Something broke",
				Solution: "Fixed it",
			})
			if err != nil {
				t.Fatalf("Record failed: %v", err)
			}

			want := filepath.Join(root, LearningsDirName, category.Filename())
			if path != want {
				t.Errorf("Record returned %q, want %q", path, want)
			}

			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}
			text := string(content)

			headerLine := "# " + category.DisplayName() + " Learnings"
			if got := strings.Count(text, headerLine); got != 1 {
				t.Errorf("header appears %d times, want 1", got)
			}
			if got := strings.Count(text, "## First lesson"); got != 1 {
				t.Errorf("entry heading appears %d times, want 1", got)
			}
			if !strings.Contains(text, "**Date:** 2026-03-14") {
				t.Errorf("entry missing capture date:\n%s", text)
			}
			if strings.Index(text, headerLine) > strings.Index(text, "## First lesson") {
				t.Error("header must precede the first entry")
			}
		})
	}
}

func TestRecordAppendsInOrder(t *testing.T) {
	root := t.TempDir()
	recorder := NewRecorder(root).WithClock(fixedClock(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)))

	titles := []string{"first", "second", "third", "fourth"}
	for _, title := range titles {
		if _, err := recorder.Record(CategoryDebug, Entry{Title: title}); err != nil {
			t.Fatalf("Record(%q) failed: %v", title, err)
		}
	}

	content, err := os.ReadFile(filepath.Join(root, LearningsDirName, CategoryDebug.Filename()))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	text := string(content)

	if got := strings.Count(text, "# Debug Learnings"); got != 1 {
		t.Errorf("header appears %d times, want 1", got)
	}
	if got := strings.Count(text, "## "); got != len(titles) {
		t.Errorf("found %d entry blocks, want %d", got, len(titles))
	}

	last := -1
	for _, title := range titles {
		idx := strings.Index(text, "## "+title)
		if idx < 0 {
			t.Fatalf("entry %q not found", title)
		}
		if idx < last {
			t.Errorf("entry %q out of insertion order", title)
		}
		last = idx
	}
}

func TestRecordUnknownCategoryRoutesToGeneral(t *testing.T) {
	root := t.TempDir()
	recorder := NewRecorder(root)

	path, err := recorder.Record(ParseCategory("oops"), Entry{Title: "misfiled"})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if filepath.Base(path) != "general_learnings.md" {
		t.Errorf("unknown category wrote to %q, want general_learnings.md", filepath.Base(path))
	}

	entries, err := os.ReadDir(filepath.Join(root, LearningsDirName))
	if err != nil {
		t.Fatalf("read learnings dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected a single file, got %d", len(entries))
	}
}

func TestRecordAcceptsEmptyFields(t *testing.T) {
	root := t.TempDir()
	recorder := NewRecorder(root)

	path, err := recorder.Record(CategoryGeneral, Entry{})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "**Problem:**\n\n") {
		t.Error("empty problem should be written verbatim")
	}
	if strings.Contains(text, "**Context/When to Apply:**") {
		t.Error("context section must be omitted when empty")
	}
}

func TestEntryMarkdownContext(t *testing.T) {
	date := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	with := Entry{Title: "t", Date: date, Problem: "p", Solution: "s", Context: "only on CI"}
	if !strings.Contains(with.Markdown(), "**Context/When to Apply:**\nonly on CI\n") {
		t.Errorf("context section missing:\n%s", with.Markdown())
	}

	without := Entry{Title: "t", Date: date, Problem: "p", Solution: "s"}
	if strings.Contains(without.Markdown(), "Context") {
		t.Errorf("unexpected context section:\n%s", without.Markdown())
	}
	if !strings.HasSuffix(without.Markdown(), "\n---\n\n") {
		t.Errorf("entry must end with separator:\n%q", without.Markdown())
	}
}
