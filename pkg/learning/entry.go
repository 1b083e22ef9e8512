package learning

import (
	"fmt"
	"strings"
	"time"
)

// Entry is a single problem/solution record. Entries are append-only: once
// written to a category file they are never mutated or deleted, and duplicate
// titles are allowed.
type Entry struct {
	Title    string    // Short heading for the entry
	Date     time.Time // Capture date; stamped by the Recorder when zero
	Problem  string    // What went wrong (may be empty)
	Solution string    // What finally worked (may be empty)
	Context  string    // Optional: when to apply the solution
}

// Markdown renders the entry block that gets appended to a category file,
// including the trailing separator. Field content is written verbatim.
func (e Entry) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", e.Title)
	fmt.Fprintf(&b, "**Date:** %s\n\n", e.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "**Problem:**\n%s\n\n", e.Problem)
	fmt.Fprintf(&b, "**Solution:**\n%s\n", e.Solution)
	if e.Context != "" {
		fmt.Fprintf(&b, "\n**Context/When to Apply:**\n%s\n", e.Context)
	}
	b.WriteString("\n---\n\n")
	return b.String()
}

// header returns the block written when a category file is first created.
func header(c Category) string {
	return fmt.Sprintf(`# %s Learnings

Solutions to problems encountered in past sessions.

**Purpose:** Prevent repeating the same mistakes and struggling with known issues.

**Format:** Each entry includes the problem, solution, and context for when to apply it.

---

`, c.DisplayName())
}
