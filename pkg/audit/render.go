package audit

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Render formats the report for terminal output. The statistics block is
// always shown; each issue section appears only when non-empty, and a single
// all-clear line replaces them when nothing was flagged.
func Render(r *Report) string {
	var b strings.Builder
	divider := strings.Repeat("=", 60)

	b.WriteString(divider + "\n")
	b.WriteString(titleStyle.Render("MEMORY AUDIT REPORT") + "\n")
	b.WriteString(divider + "\n")

	b.WriteString("\n" + sectionStyle.Render("Statistics:") + "\n")
	fmt.Fprintf(&b, "  - Total files: %d\n", r.Stats.TotalFiles)
	fmt.Fprintf(&b, "  - Total size: %.1f KB\n", r.Stats.TotalSizeKB)
	fmt.Fprintf(&b, "  - Average file size: %.1f KB\n", r.Stats.AvgFileSizeKB)

	if len(r.StaleFiles) > 0 {
		fmt.Fprintf(&b, "\n%s\n", sectionStyle.Render(fmt.Sprintf("Stale Files (%d):", len(r.StaleFiles))))
		for _, item := range r.StaleFiles {
			fmt.Fprintf(&b, "  - %s\n", warnStyle.Render(item.File))
			fmt.Fprintf(&b, "    %s\n", detailStyle.Render(
				fmt.Sprintf("Last modified: %s (%d days ago)", item.LastModified, item.AgeDays)))
		}
	}

	if len(r.LargeFiles) > 0 {
		fmt.Fprintf(&b, "\n%s\n", sectionStyle.Render(fmt.Sprintf("Large Files (%d):", len(r.LargeFiles))))
		for _, item := range r.LargeFiles {
			fmt.Fprintf(&b, "  - %s %s\n", warnStyle.Render(item.File),
				detailStyle.Render(fmt.Sprintf("(%.1f KB)", item.SizeKB)))
		}
	}

	if len(r.RedundancyWarnings) > 0 {
		fmt.Fprintf(&b, "\n%s\n", sectionStyle.Render(fmt.Sprintf("Redundancy Warnings (%d):", len(r.RedundancyWarnings))))
		for _, item := range r.RedundancyWarnings {
			fmt.Fprintf(&b, "  - %s: %s\n", warnStyle.Render(item.File), item.Issue)
		}
	}

	if len(r.OrganizationIssues) > 0 {
		fmt.Fprintf(&b, "\n%s\n", sectionStyle.Render("Organization Issues:"))
		for _, issue := range r.OrganizationIssues {
			fmt.Fprintf(&b, "  - %s\n", issue)
		}
	}

	if !r.HasIssues() {
		b.WriteString("\n" + okStyle.Render("No issues found. Memory is in good shape.") + "\n")
	}

	b.WriteString("\n" + divider + "\n")
	return b.String()
}
