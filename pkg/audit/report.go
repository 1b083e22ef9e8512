package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SidecarName is the report snapshot written into the memory directory after
// every audit run. It is fully overwritten each time.
const SidecarName = ".audit_report.json"

// StaleFile flags a note file that has not been modified recently.
type StaleFile struct {
	File         string `json:"file"`
	LastModified string `json:"last_modified"`
	AgeDays      int    `json:"age_days"`
}

// LargeFile flags a note file over the size threshold.
type LargeFile struct {
	File   string  `json:"file"`
	Size   int64   `json:"size"`
	SizeKB float64 `json:"size_kb"`
}

// RedundancyWarning flags a note file that looks like it needs consolidating.
type RedundancyWarning struct {
	File  string `json:"file"`
	Issue string `json:"issue"`
}

// Stats aggregates the whole corpus.
type Stats struct {
	TotalFiles    int     `json:"total_files"`
	TotalSizeKB   float64 `json:"total_size_kb"`
	AvgFileSizeKB float64 `json:"avg_file_size_kb"`
}

// Report is the complete audit snapshot. It has no identity of its own: each
// run recomputes it from scratch and overwrites the previous sidecar.
type Report struct {
	StaleFiles         []StaleFile         `json:"stale_files"`
	LargeFiles         []LargeFile         `json:"large_files"`
	RedundancyWarnings []RedundancyWarning `json:"redundancy_warnings"`
	OrganizationIssues []string            `json:"organization_issues"`
	Stats              Stats               `json:"stats"`
}

// NewReport returns a report with all issue lists initialized, so empty
// lists marshal as [] rather than null and the sidecar round-trips exactly.
func NewReport() *Report {
	return &Report{
		StaleFiles:         []StaleFile{},
		LargeFiles:         []LargeFile{},
		RedundancyWarnings: []RedundancyWarning{},
		OrganizationIssues: []string{},
	}
}

// HasIssues reports whether any issue bucket is non-empty.
func (r *Report) HasIssues() bool {
	return len(r.StaleFiles) > 0 ||
		len(r.LargeFiles) > 0 ||
		len(r.RedundancyWarnings) > 0 ||
		len(r.OrganizationIssues) > 0
}

// WriteSidecar writes the report as JSON into the memory directory,
// replacing any previous sidecar. The write goes through a temporary file
// and rename so a crashed run never leaves a truncated sidecar behind. It
// returns the path written.
func (r *Report) WriteSidecar(dir string) (string, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("audit: marshal report: %w", err)
	}
	path := filepath.Join(dir, SidecarName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", fmt.Errorf("audit: write temp sidecar: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("audit: rename sidecar %s: %w", path, err)
	}
	return path, nil
}

// ReadSidecar loads the most recent report snapshot from the memory
// directory.
func ReadSidecar(dir string) (*Report, error) {
	path := filepath.Join(dir, SidecarName)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("audit: read sidecar %s: %w", path, err)
	}
	var r Report
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("audit: parse sidecar %s: %w", path, err)
	}
	return &r, nil
}
