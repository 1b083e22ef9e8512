// Package config loads mnemo's shared settings. Settings live in an optional
// YAML file; when the file is absent every value falls back to the built-in
// defaults, so both commands work out of the box.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mnemosh/mnemo/pkg/audit"
)

// DefaultMemoryDir is the conventional memory directory under the current
// working directory.
const DefaultMemoryDir = ".mnemo/memory"

// Settings holds the tunables shared by mnemo-capture and mnemo-audit.
type Settings struct {
	// MemoryDir is the memory root both commands default to.
	MemoryDir string `yaml:"memory_dir"`

	// Patterns select which files the auditor treats as note files,
	// matched against slash-separated paths relative to MemoryDir.
	Patterns []string `yaml:"patterns"`

	Audit AuditSettings `yaml:"audit"`
}

// AuditSettings mirrors audit.Thresholds with YAML tags.
type AuditSettings struct {
	LargeBytes    int64 `yaml:"large_bytes"`
	StaleDays     int   `yaml:"stale_days"`
	TODOLimit     int   `yaml:"todo_limit"`
	OrganizeTotal int   `yaml:"organize_total"`
	OrganizeRoot  int   `yaml:"organize_root"`
}

// Thresholds converts the audit settings to the scanner's threshold type.
func (a AuditSettings) Thresholds() audit.Thresholds {
	return audit.Thresholds{
		LargeBytes:    a.LargeBytes,
		StaleDays:     a.StaleDays,
		TODOLimit:     a.TODOLimit,
		OrganizeTotal: a.OrganizeTotal,
		OrganizeRoot:  a.OrganizeRoot,
	}
}

// Default returns the built-in settings: the conventional memory directory
// and the standard audit thresholds.
func Default() Settings {
	t := audit.DefaultThresholds()
	return Settings{
		MemoryDir: DefaultMemoryDir,
		Patterns:  audit.DefaultPatterns(),
		Audit: AuditSettings{
			LargeBytes:    t.LargeBytes,
			StaleDays:     t.StaleDays,
			TODOLimit:     t.TODOLimit,
			OrganizeTotal: t.OrganizeTotal,
			OrganizeRoot:  t.OrganizeRoot,
		},
	}
}

// DefaultPath returns the conventional settings file location,
// ~/.mnemo/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".mnemo", "config.yaml"), nil
}

// Load reads settings from path, or from DefaultPath when path is empty.
// A missing file is not an error: the defaults are returned unchanged. File
// values are unmarshaled over the defaults, so a partial file only overrides
// the keys it names.
func Load(path string) (Settings, error) {
	settings := Default()

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return settings, err
		}
	}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &settings); err != nil {
		return settings, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return settings, nil
}
