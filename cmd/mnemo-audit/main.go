// Package main provides the mnemo-audit command, which scans a memory
// directory of note files, prints a hygiene report and writes a JSON sidecar
// snapshot of the findings.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mnemosh/mnemo/pkg/audit"
	"github.com/mnemosh/mnemo/pkg/config"
	"github.com/mnemosh/mnemo/pkg/logging"
)

const version = "0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "mnemo-audit - audit memory note files for hygiene issues\n\n")
		fmt.Fprintf(os.Stderr, "Usage: mnemo-audit [options] [memory-dir]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nWhen memory-dir is omitted, %s under the current directory is used.\n", config.DefaultMemoryDir)
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("mnemo-audit v%s\n", version)
		return
	}

	logger, logErr := logging.New("audit")
	if logErr != nil {
		logger.Warnf("file logging unavailable: %v", logErr)
	}
	defer logger.Close()

	if err := run(flag.Arg(0), logger); err != nil {
		logger.Errorf("audit failed: %v", err)
		fmt.Fprintf(os.Stderr, "mnemo-audit: %v\n", err)
		os.Exit(1)
	}
}

// run scans the memory directory, prints the report and writes the sidecar.
func run(dir string, logger *logging.Logger) error {
	settings, err := config.Load("")
	if err != nil {
		return err
	}
	if dir == "" {
		dir = settings.MemoryDir
	}

	scanner, err := audit.NewScanner(settings.Audit.Thresholds(), settings.Patterns)
	if err != nil {
		return err
	}

	// Precondition failures (missing directory, empty corpus) surface here
	// with their sentinel messages; no partial output is produced.
	report, err := scanner.Scan(dir)
	if err != nil {
		return err
	}

	logger.Infof("audited %d files in %s (%d stale, %d large, %d redundant, %d organization)",
		report.Stats.TotalFiles, dir,
		len(report.StaleFiles), len(report.LargeFiles),
		len(report.RedundancyWarnings), len(report.OrganizationIssues))

	fmt.Print(audit.Render(report))

	path, err := report.WriteSidecar(dir)
	if err != nil {
		return err
	}
	fmt.Printf("\nDetailed report saved to: %s\n", path)
	return nil
}
