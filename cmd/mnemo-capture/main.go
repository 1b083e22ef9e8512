// Package main provides the mnemo-capture command, which records a
// problem/solution learning entry into a category file under a memory
// directory. It runs as an interactive form by default, or as a one-shot
// scripted capture with -quick.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mnemosh/mnemo/pkg/capture"
	"github.com/mnemosh/mnemo/pkg/config"
	"github.com/mnemosh/mnemo/pkg/learning"
	"github.com/mnemosh/mnemo/pkg/logging"
)

const version = "0.1.0"

// cliConfig holds the parsed command line flags.
type cliConfig struct {
	Quick       bool
	Category    string
	Title       string
	Problem     string
	Solution    string
	Context     string
	MemoryDir   string
	ShowVersion bool
}

func main() {
	cfg := parseFlags()

	if cfg.ShowVersion {
		fmt.Printf("mnemo-capture v%s\n", version)
		return
	}

	logger, logErr := logging.New("capture")
	if logErr != nil {
		logger.Warnf("file logging unavailable: %v", logErr)
	}
	defer logger.Close()

	if err := run(cfg, logger); err != nil {
		logger.Errorf("capture failed: %v", err)
		fmt.Fprintf(os.Stderr, "mnemo-capture: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses command line flags.
func parseFlags() *cliConfig {
	cfg := &cliConfig{}

	flag.BoolVar(&cfg.Quick, "quick", false, "Non-interactive capture for scripting")
	flag.StringVar(&cfg.Category, "category", "", "Learning category (unknown values fall back to general)")
	flag.StringVar(&cfg.Title, "title", "", "Short title for the entry")
	flag.StringVar(&cfg.Problem, "problem", "", "Description of the problem")
	flag.StringVar(&cfg.Solution, "solution", "", "Description of the solution")
	flag.StringVar(&cfg.Context, "context", "", "Optional context for when to apply the solution")
	flag.StringVar(&cfg.MemoryDir, "memory-dir", "", fmt.Sprintf("Memory directory (default: %s)", config.DefaultMemoryDir))
	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "mnemo-capture - record a learning entry\n\n")
		fmt.Fprintf(os.Stderr, "Usage: mnemo-capture [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCategories:\n")
		for _, c := range learning.Categories() {
			fmt.Fprintf(os.Stderr, "  %-12s -> %s\n", c, c.Filename())
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Interactive form\n")
		fmt.Fprintf(os.Stderr, "  mnemo-capture\n")
		fmt.Fprintf(os.Stderr, "\n  # Scripted capture\n")
		fmt.Fprintf(os.Stderr, "  mnemo-capture -quick \\\n")
		fmt.Fprintf(os.Stderr, "    -category debug \\\n")
		fmt.Fprintf(os.Stderr, "    -title \"Import error with local modules\" \\\n")
		fmt.Fprintf(os.Stderr, "    -problem \"Could not import local modules despite correct structure\" \\\n")
		fmt.Fprintf(os.Stderr, "    -solution \"Ran the package as a module from the repository root\"\n")
	}

	flag.Parse()
	return cfg
}

// run executes the capture in the requested mode.
func run(cfg *cliConfig, logger *logging.Logger) error {
	settings, err := config.Load("")
	if err != nil {
		return err
	}

	dir := cfg.MemoryDir
	if dir == "" {
		dir = settings.MemoryDir
	}

	if cfg.Quick {
		return runQuick(cfg, dir, logger)
	}
	return runInteractive(dir, logger)
}

// runQuick performs a one-shot capture from flags.
func runQuick(cfg *cliConfig, dir string, logger *logging.Logger) error {
	title := cfg.Title
	if title == "" {
		title = "Untitled"
	}

	category := learning.ParseCategory(cfg.Category)
	recorder := learning.NewRecorder(dir)
	path, err := recorder.Record(category, learning.Entry{
		Title:    title,
		Problem:  cfg.Problem,
		Solution: cfg.Solution,
		Context:  cfg.Context,
	})
	if err != nil {
		return err
	}

	logger.Infof("recorded %s entry %q at %s", category, title, path)
	fmt.Printf("Learning saved to: %s\n", path)
	return nil
}

// runInteractive collects the entry through the capture form.
func runInteractive(defaultDir string, logger *logging.Logger) error {
	form, err := capture.Run(defaultDir)
	if err != nil {
		return err
	}
	if form.Aborted() {
		logger.Infof("interactive capture aborted")
		fmt.Println("Aborted")
		return nil
	}

	recorder := learning.NewRecorder(form.MemoryDir)
	path, err := recorder.Record(form.Category, form.Entry)
	if err != nil {
		return err
	}

	logger.Infof("recorded %s entry %q at %s", form.Category, form.Entry.Title, path)
	fmt.Printf("Learning saved to: %s\n", path)
	fmt.Printf("Tip: reference %s in your project notes if the lesson is critical.\n", path)
	return nil
}
