// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"clause-scan/internal/config"
	"clause-scan/internal/core"
	"clause-scan/internal/extract"
	"clause-scan/internal/observability"
	"clause-scan/internal/parallel"
	"clause-scan/internal/version"

	"clause-scan/internal/formatters"
	csvformatter "clause-scan/internal/formatters/csv"
	jsonformatter "clause-scan/internal/formatters/json"
	textformatter "clause-scan/internal/formatters/text"

	"golang.org/x/term"
)

func init() {
	formatters.Register(textformatter.NewFormatter())
	formatters.Register(jsonformatter.NewFormatter())
	formatters.Register(csvformatter.NewFormatter())
}

// cliFlags holds parsed command line flag values
type cliFlags struct {
	inputFile       string
	configFile      string
	profileName     string
	outputFormat    string
	outputFile      string
	listProfiles    bool
	verbose         bool
	debug           bool
	noColor         bool
	quiet           bool
	showVersion     bool
	failOnReview    bool
	ocrUsed         bool
	ocrConfidence   float64
	acceptThreshold float64
	reviewThreshold float64
}

// isFlagSet reports whether a flag was explicitly provided on the command
// line, which is how flag values win over config file values.
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// loadConfiguration loads the configuration file or returns defaults
func loadConfiguration(configFile string) *config.File {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.Load("")
	}
	return cfg
}

// resolveOptions layers explicit command line flags over the config file
// resolution (built-in defaults, then file defaults, then profile).
func resolveOptions(cfg *config.File, flags cliFlags) (config.Options, error) {
	opts, err := cfg.Resolve(flags.profileName)
	if err != nil {
		return config.Options{}, err
	}

	if isFlagSet("ocr-used") {
		opts.OCRUsed = flags.ocrUsed
	}
	if isFlagSet("ocr-confidence") {
		opts.OCRConfidence = flags.ocrConfidence
	}
	if isFlagSet("accept-threshold") {
		opts.AcceptThreshold = flags.acceptThreshold
	}
	if isFlagSet("review-threshold") {
		opts.ReviewThreshold = flags.reviewThreshold
	}

	return opts, nil
}

func printProfiles(cfg *config.File) {
	if len(cfg.Profiles) == 0 {
		fmt.Println("No profiles defined.")
		return
	}
	names := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Available profiles:")
	for _, name := range names {
		p := cfg.Profiles[name]
		if p.Description != "" {
			fmt.Printf("  %s - %s\n", name, p.Description)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// collectInputFiles expands the -file argument into concrete file paths: a
// single file, a directory (non-recursive), or a glob pattern.
func collectInputFiles(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err == nil && !info.IsDir() {
		return []string{input}, nil
	}
	if err == nil && info.IsDir() {
		entries, err := os.ReadDir(input)
		if err != nil {
			return nil, fmt.Errorf("error reading directory: %w", err)
		}
		var files []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			files = append(files, filepath.Join(input, entry.Name()))
		}
		return files, nil
	}

	matches, err := filepath.Glob(input)
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match %s", input)
	}
	return matches, nil
}

// segmentBatch runs multiple files through the worker pool and prints each
// result under a filename header. It reports whether any file needs review.
func segmentBatch(files []string, opts config.Options, observer *observability.StandardObserver, flags cliFlags) (needsReview bool, failed bool) {
	pool := parallel.NewWorkerPool(runtime.NumCPU(), observer)
	pool.Start()

	go func() {
		for _, f := range files {
			pool.Submit(parallel.Job{FilePath: f, Options: opts})
		}
		pool.Close()
	}()

	results := make(map[string]parallel.Result, len(files))
	for result := range pool.Results() {
		results[result.FilePath] = result
	}

	// Emit in submission order regardless of completion order.
	for _, f := range files {
		result, ok := results[f]
		if !ok {
			continue
		}
		fmt.Printf("=== %s ===\n", f)
		if result.Error != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", result.Error)
			failed = true
			continue
		}
		output, err := formatters.Export(flags.outputFormat, result.Result, formatters.FormatterOptions{
			Verbose: flags.verbose,
			NoColor: flags.noColor,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
			continue
		}
		fmt.Print(output)
		if !strings.HasSuffix(output, "\n") {
			fmt.Println()
		}
		if result.Result.NeedsReview {
			needsReview = true
		}
	}
	return needsReview, failed
}

func main() {
	inputFile := flag.String("file", "", "Path to the input document, directory, or glob pattern (.txt, .md, .pdf)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	outputFormat := flag.String("format", "text", "Output format: text, json, csv")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	verbose := flag.Bool("verbose", false, "Display detailed information for each clause")
	debug := flag.Bool("debug", false, "Enable debug logging to show pipeline stage timings")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	quiet := flag.Bool("quiet", false, "Suppress progress output (useful for scripts and CI/CD)")
	showVersion := flag.Bool("version", false, "Show version information")
	failOnReview := flag.Bool("fail-on-review", false, "Exit with code 2 when the result requires human review")
	ocrUsed := flag.Bool("ocr-used", false, "Mark the input text as OCR-derived")
	ocrConfidence := flag.Float64("ocr-confidence", 1.0, "OCR confidence in [0,1] (only used with -ocr-used)")
	acceptThreshold := flag.Float64("accept-threshold", 0.75, "Minimum candidate score for an accepted boundary")
	reviewThreshold := flag.Float64("review-threshold", 0.4, "Boundary confidence below which a clause counts as low-confidence")

	flag.Parse()

	flags := cliFlags{
		inputFile:       *inputFile,
		configFile:      *configFile,
		profileName:     *profileName,
		outputFormat:    *outputFormat,
		outputFile:      *outputFile,
		listProfiles:    *listProfiles,
		verbose:         *verbose,
		debug:           *debug,
		noColor:         *noColor,
		quiet:           *quiet,
		showVersion:     *showVersion,
		failOnReview:    *failOnReview,
		ocrUsed:         *ocrUsed,
		ocrConfidence:   *ocrConfidence,
		acceptThreshold: *acceptThreshold,
		reviewThreshold: *reviewThreshold,
	}

	if flags.showVersion {
		fmt.Println(version.Info())
		return
	}

	// Auto-detect non-interactive environment
	if !isTerminal(os.Stdout) || flags.quiet || os.Getenv("CI") != "" {
		flags.noColor = true
	}

	cfg := loadConfiguration(flags.configFile)

	if flags.listProfiles {
		printProfiles(cfg)
		return
	}

	if flags.inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		flag.Usage()
		os.Exit(1)
	}

	opts, err := resolveOptions(cfg, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := observability.LevelOff
	if flags.debug {
		level = observability.LevelDebug
	}
	observer := observability.NewStandardObserver(level, os.Stderr)

	files, err := collectInputFiles(flags.inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(files) > 1 {
		needsReview, failed := segmentBatch(files, opts, observer, flags)
		if failed {
			os.Exit(1)
		}
		if flags.failOnReview && needsReview {
			os.Exit(2)
		}
		return
	}

	doc, err := extract.FromFile(files[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := core.NewSegmenter(observer).Segment(doc.Text, doc.Pages, opts)

	output, err := formatters.Export(flags.outputFormat, result, formatters.FormatterOptions{
		Verbose: flags.verbose,
		NoColor: flags.noColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flags.outputFile != "" {
		if err := os.WriteFile(flags.outputFile, []byte(output), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		if !flags.quiet {
			fmt.Printf("Results written to %s\n", flags.outputFile)
		}
	} else {
		fmt.Print(output)
	}

	if flags.failOnReview && result.NeedsReview {
		os.Exit(2)
	}
}
