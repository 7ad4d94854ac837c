// cgen is a C code generator that parses Go type definitions and
// writes matching C headers and sources.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"cgen/internal/config"
	"cgen/internal/generator"
	"cgen/internal/parser"
)

var (
	inputFile  string
	configFile string
	outputDir  string
	baseName   string
	guard      string
	static     bool
	typedefs   bool
	toStdout   bool
	types      string
	exclude    string
	verbose    bool
	showHelp   bool
)

var (
	infoColor = color.New(color.FgCyan)
	warnColor = color.New(color.FgYellow)
)

func init() {
	flag.StringVar(&inputFile, "input", "", "Input Go source file (required)")
	flag.StringVar(&inputFile, "i", "", "Input Go source file (shorthand)")

	flag.StringVar(&configFile, "config", "", "Config file (YAML/JSON/TOML)")
	flag.StringVar(&configFile, "c", "", "Config file (shorthand)")

	flag.StringVar(&outputDir, "output", "", "Output directory (default: current directory)")
	flag.StringVar(&outputDir, "o", "", "Output directory (shorthand)")

	flag.StringVar(&baseName, "name", "", "Base name of the generated files (default: input file name)")
	flag.StringVar(&baseName, "n", "", "Base name (shorthand)")

	flag.StringVar(&guard, "guard", "", "Include guard macro (default: derived from the header name)")
	flag.BoolVar(&static, "static", false, "Make generated helpers static")
	flag.BoolVar(&typedefs, "typedefs", false, "Emit typedefs for structs and enums")
	flag.BoolVar(&toStdout, "stdout", false, "Print the header and source instead of writing files")
	flag.StringVar(&types, "types", "", "Only generate for these types (comma-separated)")
	flag.StringVar(&types, "T", "", "Only generate for these types (shorthand)")
	flag.StringVar(&exclude, "exclude", "", "Exclude these types (comma-separated)")
	flag.StringVar(&exclude, "X", "", "Exclude these types (shorthand)")
	flag.BoolVar(&verbose, "v", false, "Verbose output")
	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&showHelp, "help", false, "Show help")

	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr, `cgen - C code generator for Go types

Usage:
    cgen -i <input.go> [options]

Options:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
    # Generate models.h and models.c next to the input
    cgen -i models.go

    # Generate into a directory under another name
    cgen -i models.go -o include -n shop

    # Only specific structs, with static helpers
    cgen -i models.go -T User,Order --static

    # Generate with custom config and print the result
    cgen -i models.go -c cgen.yaml --stdout

`)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	if showHelp {
		flag.Usage()
		return nil
	}

	if !isatty.IsTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}

	if inputFile == "" {
		return fmt.Errorf("input file is required (-i or --input)")
	}

	// Load configuration
	cfg := config.New()
	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Apply CLI overrides
	if outputDir != "" {
		cfg.Options.OutputDir = outputDir
	}
	if baseName != "" {
		cfg.Options.BaseName = baseName
	}
	if guard != "" {
		cfg.Options.Guard = guard
	}
	if static {
		cfg.Options.StaticHelpers = true
	}
	if typedefs {
		cfg.Options.Typedefs = true
	}
	if types != "" {
		cfg.Options.IncludeTypes = parseCommaSeparated(types)
	}
	if exclude != "" {
		cfg.Options.ExcludeTypes = parseCommaSeparated(exclude)
	}

	// Parse input file
	file, err := parser.New().ParseFile(inputFile)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	if verbose {
		infoColor.Fprintf(os.Stderr, "Parsed %d types from %s\n", len(file.Types), inputFile)
		for _, t := range file.Types {
			fmt.Fprintf(os.Stderr, "  - %s (%s)\n", t.Name, t.Kind)
		}
	}

	gen := generator.New(cfg)
	if verbose {
		gen.SetLogger(func(format string, args ...any) {
			warnColor.Fprintln(os.Stderr, "warning: "+fmt.Sprintf(format, args...))
		})
	}

	if toStdout {
		return gen.Render(file, os.Stdout)
	}

	paths, err := gen.Write(file)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if verbose {
		for _, p := range paths {
			infoColor.Fprintf(os.Stderr, "Generated %s\n", p)
		}
	}

	return nil
}

// parseCommaSeparated splits a comma-separated string into a slice of trimmed strings.
func parseCommaSeparated(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
