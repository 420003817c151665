// Command gen-tags regenerates the static tag tables in tags/ from an
// ExifTool Perl module tree. Offline tooling: the library never parses
// PM files at runtime, it only reads the generated registry.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"greg-hacke/go-ifd/parser"
)

const (
	exitError = 1
	exitUsage = 2
)

func main() {
	outDir := flag.String("o", "tags", "output directory for generated files")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-o dir] <exiftool-pm-dir>\n", filepath.Base(os.Args[0]))
		os.Exit(exitUsage)
	}

	if err := run(flag.Arg(0), *outDir); err != nil {
		fmt.Fprintln(os.Stderr, "gen-tags:", err)
		os.Exit(exitError)
	}
}

func run(pmDir, outDir string) error {
	info, err := os.Stat(pmDir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", pmDir)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	data, err := parser.ParsePMFiles(pmDir)
	if err != nil {
		return fmt.Errorf("parse %s: %w", pmDir, err)
	}

	if err := parser.GenerateGoFiles(data, outDir); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	return nil
}
