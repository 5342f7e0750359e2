// This file contains the lint command, which parses files and reports any
// warnings the parser accumulated.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/go-asciidoc/asciidoc/internal/discoverfs"
)

// LintCmd parses one or more files (or directories of files) and prints
// every warning recorded during parsing.
type LintCmd struct {
	Files []string `arg:"" help:"Files or directories to lint" type:"path"`
}

// Run executes the lint command. It exits non-zero (by returning an
// error) if any warning was recorded across all linted files.
func (c *LintCmd) Run() error {
	fs := afero.NewOsFs()
	cfg := loadConfig()

	paths, err := discoverfs.Expand(fs, c.Files)
	if err != nil {
		return fmt.Errorf("lint: %w", err)
	}

	var total int

	for _, path := range paths {
		if verbose {
			fmt.Fprintf(os.Stderr, "lint: parsing %s\n", path)
		}

		doc, parseErr := parseFile(fs, path, cfg)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, parseErr)

			continue
		}

		for _, w := range doc.Warnings {
			total++

			fmt.Printf("%s:%d:%d: %s\n", path, w.Source.Line(), w.Source.Col(), w.Kind)
		}
	}

	if total > 0 {
		return fmt.Errorf("lint: %d warning(s) found", total)
	}

	return nil
}
