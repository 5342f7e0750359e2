// Package cmd provides command-line interface implementations for adoc.
// This file contains the parse command, which parses a source file and
// prints its block tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/go-asciidoc/asciidoc"
	"github.com/go-asciidoc/asciidoc/internal/adocerrs"
	"github.com/go-asciidoc/asciidoc/internal/docjson"
	"github.com/go-asciidoc/asciidoc/internal/includefs"
	"github.com/go-asciidoc/asciidoc/internal/treedump"
)

// ParseCmd parses a single AsciiDoc source file and prints its structure.
type ParseCmd struct {
	File   string `arg:"" help:"AsciiDoc source file to parse" type:"existingfile"`
	Format string `default:"tree" enum:"tree,json" help:"Output format: tree or json"`
}

// Run executes the parse command.
func (c *ParseCmd) Run() error {
	fs := afero.NewOsFs()

	doc, err := parseFile(fs, c.File, loadConfig())
	if err != nil {
		return err
	}

	switch c.Format {
	case "json":
		out, marshalErr := docjson.Marshal(doc)
		if marshalErr != nil {
			return fmt.Errorf("parse: marshaling JSON: %w", marshalErr)
		}

		fmt.Println(string(out))
	case "tree":
		if dumpErr := treedump.Print(os.Stdout, doc); dumpErr != nil {
			return fmt.Errorf("parse: printing tree: %w", dumpErr)
		}
	default:
		return &adocerrs.UnknownFormatError{Format: c.Format, Supported: []string{"tree", "json"}}
	}

	return nil
}

// parseFile reads path from fs and parses it, applying cfg's seed and
// locked attributes, and wiring an afero-backed include resolver rooted
// at the file's directory.
func parseFile(fs afero.Fs, path string, cfg *configSnapshot) (*asciidoc.Document, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("parse: checking %s: %w", path, err)
	}
	if !exists {
		return nil, &adocerrs.FileNotFoundError{Path: path}
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, &adocerrs.ReadError{Path: path, Err: err}
	}

	opts := []asciidoc.Option{
		asciidoc.WithIncludeResolver(includefs.New(fs, dirOf(path))),
	}
	if cfg != nil {
		if len(cfg.attributes) > 0 {
			opts = append(opts, asciidoc.WithInitialAttributes(cfg.attributes))
		}
		if len(cfg.lockedAttributes) > 0 {
			opts = append(opts, asciidoc.WithLockedAttributes(cfg.lockedAttributes))
		}
	}

	p := asciidoc.NewParser(opts...)

	doc, err := p.Parse(string(data))
	if err != nil {
		return nil, &adocerrs.NotUTF8Error{Path: path}
	}

	return doc, nil
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}

	return "."
}
