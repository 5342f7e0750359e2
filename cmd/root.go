// Package cmd provides command-line interface implementations for adoc.
// This file contains the root CLI struct Kong parses command-line
// arguments into.
package cmd

import (
	kongcompletion "github.com/jotaen/kong-completion"
)

// CLI represents the root command structure for Kong.
type CLI struct {
	Verbose bool `help:"Enable verbose diagnostic output" name:"verbose" short:"v"`

	Parse      ParseCmd                  `cmd:"" help:"Parse a file and print its block tree"`
	Lint       LintCmd                   `cmd:"" help:"Parse files and report warnings"`
	Catalog    CatalogCmd                `cmd:"" help:"Print a file's cross-reference catalog"`
	Watch      WatchCmd                  `cmd:"" help:"Re-parse a file on every change"`
	View       ViewCmd                   `cmd:"" help:"Interactive block-tree and warnings dashboard"`
	Version    VersionCmd                `cmd:"" help:"Show version info"`
	Completion kongcompletion.Completion `cmd:"" help:"Generate shell completions"`
}

// verbose mirrors CLI.Verbose for the subcommands, which Kong runs
// without a reference back to the root struct.
var verbose bool

// AfterApply runs after Kong parses flags but before any command's Run,
// making the --verbose flag visible to every subcommand.
func (c *CLI) AfterApply() error {
	verbose = c.Verbose

	return nil
}

// configSnapshot is the subset of .adoc.yaml a parse needs.
type configSnapshot struct {
	theme            string
	attributes       map[string]string
	lockedAttributes []string
	watchDebounceMs  int
}
