// This file contains the watch command, which re-parses a file and
// re-prints its lint output on every change.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/go-asciidoc/asciidoc/internal/adocerrs"
	"github.com/go-asciidoc/asciidoc/internal/watch"
)

// WatchCmd watches a single file and re-parses it on every change,
// printing warnings exactly as `adoc lint` would.
type WatchCmd struct {
	File string `arg:"" help:"AsciiDoc source file to watch" type:"existingfile"`
}

// Run executes the watch command. It blocks until interrupted.
func (c *WatchCmd) Run() error {
	cfg := loadConfig()

	debounce := time.Duration(cfg.watchDebounceMs) * time.Millisecond
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	w, err := watch.NewWithDebounce(c.File, debounce)
	if err != nil {
		return &adocerrs.WatchSetupError{Path: c.File, Err: err}
	}
	defer w.Close()

	fs := afero.NewOsFs()

	c.reparse(fs, cfg)

	fmt.Fprintf(os.Stderr, "watching %s (ctrl-c to stop)\n", c.File)

	for {
		select {
		case <-w.Events():
			if verbose {
				fmt.Fprintf(os.Stderr, "watch: change detected, re-parsing %s\n", c.File)
			}

			c.reparse(fs, cfg)
		case err := <-w.Errors():
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		}
	}
}

func (c *WatchCmd) reparse(fs afero.Fs, cfg *configSnapshot) {
	doc, err := parseFile(fs, c.File, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", c.File, err)

		return
	}

	if len(doc.Warnings) == 0 {
		fmt.Printf("%s: ok\n", c.File)

		return
	}

	for _, w := range doc.Warnings {
		fmt.Printf("%s:%d:%d: %s\n", c.File, w.Source.Line(), w.Source.Col(), w.Kind)
	}
}
