// This file contains the view command, an interactive block-tree and
// warnings dashboard for a single file.
package cmd

import (
	"bytes"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/go-asciidoc/asciidoc/internal/tui"
	"github.com/go-asciidoc/asciidoc/internal/treedump"
)

// ViewCmd displays an interactive dashboard over a parsed file: its block
// tree, warnings, and cross-reference catalog.
type ViewCmd struct {
	File string `arg:"" help:"AsciiDoc source file to view" type:"existingfile"`
}

// Run executes the view command. When stdout is not a terminal, it falls
// back to a plain-text render instead of starting the TUI.
func (c *ViewCmd) Run() error {
	fs := afero.NewOsFs()

	doc, err := parseFile(fs, c.File, loadConfig())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if dumpErr := treedump.Print(&buf, doc); dumpErr != nil {
		return fmt.Errorf("view: %w", dumpErr)
	}

	var warnings []string
	for _, w := range doc.Warnings {
		warnings = append(warnings, fmt.Sprintf("%d:%d: %s", w.Source.Line(), w.Source.Col(), w.Kind))
	}

	var rows []tui.DashboardRow
	if doc.Catalog != nil {
		for _, id := range doc.Catalog.Order() {
			entry, _ := doc.Catalog.Lookup(id)
			reftext := ""
			if entry.Reftext != nil {
				reftext = *entry.Reftext
			}
			rows = append(rows, tui.DashboardRow{ID: entry.ID, Reftext: reftext, Kind: entry.Kind.String()})
		}
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(buf.String())

		if len(warnings) == 0 {
			fmt.Println("warnings: none")
		} else {
			fmt.Println("warnings:")
			for _, w := range warnings {
				fmt.Println("  " + w)
			}
		}

		for _, r := range rows {
			fmt.Printf("catalog: %s %s %s\n", r.ID, r.Reftext, r.Kind)
		}

		return nil
	}

	dashboard := tui.NewDashboard(buf.String(), warnings, rows)
	if _, runErr := tea.NewProgram(dashboard).Run(); runErr != nil {
		return fmt.Errorf("view: %w", runErr)
	}

	return nil
}
