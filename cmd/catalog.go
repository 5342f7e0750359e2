// This file contains the catalog command, which prints a file's
// cross-reference catalog as a table.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/afero"

	"github.com/go-asciidoc/asciidoc/internal/tui"
)

// CatalogCmd parses a file and prints its Catalog (ID, reftext, kind).
type CatalogCmd struct {
	File string `arg:"" help:"AsciiDoc source file to parse" type:"existingfile"`
}

// Run executes the catalog command.
func (c *CatalogCmd) Run() error {
	fs := afero.NewOsFs()

	doc, err := parseFile(fs, c.File, loadConfig())
	if err != nil {
		return err
	}

	if doc.Catalog == nil || len(doc.Catalog.Order()) == 0 {
		fmt.Println("no catalog entries")

		return nil
	}

	columns := []table.Column{
		{Title: "ID", Width: 24},
		{Title: "Reftext", Width: 32},
		{Title: "Kind", Width: 10},
	}

	var rows []table.Row
	for _, id := range doc.Catalog.Order() {
		entry, _ := doc.Catalog.Lookup(id)
		reftext := ""
		if entry.Reftext != nil {
			reftext = *entry.Reftext
		}
		rows = append(rows, table.Row{entry.ID, reftext, entry.Kind.String()})
	}

	t := table.New(table.WithColumns(columns), table.WithRows(rows), table.WithHeight(len(rows)))
	tui.ApplyTableStyles(&t)
	fmt.Fprintln(os.Stdout, t.View())

	return nil
}
