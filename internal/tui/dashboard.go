package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardRow is one catalog entry shown in the dashboard's right pane.
type DashboardRow struct {
	ID      string
	Reftext string
	Kind    string
}

// Dashboard is a two-pane bubbletea model: a scrollable block-tree outline
// on the left, warnings and a catalog table on the right. Pressing 'y'
// copies the selected catalog row's ID to the clipboard. The catalog pane
// is driven by a TablePicker so copy is a registered Action rather than a
// one-off key check.
type Dashboard struct {
	tree     string
	warnings []string
	picker   *TablePicker
	copied   string
	quitting bool
	width    int
	height   int
}

// NewDashboard builds a Dashboard over the given tree text, warning lines,
// and catalog rows.
func NewDashboard(tree string, warnings []string, rows []DashboardRow) *Dashboard {
	columns := []table.Column{
		{Title: "ID", Width: 20},
		{Title: "Reftext", Width: 24},
		{Title: "Kind", Width: 10},
	}

	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row{r.ID, r.Reftext, r.Kind})
	}

	picker := NewTablePicker(TableConfig{
		Columns: columns,
		Rows:    tableRows,
		Height:  DefaultTableHeight,
		Actions: map[string]Action{
			"y": {
				Key:         "y",
				Description: "copy ID",
				Handler:     copyRowIDAction,
			},
		},
	})

	return &Dashboard{tree: tree, warnings: warnings, picker: picker, width: 100, height: 30}
}

func copyRowIDAction(row table.Row) (tea.Cmd, *ActionResult) {
	if row == nil {
		return nil, nil
	}

	if err := CopyToClipboard(row[0]); err != nil {
		return nil, &ActionResult{ID: row[0], Error: err}
	}

	return nil, &ActionResult{ID: row[0], Copied: true}
}

// Init implements tea.Model.
func (d *Dashboard) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		d.width, d.height = m.Width, m.Height

		return d, nil
	case tea.KeyMsg:
		if m.String() == "q" || m.String() == keyCtrlC {
			d.quitting = true

			return d, tea.Quit
		}
	}

	updated, cmd := d.picker.Update(msg)

	picker, ok := updated.(*TablePicker)
	if ok {
		d.picker = picker
	}

	if result := d.picker.Result(); result != nil && result.Copied {
		d.copied = result.ID
	}

	return d, cmd
}

// View implements tea.Model.
func (d *Dashboard) View() string {
	leftWidth := d.width / 2
	if leftWidth < 20 {
		leftWidth = 20
	}

	left := lipgloss.NewStyle().Width(leftWidth).Render(TitleStyle().Render("Blocks") + "\n" + d.tree)

	var right strings.Builder
	right.WriteString(TitleStyle().Render("Warnings"))
	right.WriteString("\n")
	if len(d.warnings) == 0 {
		right.WriteString("(none)\n")
	} else {
		right.WriteString(strings.Join(d.warnings, "\n"))
		right.WriteString("\n")
	}
	right.WriteString("\n")
	right.WriteString(TitleStyle().Render("Catalog"))
	right.WriteString("\n")
	right.WriteString(d.picker.Table().View())

	if d.copied != "" {
		right.WriteString(fmt.Sprintf("\ncopied: %s\n", d.copied))
	}

	rightPane := lipgloss.NewStyle().Render(right.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, rightPane) + "\n" + HelpStyle().Render("↑/↓: select catalog entry · y: copy ID · q: quit")
}
