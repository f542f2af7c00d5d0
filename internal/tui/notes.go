package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plutus-labs/schedule3/internal/client"
	"github.com/plutus-labs/schedule3/internal/report"
)

type notesLoadedMsg struct {
	notes []*report.FinancialNote
	err   error
}

type notesModel struct {
	notes   []*report.FinancialNote
	cursor  int
	loading bool
	err     error
	width   int
	height  int
}

func (m *notesModel) init(c *client.Client) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		notes, err := c.ListNotes(context.Background(), "")
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m notesModel) update(msg tea.Msg) (notesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		m.notes = msg.notes
		m.err = msg.err
		m.cursor = 0

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.notes)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m *notesModel) selectedNumber() string {
	if m.cursor < len(m.notes) {
		return m.notes[m.cursor].Number
	}
	return ""
}

// note returns the cached note by number, so opening a detail view from a
// statement line needs no extra round trip.
func (m *notesModel) note(number string) *report.FinancialNote {
	for _, n := range m.notes {
		if n.Number == number {
			return n
		}
	}
	return nil
}

func (m *notesModel) view() string {
	if m.loading {
		return "Loading notes..."
	}
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	if len(m.notes) == 0 {
		return dimStyle.Render("No data. Import a trial balance first.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Notes to the Financial Statements"))
	b.WriteString("\n")

	for i, n := range m.notes {
		total := ""
		if n.Total != nil {
			total = report.FormatIndian(n.Total.Current)
		}
		line := fmt.Sprintf("%-4s %-44s %15s", n.Number, n.Title, total)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

type noteDetailModel struct {
	note  *report.FinancialNote
	width int
}

func (m *noteDetailModel) view() string {
	if m.note == nil {
		return dimStyle.Render("Note not found.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Note %s - %s", m.note.Number, m.note.Title)))
	b.WriteString("\n")

	for _, el := range m.note.Content {
		switch {
		case el.Item != nil:
			writeNoteItemLines(&b, *el.Item, 0)
		case el.Table != nil:
			writeTableLines(&b, el.Table)
		case el.Text != "":
			b.WriteString(el.Text)
			b.WriteString("\n\n")
		}
	}

	if m.note.Total != nil {
		b.WriteString(subtotalStyle.Render(fmt.Sprintf("%-48s %15s %15s",
			"Total",
			report.FormatIndian(m.note.Total.Current),
			report.FormatIndian(m.note.Total.Previous))))
		b.WriteString("\n")
	}
	if m.note.Footer != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(m.note.Footer))
		b.WriteString("\n")
	}
	return b.String()
}

func writeNoteItemLines(b *strings.Builder, n report.ResolvedNode, depth int) {
	cur, prev := "", ""
	if n.Value != nil {
		cur = report.FormatIndian(n.Value.Current)
		prev = report.FormatIndian(n.Value.Previous)
	}
	label := strings.Repeat("  ", depth) + n.Label
	line := fmt.Sprintf("%-48s %15s %15s", label, cur, prev)
	if n.IsSubtotal || n.IsGrandTotal {
		b.WriteString(subtotalStyle.Render(line))
	} else {
		b.WriteString(line)
	}
	b.WriteString("\n")
	for _, c := range n.Children {
		writeNoteItemLines(b, c, depth+1)
	}
}

func writeTableLines(b *strings.Builder, tbl *report.Table) {
	b.WriteString("\n")
	var cells []string
	for _, h := range tbl.Headers {
		cells = append(cells, fmt.Sprintf("%-20s", h))
	}
	b.WriteString(headerStyle.Render(strings.Join(cells, " ")))
	b.WriteString("\n")
	for _, row := range tbl.Rows {
		cells = cells[:0]
		for _, v := range row {
			cells = append(cells, fmt.Sprintf("%-20s", v))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
