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

type statementLoadedMsg struct {
	statement report.Statement
	resp      *client.StatementResponse
	err       error
}

// flatLine is one visible row of the drilldown: a resolved node plus its
// position in the tree.
type flatLine struct {
	node     *report.ResolvedNode
	path     string
	depth    int
	children bool
}

type statementModel struct {
	statement report.Statement
	lines     []report.ResolvedNode
	collapsed map[string]bool
	cursor    int
	scroll    int
	loading   bool
	err       error
	width     int
	height    int
}

func newStatementModel(st report.Statement) statementModel {
	return statementModel{statement: st, collapsed: map[string]bool{}}
}

func (m *statementModel) init(c *client.Client) tea.Cmd {
	m.loading = true
	st := m.statement
	return func() tea.Msg {
		resp, err := c.GetStatement(context.Background(), st, "")
		return statementLoadedMsg{statement: st, resp: resp, err: err}
	}
}

func (m statementModel) update(msg tea.Msg) (statementModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statementLoadedMsg:
		if msg.statement != m.statement {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.resp != nil {
			m.lines = msg.resp.Lines
		}
		m.cursor = 0
		m.scroll = 0

	case tea.KeyMsg:
		flat := m.flatten()
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(flat)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Collapse):
			if m.cursor < len(flat) && flat[m.cursor].children {
				m.collapsed[flat[m.cursor].path] = true
			}
		case key.Matches(msg, keys.Expand):
			if m.cursor < len(flat) {
				delete(m.collapsed, flat[m.cursor].path)
			}
		}
	}
	return m, nil
}

// selectedNote returns the note number referenced by the cursor line, if any.
func (m *statementModel) selectedNote() string {
	flat := m.flatten()
	if m.cursor < len(flat) {
		return flat[m.cursor].node.Note
	}
	return ""
}

func (m *statementModel) flatten() []flatLine {
	var out []flatLine
	var walk func(nodes []report.ResolvedNode, prefix string, depth int)
	walk = func(nodes []report.ResolvedNode, prefix string, depth int) {
		for i := range nodes {
			n := &nodes[i]
			path := prefix + "/" + n.Key
			out = append(out, flatLine{node: n, path: path, depth: depth, children: len(n.Children) > 0})
			if len(n.Children) > 0 && !m.collapsed[path] {
				walk(n.Children, path, depth+1)
			}
		}
	}
	walk(m.lines, "", 0)
	return out
}

func (m *statementModel) view() string {
	if m.loading {
		return "Loading " + m.statement.Title() + "..."
	}
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	if len(m.lines) == 0 {
		return dimStyle.Render("No data. Import a trial balance first.")
	}

	w := m.width
	if w < 70 {
		w = 100
	}
	labelW := w - 48
	if labelW > 56 {
		labelW = 56
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.statement.Title()))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %-5s %15s %15s", labelW, "Particulars", "Note", "Current", "Previous")))
	b.WriteString("\n")

	flat := m.flatten()
	visible := m.height
	if visible <= 0 {
		visible = len(flat)
	}
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}

	for i := m.scroll; i < len(flat) && i < m.scroll+visible; i++ {
		fl := flat[i]
		b.WriteString(m.renderLine(fl, i == m.cursor, labelW))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *statementModel) renderLine(fl flatLine, selected bool, labelW int) string {
	marker := "  "
	if fl.children {
		if m.collapsed[fl.path] {
			marker = "+ "
		} else {
			marker = "- "
		}
	}

	label := strings.Repeat("  ", fl.depth) + marker + fl.node.Label
	if len(label) > labelW {
		label = label[:labelW-2] + ".."
	}

	cur, prev := "", ""
	if fl.node.Value != nil {
		cur = report.FormatIndian(fl.node.Value.Current)
		prev = report.FormatIndian(fl.node.Value.Previous)
	}

	line := fmt.Sprintf("%-*s %-5s %15s %15s", labelW, label, fl.node.Note, cur, prev)
	switch {
	case selected:
		return selectedStyle.Render("> " + line)
	case fl.node.IsGrandTotal:
		return "  " + grandTotalStyle.Render(line)
	case fl.node.IsSubtotal:
		return "  " + subtotalStyle.Render(line)
	default:
		return "  " + line
	}
}
