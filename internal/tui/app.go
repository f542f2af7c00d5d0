package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/plutus-labs/schedule3/internal/client"
	"github.com/plutus-labs/schedule3/internal/report"
)

type mode int

const (
	modeBalanceSheet mode = iota
	modeProfitLoss
	modeCashFlow
	modeNotes
	modeNoteDetail
)

var tabModes = []mode{modeBalanceSheet, modeProfitLoss, modeCashFlow, modeNotes}

func tabLabel(m mode) string {
	switch m {
	case modeBalanceSheet:
		return "Balance Sheet"
	case modeProfitLoss:
		return "Profit & Loss"
	case modeCashFlow:
		return "Cash Flow"
	case modeNotes:
		return "Notes"
	default:
		return ""
	}
}

type App struct {
	client        *client.Client
	mode          mode
	tabIndex      int
	width, height int
	statusMsg     string

	balanceSheet statementModel
	profitLoss   statementModel
	cashFlow     statementModel
	notes        notesModel
	noteDetail   noteDetailModel
}

func NewApp(c *client.Client) *App {
	return &App{
		client:       c,
		mode:         modeBalanceSheet,
		balanceSheet: newStatementModel(report.StatementBalanceSheet),
		profitLoss:   newStatementModel(report.StatementProfitLoss),
		cashFlow:     newStatementModel(report.StatementCashFlow),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.balanceSheet.init(a.client),
		a.profitLoss.init(a.client),
		a.cashFlow.init(a.client),
		a.notes.init(a.client),
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for _, m := range []*statementModel{&a.balanceSheet, &a.profitLoss, &a.cashFlow} {
			m.width = msg.Width
			m.height = msg.Height - 7
		}
		a.notes.width = msg.Width
		a.notes.height = msg.Height - 7
		a.noteDetail.width = msg.Width
		return a, nil

	// Loaded messages route to their owning sub-model regardless of the
	// active tab, since Init fires every load concurrently.
	case statementLoadedMsg:
		var cmd tea.Cmd
		switch msg.statement {
		case report.StatementBalanceSheet:
			a.balanceSheet, cmd = a.balanceSheet.update(msg)
		case report.StatementProfitLoss:
			a.profitLoss, cmd = a.profitLoss.update(msg)
		case report.StatementCashFlow:
			a.cashFlow, cmd = a.cashFlow.update(msg)
		}
		return a, cmd

	case notesLoadedMsg:
		var cmd tea.Cmd
		a.notes, cmd = a.notes.update(msg)
		return a, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, keys.Tab):
			a.tabIndex = (a.tabIndex + 1) % len(tabModes)
			a.mode = tabModes[a.tabIndex]
			a.statusMsg = ""
			return a, nil

		case key.Matches(msg, keys.ShiftTab):
			a.tabIndex = (a.tabIndex - 1 + len(tabModes)) % len(tabModes)
			a.mode = tabModes[a.tabIndex]
			a.statusMsg = ""
			return a, nil

		case key.Matches(msg, keys.Escape):
			if a.mode == modeNoteDetail {
				a.mode = tabModes[a.tabIndex]
			}
			return a, nil

		case key.Matches(msg, keys.Refresh):
			a.statusMsg = "Reloading..."
			return a, a.Init()

		case key.Matches(msg, keys.Enter):
			switch a.mode {
			case modeBalanceSheet, modeProfitLoss, modeCashFlow:
				if number := a.activeStatement().selectedNote(); number != "" {
					a.noteDetail.note = a.notes.note(number)
					a.mode = modeNoteDetail
				}
				return a, nil
			case modeNotes:
				if number := a.notes.selectedNumber(); number != "" {
					a.noteDetail.note = a.notes.note(number)
					a.mode = modeNoteDetail
				}
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	switch a.mode {
	case modeBalanceSheet:
		a.balanceSheet, cmd = a.balanceSheet.update(msg)
	case modeProfitLoss:
		a.profitLoss, cmd = a.profitLoss.update(msg)
	case modeCashFlow:
		a.cashFlow, cmd = a.cashFlow.update(msg)
	case modeNotes:
		a.notes, cmd = a.notes.update(msg)
	}
	return a, cmd
}

func (a *App) activeStatement() *statementModel {
	switch a.mode {
	case modeProfitLoss:
		return &a.profitLoss
	case modeCashFlow:
		return &a.cashFlow
	default:
		return &a.balanceSheet
	}
}

func (a *App) View() string {
	tabs := ""
	for i, m := range tabModes {
		label := tabLabel(m)
		if i == a.tabIndex && a.mode != modeNoteDetail {
			tabs += activeTabStyle.Render(label)
		} else {
			tabs += inactiveTabStyle.Render(label)
		}
		if i < len(tabModes)-1 {
			tabs += " "
		}
	}

	var content string
	switch a.mode {
	case modeBalanceSheet:
		content = a.balanceSheet.view()
	case modeProfitLoss:
		content = a.profitLoss.view()
	case modeCashFlow:
		content = a.cashFlow.view()
	case modeNotes:
		content = a.notes.view()
	case modeNoteDetail:
		content = a.noteDetail.view()
	}

	status := ""
	if a.statusMsg != "" {
		status = successStyle.Render(a.statusMsg)
	}

	helpText := dimStyle.Render("tab:switch  enter:open note  esc:back  left/right:collapse/expand  r:reload  q:quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		tabs,
		"",
		content,
		"",
		status,
		helpText,
	)
}
