package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quantum-othello/internal/othello"
)

// History panel layout constants
const (
	historyWidth    = 44 // Width of the panel including its border
	minHeightForLog = 8  // Below this the table has no room for rows
)

// HistoryTable lists the moves and passes of the current match, newest last.
type HistoryTable struct {
	table  table.Model
	count  int
	height int
}

// NewHistoryTable creates an empty history table sized for the given height.
func NewHistoryTable(height int) HistoryTable {
	h := HistoryTable{height: height}
	h.table = h.createTable()
	return h
}

// createTable creates a new table with the history columns.
func (h *HistoryTable) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Who", Width: 5},
		{Title: "Move", Width: 4},
		{Title: "Tier", Width: 4},
		{Title: "Roll", Width: 4},
		{Title: "Result", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(max(h.height-4, 1)), // Border and header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Resize rebuilds the table for a new panel height, keeping its rows.
func (h *HistoryTable) Resize(height int) {
	rows := h.table.Rows()
	h.height = height
	h.table = h.createTable()
	h.table.SetRows(rows)
	h.table.GotoBottom()
}

// Sync refreshes the rows from the match history. The table is only
// rebuilt when the history length changes.
func (h *HistoryTable) Sync(history []othello.Record) {
	if len(history) == h.count {
		return
	}
	h.count = len(history)
	h.table.SetRows(HistoryRows(history))
	h.table.GotoBottom()
}

// Len returns the number of rows shown.
func (h HistoryTable) Len() int {
	return h.count
}

// View renders the table inside a rounded border.
func (h HistoryTable) View() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(historyWidth - 2)

	if h.count == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		return style.Render(empty.Render("No moves yet."))
	}
	return style.Render(h.table.View())
}

// HistoryRows converts history records to table rows.
func HistoryRows(history []othello.Record) []table.Row {
	rows := make([]table.Row, len(history))
	for i, rec := range history {
		if rec.Pass {
			rows[i] = table.Row{fmt.Sprintf("%d", i+1), rec.Player.String(), "pass", "", "", ""}
			continue
		}
		result := "kept"
		if rec.Color != rec.Player {
			result = "-> " + rec.Color.String()
		}
		if n := len(rec.Flipped); n > 0 {
			result = fmt.Sprintf("%s +%d", result, n)
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			rec.Player.String(),
			rec.Coord.Notation(),
			rec.Tier.String(),
			fmt.Sprintf("%d", rec.Roll),
			result,
		}
	}
	return rows
}
