package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quantum-othello/internal/core"
	"github.com/vovakirdan/quantum-othello/internal/games/qothello"
	"github.com/vovakirdan/quantum-othello/internal/othello"
	"github.com/vovakirdan/quantum-othello/internal/registry"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{runes("k"), core.ActionUp, false},
		{runes("j"), core.ActionDown, false},
		{runes("h"), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextTier, false},
		{runes("t"), core.ActionNextTier, false},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, core.ActionPrevTier, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPlace, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPlace, false},
		{runes("p"), core.ActionPass, false},
		{runes("r"), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runes("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %s, %v; want %s, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	if got := km.MapKeyToMenuAction(runes("j")); got != MenuActionDown {
		t.Errorf("j = %d, want MenuActionDown", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}); got != MenuActionSelect {
		t.Errorf("enter = %d, want MenuActionSelect", got)
	}
	if got := km.MapKeyToMenuAction(runes("b")); got != MenuActionBack {
		t.Errorf("b = %d, want MenuActionBack", got)
	}
}

func TestHistoryRows(t *testing.T) {
	rows := HistoryRows([]othello.Record{
		{Player: othello.Black, Coord: othello.Coord{Row: 2, Col: 3}, Tier: 90, Roll: 12, Color: othello.Black, Flipped: []othello.Coord{{Row: 3, Col: 3}}},
		{Player: othello.White, Coord: othello.Coord{Row: 2, Col: 2}, Tier: 60, Roll: 77, Color: othello.Black},
		{Player: othello.Black, Pass: true},
	})

	want := [][]string{
		{"1", "Black", "d3", "90%", "12", "kept +1"},
		{"2", "White", "c3", "60%", "77", "-> Black"},
		{"3", "Black", "pass", "", "", ""},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Errorf("row %d col %d = %q, want %q", i, j, rows[i][j], want[i][j])
			}
		}
	}
}

func newTestModel(t *testing.T, variant string, width, height int) GameModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	game, err := registry.Create(variant)
	if err != nil {
		t.Fatal(err)
	}
	m := NewGameModel(game, core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: 30, Seed: 7})
	m.Init()
	return m
}

func update(t *testing.T, m GameModel, msgs ...tea.Msg) GameModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		gm, ok := next.(GameModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = gm
	}
	return m
}

func TestGameModelPlacesOnTick(t *testing.T) {
	m := newTestModel(t, "classic", 130, 30)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.GameState().Black != 0 {
		t.Error("input must not apply before the next tick")
	}

	m = update(t, m, TickMsg{})
	state := m.GameState()
	if state.Black != 4 || state.White != 1 || state.Turn != "White" {
		t.Errorf("state after placing = %+v", state)
	}
	if m.history.Len() != 1 {
		t.Errorf("history rows = %d, want 1", m.history.Len())
	}
	if !strings.Contains(m.LastEvent(), "d3") {
		t.Errorf("LastEvent = %q", m.LastEvent())
	}
	if !m.showHistory {
		t.Error("wide terminal should show the history panel")
	}
	if !strings.Contains(m.View(), "d3") {
		t.Error("view should include the history row")
	}
}

func TestGameModelLayout(t *testing.T) {
	m := newTestModel(t, "quantum", 100, 30)

	if m.showHistory {
		t.Error("narrow terminal should hide the history panel")
	}
	if m.config.ScreenW != 100 || m.config.ScreenH != 30-shortHelpHeight {
		t.Errorf("board screen = %dx%d", m.config.ScreenW, m.config.ScreenH)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	if !m.showHistory || m.config.ScreenW != 140-historyWidth {
		t.Errorf("after resize showHistory=%v width=%d", m.showHistory, m.config.ScreenW)
	}

	m = update(t, m, runes("?"))
	if !m.help.ShowAll || m.config.ScreenH != 40-fullHelpHeight {
		t.Errorf("full help should take %d rows, board height %d", fullHelpHeight, m.config.ScreenH)
	}
}

func TestGameModelResizeKeepsMatch(t *testing.T) {
	m := newTestModel(t, "classic", 130, 30)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 28}, TickMsg{})
	if m.GameState().Black != 4 {
		t.Errorf("resize should keep the match, state = %+v", m.GameState())
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	m := newTestModel(t, "quantum", 130, 30)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	if !m.BackToMenu() || cmd != nil {
		t.Error("esc should request the menu without quitting")
	}

	standalone := newTestModel(t, "quantum", 130, 30).WithExitOnBack()
	_, cmd = standalone.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("standalone esc should quit the program")
	}

	next, cmd = m.Update(runes("q"))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestSessionModelFlow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := core.RuntimeConfig{ScreenW: 130, ScreenH: 30, TickRate: 30, Seed: 3}
	s := NewSessionModel(cfg, nil)

	if !strings.Contains(s.View(), "Quantum Othello") {
		t.Error("menu should list the quantum variant")
	}

	// Variants are sorted by ID: chaos, classic, quantum.
	next, _ := s.Update(runes("j"))
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if !s.inGame || s.gameModel == nil || s.gameModel.game.ID() != "classic" {
		t.Fatalf("enter should start the classic variant")
	}
	if cmd == nil {
		t.Error("starting a game should schedule the first tick")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.inGame {
		t.Error("esc should return to the menu")
	}

	next, cmd = s.Update(runes("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}

func TestVariantsInMenu(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	ids := make([]string, 0, len(m.items))
	for _, item := range m.items {
		ids = append(ids, item.GameID)
	}
	if strings.Join(ids, ",") != "chaos,classic,quantum" {
		t.Errorf("menu items = %v", ids)
	}
	if m.items[0].Description != qothello.New("chaos").Description() {
		t.Error("menu should carry variant descriptions")
	}
}
