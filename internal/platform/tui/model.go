package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quantum-othello/internal/core"
	"github.com/vovakirdan/quantum-othello/internal/games/qothello"
	"github.com/vovakirdan/quantum-othello/internal/registry"
)

// Screen layout constants
const (
	minWidthForHistory = qothello.MinWidth + historyWidth // Board plus history side by side
	shortHelpHeight    = 2
	fullHelpHeight     = 5
)

// resizer is implemented by games that can adapt to a new screen size
// without restarting the match.
type resizer interface {
	Resize(width, height int)
}

// GameModel is the Bubble Tea model for one variant: it turns keys into
// input frames, steps the game on every tick and renders the board next to
// the move history.
type GameModel struct {
	game        registry.Game
	screen      *core.Screen
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	help        help.Model
	history     HistoryTable
	logger      *log.Logger
	width       int
	height      int
	showHistory bool
	lastEvent   string
	endLogged   bool // Whether the current match result has been logged
	quitting    bool
	backToMenu  bool
	exitOnBack  bool
}

// NewGameModel creates a new game model. cfg carries the full terminal size;
// the board gets what is left after the help bar and history panel.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := GameModel{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.screen = core.NewScreen(1, 1)
	m.layout()
	m.history = NewHistoryTable(m.config.ScreenH)
	return m
}

// WithLogger sets the logger used for match results. A nil logger disables
// logging.
func (m GameModel) WithLogger(logger *log.Logger) GameModel {
	m.logger = logger
	return m
}

// WithExitOnBack makes the back key end the program, for standalone play.
func (m GameModel) WithExitOnBack() GameModel {
	m.exitOnBack = true
	return m
}

// layout splits the terminal between board, history and help.
func (m *GameModel) layout() {
	helpHeight := shortHelpHeight
	if m.help.ShowAll {
		helpHeight = fullHelpHeight
	}

	m.showHistory = m.width >= minWidthForHistory && m.height-helpHeight >= minHeightForLog
	gameW := m.width
	if m.showHistory {
		gameW -= historyWidth
	}
	gameH := max(m.height-helpHeight, 1)

	m.config.ScreenW = max(gameW, 1)
	m.config.ScreenH = gameH
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = m.width
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.resizeGame()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		m.inputFrame.Clear()
		if m.exitOnBack {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize adapts the layout without restarting the match.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.resizeGame()
	return m, nil
}

func (m *GameModel) resizeGame() {
	m.layout()
	m.history.Resize(m.config.ScreenH)
	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	}
}

// handleTick steps the game with the input collected since the last tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Event != "" {
		m.lastEvent = result.Event
		if m.logger != nil {
			m.logger.Debug("step", "variant", m.game.ID(), "event", result.Event)
		}
	}

	m.history.Sync(m.game.Match().History())
	m.logResult()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// logResult logs the match result once per finished match.
func (m *GameModel) logResult() {
	if !m.gameState.GameOver {
		m.endLogged = false
		return
	}
	if m.endLogged {
		return
	}
	m.endLogged = true
	if m.logger == nil {
		return
	}

	res := m.game.Match().Result()
	m.logger.Info("match finished",
		"variant", m.game.ID(),
		"outcome", res.Outcome.String(),
		"reason", res.Reason.String(),
		"black", res.Black,
		"white", res.White,
		"moves", len(m.game.Match().History()),
	)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	board := RenderScreen(m.screen)
	if m.showHistory {
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, m.history.View())
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return board + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// GameState returns the state after the most recent tick.
func (m GameModel) GameState() core.GameState {
	return m.gameState
}

// LastEvent returns the most recent non-empty step event.
func (m GameModel) LastEvent() string {
	return m.lastEvent
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunResult reports how a standalone game ended.
type RunResult struct {
	State      core.GameState
	BackToMenu bool
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig) (RunResult, error) {
	model := NewGameModel(game, cfg).WithExitOnBack()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return RunResult{}, nil
	}
	return RunResult{State: m.GameState(), BackToMenu: m.BackToMenu()}, nil
}
