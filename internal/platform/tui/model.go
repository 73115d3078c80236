package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/core"
	"github.com/vovakirdan/tui-scroller/internal/games/scroller"
	"github.com/vovakirdan/tui-scroller/internal/storage"
)

// helpRows is the number of terminal rows reserved below the playfield.
const helpRows = 1

var (
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pauseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorYellow.Hex()))
)

// Model is the Bubble Tea model for one scroller run. It owns the
// scheduler; every tick message drives exactly one scheduler frame.
type Model struct {
	game    *scroller.Game
	sched   *scroller.Scheduler
	screen  *core.Screen
	store   *storage.Store
	log     *log.Logger
	config  core.RuntimeConfig
	input   *heldInput
	keys    GameKeyMap
	help    help.Model
	id      string
	runID   string
	ticking bool // a tick message is in flight

	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewModel creates a play model and starts the first run.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	opts := []scroller.Option{scroller.WithLogger(logger)}
	if preset != "" {
		opts = append(opts, scroller.WithPreset(preset))
	}
	game := scroller.New(opts...)
	game.Reset(playfield(cfg))

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1))
	input := newHeldInput()
	sched := scroller.NewScheduler(game, input, func(g *scroller.Game) {
		g.Render(screen)
	})
	game.Render(screen)

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:   game,
		sched:  sched,
		screen: screen,
		store:  store,
		log:    logger,
		config: cfg,
		input:  input,
		keys:   DefaultGameKeyMap(),
		help:   h,
		id:     uuid.NewString(),
		runID:  uuid.NewString(),
	}
	m.ticking = sched.Start()
	return m
}

// playfield is the runtime config the game sees: the terminal minus the help row.
func playfield(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenH -= helpRows
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	if !m.ticking {
		return nil
	}
	return tickCmd(m.id, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if key.Matches(msg, m.keys.Stop) {
		m.input.stop()
		return m, nil
	}

	switch action := m.keys.Action(msg, m.game.State()); action {
	case core.ActionQuit:
		m.quitting = true
		m.sched.Stop()
		m.saveScore()
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		m.sched.Stop()
		m.saveScore()
		return m, tea.Quit

	case core.ActionContinue:
		if err := m.sched.ContinueToNextLevel(); err != nil {
			m.log.Debug("continue ignored", "err", err)
			return m, nil
		}
		m.input.reset()
		return m.startTicking()

	case core.ActionRestart:
		if err := m.sched.Restart(); err != nil {
			m.log.Debug("restart ignored", "err", err)
			return m, nil
		}
		m.input.reset()
		m.runID = uuid.NewString()
		m.scoreSaved = false
		return m.startTicking()

	case core.ActionPause:
		if m.sched.TogglePause() {
			return m.startTicking()
		}
		m.redraw()
		return m, nil

	case core.ActionNone:
		return m, nil

	default:
		if m.sched.Active() {
			m.input.press(action)
		}
	}

	return m, nil
}

// startTicking arms the tick chain unless one is already in flight.
func (m Model) startTicking() (tea.Model, tea.Cmd) {
	if m.ticking || !m.sched.Active() {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.id, m.config.TickRate)
}

// handleResize keeps the run going and rescales the viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	m.game.Resize(scroller.ViewportFor(playfield(m.config), m.game.Config()))
	m.redraw()
	return m, nil
}

// handleTick runs one scheduler frame and re-arms the tick while the loop is active.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.sched.Active() {
		m.ticking = false
		return m, nil
	}

	active := m.sched.Frame()
	m.input.advance()

	if m.game.Phase() == scroller.PhaseGameOver {
		m.saveScore()
	}

	if !active {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.id, m.config.TickRate)
}

// saveScore records the run once. Runs without points are not recorded.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	run := m.game.Run()
	if run.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	_, err := m.store.SaveScore(storage.ScoreEntry{
		RunID:  m.runID,
		GameID: m.game.ID(),
		Preset: string(m.game.Preset()),
		Score:  run.Score,
		Level:  run.Level,
	})
	if err != nil {
		m.log.Warn("could not save score", "err", err)
		return
	}
	m.log.Info("score saved", "run", m.runID, "score", run.Score, "level", run.Level)
}

// redraw repaints the screen outside of a scheduler frame.
func (m Model) redraw() {
	m.game.Render(m.screen)
	if m.sched.Paused() {
		label := "PAUSED  Press P to resume"
		m.screen.DrawTextColored((m.screen.Width()-len(label))/2, m.screen.Height()/2, label, core.ColorYellow)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".scroller", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(screenText(m.screen)), 0o600)
}

// screenText is the screen as plain text with trailing blanks trimmed.
func screenText(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = strings.TrimRight(s.Row(y), " ")
	}
	return strings.Join(rows, "\n") + "\n"
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	status := m.help.View(m.keys)
	if m.sched.Paused() {
		status = pauseStyle.Render("PAUSED") + "  " + status
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(status)
}

// Game returns the running game.
func (m Model) Game() *scroller.Game {
	return m.game
}

// Ticking reports whether a tick message is in flight.
func (m Model) Ticking() bool {
	return m.ticking
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one game session.
// It returns true if the player asked to go back to the menu.
func Run(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset, logger *log.Logger) (bool, error) {
	model := NewModel(store, cfg, preset, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
