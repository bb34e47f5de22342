package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vector-risk/internal/audio"
	"github.com/vovakirdan/vector-risk/internal/core"
	"github.com/vovakirdan/vector-risk/internal/game"
	"github.com/vovakirdan/vector-risk/internal/session"
	"github.com/vovakirdan/vector-risk/internal/storage"
)

// footerRows is the number of terminal rows below the playfield.
const footerRows = 1

// Options carries the collaborators of the terminal frontend.
type Options struct {
	Audio  audio.Player    // Nil plays nothing
	Ledger *storage.Ledger // Nil disables the runs table
	Logger *log.Logger     // Nil logs nothing
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	canvas   *CellCanvas
	clock    core.Clock
	sink     *session.Sink
	logger   *log.Logger
	config   core.RuntimeConfig
	input    core.InputFrame
	state    game.State
	keys     KeyMap
	help     help.Model
	runs     RunsView
	showRuns bool
	quitting bool
}

// NewModel creates a Bubble Tea model for g. The game is reset in NewModel.
func NewModel(g *game.Game, cfg core.RuntimeConfig, opts Options) Model {
	g.Reset(cfg)
	field := g.Config().Window

	screen := core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-footerRows))
	h := help.New()
	h.ShowAll = false

	return Model{
		game:   g,
		screen: screen,
		canvas: NewCellCanvas(screen, field.Width, field.Height),
		clock:  core.NewWallClock(),
		sink:   session.NewSink(opts.Audio, opts.Ledger, opts.Logger),
		logger: opts.Logger,
		config: cfg,
		input:  core.NewInputFrame(),
		state:  g.State(),
		keys:   DefaultKeyMap(),
		help:   h,
		runs:   NewRunsView(opts.Ledger, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.showRuns {
			ApplyMouse(msg, m.canvas.ToField(msg.X, msg.Y), &m.input)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Runs):
		m.showRuns = !m.showRuns
		if m.showRuns {
			if err := m.runs.Reload(); err != nil && m.logger != nil {
				m.logger.Warn("failed to load runs", "error", err)
			}
		}
		return m, nil
	}

	if m.showRuns {
		var cmd tea.Cmd
		m.runs, cmd = m.runs.Update(msg)
		return m, cmd
	}

	m.keys.ApplyKey(msg, &m.input, m.game.Config().Window.Width)
	return m, nil
}

// handleResize processes window resize events. The session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-footerRows))
	m.runs.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame with real elapsed time.
// While the runs table is shown the simulation keeps running but presses are ignored.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := m.clock.DeltaTime()

	in := m.input
	if m.showRuns {
		in.Pressed = false
	}

	result := m.game.Step(dt, in)
	m.state = result.State
	m.sink.Drain(result.Events)

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showRuns {
		return m.runs.View() + "\n" + m.helpView()
	}

	m.game.Draw(m.canvas)
	status := m.statusView()
	if status != "" {
		// Keep the footer on one row
		m.help.Width = max(1, m.config.ScreenW-lipgloss.Width(status))
	}
	return RenderScreen(m.screen) + "\n" + m.helpView() + status
}

func (m Model) helpView() string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return helpStyle.Render(m.help.View(m.keys))
}

// statusView shows session counters next to the help line while playing.
func (m Model) statusView() string {
	snap := m.game.Snapshot()
	if snap.Screen != game.ScreenPlaying.String() {
		return ""
	}
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	return statusStyle.Render(fmt.Sprintf("  HI %d  KILLS %d  %.1fs", snap.HighScore, snap.Kills, snap.PlayTime))
}

// State returns the session summary after the latest frame.
func (m Model) State() game.State {
	return m.state
}

// Run starts the Bubble Tea program for g.
func Run(g *game.Game, cfg core.RuntimeConfig, opts Options) (game.State, error) {
	model := NewModel(g, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer steering needs motion without buttons
	)

	final, err := p.Run()
	if err != nil {
		return game.State{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return model.State(), nil
}
