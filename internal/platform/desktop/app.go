// Package desktop runs Vector Risk in a native window with Ebitengine.
package desktop

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/vector-risk/internal/audio"
	"github.com/vovakirdan/vector-risk/internal/core"
	"github.com/vovakirdan/vector-risk/internal/game"
	"github.com/vovakirdan/vector-risk/internal/session"
	"github.com/vovakirdan/vector-risk/internal/storage"
)

// Options carries the collaborators of the desktop frontend.
type Options struct {
	Audio  audio.Player    // Nil plays nothing
	Ledger *storage.Ledger // Nil records nothing
	Logger *log.Logger     // Nil logs nothing
	Clock  core.Clock      // Nil uses the wall clock
}

// App adapts a game to ebiten.Game.
type App struct {
	game   *game.Game
	clock  core.Clock
	sink   *session.Sink
	input  core.InputFrame
	state  game.State
	width  int
	height int
}

// NewApp creates the window adapter for g. The game is reset in NewApp.
func NewApp(g *game.Game, cfg core.RuntimeConfig, opts Options) *App {
	g.Reset(cfg)
	clock := opts.Clock
	if clock == nil {
		clock = core.NewWallClock()
	}
	field := g.Config().Window
	return &App{
		game:   g,
		clock:  clock,
		sink:   session.NewSink(opts.Audio, opts.Ledger, opts.Logger),
		input:  core.NewInputFrame(),
		state:  g.State(),
		width:  int(field.Width),
		height: int(field.Height),
	}
}

// Update samples the mouse and runs one simulation frame.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	a.Frame(x, y, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))
	return nil
}

// Frame runs one simulation frame from a pointer sample in layout pixels.
func (a *App) Frame(x, y int, pressed bool) {
	a.input.MoveTo(float64(x), float64(y))
	if pressed {
		a.input.Press()
	}

	result := a.game.Step(a.clock.DeltaTime(), a.input)
	a.state = result.State
	a.sink.Drain(result.Events)
	a.input.Clear()
}

// Draw renders the latest frame.
func (a *App) Draw(screen *ebiten.Image) {
	a.game.Draw(NewCanvas(screen))
}

// Layout keeps the playfield size regardless of the window size.
func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

// State returns the session summary after the latest frame.
func (a *App) State() game.State {
	return a.state
}

// Run opens the window and blocks until it is closed.
func Run(g *game.Game, cfg core.RuntimeConfig, opts Options) (game.State, error) {
	app := NewApp(g, cfg, opts)
	field := g.Config().Window

	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle(field.Title)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(app); err != nil {
		return app.State(), err
	}
	return app.State(), nil
}
