package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vector-risk/internal/core"
)

// nudgeFraction is how far one steering key moves the aim point, as a share of the field width.
const nudgeFraction = 1.0 / 16

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Fire  key.Binding
	Left  key.Binding
	Right key.Binding
	Runs  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Left, k.Right, k.Runs, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fire, k.Left, k.Right},
		{k.Runs, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
// The mouse is the primary device; keys are a fallback for terminals without mouse reporting.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Fire: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("click/space", "fire / start"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left/a", "aim left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right/d", "aim right"),
		),
		Runs: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "runs"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ApplyKey updates the input frame from a steering or fire key.
// Steering moves the aim point from where it is, or from the field center
// when no pointer has been seen yet. Returns whether the key was consumed.
func (k KeyMap) ApplyKey(msg tea.KeyMsg, frame *core.InputFrame, fieldW float64) bool {
	switch {
	case key.Matches(msg, k.Fire):
		frame.Press()
	case key.Matches(msg, k.Left):
		nudge(frame, -fieldW*nudgeFraction, fieldW)
	case key.Matches(msg, k.Right):
		nudge(frame, fieldW*nudgeFraction, fieldW)
	default:
		return false
	}
	return true
}

func nudge(frame *core.InputFrame, dx, fieldW float64) {
	x, ok := frame.TargetX()
	if !ok {
		x = fieldW / 2
	}
	frame.MoveTo(core.ClampF(x+dx, 0, fieldW), frame.Pointer.Y)
}

// ApplyMouse updates the input frame from a mouse event already mapped to the playfield.
// Any motion moves the aim point; a left press is the primary action.
func ApplyMouse(msg tea.MouseMsg, at core.Vec2, frame *core.InputFrame) {
	frame.MoveTo(at.X, at.Y)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.Press()
	}
}
