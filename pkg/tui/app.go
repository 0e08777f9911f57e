// Package tui renders an editing session as a three pane terminal program: the
// card title list, the content editor and the packed preview.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/pluqqy/showcase/pkg/arrange"
	"github.com/pluqqy/showcase/pkg/session"
)

const statusTimeout = 3 * time.Second

type App struct {
	session *session.Session
	editor  *EditorBuffer
	preview viewport.Model
	keys    keyMap

	grid        arrange.Grid
	showPreview bool
	logger      *zap.Logger

	width     int
	height    int
	statusMsg string
	statusGen int
}

// Option configures an App.
type Option func(*App)

// WithGrid sets the preview grid.
func WithGrid(grid arrange.Grid) Option {
	return func(a *App) { a.grid = grid }
}

// WithPreview toggles the preview pane.
func WithPreview(show bool) Option {
	return func(a *App) { a.showPreview = show }
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewApp wraps s. editor must be the buffer s was created with.
func NewApp(s *session.Session, editor *EditorBuffer, opts ...Option) *App {
	a := &App{
		session:     s,
		editor:      editor,
		preview:     viewport.New(0, 0),
		keys:        defaultKeyMap(),
		grid:        arrange.DefaultGrid,
		showPreview: true,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.sync()
	return a
}

// Session returns the wrapped session.
func (a *App) Session() *session.Session { return a.session }

func (a *App) Init() tea.Cmd {
	return textarea.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		return a, a.handleKey(msg)

	case StatusMsg:
		return a, a.setStatus(string(msg))

	case clearStatusMsg:
		if msg.gen == a.statusGen {
			a.statusMsg = ""
		}
		return a, nil
	}

	if a.editor.Focused() {
		return a, a.editor.Update(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	mode := a.session.Mode()
	intent := a.keys.intent(mode, msg)

	if _, editing := mode.(session.Edit); editing && intent == session.IntentNone {
		return a.editor.Update(msg)
	}
	if intent == session.IntentNone {
		return nil
	}

	if !a.session.Apply(intent) {
		a.logger.Debug("intent ignored", zap.Stringer("mode", mode), zap.Stringer("intent", intent))
	}
	if a.session.Done() {
		return tea.Quit
	}

	cmd := a.sync()
	if notice := a.session.Notice(); notice != "" {
		return tea.Batch(cmd, a.setStatus(notice))
	}
	return cmd
}

// sync brings editor focus and preview scroll in line with the session mode.
func (a *App) sync() tea.Cmd {
	var cmd tea.Cmd
	if _, editing := a.session.Mode().(session.Edit); editing {
		if !a.editor.Focused() {
			cmd = a.editor.Focus()
		}
	} else {
		a.editor.Blur()
	}
	a.refreshPreview()
	return cmd
}

func (a *App) setStatus(msg string) tea.Cmd {
	a.statusMsg = msg
	a.statusGen++
	gen := a.statusGen
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{gen: gen}
	})
}

func (a *App) resize() {
	l := a.layout()
	a.editor.SetSize(l.editor-2, l.body-3)
	a.preview.Width = l.preview - 2
	a.preview.Height = l.body - 3
	a.refreshPreview()
}

func (a *App) refreshPreview() {
	if a.preview.Width <= 0 {
		return
	}
	placements, err := a.session.Layout(a.grid)
	if err != nil {
		a.preview.SetContent(InvalidStyle.Render(err.Error()))
		return
	}

	canvas := renderPreview(a.grid, placements, a.session.Catalog(), a.session.Selected(), a.preview.Width)
	a.preview.SetContent(canvas.content)

	if canvas.bottom <= canvas.top {
		return
	}
	if canvas.top < a.preview.YOffset {
		a.preview.SetYOffset(canvas.top)
	} else if canvas.bottom > a.preview.YOffset+a.preview.Height {
		a.preview.SetYOffset(canvas.bottom - a.preview.Height)
	}
}

// StatusMsg shows a transient message in the status bar.
type StatusMsg string

type clearStatusMsg struct {
	gen int
}
