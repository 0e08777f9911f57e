package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EditorBuffer is the session buffer backed by a bubbles textarea. The session
// reads and replaces its lines; keystrokes reach it through Update.
type EditorBuffer struct {
	area textarea.Model
}

// editorMaxLines bounds the buffer. The textarea sizes its line number gutter
// from MaxHeight, so it must stay positive and wide.
const editorMaxLines = 10000

// NewEditorBuffer creates an unfocused, unbounded editor.
func NewEditorBuffer(showLineNumbers bool) *EditorBuffer {
	ta := textarea.New()
	ta.ShowLineNumbers = showLineNumbers
	ta.Prompt = "  "
	ta.CharLimit = 0
	ta.MaxHeight = editorMaxLines
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorInactive))
	ta.BlurredStyle.LineNumber = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorInactive))
	ta.Blur()
	return &EditorBuffer{area: ta}
}

func (b *EditorBuffer) Lines() []string {
	return strings.Split(b.area.Value(), "\n")
}

// SetLines replaces the content and puts the cursor on the first line.
func (b *EditorBuffer) SetLines(lines []string) {
	b.area.SetValue(strings.Join(lines, "\n"))
	for b.area.Line() > 0 {
		b.area.CursorUp()
	}
	b.area.CursorStart()
}

// Update forwards a message to the textarea.
func (b *EditorBuffer) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	b.area, cmd = b.area.Update(msg)
	return cmd
}

func (b *EditorBuffer) Focus() tea.Cmd { return b.area.Focus() }

func (b *EditorBuffer) Blur() { b.area.Blur() }

func (b *EditorBuffer) Focused() bool { return b.area.Focused() }

func (b *EditorBuffer) SetSize(width, height int) {
	b.area.SetWidth(width)
	b.area.SetHeight(height)
}

func (b *EditorBuffer) View() string { return b.area.View() }
