package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/showcase/pkg/arrange"
	"github.com/pluqqy/showcase/pkg/models"
	"github.com/pluqqy/showcase/pkg/session"
)

type paneLayout struct {
	list    int
	editor  int
	preview int
	body    int
}

// layout splits the window 20/50/30 between the panes. The status bar keeps
// one line.
func (a *App) layout() paneLayout {
	l := paneLayout{
		list:   a.width * 20 / 100,
		editor: a.width * 50 / 100,
		body:   a.height - 1,
	}
	l.preview = a.width - l.list - l.editor
	if !a.showPreview {
		l.editor += l.preview
		l.preview = 0
	}
	return l
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	l := a.layout()
	var body string
	switch m := a.session.Mode().(type) {
	case session.Create:
		body = lipgloss.Place(a.width, l.body, lipgloss.Center, lipgloss.Center,
			createDialog(m, a.session.Catalog()))
	case session.Delete:
		card, _ := a.session.Document().Card(m.Index)
		body = lipgloss.Place(a.width, l.body, lipgloss.Center, lipgloss.Center,
			deleteDialog(card, m.Index))
	default:
		panes := []string{a.titlesView(l), a.editorView(l)}
		if a.showPreview {
			panes = append(panes, a.previewView(l))
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, a.statusView())
}

func pane(active bool, width, height int, header, content string) string {
	innerWidth := width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}
	header = truncate.StringWithTail(header, uint(innerWidth), "…")
	return paneStyle(active).
		Width(innerWidth).
		Height(height - 2).
		MaxHeight(height).
		Render(header + "\n" + content)
}

func (a *App) titlesView(l paneLayout) string {
	_, active := a.session.Mode().(session.Select)
	doc := a.session.Document()
	catalog := a.session.Catalog()
	selected := a.session.Selected()

	visible := l.body - 3
	if visible < 1 {
		visible = 1
	}
	start := 0
	if selected >= visible {
		start = selected - visible + 1
	}

	var lines []string
	for i := start; i < doc.Len() && i < start+visible; i++ {
		card, _ := doc.Card(i)
		label := truncate.StringWithTail(titleLabel(i, card), uint(max(l.list-4, 1)), "…")
		if i == selected {
			lines = append(lines, SelectedStyle.Render("▸ "+label))
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(catalog.Color(card.Title)))
		lines = append(lines, "  "+style.Render(label))
	}

	return pane(active, l.list, l.body, GetActiveHeaderStyle(active).Render("Title"), strings.Join(lines, "\n"))
}

// titleLabel names a card in the title list: "> Profile" for the profile,
// "N. Type-Shape" for showcase cards.
func titleLabel(i int, card models.Card) string {
	if i == 0 {
		return "> " + card.Title
	}
	return fmt.Sprintf("%d. %s-%s", i, card.Title, card.Shape)
}

func (a *App) editorView(l paneLayout) string {
	_, active := a.session.Mode().(session.Edit)
	return pane(active, l.editor, l.body, a.editorTitle(), a.editor.View())
}

// editorTitle reports the validity of the buffer while editing.
func (a *App) editorTitle() string {
	if _, editing := a.session.Mode().(session.Edit); !editing {
		card, _ := a.session.Document().Card(a.session.Selected())
		return HeaderStyle.Render("Edit") + " " + NormalStyle.Render(card.Title+" "+card.Shape)
	}
	if err := a.session.Check(); err != nil {
		oops := "O" + strings.Repeat("o", a.session.InvalidAttempts()) + "ps! " + err.Error()
		return InvalidStyle.Render(oops)
	}
	return ValidStyle.Render("OK")
}

func (a *App) previewView(l paneLayout) string {
	return pane(false, l.preview, l.body, HeaderStyle.Render("Preview"), a.preview.View())
}

func (a *App) statusView() string {
	text := a.statusMsg
	if text == "" {
		text = helpLine(a.keys.help(a.session.Mode()))
	}
	width := max(a.width-2, 1)
	return StatusStyle.Width(a.width).Render(wordwrap.String(text, width))
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

type previewCanvas struct {
	content string
	// top and bottom bound the selected card in canvas lines
	top    int
	bottom int
}

type previewCell struct {
	owner int
	ch    rune
}

// renderPreview draws placements as colored blocks scaled to width. Each grid
// cell is cellW columns by cellH lines with a one cell gap between blocks.
func renderPreview(grid arrange.Grid, placements []arrange.Placement, catalog *models.Catalog, selected, width int) previewCanvas {
	if len(placements) == 0 || grid.Cols <= 0 {
		return previewCanvas{content: HelpStyle.Render("(no cards)")}
	}

	cellW := max(width/grid.Cols, 2)
	cellH := max(cellW/2, 1)
	rows := arrange.Extent(placements) * cellH
	cols := grid.Cols * cellW

	canvas := make([][]previewCell, rows)
	for y := range canvas {
		canvas[y] = make([]previewCell, cols)
		for x := range canvas[y] {
			canvas[y][x] = previewCell{owner: -1, ch: ' '}
		}
	}

	var out previewCanvas
	for k, p := range placements {
		top, left := p.Row*cellH, p.Col*cellW
		h, w := p.Height*cellH, p.Width*cellW-1
		if cellH > 1 {
			h--
		}
		label := []rune(p.Type)
		for y := top; y < top+h; y++ {
			for x := left; x < left+w; x++ {
				c := previewCell{owner: k, ch: ' '}
				if y == top && x-left < len(label) {
					c.ch = label[x-left]
				}
				canvas[y][x] = c
			}
		}
		if p.Index+1 == selected {
			out.top, out.bottom = top, top+h
		}
	}

	colors := make([]string, len(placements))
	for k, p := range placements {
		colors[k] = catalog.Color(p.Type)
		if p.Index+1 == selected {
			colors[k] = ColorHighlight
		}
	}

	lines := make([]string, rows)
	for y, row := range canvas {
		var b strings.Builder
		for x := 0; x < len(row); {
			owner := row[x].owner
			var run strings.Builder
			for ; x < len(row) && row[x].owner == owner; x++ {
				run.WriteRune(row[x].ch)
			}
			if owner < 0 {
				b.WriteString(run.String())
				continue
			}
			b.WriteString(blockStyle(colors[owner]).
				Foreground(lipgloss.Color(ColorDark)).
				Render(run.String()))
		}
		lines[y] = b.String()
	}
	out.content = strings.Join(lines, "\n")
	return out
}
