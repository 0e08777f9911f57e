package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/showcase/pkg/models"
	"github.com/pluqqy/showcase/pkg/session"
)

// ConfirmationConfig holds the content of a confirmation dialog
type ConfirmationConfig struct {
	Title       string
	Message     string
	Warning     string   // shown in orange
	Details     []string // optional detail lines
	Destructive bool     // If true, Yes is red, No is green
	YesLabel    string
	NoLabel     string
	Width       int
}

const defaultDialogWidth = 50

func dialogStyles() (border, header lipgloss.Style) {
	border = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorActive)).
		Padding(1, 2)
	header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning))
	return border, header
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}

// renderConfirmation draws a bordered yes/no dialog.
func renderConfirmation(config ConfirmationConfig) string {
	borderStyle, headerStyle := dialogStyles()
	warningStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorNormal))

	width := config.Width
	if width == 0 {
		width = defaultDialogWidth
	}
	if config.YesLabel == "" {
		config.YesLabel = "Yes"
	}
	if config.NoLabel == "" {
		config.NoLabel = "No"
	}

	var b strings.Builder
	if config.Title != "" {
		b.WriteString(centered(width, headerStyle.Render(config.Title)))
		b.WriteString("\n\n")
	}
	if config.Message != "" {
		b.WriteString(centered(width, config.Message))
		b.WriteString("\n")
	}
	if config.Warning != "" {
		b.WriteString("\n")
		b.WriteString(centered(width, warningStyle.Render(config.Warning)))
		b.WriteString("\n")
	}
	if len(config.Details) > 0 {
		b.WriteString("\n")
		for _, detail := range config.Details {
			b.WriteString(detailStyle.Render("  • " + detail))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	labels := fmt.Sprintf("(%s / %s)", strings.ToLower(config.YesLabel), strings.ToLower(config.NoLabel))
	b.WriteString(centered(width, formatConfirmOptions(config.Destructive)+"  "+labels))

	return borderStyle.Render(b.String())
}

func formatConfirmOptions(destructive bool) string {
	yes := lipgloss.NewStyle().Bold(true)
	no := lipgloss.NewStyle().Bold(true)
	if destructive {
		yes = yes.Foreground(lipgloss.Color(ColorDanger))
		no = no.Foreground(lipgloss.Color(ColorSuccess))
	} else {
		yes = yes.Foreground(lipgloss.Color(ColorSuccess))
		no = no.Foreground(lipgloss.Color(ColorDanger))
	}
	return yes.Render("[Y]es") + " / " + no.Render("[N]o")
}

// deleteDialog asks before removing card.
func deleteDialog(card models.Card, index int) string {
	return renderConfirmation(ConfirmationConfig{
		Title:       "Delete Card",
		Message:     fmt.Sprintf("Delete card %d (%s, %s)?", index, card.Title, card.Shape),
		Warning:     "The card content will be lost.",
		Destructive: true,
	})
}

// createDialog lists card types, or the shapes once a type is chosen.
func createDialog(m session.Create, catalog *models.Catalog) string {
	borderStyle, headerStyle := dialogStyles()

	title := "New Card"
	items := catalog.Types
	cursor := m.CardType
	if !m.ChoosingType() {
		title = "Shape for " + catalog.Types[m.CardType]
		items = catalog.Shapes
		cursor = m.Shape
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")
	for i, item := range items {
		label := item
		if m.ChoosingType() {
			swatch := blockStyle(catalog.Color(item)).Render("  ")
			label = swatch + " " + item
		}
		if i == cursor {
			b.WriteString(CursorStyle.Render("▸ ") + SelectedStyle.Render(label))
		} else {
			b.WriteString("  " + NormalStyle.Render(label))
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}

	return borderStyle.Width(defaultDialogWidth / 2).Render(b.String())
}
