package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/showcase/pkg/session"
)

type keyMap struct {
	Quit     key.Binding
	New      key.Binding
	Delete   key.Binding
	MoveDown key.Binding
	MoveUp   key.Binding
	Reshape  key.Binding
	Open     key.Binding
	Up       key.Binding
	Down     key.Binding
	Copy     key.Binding
	Commit   key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Yes      key.Binding
	No       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "Q"), key.WithHelp("q", "quit")),
		New:      key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "new")),
		Delete:   key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d", "delete")),
		MoveDown: key.NewBinding(key.WithKeys("j", "J"), key.WithHelp("j", "move down")),
		MoveUp:   key.NewBinding(key.WithKeys("k", "K"), key.WithHelp("k", "move up")),
		Reshape:  key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "reshape")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Commit:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Yes:      key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:       key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
	}
}

// intent translates a key press into a session intent for mode. Keys with no
// meaning in mode yield IntentNone.
func (k keyMap) intent(mode session.Mode, msg tea.KeyMsg) session.Intent {
	switch mode.(type) {
	case session.Select:
		switch {
		case key.Matches(msg, k.Quit):
			return session.IntentQuit
		case key.Matches(msg, k.New):
			return session.IntentNewCard
		case key.Matches(msg, k.Delete):
			return session.IntentDeleteCard
		case key.Matches(msg, k.MoveDown):
			return session.IntentMoveDown
		case key.Matches(msg, k.MoveUp):
			return session.IntentMoveUp
		case key.Matches(msg, k.Reshape):
			return session.IntentReshape
		case key.Matches(msg, k.Open):
			return session.IntentOpen
		case key.Matches(msg, k.Up):
			return session.IntentCursorUp
		case key.Matches(msg, k.Down):
			return session.IntentCursorDown
		case key.Matches(msg, k.Copy):
			return session.IntentCopy
		}

	case session.Edit:
		if key.Matches(msg, k.Commit) {
			return session.IntentCommit
		}

	case session.Create:
		switch {
		case key.Matches(msg, k.Confirm):
			return session.IntentConfirm
		case key.Matches(msg, k.Cancel):
			return session.IntentCancel
		case key.Matches(msg, k.Up):
			return session.IntentCursorUp
		case key.Matches(msg, k.Down):
			return session.IntentCursorDown
		}

	case session.Delete:
		switch {
		case key.Matches(msg, k.Confirm), key.Matches(msg, k.Yes):
			return session.IntentConfirm
		case key.Matches(msg, k.Cancel), key.Matches(msg, k.No):
			return session.IntentCancel
		}
	}

	return session.IntentNone
}

// help lists the bindings shown in the status bar for mode.
func (k keyMap) help(mode session.Mode) []key.Binding {
	switch mode.(type) {
	case session.Select:
		return []key.Binding{k.Up, k.Down, k.Open, k.New, k.Delete, k.MoveUp, k.MoveDown, k.Reshape, k.Copy, k.Quit}
	case session.Edit:
		return []key.Binding{k.Commit}
	case session.Create:
		return []key.Binding{k.Up, k.Down, k.Confirm, k.Cancel}
	case session.Delete:
		return []key.Binding{k.Yes, k.No}
	}
	return nil
}
