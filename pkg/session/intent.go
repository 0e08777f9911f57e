package session

// Intent is an abstract user action, decoupled from the keys that produce it.
type Intent int

const (
	IntentNone Intent = iota
	IntentQuit
	IntentNewCard
	IntentDeleteCard
	IntentMoveDown
	IntentMoveUp
	IntentReshape
	IntentOpen
	IntentCursorUp
	IntentCursorDown
	IntentCommit
	IntentConfirm
	IntentCancel
	IntentCopy
)

var intentNames = map[Intent]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentNewCard:    "new-card",
	IntentDeleteCard: "delete-card",
	IntentMoveDown:   "move-down",
	IntentMoveUp:     "move-up",
	IntentReshape:    "reshape",
	IntentOpen:       "open",
	IntentCursorUp:   "cursor-up",
	IntentCursorDown: "cursor-down",
	IntentCommit:     "commit",
	IntentConfirm:    "confirm",
	IntentCancel:     "cancel",
	IntentCopy:       "copy",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}
