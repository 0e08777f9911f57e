package session

import "fmt"

// NoShape marks a Create mode that is still choosing the card type.
const NoShape = -1

// Mode is the current state of an editing session. The concrete modes are
// Select, Edit, Create, Delete and Quit; Anchor is the card index the mode
// was entered from.
type Mode interface {
	Anchor() int
	String() string
	isMode()
}

// Select browses the card list with the cursor on Index.
type Select struct{ Index int }

// Edit edits the content of the card at Index through the buffer.
type Edit struct{ Index int }

// Create picks a card type, then a shape, for a card inserted after Index.
type Create struct {
	Index    int
	CardType int
	Shape    int // NoShape while choosing the type
}

// Delete asks for confirmation before removing the card at Index.
type Delete struct{ Index int }

// Quit ends the session.
type Quit struct{}

func (m Select) Anchor() int { return m.Index }
func (m Edit) Anchor() int   { return m.Index }
func (m Create) Anchor() int { return m.Index }
func (m Delete) Anchor() int { return m.Index }
func (Quit) Anchor() int     { return 0 }

func (m Select) String() string { return fmt.Sprintf("Select(%d)", m.Index) }
func (m Edit) String() string   { return fmt.Sprintf("Edit(%d)", m.Index) }
func (m Delete) String() string { return fmt.Sprintf("Delete(%d)", m.Index) }
func (Quit) String() string     { return "Quit" }

func (m Create) String() string {
	if m.ChoosingType() {
		return fmt.Sprintf("Create(%d, %d, none)", m.Index, m.CardType)
	}
	return fmt.Sprintf("Create(%d, %d, %d)", m.Index, m.CardType, m.Shape)
}

// ChoosingType reports whether the type menu (rather than the shape menu) is open.
func (m Create) ChoosingType() bool { return m.Shape == NoShape }

func (Select) isMode() {}
func (Edit) isMode()   {}
func (Create) isMode() {}
func (Delete) isMode() {}
func (Quit) isMode()   {}
