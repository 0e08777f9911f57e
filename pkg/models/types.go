package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIndexOutOfRange is returned when a card index does not exist in the document.
var ErrIndexOutOfRange = errors.New("card index out of range")

// Card is one content unit of the showcase document.
type Card struct {
	Title string
	Shape string
	Lines []string
}

// Content returns the card body as a single string.
func (c Card) Content() string {
	return strings.Join(c.Lines, "\n")
}

// Document is the ordered card store. Index 0 is reserved for the profile card,
// the rest are showcase cards in display (and serialization) order.
type Document struct {
	Cards []Card
}

// Len returns the number of cards including the profile.
func (d *Document) Len() int {
	return len(d.Cards)
}

// Card returns the card at index i.
func (d *Document) Card(i int) (Card, bool) {
	if i < 0 || i >= len(d.Cards) {
		return Card{}, false
	}
	return d.Cards[i], true
}

// Profile returns the first card of the document.
func (d *Document) Profile() (Card, bool) {
	return d.Card(0)
}

// Showcase returns every card after the profile.
func (d *Document) Showcase() []Card {
	if len(d.Cards) <= 1 {
		return nil
	}
	return d.Cards[1:]
}

// Insert places card at index i, shifting later cards down. i may equal Len.
func (d *Document) Insert(i int, card Card) error {
	if i < 0 || i > len(d.Cards) {
		return fmt.Errorf("insert at %d: %w", i, ErrIndexOutOfRange)
	}
	d.Cards = append(d.Cards, Card{})
	copy(d.Cards[i+1:], d.Cards[i:])
	d.Cards[i] = card
	return nil
}

// Remove deletes the card at index i.
func (d *Document) Remove(i int) error {
	if i < 0 || i >= len(d.Cards) {
		return fmt.Errorf("remove %d: %w", i, ErrIndexOutOfRange)
	}
	d.Cards = append(d.Cards[:i], d.Cards[i+1:]...)
	return nil
}

// Swap exchanges the cards at i and j.
func (d *Document) Swap(i, j int) error {
	if i < 0 || i >= len(d.Cards) || j < 0 || j >= len(d.Cards) {
		return fmt.Errorf("swap %d and %d: %w", i, j, ErrIndexOutOfRange)
	}
	d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	return nil
}

// SetShape replaces the shape code of the card at index i.
func (d *Document) SetShape(i int, shape string) error {
	if i < 0 || i >= len(d.Cards) {
		return fmt.Errorf("reshape %d: %w", i, ErrIndexOutOfRange)
	}
	d.Cards[i].Shape = shape
	return nil
}

// SetLines replaces the content lines of the card at index i.
func (d *Document) SetLines(i int, lines []string) error {
	if i < 0 || i >= len(d.Cards) {
		return fmt.Errorf("set content of %d: %w", i, ErrIndexOutOfRange)
	}
	d.Cards[i].Lines = append([]string(nil), lines...)
	return nil
}
