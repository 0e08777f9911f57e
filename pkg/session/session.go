// Package session implements the card editing state machine.
//
// A Session owns the document for the length of a run. Each user intent is
// applied against the current mode and may mutate the document, move the
// selection, or switch modes. Intents that do not apply in the current mode are
// ignored rather than reported.
package session

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/pluqqy/showcase/pkg/arrange"
	"github.com/pluqqy/showcase/pkg/models"
	"github.com/pluqqy/showcase/pkg/schema"
)

// ErrEmptyDocument is returned by New for a document without a profile card.
var ErrEmptyDocument = errors.New("document has no profile card")

// Session is the editing state machine over one document.
type Session struct {
	doc     *models.Document
	catalog *models.Catalog
	buffer  Buffer
	mode    Mode

	invalidAttempts int
	lastErr         error
	notice          string

	clipboard func(string) error
	logger    *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for transition tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClipboard sets the function the Copy intent writes card content to.
func WithClipboard(write func(string) error) Option {
	return func(s *Session) {
		s.clipboard = write
	}
}

// New starts a session in Select(0) with the profile loaded into buffer.
func New(doc *models.Document, catalog *models.Catalog, buffer Buffer, opts ...Option) (*Session, error) {
	if doc == nil || doc.Len() == 0 {
		return nil, ErrEmptyDocument
	}

	s := &Session{
		doc:     doc,
		catalog: catalog,
		buffer:  buffer,
		mode:    Select{Index: 0},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.load(0)
	s.logger.Info("session started", zap.Int("cards", doc.Len()))
	return s, nil
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Document returns the card store.
func (s *Session) Document() *models.Document { return s.doc }

// Catalog returns the schema catalog.
func (s *Session) Catalog() *models.Catalog { return s.catalog }

// Buffer returns the editable buffer.
func (s *Session) Buffer() Buffer { return s.buffer }

// Selected returns the card index the current mode is anchored on.
func (s *Session) Selected() int { return s.mode.Anchor() }

// Done reports whether the session reached Quit.
func (s *Session) Done() bool {
	_, ok := s.mode.(Quit)
	return ok
}

// InvalidAttempts counts rejected commits since the last successful commit or
// since editing started.
func (s *Session) InvalidAttempts() int { return s.invalidAttempts }

// LastError returns the reason the last commit was rejected, if any.
func (s *Session) LastError() error { return s.lastErr }

// Notice returns a one-line message about the last side effect, e.g. a copy.
func (s *Session) Notice() string { return s.notice }

// Check validates the buffer against the schema of the card being edited. It
// returns nil outside Edit mode.
func (s *Session) Check() error {
	m, ok := s.mode.(Edit)
	if !ok {
		return nil
	}
	card, ok := s.doc.Card(m.Index)
	if !ok {
		return models.ErrIndexOutOfRange
	}
	return schema.Validate(s.catalog, card.Title, s.bufferText())
}

// Items returns the packing input for the showcase: every card but the profile.
func (s *Session) Items() []arrange.Item {
	showcase := s.doc.Showcase()
	items := make([]arrange.Item, len(showcase))
	for i, card := range showcase {
		items[i] = arrange.Item{Type: card.Title, Shape: card.Shape}
	}
	return items
}

// Layout packs the showcase cards onto grid. Placement.Index+1 is the card
// index in the document.
func (s *Session) Layout(grid arrange.Grid) ([]arrange.Placement, error) {
	return arrange.Pack(grid, s.Items())
}

// Apply performs intent in the current mode and reports whether it had any
// effect.
func (s *Session) Apply(intent Intent) bool {
	before := s.mode
	s.notice = ""

	var applied bool
	switch m := s.mode.(type) {
	case Select:
		applied = s.applySelect(m, intent)
	case Edit:
		applied = s.applyEdit(m, intent)
	case Create:
		applied = s.applyCreate(m, intent)
	case Delete:
		applied = s.applyDelete(m, intent)
	}

	if applied {
		s.logger.Debug("transition",
			zap.Stringer("from", before),
			zap.Stringer("intent", intent),
			zap.Stringer("to", s.mode))
	}
	return applied
}

func (s *Session) applySelect(m Select, intent Intent) bool {
	i := m.Index
	last := s.doc.Len() - 1

	switch intent {
	case IntentQuit:
		s.mode = Quit{}
		return true

	case IntentNewCard:
		s.mode = Create{Index: i, CardType: 0, Shape: NoShape}
		return true

	case IntentDeleteCard:
		if i == 0 {
			return false
		}
		s.mode = Delete{Index: i}
		return true

	case IntentMoveDown:
		// The profile stays at index 0: it neither moves nor gets displaced.
		if i == 0 || i >= last {
			return false
		}
		if err := s.doc.Swap(i, i+1); err != nil {
			return false
		}
		s.mode = Select{Index: i + 1}
		return true

	case IntentMoveUp:
		if i <= 1 {
			return false
		}
		if err := s.doc.Swap(i, i-1); err != nil {
			return false
		}
		s.mode = Select{Index: i - 1}
		return true

	case IntentReshape:
		card, ok := s.doc.Card(i)
		if !ok || i == 0 || s.catalog.IsFullRow(card.Title) {
			return false
		}
		next := s.catalog.NextShape(card.Shape)
		if err := s.doc.SetShape(i, next); err != nil {
			return false
		}
		s.logger.Debug("reshape", zap.String("type", card.Title), zap.String("shape", next))
		return true

	case IntentOpen:
		s.mode = Edit{Index: i}
		s.invalidAttempts = 0
		s.lastErr = nil
		s.load(i)
		return true

	case IntentCursorUp:
		if i <= 0 {
			return false
		}
		s.mode = Select{Index: i - 1}
		s.load(i - 1)
		return true

	case IntentCursorDown:
		if i >= last {
			return false
		}
		s.mode = Select{Index: i + 1}
		s.load(i + 1)
		return true

	case IntentCopy:
		return s.copyCard(i)
	}

	return false
}

func (s *Session) applyEdit(m Edit, intent Intent) bool {
	if intent != IntentCommit {
		return false
	}

	card, ok := s.doc.Card(m.Index)
	if !ok {
		return false
	}

	content := s.bufferText()
	if err := schema.Validate(s.catalog, card.Title, content); err != nil {
		s.invalidAttempts++
		s.lastErr = err
		s.logger.Debug("commit rejected",
			zap.Int("index", m.Index),
			zap.Int("attempts", s.invalidAttempts),
			zap.Error(err))
		return false
	}

	lines, err := schema.Format(content)
	if err != nil {
		s.invalidAttempts++
		s.lastErr = err
		return false
	}
	if err := s.doc.SetLines(m.Index, lines); err != nil {
		return false
	}

	s.buffer.SetLines(lines)
	s.invalidAttempts = 0
	s.lastErr = nil
	s.mode = Select{Index: m.Index}
	return true
}

func (s *Session) applyCreate(m Create, intent Intent) bool {
	switch intent {
	case IntentCancel:
		s.mode = Select{Index: m.Index}
		return true

	case IntentCursorUp:
		if m.ChoosingType() {
			if m.CardType <= 0 {
				return false
			}
			m.CardType--
		} else {
			if m.Shape <= 0 {
				return false
			}
			m.Shape--
		}
		s.mode = m
		return true

	case IntentCursorDown:
		if m.ChoosingType() {
			if m.CardType >= len(s.catalog.Types)-1 {
				return false
			}
			m.CardType++
		} else {
			if m.Shape >= len(s.catalog.Shapes)-1 {
				return false
			}
			m.Shape++
		}
		s.mode = m
		return true

	case IntentConfirm:
		if m.CardType < 0 || m.CardType >= len(s.catalog.Types) {
			return false
		}
		cardType := s.catalog.Types[m.CardType]
		fullRow := s.catalog.IsFullRow(cardType)

		if m.ChoosingType() && !fullRow {
			m.Shape = 0
			s.mode = m
			return true
		}
		return s.insertCard(m, cardType, fullRow)
	}

	return false
}

func (s *Session) insertCard(m Create, cardType string, fullRow bool) bool {
	shape := s.catalog.FullRowShape
	if !fullRow {
		if m.Shape < 0 || m.Shape >= len(s.catalog.Shapes) {
			return false
		}
		shape = s.catalog.Shapes[m.Shape]
	}

	lines, err := schema.Skeleton(s.catalog, cardType)
	if err != nil {
		s.logger.Warn("cannot build card skeleton", zap.String("type", cardType), zap.Error(err))
		s.notice = err.Error()
		return false
	}

	at := m.Index + 1
	if err := s.doc.Insert(at, models.Card{Title: cardType, Shape: shape, Lines: lines}); err != nil {
		return false
	}
	s.logger.Debug("card created", zap.Int("index", at), zap.String("type", cardType), zap.String("shape", shape))

	s.mode = Edit{Index: at}
	s.invalidAttempts = 0
	s.lastErr = nil
	s.load(at)
	return true
}

func (s *Session) applyDelete(m Delete, intent Intent) bool {
	switch intent {
	case IntentCancel:
		s.mode = Select{Index: m.Index}
		return true

	case IntentConfirm:
		if m.Index == 0 {
			return false
		}
		if err := s.doc.Remove(m.Index); err != nil {
			return false
		}
		s.logger.Debug("card deleted", zap.Int("index", m.Index))
		s.mode = Select{Index: m.Index - 1}
		s.load(m.Index - 1)
		return true
	}

	return false
}

func (s *Session) copyCard(i int) bool {
	if s.clipboard == nil {
		return false
	}
	card, ok := s.doc.Card(i)
	if !ok {
		return false
	}
	if err := s.clipboard(card.Content()); err != nil {
		s.logger.Warn("clipboard write failed", zap.Error(err))
		s.notice = "Failed to copy: " + err.Error()
		return false
	}
	s.notice = "Copied " + card.Title + " to clipboard"
	return true
}

func (s *Session) load(i int) {
	if card, ok := s.doc.Card(i); ok {
		s.buffer.SetLines(card.Lines)
	}
}

func (s *Session) bufferText() string {
	return strings.Join(s.buffer.Lines(), "\n")
}
