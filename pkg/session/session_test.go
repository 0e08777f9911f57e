package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pluqqy/showcase/pkg/arrange"
	"github.com/pluqqy/showcase/pkg/models"
	"github.com/pluqqy/showcase/pkg/schema"
)

func testCatalog() *models.Catalog {
	return models.NewCatalog(
		[]string{"Section", "Note", "Photo"},
		[]string{"4x4", "4x2", "2x4", "2x2", "1x4"},
		map[string][]string{
			"Section": {"title"},
			"Note":    {"text", "link?"},
			"Photo":   {"url"},
		},
		nil,
		arrange.DefaultGrid,
	)
}

// testDocument returns a profile plus n-1 notes whose text is their index.
func testDocument(n int) *models.Document {
	doc := &models.Document{Cards: []models.Card{
		{Title: "Profile", Shape: "1x8", Lines: []string{`{"name": "p"}`}},
	}}
	for i := 1; i < n; i++ {
		doc.Cards = append(doc.Cards, models.Card{
			Title: "Note",
			Shape: "2x2",
			Lines: []string{`{"text": "` + string(rune('0'+i)) + `"}`},
		})
	}
	return doc
}

func newSession(t *testing.T, doc *models.Document, opts ...Option) (*Session, *LineBuffer) {
	t.Helper()
	buf := NewLineBuffer()
	s, err := New(doc, testCatalog(), buf, opts...)
	require.NoError(t, err)
	return s, buf
}

func apply(s *Session, intents ...Intent) {
	for _, in := range intents {
		s.Apply(in)
	}
}

func texts(doc *models.Document) []string {
	var out []string
	for _, c := range doc.Showcase() {
		out = append(out, c.Content())
	}
	return out
}

func TestNew(t *testing.T) {
	s, buf := newSession(t, testDocument(3))

	assert.Equal(t, Select{Index: 0}, s.Mode())
	assert.Equal(t, []string{`{"name": "p"}`}, buf.Lines())
	assert.False(t, s.Done())

	_, err := New(&models.Document{}, testCatalog(), NewLineBuffer())
	assert.True(t, errors.Is(err, ErrEmptyDocument))
}

func TestSelectCursor(t *testing.T) {
	s, buf := newSession(t, testDocument(3))

	assert.False(t, s.Apply(IntentCursorUp), "cursor clamps at the top")

	assert.True(t, s.Apply(IntentCursorDown))
	assert.Equal(t, Select{Index: 1}, s.Mode())
	assert.Equal(t, []string{`{"text": "1"}`}, buf.Lines())

	assert.True(t, s.Apply(IntentCursorDown))
	assert.False(t, s.Apply(IntentCursorDown), "cursor clamps at the bottom")
	assert.Equal(t, Select{Index: 2}, s.Mode())

	assert.True(t, s.Apply(IntentCursorUp))
	assert.Equal(t, Select{Index: 1}, s.Mode())
	assert.Equal(t, []string{`{"text": "1"}`}, buf.Lines())
}

func TestSelectQuit(t *testing.T) {
	s, _ := newSession(t, testDocument(2))

	assert.True(t, s.Apply(IntentQuit))
	assert.Equal(t, Quit{}, s.Mode())
	assert.True(t, s.Done())

	assert.False(t, s.Apply(IntentCursorDown), "quit is terminal")
	assert.False(t, s.Apply(IntentNewCard))
}

func TestMoveCards(t *testing.T) {
	t.Run("move down swaps and follows", func(t *testing.T) {
		s, buf := newSession(t, testDocument(4))
		apply(s, IntentCursorDown)

		assert.True(t, s.Apply(IntentMoveDown))
		assert.Equal(t, Select{Index: 2}, s.Mode())
		assert.Equal(t, []string{`{"text": "2"}`, `{"text": "1"}`, `{"text": "3"}`}, texts(s.Document()))
		assert.Equal(t, []string{`{"text": "1"}`}, buf.Lines(), "buffer still shows the moved card")
	})

	t.Run("move up swaps and follows", func(t *testing.T) {
		s, _ := newSession(t, testDocument(4))
		apply(s, IntentCursorDown, IntentCursorDown, IntentCursorDown)

		assert.True(t, s.Apply(IntentMoveUp))
		assert.Equal(t, Select{Index: 2}, s.Mode())
		assert.Equal(t, []string{`{"text": "1"}`, `{"text": "3"}`, `{"text": "2"}`}, texts(s.Document()))
	})

	t.Run("last card cannot move down", func(t *testing.T) {
		s, _ := newSession(t, testDocument(3))
		apply(s, IntentCursorDown, IntentCursorDown)

		assert.False(t, s.Apply(IntentMoveDown))
		assert.Equal(t, Select{Index: 2}, s.Mode())
	})

	t.Run("profile never moves", func(t *testing.T) {
		s, _ := newSession(t, testDocument(3))

		assert.False(t, s.Apply(IntentMoveDown))
		assert.False(t, s.Apply(IntentMoveUp))

		apply(s, IntentCursorDown)
		assert.False(t, s.Apply(IntentMoveUp), "first showcase card cannot displace the profile")
		assert.Equal(t, "Profile", s.Document().Cards[0].Title)
		assert.Equal(t, Select{Index: 1}, s.Mode())
	})
}

func TestReshape(t *testing.T) {
	doc := testDocument(2)
	doc.Cards = append(doc.Cards, models.Card{Title: "Section", Shape: "1x8", Lines: []string{`{"title": "s"}`}})
	s, _ := newSession(t, doc)

	assert.False(t, s.Apply(IntentReshape), "profile is not reshaped")
	assert.Equal(t, "1x8", doc.Cards[0].Shape)

	apply(s, IntentCursorDown)
	want := []string{"1x4", "4x4", "4x2", "2x4", "2x2"}
	for _, shape := range want {
		assert.True(t, s.Apply(IntentReshape))
		assert.Equal(t, shape, doc.Cards[1].Shape)
	}
	assert.Equal(t, Select{Index: 1}, s.Mode())

	apply(s, IntentCursorDown)
	assert.False(t, s.Apply(IntentReshape), "full-row cards keep their shape")
	assert.Equal(t, "1x8", doc.Cards[2].Shape)
}

func TestDelete(t *testing.T) {
	t.Run("confirm removes and selects previous", func(t *testing.T) {
		s, buf := newSession(t, testDocument(5))
		apply(s, IntentCursorDown, IntentCursorDown)
		require.Equal(t, Select{Index: 2}, s.Mode())

		assert.True(t, s.Apply(IntentDeleteCard))
		assert.Equal(t, Delete{Index: 2}, s.Mode())
		assert.Equal(t, 5, s.Document().Len(), "nothing removed before confirmation")

		assert.True(t, s.Apply(IntentConfirm))
		assert.Equal(t, 4, s.Document().Len())
		assert.Equal(t, Select{Index: 1}, s.Mode())
		assert.Equal(t, s.Document().Cards[1].Lines, buf.Lines())
		assert.Equal(t, []string{`{"text": "1"}`, `{"text": "3"}`, `{"text": "4"}`}, texts(s.Document()))
	})

	t.Run("cancel keeps the card", func(t *testing.T) {
		s, _ := newSession(t, testDocument(3))
		apply(s, IntentCursorDown, IntentDeleteCard)

		assert.True(t, s.Apply(IntentCancel))
		assert.Equal(t, Select{Index: 1}, s.Mode())
		assert.Equal(t, 3, s.Document().Len())
	})

	t.Run("profile cannot be deleted", func(t *testing.T) {
		s, _ := newSession(t, testDocument(3))

		assert.False(t, s.Apply(IntentDeleteCard))
		assert.Equal(t, Select{Index: 0}, s.Mode())
		assert.Equal(t, 3, s.Document().Len())
	})

	t.Run("other intents are ignored", func(t *testing.T) {
		s, _ := newSession(t, testDocument(3))
		apply(s, IntentCursorDown, IntentDeleteCard)

		assert.False(t, s.Apply(IntentCursorDown))
		assert.False(t, s.Apply(IntentQuit))
		assert.Equal(t, Delete{Index: 1}, s.Mode())
	})
}

func TestCreateFullRowCard(t *testing.T) {
	s, buf := newSession(t, testDocument(3))

	assert.True(t, s.Apply(IntentNewCard))
	assert.Equal(t, Create{Index: 0, CardType: 0, Shape: NoShape}, s.Mode())

	assert.True(t, s.Apply(IntentConfirm))
	assert.Equal(t, Edit{Index: 1}, s.Mode())

	card := s.Document().Cards[1]
	assert.Equal(t, "Section", card.Title)
	assert.Equal(t, "1x8", card.Shape)
	assert.Equal(t, []string{"{", `    "title": ""`, "}"}, card.Lines)
	assert.Equal(t, card.Lines, buf.Lines())
	assert.Equal(t, 4, s.Document().Len())
}

func TestCreateShapedCard(t *testing.T) {
	s, buf := newSession(t, testDocument(3))
	apply(s, IntentCursorDown, IntentNewCard)

	assert.True(t, s.Apply(IntentCursorDown))
	assert.True(t, s.Apply(IntentCursorDown))
	assert.False(t, s.Apply(IntentCursorDown), "type cursor clamps at the last type")
	assert.Equal(t, Create{Index: 1, CardType: 2, Shape: NoShape}, s.Mode())

	assert.True(t, s.Apply(IntentCursorUp))
	assert.Equal(t, Create{Index: 1, CardType: 1, Shape: NoShape}, s.Mode())

	assert.True(t, s.Apply(IntentConfirm))
	assert.Equal(t, Create{Index: 1, CardType: 1, Shape: 0}, s.Mode())

	assert.False(t, s.Apply(IntentCursorUp), "shape cursor clamps at the first shape")
	for i := 0; i < 10; i++ {
		s.Apply(IntentCursorDown)
	}
	assert.Equal(t, Create{Index: 1, CardType: 1, Shape: 4}, s.Mode(), "shape cursor clamps at the last shape")
	assert.True(t, s.Apply(IntentCursorUp))

	assert.True(t, s.Apply(IntentConfirm))
	assert.Equal(t, Edit{Index: 2}, s.Mode())

	card := s.Document().Cards[2]
	assert.Equal(t, "Note", card.Title)
	assert.Equal(t, "2x2", card.Shape)
	assert.Equal(t, []string{"{", `    "text": "",`, `    "link": ""`, "}"}, card.Lines)
	assert.Equal(t, card.Lines, buf.Lines())
}

func TestCreateCancel(t *testing.T) {
	s, _ := newSession(t, testDocument(2))

	apply(s, IntentNewCard)
	assert.True(t, s.Apply(IntentCancel))
	assert.Equal(t, Select{Index: 0}, s.Mode())

	apply(s, IntentNewCard, IntentCursorDown, IntentConfirm)
	require.Equal(t, Create{Index: 0, CardType: 1, Shape: 0}, s.Mode())
	assert.True(t, s.Apply(IntentCancel))
	assert.Equal(t, Select{Index: 0}, s.Mode())
	assert.Equal(t, 2, s.Document().Len())
}

func TestCreateUnknownFields(t *testing.T) {
	catalog := testCatalog()
	catalog.Types = append(catalog.Types, "Map")
	s, err := New(testDocument(2), catalog, NewLineBuffer())
	require.NoError(t, err)

	apply(s, IntentNewCard, IntentCursorDown, IntentCursorDown, IntentCursorDown, IntentConfirm)
	require.Equal(t, Create{Index: 0, CardType: 3, Shape: 0}, s.Mode())

	assert.False(t, s.Apply(IntentConfirm))
	assert.Equal(t, 2, s.Document().Len())
	assert.NotEmpty(t, s.Notice())
}

func TestEditCommit(t *testing.T) {
	s, buf := newSession(t, testDocument(3))
	apply(s, IntentCursorDown)

	assert.True(t, s.Apply(IntentOpen))
	assert.Equal(t, Edit{Index: 1}, s.Mode())
	assert.Equal(t, 0, s.InvalidAttempts())

	buf.SetLines([]string{`{"text":"updated","link":"x"}`})
	assert.NoError(t, s.Check())
	assert.True(t, s.Apply(IntentCommit))

	want := []string{"{", `  "text": "updated",`, `  "link": "x"`, "}"}
	assert.Equal(t, Select{Index: 1}, s.Mode())
	assert.Equal(t, want, s.Document().Cards[1].Lines)
	assert.Equal(t, want, buf.Lines(), "buffer shows the reformatted content")
	assert.NoError(t, s.Check(), "no check outside Edit")
}

func TestEditValidationGate(t *testing.T) {
	s, buf := newSession(t, testDocument(3))
	apply(s, IntentCursorDown, IntentOpen)
	before := append([]string(nil), s.Document().Cards[1].Lines...)

	buf.SetLines([]string{`{"link": "x"}`})
	assert.True(t, errors.Is(s.Check(), schema.ErrMissingField))
	assert.False(t, s.Apply(IntentCommit))
	assert.Equal(t, Edit{Index: 1}, s.Mode())
	assert.Equal(t, 1, s.InvalidAttempts())
	assert.True(t, errors.Is(s.LastError(), schema.ErrMissingField))
	assert.Equal(t, before, s.Document().Cards[1].Lines, "rejected commit must not touch the store")

	buf.SetLines([]string{`{"text": `})
	assert.False(t, s.Apply(IntentCommit))
	assert.Equal(t, 2, s.InvalidAttempts())
	assert.True(t, errors.Is(s.LastError(), schema.ErrInvalidJSON))

	assert.False(t, s.Apply(IntentCursorDown), "text intents do not change state")
	assert.False(t, s.Apply(IntentQuit))
	assert.Equal(t, 2, s.InvalidAttempts())

	buf.SetLines([]string{`{"text": "ok"}`})
	assert.True(t, s.Apply(IntentCommit))
	assert.Equal(t, 0, s.InvalidAttempts())
	assert.NoError(t, s.LastError())
}

func TestEditCounterResetsOnOpen(t *testing.T) {
	s, buf := newSession(t, testDocument(2))
	apply(s, IntentCursorDown, IntentOpen)

	buf.SetLines([]string{"nope"})
	apply(s, IntentCommit, IntentCommit)
	require.Equal(t, 2, s.InvalidAttempts())

	buf.SetLines([]string{`{"text": "1"}`})
	apply(s, IntentCommit)
	apply(s, IntentOpen)
	assert.Equal(t, 0, s.InvalidAttempts())
}

func TestEditReformatIsIdempotent(t *testing.T) {
	s, buf := newSession(t, testDocument(2))
	apply(s, IntentCursorDown, IntentOpen)

	buf.SetLines([]string{`{"text":  "a",  "n": [1, 2.5, {"z": null}]}`})
	require.True(t, s.Apply(IntentCommit))
	first := s.Document().Cards[1].Lines

	apply(s, IntentOpen)
	require.True(t, s.Apply(IntentCommit))
	assert.Equal(t, first, s.Document().Cards[1].Lines)
}

func TestProfileEdit(t *testing.T) {
	s, buf := newSession(t, testDocument(1))

	apply(s, IntentOpen)
	buf.SetLines([]string{`{"name": "Ada", "bio": "hi"}`})
	assert.True(t, s.Apply(IntentCommit))
	assert.Equal(t, Select{Index: 0}, s.Mode())
	assert.Contains(t, s.Document().Cards[0].Content(), `"Ada"`)
}

func TestCopy(t *testing.T) {
	var copied string
	s, _ := newSession(t, testDocument(2), WithClipboard(func(text string) error {
		copied = text
		return nil
	}))

	apply(s, IntentCursorDown)
	assert.True(t, s.Apply(IntentCopy))
	assert.Equal(t, `{"text": "1"}`, copied)
	assert.Contains(t, s.Notice(), "Copied Note")

	s.Apply(IntentCursorUp)
	assert.Empty(t, s.Notice(), "notice clears on the next intent")
}

func TestCopyFailure(t *testing.T) {
	s, _ := newSession(t, testDocument(2), WithClipboard(func(string) error {
		return errors.New("no clipboard")
	}))

	assert.False(t, s.Apply(IntentCopy))
	assert.Contains(t, s.Notice(), "no clipboard")

	plain, _ := newSession(t, testDocument(2))
	assert.False(t, plain.Apply(IntentCopy))
}

func TestLayout(t *testing.T) {
	doc := testDocument(1)
	for _, shape := range []string{"4x4", "4x2", "2x4"} {
		doc.Cards = append(doc.Cards, models.Card{Title: "Photo", Shape: shape, Lines: []string{`{"url": ""}`}})
	}
	s, _ := newSession(t, doc)

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, arrange.Item{Type: "Photo", Shape: "4x4"}, items[0])

	placements, err := s.Layout(arrange.DefaultGrid)
	require.NoError(t, err)
	require.Len(t, placements, 3)
	assert.Equal(t, 4, placements[2].Row)
	assert.Equal(t, 0, placements[2].Col)

	apply(s, IntentCursorDown, IntentReshape)
	placements, err = s.Layout(arrange.DefaultGrid)
	require.NoError(t, err)
	assert.Equal(t, 2, placements[0].Width, "reshaped card feeds the next packing run")
}

func TestTransitionsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s, _ := newSession(t, testDocument(3), WithLogger(zap.New(core)))

	apply(s, IntentCursorDown, IntentDeleteCard, IntentCancel)
	s.Apply(IntentMoveUp)

	transitions := logs.FilterMessage("transition").All()
	require.Len(t, transitions, 3)
	fields := transitions[1].ContextMap()
	assert.Equal(t, "Select(1)", fields["from"])
	assert.Equal(t, "delete-card", fields["intent"])
	assert.Equal(t, "Delete(1)", fields["to"])
}

func TestModeStrings(t *testing.T) {
	assert.Equal(t, "Create(2, 1, none)", Create{Index: 2, CardType: 1, Shape: NoShape}.String())
	assert.Equal(t, "Create(2, 1, 3)", Create{Index: 2, CardType: 1, Shape: 3}.String())
	assert.Equal(t, "Quit", Quit{}.String())
	assert.Equal(t, 0, Quit{}.Anchor())
	assert.Equal(t, "unknown", Intent(99).String())
	assert.True(t, strings.HasPrefix(Edit{Index: 4}.String(), "Edit"))
}
