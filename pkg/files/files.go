package files

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/pluqqy/showcase/pkg/arrange"
	"github.com/pluqqy/showcase/pkg/models"
	"github.com/pluqqy/showcase/pkg/schema"
)

const (
	ProfileKey  = "profile"
	ShowcaseKey = "showcase"
	ShapeKey    = "shape"
)

var (
	ErrMalformedDocument = errors.New("malformed document")
	ErrInvalidContent    = errors.New("card content is not valid json")
)

type documentFile struct {
	Profile  json.RawMessage   `json:"profile"`
	Showcase []json.RawMessage `json:"showcase"`
}

type savedDocument struct {
	Profile  json.RawMessage              `json:"profile"`
	Showcase []map[string]json.RawMessage `json:"showcase"`
}

// NewDocument returns a document holding only a placeholder profile card.
func NewDocument(catalog *models.Catalog) *models.Document {
	lines, err := schema.Skeleton(catalog, catalog.ProfileType)
	if err != nil {
		lines = []string{"{", "}"}
	}
	return &models.Document{Cards: []models.Card{{
		Title: catalog.ProfileType,
		Shape: catalog.FullRowShape,
		Lines: lines,
	}}}
}

// LoadDocument reads a showcase document from path.
func LoadDocument(path string, catalog *models.Catalog) (*models.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	doc, err := ParseDocument(content, catalog)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", path, err)
	}
	return doc, nil
}

// ParseDocument decodes document JSON into cards. The profile becomes card 0 and
// every key of every showcase entry becomes one card, in order.
func ParseDocument(content []byte, catalog *models.Catalog) (*models.Document, error) {
	var raw documentFile
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if raw.Profile == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedDocument, ProfileKey)
	}
	if raw.Showcase == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedDocument, ShowcaseKey)
	}

	profile, err := parseCard(catalog.ProfileType, raw.Profile, catalog.FullRowShape, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ProfileKey, err)
	}
	doc := &models.Document{Cards: []models.Card{profile}}

	for i, entry := range raw.Showcase {
		parsed := gjson.ParseBytes(entry)
		if !parsed.IsObject() {
			return nil, fmt.Errorf("%w: showcase entry %d is not an object", ErrMalformedDocument, i)
		}

		var cardErr error
		parsed.ForEach(func(key, value gjson.Result) bool {
			title := key.String()
			shape, fixed := catalog.DefaultShape, false
			if catalog.IsFullRow(title) {
				shape, fixed = catalog.FullRowShape, true
			}

			card, err := parseCard(title, json.RawMessage(value.Raw), shape, fixed)
			if err != nil {
				cardErr = fmt.Errorf("showcase entry %d (%s): %w", i, title, err)
				return false
			}
			doc.Cards = append(doc.Cards, card)
			return true
		})
		if cardErr != nil {
			return nil, cardErr
		}
	}

	return doc, nil
}

// parseCard builds a card from its raw content. A fixed shape ignores any
// "shape" key in the content.
func parseCard(title string, raw json.RawMessage, shape string, fixed bool) (models.Card, error) {
	if !gjson.ParseBytes(raw).IsObject() {
		return models.Card{}, fmt.Errorf("%w: content is not an object", ErrMalformedDocument)
	}

	lines, err := schema.FormatValue(raw)
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	if !fixed {
		shape = persistedShape(raw, shape)
	}
	if _, _, err := arrange.ParseShape(shape); err != nil {
		return models.Card{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return models.Card{Title: title, Shape: shape, Lines: lines}, nil
}

func persistedShape(raw []byte, fallback string) string {
	if shape := gjson.GetBytes(raw, ShapeKey); shape.Type == gjson.String {
		return shape.String()
	}
	return fallback
}

// SaveDocument writes doc to path. Every card must hold valid JSON; otherwise
// nothing is written and the previous file is left untouched.
func SaveDocument(path string, doc *models.Document, catalog *models.Catalog) error {
	content, err := EncodeDocument(doc, catalog)
	if err != nil {
		return err
	}

	// Write through symlinks so the link itself survives the rename.
	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for document: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".showcase-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set mode of document %s: %w", path, err)
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("failed to replace document %s: %w", path, err)
	}
	return nil
}

// EncodeDocument renders doc in the persisted JSON layout. A card whose shape
// differs from what its content would load as gets its "shape" key updated.
func EncodeDocument(doc *models.Document, catalog *models.Catalog) ([]byte, error) {
	profile, ok := doc.Profile()
	if !ok {
		return nil, fmt.Errorf("%w: no profile card", ErrMalformedDocument)
	}

	profileRaw, err := encodeCard(profile, catalog.FullRowShape, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ProfileKey, err)
	}

	out := savedDocument{
		Profile:  profileRaw,
		Showcase: make([]map[string]json.RawMessage, 0, doc.Len()-1),
	}
	for i, card := range doc.Showcase() {
		raw, err := encodeCard(card, catalog.DefaultShape, catalog.IsFullRow(card.Title))
		if err != nil {
			return nil, fmt.Errorf("card %d (%s): %w", i+1, card.Title, err)
		}
		out.Showcase = append(out.Showcase, map[string]json.RawMessage{card.Title: raw})
	}

	// Card content is written as typed, without escaping &, < and >.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeCard validates card content and syncs its "shape" key. Cards with a
// fixed shape are written as they are.
func encodeCard(card models.Card, fallbackShape string, fixed bool) (json.RawMessage, error) {
	content := strings.TrimSpace(card.Content())
	if !json.Valid([]byte(content)) {
		return nil, ErrInvalidContent
	}

	if fixed || card.Shape == persistedShape([]byte(content), fallbackShape) {
		return json.RawMessage(content), nil
	}
	return withShape(content, card.Shape)
}

// withShape sets the "shape" key of a JSON object, keeping the order of the
// other keys.
func withShape(content, shape string) (json.RawMessage, error) {
	parsed := gjson.Parse(content)
	if !parsed.IsObject() {
		return json.RawMessage(content), nil
	}

	value, err := json.Marshal(shape)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteByte('{')
	replaced := false
	first := true
	parsed.ForEach(func(key, v gjson.Result) bool {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(key.Raw)
		b.WriteByte(':')
		if key.String() == ShapeKey {
			b.Write(value)
			replaced = true
		} else {
			b.WriteString(v.Raw)
		}
		return true
	})
	if !replaced {
		if !first {
			b.WriteByte(',')
		}
		b.WriteString(`"` + ShapeKey + `":`)
		b.Write(value)
	}
	b.WriteByte('}')

	return json.RawMessage(b.String()), nil
}
