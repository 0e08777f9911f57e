package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pluqqy/showcase/pkg/arrange"
)

const (
	// DefaultProfileType is the title given to the first card of every document.
	DefaultProfileType = "Profile"
	// DefaultCardShape is used for showcase cards that do not persist a shape.
	DefaultCardShape = "2x2"
	// OptionalMarker suffixes field names that may be absent from card content.
	OptionalMarker = "?"
	// FallbackColor is the ANSI color for types without a theme entry.
	FallbackColor = "245"
)

// ErrInvalidCatalog is returned by Catalog.Validate.
var ErrInvalidCatalog = errors.New("invalid card catalog")

// Catalog is the schema metadata for a run: the card types, the shapes a card may
// take, the fields each type carries and the theme colors. It is built once at
// startup and only read afterwards.
type Catalog struct {
	Types  []string
	Shapes []string
	Fields map[string][]string
	Theme  map[string]string

	ProfileType  string
	FullRowType  string
	FullRowShape string
	DefaultShape string
}

// NewCatalog builds a catalog with the default profile and shape settings for grid.
func NewCatalog(types, shapes []string, fields map[string][]string, theme map[string]string, grid arrange.Grid) *Catalog {
	c := &Catalog{
		Types:        types,
		Shapes:       shapes,
		Fields:       fields,
		Theme:        theme,
		ProfileType:  DefaultProfileType,
		FullRowShape: fmt.Sprintf("1x%d", grid.Cols),
		DefaultShape: DefaultCardShape,
	}
	if len(types) > 0 {
		c.FullRowType = types[0]
	}
	if c.Fields == nil {
		c.Fields = map[string][]string{}
	}
	if c.Theme == nil {
		c.Theme = map[string]string{}
	}
	return c
}

// Validate checks the catalog invariants: types and shapes are non-empty and
// distinct, shapes are well formed, and every type declares its fields.
func (c *Catalog) Validate() error {
	if len(c.Types) == 0 {
		return fmt.Errorf("%w: no card types", ErrInvalidCatalog)
	}
	if len(c.Shapes) == 0 {
		return fmt.Errorf("%w: no shapes", ErrInvalidCatalog)
	}

	seen := make(map[string]bool, len(c.Types))
	for _, t := range c.Types {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("%w: empty card type", ErrInvalidCatalog)
		}
		if seen[t] {
			return fmt.Errorf("%w: duplicate card type %q", ErrInvalidCatalog, t)
		}
		seen[t] = true
		if _, ok := c.Fields[t]; !ok {
			return fmt.Errorf("%w: no fields declared for %q", ErrInvalidCatalog, t)
		}
	}

	seen = make(map[string]bool, len(c.Shapes))
	for _, s := range c.Shapes {
		if seen[s] {
			return fmt.Errorf("%w: duplicate shape %q", ErrInvalidCatalog, s)
		}
		seen[s] = true
		if _, _, err := arrange.ParseShape(s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
	}

	for _, s := range []string{c.FullRowShape, c.DefaultShape} {
		if _, _, err := arrange.ParseShape(s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
	}

	return nil
}

// TypeIndex returns the position of cardType in Types, or -1.
func (c *Catalog) TypeIndex(cardType string) int {
	for i, t := range c.Types {
		if t == cardType {
			return i
		}
	}
	return -1
}

// ShapeIndex returns the position of shape in Shapes, or 0 when unknown.
func (c *Catalog) ShapeIndex(shape string) int {
	for i, s := range c.Shapes {
		if s == shape {
			return i
		}
	}
	return 0
}

// NextShape returns the shape after current, wrapping around the list. Unknown
// shapes restart from the first entry's successor like any index-0 shape.
func (c *Catalog) NextShape(current string) string {
	if len(c.Shapes) == 0 {
		return current
	}
	return c.Shapes[(c.ShapeIndex(current)+1)%len(c.Shapes)]
}

// FieldsFor returns the declared field names for cardType.
func (c *Catalog) FieldsFor(cardType string) ([]string, bool) {
	fields, ok := c.Fields[cardType]
	return fields, ok
}

// IsFullRow reports whether cards of this type always span a full grid row.
func (c *Catalog) IsFullRow(cardType string) bool {
	return c.FullRowType != "" && cardType == c.FullRowType
}

// Color returns the theme color for cardType.
func (c *Catalog) Color(cardType string) string {
	if color, ok := c.Theme[cardType]; ok {
		return color
	}
	return FallbackColor
}

// FieldKey strips the optional marker from a declared field name.
func FieldKey(field string) string {
	return strings.TrimSuffix(field, OptionalMarker)
}

// IsOptional reports whether a declared field may be absent.
func IsOptional(field string) bool {
	return strings.HasSuffix(field, OptionalMarker)
}
