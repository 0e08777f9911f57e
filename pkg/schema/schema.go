// Package schema generates and checks card content against the catalog.
//
// Everything here is pure: no I/O, no package state.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/pluqqy/showcase/pkg/models"
)

var (
	ErrInvalidJSON  = errors.New("invalid json format")
	ErrNotObject    = errors.New("content is not a json object")
	ErrMissingField = errors.New("missing required field")
	ErrUnknownType  = errors.New("unknown card type")
)

const skeletonIndent = "    "

// fields returns the declared fields of cardType. The profile type may be left
// out of the catalog, in which case it has no fields.
func fields(catalog *models.Catalog, cardType string) ([]string, error) {
	if f, ok := catalog.FieldsFor(cardType); ok {
		return f, nil
	}
	if cardType == catalog.ProfileType {
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, cardType)
}

// Skeleton returns the content lines of a new card of cardType: a JSON object
// mapping every declared field, optional or not, to an empty string.
func Skeleton(catalog *models.Catalog, cardType string) ([]string, error) {
	declared, err := fields(catalog, cardType)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(declared)+2)
	lines = append(lines, "{")
	for i, field := range declared {
		key, err := json.Marshal(models.FieldKey(field))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		sep := ","
		if i == len(declared)-1 {
			sep = ""
		}
		lines = append(lines, fmt.Sprintf(`%s%s: ""%s`, skeletonIndent, key, sep))
	}
	lines = append(lines, "}")

	return lines, nil
}

// Validate checks that content is a JSON object carrying every required field
// declared for cardType. Field values may be of any JSON type.
func Validate(catalog *models.Catalog, cardType, content string) error {
	if !gjson.Valid(content) {
		return ErrInvalidJSON
	}
	parsed := gjson.Parse(content)
	if !parsed.IsObject() {
		return ErrNotObject
	}

	declared, err := fields(catalog, cardType)
	if err != nil {
		return err
	}

	keys := parsed.Map()
	for _, field := range declared {
		if models.IsOptional(field) {
			continue
		}
		if _, ok := keys[field]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingField, field)
		}
	}

	return nil
}

// Format re-indents valid JSON with two spaces, keeping key order, and splits
// it into lines.
func Format(content string) ([]string, error) {
	src := bytes.TrimSpace([]byte(content))
	if !json.Valid(src) {
		return nil, ErrInvalidJSON
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, src, "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	return strings.Split(buf.String(), "\n"), nil
}

// FormatValue indents an already parsed raw JSON value into lines.
func FormatValue(raw json.RawMessage) ([]string, error) {
	return Format(string(raw))
}
