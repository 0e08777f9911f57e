// Package examples holds sample showcase documents for the default catalog.
package examples

import (
	"fmt"
	"sort"

	"github.com/pluqqy/showcase/pkg/models"
	"github.com/pluqqy/showcase/pkg/schema"
)

// ExampleSet is a complete sample document.
type ExampleSet struct {
	Name        string
	Description string
	Profile     string
	Cards       []ExampleCard
}

// ExampleCard is one showcase card of a sample. An empty Shape uses the
// catalog default.
type ExampleCard struct {
	Type    string
	Shape   string
	Content string
}

var sets = map[string]ExampleSet{
	"portfolio": {
		Name:        "portfolio",
		Description: "A developer profile with notes, links and a counter",
		Profile:     `{"name": "Ada Lovelace", "bio": "Analyst of engines", "avatar": "ada.png"}`,
		Cards: []ExampleCard{
			{Type: "Section", Content: `{"title": "About"}`},
			{Type: "Note", Shape: "2x4", Content: `{"text": "I write programs for machines that do not exist yet."}`},
			{Type: "Link", Shape: "2x2", Content: `{"url": "https://example.com/notes", "title": "Notes"}`},
			{Type: "Counter", Shape: "2x2", Content: `{"label": "Programs", "value": 1}`},
			{Type: "Section", Content: `{"title": "Elsewhere"}`},
			{Type: "Social", Shape: "1x4", Content: `{"platform": "mastodon", "url": "https://example.social/@ada"}`},
			{Type: "Map", Shape: "2x4", Content: `{"location": "London", "zoom": 11}`},
		},
	},
	"photographer": {
		Name:        "photographer",
		Description: "A photo-heavy page with an album and large tiles",
		Profile:     `{"name": "Dora Maar", "bio": "Photographer"}`,
		Cards: []ExampleCard{
			{Type: "Photo", Shape: "4x4", Content: `{"url": "street.jpg", "caption": "Street"}`},
			{Type: "Photo", Shape: "4x2", Content: `{"url": "portrait.jpg"}`},
			{Type: "Photo", Shape: "2x2", Content: `{"url": "hands.jpg"}`},
			{Type: "Section", Content: `{"title": "Albums"}`},
			{Type: "Album", Shape: "2x4", Content: `{"title": "Paris 1936", "photos": ["a.jpg", "b.jpg"]}`},
			{Type: "Note", Shape: "2x4", Content: `{"text": "Prints available on request."}`},
		},
	},
}

// Names lists the available samples in order.
func Names() []string {
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the sample called name.
func Get(name string) (ExampleSet, bool) {
	set, ok := sets[name]
	return set, ok
}

// Document builds the sample as a card store, validating every card against
// catalog.
func (s ExampleSet) Document(catalog *models.Catalog) (*models.Document, error) {
	profile, err := exampleCard(catalog, catalog.ProfileType, catalog.FullRowShape, s.Profile)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}

	doc := &models.Document{Cards: []models.Card{profile}}
	for i, c := range s.Cards {
		shape := c.Shape
		switch {
		case catalog.IsFullRow(c.Type):
			shape = catalog.FullRowShape
		case shape == "":
			shape = catalog.DefaultShape
		}

		card, err := exampleCard(catalog, c.Type, shape, c.Content)
		if err != nil {
			return nil, fmt.Errorf("card %d (%s): %w", i+1, c.Type, err)
		}
		doc.Cards = append(doc.Cards, card)
	}
	return doc, nil
}

func exampleCard(catalog *models.Catalog, cardType, shape, content string) (models.Card, error) {
	if err := schema.Validate(catalog, cardType, content); err != nil {
		return models.Card{}, err
	}
	lines, err := schema.Format(content)
	if err != nil {
		return models.Card{}, err
	}
	return models.Card{Title: cardType, Shape: shape, Lines: lines}, nil
}
