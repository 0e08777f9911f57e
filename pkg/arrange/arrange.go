// Package arrange packs variably shaped cards into a bounded grid.
//
// Packing is greedy and forward-only: cards are placed in input order at the first
// free row-major position at or below the row of the previously placed card. Cards
// that do not fit anywhere below that row are skipped.
package arrange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedShape is returned for shape codes that are not "<height>x<width>".
var ErrMalformedShape = errors.New("malformed shape code")

// DefaultGrid is the grid used for the live preview.
var DefaultGrid = Grid{Rows: 50, Cols: 8}

// Grid is the packing area in cells.
type Grid struct {
	Rows int `json:"rows" yaml:"rows"`
	Cols int `json:"cols" yaml:"cols"`
}

// Item is one card to be packed.
type Item struct {
	Type  string
	Shape string
}

// Placement is the cell rectangle assigned to an input item.
type Placement struct {
	Index  int    `json:"index" yaml:"index"` // position of the item in the input
	Row    int    `json:"row" yaml:"row"`
	Col    int    `json:"col" yaml:"col"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	Type   string `json:"type" yaml:"type"`
}

// ParseShape splits a shape code such as "2x4" into height and width.
func ParseShape(code string) (height, width int, err error) {
	h, w, ok := strings.Cut(code, "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedShape, code)
	}
	height, err = strconv.Atoi(h)
	if err != nil || height < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedShape, code)
	}
	width, err = strconv.Atoi(w)
	if err != nil || width < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedShape, code)
	}
	return height, width, nil
}

// Pack lays out items on grid and returns one placement per item that fit, in
// input order. A malformed shape code aborts packing.
func Pack(grid Grid, items []Item) ([]Placement, error) {
	occ := newOccupancy(grid)
	floor := 0

	placements := make([]Placement, 0, len(items))
	for i, item := range items {
		h, w, err := ParseShape(item.Shape)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i, item.Type, err)
		}

		row, col, ok := occ.place(h, w, floor)
		if !ok {
			continue
		}
		floor = row

		placements = append(placements, Placement{
			Index:  i,
			Row:    row,
			Col:    col,
			Width:  w,
			Height: h,
			Type:   item.Type,
		})
	}

	return placements, nil
}

// occupancy tracks which grid cells are taken.
type occupancy struct {
	rows, cols int
	cells      []bool
}

func newOccupancy(grid Grid) *occupancy {
	rows, cols := max(grid.Rows, 0), max(grid.Cols, 0)
	return &occupancy{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
}

func (o *occupancy) free(row, col, h, w int) bool {
	if row+h > o.rows || col+w > o.cols {
		return false
	}
	for r := row; r < row+h; r++ {
		for c := col; c < col+w; c++ {
			if o.cells[r*o.cols+c] {
				return false
			}
		}
	}
	return true
}

func (o *occupancy) fill(row, col, h, w int) {
	for r := row; r < row+h; r++ {
		for c := col; c < col+w; c++ {
			o.cells[r*o.cols+c] = true
		}
	}
}

// place marks the first free h×w block at or below floor and returns its origin.
func (o *occupancy) place(h, w, floor int) (int, int, bool) {
	for row := floor; row+h <= o.rows; row++ {
		for col := 0; col+w <= o.cols; col++ {
			if o.free(row, col, h, w) {
				o.fill(row, col, h, w)
				return row, col, true
			}
		}
	}
	return 0, 0, false
}
