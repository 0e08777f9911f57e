package arrange

import "strings"

const (
	emptyCell = '.'
	glyphs    = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Render draws placements as text, one string per grid row. Each placement is
// drawn with a glyph derived from its input index; trailing empty rows are dropped.
func Render(grid Grid, placements []Placement) []string {
	if grid.Rows <= 0 || grid.Cols <= 0 {
		return nil
	}

	rows := make([][]byte, grid.Rows)
	for r := range rows {
		rows[r] = []byte(strings.Repeat(string(emptyCell), grid.Cols))
	}

	used := 0
	for _, p := range placements {
		glyph := glyphs[p.Index%len(glyphs)]
		for r := p.Row; r < p.Row+p.Height && r < grid.Rows; r++ {
			for c := p.Col; c < p.Col+p.Width && c < grid.Cols; c++ {
				rows[r][c] = glyph
			}
		}
		used = max(used, p.Row+p.Height)
	}

	out := make([]string, 0, used)
	for r := 0; r < min(used, grid.Rows); r++ {
		out = append(out, string(rows[r]))
	}
	return out
}

// Extent returns the number of rows actually used by placements.
func Extent(placements []Placement) int {
	rows := 0
	for _, p := range placements {
		rows = max(rows, p.Row+p.Height)
	}
	return rows
}
