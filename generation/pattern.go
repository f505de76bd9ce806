package generation

import "github.com/beka-birhanu/amazeing-api/maze"

// glyph42 is the embedded "42" motif. A 1 marks a cell that becomes an
// unbreakable wall; the glyph is carved around, never through.
var glyph42 = [5][7]uint8{
	{1, 0, 0, 0, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 0, 1, 1, 1},
	{0, 0, 1, 0, 1, 0, 0},
	{0, 0, 1, 0, 1, 1, 1},
}

const (
	glyphHeight = len(glyph42)
	glyphWidth  = len(glyph42[0])
)

// PatternCells computes the locked-cell set for the motif, centered on the
// grid. Entry, exit and out-of-bounds points are excluded. The result is
// empty when the protector is disabled or the glyph does not fit; an
// undersized grid is silently skipped, never an error. The returned slice
// is in row-major order.
func PatternCells(width, height int, entry, exit maze.Point, enabled bool) []maze.Point {
	if !enabled {
		return nil
	}
	if glyphWidth > width || glyphHeight > height {
		return nil
	}

	offsetX := width/2 - glyphWidth/2
	offsetY := height/2 - glyphHeight/2

	var cells []maze.Point
	for gy := 0; gy < glyphHeight; gy++ {
		for gx := 0; gx < glyphWidth; gx++ {
			if glyph42[gy][gx] != 1 {
				continue
			}
			p := maze.Point{X: offsetX + gx, Y: offsetY + gy}
			if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
				continue
			}
			if p == entry || p == exit {
				continue
			}
			cells = append(cells, p)
		}
	}
	return cells
}

// Protect locks every pattern cell on the grid. Locked cells are marked
// visited, which is the only mechanism keeping generation out of the motif.
func Protect(g *maze.Grid, cells []maze.Point) error {
	for _, p := range cells {
		if err := g.Lock(p); err != nil {
			return err
		}
	}
	return nil
}
