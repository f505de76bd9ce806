/*
Package maze provides the grid and cell model every other component of the
engine operates on.

A Grid owns a fixed width x height collection of cells. Each cell keeps a
4-bit wall nibble; carving a passage clears the shared wall bit on both
cells in one step, so a half-open passage can never exist. Cells locked by
the pattern protector keep all four walls for the lifetime of the grid.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimensions is returned for non-positive grid sizes.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")

	// ErrOutOfRange is returned when a coordinate lies outside the grid.
	ErrOutOfRange = errors.New("cell position out of range")

	// ErrNotAdjacent is returned when a carve is requested between cells
	// that do not share a wall.
	ErrNotAdjacent = errors.New("cells are not adjacent")

	// ErrLockedCell is returned when a carve would touch a locked cell.
	ErrLockedCell = errors.New("cell is locked")
)

// Move describes a step from one cell to an adjacent one.
type Move struct {
	From Point
	To   Point
	Dir  Direction
}

// Grid is a rectangular maze grid. It exclusively owns its cells; all wall
// mutation goes through Carve.
type Grid struct {
	Width  int
	Height int
	cells  [][]*Cell
}

// New creates a fully walled grid with every cell unvisited and unlocked.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	cells := make([][]*Cell, height)
	for y := range cells {
		cells[y] = make([]*Cell, width)
		for x := range cells[y] {
			cells[y][x] = &Cell{X: x, Y: y, Walls: AllWalls}
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
	}, nil
}

// InBounds reports whether the coordinate lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// CellAt returns the cell at (x, y).
func (g *Grid) CellAt(x, y int) (*Cell, error) {
	if !g.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, x, y)
	}
	return g.cells[y][x], nil
}

// Neighbors returns the in-bounds moves out of (x, y), in fixed
// North, East, South, West order.
func (g *Grid) Neighbors(x, y int) []Move {
	from := Point{X: x, Y: y}
	var result []Move
	for _, dir := range Directions {
		to := from.Step(dir)
		if g.InBounds(to.X, to.Y) {
			result = append(result, Move{From: from, To: to, Dir: dir})
		}
	}
	return result
}

// directionBetween resolves the direction from a to b when they differ by
// exactly one unit along one axis.
func directionBetween(a, b Point) (Direction, error) {
	for _, dir := range Directions {
		if a.Step(dir) == b {
			return dir, nil
		}
	}
	return 0, fmt.Errorf("%w: (%d,%d) and (%d,%d)", ErrNotAdjacent, a.X, a.Y, b.X, b.Y)
}

// Carve opens the passage between two adjacent cells. The shared wall bit
// is cleared on both cells and both are marked visited. Carving into a
// locked cell is refused so a locked mask is never mutated. No cell beyond
// the two touched ones is affected.
func (g *Grid) Carve(a, b Point) error {
	ca, err := g.CellAt(a.X, a.Y)
	if err != nil {
		return err
	}
	cb, err := g.CellAt(b.X, b.Y)
	if err != nil {
		return err
	}

	dir, err := directionBetween(a, b)
	if err != nil {
		return err
	}

	if ca.Locked || cb.Locked {
		return fmt.Errorf("%w: passage (%d,%d)-(%d,%d)", ErrLockedCell, a.X, a.Y, b.X, b.Y)
	}

	ca.Walls &^= dir.Bit()
	cb.Walls &^= dir.Opposite().Bit()
	ca.Visited = true
	cb.Visited = true
	return nil
}

// Lock marks the cell at p as pattern-protected. A locked cell counts as
// visited so generation never enters it.
func (g *Grid) Lock(p Point) error {
	c, err := g.CellAt(p.X, p.Y)
	if err != nil {
		return err
	}
	c.Locked = true
	c.Visited = true
	return nil
}

// Walls returns a copy of every cell's wall nibble, row-major.
func (g *Grid) Walls() [][]uint8 {
	walls := make([][]uint8, g.Height)
	for y, row := range g.cells {
		walls[y] = make([]uint8, g.Width)
		for x, c := range row {
			walls[y][x] = c.Walls
		}
	}
	return walls
}

// String provides a textual representation of the grid for debugging.
func (g *Grid) String() string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", g.Width) + "\n"

	for y := 0; y < g.Height; y++ {
		cellRow := "|"
		wallRow := "+"
		for x := 0; x < g.Width; x++ {
			cell := g.cells[y][x]

			if cell.HasWall(East) {
				cellRow += "   |"
			} else {
				cellRow += "    "
			}

			if cell.HasWall(South) {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output += cellRow + "\n"
		output += wallRow + "\n"
	}

	return output
}
