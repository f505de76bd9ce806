package maze

import "fmt"

// Direction identifies one of the four cardinal sides of a cell.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all directions in the fixed North, East, South, West
// order used by neighbor enumeration and the solver.
var Directions = [4]Direction{North, East, South, West}

// Bit returns the wall bit for the direction inside a cell's wall nibble:
// N=1, E=2, S=4, W=8.
func (d Direction) Bit() uint8 {
	return 1 << d
}

// Delta returns the coordinate offset of the adjacent cell in the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Opposite returns the direction pointing back at the caller.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// Token returns the single-letter token used in solution path strings.
func (d Direction) Token() byte {
	return "NESW"[d]
}

func (d Direction) String() string {
	return string(d.Token())
}

// ParseDirection maps a path token back to a Direction.
func ParseDirection(token byte) (Direction, error) {
	switch token {
	case 'N':
		return North, nil
	case 'E':
		return East, nil
	case 'S':
		return South, nil
	case 'W':
		return West, nil
	}
	return 0, fmt.Errorf("unknown direction token %q", token)
}

// Point is a cell coordinate. X grows eastward, Y grows southward.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the point one cell away in the given direction.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// AllWalls is the wall nibble of a fully closed cell.
const AllWalls uint8 = 0xF

// Cell is a single cell in a maze grid.
type Cell struct {
	X       int   // column index
	Y       int   // row index
	Walls   uint8 // wall nibble, N=1 E=2 S=4 W=8
	Visited bool  // claimed by a generation run
	Locked  bool  // pattern-protected, walls must stay intact
}

// HasWall reports whether the cell still has a wall on the given side.
func (c *Cell) HasWall(d Direction) bool {
	return c.Walls&d.Bit() != 0
}

// Pos returns the cell coordinate.
func (c *Cell) Pos() Point {
	return Point{X: c.X, Y: c.Y}
}
