/*
Package codec converts a finished maze to and from its persisted text form.

The document is line oriented: a "width height" header, the entry and exit
coordinates as "x,y", one uppercase hex digit per cell in row-major order
(nibble bits N=1, E=2, S=4, W=8), and finally the solution direction
string. Decode is the exact inverse of Encode; any malformed input is
rejected before a grid is returned.
*/
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beka-birhanu/amazeing-api/maze"
)

// ErrMalformed is returned for any document Decode cannot reconstruct:
// header mismatch, wrong digit count, non-hex digits or bad coordinates.
var ErrMalformed = errors.New("malformed maze document")

// Document is the decoded form of a persisted maze.
type Document struct {
	Width  int
	Height int
	Entry  maze.Point
	Exit   maze.Point
	Grid   *maze.Grid
	Path   string
}

const hexDigits = "0123456789ABCDEF"

// Encode renders the grid plus its metadata into the persisted text form.
func Encode(g *maze.Grid, entry, exit maze.Point, path string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d %d\n", g.Width, g.Height)
	fmt.Fprintf(&b, "%d,%d\n", entry.X, entry.Y)
	fmt.Fprintf(&b, "%d,%d\n", exit.X, exit.Y)

	for _, row := range g.Walls() {
		for _, walls := range row {
			b.WriteByte(hexDigits[walls&maze.AllWalls])
		}
		b.WriteByte('\n')
	}

	b.WriteString(path)
	b.WriteByte('\n')
	return b.String()
}

// Decode parses a persisted document back into a grid and its metadata.
// Decoding the output of Encode reconstructs an identical wall-mask grid.
func Decode(text string) (*Document, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) < 4 {
		return nil, fmt.Errorf("%w: %d lines", ErrMalformed, len(lines))
	}

	width, height, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	entry, err := parsePoint(lines[1], width, height, "entry")
	if err != nil {
		return nil, err
	}
	exit, err := parsePoint(lines[2], width, height, "exit")
	if err != nil {
		return nil, err
	}

	rows := lines[3:]
	path := ""
	switch {
	case len(rows) == height+1:
		path = rows[height]
		rows = rows[:height]
	case len(rows) == height:
		// Path line omitted; treat as an empty solution.
	default:
		return nil, fmt.Errorf("%w: expected %d grid rows, got %d", ErrMalformed, height, len(rows))
	}

	g, err := maze.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d digits, want %d", ErrMalformed, y, len(row), width)
		}
		for x := 0; x < width; x++ {
			walls, err := parseNibble(row[x])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %v", ErrMalformed, y, x, err)
			}
			cell, _ := g.CellAt(x, y)
			cell.Walls = walls
		}
	}

	for i := 0; i < len(path); i++ {
		if _, err := maze.ParseDirection(path[i]); err != nil {
			return nil, fmt.Errorf("%w: path: %v", ErrMalformed, err)
		}
	}

	return &Document{
		Width:  width,
		Height: height,
		Entry:  entry,
		Exit:   exit,
		Grid:   g,
		Path:   path,
	}, nil
}

func parseHeader(line string) (width, height int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: header %q", ErrMalformed, line)
	}
	width, err = strconv.Atoi(fields[0])
	if err == nil {
		height, err = strconv.Atoi(fields[1])
	}
	if err != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: header %q", ErrMalformed, line)
	}
	return width, height, nil
}

func parsePoint(line string, width, height int, name string) (maze.Point, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return maze.Point{}, fmt.Errorf("%w: %s %q", ErrMalformed, name, line)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return maze.Point{}, fmt.Errorf("%w: %s %q", ErrMalformed, name, line)
	}
	if x < 0 || x >= width || y < 0 || y >= height {
		return maze.Point{}, fmt.Errorf("%w: %s (%d,%d) outside %dx%d", ErrMalformed, name, x, y, width, height)
	}
	return maze.Point{X: x, Y: y}, nil
}

func parseNibble(digit byte) (uint8, error) {
	switch {
	case digit >= '0' && digit <= '9':
		return digit - '0', nil
	case digit >= 'A' && digit <= 'F':
		return digit - 'A' + 10, nil
	case digit >= 'a' && digit <= 'f':
		return digit - 'a' + 10, nil
	}
	return 0, fmt.Errorf("non-hex digit %q", digit)
}
