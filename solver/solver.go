/*
Package solver finds shortest paths through finished mazes.

The passage graph treats two cells as adjacent only when their shared wall
is cleared on both sides. Breadth-first search with a fixed North, East,
South, West visitation order makes the returned path deterministic among
equal-length candidates. The solver keeps its own visited set, so it works
on any grid, including decoded wall data never touched by generation.
*/
package solver

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/amazeing-api/maze"
)

// ErrNoPath is returned when entry and exit are not connected. It is a
// legitimate outcome on arbitrary wall data, not a failure of the solver.
var ErrNoPath = errors.New("no path between entry and exit")

type step struct {
	from maze.Point
	dir  maze.Direction
}

// Solve returns the direction-token string of the shortest path from entry
// to exit. It never assumes the grid is connected.
func Solve(g *maze.Grid, entry, exit maze.Point) (string, error) {
	if _, err := g.CellAt(entry.X, entry.Y); err != nil {
		return "", fmt.Errorf("entry: %w", err)
	}
	if _, err := g.CellAt(exit.X, exit.Y); err != nil {
		return "", fmt.Errorf("exit: %w", err)
	}

	cameFrom := map[maze.Point]step{entry: {}}
	queue := []maze.Point{entry}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == exit {
			return reconstruct(cameFrom, entry, exit), nil
		}

		cell, _ := g.CellAt(current.X, current.Y)
		for _, dir := range maze.Directions {
			if cell.HasWall(dir) {
				continue
			}
			next := current.Step(dir)
			if !g.InBounds(next.X, next.Y) {
				continue
			}
			if _, seen := cameFrom[next]; seen {
				continue
			}
			cameFrom[next] = step{from: current, dir: dir}
			queue = append(queue, next)
		}
	}

	return "", fmt.Errorf("%w: (%d,%d) to (%d,%d)", ErrNoPath, entry.X, entry.Y, exit.X, exit.Y)
}

// reconstruct walks the parent links back from exit and reverses them into
// the forward token string.
func reconstruct(cameFrom map[maze.Point]step, entry, exit maze.Point) string {
	var tokens []byte
	for current := exit; current != entry; {
		s := cameFrom[current]
		tokens = append(tokens, s.dir.Token())
		current = s.from
	}

	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	return string(tokens)
}

// Walk follows a direction-token string from start and returns the final
// position. It errors on unknown tokens or a step through a standing wall.
func Walk(g *maze.Grid, start maze.Point, path string) (maze.Point, error) {
	current := start
	for i := 0; i < len(path); i++ {
		dir, err := maze.ParseDirection(path[i])
		if err != nil {
			return current, err
		}
		cell, err := g.CellAt(current.X, current.Y)
		if err != nil {
			return current, err
		}
		if cell.HasWall(dir) {
			return current, fmt.Errorf("wall blocks %s at (%d,%d)", dir, current.X, current.Y)
		}
		current = current.Step(dir)
	}
	return current, nil
}
