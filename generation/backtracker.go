package generation

import (
	"math/rand"

	"github.com/beka-birhanu/amazeing-api/maze"
)

// backtracker carves a maze by depth-first search with an explicit stack.
// It dives until it runs out of unvisited neighbors, then silently
// backtracks, which yields long corridors with few branches.
func backtracker(g *maze.Grid, entry maze.Point, rng *rand.Rand, rec *Recorder) error {
	start, err := g.CellAt(entry.X, entry.Y)
	if err != nil {
		return err
	}
	start.Visited = true

	stack := []maze.Point{entry}
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []maze.Move
		for _, move := range g.Neighbors(current.X, current.Y) {
			neighbor, _ := g.CellAt(move.To.X, move.To.Y)
			if !neighbor.Visited {
				candidates = append(candidates, move)
			}
		}

		if len(candidates) == 0 {
			// Pure backtrack, no snapshot.
			stack = stack[:len(stack)-1]
			continue
		}

		move := candidates[rng.Intn(len(candidates))]
		if err := g.Carve(move.From, move.To); err != nil {
			return err
		}
		stack = append(stack, move.To)

		active := move.To
		rec.record(g, &active, stack)
	}

	return nil
}
