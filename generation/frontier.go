package generation

import (
	"math/rand"

	"github.com/beka-birhanu/amazeing-api/maze"
)

// frontierGrowth carves a maze by randomized frontier expansion. The
// frontier holds uncarved edges between the visited region and unvisited
// cells; one edge is popped uniformly at random each round, which is what
// shapes the many short dead ends this strategy produces.
func frontierGrowth(g *maze.Grid, entry maze.Point, rng *rand.Rand, rec *Recorder) error {
	start, err := g.CellAt(entry.X, entry.Y)
	if err != nil {
		return err
	}
	start.Visited = true

	var frontier []maze.Move
	pushEdges := func(from maze.Point) {
		for _, move := range g.Neighbors(from.X, from.Y) {
			far, _ := g.CellAt(move.To.X, move.To.Y)
			if !far.Visited {
				frontier = append(frontier, move)
			}
		}
	}
	pushEdges(entry)

	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		edge := frontier[i]
		frontier = append(frontier[:i], frontier[i+1:]...)

		far, _ := g.CellAt(edge.To.X, edge.To.Y)
		if far.Visited {
			continue
		}

		if err := g.Carve(edge.From, edge.To); err != nil {
			return err
		}
		pushEdges(edge.To)

		active := edge.To
		rec.record(g, &active, frontierFringe(frontier))
	}

	return nil
}

// frontierFringe lists the unvisited endpoints of pending edges, deduped
// in insertion order.
func frontierFringe(frontier []maze.Move) []maze.Point {
	seen := make(map[maze.Point]struct{}, len(frontier))
	var fringe []maze.Point
	for _, edge := range frontier {
		if _, ok := seen[edge.To]; ok {
			continue
		}
		seen[edge.To] = struct{}{}
		fringe = append(fringe, edge.To)
	}
	return fringe
}
