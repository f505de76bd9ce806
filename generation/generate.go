/*
Package generation turns a fresh grid into a perfect maze.

Two strategies are available behind one Generate call: frontier growth
(randomized frontier expansion) and the depth-first backtracker. Both
respect cells locked by the pattern protector, consume a single seeded
random stream in a fixed order, and emit one snapshot per carve into the
caller's Recorder, so identical configuration and seed reproduce an
identical maze and frame sequence bit for bit.
*/
package generation

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/amazeing-api/maze"
)

var (
	// ErrInvalidConfig is returned before any mutation when entry or exit
	// is out of bounds or locked.
	ErrInvalidConfig = errors.New("invalid generation configuration")

	// ErrInvariant indicates an unlocked cell was left unvisited after
	// generation. It marks an implementation bug, never a valid outcome.
	ErrInvariant = errors.New("generation invariant violated")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm value.
	ErrUnknownAlgorithm = errors.New("unknown generation algorithm")
)

// Algorithm selects one of the closed set of generation strategies.
type Algorithm uint8

const (
	// FrontierGrowth expands a random frontier edge at a time, producing
	// many short dead ends.
	FrontierGrowth Algorithm = iota
	// Backtracker runs a depth-first carve with an explicit stack,
	// producing long corridors.
	Backtracker
)

func (a Algorithm) String() string {
	switch a {
	case FrontierGrowth:
		return "frontier"
	case Backtracker:
		return "backtracker"
	}
	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

// ParseAlgorithm maps the wire name of a strategy to its Algorithm value.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "frontier":
		return FrontierGrowth, nil
	case "backtracker":
		return Backtracker, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Generate mutates the grid until every unlocked cell is visited and
// connected to entry by carved passages. Entry and exit are validated
// before any mutation. Snapshots are pushed into rec synchronously: one
// per carve plus one final completed-grid snapshot.
func Generate(g *maze.Grid, entry, exit maze.Point, rng *rand.Rand, rec *Recorder, algo Algorithm) error {
	if err := validateEndpoint(g, entry, "entry"); err != nil {
		return err
	}
	if err := validateEndpoint(g, exit, "exit"); err != nil {
		return err
	}

	var err error
	switch algo {
	case FrontierGrowth:
		err = frontierGrowth(g, entry, rng, rec)
	case Backtracker:
		err = backtracker(g, entry, rng, rec)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(algo))
	}
	if err != nil {
		return err
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c, _ := g.CellAt(x, y)
			if !c.Visited {
				return fmt.Errorf("%w: cell (%d,%d) unreached", ErrInvariant, x, y)
			}
		}
	}

	rec.record(g, nil, nil)
	return nil
}

func validateEndpoint(g *maze.Grid, p maze.Point, name string) error {
	c, err := g.CellAt(p.X, p.Y)
	if err != nil {
		return fmt.Errorf("%w: %s (%d,%d) out of bounds", ErrInvalidConfig, name, p.X, p.Y)
	}
	if c.Locked {
		return fmt.Errorf("%w: %s (%d,%d) is locked", ErrInvalidConfig, name, p.X, p.Y)
	}
	return nil
}
