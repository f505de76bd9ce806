package generation

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/amazeing-api/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMaze runs one full generation and returns the grid and recorder.
func buildMaze(t *testing.T, width, height int, entry, exit maze.Point, seed int64, pattern bool, algo Algorithm) (*maze.Grid, *Recorder) {
	t.Helper()

	g, err := maze.New(width, height)
	require.NoError(t, err)
	require.NoError(t, Protect(g, PatternCells(width, height, entry, exit, pattern)))

	rec := NewRecorder()
	rng := rand.New(rand.NewSource(seed))
	require.NoError(t, Generate(g, entry, exit, rng, rec, algo))
	return g, rec
}

// carvedEdges counts opened passages: every cleared wall bit appears on
// both sides, so half the cleared-bit total.
func carvedEdges(g *maze.Grid) int {
	cleared := 0
	for _, row := range g.Walls() {
		for _, walls := range row {
			for _, d := range maze.Directions {
				if walls&d.Bit() == 0 {
					cleared++
				}
			}
		}
	}
	return cleared / 2
}

// reachable floods the passage graph from entry and counts reached cells.
func reachable(g *maze.Grid, entry maze.Point) int {
	visited := map[maze.Point]struct{}{entry: {}}
	queue := []maze.Point{entry}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		c, _ := g.CellAt(p.X, p.Y)
		for _, d := range maze.Directions {
			if c.HasWall(d) {
				continue
			}
			next := p.Step(d)
			if _, ok := visited[next]; !ok {
				visited[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}
	return len(visited)
}

func unlockedCount(g *maze.Grid) int {
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c, _ := g.CellAt(x, y)
			if !c.Locked {
				count++
			}
		}
	}
	return count
}

func TestGenerateDeterminism(t *testing.T) {
	entry := maze.Point{X: 0, Y: 0}
	exit := maze.Point{X: 11, Y: 9}

	for _, algo := range []Algorithm{FrontierGrowth, Backtracker} {
		t.Run(algo.String(), func(t *testing.T) {
			g1, rec1 := buildMaze(t, 12, 10, entry, exit, 7, true, algo)
			g2, rec2 := buildMaze(t, 12, 10, entry, exit, 7, true, algo)

			assert.Equal(t, g1.Walls(), g2.Walls())

			require.Equal(t, rec1.Count(), rec2.Count())
			for i := 0; i < rec1.Count(); i++ {
				s1, err := rec1.At(i)
				require.NoError(t, err)
				s2, err := rec2.At(i)
				require.NoError(t, err)
				assert.Equal(t, s1, s2)
			}
		})
	}
}

func TestGeneratePerfectness(t *testing.T) {
	entry := maze.Point{X: 0, Y: 0}
	exit := maze.Point{X: 14, Y: 10}

	for _, algo := range []Algorithm{FrontierGrowth, Backtracker} {
		t.Run(algo.String(), func(t *testing.T) {
			for _, pattern := range []bool{false, true} {
				g, _ := buildMaze(t, 15, 11, entry, exit, 99, pattern, algo)

				unlocked := unlockedCount(g)

				// Spanning tree over unlocked cells: connected with
				// exactly unlocked-1 passages.
				assert.Equal(t, unlocked-1, carvedEdges(g))
				assert.Equal(t, unlocked, reachable(g, entry))
			}
		})
	}
}

func TestGenerateLockIntegrity(t *testing.T) {
	entry := maze.Point{X: 0, Y: 0}
	exit := maze.Point{X: 14, Y: 10}
	cells := PatternCells(15, 11, entry, exit, true)
	require.NotEmpty(t, cells)

	for _, algo := range []Algorithm{FrontierGrowth, Backtracker} {
		t.Run(algo.String(), func(t *testing.T) {
			g, _ := buildMaze(t, 15, 11, entry, exit, 3, true, algo)
			for _, p := range cells {
				c, err := g.CellAt(p.X, p.Y)
				require.NoError(t, err)
				assert.Equal(t, maze.AllWalls, c.Walls, "locked cell (%d,%d) lost a wall", p.X, p.Y)
			}
		})
	}
}

func TestStrategyDistinctness(t *testing.T) {
	entry := maze.Point{X: 0, Y: 0}
	exit := maze.Point{X: 11, Y: 9}

	g1, _ := buildMaze(t, 12, 10, entry, exit, 42, false, FrontierGrowth)
	g2, _ := buildMaze(t, 12, 10, entry, exit, 42, false, Backtracker)

	assert.NotEqual(t, g1.Walls(), g2.Walls())
}

func TestGenerateSnapshots(t *testing.T) {
	entry := maze.Point{X: 0, Y: 0}
	exit := maze.Point{X: 7, Y: 5}

	for _, algo := range []Algorithm{FrontierGrowth, Backtracker} {
		t.Run(algo.String(), func(t *testing.T) {
			g, rec := buildMaze(t, 8, 6, entry, exit, 5, false, algo)

			// One snapshot per carve plus the final completed-grid one.
			assert.Equal(t, carvedEdges(g)+1, rec.Count())

			final, err := rec.At(rec.Count() - 1)
			require.NoError(t, err)
			assert.Nil(t, final.Active)
			assert.Empty(t, final.Fringe)
			assert.Equal(t, g.Walls(), final.Walls)

			first, err := rec.At(0)
			require.NoError(t, err)
			require.NotNil(t, first.Active)
			// The first carve opens exactly one passage.
			cleared := 0
			for _, row := range first.Walls {
				for _, walls := range row {
					for _, d := range maze.Directions {
						if walls&d.Bit() == 0 {
							cleared++
						}
					}
				}
			}
			assert.Equal(t, 2, cleared)
		})
	}
}

func TestGenerateTrivialGrid(t *testing.T) {
	// A 1x1 grid has nothing to carve; only the final snapshot is emitted.
	entry := maze.Point{X: 0, Y: 0}
	g, rec := buildMaze(t, 1, 1, entry, entry, 1, false, FrontierGrowth)

	assert.Equal(t, 0, carvedEdges(g))
	assert.Equal(t, 1, rec.Count())
}

func TestGenerateInvalidConfig(t *testing.T) {
	t.Run("entry out of bounds", func(t *testing.T) {
		g, err := maze.New(5, 5)
		require.NoError(t, err)

		err = Generate(g, maze.Point{X: 9, Y: 0}, maze.Point{X: 4, Y: 4}, rand.New(rand.NewSource(1)), NewRecorder(), FrontierGrowth)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Equal(t, maze.AllWalls, g.Walls()[0][0], "no mutation before validation")
	})

	t.Run("exit locked", func(t *testing.T) {
		g, err := maze.New(5, 5)
		require.NoError(t, err)
		require.NoError(t, g.Lock(maze.Point{X: 4, Y: 4}))

		err = Generate(g, maze.Point{X: 0, Y: 0}, maze.Point{X: 4, Y: 4}, rand.New(rand.NewSource(1)), NewRecorder(), Backtracker)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		g, err := maze.New(3, 3)
		require.NoError(t, err)

		err = Generate(g, maze.Point{X: 0, Y: 0}, maze.Point{X: 2, Y: 2}, rand.New(rand.NewSource(1)), NewRecorder(), Algorithm(250))
		assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	})
}

func TestParseAlgorithm(t *testing.T) {
	for _, algo := range []Algorithm{FrontierGrowth, Backtracker} {
		parsed, err := ParseAlgorithm(algo.String())
		assert.NoError(t, err)
		assert.Equal(t, algo, parsed)
	}

	_, err := ParseAlgorithm("wilson")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
