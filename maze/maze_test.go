package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("all cells start fully walled and unvisited", func(t *testing.T) {
		g, err := New(4, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, g.Width)
		assert.Equal(t, 3, g.Height)

		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				c, err := g.CellAt(x, y)
				require.NoError(t, err)
				assert.Equal(t, AllWalls, c.Walls)
				assert.False(t, c.Visited)
				assert.False(t, c.Locked)
				assert.Equal(t, Point{X: x, Y: y}, c.Pos())
			}
		}
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
			_, err := New(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		}
	})
}

func TestCellAt(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	t.Run("out of range", func(t *testing.T) {
		for _, p := range []Point{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 3}} {
			_, err := g.CellAt(p.X, p.Y)
			assert.ErrorIs(t, err, ErrOutOfRange)
		}
	})
}

func TestNeighbors(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	t.Run("corner has two neighbors", func(t *testing.T) {
		moves := g.Neighbors(0, 0)
		require.Len(t, moves, 2)
		assert.Equal(t, East, moves[0].Dir)
		assert.Equal(t, South, moves[1].Dir)
	})

	t.Run("center enumerates N E S W in order", func(t *testing.T) {
		moves := g.Neighbors(1, 1)
		require.Len(t, moves, 4)
		dirs := []Direction{moves[0].Dir, moves[1].Dir, moves[2].Dir, moves[3].Dir}
		assert.Equal(t, []Direction{North, East, South, West}, dirs)
	})
}

func TestCarve(t *testing.T) {
	t.Run("clears the shared wall on both cells", func(t *testing.T) {
		g, err := New(3, 3)
		require.NoError(t, err)

		require.NoError(t, g.Carve(Point{X: 1, Y: 1}, Point{X: 2, Y: 1}))

		a, _ := g.CellAt(1, 1)
		b, _ := g.CellAt(2, 1)
		assert.False(t, a.HasWall(East))
		assert.False(t, b.HasWall(West))
		assert.True(t, a.Visited)
		assert.True(t, b.Visited)

		// Only the shared wall changed.
		assert.Equal(t, AllWalls&^East.Bit(), a.Walls)
		assert.Equal(t, AllWalls&^West.Bit(), b.Walls)

		// No third cell was touched.
		c, _ := g.CellAt(0, 0)
		assert.Equal(t, AllWalls, c.Walls)
	})

	t.Run("rejects non-adjacent cells", func(t *testing.T) {
		g, err := New(3, 3)
		require.NoError(t, err)

		assert.ErrorIs(t, g.Carve(Point{X: 0, Y: 0}, Point{X: 2, Y: 0}), ErrNotAdjacent)
		assert.ErrorIs(t, g.Carve(Point{X: 0, Y: 0}, Point{X: 1, Y: 1}), ErrNotAdjacent)
		assert.ErrorIs(t, g.Carve(Point{X: 0, Y: 0}, Point{X: 0, Y: 0}), ErrNotAdjacent)
	})

	t.Run("rejects out-of-range endpoints", func(t *testing.T) {
		g, err := New(3, 3)
		require.NoError(t, err)

		assert.ErrorIs(t, g.Carve(Point{X: -1, Y: 0}, Point{X: 0, Y: 0}), ErrOutOfRange)
		assert.ErrorIs(t, g.Carve(Point{X: 2, Y: 2}, Point{X: 3, Y: 2}), ErrOutOfRange)
	})

	t.Run("never mutates a locked cell", func(t *testing.T) {
		g, err := New(3, 3)
		require.NoError(t, err)
		require.NoError(t, g.Lock(Point{X: 1, Y: 0}))

		err = g.Carve(Point{X: 0, Y: 0}, Point{X: 1, Y: 0})
		assert.ErrorIs(t, err, ErrLockedCell)

		locked, _ := g.CellAt(1, 0)
		open, _ := g.CellAt(0, 0)
		assert.Equal(t, AllWalls, locked.Walls)
		assert.Equal(t, AllWalls, open.Walls)
	})
}

func TestLock(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	require.NoError(t, g.Lock(Point{X: 2, Y: 2}))
	c, _ := g.CellAt(2, 2)
	assert.True(t, c.Locked)
	assert.True(t, c.Visited)

	assert.ErrorIs(t, g.Lock(Point{X: 3, Y: 3}), ErrOutOfRange)
}

func TestDirection(t *testing.T) {
	t.Run("wall bits", func(t *testing.T) {
		assert.Equal(t, uint8(1), North.Bit())
		assert.Equal(t, uint8(2), East.Bit())
		assert.Equal(t, uint8(4), South.Bit())
		assert.Equal(t, uint8(8), West.Bit())
	})

	t.Run("opposites", func(t *testing.T) {
		for _, d := range Directions {
			assert.Equal(t, d, d.Opposite().Opposite())
		}
	})

	t.Run("tokens round-trip", func(t *testing.T) {
		for _, d := range Directions {
			parsed, err := ParseDirection(d.Token())
			assert.NoError(t, err)
			assert.Equal(t, d, parsed)
		}
		_, err := ParseDirection('X')
		assert.Error(t, err)
	})
}

func TestWalls(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Carve(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}))

	walls := g.Walls()
	assert.Equal(t, AllWalls&^East.Bit(), walls[0][0])
	assert.Equal(t, AllWalls&^West.Bit(), walls[0][1])

	// The copy is detached from the grid.
	walls[1][1] = 0
	c, _ := g.CellAt(1, 1)
	assert.Equal(t, AllWalls, c.Walls)
}
