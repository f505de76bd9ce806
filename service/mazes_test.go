package service

import (
	"context"
	"testing"

	"github.com/beka-birhanu/amazeing-api/codec"
	dmn "github.com/beka-birhanu/amazeing-api/domain"
	"github.com/beka-birhanu/amazeing-api/generation"
	"github.com/beka-birhanu/amazeing-api/maze"
	"github.com/beka-birhanu/amazeing-api/service/i"
	"github.com/beka-birhanu/amazeing-api/solver"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memMazeRepo struct {
	records map[uuid.UUID]dmn.MazeRecord
}

func newMemMazeRepo() *memMazeRepo {
	return &memMazeRepo{records: make(map[uuid.UUID]dmn.MazeRecord)}
}

func (r *memMazeRepo) Save(record *dmn.MazeRecord) error {
	r.records[record.ID] = *record
	return nil
}

func (r *memMazeRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, assert.AnError
	}
	return &record, nil
}

type memMazeCache struct {
	docs  map[string]string
	locks []string
}

func newMemMazeCache() *memMazeCache {
	return &memMazeCache{docs: make(map[string]string)}
}

func (c *memMazeCache) SetEncoded(_ context.Context, id, document string) error {
	c.docs[id] = document
	return nil
}

func (c *memMazeCache) GetEncoded(_ context.Context, id string) (string, error) {
	return c.docs[id], nil
}

func (c *memMazeCache) WithLock(key string, fn func() error) error {
	c.locks = append(c.locks, key)
	return fn()
}

func newManager(t *testing.T) (*MazeManager, *memMazeRepo, *memMazeCache) {
	t.Helper()
	repo := newMemMazeRepo()
	cache := newMemMazeCache()
	manager, err := NewMazeManager(repo, cache)
	require.NoError(t, err)
	return manager, repo, cache
}

func spec(seed int64) i.MazeSpec {
	return i.MazeSpec{
		Width:     10,
		Height:    8,
		Entry:     maze.Point{X: 0, Y: 0},
		Exit:      maze.Point{X: 9, Y: 7},
		Algorithm: generation.FrontierGrowth,
		Seed:      &seed,
	}
}

func TestMazeManagerCreate(t *testing.T) {
	manager, repo, cache := newManager(t)
	ctx := context.Background()

	record, err := manager.Create(ctx, spec(42))
	require.NoError(t, err)

	assert.NotEmpty(t, record.Path)
	assert.NotEmpty(t, record.Encoded)
	assert.Equal(t, int64(42), record.Seed)
	assert.Contains(t, repo.records, record.ID)
	assert.Equal(t, record.Encoded, cache.docs[record.ID.String()])

	t.Run("frames are retained for replay", func(t *testing.T) {
		count, err := manager.FrameCount(record.ID)
		require.NoError(t, err)
		assert.Greater(t, count, 0)

		snap, _, err := manager.Frame(record.ID, count-1)
		require.NoError(t, err)
		assert.Nil(t, snap.Active, "final frame captures the completed grid")

		_, _, err = manager.Frame(record.ID, count)
		assert.ErrorIs(t, err, generation.ErrFrameRange)

		_, err = manager.FrameCount(uuid.New())
		assert.ErrorIs(t, err, ErrFramesUnavailable)
	})

}

func TestMazeManagerDeterminism(t *testing.T) {
	manager, _, _ := newManager(t)
	ctx := context.Background()

	first, err := manager.Create(ctx, spec(7))
	require.NoError(t, err)
	second, err := manager.Create(ctx, spec(7))
	require.NoError(t, err)

	assert.Equal(t, first.Encoded, second.Encoded)
	assert.Equal(t, first.Path, second.Path)
}

func TestMazeManagerRegenerate(t *testing.T) {
	manager, _, cache := newManager(t)
	ctx := context.Background()

	record, err := manager.Create(ctx, spec(42))
	require.NoError(t, err)

	regenerated, err := manager.Regenerate(ctx, record.ID)
	require.NoError(t, err)

	assert.Equal(t, record.ID, regenerated.ID)
	assert.Equal(t, int64(43), regenerated.Seed, "seed bumps by one per regeneration")
	assert.NotEqual(t, record.Encoded, regenerated.Encoded)
	assert.Equal(t, []string{"maze:" + record.ID.String() + ":generate_lock"}, cache.locks)
}

func TestMazeManagerSolve(t *testing.T) {
	manager, _, _ := newManager(t)
	ctx := context.Background()

	record, err := manager.Create(ctx, spec(42))
	require.NoError(t, err)

	t.Run("stored entry and exit", func(t *testing.T) {
		path, err := manager.Solve(ctx, record.ID, maze.Point{X: 0, Y: 0}, maze.Point{X: 9, Y: 7})
		require.NoError(t, err)
		assert.Equal(t, record.Path, path)
	})

	t.Run("arbitrary endpoints", func(t *testing.T) {
		path, err := manager.Solve(ctx, record.ID, maze.Point{X: 9, Y: 7}, maze.Point{X: 0, Y: 0})
		require.NoError(t, err)
		assert.NotEmpty(t, path)
	})
}

func TestMazeManagerInvalidSpec(t *testing.T) {
	manager, _, _ := newManager(t)

	bad := spec(1)
	bad.Entry = maze.Point{X: 99, Y: 0}
	_, err := manager.Create(context.Background(), bad)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestMazeManagerSolveDisconnected(t *testing.T) {
	// A record whose document is fully walled must yield the no-path
	// outcome, not an internal failure.
	manager, repo, _ := newManager(t)
	ctx := context.Background()

	g, err := maze.New(5, 5)
	require.NoError(t, err)
	record := &dmn.MazeRecord{
		ID: uuid.New(), Width: 5, Height: 5,
		ExitX: 4, ExitY: 4,
		Algorithm: generation.FrontierGrowth.String(),
	}
	record.Encoded = codec.Encode(g, maze.Point{X: 0, Y: 0}, maze.Point{X: 4, Y: 4}, "")
	require.NoError(t, repo.Save(record))

	_, err = manager.Solve(ctx, record.ID, maze.Point{X: 0, Y: 0}, maze.Point{X: 4, Y: 4})
	assert.ErrorIs(t, err, solver.ErrNoPath)
}
