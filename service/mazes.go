// Package service wires the maze engine to its collaborators: persistence,
// caching, authentication and the HTTP surface.
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/beka-birhanu/amazeing-api/codec"
	dmn "github.com/beka-birhanu/amazeing-api/domain"
	"github.com/beka-birhanu/amazeing-api/generation"
	"github.com/beka-birhanu/amazeing-api/maze"
	"github.com/beka-birhanu/amazeing-api/service/i"
	"github.com/beka-birhanu/amazeing-api/solver"
	"github.com/google/uuid"
)

// ErrFramesUnavailable is returned when replay frames for a maze id are not
// retained on this instance. Frames live only as long as the process that
// ran the generation.
var ErrFramesUnavailable = errors.New("no replay frames retained for maze")

// frameSet holds the replay artifacts of one generation run.
type frameSet struct {
	recorder *generation.Recorder
	locked   []maze.Point
}

// MazeManager implements i.MazeManager. Each generation run exclusively
// owns its grid and recorder; only the finished artifacts are shared.
type MazeManager struct {
	repo  i.MazeRepo
	cache i.MazeCache

	mu     sync.RWMutex
	frames map[uuid.UUID]*frameSet
}

// NewMazeManager creates the maze orchestration service.
func NewMazeManager(repo i.MazeRepo, cache i.MazeCache) (*MazeManager, error) {
	if repo == nil || cache == nil {
		return nil, errors.New("maze manager requires a repo and a cache")
	}
	return &MazeManager{
		repo:   repo,
		cache:  cache,
		frames: make(map[uuid.UUID]*frameSet),
	}, nil
}

// Create generates a maze from the spec, solves it, encodes it and
// persists the record. The recorder and locked-cell set are retained for
// frame replay.
func (m *MazeManager) Create(ctx context.Context, spec i.MazeSpec) (*dmn.MazeRecord, error) {
	seed := int64(0)
	if spec.Seed != nil {
		seed = *spec.Seed
	} else {
		// Collaborator-supplied nondeterminism; the run itself stays
		// deterministic for this seed.
		seed = rand.Int63()
	}

	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		Width:     spec.Width,
		Height:    spec.Height,
		EntryX:    spec.Entry.X,
		EntryY:    spec.Entry.Y,
		ExitX:     spec.Exit.X,
		ExitY:     spec.Exit.Y,
		Seed:      seed,
		Algorithm: spec.Algorithm.String(),
		Pattern:   spec.Pattern,
		CreatedAt: time.Now().UTC(),
	}

	if err := m.build(ctx, record, spec.Algorithm); err != nil {
		return nil, err
	}

	if err := m.repo.Save(record); err != nil {
		return nil, err
	}
	// Cache population is best effort; Mongo remains the source of truth.
	_ = m.cache.SetEncoded(ctx, record.ID.String(), record.Encoded)

	return record, nil
}

// build runs one full generation for the record's configuration and fills
// in the encoded document and solution path.
func (m *MazeManager) build(ctx context.Context, record *dmn.MazeRecord, algo generation.Algorithm) error {
	grid, err := maze.New(record.Width, record.Height)
	if err != nil {
		return fmt.Errorf("%w: %v", generation.ErrInvalidConfig, err)
	}

	entry := maze.Point{X: record.EntryX, Y: record.EntryY}
	exit := maze.Point{X: record.ExitX, Y: record.ExitY}

	locked := generation.PatternCells(record.Width, record.Height, entry, exit, record.Pattern)
	if err := generation.Protect(grid, locked); err != nil {
		return err
	}

	recorder := generation.NewRecorder()
	rng := rand.New(rand.NewSource(record.Seed))
	if err := generation.Generate(grid, entry, exit, rng, recorder, algo); err != nil {
		return err
	}

	path, err := solver.Solve(grid, entry, exit)
	if err != nil {
		return err
	}

	record.Path = path
	record.Encoded = codec.Encode(grid, entry, exit, path)

	m.mu.Lock()
	m.frames[record.ID] = &frameSet{recorder: recorder, locked: locked}
	m.mu.Unlock()
	return nil
}

// ByID retrieves a stored maze record. The encoded document is served from
// the cache when present.
func (m *MazeManager) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	record, err := m.repo.ByID(id)
	if err != nil {
		return nil, err
	}

	if encoded, cacheErr := m.cache.GetEncoded(ctx, id.String()); cacheErr == nil && encoded != "" {
		record.Encoded = encoded
	} else {
		_ = m.cache.SetEncoded(ctx, id.String(), record.Encoded)
	}
	return record, nil
}

// Regenerate rebuilds a stored maze with the seed bumped by one, under the
// per-maze generation lock so a grid only ever has one active run.
func (m *MazeManager) Regenerate(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	var record *dmn.MazeRecord

	err := m.cache.WithLock("maze:"+id.String()+":generate_lock", func() error {
		stored, err := m.repo.ByID(id)
		if err != nil {
			return err
		}

		algo, err := generation.ParseAlgorithm(stored.Algorithm)
		if err != nil {
			return err
		}

		stored.Seed++
		if err := m.build(ctx, stored, algo); err != nil {
			return err
		}
		if err := m.repo.Save(stored); err != nil {
			return err
		}
		_ = m.cache.SetEncoded(ctx, stored.ID.String(), stored.Encoded)

		record = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// FrameCount returns the number of replay snapshots for a maze id.
func (m *MazeManager) FrameCount(id uuid.UUID) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	set, ok := m.frames[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrFramesUnavailable, id)
	}
	return set.recorder.Count(), nil
}

// Frame returns one replay snapshot plus the locked-cell set of the run.
func (m *MazeManager) Frame(id uuid.UUID, index int) (generation.Snapshot, []maze.Point, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	set, ok := m.frames[id]
	if !ok {
		return generation.Snapshot{}, nil, fmt.Errorf("%w: %s", ErrFramesUnavailable, id)
	}

	snap, err := set.recorder.At(index)
	if err != nil {
		return generation.Snapshot{}, nil, err
	}
	return snap, set.locked, nil
}

// Solve decodes the stored grid and runs the solver between arbitrary
// endpoints. It works on any stored document, including disconnected ones.
func (m *MazeManager) Solve(ctx context.Context, id uuid.UUID, entry, exit maze.Point) (string, error) {
	record, err := m.ByID(ctx, id)
	if err != nil {
		return "", err
	}

	doc, err := codec.Decode(record.Encoded)
	if err != nil {
		return "", err
	}

	return solver.Solve(doc.Grid, entry, exit)
}
