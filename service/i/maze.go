package i

import (
	"context"

	dmn "github.com/beka-birhanu/amazeing-api/domain"
	"github.com/beka-birhanu/amazeing-api/generation"
	"github.com/beka-birhanu/amazeing-api/maze"
	"github.com/google/uuid"
)

// MazeSpec carries the collaborator-supplied configuration for one
// generation run. A nil Seed means the service picks a nondeterministic one.
type MazeSpec struct {
	Width     int
	Height    int
	Entry     maze.Point
	Exit      maze.Point
	Algorithm generation.Algorithm
	Pattern   bool
	Seed      *int64
}

// MazeManager orchestrates maze construction, replay and solving.
type MazeManager interface {
	// Create generates, solves, encodes and persists a new maze.
	Create(ctx context.Context, spec MazeSpec) (*dmn.MazeRecord, error)

	// ByID retrieves a stored maze, cache first.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Regenerate rebuilds a stored maze with its seed bumped by one,
	// holding the per-maze generation lock for the whole run.
	Regenerate(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// FrameCount returns the number of replay snapshots retained for a maze.
	FrameCount(id uuid.UUID) (int, error)

	// Frame returns one replay snapshot and the locked-cell set of the run.
	Frame(id uuid.UUID, index int) (generation.Snapshot, []maze.Point, error)

	// Solve runs the solver over the stored grid between arbitrary endpoints.
	Solve(ctx context.Context, id uuid.UUID, entry, exit maze.Point) (string, error)
}

// MazeCache caches encoded maze documents and hands out the distributed
// per-maze generation locks.
type MazeCache interface {
	// SetEncoded stores the encoded document for a maze id with a TTL.
	SetEncoded(ctx context.Context, id string, document string) error

	// GetEncoded retrieves the encoded document for a maze id.
	GetEncoded(ctx context.Context, id string) (string, error)

	// WithLock runs fn while holding the named distributed lock.
	WithLock(key string, fn func() error) error
}
