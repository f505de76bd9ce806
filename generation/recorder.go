package generation

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/amazeing-api/maze"
)

// ErrFrameRange is returned when a snapshot index lies outside [0, Count()).
var ErrFrameRange = errors.New("snapshot index out of range")

// Snapshot is an immutable capture of generation state at one carve event:
// the full wall state, the cell that was just carved into, and the current
// frontier or stack membership. Active is nil on the final completed-grid
// snapshot.
type Snapshot struct {
	Walls  [][]uint8    `json:"walls"`
	Active *maze.Point  `json:"active,omitempty"`
	Fringe []maze.Point `json:"fringe,omitempty"`
}

// Recorder collects the ordered snapshot sequence of a single generation
// run. Strategies append to it synchronously; consumers only read. A
// recorder is scoped to one run and must not be shared across runs.
type Recorder struct {
	snapshots []Snapshot
}

// NewRecorder creates an empty recorder for one generation run.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// record appends one snapshot. The wall state is copied so later carves
// cannot alter an emitted frame.
func (r *Recorder) record(g *maze.Grid, active *maze.Point, fringe []maze.Point) {
	var activeCopy *maze.Point
	if active != nil {
		a := *active
		activeCopy = &a
	}

	fringeCopy := make([]maze.Point, len(fringe))
	copy(fringeCopy, fringe)

	r.snapshots = append(r.snapshots, Snapshot{
		Walls:  g.Walls(),
		Active: activeCopy,
		Fringe: fringeCopy,
	})
}

// Count returns the number of captured snapshots.
func (r *Recorder) Count() int {
	return len(r.snapshots)
}

// At returns the snapshot at the given index.
func (r *Recorder) At(index int) (Snapshot, error) {
	if index < 0 || index >= len(r.snapshots) {
		return Snapshot{}, fmt.Errorf("%w: %d of %d", ErrFrameRange, index, len(r.snapshots))
	}
	return r.snapshots[index], nil
}
