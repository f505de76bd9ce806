// Package mazeapi exposes maze construction, replay and solving over HTTP.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/amazeing-api/domain"
	"github.com/beka-birhanu/amazeing-api/generation"
	"github.com/beka-birhanu/amazeing-api/maze"
)

// PointDTO is a cell coordinate on the wire.
type PointDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p PointDTO) point() maze.Point {
	return maze.Point{X: p.X, Y: p.Y}
}

func toPointDTO(p maze.Point) PointDTO {
	return PointDTO{X: p.X, Y: p.Y}
}

func toPointDTOs(points []maze.Point) []PointDTO {
	dtos := make([]PointDTO, len(points))
	for i, p := range points {
		dtos[i] = toPointDTO(p)
	}
	return dtos
}

// CreateMazeRequest configures one generation run.
type CreateMazeRequest struct {
	Width     int      `json:"width" binding:"required,gt=0"`
	Height    int      `json:"height" binding:"required,gt=0"`
	Entry     PointDTO `json:"entry"`
	Exit      PointDTO `json:"exit"`
	Algorithm string   `json:"algorithm"`
	Pattern   bool     `json:"pattern"`
	Seed      *int64   `json:"seed"`
}

// MazeResponse is the stored maze returned to clients. Encoded holds the
// persisted text document; rendering it is the client's concern.
type MazeResponse struct {
	ID        string    `json:"id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Entry     PointDTO  `json:"entry"`
	Exit      PointDTO  `json:"exit"`
	Seed      int64     `json:"seed"`
	Algorithm string    `json:"algorithm"`
	Pattern   bool      `json:"pattern"`
	Encoded   string    `json:"encoded"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

func toMazeResponse(record *dmn.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:        record.ID.String(),
		Width:     record.Width,
		Height:    record.Height,
		Entry:     PointDTO{X: record.EntryX, Y: record.EntryY},
		Exit:      PointDTO{X: record.ExitX, Y: record.ExitY},
		Seed:      record.Seed,
		Algorithm: record.Algorithm,
		Pattern:   record.Pattern,
		Encoded:   record.Encoded,
		Path:      record.Path,
		CreatedAt: record.CreatedAt,
	}
}

// FrameCountResponse reports how many replay frames a maze has.
type FrameCountResponse struct {
	Count int `json:"count"`
}

// FrameResponse is one replay snapshot. Walls is one hex row per grid row,
// same nibble layout as the persisted document.
type FrameResponse struct {
	Index  int        `json:"index"`
	Walls  []string   `json:"walls"`
	Active *PointDTO  `json:"active,omitempty"`
	Fringe []PointDTO `json:"fringe,omitempty"`
	Locked []PointDTO `json:"locked,omitempty"`
}

const hexDigits = "0123456789ABCDEF"

func toFrameResponse(index int, snap generation.Snapshot, locked []maze.Point) *FrameResponse {
	rows := make([]string, len(snap.Walls))
	for y, row := range snap.Walls {
		digits := make([]byte, len(row))
		for x, walls := range row {
			digits[x] = hexDigits[walls&maze.AllWalls]
		}
		rows[y] = string(digits)
	}

	resp := &FrameResponse{
		Index:  index,
		Walls:  rows,
		Fringe: toPointDTOs(snap.Fringe),
		Locked: toPointDTOs(locked),
	}
	if snap.Active != nil {
		active := toPointDTO(*snap.Active)
		resp.Active = &active
	}
	return resp
}

// SolveRequest asks for a path between arbitrary endpoints of a stored maze.
type SolveRequest struct {
	Entry PointDTO `json:"entry"`
	Exit  PointDTO `json:"exit"`
}

// SolveResponse carries the direction-token solution string.
type SolveResponse struct {
	Path string `json:"path"`
}
