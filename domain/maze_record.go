package domain

import (
	"time"

	"github.com/google/uuid"
)

// MazeRecord is the persisted form of one generated maze: its
// configuration, the encoded wall document and the solved path.
type MazeRecord struct {
	ID        uuid.UUID `bson:"_id"`
	Width     int       `bson:"width"`
	Height    int       `bson:"height"`
	EntryX    int       `bson:"entryX"`
	EntryY    int       `bson:"entryY"`
	ExitX     int       `bson:"exitX"`
	ExitY     int       `bson:"exitY"`
	Seed      int64     `bson:"seed"`
	Algorithm string    `bson:"algorithm"`
	Pattern   bool      `bson:"pattern"`
	Encoded   string    `bson:"encoded"`
	Path      string    `bson:"path"`
	CreatedAt time.Time `bson:"createdAt"`
}
