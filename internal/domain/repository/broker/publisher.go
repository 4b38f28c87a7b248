package broker

import (
	"context"
	"time"
)

// Cleanup journal phases. "pending" is written before a record's blob
// deletion starts, "deleted" after its row is gone, so a replayed sweep can
// tell "never attempted" from "attempted, blobs gone, row still pending".
const (
	PhasePending = "pending"
	PhaseDeleted = "deleted"
)

// Event is one entry of the cleanup journal.
type Event struct {
	Phase string    `json:"phase"`
	Kind  string    `json:"kind"` // "wish" or "invitation"
	ID    string    `json:"id"`
	Blobs []string  `json:"blobs,omitempty"`
	At    time.Time `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
