// Package model defines the padma domain types: streams, transactions,
// templates, monthly archives and the aggregate AppState.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Special stream names. Savings is the implicit goal whose budget is
// computed rather than stored; Others is the catch-all bucket.
const (
	SavingsStreamName = "Savings"
	OthersStreamName  = "Others"
)

// Stream is a named budget bucket, either a spending category or a savings goal.
type Stream struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	OriginalAmount int64     `json:"originalAmount"`
	IsGoal         bool      `json:"isGoal"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewStream returns a stream with a fresh ID and both timestamps set to now.
func NewStream(name string, amount int64, isGoal bool, now time.Time) Stream {
	return Stream{
		ID:             uuid.NewString(),
		Name:           name,
		OriginalAmount: amount,
		IsGoal:         isGoal,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsSpecial reports whether the stream is Savings or Others.
func (s Stream) IsSpecial() bool {
	return s.Name == SavingsStreamName || s.Name == OthersStreamName
}

// StreamPatch holds the fields an update may change. Nil fields are left alone.
type StreamPatch struct {
	Name           *string
	OriginalAmount *int64
	IsGoal         *bool
}

// Apply merges the patch into s.
func (p StreamPatch) Apply(s Stream) Stream {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.OriginalAmount != nil {
		s.OriginalAmount = *p.OriginalAmount
	}
	if p.IsGoal != nil {
		s.IsGoal = *p.IsGoal
	}
	return s
}

// FindStream returns the stream with the given id.
func FindStream(streams []Stream, id string) (Stream, bool) {
	for _, s := range streams {
		if s.ID == id {
			return s, true
		}
	}
	return Stream{}, false
}

// FindStreamByName returns the first stream with the given name.
func FindStreamByName(streams []Stream, name string) (Stream, bool) {
	for _, s := range streams {
		if s.Name == name {
			return s, true
		}
	}
	return Stream{}, false
}
