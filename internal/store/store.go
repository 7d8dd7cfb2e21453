// Package store holds the record-store abstraction for validation events
// and its interchangeable backends: a single-file JSON document, a networked
// Postgres database, an embedded SQLite database, and an in-memory fake.
package store

import (
	"context"
	"errors"

	"github.com/Bhumika158/SignSegmentationUI/internal/model"
)

// ErrUnavailable indicates the backing file or database connection cannot be
// opened, written, or reached within the operation timeout.
var ErrUnavailable = errors.New("storage unavailable")

// ErrNotFound indicates an operation targeted a video with no stored events.
var ErrNotFound = errors.New("video not found")

// Store is the backend-agnostic persistence contract for validation events.
// Events are append-only: Insert never rejects duplicate content, and removal
// is all-or-nothing per video. QueryByVideo and All return events in
// store-side order; callers sort when order matters.
type Store interface {
	// Insert appends one event.
	Insert(ctx context.Context, event model.ValidationEvent) error

	// QueryByVideo returns all events for the given video id.
	QueryByVideo(ctx context.Context, videoID string) ([]model.ValidationEvent, error)

	// All returns every event across all videos.
	All(ctx context.Context) ([]model.ValidationEvent, error)

	// DeleteByVideo removes all events for the given video id and returns
	// the number removed. Removing a video with no events is a no-op.
	DeleteByVideo(ctx context.Context, videoID string) (int, error)

	// Truncate removes every event. Administrative maintenance only; not
	// exposed over the network API.
	Truncate(ctx context.Context) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Name identifies the backend in health responses ("jsonfile",
	// "postgres", "sqlite", "memory").
	Name() string

	Close() error
}
