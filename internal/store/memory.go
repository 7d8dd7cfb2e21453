package store

import (
	"context"
	"sync"

	"github.com/Bhumika158/SignSegmentationUI/internal/model"
)

// MemoryStore is a map-backed store satisfying the same contract as the
// persistent backends. Used by tests and local experiments; not selectable
// through deployment configuration.
type MemoryStore struct {
	mu     sync.RWMutex
	events map[string][]model.ValidationEvent
}

func NewMemory() *MemoryStore {
	return &MemoryStore{events: make(map[string][]model.ValidationEvent)}
}

func (s *MemoryStore) Name() string { return "memory" }

func (s *MemoryStore) Insert(ctx context.Context, event model.ValidationEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.VideoID] = append(s.events[event.VideoID], event)
	return nil
}

func (s *MemoryStore) QueryByVideo(ctx context.Context, videoID string) ([]model.ValidationEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]model.ValidationEvent, len(s.events[videoID]))
	copy(events, s.events[videoID])
	return events, nil
}

func (s *MemoryStore) All(ctx context.Context) ([]model.ValidationEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var all []model.ValidationEvent
	for _, list := range s.events {
		all = append(all, list...)
	}
	return all, nil
}

func (s *MemoryStore) DeleteByVideo(ctx context.Context, videoID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.events[videoID])
	delete(s.events, videoID)
	return n, nil
}

func (s *MemoryStore) Truncate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[string][]model.ValidationEvent)
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }
