package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Bhumika158/SignSegmentationUI/internal/model"
)

// document is the persisted layout of the single-file backend:
// {"validations": {video_id: [event, ...]}}, pretty-printed.
type document struct {
	Validations map[string][]model.ValidationEvent `json:"validations"`
}

// JSONFileStore keeps the whole event history in one JSON document that is
// fully rewritten on every mutation. All access goes through a mutex, which
// serializes callers within this process; concurrent writer processes are
// unsafe and must be avoided by running a single server per file.
type JSONFileStore struct {
	mu   sync.Mutex
	path string
}

// NewJSONFile opens the file store at path, initializing an empty document
// if the file does not exist yet.
func NewJSONFile(path string) (*JSONFileStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: create data directory: %v", ErrUnavailable, err)
		}
	}

	s := &JSONFileStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.save(document{Validations: map[string][]model.ValidationEvent{}}); err != nil {
			return nil, err
		}
	} else if _, err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONFileStore) Name() string { return "jsonfile" }

func (s *JSONFileStore) Insert(ctx context.Context, event model.ValidationEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Validations[event.VideoID] = append(doc.Validations[event.VideoID], event)
	return s.save(doc)
}

func (s *JSONFileStore) QueryByVideo(ctx context.Context, videoID string) ([]model.ValidationEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	events := make([]model.ValidationEvent, len(doc.Validations[videoID]))
	copy(events, doc.Validations[videoID])
	for i := range events {
		events[i].VideoID = videoID
	}
	return events, nil
}

func (s *JSONFileStore) All(ctx context.Context) ([]model.ValidationEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	var events []model.ValidationEvent
	for videoID, list := range doc.Validations {
		for _, e := range list {
			e.VideoID = videoID
			events = append(events, e)
		}
	}
	return events, nil
}

func (s *JSONFileStore) DeleteByVideo(ctx context.Context, videoID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return 0, err
	}

	n := len(doc.Validations[videoID])
	if n == 0 {
		return 0, nil
	}
	delete(doc.Validations, videoID)
	if err := s.save(doc); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *JSONFileStore) Truncate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(document{Validations: map[string][]model.ValidationEvent{}})
}

func (s *JSONFileStore) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.load()
	return err
}

func (s *JSONFileStore) Close() error { return nil }

func (s *JSONFileStore) load() (document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return document{}, fmt.Errorf("%w: read %s: %v", ErrUnavailable, s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("%w: parse %s: %v", ErrUnavailable, s.path, err)
	}
	if doc.Validations == nil {
		doc.Validations = map[string][]model.ValidationEvent{}
	}
	return doc, nil
}

func (s *JSONFileStore) save(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode database: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, s.path, err)
	}
	return nil
}
