package service

import (
	"context"
	"sort"
	"strings"

	"github.com/Bhumika158/SignSegmentationUI/internal/model"
	"github.com/Bhumika158/SignSegmentationUI/internal/store"
)

// ValidationService implements the review workflow on top of a record store.
// It holds no state of its own: every query re-reads the store, so reads see
// prior writes within the same process regardless of backend.
type ValidationService struct {
	store store.Store
}

func NewValidationService(st store.Store) *ValidationService {
	return &ValidationService{store: st}
}

// SaveValidation appends one event and returns the new total event count for
// the video. The insert and the recount are separate store calls; a
// concurrent insert for the same video between them can skew the total by
// one until the next read. Accepted: the store backends do not all support
// multi-statement transactions.
func (s *ValidationService) SaveValidation(ctx context.Context, videoID string, event model.ValidationEvent) (int, error) {
	event.VideoID = videoID
	if event.Validator == "" {
		event.Validator = model.DefaultValidator
	}

	if err := s.store.Insert(ctx, event); err != nil {
		return 0, err
	}

	events, err := s.store.QueryByVideo(ctx, videoID)
	if err != nil {
		return 0, err
	}
	return len(events), nil
}

// ListAll returns every known video id mapped to its timestamp-ascending
// event list. Videos with zero events do not appear; they only surface via
// GetStatus, which synthesizes "pending".
func (s *ValidationService) ListAll(ctx context.Context) (map[string][]model.ValidationEvent, error) {
	events, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]model.ValidationEvent)
	for _, e := range events {
		grouped[e.VideoID] = append(grouped[e.VideoID], e)
	}
	for id := range grouped {
		sortByTimestamp(grouped[id])
	}
	return grouped, nil
}

// ListForVideo returns the video's events in timestamp-ascending order.
func (s *ValidationService) ListForVideo(ctx context.Context, videoID string) ([]model.ValidationEvent, error) {
	events, err := s.store.QueryByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	sortByTimestamp(events)
	return events, nil
}

// GetStatus derives the latest-known status for a video. A video with no
// events is implicitly "pending" with a null last_updated.
func (s *ValidationService) GetStatus(ctx context.Context, videoID string) (*model.StatusResponse, error) {
	events, err := s.store.QueryByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return &model.StatusResponse{
			VideoID: videoID,
			Status:  model.StatusPending,
		}, nil
	}

	latest := latestEvent(events)
	ts := latest.Timestamp
	return &model.StatusResponse{
		VideoID:     videoID,
		Status:      latest.Status,
		LastUpdated: &ts,
		HasFeedback: strings.TrimSpace(latest.Feedback) != "",
	}, nil
}

// GetStats buckets every video by its latest status: correct -> completed,
// incorrect -> needs_review, needs_review -> in_progress, anything else ->
// the pending catch-all. The four buckets always sum to total_videos.
func (s *ValidationService) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	events, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]model.ValidationEvent)
	for _, e := range events {
		grouped[e.VideoID] = append(grouped[e.VideoID], e)
	}

	stats := &model.StatsResponse{TotalVideos: len(grouped)}
	for _, list := range grouped {
		switch latestEvent(list).Status {
		case model.StatusCorrect:
			stats.Completed++
		case model.StatusIncorrect:
			stats.NeedsReview++
		case model.StatusNeedsReview:
			stats.InProgress++
		default:
			stats.Pending++
		}
	}
	return stats, nil
}

// DeleteVideo removes the video's whole event history. Fails with
// store.ErrNotFound when the video had no events, on every backend.
func (s *ValidationService) DeleteVideo(ctx context.Context, videoID string) (int, error) {
	n, err := s.store.DeleteByVideo(ctx, videoID)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, store.ErrNotFound
	}
	return n, nil
}

// sortByTimestamp orders events ascending by timestamp. The sort is stable,
// so events sharing a timestamp keep insertion order and the last-inserted
// one wins recency ties within a process run.
func sortByTimestamp(events []model.ValidationEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return compareTimestamps(events[i].Timestamp, events[j].Timestamp) < 0
	})
}

func latestEvent(events []model.ValidationEvent) model.ValidationEvent {
	sortByTimestamp(events)
	return events[len(events)-1]
}
