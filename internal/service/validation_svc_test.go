package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Bhumika158/SignSegmentationUI/internal/model"
	"github.com/Bhumika158/SignSegmentationUI/internal/store"
)

func newTestService() *ValidationService {
	return NewValidationService(store.NewMemory())
}

func event(ts, status, feedback, validator string) model.ValidationEvent {
	return model.ValidationEvent{
		Timestamp: ts,
		Status:    status,
		Feedback:  feedback,
		Validator: validator,
	}
}

func TestSaveValidation_ReturnsTotalCount(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		total, err := svc.SaveValidation(ctx, "clip1", event(fmt.Sprintf("2024-01-0%dT00:00:00", i), "correct", "", "alice"))
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		if total != i {
			t.Errorf("total after save %d = %d, want %d", i, total, i)
		}
	}

	events, err := svc.ListForVideo(ctx, "clip1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 4 {
		t.Errorf("ListForVideo returned %d events, want 4", len(events))
	}
}

func TestSaveValidation_DefaultsValidator(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.SaveValidation(ctx, "clip1", event("2024-01-01T00:00:00", "correct", "", "")); err != nil {
		t.Fatalf("save: %v", err)
	}

	events, _ := svc.ListForVideo(ctx, "clip1")
	if events[0].Validator != model.DefaultValidator {
		t.Errorf("validator = %q, want %q", events[0].Validator, model.DefaultValidator)
	}
}

func TestGetStatus_PendingDefault(t *testing.T) {
	svc := newTestService()

	status, err := svc.GetStatus(context.Background(), "unknown_id")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Status != "pending" {
		t.Errorf("status = %q, want pending", status.Status)
	}
	if status.LastUpdated != nil {
		t.Errorf("last_updated = %v, want nil", *status.LastUpdated)
	}
	if status.HasFeedback {
		t.Error("has_feedback = true, want false")
	}
}

// Two reviewers disagree; the later verdict wins.
func TestGetStatus_LatestWins(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	svc.SaveValidation(ctx, "HELLO", event("2024-01-01T00:00:00", "correct", "", "alice"))
	svc.SaveValidation(ctx, "HELLO", event("2024-01-02T00:00:00", "incorrect", "wrong boundary", "bob"))

	status, err := svc.GetStatus(ctx, "HELLO")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Status != "incorrect" {
		t.Errorf("status = %q, want incorrect", status.Status)
	}
	if status.LastUpdated == nil || *status.LastUpdated != "2024-01-02T00:00:00" {
		t.Errorf("last_updated = %v, want 2024-01-02T00:00:00", status.LastUpdated)
	}
	if !status.HasFeedback {
		t.Error("has_feedback = false, want true")
	}

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalVideos != 1 {
		t.Errorf("total_videos = %d, want 1", stats.TotalVideos)
	}
	if stats.NeedsReview != 1 || stats.Completed != 0 {
		t.Errorf("buckets = completed:%d needs_review:%d, want completed:0 needs_review:1",
			stats.Completed, stats.NeedsReview)
	}
}

// Status derivation only depends on the max-timestamp event, not on the
// order events arrive in.
func TestGetStatus_InsertOrderIrrelevant(t *testing.T) {
	events := []model.ValidationEvent{
		event("2024-01-01T00:00:00", "correct", "", "alice"),
		event("2024-01-03T00:00:00", "needs_review", "check again", "carol"),
		event("2024-01-02T00:00:00", "incorrect", "off by a frame", "bob"),
	}
	orders := [][]int{
		{0, 1, 2},
		{2, 1, 0},
		{1, 0, 2},
		{2, 0, 1},
	}

	for _, order := range orders {
		svc := newTestService()
		ctx := context.Background()
		for _, i := range order {
			if _, err := svc.SaveValidation(ctx, "clip1", events[i]); err != nil {
				t.Fatalf("save: %v", err)
			}
		}

		status, err := svc.GetStatus(ctx, "clip1")
		if err != nil {
			t.Fatalf("status: %v", err)
		}
		if status.Status != "needs_review" {
			t.Errorf("order %v: status = %q, want needs_review", order, status.Status)
		}
		if status.LastUpdated == nil || *status.LastUpdated != "2024-01-03T00:00:00" {
			t.Errorf("order %v: last_updated = %v, want 2024-01-03T00:00:00", order, status.LastUpdated)
		}
	}
}

// Events sharing a timestamp resolve to the last-inserted one, consistently.
func TestGetStatus_TimestampTieBreak(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	svc.SaveValidation(ctx, "clip1", event("2024-01-01T00:00:00", "correct", "", "alice"))
	svc.SaveValidation(ctx, "clip1", event("2024-01-01T00:00:00", "incorrect", "", "bob"))

	for i := 0; i < 3; i++ {
		status, err := svc.GetStatus(ctx, "clip1")
		if err != nil {
			t.Fatalf("status: %v", err)
		}
		if status.Status != "incorrect" {
			t.Errorf("read %d: status = %q, want incorrect (last inserted)", i, status.Status)
		}
	}
}

func TestGetStatus_WhitespaceFeedbackDoesNotCount(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	svc.SaveValidation(ctx, "clip1", event("2024-01-01T00:00:00", "correct", "   \t", "alice"))

	status, _ := svc.GetStatus(ctx, "clip1")
	if status.HasFeedback {
		t.Error("has_feedback = true for whitespace-only feedback, want false")
	}
}

func TestGetStats_BucketsPartitionTotal(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Latest per video: correct, incorrect, needs_review, and an
	// unrecognized status that lands in the pending catch-all.
	svc.SaveValidation(ctx, "a", event("2024-01-01T00:00:00", "incorrect", "", "x"))
	svc.SaveValidation(ctx, "a", event("2024-01-02T00:00:00", "correct", "", "x"))
	svc.SaveValidation(ctx, "b", event("2024-01-01T00:00:00", "incorrect", "", "x"))
	svc.SaveValidation(ctx, "c", event("2024-01-01T00:00:00", "needs_review", "", "x"))
	svc.SaveValidation(ctx, "d", event("2024-01-01T00:00:00", "maybe_fine", "", "x"))

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.TotalVideos != 4 {
		t.Errorf("total_videos = %d, want 4", stats.TotalVideos)
	}
	if stats.Completed != 1 {
		t.Errorf("completed = %d, want 1", stats.Completed)
	}
	if stats.NeedsReview != 1 {
		t.Errorf("needs_review = %d, want 1", stats.NeedsReview)
	}
	if stats.InProgress != 1 {
		t.Errorf("in_progress = %d, want 1", stats.InProgress)
	}
	if stats.Pending != 1 {
		t.Errorf("pending = %d, want 1 (unrecognized status)", stats.Pending)
	}

	sum := stats.Completed + stats.NeedsReview + stats.InProgress + stats.Pending
	if sum != stats.TotalVideos {
		t.Errorf("bucket sum = %d, want total_videos = %d", sum, stats.TotalVideos)
	}
}

func TestGetStats_EmptyStore(t *testing.T) {
	svc := newTestService()

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalVideos != 0 || stats.Pending != 0 || stats.Completed != 0 {
		t.Errorf("empty store stats = %+v, want all zero", stats)
	}
}

func TestListAll_SortedPerVideo(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	svc.SaveValidation(ctx, "clip1", event("2024-01-02T00:00:00", "incorrect", "", "x"))
	svc.SaveValidation(ctx, "clip1", event("2024-01-01T00:00:00", "correct", "", "x"))
	svc.SaveValidation(ctx, "clip2", event("2024-01-01T00:00:00", "correct", "", "x"))

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d videos, want 2", len(all))
	}

	clip1 := all["clip1"]
	if len(clip1) != 2 {
		t.Fatalf("clip1 has %d events, want 2", len(clip1))
	}
	if clip1[0].Timestamp != "2024-01-01T00:00:00" || clip1[1].Timestamp != "2024-01-02T00:00:00" {
		t.Errorf("clip1 not timestamp-ascending: %q, %q", clip1[0].Timestamp, clip1[1].Timestamp)
	}
}

func TestDeleteVideo_RemovesHistory(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	svc.SaveValidation(ctx, "clip1", event("2024-01-01T00:00:00", "correct", "", "x"))
	svc.SaveValidation(ctx, "clip1", event("2024-01-02T00:00:00", "incorrect", "", "x"))

	n, err := svc.DeleteVideo(ctx, "clip1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d events, want 2", n)
	}

	events, _ := svc.ListForVideo(ctx, "clip1")
	if len(events) != 0 {
		t.Errorf("ListForVideo after delete returned %d events, want 0", len(events))
	}

	status, _ := svc.GetStatus(ctx, "clip1")
	if status.Status != "pending" {
		t.Errorf("status after delete = %q, want pending", status.Status)
	}

	stats, _ := svc.GetStats(ctx)
	if stats.TotalVideos != 0 {
		t.Errorf("total_videos after delete = %d, want 0", stats.TotalVideos)
	}
}

func TestDeleteVideo_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.DeleteVideo(context.Background(), "never_seen")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("delete of unknown video returned %v, want store.ErrNotFound", err)
	}
}
