package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Bhumika158/SignSegmentationUI/internal/model"
	"github.com/Bhumika158/SignSegmentationUI/internal/store"
)

const sampleSnapshot = `{
  "validations": {
    "HELLO": [
      {"timestamp": "2024-01-01T00:00:00", "status": "correct", "feedback": "", "validator": "alice"},
      {"timestamp": "2024-01-02T00:00:00", "status": "incorrect", "feedback": "wrong boundary", "validator": "bob"}
    ],
    "THANKS": [
      {"timestamp": "2024-01-03T00:00:00", "status": "needs_review", "feedback": "", "validator": ""}
    ]
  }
}`

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "validation_database.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_MigratesAllEvents(t *testing.T) {
	path := writeSnapshot(t, sampleSnapshot)
	target := store.NewMemory()

	res, err := Run(context.Background(), path, target)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Migrated != 3 || res.Skipped != 0 || res.Failed != 0 {
		t.Errorf("result = %+v, want 3 migrated", res)
	}

	events, _ := target.QueryByVideo(context.Background(), "HELLO")
	if len(events) != 2 {
		t.Errorf("HELLO has %d events, want 2", len(events))
	}

	// Omitted validator gets the default during migration.
	events, _ = target.QueryByVideo(context.Background(), "THANKS")
	if len(events) != 1 || events[0].Validator != model.DefaultValidator {
		t.Errorf("THANKS events = %v, want one with default validator", events)
	}
}

// Running the import twice against the same target migrates nothing new.
func TestRun_SecondRunIsNoop(t *testing.T) {
	path := writeSnapshot(t, sampleSnapshot)
	target := store.NewMemory()
	ctx := context.Background()

	if _, err := Run(ctx, path, target); err != nil {
		t.Fatalf("first run: %v", err)
	}

	res, err := Run(ctx, path, target)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if res.Migrated != 0 {
		t.Errorf("second run migrated %d, want 0", res.Migrated)
	}
	if res.Skipped != 3 {
		t.Errorf("second run skipped %d, want 3", res.Skipped)
	}

	all, _ := target.All(ctx)
	if len(all) != 3 {
		t.Errorf("target has %d events after two runs, want 3", len(all))
	}
}

// Feedback and validator do not participate in the dedup key: a triple match
// on (video_id, timestamp, status) is a duplicate even when they differ.
func TestRun_DedupIgnoresFeedbackAndValidator(t *testing.T) {
	path := writeSnapshot(t, sampleSnapshot)
	target := store.NewMemory()
	ctx := context.Background()

	target.Insert(ctx, model.ValidationEvent{
		VideoID:   "HELLO",
		Timestamp: "2024-01-01T00:00:00",
		Status:    "correct",
		Feedback:  "different feedback",
		Validator: "someone_else",
	})

	res, err := Run(ctx, path, target)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Migrated != 2 || res.Skipped != 1 {
		t.Errorf("result = %+v, want 2 migrated, 1 skipped", res)
	}
}

// A snapshot carrying the same triple twice only migrates it once.
func TestRun_DedupWithinSnapshot(t *testing.T) {
	path := writeSnapshot(t, `{
  "validations": {
    "HELLO": [
      {"timestamp": "2024-01-01T00:00:00", "status": "correct", "feedback": "a", "validator": "alice"},
      {"timestamp": "2024-01-01T00:00:00", "status": "correct", "feedback": "b", "validator": "bob"}
    ]
  }
}`)
	target := store.NewMemory()

	res, err := Run(context.Background(), path, target)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Migrated != 1 || res.Skipped != 1 {
		t.Errorf("result = %+v, want 1 migrated, 1 skipped", res)
	}
}

func TestRun_CreatesBackupOnce(t *testing.T) {
	path := writeSnapshot(t, sampleSnapshot)
	backupPath := path + ".backup"
	ctx := context.Background()

	if _, err := Run(ctx, path, store.NewMemory()); err != nil {
		t.Fatalf("run: %v", err)
	}

	backup, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("backup not created: %v", err)
	}
	if string(backup) != sampleSnapshot {
		t.Error("backup content differs from snapshot")
	}

	// An existing backup is never overwritten.
	if err := os.WriteFile(backupPath, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(ctx, path, store.NewMemory()); err != nil {
		t.Fatalf("rerun: %v", err)
	}
	backup, _ = os.ReadFile(backupPath)
	if string(backup) != "original" {
		t.Error("existing backup was overwritten")
	}
}

func TestRun_MissingSnapshotFails(t *testing.T) {
	_, err := Run(context.Background(), filepath.Join(t.TempDir(), "nope.json"), store.NewMemory())
	if err == nil {
		t.Fatal("run with missing snapshot succeeded, want error")
	}
}

func TestRun_UnreachableTargetAborts(t *testing.T) {
	path := writeSnapshot(t, sampleSnapshot)

	target := &downStore{Store: store.NewMemory()}
	_, err := Run(context.Background(), path, target)
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("run against unreachable target returned %v, want ErrUnavailable", err)
	}

	all, _ := target.All(context.Background())
	if len(all) != 0 {
		t.Errorf("unreachable target received %d events, want 0", len(all))
	}
}

// downStore simulates a partitioned backend: pings fail, everything else
// delegates.
type downStore struct {
	store.Store
}

func (d *downStore) Ping(ctx context.Context) error { return store.ErrUnavailable }
