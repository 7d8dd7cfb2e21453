// Package importer migrates a legacy single-file JSON snapshot into a target
// record store. One-shot and offline: re-running against the same target is
// safe because every event is checked against the (video_id, timestamp,
// status) dedup key before insert.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/Bhumika158/SignSegmentationUI/internal/model"
	"github.com/Bhumika158/SignSegmentationUI/internal/store"
)

// Result reports migration counts. Failed counts per-record insert errors,
// which are skipped rather than aborting the run.
type Result struct {
	Migrated int
	Skipped  int
	Failed   int
}

// snapshot mirrors the legacy file layout: {"validations": {video_id: [...]}}.
type snapshot struct {
	Validations map[string][]model.ValidationEvent `json:"validations"`
}

// dedupKey is the exact-match triple that identifies an already-migrated
// record. Differing feedback or validator on a matching triple still counts
// as a duplicate.
type dedupKey struct {
	videoID   string
	timestamp string
	status    string
}

// Run migrates every event from the snapshot file into target. It aborts if
// the snapshot cannot be read or the target store is unreachable; mid-run
// failures are not rolled back (re-running resumes idempotently).
func Run(ctx context.Context, snapshotPath string, target store.Store) (Result, error) {
	var res Result

	data, err := os.ReadFile(snapshotPath)
	if err != nil {
		return res, fmt.Errorf("read snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return res, fmt.Errorf("parse snapshot: %w", err)
	}
	if len(snap.Validations) == 0 {
		log.Println("no validations found in snapshot, nothing to migrate")
		return res, nil
	}

	if err := backupSnapshot(snapshotPath, data); err != nil {
		return res, err
	}

	if err := target.Ping(ctx); err != nil {
		return res, fmt.Errorf("target store unreachable: %w", err)
	}

	videoIDs := make([]string, 0, len(snap.Validations))
	for id := range snap.Validations {
		videoIDs = append(videoIDs, id)
	}
	sort.Strings(videoIDs)

	for _, videoID := range videoIDs {
		existing, err := target.QueryByVideo(ctx, videoID)
		if err != nil {
			return res, fmt.Errorf("query target for %s: %w", videoID, err)
		}

		seen := make(map[dedupKey]bool, len(existing))
		for _, e := range existing {
			seen[dedupKey{videoID, e.Timestamp, e.Status}] = true
		}

		for _, event := range snap.Validations[videoID] {
			event.VideoID = videoID
			if event.Validator == "" {
				event.Validator = model.DefaultValidator
			}

			key := dedupKey{videoID, event.Timestamp, event.Status}
			if seen[key] {
				res.Skipped++
				continue
			}

			if err := target.Insert(ctx, event); err != nil {
				log.Printf("skipping record %s@%s: %v", videoID, event.Timestamp, err)
				res.Failed++
				continue
			}
			seen[key] = true
			res.Migrated++
		}
	}

	return res, nil
}

// backupSnapshot copies the source snapshot next to itself before the first
// migration touches it. An existing backup is left alone.
func backupSnapshot(path string, data []byte) error {
	backupPath := path + ".backup"
	if _, err := os.Stat(backupPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("check backup: %w", err)
	}

	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	log.Printf("snapshot backed up to %s", backupPath)
	return nil
}
