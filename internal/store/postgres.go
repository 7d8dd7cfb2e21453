package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Bhumika158/SignSegmentationUI/internal/model"
)

// opTimeout bounds every store call against the networked backend so a
// partition surfaces as ErrUnavailable instead of hanging the caller.
const opTimeout = 5 * time.Second

const schemaSQL = `
CREATE TABLE IF NOT EXISTS validations (
	id        BIGSERIAL PRIMARY KEY,
	video_id  TEXT NOT NULL,
	ts        TEXT NOT NULL,
	status    TEXT NOT NULL,
	feedback  TEXT NOT NULL DEFAULT '',
	validator TEXT NOT NULL DEFAULT 'community_member'
);
CREATE INDEX IF NOT EXISTS idx_validations_video_id ON validations (video_id);
CREATE INDEX IF NOT EXISTS idx_validations_video_ts ON validations (video_id, ts DESC);
`

// PostgresStore is the networked, multi-client record store backend.
// Timestamps are stored as the original strings so stored values round-trip
// bit-for-bit through the API.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres creates the validations table and its indexes if missing and
// returns the store.
func NewPostgres(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return nil, wrapPgErr(fmt.Errorf("init schema: %w", err))
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Name() string { return "postgres" }

// Pool exposes the underlying connection pool for metrics gauges.
func (s *PostgresStore) Pool() *pgxpool.Pool { return s.pool }

func (s *PostgresStore) Insert(ctx context.Context, event model.ValidationEvent) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.pool.Exec(ctx, `
		INSERT INTO validations (video_id, ts, status, feedback, validator)
		VALUES ($1, $2, $3, $4, $5)`,
		event.VideoID, event.Timestamp, event.Status, event.Feedback, event.Validator)
	return wrapPgErr(err)
}

func (s *PostgresStore) QueryByVideo(ctx context.Context, videoID string) ([]model.ValidationEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
		SELECT video_id, ts, status, feedback, validator
		FROM validations
		WHERE video_id = $1
		ORDER BY id`,
		videoID)
	if err != nil {
		return nil, wrapPgErr(err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (s *PostgresStore) All(ctx context.Context) ([]model.ValidationEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
		SELECT video_id, ts, status, feedback, validator
		FROM validations
		ORDER BY id`)
	if err != nil {
		return nil, wrapPgErr(err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (s *PostgresStore) DeleteByVideo(ctx context.Context, videoID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	tag, err := s.pool.Exec(ctx, `DELETE FROM validations WHERE video_id = $1`, videoID)
	if err != nil {
		return 0, wrapPgErr(err)
	}
	return int(tag.RowsAffected()), nil
}

func (s *PostgresStore) Truncate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.pool.Exec(ctx, `TRUNCATE validations`)
	return wrapPgErr(err)
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return wrapPgErr(s.pool.Ping(ctx))
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

type pgRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEvents(rows pgRows) ([]model.ValidationEvent, error) {
	var events []model.ValidationEvent
	for rows.Next() {
		var e model.ValidationEvent
		if err := rows.Scan(&e.VideoID, &e.Timestamp, &e.Status, &e.Feedback, &e.Validator); err != nil {
			return nil, wrapPgErr(err)
		}
		events = append(events, e)
	}
	return events, wrapPgErr(rows.Err())
}

// wrapPgErr maps timeouts and connection failures to ErrUnavailable; other
// database errors pass through for the gateway's generic store-error path.
func wrapPgErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
