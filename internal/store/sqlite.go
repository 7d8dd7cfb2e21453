package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Bhumika158/SignSegmentationUI/internal/model"
)

// validationRecord is the gorm row model for the embedded SQLite backend.
// Timestamps stay text so stored strings round-trip unchanged.
type validationRecord struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	VideoID   string `gorm:"column:video_id;type:text;not null;index:idx_validations_video_id;index:idx_validations_video_ts,priority:1"`
	Timestamp string `gorm:"column:ts;type:text;not null;index:idx_validations_video_ts,priority:2"`
	Status    string `gorm:"column:status;type:text;not null"`
	Feedback  string `gorm:"column:feedback;type:text;not null"`
	Validator string `gorm:"column:validator;type:text;not null"`
}

func (validationRecord) TableName() string { return "validations" }

// SQLiteStore is the embedded document-database backend: a real database in
// a single local file, no server process required.
type SQLiteStore struct {
	db *gorm.DB
}

func NewSQLite(db *gorm.DB) (*SQLiteStore, error) {
	if err := db.AutoMigrate(&validationRecord{}); err != nil {
		return nil, fmt.Errorf("%w: migrate validations table: %v", ErrUnavailable, err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Name() string { return "sqlite" }

func (s *SQLiteStore) Insert(ctx context.Context, event model.ValidationEvent) error {
	rec := validationRecord{
		VideoID:   event.VideoID,
		Timestamp: event.Timestamp,
		Status:    event.Status,
		Feedback:  event.Feedback,
		Validator: event.Validator,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert validation: %w", err)
	}
	return nil
}

func (s *SQLiteStore) QueryByVideo(ctx context.Context, videoID string) ([]model.ValidationEvent, error) {
	var rows []validationRecord
	err := s.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("id asc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query validations: %w", err)
	}
	return mapRecords(rows), nil
}

func (s *SQLiteStore) All(ctx context.Context) ([]model.ValidationEvent, error) {
	var rows []validationRecord
	if err := s.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query validations: %w", err)
	}
	return mapRecords(rows), nil
}

func (s *SQLiteStore) DeleteByVideo(ctx context.Context, videoID string) (int, error) {
	res := s.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&validationRecord{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete validations: %w", res.Error)
	}
	return int(res.RowsAffected), nil
}

func (s *SQLiteStore) Truncate(ctx context.Context) error {
	res := s.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&validationRecord{})
	if res.Error != nil {
		return fmt.Errorf("truncate validations: %w", res.Error)
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func mapRecords(rows []validationRecord) []model.ValidationEvent {
	if len(rows) == 0 {
		return nil
	}
	events := make([]model.ValidationEvent, 0, len(rows))
	for _, r := range rows {
		events = append(events, model.ValidationEvent{
			VideoID:   r.VideoID,
			Timestamp: r.Timestamp,
			Status:    r.Status,
			Feedback:  r.Feedback,
			Validator: r.Validator,
		})
	}
	return events
}
