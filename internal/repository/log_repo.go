package repository

import (
	"context"

	"gorm.io/gorm"
	"savora.app/api/internal/model"
)

// LogRepository is append-and-read only; audit entries are never
// updated or deleted.
type LogRepository interface {
	Append(ctx context.Context, entry *model.LogEntry) error
	FindAll(ctx context.Context) ([]*model.LogEntry, error)
}

type logRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Append(ctx context.Context, entry *model.LogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *logRepository) FindAll(ctx context.Context) ([]*model.LogEntry, error) {
	var entries []*model.LogEntry
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
