// Package repos implements database access for content records.
package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/coopfed/portal/internal/db/models"
)

// ErrNotFound is returned when a record id does not resolve.
var ErrNotFound = errors.New("record not found")

// ContentRepository handles database operations for one content table.
// Every content type shares the same access shape, so a single generic
// repository serves them all.
type ContentRepository[T any] struct {
	db *gorm.DB
}

// NewContentRepository creates a repository for the content type T.
func NewContentRepository[T any](db *gorm.DB) *ContentRepository[T] {
	return &ContentRepository[T]{db: db}
}

// Create persists a new record.
func (r *ContentRepository[T]) Create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Get retrieves a record by id. Returns ErrNotFound if the id does not
// resolve to an existing record.
func (r *ContentRepository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return &record, nil
}

// List retrieves records ordered by creation time, newest first.
func (r *ContentRepository[T]) List(ctx context.Context, opts *models.ListOptions) ([]T, error) {
	if opts == nil {
		opts = &models.ListOptions{}
	}
	opts.Normalize()

	var records []T
	err := r.db.WithContext(ctx).Model(new(T)).
		Order("created_at DESC").
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&records).Error
	return records, err
}

// Latest retrieves the most recently created record, or ErrNotFound when
// the table is empty.
func (r *ContentRepository[T]) Latest(ctx context.Context) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return &record, nil
}

// Patch applies a partial update as a single atomic write.
func (r *ContentRepository[T]) Patch(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to patch record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

// Delete removes a record.
func (r *ContentRepository[T]) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(new(T), id).Error
}
