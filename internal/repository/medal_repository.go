package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"medal-service/internal/geo"
	"medal-service/internal/models"
)

// MedalRepository defines persistence operations for medals.
type MedalRepository interface {
	Create(ctx context.Context, medal *models.Medal) error
	FindByNo(ctx context.Context, medalNo int64) (*models.Medal, error)
	FindWithinBounds(ctx context.Context, bounds geo.Bounds, limit int) ([]models.Medal, error)
	ListByUser(ctx context.Context, userID string) ([]models.Medal, error)
	ListNosByUser(ctx context.Context, userID string) ([]int64, error)
	Delete(ctx context.Context, medalNo int64) error
	Invalidate(ctx context.Context, medalNo int64, at time.Time) error
	InvalidateAllByUser(ctx context.Context, userID string, at time.Time) error
}

// MedalRepositoryImpl provides methods to interact with the Medal model in the database.
type MedalRepositoryImpl struct {
	db *gorm.DB
}

// NewMedalRepository creates a new MedalRepositoryImpl instance with the provided GORM database connection.
func NewMedalRepository(db *gorm.DB) *MedalRepositoryImpl {
	return &MedalRepositoryImpl{db: db}
}

// Create inserts a new Medal in the database.
func (r *MedalRepositoryImpl) Create(ctx context.Context, medal *models.Medal) error {
	if err := r.db.WithContext(ctx).Create(medal).Error; err != nil {
		return errors.Wrap(err, "create medal")
	}
	return nil
}

// FindByNo retrieves a Medal by its number, deleted or not.
func (r *MedalRepositoryImpl) FindByNo(ctx context.Context, medalNo int64) (*models.Medal, error) {
	var medal models.Medal
	err := withReadRetry(ctx, func() error {
		return r.db.WithContext(ctx).First(&medal, "medal_no = ?", medalNo).Error
	})
	if err != nil {
		return nil, err
	}
	return &medal, nil
}

// FindWithinBounds retrieves non-deleted medals whose coordinates fall inside
// the bounding box, capped at limit rows. The box is a pre-filter: results
// near the corners lie outside the true radius circle and are returned
// anyway.
func (r *MedalRepositoryImpl) FindWithinBounds(ctx context.Context, bounds geo.Bounds, limit int) ([]models.Medal, error) {
	var medals []models.Medal
	err := withReadRetry(ctx, func() error {
		return r.db.WithContext(ctx).
			Where("is_deleted = ?", false).
			Where("latitude BETWEEN ? AND ?", bounds.MinLat, bounds.MaxLat).
			Where("longitude BETWEEN ? AND ?", bounds.MinLon, bounds.MaxLon).
			Limit(limit).
			Find(&medals).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "find medals within bounds")
	}
	return medals, nil
}

// ListByUser retrieves a user's non-deleted medals, newest first.
func (r *MedalRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]models.Medal, error) {
	var medals []models.Medal
	err := withReadRetry(ctx, func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ? AND is_deleted = ?", userID, false).
			Order("created_at DESC").
			Find(&medals).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "list medals by user")
	}
	return medals, nil
}

// ListNosByUser retrieves every medal number a user owns, including
// invalidated ones. Moderation counts reports against deleted medals too.
func (r *MedalRepositoryImpl) ListNosByUser(ctx context.Context, userID string) ([]int64, error) {
	var nos []int64
	err := withReadRetry(ctx, func() error {
		return r.db.WithContext(ctx).
			Model(&models.Medal{}).
			Where("user_id = ?", userID).
			Pluck("medal_no", &nos).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "list medal numbers by user")
	}
	return nos, nil
}

// Delete removes a Medal row entirely. Owner-initiated deletes are hard
// deletes; moderation uses Invalidate instead.
func (r *MedalRepositoryImpl) Delete(ctx context.Context, medalNo int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Medal{}, "medal_no = ?", medalNo).Error; err != nil {
		return errors.Wrap(err, "delete medal")
	}
	return nil
}

// Invalidate soft-deletes a Medal. Issuing the update on an already
// invalidated medal is harmless.
func (r *MedalRepositoryImpl) Invalidate(ctx context.Context, medalNo int64, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&models.Medal{}).
		Where("medal_no = ?", medalNo).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": at}).Error
	if err != nil {
		return errors.Wrap(err, "invalidate medal")
	}
	return nil
}

// InvalidateAllByUser soft-deletes every medal a user owns in one bulk update.
func (r *MedalRepositoryImpl) InvalidateAllByUser(ctx context.Context, userID string, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&models.Medal{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": at}).Error
	if err != nil {
		return errors.Wrap(err, "invalidate medals by user")
	}
	return nil
}
