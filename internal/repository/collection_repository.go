package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"medal-service/internal/models"
)

// CollectionRepository defines persistence operations for medal collections.
type CollectionRepository interface {
	Create(ctx context.Context, collection *models.MedalCollection) error
	DeleteByPair(ctx context.Context, userID string, medalNo int64) error
	ListByUser(ctx context.Context, userID string) ([]models.MedalCollection, error)
	Exists(ctx context.Context, userID string, medalNo int64) (bool, error)
}

// CollectionRepositoryImpl provides methods to interact with the MedalCollection model in the database.
type CollectionRepositoryImpl struct {
	db *gorm.DB
}

// NewCollectionRepository creates a new CollectionRepositoryImpl instance with the provided GORM database connection.
func NewCollectionRepository(db *gorm.DB) *CollectionRepositoryImpl {
	return &CollectionRepositoryImpl{db: db}
}

// Create inserts a collection row. Collecting a medal twice surfaces as
// gorm.ErrDuplicatedKey from the (user_id, medal_no) unique index.
func (r *CollectionRepositoryImpl) Create(ctx context.Context, collection *models.MedalCollection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

// DeleteByPair removes the collection row for the pair. Deleting an absent
// row matches zero rows and is not an error; uncollect is idempotent.
func (r *CollectionRepositoryImpl) DeleteByPair(ctx context.Context, userID string, medalNo int64) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND medal_no = ?", userID, medalNo).
		Delete(&models.MedalCollection{}).Error
	if err != nil {
		return errors.Wrap(err, "delete collection")
	}
	return nil
}

// ListByUser retrieves a user's collections, most recently collected first.
func (r *CollectionRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]models.MedalCollection, error) {
	var collections []models.MedalCollection
	err := withReadRetry(ctx, func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("collected_at DESC").
			Find(&collections).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "list collections by user")
	}
	return collections, nil
}

// Exists reports whether the user has collected the medal.
func (r *CollectionRepositoryImpl) Exists(ctx context.Context, userID string, medalNo int64) (bool, error) {
	var count int64
	err := withReadRetry(ctx, func() error {
		return r.db.WithContext(ctx).
			Model(&models.MedalCollection{}).
			Where("user_id = ? AND medal_no = ?", userID, medalNo).
			Limit(1).
			Count(&count).Error
	})
	if err != nil {
		return false, errors.Wrap(err, "check collection exists")
	}
	return count > 0, nil
}
