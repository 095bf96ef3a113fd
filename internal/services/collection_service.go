package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"medal-service/internal/models"
	"medal-service/internal/repository"
)

// CollectionService implements the per-user collect/uncollect ledger used by
// exploration mode.
type CollectionService struct {
	repo repository.CollectionRepository
	log  *zap.SugaredLogger
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(repo repository.CollectionRepository, log *zap.SugaredLogger) *CollectionService {
	return &CollectionService{repo: repo, log: log}
}

// Collect claims a medal for the user. Collecting the same medal twice maps
// the unique-index violation to ErrDuplicateCollection.
func (s *CollectionService) Collect(ctx context.Context, userID string, medalNo int64) (*models.MedalCollection, error) {
	collection := &models.MedalCollection{
		UserID:  userID,
		MedalNo: medalNo,
	}
	if err := s.repo.Create(ctx, collection); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCollection
		}
		s.log.Errorw("collect medal failed", "medal_no", medalNo, "error", err)
		return nil, err
	}
	s.log.Infow("medal collected", "medal_no", medalNo, "user_id", userID)
	return collection, nil
}

// Uncollect withdraws the user's claim on a medal. The row is removed
// entirely; uncollecting a medal that was never collected is a success, not
// a fault.
func (s *CollectionService) Uncollect(ctx context.Context, userID string, medalNo int64) error {
	if err := s.repo.DeleteByPair(ctx, userID, medalNo); err != nil {
		s.log.Errorw("uncollect medal failed", "medal_no", medalNo, "error", err)
		return err
	}
	return nil
}

// ListByUser returns the user's collections, most recently collected first.
func (s *CollectionService) ListByUser(ctx context.Context, userID string) ([]models.MedalCollection, error) {
	return s.repo.ListByUser(ctx, userID)
}

// IsCollected reports whether the user has collected the medal.
func (s *CollectionService) IsCollected(ctx context.Context, userID string, medalNo int64) (bool, error) {
	return s.repo.Exists(ctx, userID, medalNo)
}
