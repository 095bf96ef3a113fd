package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"medal-service/internal/geo"
	"medal-service/internal/models"
	"medal-service/internal/repository"
)

// MedalService implements medal registration, radius search and owner deletes.
type MedalService struct {
	repo            repository.MedalRepository
	log             *zap.SugaredLogger
	defaultRadiusKm float64
	maxRows         int
}

// NewMedalService creates a new MedalService.
func NewMedalService(repo repository.MedalRepository, log *zap.SugaredLogger, defaultRadiusKm float64, maxRows int) *MedalService {
	return &MedalService{
		repo:            repo,
		log:             log,
		defaultRadiusKm: defaultRadiusKm,
		maxRows:         maxRows,
	}
}

// Register places a new medal at the given coordinates. A poor GPS fix
// (accuracy above the policy threshold) is a precondition failure unless the
// caller confirmed with force; accuracy zero means the device reported none
// and is accepted as-is, matching the original client behavior.
func (s *MedalService) Register(ctx context.Context, userID string, lat, lon, accuracy float64, force bool) (*models.Medal, error) {
	if accuracy > 0 && !geo.AccuracyAcceptable(accuracy) && !force {
		return nil, ErrPoorAccuracy
	}

	medal := &models.Medal{
		UserID:    userID,
		Latitude:  lat,
		Longitude: lon,
		IsDeleted: false,
	}
	if err := s.repo.Create(ctx, medal); err != nil {
		s.log.Errorw("register medal failed", "user_id", userID, "error", err)
		return nil, err
	}
	s.log.Infow("medal registered", "medal_no", medal.MedalNo, "user_id", userID)
	return medal, nil
}

// SearchWithinRadius returns all non-deleted medals inside the bounding box
// of the given radius around the center, capped at the configured row limit.
// Results are the bounding-box superset of the true circle: entries near the
// corners exceed the radius and are intentionally not post-filtered. Callers
// wanting the exact circle can filter with geo.Distance.
func (s *MedalService) SearchWithinRadius(ctx context.Context, centerLat, centerLon, radiusKm float64) ([]models.Medal, error) {
	if radiusKm <= 0 {
		radiusKm = s.defaultRadiusKm
	}
	bounds := geo.BoundingBox(centerLat, centerLon, radiusKm*1000)

	medals, err := s.repo.FindWithinBounds(ctx, bounds, s.maxRows)
	if err != nil {
		s.log.Errorw("radius search failed", "lat", centerLat, "lon", centerLon, "error", err)
		return nil, err
	}
	return medals, nil
}

// ListByUser returns the non-deleted medals a user registered, newest first.
func (s *MedalService) ListByUser(ctx context.Context, userID string) ([]models.Medal, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Delete hard-deletes a medal after verifying the requester owns it. The
// ownership check lives here at the service boundary; client-side gating
// alone is not trusted.
func (s *MedalService) Delete(ctx context.Context, medalNo int64, requesterID string) error {
	medal, err := s.repo.FindByNo(ctx, medalNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMedalNotFound
		}
		return err
	}
	if medal.UserID != requesterID {
		s.log.Warnw("delete refused for non-owner", "medal_no", medalNo, "requester", requesterID)
		return ErrNotOwner
	}

	if err := s.repo.Delete(ctx, medalNo); err != nil {
		s.log.Errorw("delete medal failed", "medal_no", medalNo, "error", err)
		return err
	}
	s.log.Infow("medal deleted", "medal_no", medalNo, "user_id", requesterID)
	return nil
}
