package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"medal-service/internal/models"
)

// ReportRepository defines persistence operations for medal reports.
type ReportRepository interface {
	Create(ctx context.Context, report *models.MedalReport) error
	CountByMedal(ctx context.Context, medalNo int64) (int64, error)
	CountByMedals(ctx context.Context, medalNos []int64) (int64, error)
	Exists(ctx context.Context, medalNo int64, userID string) (bool, error)
}

// ReportRepositoryImpl provides methods to interact with the MedalReport model in the database.
type ReportRepositoryImpl struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepositoryImpl instance with the provided GORM database connection.
func NewReportRepository(db *gorm.DB) *ReportRepositoryImpl {
	return &ReportRepositoryImpl{db: db}
}

// Create inserts a report row. A second report for the same
// (medal_no, reporter_user_id) pair surfaces as gorm.ErrDuplicatedKey from
// the unique index; the error is returned untranslated so the service layer
// can map it to the domain duplicate error.
func (r *ReportRepositoryImpl) Create(ctx context.Context, report *models.MedalReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// CountByMedal returns the number of reports referencing a medal.
func (r *ReportRepositoryImpl) CountByMedal(ctx context.Context, medalNo int64) (int64, error) {
	var count int64
	err := withReadRetry(ctx, func() error {
		return r.db.WithContext(ctx).
			Model(&models.MedalReport{}).
			Where("medal_no = ?", medalNo).
			Count(&count).Error
	})
	if err != nil {
		return 0, errors.Wrap(err, "count reports by medal")
	}
	return count, nil
}

// CountByMedals returns the total number of reports referencing any of the
// given medals.
func (r *ReportRepositoryImpl) CountByMedals(ctx context.Context, medalNos []int64) (int64, error) {
	if len(medalNos) == 0 {
		return 0, nil
	}
	var count int64
	err := withReadRetry(ctx, func() error {
		return r.db.WithContext(ctx).
			Model(&models.MedalReport{}).
			Where("medal_no IN ?", medalNos).
			Count(&count).Error
	})
	if err != nil {
		return 0, errors.Wrap(err, "count reports by medals")
	}
	return count, nil
}

// Exists reports whether the user has already reported the medal.
func (r *ReportRepositoryImpl) Exists(ctx context.Context, medalNo int64, userID string) (bool, error) {
	var count int64
	err := withReadRetry(ctx, func() error {
		return r.db.WithContext(ctx).
			Model(&models.MedalReport{}).
			Where("medal_no = ? AND reporter_user_id = ?", medalNo, userID).
			Limit(1).
			Count(&count).Error
	})
	if err != nil {
		return false, errors.Wrap(err, "check report exists")
	}
	return count > 0, nil
}
