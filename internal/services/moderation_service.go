package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"medal-service/internal/models"
	"medal-service/internal/repository"
)

// ModerationService implements the report / invalidate / ban state machine.
//
// Medal states: active → invalidated once distinct reports reach the medal
// threshold. User states: active → banned (every owned medal invalidated)
// once cumulative received reports reach the ban threshold. Both transitions
// are terminal; there is no un-invalidate or unban path.
type ModerationService struct {
	medals  repository.MedalRepository
	reports repository.ReportRepository
	log     *zap.SugaredLogger

	medalThreshold int
	banThreshold   int
}

// NewModerationService creates a new ModerationService.
func NewModerationService(medals repository.MedalRepository, reports repository.ReportRepository, log *zap.SugaredLogger, medalThreshold, banThreshold int) *ModerationService {
	return &ModerationService{
		medals:         medals,
		reports:        reports,
		log:            log,
		medalThreshold: medalThreshold,
		banThreshold:   banThreshold,
	}
}

// ReportOutcome tells the caller what the moderation pipeline did beyond
// storing the report.
type ReportOutcome struct {
	MedalInvalidated bool `json:"medal_invalidated"`
	UserBanned       bool `json:"user_banned"`
}

// SubmitReport is the composed moderation pipeline: insert the report, then
// re-check the medal's invalidation threshold, then the owner's ban
// threshold, in that order. Exposing only the composed operation removes the
// possibility of a caller skipping a step and leaving a threshold silently
// unenforced.
//
// The three steps are not atomic. A crash between them can leave a medal
// over-threshold but active until the next report against it re-runs the
// checks; the threshold checks are idempotent, so the retry converges.
func (s *ModerationService) SubmitReport(ctx context.Context, medalNo int64, reporterID string) (*ReportOutcome, error) {
	medal, err := s.medals.FindByNo(ctx, medalNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMedalNotFound
		}
		return nil, err
	}

	if err := s.ReportMedal(ctx, medalNo, reporterID); err != nil {
		return nil, err
	}

	outcome := &ReportOutcome{}
	outcome.MedalInvalidated, err = s.CheckAndInvalidateMedal(ctx, medalNo)
	if err != nil {
		return nil, err
	}
	outcome.UserBanned, err = s.CheckAndBanUser(ctx, medal.UserID)
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// ReportMedal inserts a report row. Reporting the same medal twice maps the
// unique-index violation to ErrDuplicateReport, a recoverable user-visible
// condition.
func (s *ModerationService) ReportMedal(ctx context.Context, medalNo int64, reporterID string) error {
	report := &models.MedalReport{
		MedalNo:        medalNo,
		ReporterUserID: reporterID,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateReport
		}
		s.log.Errorw("report medal failed", "medal_no", medalNo, "error", err)
		return err
	}
	s.log.Infow("medal reported", "medal_no", medalNo, "reporter", reporterID)
	return nil
}

// ReportCount returns the number of reports referencing a medal.
func (s *ModerationService) ReportCount(ctx context.Context, medalNo int64) (int64, error) {
	return s.reports.CountByMedal(ctx, medalNo)
}

// HasUserReported reports whether the user already reported the medal.
func (s *ModerationService) HasUserReported(ctx context.Context, medalNo int64, userID string) (bool, error) {
	return s.reports.Exists(ctx, medalNo, userID)
}

// CheckAndInvalidateMedal recomputes the report count and invalidates the
// medal once it reaches the threshold, reporting whether the update was
// issued. Idempotent: re-running against an already invalidated medal issues
// the same harmless update.
func (s *ModerationService) CheckAndInvalidateMedal(ctx context.Context, medalNo int64) (bool, error) {
	count, err := s.reports.CountByMedal(ctx, medalNo)
	if err != nil {
		return false, err
	}
	if count < int64(s.medalThreshold) {
		return false, nil
	}

	if err := s.medals.Invalidate(ctx, medalNo, time.Now()); err != nil {
		s.log.Errorw("invalidate medal failed", "medal_no", medalNo, "error", err)
		return false, err
	}
	s.log.Infow("medal invalidated", "medal_no", medalNo, "report_count", count)
	return true, nil
}

// UserReportReceivedCount sums the reports across all medals a user owns,
// invalidated medals included. A user with no medals has zero reports
// without touching the reports table.
func (s *ModerationService) UserReportReceivedCount(ctx context.Context, userID string) (int64, error) {
	medalNos, err := s.medals.ListNosByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(medalNos) == 0 {
		return 0, nil
	}
	return s.reports.CountByMedals(ctx, medalNos)
}

// CheckAndBanUser invalidates every medal a user owns once their cumulative
// received reports reach the ban threshold, including medals that
// individually received no reports. It reports whether the bulk invalidation
// was issued.
func (s *ModerationService) CheckAndBanUser(ctx context.Context, userID string) (bool, error) {
	count, err := s.UserReportReceivedCount(ctx, userID)
	if err != nil {
		return false, err
	}
	if count < int64(s.banThreshold) {
		return false, nil
	}

	if err := s.medals.InvalidateAllByUser(ctx, userID, time.Now()); err != nil {
		s.log.Errorw("ban user failed", "user_id", userID, "error", err)
		return false, err
	}
	s.log.Infow("user banned", "user_id", userID, "received_reports", count)
	return true, nil
}
