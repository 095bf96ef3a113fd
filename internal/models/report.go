package models

import "time"

// MedalReport records that a user flagged a medal as invalid or abusive.
// The unique index limits each (medal, reporter) pair to a single row; the
// database violation is the only duplicate-report guard.
type MedalReport struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	MedalNo        int64     `json:"medal_no" gorm:"not null;uniqueIndex:idx_medal_reporter"`
	ReporterUserID string    `json:"reporter_user_id" gorm:"type:uuid;not null;uniqueIndex:idx_medal_reporter"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}
