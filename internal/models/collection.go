package models

import "time"

// MedalCollection records that a user claimed a medal in exploration mode.
// Unlike medals, collections are hard-deleted on uncollect; there is no audit
// trail for claims the user withdrew.
type MedalCollection struct {
	CollectionID int64     `json:"collection_id" gorm:"primaryKey;autoIncrement"`
	UserID       string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_medal"`
	MedalNo      int64     `json:"medal_no" gorm:"not null;uniqueIndex:idx_user_medal"`
	CollectedAt  time.Time `json:"collected_at" gorm:"autoCreateTime"`
}
