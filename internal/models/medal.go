package models

import "time"

// Medal represents a geo-tagged marker placed by a user. Deletion through
// moderation is a soft delete: the row keeps its coordinates for audit but is
// excluded from every spatial query.
type Medal struct {
	MedalNo   int64      `json:"medal_no" gorm:"primaryKey;autoIncrement"`
	UserID    string     `json:"user_id" gorm:"type:uuid;not null;index"`
	Latitude  float64    `json:"latitude" gorm:"not null;index"`
	Longitude float64    `json:"longitude" gorm:"not null;index"`
	IsDeleted bool       `json:"is_deleted" gorm:"not null;default:false;index"`
	DeletedAt *time.Time `json:"deleted_at"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}
