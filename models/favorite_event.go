package models

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteEvent records a visitor adding a profile to their favorites list.
// Favorites are counted all-time regardless of the reporting range.
type FavoriteEvent struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	ProfileID uint       `gorm:"not null;index:idx_favorite_events_profile_id" json:"profile_id"`
	ViewerID  *uuid.UUID `gorm:"type:uuid;index:idx_favorite_events_viewer_id" json:"viewer_id,omitempty"`
	CreatedAt time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_favorite_events_created_at" json:"created_at"`

	// Relations
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (FavoriteEvent) TableName() string {
	return "favorite_events"
}

// FavoriteEventFilter represents filter criteria for favorite event queries
type FavoriteEventFilter struct {
	ID            *uint
	ProfileID     *uint
	ViewerID      *uuid.UUID
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
