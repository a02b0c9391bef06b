// Package models contains domain entities and business models for the listing marketplace
package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents an advertiser profile listed on the marketplace.
// Availability is stored as the raw pair (IsOnline, OnlineUntil); readers must
// derive the effective status through IsEffectivelyOnline and never trust
// IsOnline directly, since expiry is evaluated lazily and the persisted flag
// may stay true after the window has lapsed.
type Profile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UUID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_profiles_uuid" json:"uuid"`
	DisplayName string    `gorm:"size:120;not null" json:"display_name"`
	City        *string   `gorm:"size:80;index:idx_profiles_city" json:"city,omitempty"`

	// Contact handles shown on the public listing page
	Whatsapp  *string `gorm:"size:32" json:"whatsapp,omitempty"`
	Telegram  *string `gorm:"size:64" json:"telegram,omitempty"`
	Instagram *string `gorm:"size:64" json:"instagram,omitempty"`
	Twitter   *string `gorm:"size:64" json:"twitter,omitempty"`
	Phone     *string `gorm:"size:20" json:"phone,omitempty"`

	// Availability pair, mutated only by explicit toggle actions.
	// OnlineUntil is null for the indefinite manual mode.
	IsOnline    *bool      `gorm:"default:false;index:idx_profiles_is_online" json:"is_online"`
	OnlineUntil *time.Time `gorm:"column:online_until" json:"online_until,omitempty"`

	IsActive *bool `gorm:"default:true;index:idx_profiles_is_active" json:"is_active"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_profiles_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`

	// Relations
	ViewEvents     []ViewEvent     `gorm:"foreignKey:ProfileID" json:"-"`
	ClickEvents    []ClickEvent    `gorm:"foreignKey:ProfileID" json:"-"`
	FavoriteEvents []FavoriteEvent `gorm:"foreignKey:ProfileID" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}

// IsEffectivelyOnline derives the availability actually observed by readers.
// Pure function of stored state and the supplied clock: false when the flag is
// off, false once the window has lapsed (online_until <= now), true otherwise.
func (p *Profile) IsEffectivelyOnline(now time.Time) bool {
	if !boolVal(p.IsOnline) {
		return false
	}
	if p.OnlineUntil != nil && !p.OnlineUntil.After(now) {
		return false
	}
	return true
}

func boolVal(b *bool) bool {
	return b != nil && *b
}

// ProfileFilter represents filter criteria for profile queries
type ProfileFilter struct {
	ID            *uint
	UUID          *uuid.UUID
	City          *string
	IsOnline      *bool
	IsActive      *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
