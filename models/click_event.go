package models

import (
	"time"
)

// Contact click type constants
const (
	ClickWhatsapp  = "whatsapp"
	ClickTelegram  = "telegram"
	ClickInstagram = "instagram"
	ClickTwitter   = "twitter"
	ClickPhone     = "phone"
	ClickMessage   = "message"
	ClickOther     = "other"
)

// NormalizeContactType maps a raw click type onto the known contact channels,
// falling back to other for empty or unrecognized values.
func NormalizeContactType(raw string) string {
	switch raw {
	case ClickWhatsapp, ClickTelegram, ClickInstagram, ClickTwitter, ClickPhone, ClickMessage:
		return raw
	default:
		return ClickOther
	}
}

// ClickEvent records a visitor tapping one of the contact buttons on a
// profile's listing page.
type ClickEvent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProfileID   uint      `gorm:"not null;index:idx_click_events_profile_id;index:idx_click_events_profile_created,priority:1" json:"profile_id"`
	ContactType string    `gorm:"size:16;not null;index:idx_click_events_contact_type" json:"contact_type"`
	IPAddress   *string   `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent   *string   `gorm:"type:text" json:"user_agent,omitempty"`
	CreatedAt   time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_click_events_profile_created,priority:2" json:"created_at"`

	// Relations
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (ClickEvent) TableName() string {
	return "click_events"
}

// ClickEventFilter represents filter criteria for click event queries
type ClickEventFilter struct {
	ID            *uint
	ProfileID     *uint
	ContactType   *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
