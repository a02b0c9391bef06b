package models

import (
	"time"

	"github.com/google/uuid"
)

// Device class constants for view events
const (
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
	DeviceTablet  = "tablet"
	DeviceUnknown = "unknown"
)

// NormalizeDeviceClass maps a raw device string onto the known classes,
// falling back to unknown for empty or unrecognized values.
func NormalizeDeviceClass(raw string) string {
	switch raw {
	case DeviceMobile, DeviceDesktop, DeviceTablet:
		return raw
	default:
		return DeviceUnknown
	}
}

// ViewEvent records a single page load of a profile's public listing page.
// ViewerID is null for anonymous visitors; unique-viewer counts consider only
// non-null viewer ids.
type ViewEvent struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProfileID   uint       `gorm:"not null;index:idx_view_events_profile_id;index:idx_view_events_profile_created,priority:1" json:"profile_id"`
	ViewerID    *uuid.UUID `gorm:"type:uuid;index:idx_view_events_viewer_id" json:"viewer_id,omitempty"`
	DeviceClass string     `gorm:"size:16;not null;default:'unknown'" json:"device_class"`
	IPAddress   *string    `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent   *string    `gorm:"type:text" json:"user_agent,omitempty"`
	CreatedAt   time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_view_events_profile_created,priority:2" json:"created_at"`

	// Relations
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (ViewEvent) TableName() string {
	return "view_events"
}

// ViewEventFilter represents filter criteria for view event queries
type ViewEventFilter struct {
	ID            *uint
	ProfileID     *uint
	ViewerID      *uuid.UUID
	HasViewerID   *bool
	DeviceClass   *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
