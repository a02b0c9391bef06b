package dto

import "time"

// SetOnlineRequest represents the request to turn a profile's availability on.
// DurationMinutes is optional; absent means online until manually turned off.
type SetOnlineRequest struct {
	DurationMinutes *int `json:"duration_minutes,omitempty" validate:"omitempty,gt=0"`
}

// AvailabilityStatusResponse reports the stored pair and the derived status
type AvailabilityStatusResponse struct {
	IsOnline          bool       `json:"is_online"`
	OnlineUntil       *time.Time `json:"online_until,omitempty"`
	EffectivelyOnline bool       `json:"effectively_online"`
}
