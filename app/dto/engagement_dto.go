package dto

// TrackViewRequest records one listing page load
type TrackViewRequest struct {
	ViewerID    *string `json:"viewer_id,omitempty" validate:"omitempty,uuid"`
	DeviceClass string  `json:"device_class,omitempty" validate:"omitempty,max=16"`
}

// TrackClickRequest records a contact button click
type TrackClickRequest struct {
	ContactType string `json:"contact_type" validate:"required,max=16"`
}

// TrackFavoriteRequest records a profile being favorited
type TrackFavoriteRequest struct {
	ViewerID *string `json:"viewer_id,omitempty" validate:"omitempty,uuid"`
}
