package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDeviceClass(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"mobile", DeviceMobile},
		{"desktop", DeviceDesktop},
		{"tablet", DeviceTablet},
		{"", DeviceUnknown},
		{"Mobile", DeviceUnknown},
		{"smartwatch", DeviceUnknown},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDeviceClass(tt.raw))
		})
	}
}

func TestNormalizeContactType(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"whatsapp", ClickWhatsapp},
		{"telegram", ClickTelegram},
		{"instagram", ClickInstagram},
		{"twitter", ClickTwitter},
		{"phone", ClickPhone},
		{"message", ClickMessage},
		{"", ClickOther},
		{"WhatsApp", ClickOther},
		{"fax", ClickOther},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeContactType(tt.raw))
		})
	}
}

func TestEventTableNames(t *testing.T) {
	assert.Equal(t, "view_events", ViewEvent{}.TableName())
	assert.Equal(t, "click_events", ClickEvent{}.TableName())
	assert.Equal(t, "favorite_events", FavoriteEvent{}.TableName())
}
