package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalyticsRange(t *testing.T) {
	tests := []struct {
		raw      string
		expected AnalyticsRange
		ok       bool
	}{
		{"today", RangeToday, true},
		{"week", RangeWeek, true},
		{"month", RangeMonth, true},
		{"all", RangeAll, true},
		{"", RangeWeek, true},
		{"year", "", false},
		{"Week", "", false},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			r, ok := ParseAnalyticsRange(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, r)
		})
	}
}

func TestNewEmptyAnalyticsSummary(t *testing.T) {
	summary := NewEmptyAnalyticsSummary(RangeMonth)

	assert.Equal(t, RangeMonth, summary.Range)
	assert.NotNil(t, summary.Views.ByDevice)
	assert.NotNil(t, summary.Views.ByDate)
	assert.NotNil(t, summary.Clicks.ByType)

	// Empty breakdowns must serialize as {} and [], not null, so the
	// dashboard never branches on missing keys
	bs, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.Contains(t, string(bs), `"byDevice":{}`)
	assert.Contains(t, string(bs), `"byDate":[]`)
	assert.Contains(t, string(bs), `"byType":{}`)
	assert.Contains(t, string(bs), `"conversionRate":0`)
}
