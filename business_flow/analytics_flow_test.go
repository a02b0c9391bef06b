package businessflow

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrinahq/vetrina-backend/app/dto"
	"github.com/vetrinahq/vetrina-backend/models"
	"github.com/vetrinahq/vetrina-backend/utils"
)

func newAnalyticsFixture(profile *models.Profile) (*fakeProfileRepo, *fakeViewEventRepo, *fakeClickEventRepo, *fakeFavoriteEventRepo, AnalyticsFlow) {
	profileRepo := newFakeProfileRepo(profile)
	viewRepo := &fakeViewEventRepo{}
	clickRepo := &fakeClickEventRepo{}
	favoriteRepo := &fakeFavoriteEventRepo{}
	flow := NewAnalyticsFlow(profileRepo, viewRepo, clickRepo, favoriteRepo, nil, nil, nil)
	return profileRepo, viewRepo, clickRepo, favoriteRepo, flow
}

func viewAt(profileID uint, at time.Time, device string, viewer *uuid.UUID) *models.ViewEvent {
	return &models.ViewEvent{
		ProfileID:   profileID,
		ViewerID:    viewer,
		DeviceClass: device,
		CreatedAt:   at,
	}
}

func TestSummarizeEmptyProfile(t *testing.T) {
	profile := testProfile(true)
	_, _, _, _, flow := newAnalyticsFixture(profile)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	summary, err := flow.Summarize(context.Background(), profile.UUID, dto.RangeWeek, now)
	require.NoError(t, err)
	assert.Equal(t, dto.RangeWeek, summary.Range)
	assert.Zero(t, summary.Views.Total)
	assert.Zero(t, summary.Clicks.Total)
	assert.Zero(t, summary.Favorites)
	assert.Zero(t, summary.ConversionRate)
	// Breakdowns serialize as {} and [], never null
	assert.NotNil(t, summary.Views.ByDevice)
	assert.NotNil(t, summary.Views.ByDate)
	assert.NotNil(t, summary.Clicks.ByType)
	assert.Empty(t, summary.Views.ByDate)
}

func TestSummarizeUnknownProfile(t *testing.T) {
	_, _, _, _, flow := newAnalyticsFixture(testProfile(true))

	_, err := flow.Summarize(context.Background(), uuid.New(), dto.RangeWeek, utils.UTCNow())
	assert.True(t, IsProfileNotFound(err))
}

func TestSummarizeAggregation(t *testing.T) {
	profile := testProfile(true)
	_, viewRepo, clickRepo, favoriteRepo, flow := newAnalyticsFixture(profile)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	viewerA := uuid.New()
	viewerB := uuid.New()

	// Ten views inside the week window: two dated days, one repeat viewer,
	// one unrecognized device
	day1 := now.AddDate(0, 0, -2)
	day2 := now.AddDate(0, 0, -1)
	viewRepo.events = []*models.ViewEvent{
		viewAt(profile.ID, day1, models.DeviceMobile, &viewerA),
		viewAt(profile.ID, day1, models.DeviceMobile, &viewerA),
		viewAt(profile.ID, day1, models.DeviceDesktop, &viewerB),
		viewAt(profile.ID, day1, "smart-fridge", nil),
		viewAt(profile.ID, day2, models.DeviceMobile, nil),
		viewAt(profile.ID, day2, models.DeviceTablet, nil),
		viewAt(profile.ID, day2, models.DeviceMobile, nil),
		viewAt(profile.ID, day2, models.DeviceMobile, nil),
		viewAt(profile.ID, day2, models.DeviceDesktop, nil),
		viewAt(profile.ID, day2, models.DeviceDesktop, nil),
		// Outside the week window, must not count toward totals
		viewAt(profile.ID, now.AddDate(0, 0, -10), models.DeviceMobile, &viewerA),
	}

	clickRepo.events = []*models.ClickEvent{
		{ProfileID: profile.ID, ContactType: models.ClickWhatsapp, CreatedAt: day2},
		{ProfileID: profile.ID, ContactType: "carrier-pigeon", CreatedAt: day2},
	}

	// Favorites count all-time, including ones older than the range
	favoriteRepo.events = []*models.FavoriteEvent{
		{ProfileID: profile.ID, CreatedAt: now.AddDate(0, 0, -60)},
		{ProfileID: profile.ID, CreatedAt: day1},
	}

	summary, err := flow.Summarize(context.Background(), profile.UUID, dto.RangeWeek, now)
	require.NoError(t, err)

	assert.Equal(t, int64(10), summary.Views.Total)
	assert.Equal(t, int64(2), summary.Views.Unique)
	assert.Equal(t, int64(5), summary.Views.ByDevice[models.DeviceMobile])
	assert.Equal(t, int64(3), summary.Views.ByDevice[models.DeviceDesktop])
	assert.Equal(t, int64(1), summary.Views.ByDevice[models.DeviceTablet])
	assert.Equal(t, int64(1), summary.Views.ByDevice[models.DeviceUnknown])

	require.Len(t, summary.Views.ByDate, 2)
	assert.Equal(t, day1.Format("2006-01-02"), summary.Views.ByDate[0].Date)
	assert.Equal(t, int64(4), summary.Views.ByDate[0].Count)
	assert.Equal(t, day2.Format("2006-01-02"), summary.Views.ByDate[1].Date)
	assert.Equal(t, int64(6), summary.Views.ByDate[1].Count)

	assert.Equal(t, int64(2), summary.Clicks.Total)
	assert.Equal(t, int64(1), summary.Clicks.ByType[models.ClickWhatsapp])
	assert.Equal(t, int64(1), summary.Clicks.ByType[models.ClickOther])
	assert.Zero(t, summary.Clicks.Today)
	assert.Equal(t, int64(2), summary.Clicks.ThisWeek)
	assert.Equal(t, int64(2), summary.Clicks.ThisMonth)

	assert.Equal(t, int64(2), summary.Favorites)
	assert.InDelta(t, 20.0, summary.ConversionRate, 0.0001)
}

func TestSummarizeRollingSubCounts(t *testing.T) {
	profile := testProfile(true)
	_, viewRepo, _, _, flow := newAnalyticsFixture(profile)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	viewRepo.events = []*models.ViewEvent{
		viewAt(profile.ID, now.Add(-time.Hour), models.DeviceMobile, nil),       // today
		viewAt(profile.ID, now.AddDate(0, 0, -3), models.DeviceMobile, nil),     // this week
		viewAt(profile.ID, now.AddDate(0, 0, -20), models.DeviceMobile, nil),    // this month
		viewAt(profile.ID, now.AddDate(0, 0, -90), models.DeviceMobile, nil),    // older
	}

	// The rolling sub-counts stay the same no matter which range is selected
	for _, r := range []dto.AnalyticsRange{dto.RangeToday, dto.RangeWeek, dto.RangeMonth, dto.RangeAll} {
		summary, err := flow.Summarize(context.Background(), profile.UUID, r, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), summary.Views.Today, "range %s", r)
		assert.Equal(t, int64(2), summary.Views.ThisWeek, "range %s", r)
		assert.Equal(t, int64(3), summary.Views.ThisMonth, "range %s", r)
	}

	// Total tracks the selected range
	summary, err := flow.Summarize(context.Background(), profile.UUID, dto.RangeAll, now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), summary.Views.Total)
}

func TestSummarizeConversionRateUnclamped(t *testing.T) {
	profile := testProfile(true)
	_, viewRepo, clickRepo, _, flow := newAnalyticsFixture(profile)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	day := now.Add(-time.Hour)

	viewRepo.events = []*models.ViewEvent{viewAt(profile.ID, day, models.DeviceMobile, nil)}
	clickRepo.events = []*models.ClickEvent{
		{ProfileID: profile.ID, ContactType: models.ClickPhone, CreatedAt: day},
		{ProfileID: profile.ID, ContactType: models.ClickPhone, CreatedAt: day},
		{ProfileID: profile.ID, ContactType: models.ClickTelegram, CreatedAt: day},
	}

	summary, err := flow.Summarize(context.Background(), profile.UUID, dto.RangeWeek, now)
	require.NoError(t, err)
	assert.InDelta(t, 300.0, summary.ConversionRate, 0.0001)
}

func TestSummarizeFailSoft(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("ViewReadFailureDegradesToZeros", func(t *testing.T) {
		profile := testProfile(true)
		_, viewRepo, _, _, flow := newAnalyticsFixture(profile)
		viewRepo.listErr = assert.AnError

		summary, err := flow.Summarize(context.Background(), profile.UUID, dto.RangeWeek, now)
		require.NoError(t, err)
		assert.Zero(t, summary.Views.Total)
		assert.Zero(t, summary.Clicks.Total)
		assert.NotNil(t, summary.Views.ByDevice)
		assert.NotNil(t, summary.Views.ByDate)
		assert.NotNil(t, summary.Clicks.ByType)
	})

	t.Run("FavoriteCountFailureDegradesToZeros", func(t *testing.T) {
		profile := testProfile(true)
		_, viewRepo, _, favoriteRepo, flow := newAnalyticsFixture(profile)
		viewRepo.events = []*models.ViewEvent{viewAt(profile.ID, now.Add(-time.Hour), models.DeviceMobile, nil)}
		favoriteRepo.countErr = assert.AnError

		summary, err := flow.Summarize(context.Background(), profile.UUID, dto.RangeWeek, now)
		require.NoError(t, err)
		// Partial aggregation is discarded, not served
		assert.Zero(t, summary.Views.Total)
	})

	t.Run("ProfileLookupFailureIsHard", func(t *testing.T) {
		profile := testProfile(true)
		profileRepo, viewRepo, clickRepo, favoriteRepo, _ := newAnalyticsFixture(profile)
		profileRepo.lookupErr = assert.AnError
		flow := NewAnalyticsFlow(profileRepo, viewRepo, clickRepo, favoriteRepo, nil, nil, nil)

		_, err := flow.Summarize(context.Background(), profile.UUID, dto.RangeWeek, now)
		assert.Error(t, err)
	})
}

func TestRangeStart(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 45, 30, 0, time.UTC)

	t.Run("Today", func(t *testing.T) {
		start := rangeStart(dto.RangeToday, now)
		require.NotNil(t, start)
		assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), *start)
	})

	t.Run("Week", func(t *testing.T) {
		start := rangeStart(dto.RangeWeek, now)
		require.NotNil(t, start)
		assert.Equal(t, now.AddDate(0, 0, -7), *start)
	})

	t.Run("Month", func(t *testing.T) {
		start := rangeStart(dto.RangeMonth, now)
		require.NotNil(t, start)
		assert.Equal(t, now.AddDate(0, 0, -30), *start)
	})

	t.Run("AllIsUnbounded", func(t *testing.T) {
		assert.Nil(t, rangeStart(dto.RangeAll, now))
	})
}
