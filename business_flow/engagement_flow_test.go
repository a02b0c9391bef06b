package businessflow

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrinahq/vetrina-backend/app/dto"
	"github.com/vetrinahq/vetrina-backend/models"
	"github.com/vetrinahq/vetrina-backend/utils"
)

func newEngagementFixture(profile *models.Profile) (*fakeViewEventRepo, *fakeClickEventRepo, *fakeFavoriteEventRepo, EngagementFlow) {
	viewRepo := &fakeViewEventRepo{}
	clickRepo := &fakeClickEventRepo{}
	favoriteRepo := &fakeFavoriteEventRepo{}
	flow := NewEngagementFlow(newFakeProfileRepo(profile), viewRepo, clickRepo, favoriteRepo)
	return viewRepo, clickRepo, favoriteRepo, flow
}

func TestTrackView(t *testing.T) {
	t.Run("AnonymousView", func(t *testing.T) {
		profile := testProfile(true)
		viewRepo, _, _, flow := newEngagementFixture(profile)

		err := flow.TrackView(context.Background(), profile.UUID, &dto.TrackViewRequest{}, nil)
		require.NoError(t, err)
		require.Len(t, viewRepo.events, 1)
		event := viewRepo.events[0]
		assert.Equal(t, profile.ID, event.ProfileID)
		assert.Nil(t, event.ViewerID)
		assert.Equal(t, models.DeviceUnknown, event.DeviceClass)
	})

	t.Run("AuthenticatedViewerWithMetadata", func(t *testing.T) {
		profile := testProfile(true)
		viewRepo, _, _, flow := newEngagementFixture(profile)
		viewer := uuid.New()

		metadata := NewClientMetadata("203.0.113.9", "Mozilla/5.0")
		req := &dto.TrackViewRequest{
			ViewerID:    utils.ToPtr(viewer.String()),
			DeviceClass: models.DeviceMobile,
		}
		require.NoError(t, flow.TrackView(context.Background(), profile.UUID, req, metadata))

		require.Len(t, viewRepo.events, 1)
		event := viewRepo.events[0]
		require.NotNil(t, event.ViewerID)
		assert.Equal(t, viewer, *event.ViewerID)
		assert.Equal(t, models.DeviceMobile, event.DeviceClass)
		require.NotNil(t, event.IPAddress)
		assert.Equal(t, "203.0.113.9", *event.IPAddress)
		require.NotNil(t, event.UserAgent)
		assert.Equal(t, "Mozilla/5.0", *event.UserAgent)
	})

	t.Run("UnrecognizedDeviceBucketsAsUnknown", func(t *testing.T) {
		profile := testProfile(true)
		viewRepo, _, _, flow := newEngagementFixture(profile)

		req := &dto.TrackViewRequest{DeviceClass: "VR headset"}
		require.NoError(t, flow.TrackView(context.Background(), profile.UUID, req, nil))
		assert.Equal(t, models.DeviceUnknown, viewRepo.events[0].DeviceClass)
	})

	t.Run("MalformedViewerID", func(t *testing.T) {
		profile := testProfile(true)
		viewRepo, _, _, flow := newEngagementFixture(profile)

		req := &dto.TrackViewRequest{ViewerID: utils.ToPtr("not-a-uuid")}
		err := flow.TrackView(context.Background(), profile.UUID, req, nil)
		assert.True(t, IsInvalidViewerID(err))
		assert.Empty(t, viewRepo.events)
	})

	t.Run("UnknownProfile", func(t *testing.T) {
		_, _, _, flow := newEngagementFixture(testProfile(true))

		err := flow.TrackView(context.Background(), uuid.New(), &dto.TrackViewRequest{}, nil)
		assert.True(t, IsProfileNotFound(err))
	})

	t.Run("SaveFailurePropagates", func(t *testing.T) {
		profile := testProfile(true)
		viewRepo, _, _, flow := newEngagementFixture(profile)
		viewRepo.saveErr = assert.AnError

		err := flow.TrackView(context.Background(), profile.UUID, &dto.TrackViewRequest{}, nil)
		assert.Error(t, err)
	})
}

func TestTrackClick(t *testing.T) {
	t.Run("KnownContactType", func(t *testing.T) {
		profile := testProfile(true)
		_, clickRepo, _, flow := newEngagementFixture(profile)

		req := &dto.TrackClickRequest{ContactType: models.ClickWhatsapp}
		require.NoError(t, flow.TrackClick(context.Background(), profile.UUID, req, nil))
		require.Len(t, clickRepo.events, 1)
		assert.Equal(t, models.ClickWhatsapp, clickRepo.events[0].ContactType)
	})

	t.Run("UnrecognizedTypeBucketsAsOther", func(t *testing.T) {
		profile := testProfile(true)
		_, clickRepo, _, flow := newEngagementFixture(profile)

		req := &dto.TrackClickRequest{ContactType: "fax"}
		require.NoError(t, flow.TrackClick(context.Background(), profile.UUID, req, nil))
		assert.Equal(t, models.ClickOther, clickRepo.events[0].ContactType)
	})

	t.Run("UnknownProfile", func(t *testing.T) {
		_, _, _, flow := newEngagementFixture(testProfile(true))

		err := flow.TrackClick(context.Background(), uuid.New(), &dto.TrackClickRequest{ContactType: models.ClickPhone}, nil)
		assert.True(t, IsProfileNotFound(err))
	})
}

func TestTrackFavorite(t *testing.T) {
	t.Run("WithViewer", func(t *testing.T) {
		profile := testProfile(true)
		_, _, favoriteRepo, flow := newEngagementFixture(profile)
		viewer := uuid.New()

		req := &dto.TrackFavoriteRequest{ViewerID: utils.ToPtr(viewer.String())}
		require.NoError(t, flow.TrackFavorite(context.Background(), profile.UUID, req))
		require.Len(t, favoriteRepo.events, 1)
		require.NotNil(t, favoriteRepo.events[0].ViewerID)
		assert.Equal(t, viewer, *favoriteRepo.events[0].ViewerID)
	})

	t.Run("Anonymous", func(t *testing.T) {
		profile := testProfile(true)
		_, _, favoriteRepo, flow := newEngagementFixture(profile)

		require.NoError(t, flow.TrackFavorite(context.Background(), profile.UUID, &dto.TrackFavoriteRequest{}))
		require.Len(t, favoriteRepo.events, 1)
		assert.Nil(t, favoriteRepo.events[0].ViewerID)
	})

	t.Run("MalformedViewerID", func(t *testing.T) {
		profile := testProfile(true)
		_, _, favoriteRepo, flow := newEngagementFixture(profile)

		req := &dto.TrackFavoriteRequest{ViewerID: utils.ToPtr("garbage")}
		err := flow.TrackFavorite(context.Background(), profile.UUID, req)
		assert.True(t, IsInvalidViewerID(err))
		assert.Empty(t, favoriteRepo.events)
	})
}
