package businessflow

import (
	"context"

	"github.com/google/uuid"
	"github.com/vetrinahq/vetrina-backend/app/dto"
	"github.com/vetrinahq/vetrina-backend/models"
	"github.com/vetrinahq/vetrina-backend/repository"
)

// EngagementFlow ingests raw engagement events from public listing pages.
// No authentication required; unknown device classes and contact types are
// bucketed into their fallback categories at write time so aggregation never
// sees unexpected values.
type EngagementFlow interface {
	TrackView(ctx context.Context, profileUUID uuid.UUID, req *dto.TrackViewRequest, metadata *ClientMetadata) error
	TrackClick(ctx context.Context, profileUUID uuid.UUID, req *dto.TrackClickRequest, metadata *ClientMetadata) error
	TrackFavorite(ctx context.Context, profileUUID uuid.UUID, req *dto.TrackFavoriteRequest) error
}

type EngagementFlowImpl struct {
	profileRepo  repository.ProfileRepository
	viewRepo     repository.ViewEventRepository
	clickRepo    repository.ClickEventRepository
	favoriteRepo repository.FavoriteEventRepository
}

func NewEngagementFlow(
	profileRepo repository.ProfileRepository,
	viewRepo repository.ViewEventRepository,
	clickRepo repository.ClickEventRepository,
	favoriteRepo repository.FavoriteEventRepository,
) EngagementFlow {
	return &EngagementFlowImpl{
		profileRepo:  profileRepo,
		viewRepo:     viewRepo,
		clickRepo:    clickRepo,
		favoriteRepo: favoriteRepo,
	}
}

func (f *EngagementFlowImpl) TrackView(ctx context.Context, profileUUID uuid.UUID, req *dto.TrackViewRequest, metadata *ClientMetadata) error {
	profile, err := f.resolveProfile(ctx, profileUUID)
	if err != nil {
		return err
	}

	viewerID, err := parseViewerID(req.ViewerID)
	if err != nil {
		return err
	}

	event := &models.ViewEvent{
		ProfileID:   profile.ID,
		ViewerID:    viewerID,
		DeviceClass: models.NormalizeDeviceClass(req.DeviceClass),
	}
	if metadata != nil {
		if metadata.IPAddress != "" {
			event.IPAddress = &metadata.IPAddress
		}
		if metadata.UserAgent != "" {
			event.UserAgent = &metadata.UserAgent
		}
	}

	if err := f.viewRepo.Save(ctx, event); err != nil {
		return NewBusinessError("VIEW_TRACK_FAILED", "Failed to track profile view", err)
	}
	return nil
}

func (f *EngagementFlowImpl) TrackClick(ctx context.Context, profileUUID uuid.UUID, req *dto.TrackClickRequest, metadata *ClientMetadata) error {
	profile, err := f.resolveProfile(ctx, profileUUID)
	if err != nil {
		return err
	}

	event := &models.ClickEvent{
		ProfileID:   profile.ID,
		ContactType: models.NormalizeContactType(req.ContactType),
	}
	if metadata != nil {
		if metadata.IPAddress != "" {
			event.IPAddress = &metadata.IPAddress
		}
		if metadata.UserAgent != "" {
			event.UserAgent = &metadata.UserAgent
		}
	}

	if err := f.clickRepo.Save(ctx, event); err != nil {
		return NewBusinessError("CLICK_TRACK_FAILED", "Failed to track contact click", err)
	}
	return nil
}

func (f *EngagementFlowImpl) TrackFavorite(ctx context.Context, profileUUID uuid.UUID, req *dto.TrackFavoriteRequest) error {
	profile, err := f.resolveProfile(ctx, profileUUID)
	if err != nil {
		return err
	}

	viewerID, err := parseViewerID(req.ViewerID)
	if err != nil {
		return err
	}

	event := &models.FavoriteEvent{
		ProfileID: profile.ID,
		ViewerID:  viewerID,
	}
	if err := f.favoriteRepo.Save(ctx, event); err != nil {
		return NewBusinessError("FAVORITE_TRACK_FAILED", "Failed to track favorite", err)
	}
	return nil
}

func (f *EngagementFlowImpl) resolveProfile(ctx context.Context, profileUUID uuid.UUID) (*models.Profile, error) {
	profile, err := f.profileRepo.ByUUID(ctx, profileUUID)
	if err != nil {
		return nil, NewBusinessError("PROFILE_LOOKUP_FAILED", "Failed to lookup profile", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func parseViewerID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, ErrInvalidViewerID
	}
	return &id, nil
}
