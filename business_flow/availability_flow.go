package businessflow

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vetrinahq/vetrina-backend/app/dto"
	"github.com/vetrinahq/vetrina-backend/models"
	"github.com/vetrinahq/vetrina-backend/repository"
	"github.com/vetrinahq/vetrina-backend/utils"
)

// AvailabilityFlow mutates and derives a profile's "online now" status.
// The stored pair (is_online, online_until) is only written by SetOnline and
// SetOffline; expiry is never written back, readers derive it from the clock.
// Writes surface failures to the caller: a toggle that silently no-ops would
// mislead the advertiser about their visibility.
type AvailabilityFlow interface {
	SetOnline(ctx context.Context, profileUUID uuid.UUID, durationMinutes *int, now time.Time) (*dto.AvailabilityStatusResponse, error)
	SetOffline(ctx context.Context, profileUUID uuid.UUID) (*dto.AvailabilityStatusResponse, error)
	GetStatus(ctx context.Context, profileUUID uuid.UUID, now time.Time) (*dto.AvailabilityStatusResponse, error)
}

type AvailabilityFlowImpl struct {
	profileRepo repository.ProfileRepository
}

func NewAvailabilityFlow(profileRepo repository.ProfileRepository) AvailabilityFlow {
	return &AvailabilityFlowImpl{profileRepo: profileRepo}
}

// SetOnline turns the profile online. A nil duration means online until
// manually turned off. Calling SetOnline again resets the window; the previous
// online_until is not extended, it is replaced.
func (f *AvailabilityFlowImpl) SetOnline(ctx context.Context, profileUUID uuid.UUID, durationMinutes *int, now time.Time) (*dto.AvailabilityStatusResponse, error) {
	profile, err := f.loadActiveProfile(ctx, profileUUID)
	if err != nil {
		return nil, err
	}

	var onlineUntil *time.Time
	if durationMinutes != nil {
		if *durationMinutes <= 0 {
			return nil, ErrInvalidDuration
		}
		until := now.Add(time.Duration(*durationMinutes) * time.Minute)
		onlineUntil = &until
	}

	if err := f.profileRepo.UpdateAvailability(ctx, profile.ID, true, onlineUntil); err != nil {
		return nil, NewBusinessError("AVAILABILITY_UPDATE_FAILED", "Failed to set profile online", err)
	}

	return &dto.AvailabilityStatusResponse{
		IsOnline:          true,
		OnlineUntil:       onlineUntil,
		EffectivelyOnline: true,
	}, nil
}

// SetOffline turns the profile offline and clears any pending window.
func (f *AvailabilityFlowImpl) SetOffline(ctx context.Context, profileUUID uuid.UUID) (*dto.AvailabilityStatusResponse, error) {
	profile, err := f.loadActiveProfile(ctx, profileUUID)
	if err != nil {
		return nil, err
	}

	if err := f.profileRepo.UpdateAvailability(ctx, profile.ID, false, nil); err != nil {
		return nil, NewBusinessError("AVAILABILITY_UPDATE_FAILED", "Failed to set profile offline", err)
	}

	return &dto.AvailabilityStatusResponse{
		IsOnline:          false,
		EffectivelyOnline: false,
	}, nil
}

// GetStatus reports the stored pair plus the derived status for the supplied
// clock. It never mutates storage, so a lapsed window keeps its stale
// is_online flag until the next explicit toggle.
func (f *AvailabilityFlowImpl) GetStatus(ctx context.Context, profileUUID uuid.UUID, now time.Time) (*dto.AvailabilityStatusResponse, error) {
	profile, err := f.profileRepo.ByUUID(ctx, profileUUID)
	if err != nil {
		return nil, NewBusinessError("PROFILE_LOOKUP_FAILED", "Failed to lookup profile", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return &dto.AvailabilityStatusResponse{
		IsOnline:          utils.IsTrue(profile.IsOnline),
		OnlineUntil:       profile.OnlineUntil,
		EffectivelyOnline: profile.IsEffectivelyOnline(now),
	}, nil
}

func (f *AvailabilityFlowImpl) loadActiveProfile(ctx context.Context, profileUUID uuid.UUID) (*models.Profile, error) {
	profile, err := f.profileRepo.ByUUID(ctx, profileUUID)
	if err != nil {
		return nil, NewBusinessError("PROFILE_LOOKUP_FAILED", "Failed to lookup profile", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	if !utils.IsTrue(profile.IsActive) {
		return nil, ErrProfileInactive
	}
	return profile, nil
}
