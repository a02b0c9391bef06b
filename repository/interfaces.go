// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vetrinahq/vetrina-backend/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// ProfileRepository defines operations for advertiser profiles
type ProfileRepository interface {
	Repository[models.Profile, models.ProfileFilter]
	ByUUID(ctx context.Context, uuid uuid.UUID) (*models.Profile, error)
	UpdateAvailability(ctx context.Context, profileID uint, isOnline bool, onlineUntil *time.Time) error
}

// ViewEventRepository defines operations for listing page views
type ViewEventRepository interface {
	Repository[models.ViewEvent, models.ViewEventFilter]
	CountUniqueViewers(ctx context.Context, profileID uint, after, before *time.Time) (int64, error)
}

// ClickEventRepository defines operations for contact button clicks
type ClickEventRepository interface {
	Repository[models.ClickEvent, models.ClickEventFilter]
}

// FavoriteEventRepository defines operations for favorite events
type FavoriteEventRepository interface {
	Repository[models.FavoriteEvent, models.FavoriteEventFilter]
}
