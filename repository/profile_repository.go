package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vetrinahq/vetrina-backend/models"
	"github.com/vetrinahq/vetrina-backend/utils"
	"gorm.io/gorm"
)

// ProfileRepositoryImpl implements ProfileRepository
type ProfileRepositoryImpl struct {
	*BaseRepository[models.Profile, models.ProfileFilter]
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{BaseRepository: NewBaseRepository[models.Profile, models.ProfileFilter](db)}
}

func (r *ProfileRepositoryImpl) ByUUID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	db := r.getDB(ctx)
	var row models.Profile
	if err := db.Where("uuid = ?", id).Last(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// UpdateAvailability writes the availability pair atomically. Both columns
// change in the same statement so a reader never observes a half-applied
// toggle.
func (r *ProfileRepositoryImpl) UpdateAvailability(ctx context.Context, profileID uint, isOnline bool, onlineUntil *time.Time) error {
	db := r.getDB(ctx)
	result := db.Model(&models.Profile{}).
		Where("id = ?", profileID).
		Updates(map[string]any{
			"is_online":    isOnline,
			"online_until": onlineUntil,
			"updated_at":   utils.UTCNow(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update availability for profile %d: %w", profileID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) applyFilter(db *gorm.DB, f models.ProfileFilter) *gorm.DB {
	if f.ID != nil {
		db = db.Where("id = ?", *f.ID)
	}
	if f.UUID != nil {
		db = db.Where("uuid = ?", *f.UUID)
	}
	if f.City != nil {
		db = db.Where("city = ?", *f.City)
	}
	if f.IsOnline != nil {
		db = db.Where("is_online = ?", *f.IsOnline)
	}
	if f.IsActive != nil {
		db = db.Where("is_active = ?", *f.IsActive)
	}
	if f.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		db = db.Where("created_at < ?", *f.CreatedBefore)
	}
	return db
}

func (r *ProfileRepositoryImpl) ByFilter(ctx context.Context, filter models.ProfileFilter, orderBy string, limit, offset int) ([]*models.Profile, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Profile{}), filter)
	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	var rows []*models.Profile
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ProfileRepositoryImpl) Count(ctx context.Context, filter models.ProfileFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Profile{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProfileRepositoryImpl) Exists(ctx context.Context, filter models.ProfileFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}
