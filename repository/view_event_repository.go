package repository

import (
	"context"
	"time"

	"github.com/vetrinahq/vetrina-backend/models"
	"gorm.io/gorm"
)

// ViewEventRepositoryImpl implements ViewEventRepository
type ViewEventRepositoryImpl struct {
	*BaseRepository[models.ViewEvent, models.ViewEventFilter]
}

func NewViewEventRepository(db *gorm.DB) ViewEventRepository {
	return &ViewEventRepositoryImpl{BaseRepository: NewBaseRepository[models.ViewEvent, models.ViewEventFilter](db)}
}

func (r *ViewEventRepositoryImpl) applyFilter(db *gorm.DB, f models.ViewEventFilter) *gorm.DB {
	if f.ID != nil {
		db = db.Where("id = ?", *f.ID)
	}
	if f.ProfileID != nil {
		db = db.Where("profile_id = ?", *f.ProfileID)
	}
	if f.ViewerID != nil {
		db = db.Where("viewer_id = ?", *f.ViewerID)
	}
	if f.HasViewerID != nil {
		if *f.HasViewerID {
			db = db.Where("viewer_id IS NOT NULL")
		} else {
			db = db.Where("viewer_id IS NULL")
		}
	}
	if f.DeviceClass != nil {
		db = db.Where("device_class = ?", *f.DeviceClass)
	}
	if f.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		db = db.Where("created_at < ?", *f.CreatedBefore)
	}
	return db
}

func (r *ViewEventRepositoryImpl) ByFilter(ctx context.Context, filter models.ViewEventFilter, orderBy string, limit, offset int) ([]*models.ViewEvent, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.ViewEvent{}), filter)
	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	var rows []*models.ViewEvent
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ViewEventRepositoryImpl) Count(ctx context.Context, filter models.ViewEventFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.ViewEvent{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ViewEventRepositoryImpl) Exists(ctx context.Context, filter models.ViewEventFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// CountUniqueViewers counts distinct non-null viewer ids for a profile within
// the optional [after, before) window.
func (r *ViewEventRepositoryImpl) CountUniqueViewers(ctx context.Context, profileID uint, after, before *time.Time) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.ViewEvent{}).
		Where("profile_id = ?", profileID).
		Where("viewer_id IS NOT NULL")
	if after != nil {
		query = query.Where("created_at >= ?", *after)
	}
	if before != nil {
		query = query.Where("created_at < ?", *before)
	}
	var count int64
	if err := query.Distinct("viewer_id").Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
