package repository

import (
	"context"

	"github.com/vetrinahq/vetrina-backend/models"
	"gorm.io/gorm"
)

// FavoriteEventRepositoryImpl implements FavoriteEventRepository
type FavoriteEventRepositoryImpl struct {
	*BaseRepository[models.FavoriteEvent, models.FavoriteEventFilter]
}

func NewFavoriteEventRepository(db *gorm.DB) FavoriteEventRepository {
	return &FavoriteEventRepositoryImpl{BaseRepository: NewBaseRepository[models.FavoriteEvent, models.FavoriteEventFilter](db)}
}

func (r *FavoriteEventRepositoryImpl) applyFilter(db *gorm.DB, f models.FavoriteEventFilter) *gorm.DB {
	if f.ID != nil {
		db = db.Where("id = ?", *f.ID)
	}
	if f.ProfileID != nil {
		db = db.Where("profile_id = ?", *f.ProfileID)
	}
	if f.ViewerID != nil {
		db = db.Where("viewer_id = ?", *f.ViewerID)
	}
	if f.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		db = db.Where("created_at < ?", *f.CreatedBefore)
	}
	return db
}

func (r *FavoriteEventRepositoryImpl) ByFilter(ctx context.Context, filter models.FavoriteEventFilter, orderBy string, limit, offset int) ([]*models.FavoriteEvent, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.FavoriteEvent{}), filter)
	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	var rows []*models.FavoriteEvent
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *FavoriteEventRepositoryImpl) Count(ctx context.Context, filter models.FavoriteEventFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.FavoriteEvent{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *FavoriteEventRepositoryImpl) Exists(ctx context.Context, filter models.FavoriteEventFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}
