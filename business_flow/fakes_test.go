package businessflow

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vetrinahq/vetrina-backend/models"
)

// In-memory repository fakes. They implement just enough of the repository
// contracts for flow tests: filters cover profile id and the half-open
// [CreatedAfter, CreatedBefore) window, which is all the flows use.

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*models.Profile

	lookupErr error
	updateErr error

	lastIsOnline    *bool
	lastOnlineUntil *time.Time
}

func newFakeProfileRepo(profiles ...*models.Profile) *fakeProfileRepo {
	repo := &fakeProfileRepo{profiles: make(map[uuid.UUID]*models.Profile)}
	for _, p := range profiles {
		repo.profiles[p.UUID] = p
	}
	return repo
}

func (r *fakeProfileRepo) ByID(ctx context.Context, id uint) (*models.Profile, error) {
	for _, p := range r.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) ByUUID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	return r.profiles[id], nil
}

func (r *fakeProfileRepo) ByFilter(ctx context.Context, filter models.ProfileFilter, orderBy string, limit, offset int) ([]*models.Profile, error) {
	out := make([]*models.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProfileRepo) Save(ctx context.Context, entity *models.Profile) error {
	r.profiles[entity.UUID] = entity
	return nil
}

func (r *fakeProfileRepo) SaveBatch(ctx context.Context, entities []*models.Profile) error {
	for _, e := range entities {
		r.profiles[e.UUID] = e
	}
	return nil
}

func (r *fakeProfileRepo) Count(ctx context.Context, filter models.ProfileFilter) (int64, error) {
	return int64(len(r.profiles)), nil
}

func (r *fakeProfileRepo) Exists(ctx context.Context, filter models.ProfileFilter) (bool, error) {
	return len(r.profiles) > 0, nil
}

func (r *fakeProfileRepo) UpdateAvailability(ctx context.Context, profileID uint, isOnline bool, onlineUntil *time.Time) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	for _, p := range r.profiles {
		if p.ID == profileID {
			p.IsOnline = &isOnline
			p.OnlineUntil = onlineUntil
			r.lastIsOnline = &isOnline
			r.lastOnlineUntil = onlineUntil
			return nil
		}
	}
	return nil
}

func inWindow(createdAt time.Time, after, before *time.Time) bool {
	if after != nil && createdAt.Before(*after) {
		return false
	}
	if before != nil && !createdAt.Before(*before) {
		return false
	}
	return true
}

type fakeViewEventRepo struct {
	events  []*models.ViewEvent
	listErr error
	saveErr error
}

func (r *fakeViewEventRepo) ByID(ctx context.Context, id uint) (*models.ViewEvent, error) {
	return nil, nil
}

func (r *fakeViewEventRepo) ByFilter(ctx context.Context, filter models.ViewEventFilter, orderBy string, limit, offset int) ([]*models.ViewEvent, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*models.ViewEvent, 0, len(r.events))
	for _, e := range r.events {
		if filter.ProfileID != nil && e.ProfileID != *filter.ProfileID {
			continue
		}
		if !inWindow(e.CreatedAt, filter.CreatedAfter, filter.CreatedBefore) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeViewEventRepo) Save(ctx context.Context, entity *models.ViewEvent) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	entity.ID = uint(len(r.events) + 1)
	r.events = append(r.events, entity)
	return nil
}

func (r *fakeViewEventRepo) SaveBatch(ctx context.Context, entities []*models.ViewEvent) error {
	for _, e := range entities {
		if err := r.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeViewEventRepo) Count(ctx context.Context, filter models.ViewEventFilter) (int64, error) {
	rows, err := r.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}

func (r *fakeViewEventRepo) Exists(ctx context.Context, filter models.ViewEventFilter) (bool, error) {
	n, err := r.Count(ctx, filter)
	return n > 0, err
}

func (r *fakeViewEventRepo) CountUniqueViewers(ctx context.Context, profileID uint, after, before *time.Time) (int64, error) {
	if r.listErr != nil {
		return 0, r.listErr
	}
	seen := make(map[uuid.UUID]struct{})
	for _, e := range r.events {
		if e.ProfileID != profileID || e.ViewerID == nil {
			continue
		}
		if !inWindow(e.CreatedAt, after, before) {
			continue
		}
		seen[*e.ViewerID] = struct{}{}
	}
	return int64(len(seen)), nil
}

type fakeClickEventRepo struct {
	events  []*models.ClickEvent
	listErr error
	saveErr error
}

func (r *fakeClickEventRepo) ByID(ctx context.Context, id uint) (*models.ClickEvent, error) {
	return nil, nil
}

func (r *fakeClickEventRepo) ByFilter(ctx context.Context, filter models.ClickEventFilter, orderBy string, limit, offset int) ([]*models.ClickEvent, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*models.ClickEvent, 0, len(r.events))
	for _, e := range r.events {
		if filter.ProfileID != nil && e.ProfileID != *filter.ProfileID {
			continue
		}
		if !inWindow(e.CreatedAt, filter.CreatedAfter, filter.CreatedBefore) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeClickEventRepo) Save(ctx context.Context, entity *models.ClickEvent) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	entity.ID = uint(len(r.events) + 1)
	r.events = append(r.events, entity)
	return nil
}

func (r *fakeClickEventRepo) SaveBatch(ctx context.Context, entities []*models.ClickEvent) error {
	for _, e := range entities {
		if err := r.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeClickEventRepo) Count(ctx context.Context, filter models.ClickEventFilter) (int64, error) {
	rows, err := r.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}

func (r *fakeClickEventRepo) Exists(ctx context.Context, filter models.ClickEventFilter) (bool, error) {
	n, err := r.Count(ctx, filter)
	return n > 0, err
}

type fakeFavoriteEventRepo struct {
	events   []*models.FavoriteEvent
	countErr error
	saveErr  error
}

func (r *fakeFavoriteEventRepo) ByID(ctx context.Context, id uint) (*models.FavoriteEvent, error) {
	return nil, nil
}

func (r *fakeFavoriteEventRepo) ByFilter(ctx context.Context, filter models.FavoriteEventFilter, orderBy string, limit, offset int) ([]*models.FavoriteEvent, error) {
	out := make([]*models.FavoriteEvent, 0, len(r.events))
	for _, e := range r.events {
		if filter.ProfileID != nil && e.ProfileID != *filter.ProfileID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeFavoriteEventRepo) Save(ctx context.Context, entity *models.FavoriteEvent) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	entity.ID = uint(len(r.events) + 1)
	r.events = append(r.events, entity)
	return nil
}

func (r *fakeFavoriteEventRepo) SaveBatch(ctx context.Context, entities []*models.FavoriteEvent) error {
	for _, e := range entities {
		if err := r.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeFavoriteEventRepo) Count(ctx context.Context, filter models.FavoriteEventFilter) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	rows, _ := r.ByFilter(ctx, filter, "", 0, 0)
	return int64(len(rows)), nil
}

func (r *fakeFavoriteEventRepo) Exists(ctx context.Context, filter models.FavoriteEventFilter) (bool, error) {
	n, err := r.Count(ctx, filter)
	return n > 0, err
}
