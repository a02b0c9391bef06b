package businessflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/vetrinahq/vetrina-backend/app/dto"
	"github.com/vetrinahq/vetrina-backend/config"
	"github.com/vetrinahq/vetrina-backend/models"
	"github.com/vetrinahq/vetrina-backend/repository"
	"github.com/vetrinahq/vetrina-backend/utils"
)

// AnalyticsFlow produces the dashboard summary for one profile and one
// reporting range. Aggregation is a derived view computed per request; event
// rows are never mutated.
//
// Failure contract: an unknown profile is a hard error, but once the profile
// resolves, any read failure from the event tables degrades to an all-zero
// summary instead of propagating. The dashboard stays up at the cost of
// silently showing zeros; callers that need the distinction must watch the
// logs.
type AnalyticsFlow interface {
	Summarize(ctx context.Context, profileUUID uuid.UUID, r dto.AnalyticsRange, now time.Time) (*dto.AnalyticsSummary, error)
}

type AnalyticsFlowImpl struct {
	profileRepo  repository.ProfileRepository
	viewRepo     repository.ViewEventRepository
	clickRepo    repository.ClickEventRepository
	favoriteRepo repository.FavoriteEventRepository
	rc           *redis.Client
	cacheConfig  *config.CacheConfig
	analyticsCfg *config.AnalyticsConfig
}

func NewAnalyticsFlow(
	profileRepo repository.ProfileRepository,
	viewRepo repository.ViewEventRepository,
	clickRepo repository.ClickEventRepository,
	favoriteRepo repository.FavoriteEventRepository,
	rc *redis.Client,
	cacheConfig *config.CacheConfig,
	analyticsCfg *config.AnalyticsConfig,
) AnalyticsFlow {
	return &AnalyticsFlowImpl{
		profileRepo:  profileRepo,
		viewRepo:     viewRepo,
		clickRepo:    clickRepo,
		favoriteRepo: favoriteRepo,
		rc:           rc,
		cacheConfig:  cacheConfig,
		analyticsCfg: analyticsCfg,
	}
}

// rangeStart returns the inclusive lower bound of the reporting window, nil
// for the all-time range. The window is half-open: [start, now).
func rangeStart(r dto.AnalyticsRange, now time.Time) *time.Time {
	switch r {
	case dto.RangeToday:
		start := utils.StartOfDay(now)
		return &start
	case dto.RangeWeek:
		start := now.AddDate(0, 0, -7)
		return &start
	case dto.RangeMonth:
		start := now.AddDate(0, 0, -30)
		return &start
	default:
		return nil
	}
}

func (f *AnalyticsFlowImpl) Summarize(ctx context.Context, profileUUID uuid.UUID, r dto.AnalyticsRange, now time.Time) (*dto.AnalyticsSummary, error) {
	profile, err := f.profileRepo.ByUUID(ctx, profileUUID)
	if err != nil {
		return nil, NewBusinessError("PROFILE_LOOKUP_FAILED", "Failed to lookup profile", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if cached := f.cachedSummary(ctx, profileUUID, r); cached != nil {
		return cached, nil
	}

	summary, err := f.aggregate(ctx, profile.ID, r, now)
	if err != nil {
		log.Printf("analytics aggregation failed for profile %s range %s: %v", profileUUID, r, err)
		return dto.NewEmptyAnalyticsSummary(r), nil
	}

	f.storeSummary(ctx, profileUUID, r, summary)
	return summary, nil
}

func (f *AnalyticsFlowImpl) aggregate(ctx context.Context, profileID uint, r dto.AnalyticsRange, now time.Time) (*dto.AnalyticsSummary, error) {
	summary := dto.NewEmptyAnalyticsSummary(r)
	start := rangeStart(r, now)

	views, err := f.viewRepo.ByFilter(ctx, models.ViewEventFilter{
		ProfileID:     &profileID,
		CreatedAfter:  start,
		CreatedBefore: &now,
	}, "created_at ASC", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("view events: %w", err)
	}

	summary.Views.Total = int64(len(views))
	byDate := make(map[string]int64)
	for _, v := range views {
		device := models.NormalizeDeviceClass(v.DeviceClass)
		summary.Views.ByDevice[device]++
		day := v.CreatedAt.In(now.Location()).Format("2006-01-02")
		byDate[day]++
	}
	summary.Views.ByDate = sortedDateCounts(byDate)

	unique, err := f.viewRepo.CountUniqueViewers(ctx, profileID, start, &now)
	if err != nil {
		return nil, fmt.Errorf("unique viewers: %w", err)
	}
	summary.Views.Unique = unique

	// The rolling sub-counts are range-independent; the dashboard shows them
	// next to whichever range is selected.
	dayStart := utils.StartOfDay(now)
	weekStart := now.AddDate(0, 0, -7)
	monthStart := now.AddDate(0, 0, -30)
	if summary.Views.Today, err = f.countViews(ctx, profileID, dayStart, now); err != nil {
		return nil, fmt.Errorf("today views: %w", err)
	}
	if summary.Views.ThisWeek, err = f.countViews(ctx, profileID, weekStart, now); err != nil {
		return nil, fmt.Errorf("week views: %w", err)
	}
	if summary.Views.ThisMonth, err = f.countViews(ctx, profileID, monthStart, now); err != nil {
		return nil, fmt.Errorf("month views: %w", err)
	}

	clicks, err := f.clickRepo.ByFilter(ctx, models.ClickEventFilter{
		ProfileID:     &profileID,
		CreatedAfter:  start,
		CreatedBefore: &now,
	}, "created_at ASC", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("click events: %w", err)
	}
	summary.Clicks.Total = int64(len(clicks))
	for _, c := range clicks {
		summary.Clicks.ByType[models.NormalizeContactType(c.ContactType)]++
	}
	if summary.Clicks.Today, err = f.countClicks(ctx, profileID, dayStart, now); err != nil {
		return nil, fmt.Errorf("today clicks: %w", err)
	}
	if summary.Clicks.ThisWeek, err = f.countClicks(ctx, profileID, weekStart, now); err != nil {
		return nil, fmt.Errorf("week clicks: %w", err)
	}
	if summary.Clicks.ThisMonth, err = f.countClicks(ctx, profileID, monthStart, now); err != nil {
		return nil, fmt.Errorf("month clicks: %w", err)
	}

	// Favorites are an all-time count regardless of range
	favorites, err := f.favoriteRepo.Count(ctx, models.FavoriteEventFilter{ProfileID: &profileID})
	if err != nil {
		return nil, fmt.Errorf("favorite events: %w", err)
	}
	summary.Favorites = favorites

	// Not clamped: a rate above 100 is preserved so counting-methodology
	// skew stays visible instead of being silently capped.
	if summary.Views.Total > 0 {
		summary.ConversionRate = float64(summary.Clicks.Total) / float64(summary.Views.Total) * 100
	}

	return summary, nil
}

func (f *AnalyticsFlowImpl) countViews(ctx context.Context, profileID uint, after, before time.Time) (int64, error) {
	return f.viewRepo.Count(ctx, models.ViewEventFilter{
		ProfileID:     &profileID,
		CreatedAfter:  &after,
		CreatedBefore: &before,
	})
}

func (f *AnalyticsFlowImpl) countClicks(ctx context.Context, profileID uint, after, before time.Time) (int64, error) {
	return f.clickRepo.Count(ctx, models.ClickEventFilter{
		ProfileID:     &profileID,
		CreatedAfter:  &after,
		CreatedBefore: &before,
	})
}

func sortedDateCounts(byDate map[string]int64) []dto.DateCount {
	days := make([]string, 0, len(byDate))
	for day := range byDate {
		days = append(days, day)
	}
	sort.Strings(days)
	out := make([]dto.DateCount, 0, len(days))
	for _, day := range days {
		out = append(out, dto.DateCount{Date: day, Count: byDate[day]})
	}
	return out
}

func (f *AnalyticsFlowImpl) summaryCacheKey(profileUUID uuid.UUID, r dto.AnalyticsRange) string {
	return redisKey(*f.cacheConfig, fmt.Sprintf("%s:%s:%s", utils.AnalyticsSummaryCacheKey, profileUUID, r))
}

func (f *AnalyticsFlowImpl) cachedSummary(ctx context.Context, profileUUID uuid.UUID, r dto.AnalyticsRange) *dto.AnalyticsSummary {
	if f.rc == nil || f.cacheConfig == nil {
		return nil
	}
	bs, err := f.rc.Get(ctx, f.summaryCacheKey(profileUUID, r)).Bytes()
	if err != nil || len(bs) == 0 {
		return nil
	}
	var out dto.AnalyticsSummary
	if err := json.Unmarshal(bs, &out); err != nil {
		return nil
	}
	if out.Views.ByDevice == nil {
		out.Views.ByDevice = make(map[string]int64)
	}
	if out.Views.ByDate == nil {
		out.Views.ByDate = make([]dto.DateCount, 0)
	}
	if out.Clicks.ByType == nil {
		out.Clicks.ByType = make(map[string]int64)
	}
	return &out
}

func (f *AnalyticsFlowImpl) storeSummary(ctx context.Context, profileUUID uuid.UUID, r dto.AnalyticsRange, summary *dto.AnalyticsSummary) {
	if f.rc == nil || f.cacheConfig == nil {
		return
	}
	ttl := utils.DefaultAnalyticsCacheTTL
	if f.analyticsCfg != nil && f.analyticsCfg.SummaryCacheTTL > 0 {
		ttl = f.analyticsCfg.SummaryCacheTTL
	}
	if bs, err := json.Marshal(summary); err == nil {
		_ = f.rc.Set(ctx, f.summaryCacheKey(profileUUID, r), bs, ttl).Err()
	}
}
