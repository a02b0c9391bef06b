package dto

// AnalyticsRange identifies the reporting window of a summary
type AnalyticsRange string

const (
	RangeToday AnalyticsRange = "today"
	RangeWeek  AnalyticsRange = "week"
	RangeMonth AnalyticsRange = "month"
	RangeAll   AnalyticsRange = "all"
)

// ParseAnalyticsRange validates a raw range parameter. Empty defaults to week.
func ParseAnalyticsRange(raw string) (AnalyticsRange, bool) {
	switch AnalyticsRange(raw) {
	case RangeToday, RangeWeek, RangeMonth, RangeAll:
		return AnalyticsRange(raw), true
	case "":
		return RangeWeek, true
	default:
		return "", false
	}
}

// ViewStats breaks down profile page views for a summary
type ViewStats struct {
	Total     int64            `json:"total"`
	Unique    int64            `json:"unique"`
	Today     int64            `json:"today"`
	ThisWeek  int64            `json:"thisWeek"`
	ThisMonth int64            `json:"thisMonth"`
	ByDevice  map[string]int64 `json:"byDevice"`
	ByDate    []DateCount      `json:"byDate"`
}

// ClickStats breaks down contact button clicks for a summary
type ClickStats struct {
	Total     int64            `json:"total"`
	Today     int64            `json:"today"`
	ThisWeek  int64            `json:"thisWeek"`
	ThisMonth int64            `json:"thisMonth"`
	ByType    map[string]int64 `json:"byType"`
}

// DateCount is one day's view count in the byDate series
type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// AnalyticsSummary is the aggregate returned to the dashboard for one profile
// and one reporting range.
type AnalyticsSummary struct {
	Range          AnalyticsRange `json:"range"`
	Views          ViewStats      `json:"views"`
	Clicks         ClickStats     `json:"clicks"`
	Favorites      int64          `json:"favorites"`
	ConversionRate float64        `json:"conversionRate"`
}

// NewEmptyAnalyticsSummary returns an all-zero summary with non-nil maps and
// slices, so consumers can iterate without nil checks.
func NewEmptyAnalyticsSummary(r AnalyticsRange) *AnalyticsSummary {
	return &AnalyticsSummary{
		Range: r,
		Views: ViewStats{
			ByDevice: make(map[string]int64),
			ByDate:   make([]DateCount, 0),
		},
		Clicks: ClickStats{
			ByType: make(map[string]int64),
		},
	}
}
