package businessflow

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrinahq/vetrina-backend/app/dto"
	"github.com/vetrinahq/vetrina-backend/config"
	"github.com/xuri/excelize/v2"
)

type stubAnalyticsFlow struct {
	summary *dto.AnalyticsSummary
	err     error
}

func (s *stubAnalyticsFlow) Summarize(ctx context.Context, profileUUID uuid.UUID, r dto.AnalyticsRange, now time.Time) (*dto.AnalyticsSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.summary, nil
}

func reportSummary() *dto.AnalyticsSummary {
	summary := dto.NewEmptyAnalyticsSummary(dto.RangeWeek)
	summary.Views.Total = 10
	summary.Views.Unique = 4
	summary.Views.Today = 2
	summary.Views.ThisWeek = 10
	summary.Views.ThisMonth = 10
	summary.Views.ByDevice["mobile"] = 7
	summary.Views.ByDevice["desktop"] = 3
	summary.Views.ByDate = []dto.DateCount{
		{Date: "2025-06-13", Count: 4},
		{Date: "2025-06-14", Count: 6},
	}
	summary.Clicks.Total = 2
	summary.Clicks.Today = 1
	summary.Clicks.ThisWeek = 2
	summary.Clicks.ThisMonth = 2
	summary.Clicks.ByType["whatsapp"] = 2
	summary.Favorites = 5
	summary.ConversionRate = 20
	return summary
}

func TestExportCSV(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	flow := NewReportFlow(&stubAnalyticsFlow{summary: reportSummary()}, nil)

	filename, data, err := flow.ExportCSV(context.Background(), uuid.New(), dto.RangeWeek, now)
	require.NoError(t, err)
	assert.Equal(t, "analytics_week_2025-06-15.csv", filename)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, []string{"metric", "value"}, records[0])

	values := make(map[string]string, len(records)-1)
	for _, rec := range records[1:] {
		require.Len(t, rec, 2)
		values[rec[0]] = rec[1]
	}

	assert.Equal(t, "week", values["range"])
	assert.Equal(t, "10", values["views.total"])
	assert.Equal(t, "4", values["views.unique"])
	assert.Equal(t, "2", values["views.today"])
	assert.Equal(t, "10", values["views.thisWeek"])
	assert.Equal(t, "10", values["views.thisMonth"])
	assert.Equal(t, "2", values["clicks.total"])
	assert.Equal(t, "1", values["clicks.today"])
	assert.Equal(t, "2", values["clicks.thisWeek"])
	assert.Equal(t, "2", values["clicks.thisMonth"])
	assert.Equal(t, "5", values["favorites.total"])
	assert.Equal(t, "20.00", values["conversionRate"])

	// Nested breakdowns ride along as JSON inside a single cell and survive
	// the csv quoting round trip
	var byDevice map[string]int64
	require.NoError(t, json.Unmarshal([]byte(values["views.byDevice"]), &byDevice))
	assert.Equal(t, int64(7), byDevice["mobile"])

	var byDate []dto.DateCount
	require.NoError(t, json.Unmarshal([]byte(values["views.byDate"]), &byDate))
	require.Len(t, byDate, 2)
	assert.Equal(t, "2025-06-13", byDate[0].Date)
}

func TestExportCSVEmptySummary(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	flow := NewReportFlow(&stubAnalyticsFlow{summary: dto.NewEmptyAnalyticsSummary(dto.RangeAll)}, nil)

	filename, data, err := flow.ExportCSV(context.Background(), uuid.New(), dto.RangeAll, now)
	require.NoError(t, err)
	assert.Equal(t, "analytics_all_2025-06-15.csv", filename)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	// Header plus one row per metric, zeros included
	assert.Len(t, records, 16)

	values := make(map[string]string)
	for _, rec := range records[1:] {
		values[rec[0]] = rec[1]
	}
	assert.Equal(t, "{}", values["views.byDevice"])
	assert.Equal(t, "[]", values["views.byDate"])
	assert.Equal(t, "0.00", values["conversionRate"])
}

func TestExportCSVSummarizeFailure(t *testing.T) {
	flow := NewReportFlow(&stubAnalyticsFlow{err: ErrProfileNotFound}, nil)

	_, _, err := flow.ExportCSV(context.Background(), uuid.New(), dto.RangeWeek, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	assert.True(t, IsProfileNotFound(err))
}

func TestExportCSVCapsDailySeries(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	summary := reportSummary()
	summary.Views.ByDate = []dto.DateCount{
		{Date: "2025-06-12", Count: 1},
		{Date: "2025-06-13", Count: 4},
		{Date: "2025-06-14", Count: 6},
	}
	cfg := &config.AnalyticsConfig{ExportMaxRows: 2}
	flow := NewReportFlow(&stubAnalyticsFlow{summary: summary}, cfg)

	_, data, err := flow.ExportCSV(context.Background(), uuid.New(), dto.RangeAll, now)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	values := make(map[string]string)
	for _, rec := range records[1:] {
		values[rec[0]] = rec[1]
	}

	// The oldest day falls off; the most recent days survive
	var byDate []dto.DateCount
	require.NoError(t, json.Unmarshal([]byte(values["views.byDate"]), &byDate))
	require.Len(t, byDate, 2)
	assert.Equal(t, "2025-06-13", byDate[0].Date)
	assert.Equal(t, "2025-06-14", byDate[1].Date)
}

func TestExportExcel(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	flow := NewReportFlow(&stubAnalyticsFlow{summary: reportSummary()}, nil)

	filename, data, err := flow.ExportExcel(context.Background(), uuid.New(), dto.RangeWeek, now)
	require.NoError(t, err)
	assert.Equal(t, "analytics_week_2025-06-15.xlsx", filename)
	require.NotEmpty(t, data)

	xl, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = xl.Close() }()

	rows, err := xl.GetRows("Summary")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"metric", "value"}, rows[0])
	assert.Equal(t, "range", rows[1][0])
	assert.Equal(t, "week", rows[1][1])
	assert.Equal(t, "views.total", rows[2][0])
	assert.Equal(t, "10", rows[2][1])

	daily, err := xl.GetRows("Views by Date")
	require.NoError(t, err)
	require.Len(t, daily, 3)
	assert.Equal(t, []string{"date", "views"}, daily[0])
	assert.Equal(t, "2025-06-13", daily[1][0])
	assert.Equal(t, "4", daily[1][1])
}
