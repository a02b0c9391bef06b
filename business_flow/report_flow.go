package businessflow

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/vetrinahq/vetrina-backend/app/dto"
	"github.com/vetrinahq/vetrina-backend/config"
	"github.com/xuri/excelize/v2"
)

// ReportFlow serializes an analytics summary into downloadable artifacts.
// CSV output is one metric per row; nested breakdowns are embedded as JSON in
// a single cell rather than exploded into extra rows. Values pass through the
// csv writer so delimiter and quote characters are escaped per RFC 4180.
type ReportFlow interface {
	ExportCSV(ctx context.Context, profileUUID uuid.UUID, r dto.AnalyticsRange, now time.Time) (string, []byte, error)
	ExportExcel(ctx context.Context, profileUUID uuid.UUID, r dto.AnalyticsRange, now time.Time) (string, []byte, error)
}

type ReportFlowImpl struct {
	analyticsFlow AnalyticsFlow
	analyticsCfg  *config.AnalyticsConfig
}

func NewReportFlow(analyticsFlow AnalyticsFlow, analyticsCfg *config.AnalyticsConfig) ReportFlow {
	return &ReportFlowImpl{
		analyticsFlow: analyticsFlow,
		analyticsCfg:  analyticsCfg,
	}
}

// capDailySeries bounds the per-day rows an export may emit. The most recent
// days win; the all-time range on an old profile could otherwise produce an
// unbounded sheet.
func (f *ReportFlowImpl) capDailySeries(byDate []dto.DateCount) []dto.DateCount {
	if f.analyticsCfg == nil || f.analyticsCfg.ExportMaxRows <= 0 {
		return byDate
	}
	if len(byDate) <= f.analyticsCfg.ExportMaxRows {
		return byDate
	}
	return byDate[len(byDate)-f.analyticsCfg.ExportMaxRows:]
}

func (f *ReportFlowImpl) ExportCSV(ctx context.Context, profileUUID uuid.UUID, r dto.AnalyticsRange, now time.Time) (string, []byte, error) {
	summary, err := f.analyticsFlow.Summarize(ctx, profileUUID, r, now)
	if err != nil {
		return "", nil, err
	}
	summary.Views.ByDate = f.capDailySeries(summary.Views.ByDate)

	rows, err := summaryRows(summary)
	if err != nil {
		return "", nil, err
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	alreadyFlushed := false
	defer func() {
		if !alreadyFlushed {
			w.Flush()
		}
	}()

	if err := w.Write([]string{"metric", "value"}); err != nil {
		return "", nil, NewBusinessError("CSV_WRITE_ERROR", "Failed to write CSV header", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", nil, NewBusinessError("CSV_WRITE_ERROR", "Failed to write CSV row", err)
		}
	}

	filename := fmt.Sprintf("analytics_%s_%s.csv", r, now.Format("2006-01-02"))
	if !alreadyFlushed {
		w.Flush()
		alreadyFlushed = true
	}
	if err := w.Error(); err != nil {
		return "", nil, NewBusinessError("CSV_WRITE_ERROR", "Failed to flush CSV", err)
	}
	return filename, buf.Bytes(), nil
}

func (f *ReportFlowImpl) ExportExcel(ctx context.Context, profileUUID uuid.UUID, r dto.AnalyticsRange, now time.Time) (string, []byte, error) {
	summary, err := f.analyticsFlow.Summarize(ctx, profileUUID, r, now)
	if err != nil {
		return "", nil, err
	}
	summary.Views.ByDate = f.capDailySeries(summary.Views.ByDate)

	rows, err := summaryRows(summary)
	if err != nil {
		return "", nil, err
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := "Summary"
	xl.SetSheetName(xl.GetSheetName(0), sheet)
	header := []string{"metric", "value"}
	_ = xl.SetSheetRow(sheet, "A1", &header)
	for ri, row := range rows {
		cellRef, _ := excelize.CoordinatesToCellName(1, ri+2)
		_ = xl.SetSheetRow(sheet, cellRef, &row)
	}

	// Daily series on its own sheet so it charts cleanly
	daily := "Views by Date"
	_, _ = xl.NewSheet(daily)
	dailyHeader := []string{"date", "views"}
	_ = xl.SetSheetRow(daily, "A1", &dailyHeader)
	for ri, dc := range summary.Views.ByDate {
		record := []string{dc.Date, strconv.FormatInt(dc.Count, 10)}
		cellRef, _ := excelize.CoordinatesToCellName(1, ri+2)
		_ = xl.SetSheetRow(daily, cellRef, &record)
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
	}
	filename := fmt.Sprintf("analytics_%s_%s.xlsx", r, now.Format("2006-01-02"))
	return filename, buf.Bytes(), nil
}

func summaryRows(summary *dto.AnalyticsSummary) ([][]string, error) {
	byDevice, err := json.Marshal(summary.Views.ByDevice)
	if err != nil {
		return nil, NewBusinessError("REPORT_ENCODE_ERROR", "Failed to encode device breakdown", err)
	}
	byType, err := json.Marshal(summary.Clicks.ByType)
	if err != nil {
		return nil, NewBusinessError("REPORT_ENCODE_ERROR", "Failed to encode click breakdown", err)
	}
	byDate, err := json.Marshal(summary.Views.ByDate)
	if err != nil {
		return nil, NewBusinessError("REPORT_ENCODE_ERROR", "Failed to encode daily breakdown", err)
	}

	return [][]string{
		{"range", string(summary.Range)},
		{"views.total", strconv.FormatInt(summary.Views.Total, 10)},
		{"views.unique", strconv.FormatInt(summary.Views.Unique, 10)},
		{"views.today", strconv.FormatInt(summary.Views.Today, 10)},
		{"views.thisWeek", strconv.FormatInt(summary.Views.ThisWeek, 10)},
		{"views.thisMonth", strconv.FormatInt(summary.Views.ThisMonth, 10)},
		{"clicks.total", strconv.FormatInt(summary.Clicks.Total, 10)},
		{"clicks.today", strconv.FormatInt(summary.Clicks.Today, 10)},
		{"clicks.thisWeek", strconv.FormatInt(summary.Clicks.ThisWeek, 10)},
		{"clicks.thisMonth", strconv.FormatInt(summary.Clicks.ThisMonth, 10)},
		{"favorites.total", strconv.FormatInt(summary.Favorites, 10)},
		{"conversionRate", strconv.FormatFloat(summary.ConversionRate, 'f', 2, 64)},
		{"views.byDevice", string(byDevice)},
		{"clicks.byType", string(byType)},
		{"views.byDate", string(byDate)},
	}, nil
}
