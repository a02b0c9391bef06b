package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/vetrinahq/vetrina-backend/app/dto"
	"github.com/vetrinahq/vetrina-backend/app/middleware"
	businessflow "github.com/vetrinahq/vetrina-backend/business_flow"
	"github.com/vetrinahq/vetrina-backend/utils"
)

type AnalyticsHandlerInterface interface {
	GetSummary(c fiber.Ctx) error
	DownloadCSV(c fiber.Ctx) error
	DownloadExcel(c fiber.Ctx) error
}

type AnalyticsHandler struct {
	analyticsFlow businessflow.AnalyticsFlow
	reportFlow    businessflow.ReportFlow
}

func NewAnalyticsHandler(analyticsFlow businessflow.AnalyticsFlow, reportFlow businessflow.ReportFlow) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsFlow: analyticsFlow,
		reportFlow:    reportFlow,
	}
}

func (h *AnalyticsHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *AnalyticsHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// GetSummary returns the aggregated analytics for one profile and range
// @Summary Get analytics summary
// @Description Aggregate views, clicks, favorites and conversion rate for the requested range (today, week, month, all). Defaults to week.
// @Tags Analytics
// @Produce json
// @Param uuid path string true "Profile UUID"
// @Param range query string false "Reporting range" Enums(today, week, month, all)
// @Success 200 {object} dto.APIResponse{data=dto.AnalyticsSummary} "Analytics summary"
// @Failure 400 {object} dto.APIResponse "Invalid range"
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/profiles/{uuid}/analytics [get]
func (h *AnalyticsHandler) GetSummary(c fiber.Ctx) error {
	profileUUID, r, errResp := h.parseSummaryParams(c)
	if errResp != nil {
		return errResp
	}

	summary, err := h.analyticsFlow.Summarize(h.createRequestContext(c, "/api/v1/profiles/:uuid/analytics"), profileUUID, r, utils.UTCNow())
	if err != nil {
		return h.analyticsError(c, err, "Failed to build analytics summary", "SUMMARIZE_FAILED")
	}

	middleware.CountAnalyticsSummary(string(r))
	return h.SuccessResponse(c, fiber.StatusOK, "Analytics summary retrieved", summary)
}

// DownloadCSV serves the analytics summary as a CSV download
// @Summary Download analytics CSV
// @Description Serialize the analytics summary for the requested range as a downloadable CSV file.
// @Tags Analytics
// @Produce text/csv
// @Param uuid path string true "Profile UUID"
// @Param range query string false "Reporting range" Enums(today, week, month, all)
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} dto.APIResponse "Invalid range"
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/profiles/{uuid}/analytics/export [get]
func (h *AnalyticsHandler) DownloadCSV(c fiber.Ctx) error {
	profileUUID, r, errResp := h.parseSummaryParams(c)
	if errResp != nil {
		return errResp
	}

	filename, data, err := h.reportFlow.ExportCSV(h.createRequestContext(c, "/api/v1/profiles/:uuid/analytics/export"), profileUUID, r, utils.UTCNow())
	if err != nil {
		log.Println("Analytics CSV export failed:", err)
		return h.analyticsError(c, err, "Failed to generate CSV", "DOWNLOAD_FAILED")
	}
	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(data)
}

// DownloadExcel serves the analytics summary as an Excel workbook download
// @Summary Download analytics Excel
// @Description Serialize the analytics summary for the requested range as a downloadable Excel workbook with a daily-views sheet.
// @Tags Analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param uuid path string true "Profile UUID"
// @Param range query string false "Reporting range" Enums(today, week, month, all)
// @Success 200 {file} file "Excel file"
// @Failure 400 {object} dto.APIResponse "Invalid range"
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/profiles/{uuid}/analytics/export/excel [get]
func (h *AnalyticsHandler) DownloadExcel(c fiber.Ctx) error {
	profileUUID, r, errResp := h.parseSummaryParams(c)
	if errResp != nil {
		return errResp
	}

	filename, data, err := h.reportFlow.ExportExcel(h.createRequestContext(c, "/api/v1/profiles/:uuid/analytics/export/excel"), profileUUID, r, utils.UTCNow())
	if err != nil {
		log.Println("Analytics Excel export failed:", err)
		return h.analyticsError(c, err, "Failed to generate Excel file", "DOWNLOAD_FAILED")
	}
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(data)
}

func (h *AnalyticsHandler) parseSummaryParams(c fiber.Ctx) (uuid.UUID, dto.AnalyticsRange, error) {
	profileUUID, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return uuid.Nil, "", h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid profile UUID", "INVALID_PROFILE_UUID", nil)
	}
	r, ok := dto.ParseAnalyticsRange(c.Query("range"))
	if !ok {
		return uuid.Nil, "", h.ErrorResponse(c, fiber.StatusBadRequest, "Range must be one of: today, week, month, all", "INVALID_RANGE", nil)
	}
	return profileUUID, r, nil
}

func (h *AnalyticsHandler) analyticsError(c fiber.Ctx, err error, fallbackMsg, fallbackCode string) error {
	if businessflow.IsProfileNotFound(err) {
		return h.ErrorResponse(c, fiber.StatusNotFound, "Profile not found", "PROFILE_NOT_FOUND", nil)
	}
	return h.ErrorResponse(c, fiber.StatusInternalServerError, fallbackMsg, fallbackCode, nil)
}

func (h *AnalyticsHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}
