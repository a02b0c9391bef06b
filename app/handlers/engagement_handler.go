package handlers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/vetrinahq/vetrina-backend/app/dto"
	"github.com/vetrinahq/vetrina-backend/app/middleware"
	businessflow "github.com/vetrinahq/vetrina-backend/business_flow"
)

type EngagementHandlerInterface interface {
	TrackView(c fiber.Ctx) error
	TrackClick(c fiber.Ctx) error
	TrackFavorite(c fiber.Ctx) error
}

// EngagementHandler ingests engagement events from public listing pages
type EngagementHandler struct {
	flow      businessflow.EngagementFlow
	validator *validator.Validate
}

func NewEngagementHandler(flow businessflow.EngagementFlow) *EngagementHandler {
	return &EngagementHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

func (h *EngagementHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *EngagementHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// TrackView records one listing page load
// @Summary Track profile view
// @Description Record one page load of the profile's public listing page. No authentication required.
// @Tags Engagement
// @Accept json
// @Produce json
// @Param uuid path string true "Profile UUID"
// @Param request body dto.TrackViewRequest false "Viewer details"
// @Success 201 {object} dto.APIResponse "View recorded"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/profiles/{uuid}/views [post]
func (h *EngagementHandler) TrackView(c fiber.Ctx) error {
	profileUUID, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid profile UUID", "INVALID_PROFILE_UUID", nil)
	}

	var req dto.TrackViewRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST_BODY", nil)
		}
	}
	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationDetails(err))
	}

	metadata := h.clientMetadata(c)
	if err := h.flow.TrackView(h.createRequestContext(c, "/api/v1/profiles/:uuid/views"), profileUUID, &req, metadata); err != nil {
		return h.engagementError(c, err, "Failed to track view", "VIEW_TRACK_FAILED")
	}

	middleware.CountEngagementEvent("view")
	return h.SuccessResponse(c, fiber.StatusCreated, "View recorded", nil)
}

// TrackClick records a contact button click
// @Summary Track contact click
// @Description Record a visitor tapping a contact button (whatsapp, telegram, instagram, twitter, phone, message). Unknown types are bucketed as other.
// @Tags Engagement
// @Accept json
// @Produce json
// @Param uuid path string true "Profile UUID"
// @Param request body dto.TrackClickRequest true "Contact type"
// @Success 201 {object} dto.APIResponse "Click recorded"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/profiles/{uuid}/clicks [post]
func (h *EngagementHandler) TrackClick(c fiber.Ctx) error {
	profileUUID, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid profile UUID", "INVALID_PROFILE_UUID", nil)
	}

	var req dto.TrackClickRequest
	if err := c.Bind().Body(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST_BODY", nil)
	}
	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationDetails(err))
	}

	metadata := h.clientMetadata(c)
	if err := h.flow.TrackClick(h.createRequestContext(c, "/api/v1/profiles/:uuid/clicks"), profileUUID, &req, metadata); err != nil {
		return h.engagementError(c, err, "Failed to track click", "CLICK_TRACK_FAILED")
	}

	middleware.CountEngagementEvent("click")
	return h.SuccessResponse(c, fiber.StatusCreated, "Click recorded", nil)
}

// TrackFavorite records a profile being favorited
// @Summary Track favorite
// @Description Record a visitor adding the profile to their favorites.
// @Tags Engagement
// @Accept json
// @Produce json
// @Param uuid path string true "Profile UUID"
// @Param request body dto.TrackFavoriteRequest false "Viewer details"
// @Success 201 {object} dto.APIResponse "Favorite recorded"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/profiles/{uuid}/favorites [post]
func (h *EngagementHandler) TrackFavorite(c fiber.Ctx) error {
	profileUUID, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid profile UUID", "INVALID_PROFILE_UUID", nil)
	}

	var req dto.TrackFavoriteRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST_BODY", nil)
		}
	}
	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationDetails(err))
	}

	if err := h.flow.TrackFavorite(h.createRequestContext(c, "/api/v1/profiles/:uuid/favorites"), profileUUID, &req); err != nil {
		return h.engagementError(c, err, "Failed to track favorite", "FAVORITE_TRACK_FAILED")
	}

	middleware.CountEngagementEvent("favorite")
	return h.SuccessResponse(c, fiber.StatusCreated, "Favorite recorded", nil)
}

func (h *EngagementHandler) clientMetadata(c fiber.Ctx) *businessflow.ClientMetadata {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	if requestID := c.Get("X-Request-ID"); requestID != "" {
		metadata.SetRequestID(requestID)
	}
	return metadata
}

func (h *EngagementHandler) engagementError(c fiber.Ctx, err error, fallbackMsg, fallbackCode string) error {
	switch {
	case businessflow.IsProfileNotFound(err):
		return h.ErrorResponse(c, fiber.StatusNotFound, "Profile not found", "PROFILE_NOT_FOUND", nil)
	case businessflow.IsInvalidViewerID(err):
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Viewer id is not a valid UUID", "INVALID_VIEWER_ID", nil)
	default:
		return h.ErrorResponse(c, fiber.StatusInternalServerError, fallbackMsg, fallbackCode, nil)
	}
}

func (h *EngagementHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}
