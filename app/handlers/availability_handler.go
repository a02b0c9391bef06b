package handlers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/vetrinahq/vetrina-backend/app/dto"
	businessflow "github.com/vetrinahq/vetrina-backend/business_flow"
	"github.com/vetrinahq/vetrina-backend/utils"
)

type AvailabilityHandlerInterface interface {
	SetOnline(c fiber.Ctx) error
	SetOffline(c fiber.Ctx) error
	GetStatus(c fiber.Ctx) error
}

type AvailabilityHandler struct {
	flow      businessflow.AvailabilityFlow
	validator *validator.Validate
}

func NewAvailabilityHandler(flow businessflow.AvailabilityFlow) *AvailabilityHandler {
	return &AvailabilityHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

func (h *AvailabilityHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *AvailabilityHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SetOnline turns the profile's availability on, optionally for a bounded window
// @Summary Set profile online
// @Description Turn the profile online, optionally for a bounded number of minutes. Calling again resets the window.
// @Tags Availability
// @Accept json
// @Produce json
// @Param uuid path string true "Profile UUID"
// @Param request body dto.SetOnlineRequest false "Optional duration"
// @Success 200 {object} dto.APIResponse{data=dto.AvailabilityStatusResponse} "Profile is online"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/profiles/{uuid}/availability/online [put]
func (h *AvailabilityHandler) SetOnline(c fiber.Ctx) error {
	profileUUID, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid profile UUID", "INVALID_PROFILE_UUID", nil)
	}

	var req dto.SetOnlineRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST_BODY", nil)
		}
	}
	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationDetails(err))
	}

	res, err := h.flow.SetOnline(h.createRequestContext(c, "/api/v1/profiles/:uuid/availability/online"), profileUUID, req.DurationMinutes, utils.UTCNow())
	if err != nil {
		return h.availabilityError(c, err, "Failed to set profile online", "SET_ONLINE_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Profile is online", res)
}

// SetOffline turns the profile's availability off
// @Summary Set profile offline
// @Description Turn the profile offline and clear any pending availability window.
// @Tags Availability
// @Produce json
// @Param uuid path string true "Profile UUID"
// @Success 200 {object} dto.APIResponse{data=dto.AvailabilityStatusResponse} "Profile is offline"
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/profiles/{uuid}/availability/offline [put]
func (h *AvailabilityHandler) SetOffline(c fiber.Ctx) error {
	profileUUID, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid profile UUID", "INVALID_PROFILE_UUID", nil)
	}

	res, err := h.flow.SetOffline(h.createRequestContext(c, "/api/v1/profiles/:uuid/availability/offline"), profileUUID)
	if err != nil {
		return h.availabilityError(c, err, "Failed to set profile offline", "SET_OFFLINE_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Profile is offline", res)
}

// GetStatus reports the stored availability pair and the derived status
// @Summary Get availability status
// @Description Report the stored availability flags plus the status derived from the current time.
// @Tags Availability
// @Produce json
// @Param uuid path string true "Profile UUID"
// @Success 200 {object} dto.APIResponse{data=dto.AvailabilityStatusResponse} "Availability status"
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/profiles/{uuid}/availability [get]
func (h *AvailabilityHandler) GetStatus(c fiber.Ctx) error {
	profileUUID, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid profile UUID", "INVALID_PROFILE_UUID", nil)
	}

	res, err := h.flow.GetStatus(h.createRequestContext(c, "/api/v1/profiles/:uuid/availability"), profileUUID, utils.UTCNow())
	if err != nil {
		return h.availabilityError(c, err, "Failed to get availability status", "GET_STATUS_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Availability status retrieved", res)
}

func (h *AvailabilityHandler) availabilityError(c fiber.Ctx, err error, fallbackMsg, fallbackCode string) error {
	switch {
	case businessflow.IsProfileNotFound(err):
		return h.ErrorResponse(c, fiber.StatusNotFound, "Profile not found", "PROFILE_NOT_FOUND", nil)
	case businessflow.IsProfileInactive(err):
		return h.ErrorResponse(c, fiber.StatusForbidden, "Profile is inactive", "PROFILE_INACTIVE", nil)
	case businessflow.IsInvalidDuration(err):
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Duration must be a positive number of minutes", "INVALID_DURATION", nil)
	default:
		return h.ErrorResponse(c, fiber.StatusInternalServerError, fallbackMsg, fallbackCode, nil)
	}
}

func (h *AvailabilityHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

func createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}

func validationDetails(err error) any {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		details = append(details, getValidationErrorMessage(fe))
	}
	return details
}
