package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Bhumika158/SignSegmentationUI/internal/middleware"
	"github.com/Bhumika158/SignSegmentationUI/internal/model"
	"github.com/Bhumika158/SignSegmentationUI/internal/service"
	"github.com/Bhumika158/SignSegmentationUI/internal/store"
)

type ValidationHandler struct {
	svc *service.ValidationService
}

func NewValidationHandler(svc *service.ValidationService) *ValidationHandler {
	return &ValidationHandler{svc: svc}
}

// GetAll handles GET /api/validations
func (h *ValidationHandler) GetAll(c fiber.Ctx) error {
	validations, err := h.svc.ListAll(c.Context())
	if err != nil {
		return storeError(c, err)
	}
	if validations == nil {
		validations = map[string][]model.ValidationEvent{}
	}
	return c.JSON(fiber.Map{"validations": validations})
}

// GetByVideo handles GET /api/validations/:videoId
func (h *ValidationHandler) GetByVideo(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateVideoID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", errMsg)
	}

	events, err := h.svc.ListForVideo(c.Context(), videoID)
	if err != nil {
		return storeError(c, err)
	}
	if events == nil {
		events = []model.ValidationEvent{}
	}

	return c.JSON(fiber.Map{
		"video_id":    videoID,
		"validations": events,
	})
}

// Save handles POST /api/validations
func (h *ValidationHandler) Save(c fiber.Ctx) error {
	var req model.ValidationRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
	}

	videoID, errMsg := middleware.ValidateVideoID(req.VideoID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", errMsg)
	}

	if missing := middleware.ValidateEvent(req.Validation); len(missing) > 0 {
		return middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR",
			"missing required fields: "+strings.Join(missing, ", "))
	}
	req.Validation.Validator = middleware.ValidateValidator(req.Validation.Validator)

	total, err := h.svc.SaveValidation(c.Context(), videoID, req.Validation)
	if err != nil {
		return storeError(c, err)
	}

	if Metrics.ValidationsTotal != nil {
		Metrics.ValidationsTotal.WithLabelValues(statusLabel(req.Validation.Status)).Inc()
	}

	return c.JSON(model.ValidationResponse{
		Success:          true,
		Message:          "Validation saved successfully",
		VideoID:          videoID,
		TotalValidations: total,
	})
}

// GetStatus handles GET /api/status/:videoId
func (h *ValidationHandler) GetStatus(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateVideoID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", errMsg)
	}

	status, err := h.svc.GetStatus(c.Context(), videoID)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(status)
}

// GetStats handles GET /api/stats
func (h *ValidationHandler) GetStats(c fiber.Ctx) error {
	stats, err := h.svc.GetStats(c.Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(stats)
}

// Delete handles DELETE /api/validations/:videoId
func (h *ValidationHandler) Delete(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateVideoID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", errMsg)
	}

	if _, err := h.svc.DeleteVideo(c.Context(), videoID); err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Validations deleted for %s", videoID),
	})
}

// storeError translates store-layer failures into the API error taxonomy.
// Unexpected store errors include the underlying text: this is an internal
// review tool and operators read the responses directly.
func storeError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrUnavailable):
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", err.Error())
	case errors.Is(err, store.ErrNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video not found")
	default:
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Database error: "+err.Error())
	}
}

// statusLabel keeps metric label cardinality bounded despite the permissive
// status field.
func statusLabel(status string) string {
	switch status {
	case model.StatusCorrect, model.StatusIncorrect, model.StatusNeedsReview:
		return status
	default:
		return "other"
	}
}
