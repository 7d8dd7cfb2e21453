package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Bhumika158/SignSegmentationUI/internal/model"
)

// Field length limits. Video ids are segment clip names (gloss labels or
// dataset filenames), validators are free-form reviewer handles.
const (
	MaxVideoIDLen   = 256
	MaxValidatorLen = 128
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateVideoID checks that a video ID is present and within limits.
// Returns the trimmed id and an empty string, or an error message.
func ValidateVideoID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "video_id is required"
	}
	if len(id) > MaxVideoIDLen {
		return "", "video_id must be at most 256 characters"
	}
	return id, ""
}

// ValidateEvent checks the required fields of a submitted validation event.
// Status is deliberately not checked against the known values: unrecognized
// statuses are stored and fall outside the tallied stats buckets.
// Returns the names of missing required fields.
func ValidateEvent(e model.ValidationEvent) []string {
	var missing []string
	if strings.TrimSpace(e.Timestamp) == "" {
		missing = append(missing, "validation.timestamp")
	}
	if strings.TrimSpace(e.Status) == "" {
		missing = append(missing, "validation.status")
	}
	return missing
}

// ValidateValidator trims and truncates the reviewer handle.
func ValidateValidator(v string) string {
	v = strings.TrimSpace(v)
	if len(v) > MaxValidatorLen {
		v = v[:MaxValidatorLen]
	}
	return v
}
