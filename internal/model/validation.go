package model

// DefaultValidator is recorded when a submission omits the validator field.
const DefaultValidator = "community_member"

// Recognized status values. Other strings are accepted and stored as-is;
// they fall into the pending catch-all when computing statistics.
const (
	StatusCorrect     = "correct"
	StatusIncorrect   = "incorrect"
	StatusNeedsReview = "needs_review"
	StatusPending     = "pending"
)

// ValidationEvent is one reviewer's verdict on a video at a point in time.
// Events are immutable once stored; the current status of a video is always
// derived from its event history, never stored.
//
// VideoID is injected server-side and stripped from per-video responses,
// where the map key already carries it.
type ValidationEvent struct {
	VideoID   string `json:"-"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
	Feedback  string `json:"feedback"`
	Validator string `json:"validator"`
}

// ValidationRequest is the API request body for submitting a validation.
type ValidationRequest struct {
	VideoID    string          `json:"video_id"`
	Validation ValidationEvent `json:"validation"`
}

// ValidationResponse is the API response after submitting a validation.
type ValidationResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	VideoID          string `json:"video_id"`
	TotalValidations int    `json:"total_validations"`
}

// StatusResponse is the derived latest-known status of a video.
// LastUpdated is nil for videos with no events (implicit "pending").
type StatusResponse struct {
	VideoID     string  `json:"video_id"`
	Status      string  `json:"status"`
	LastUpdated *string `json:"last_updated"`
	HasFeedback bool    `json:"has_feedback"`
}

// StatsResponse holds corpus-wide validation statistics. Each video with at
// least one event lands in exactly one bucket based on its latest status.
type StatsResponse struct {
	TotalVideos int `json:"total_videos"`
	Pending     int `json:"pending"`
	Completed   int `json:"completed"`
	NeedsReview int `json:"needs_review"`
	InProgress  int `json:"in_progress"`
}
