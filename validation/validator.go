// Package validation provides pure shape checks for inbound chat requests.
// No network or state access happens here.
package validation

import (
	"regexp"
	"strings"

	"github.com/chrisbarreras/resume-backend/models"
)

var jobPostIDPattern = regexp.MustCompile(`^[a-zA-Z0-9-_]{1,20}$`)

// Validator checks shape, length, and format of request fields.
type Validator struct {
	maxMessageLength int
}

// NewValidator creates a validator with the given message length cap.
func NewValidator(maxMessageLength int) *Validator {
	return &Validator{maxMessageLength: maxMessageLength}
}

// Validate checks the request body. A nil body fails; an oversized message
// fails; a jobPostId outside the short-link token alphabet fails.
func (v *Validator) Validate(body *models.FitAnswerRequest) models.ValidationResult {
	if body == nil {
		return models.ValidationResult{IsValid: false, Message: "Request body is required"}
	}

	if len(body.Message) > v.maxMessageLength {
		return models.ValidationResult{IsValid: false, Message: "Message too long"}
	}

	if body.JobPostID != "" && !jobPostIDPattern.MatchString(body.JobPostID) {
		return models.ValidationResult{IsValid: false, Message: "Invalid job post ID format"}
	}

	return models.ValidationResult{IsValid: true}
}

// SanitizeMessage trims and caps a message to the configured length.
func (v *Validator) SanitizeMessage(message string) string {
	message = strings.TrimSpace(message)
	if len(message) > v.maxMessageLength {
		message = message[:v.maxMessageLength]
	}
	return message
}
