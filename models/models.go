package models

// FitAnswerRequest represents the API request for a chat answer
// @Description Chat request with an optional question and an optional job post identifier
type FitAnswerRequest struct {
	Message   string `json:"message,omitempty" example:"What are Chris's main front-end strengths?"`
	JobPostID string `json:"jobPostId,omitempty" example:"abc123"`
}

// FitAnswerResponse represents the API response for a chat answer
// @Description Generated answer, with the scraped company name when job context was used
type FitAnswerResponse struct {
	Answer      string `json:"answer"`
	CompanyName string `json:"companyName,omitempty" example:"Acme Inc."`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error string `json:"error" example:"Message too long"`
	Code  int    `json:"code,omitempty" example:"400"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// ValidationResult is the outcome of a request validation pass
type ValidationResult struct {
	IsValid bool
	Message string
}
