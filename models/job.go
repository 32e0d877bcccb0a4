package models

import "strings"

// Sentinel values written by the scraper when a field could not be extracted
// but a record still has to exist.
const (
	UnknownCompany  = "Unknown Company"
	UnknownPosition = "Unknown Position"
)

// JobPostData represents a job posting extracted from a listing page or read
// from the job-post bucket. Treated as immutable once constructed.
type JobPostData struct {
	CompanyName    string `json:"companyName"`
	JobTitle       string `json:"jobTitle"`
	JobDescription string `json:"jobDescription"` // whitespace-collapsed, capped at 2000 chars
	Requirements   string `json:"requirements"`   // sliced from the description, capped at 1000 chars
	OriginalURL    string `json:"originalUrl,omitempty"`
}

// IsUsable reports whether the record carries enough real content to feed the
// prompt builder. Sentinel company/title values count as missing, matched
// case-insensitively, and the description must clear the configured minimum.
func (j *JobPostData) IsUsable(minDescriptionLen int) bool {
	if j == nil {
		return false
	}

	company := strings.ToLower(strings.TrimSpace(j.CompanyName))
	title := strings.ToLower(strings.TrimSpace(j.JobTitle))
	description := strings.TrimSpace(j.JobDescription)

	hasCompany := company != "" &&
		company != strings.ToLower(UnknownCompany) &&
		company != "unknown"

	hasTitle := title != "" &&
		title != strings.ToLower(UnknownPosition) &&
		title != "unknown"

	return hasCompany && hasTitle && len(description) >= minDescriptionLen
}
