// Package jobcontext turns a job post identifier from the chat request into
// a JobPostData record. Two strategies exist: expanding a short link and
// scraping the destination page, or reading a curated file from the job-post
// bucket. Deployment configuration picks one.
package jobcontext

import (
	"context"
	"errors"

	"github.com/chrisbarreras/resume-backend/models"
)

// ErrNoJobData is returned when an identifier could not be resolved into a
// usable record. Callers treat it as "no job context available", never as a
// fatal error.
var ErrNoJobData = errors.New("no job data available")

// Resolver resolves a job post identifier into a job record.
type Resolver interface {
	Resolve(ctx context.Context, jobPostID string) (*models.JobPostData, error)
}
