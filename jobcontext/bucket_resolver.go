package jobcontext

import (
	"context"
	"fmt"
	"strings"

	"github.com/chrisbarreras/resume-backend/models"
)

// BucketReader reads curated job-post files by identifier.
type BucketReader interface {
	ReadJobPost(ctx context.Context, jobPostID string) (string, error)
}

// BucketResolver resolves identifiers against the job-post bucket. Files use
// a fixed line format: job title on line 1, company name on line 2, and the
// description on the remaining lines.
type BucketResolver struct {
	bucket BucketReader
}

// NewBucketResolver creates the bucket-file strategy.
func NewBucketResolver(bucket BucketReader) *BucketResolver {
	return &BucketResolver{bucket: bucket}
}

// Resolve reads and parses the job post file for the identifier.
func (r *BucketResolver) Resolve(ctx context.Context, jobPostID string) (*models.JobPostData, error) {
	content, err := r.bucket.ReadJobPost(ctx, jobPostID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJobData, err)
	}

	job, err := parseJobPostFile(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJobData, err)
	}
	return job, nil
}

func parseJobPostFile(content string) (*models.JobPostData, error) {
	lines := strings.Split(content, "\n")
	if len(lines) < 3 {
		return nil, fmt.Errorf("job post file needs at least 3 lines, got %d", len(lines))
	}

	title := strings.TrimSpace(lines[0])
	if title == "" {
		title = models.UnknownPosition
	}

	company := strings.TrimSpace(lines[1])
	if company == "" {
		company = models.UnknownCompany
	}

	description := strings.TrimSpace(strings.Join(lines[2:], "\n"))
	if description == "" {
		description = "No description available"
	}

	return &models.JobPostData{
		CompanyName:    company,
		JobTitle:       title,
		JobDescription: description,
	}, nil
}
