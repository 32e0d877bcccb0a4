package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/chrisbarreras/resume-backend/config"
)

// JobPostBucket wraps the Cloud Storage bucket holding curated job-post
// files. Each post is a text file named "<jobPostId>.txt".
type JobPostBucket struct {
	client     *storage.Client
	bucketName string
}

// NewJobPostBucket creates a new bucket client.
func NewJobPostBucket(ctx context.Context, cfg *config.Config) (*JobPostBucket, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &JobPostBucket{
		client:     client,
		bucketName: cfg.JobPostBucket,
	}, nil
}

// Close closes the Cloud Storage client.
func (b *JobPostBucket) Close() error {
	return b.client.Close()
}

// ReadJobPost downloads the content of "<jobPostID>.txt".
func (b *JobPostBucket) ReadJobPost(ctx context.Context, jobPostID string) (string, error) {
	objectName := jobPostID + ".txt"
	obj := b.client.Bucket(b.bucketName).Object(objectName)

	rc, err := obj.NewReader(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to open job post %s: %w", objectName, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("failed to read job post %s: %w", objectName, err)
	}

	return string(data), nil
}

// ListJobPosts returns the names of all job post files in the bucket,
// without the .txt extension.
func (b *JobPostBucket) ListJobPosts(ctx context.Context) ([]string, error) {
	it := b.client.Bucket(b.bucketName).Objects(ctx, nil)

	var names []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list job posts: %w", err)
		}
		if strings.HasSuffix(attrs.Name, ".txt") {
			names = append(names, strings.TrimSuffix(attrs.Name, ".txt"))
		}
	}

	return names, nil
}
