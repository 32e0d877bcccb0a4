package jobcontext

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chrisbarreras/resume-backend/models"
)

type mockExpander struct {
	mock.Mock
}

func (m *mockExpander) Expand(ctx context.Context, shortID string) string {
	args := m.Called(ctx, shortID)
	return args.String(0)
}

func (m *mockExpander) Unresolved(shortID, result string) bool {
	return result == "https://tinyurl.com/"+shortID
}

type mockScraper struct {
	mock.Mock
}

func (m *mockScraper) Scrape(ctx context.Context, pageURL string) (*models.JobPostData, error) {
	args := m.Called(ctx, pageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobPostData), args.Error(1)
}

func TestScrapeResolver(t *testing.T) {
	t.Run("resolves and scrapes", func(t *testing.T) {
		expander := new(mockExpander)
		scraper := new(mockScraper)
		resolver := NewScrapeResolver(expander, scraper)

		job := &models.JobPostData{CompanyName: "Acme Inc.", JobTitle: "Engineer"}
		expander.On("Expand", mock.Anything, "abc123").Return("https://example.com/jobs/1")
		scraper.On("Scrape", mock.Anything, "https://example.com/jobs/1").Return(job, nil)

		got, err := resolver.Resolve(context.Background(), "abc123")
		require.NoError(t, err)
		assert.Equal(t, job, got)
		scraper.AssertExpectations(t)
	})

	t.Run("skips scraping on the unresolved sentinel", func(t *testing.T) {
		expander := new(mockExpander)
		scraper := new(mockScraper)
		resolver := NewScrapeResolver(expander, scraper)

		expander.On("Expand", mock.Anything, "abc123").Return("https://tinyurl.com/abc123")

		_, err := resolver.Resolve(context.Background(), "abc123")
		assert.ErrorIs(t, err, ErrNoJobData)
		scraper.AssertNotCalled(t, "Scrape", mock.Anything, mock.Anything)
	})

	t.Run("wraps scrape failure", func(t *testing.T) {
		expander := new(mockExpander)
		scraper := new(mockScraper)
		resolver := NewScrapeResolver(expander, scraper)

		expander.On("Expand", mock.Anything, "abc123").Return("https://example.com/jobs/1")
		scraper.On("Scrape", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		_, err := resolver.Resolve(context.Background(), "abc123")
		assert.ErrorIs(t, err, ErrNoJobData)
	})
}

type stubBucket struct {
	content string
	err     error
}

func (s stubBucket) ReadJobPost(context.Context, string) (string, error) {
	return s.content, s.err
}

func TestBucketResolver(t *testing.T) {
	t.Run("parses the three-line format", func(t *testing.T) {
		resolver := NewBucketResolver(stubBucket{content: "Backend Engineer\nAcme Inc.\nWrite Go services.\nShip them."})

		job, err := resolver.Resolve(context.Background(), "acme-backend")
		require.NoError(t, err)
		assert.Equal(t, "Backend Engineer", job.JobTitle)
		assert.Equal(t, "Acme Inc.", job.CompanyName)
		assert.Equal(t, "Write Go services.\nShip them.", job.JobDescription)
	})

	t.Run("blank lines fall back to sentinels", func(t *testing.T) {
		resolver := NewBucketResolver(stubBucket{content: "\n\nA description that exists."})

		job, err := resolver.Resolve(context.Background(), "x")
		require.NoError(t, err)
		assert.Equal(t, models.UnknownPosition, job.JobTitle)
		assert.Equal(t, models.UnknownCompany, job.CompanyName)
	})

	t.Run("too few lines", func(t *testing.T) {
		resolver := NewBucketResolver(stubBucket{content: "only\ntwo"})

		_, err := resolver.Resolve(context.Background(), "x")
		assert.ErrorIs(t, err, ErrNoJobData)
	})

	t.Run("read failure", func(t *testing.T) {
		resolver := NewBucketResolver(stubBucket{err: errors.New("object not found")})

		_, err := resolver.Resolve(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNoJobData)
	})
}
