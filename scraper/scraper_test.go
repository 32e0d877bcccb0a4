package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisbarreras/resume-backend/models"
)

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

const linkedInFixture = `<html><body>
<a data-tracking-control-name="job-details-job-info-company-name"><h4>Acme Corp</h4></a>
<h1 class="jobs-unified-top-card__job-title">Backend Engineer</h1>
<div class="jobs-description-content__text">
  Build services in Go. Requirements: 3 years of experience with distributed systems.
  Responsibilities: ship code.
</div>
</body></html>`

const indeedFixture = `<html><body>
<div data-testid="inlineHeader-companyName"><a>Initech</a></div>
<h1 data-testid="jobsearch-JobInfoHeader-title">Software Developer</h1>
<div data-testid="jobsearch-jobDescriptionText">Work on TPS reports and internal tooling every day.</div>
</body></html>`

func TestScrapeLinkedInFixture(t *testing.T) {
	result := scrapeLinkedIn(docFrom(t, linkedInFixture))

	assert.Equal(t, "Acme Corp", result.company)
	assert.Equal(t, "Backend Engineer", result.title)
	assert.Contains(t, result.description, "Build services in Go")
}

func TestScrapeIndeedFixture(t *testing.T) {
	result := scrapeIndeed(docFrom(t, indeedFixture))

	assert.Equal(t, "Initech", result.company)
	assert.Equal(t, "Software Developer", result.title)
	assert.Contains(t, result.description, "TPS reports")
}

func TestExtractRequirements(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{
			name:        "sliced between opener and closer",
			description: "About us. Requirements: Go and SQL. Responsibilities: shipping.",
			want:        "Requirements: Go and SQL.",
		},
		{
			name:        "earliest opener wins",
			description: "Experience with Go needed. Qualifications: none. Benefits: snacks.",
			want:        "Experience with Go needed. Qualifications: none.",
		},
		{
			name:        "no opener",
			description: "We are a fun team doing fun things.",
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractRequirements(tt.description))
		})
	}
}

func TestExtractRequirementsCapsLength(t *testing.T) {
	description := "Requirements: " + strings.Repeat("a", 2000)
	got := extractRequirements(description)
	assert.LessOrEqual(t, len(got), maxRequirementsLen)
}

func TestBuildJobPostNormalization(t *testing.T) {
	job := buildJobPost(&extracted{
		company:     "  Acme \n\t Corp  ",
		title:       "",
		description: strings.Repeat("word ", 600),
	}, "https://example.com/job")

	assert.Equal(t, "Acme Corp", job.CompanyName)
	assert.Equal(t, models.UnknownPosition, job.JobTitle)
	assert.LessOrEqual(t, len(job.JobDescription), maxDescriptionLen)
	assert.Equal(t, "https://example.com/job", job.OriginalURL)
}

func TestScrapeGenericPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Staff Engineer - Hooli</title></head><body>
<div class="company-name">Hooli</div>
<h1>Staff Engineer</h1>
<main>Join our platform team. Requirements: ten years of everything. Benefits: Nucleus access.</main>
</body></html>`))
	}))
	defer server.Close()

	s := NewScraper(5*time.Second, false)
	job, err := s.Scrape(context.Background(), server.URL+"/jobs/staff-engineer")
	require.NoError(t, err)

	assert.Equal(t, "Hooli", job.CompanyName)
	assert.Equal(t, "Staff Engineer", job.JobTitle)
	assert.Contains(t, job.JobDescription, "platform team")
	assert.Contains(t, job.Requirements, "ten years")
}

func TestScrapeSentinelFilledRecord(t *testing.T) {
	// No recognizable company or title selectors, but body text exists.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>Some page with plain content only.</p></body></html>`))
	}))
	defer server.Close()

	s := NewScraper(5*time.Second, false)
	job, err := s.Scrape(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, models.UnknownCompany, job.CompanyName)
	assert.Contains(t, job.JobDescription, "plain content")
}

func TestScrapeFailures(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		s := NewScraper(5*time.Second, false)
		_, err := s.Scrape(context.Background(), server.URL)
		assert.Error(t, err)
	})

	t.Run("no extractable content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html><head><title></title></head><body></body></html>`))
		}))
		defer server.Close()

		s := NewScraper(5*time.Second, false)
		_, err := s.Scrape(context.Background(), server.URL)
		assert.Error(t, err)
	})
}

func TestShortLinkResolver(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/good":
			w.Header().Set("Location", "https://example.com/jobs/123")
			w.WriteHeader(http.StatusFound)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	r := NewShortLinkResolver(server.URL, 5*time.Second)
	ctx := context.Background()

	t.Run("redirect location wins", func(t *testing.T) {
		result := r.Expand(ctx, "good")
		assert.Equal(t, "https://example.com/jobs/123", result)
		assert.False(t, r.Unresolved("good", result))
	})

	t.Run("success without location is the unresolved sentinel", func(t *testing.T) {
		result := r.Expand(ctx, "bad")
		assert.Equal(t, r.ShortURL("bad"), result)
		assert.True(t, r.Unresolved("bad", result))
	})
}
