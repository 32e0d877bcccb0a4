package jobcontext

import (
	"context"
	"fmt"
	"log"

	"github.com/chrisbarreras/resume-backend/models"
)

// LinkExpander expands a short-link identifier into a destination URL.
// Expand returns its own sentinel value on failure; Unresolved detects it.
type LinkExpander interface {
	Expand(ctx context.Context, shortID string) string
	Unresolved(shortID, result string) bool
}

// PageScraper extracts a job record from a listing page.
type PageScraper interface {
	Scrape(ctx context.Context, pageURL string) (*models.JobPostData, error)
}

// ScrapeResolver resolves identifiers by expanding the short link and
// scraping whatever it points at.
type ScrapeResolver struct {
	expander LinkExpander
	scraper  PageScraper
}

// NewScrapeResolver creates the short-link scraping strategy.
func NewScrapeResolver(expander LinkExpander, scraper PageScraper) *ScrapeResolver {
	return &ScrapeResolver{expander: expander, scraper: scraper}
}

// Resolve expands the short link and scrapes the destination. When the
// expander hands back the same string it was given, resolution failed and
// scraping is skipped.
func (r *ScrapeResolver) Resolve(ctx context.Context, jobPostID string) (*models.JobPostData, error) {
	destination := r.expander.Expand(ctx, jobPostID)
	if r.expander.Unresolved(jobPostID, destination) {
		log.Printf("[JobContext] Short link %s did not resolve, skipping scrape", jobPostID)
		return nil, ErrNoJobData
	}

	job, err := r.scraper.Scrape(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJobData, err)
	}
	return job, nil
}
