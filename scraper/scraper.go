// Package scraper extracts structured job-posting fields from listing pages.
// Extraction is best effort: a cascade of site-specific strategies with a
// generic fallback, all of which degrade to sentinel values rather than
// failing the chat flow.
package scraper

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/chrisbarreras/resume-backend/models"
	"github.com/chrisbarreras/resume-backend/utils"
)

const (
	maxBodyBytes       = 5 * 1024 * 1024
	maxDescriptionLen  = 2000
	maxRequirementsLen = 1000
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// extracted holds the raw per-field output of one strategy before
// normalization.
type extracted struct {
	company     string
	title       string
	description string
}

// Scraper fetches a job-posting page and runs the extraction cascade.
type Scraper struct {
	client *http.Client
	debug  bool
}

// NewScraper creates a scraper with the given fetch timeout.
func NewScraper(timeout time.Duration, debug bool) *Scraper {
	return &Scraper{
		client: utils.NewHTTPClient(timeout),
		debug:  debug,
	}
}

// Scrape fetches the page and returns the extracted job record, or an error
// when the page is unreachable or carries no extractable content at all.
// Callers treat any error as "no job context available".
func (s *Scraper) Scrape(ctx context.Context, pageURL string) (*models.JobPostData, error) {
	doc, err := s.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	if s.debug {
		logPageStructure(doc)
	}

	host := hostnameOf(pageURL)

	var result *extracted
	siteSpecific := true

	switch {
	case strings.Contains(host, "linkedin.com"):
		result = scrapeLinkedIn(doc)
	case strings.Contains(host, "indeed.com"):
		result = scrapeIndeed(doc)
	case strings.Contains(host, "myworkdayjobs.com"):
		result = scrapeWorkday(doc, pageURL)
	default:
		result = scrapeGeneric(doc, pageURL)
		siteSpecific = false
	}

	// A site-specific pass can come back thin when the board changed its
	// markup. Run the generic pass as well and keep whichever scores higher.
	if siteSpecific {
		generic := scrapeGeneric(doc, pageURL)
		if completenessScore(generic) > completenessScore(result) {
			log.Printf("[Scraper] Generic extraction outscored site-specific for %s", host)
			result = generic
		}
	}

	if result == nil || (result.company == "" && result.title == "" && result.description == "") {
		return nil, fmt.Errorf("no extractable content at %s", pageURL)
	}

	return buildJobPost(result, pageURL), nil
}

func (s *Scraper) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	utils.BrowserHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return doc, nil
}

// buildJobPost normalizes an extraction result into the immutable record the
// prompt builder consumes.
func buildJobPost(e *extracted, originalURL string) *models.JobPostData {
	company := collapseWhitespace(e.company)
	title := collapseWhitespace(e.title)
	description := truncate(collapseWhitespace(e.description), maxDescriptionLen)

	if company == "" {
		company = models.UnknownCompany
	}
	if title == "" {
		title = models.UnknownPosition
	}

	return &models.JobPostData{
		CompanyName:    company,
		JobTitle:       title,
		JobDescription: description,
		Requirements:   extractRequirements(description),
		OriginalURL:    originalURL,
	}
}

var requirementOpeners = []string{
	"requirements", "qualifications", "skills", "experience", "must have", "preferred",
}

var requirementClosers = []string{
	"responsibilities", "duties", "benefits",
}

// extractRequirements slices a requirements section out of the description:
// from the earliest section-header keyword to the earliest closing keyword
// after it, capped at 1000 characters.
func extractRequirements(description string) string {
	lower := strings.ToLower(description)

	start := -1
	for _, kw := range requirementOpeners {
		if idx := strings.Index(lower, kw); idx != -1 && (start == -1 || idx < start) {
			start = idx
		}
	}
	if start == -1 {
		return ""
	}

	end := len(description)
	for _, kw := range requirementClosers {
		if idx := strings.Index(lower[start:], kw); idx > 0 && start+idx < end {
			end = start + idx
		}
	}

	return truncate(strings.TrimSpace(description[start:end]), maxRequirementsLen)
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func hostnameOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// firstText returns the first non-empty trimmed text among the selectors.
func firstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func logPageStructure(doc *goquery.Document) {
	var h1s, h2s []string
	doc.Find("h1").Each(func(_ int, s *goquery.Selection) {
		h1s = append(h1s, strings.TrimSpace(s.Text()))
	})
	doc.Find("h2").Each(func(_ int, s *goquery.Selection) {
		h2s = append(h2s, strings.TrimSpace(s.Text()))
	})
	log.Printf("[Scraper] Page structure: title=%q h1=%v h2=%v",
		strings.TrimSpace(doc.Find("title").Text()), h1s, h2s)
}
