package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Generic fallback strategy: ordered selector lists covering common
// job-board conventions, then URL- and <title>-derived fallbacks.

var genericCompanySelectors = []string{
	"[itemprop='hiringOrganization']",
	".company-name",
	".companyName",
	".posting-categories .company",
	".employer-name",
	"[data-testid='company-name']",
}

var genericTitleSelectors = []string{
	"h1.job-title",
	"h1[itemprop='title']",
	".posting-headline h2", // lever
	".app-title",           // greenhouse
	"[data-testid='job-title']",
	"h1",
}

var genericDescriptionSelectors = []string{
	"[itemprop='description']",
	".job-description",
	"#job-description",
	"#jobDescriptionText",
	".posting-description",
	"section.description",
	"main",
	".content",
	"article",
	"body",
}

func scrapeGeneric(doc *goquery.Document, pageURL string) *extracted {
	company := firstText(doc, genericCompanySelectors...)
	if company == "" {
		company = companyFromHeadings(doc)
	}
	if company == "" {
		if content, ok := doc.Find("meta[property='og:site_name']").Attr("content"); ok {
			company = strings.TrimSpace(content)
		}
	}
	if company == "" {
		company = companyFromHostname(pageURL)
	}

	title := firstText(doc, genericTitleSelectors...)
	if title == "" {
		title = titleFromTitleTag(doc)
	}
	if title == "" {
		title = workdayTitleFromURL(pageURL) // slug heuristic works for any board
	}

	description := firstText(doc, genericDescriptionSelectors...)

	return &extracted{company: company, title: title, description: description}
}

// companyFromHeadings scans h1-h3 for a heading that names the employer.
func companyFromHeadings(doc *goquery.Document) string {
	var found string
	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.ToLower(s.Text())
		if strings.Contains(text, "company") || strings.Contains(text, "employer") {
			found = strings.TrimSpace(s.Text())
			return false
		}
		return true
	})
	return found
}

// companyFromHostname recognizes career-site subdomain conventions like
// careers.acme.com and jobs.acme.io.
func companyFromHostname(pageURL string) string {
	host := hostnameOf(pageURL)
	labels := strings.Split(host, ".")
	if len(labels) < 3 {
		return ""
	}
	switch labels[0] {
	case "careers", "jobs", "apply", "work":
		return formatJobTitle(labels[1])
	}
	return ""
}

// titleFromTitleTag splits the page <title> on common separators and takes
// the leading segment.
func titleFromTitleTag(doc *goquery.Document) string {
	text := strings.TrimSpace(doc.Find("title").Text())
	if text == "" {
		return ""
	}
	for _, sep := range []string{" - ", " | ", " – " /* en dash */} {
		if idx := strings.Index(text, sep); idx != -1 {
			return strings.TrimSpace(text[:idx])
		}
	}
	return text
}

// completenessScore ranks an extraction result so the cascade can choose
// between a thin site-specific hit and the generic pass. Weights: usable
// company +3, usable title +3, description over 100 chars +2, requirements
// section over 50 chars +1.
func completenessScore(e *extracted) int {
	if e == nil {
		return 0
	}

	score := 0
	if usableField(e.company, "unknown company") {
		score += 3
	}
	if usableField(e.title, "unknown position") {
		score += 3
	}
	if len(collapseWhitespace(e.description)) > 100 {
		score += 2
	}
	if len(extractRequirements(e.description)) > 50 {
		score++
	}
	return score
}

func usableField(value, sentinel string) bool {
	v := strings.ToLower(collapseWhitespace(value))
	return v != "" && v != sentinel && v != "unknown"
}
