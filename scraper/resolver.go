package scraper

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/chrisbarreras/resume-backend/utils"
)

// ShortLinkResolver expands short-link identifiers into destination URLs by
// reading the redirect Location header, without following the redirect.
type ShortLinkResolver struct {
	host   string
	client *http.Client
}

// NewShortLinkResolver creates a resolver for the given short-link host,
// e.g. "https://tinyurl.com".
func NewShortLinkResolver(host string, timeout time.Duration) *ShortLinkResolver {
	return &ShortLinkResolver{
		host:   host,
		client: utils.NewNoRedirectClient(timeout),
	}
}

// ShortURL returns the constructed short URL for an identifier. Expand
// returns this exact string when resolution fails, so callers can use it as
// the unresolved sentinel.
func (r *ShortLinkResolver) ShortURL(shortID string) string {
	return r.host + "/" + shortID
}

// Unresolved reports whether an Expand result is the unresolved sentinel.
func (r *ShortLinkResolver) Unresolved(shortID, result string) bool {
	return result == r.ShortURL(shortID)
}

// Expand issues a GET for the short URL with redirects disabled and returns
// the Location header of a redirect response. A success status with no
// Location header means the input was likely not a valid short link; the
// short URL itself comes back unchanged.
func (r *ShortLinkResolver) Expand(ctx context.Context, shortID string) string {
	shortURL := r.ShortURL(shortID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, shortURL, nil)
	if err != nil {
		log.Printf("[Resolver] Failed to build request for %s: %v", shortURL, err)
		return shortURL
	}

	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("[Resolver] Failed to expand %s: %v", shortURL, err)
		return shortURL
	}
	defer resp.Body.Close()

	if location := resp.Header.Get("Location"); location != "" {
		return location
	}

	log.Printf("[Resolver] No redirect for %s (status %d), treating as unresolved", shortURL, resp.StatusCode)
	return shortURL
}
