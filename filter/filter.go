// Package filter decides whether a user question is in scope before the
// language model is invoked. Filtering is disabled in production; the
// embedding-similarity gate is preserved as a re-enable option.
package filter

import (
	"context"
	"log"
	"math"
	"strings"

	"github.com/chrisbarreras/resume-backend/config"
	"github.com/chrisbarreras/resume-backend/profile"
)

// Embedder computes an embedding vector for a text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ContentFilter is the topicality gate.
type ContentFilter struct {
	mode      string
	threshold float64
	embedder  Embedder
	cache     *EmbeddingCache
}

// NewContentFilter creates a filter in the configured mode. The embedder may
// be nil in "off" mode.
func NewContentFilter(cfg *config.Config, embedder Embedder) *ContentFilter {
	return &ContentFilter{
		mode:      cfg.FilterMode,
		threshold: cfg.SimilarityThreshold,
		embedder:  embedder,
		cache:     NewEmbeddingCache(),
	}
}

// IsAboutChris reports whether the question is in scope.
//
// In "off" mode (the production default) every question passes; the system
// instruction alone keeps the model on topic. In "embedding" mode the
// decision cascades: empty questions allow (default pitch flow), an on-topic
// keyword hit allows, an off-topic keyword hit rejects, and only then are
// profile and question embeddings compared by cosine similarity. Embedding
// failure degrades to the keyword result, never a hard failure.
func (f *ContentFilter) IsAboutChris(ctx context.Context, question string) bool {
	if f.mode != config.FilterEmbedding {
		return true
	}

	question = strings.TrimSpace(question)
	if question == "" {
		return true
	}

	lower := strings.ToLower(question)
	if matchesAny(lower, profile.OnTopicKeywords) {
		return true
	}
	if matchesAny(lower, profile.OffTopicKeywords) {
		return false
	}

	profileVec, err := f.cachedEmbedding(ctx, profile.Text)
	if err != nil {
		log.Printf("[Filter] Embedding comparison unavailable, defaulting to keyword result: %v", err)
		return true
	}
	questionVec, err := f.cachedEmbedding(ctx, question)
	if err != nil {
		log.Printf("[Filter] Embedding comparison unavailable, defaulting to keyword result: %v", err)
		return true
	}

	similarity := CosineSimilarity(profileVec, questionVec)
	log.Printf("[Filter] Similarity %.3f (threshold %.2f)", similarity, f.threshold)
	return similarity >= f.threshold
}

func (f *ContentFilter) cachedEmbedding(ctx context.Context, text string) ([]float32, error) {
	if vec, ok := f.cache.Get(text); ok {
		return vec, nil
	}

	vec, err := f.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	f.cache.Put(text, vec)
	return vec, nil
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// CosineSimilarity computes dot(a,b) / (‖a‖·‖b‖) with the Euclidean norm.
// Mismatched lengths or zero vectors yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
