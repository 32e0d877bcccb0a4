// Package gemini wraps the hosted generative-language model used for answer
// generation and, when the embedding filter is enabled, text embeddings.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/chrisbarreras/resume-backend/config"
	"github.com/chrisbarreras/resume-backend/models"
)

// Client wraps the Gemini API client.
type Client struct {
	client         *genai.Client
	model          *genai.GenerativeModel
	embeddingModel string
}

// NewClient creates a Gemini client authenticated with the resolved API key.
// Sampling parameters are tuned for concise, repeatable answers; output is
// bounded to control latency and cost.
func NewClient(ctx context.Context, cfg *config.Config, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	model.SetTemperature(0.4)
	model.SetTopP(0.8)
	model.SetTopK(40)
	model.SetMaxOutputTokens(1024)

	return &Client{
		client:         client,
		model:          model,
		embeddingModel: cfg.EmbeddingModel,
	}, nil
}

// Close closes the underlying client.
func (c *Client) Close() error {
	return c.client.Close()
}

// GenerateAnswer builds the layered prompt and invokes the model. jobData may
// be nil; the prompt then falls back to the generic pitch directive.
func (c *Client) GenerateAnswer(ctx context.Context, userMessage string, jobData *models.JobPostData) (string, error) {
	prompt := buildPrompt(userMessage, jobData)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	answer := extractText(resp)
	if answer == "" {
		return "", fmt.Errorf("no response from Gemini")
	}
	return answer, nil
}

// Embed returns the embedding vector for a text.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	em := c.client.EmbeddingModel(c.embeddingModel)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if res.Embedding == nil {
		return nil, fmt.Errorf("empty embedding response")
	}
	return res.Embedding.Values, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
