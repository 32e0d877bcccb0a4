package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chrisbarreras/resume-backend/jobcontext"
	"github.com/chrisbarreras/resume-backend/models"
	"github.com/chrisbarreras/resume-backend/profile"
	"github.com/chrisbarreras/resume-backend/validation"
)

// AnswerGenerator produces the chat answer, optionally grounded in job data.
type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, userMessage string, jobData *models.JobPostData) (string, error)
}

// TopicFilter gates questions before generation.
type TopicFilter interface {
	IsAboutChris(ctx context.Context, question string) bool
}

// RateLimiter gates requests by client identifier.
type RateLimiter interface {
	Allow(ctx context.Context, clientID string) bool
}

// Policy carries the deployment-level choices the pipeline applies.
type Policy struct {
	// RefusalStatusOK returns refusals as 200 with the canned sentence
	// instead of 400.
	RefusalStatusOK bool
	// MinJobDescriptionLength is the validity floor for scraped job data.
	MinJobDescriptionLength int
}

// FitAnswerHandler sequences the chat pipeline: rate limit, validate,
// best-effort job resolution, content filter, generation. Collaborators are
// injected once at startup; the handler itself holds no mutable state.
type FitAnswerHandler struct {
	limiter   RateLimiter
	validator *validation.Validator
	jobs      jobcontext.Resolver
	filter    TopicFilter
	generator AnswerGenerator
	policy    Policy
}

// NewFitAnswerHandler wires the pipeline.
func NewFitAnswerHandler(
	limiter RateLimiter,
	validator *validation.Validator,
	jobs jobcontext.Resolver,
	filter TopicFilter,
	generator AnswerGenerator,
	policy Policy,
) *FitAnswerHandler {
	return &FitAnswerHandler{
		limiter:   limiter,
		validator: validator,
		jobs:      withResolverLogging(jobs),
		filter:    filter,
		generator: withGeneratorLogging(generator),
		policy:    policy,
	}
}

// GetFitAnswer answers a question about Chris, optionally tailored to a job posting
// @Summary Get a fit answer
// @Description Generates an AI answer about Chris Barreras. When a jobPostId is supplied the answer is tailored to the resolved job posting; resolution failures silently fall back to the generic pitch.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body models.FitAnswerRequest true "Chat request"
// @Success 200 {object} models.FitAnswerResponse "Generated answer"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Generation failed"
// @Router /getFitAnswer [post]
func (h *FitAnswerHandler) GetFitAnswer(c *gin.Context) {
	ctx := c.Request.Context()
	clientIP := c.ClientIP()

	log.Printf("[Handler] Received request: origin=%q method=%s clientIP=%s",
		c.GetHeader("Origin"), c.Request.Method, clientIP)

	if !h.limiter.Allow(ctx, clientIP) {
		c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Error: "Too many requests. Try again later.",
			Code:  http.StatusTooManyRequests,
		})
		return
	}

	var req models.FitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Request body is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	if result := h.validator.Validate(&req); !result.IsValid {
		log.Printf("[Handler] Invalid request from %s: %s", clientIP, result.Message)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: result.Message,
			Code:  http.StatusBadRequest,
		})
		return
	}

	jobData := h.resolveJobData(ctx, req.JobPostID)

	if !h.filter.IsAboutChris(ctx, req.Message) {
		h.refuse(c)
		return
	}

	answer, err := h.generator.GenerateAnswer(ctx, req.Message, jobData)
	if err != nil {
		// Full provider detail stays server-side.
		log.Printf("[Handler] Generation failed for %s: %v", clientIP, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Could not get a response from Gemini",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	resp := models.FitAnswerResponse{Answer: answer}
	if jobData != nil {
		resp.CompanyName = jobData.CompanyName
	}
	c.JSON(http.StatusOK, resp)
}

// resolveJobData is best effort: any resolution or scrape failure, and any
// record that fails the validity gate, degrades to "no job context".
func (h *FitAnswerHandler) resolveJobData(ctx context.Context, jobPostID string) *models.JobPostData {
	if jobPostID == "" {
		return nil
	}

	jobData, err := h.jobs.Resolve(ctx, jobPostID)
	if err != nil {
		log.Printf("[Handler] Job post %s unavailable, falling back to default pitch: %v", jobPostID, err)
		return nil
	}

	if !jobData.IsUsable(h.policy.MinJobDescriptionLength) {
		log.Printf("[Handler] Job post %s incomplete (company=%q title=%q), falling back to default pitch",
			jobPostID, jobData.CompanyName, jobData.JobTitle)
		return nil
	}

	return jobData
}

func (h *FitAnswerHandler) refuse(c *gin.Context) {
	if h.policy.RefusalStatusOK {
		c.JSON(http.StatusOK, models.FitAnswerResponse{Answer: profile.RefusalSentence})
		return
	}
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: profile.RefusalSentence,
		Code:  http.StatusBadRequest,
	})
}
