package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/chrisbarreras/resume-backend/jobcontext"
	"github.com/chrisbarreras/resume-backend/models"
)

// Explicit logging decorators, one per collaborator interface. Each records
// stage, duration, and outcome for every call so the request pipeline is
// observable without the collaborators knowing about logging.

type loggingResolver struct {
	inner jobcontext.Resolver
}

func withResolverLogging(inner jobcontext.Resolver) jobcontext.Resolver {
	if inner == nil {
		return nil
	}
	return &loggingResolver{inner: inner}
}

func (l *loggingResolver) Resolve(ctx context.Context, jobPostID string) (*models.JobPostData, error) {
	start := time.Now()
	jobData, err := l.inner.Resolve(ctx, jobPostID)

	attrs := []any{
		slog.String("stage", "resolve_job"),
		slog.String("jobPostId", jobPostID),
		slog.Duration("duration", time.Since(start)),
	}
	if err != nil {
		slog.Warn("job resolution failed", append(attrs, slog.Any("error", err))...)
		return nil, err
	}
	slog.Info("job resolved", append(attrs,
		slog.String("company", jobData.CompanyName),
		slog.String("title", jobData.JobTitle))...)
	return jobData, nil
}

type loggingGenerator struct {
	inner AnswerGenerator
}

func withGeneratorLogging(inner AnswerGenerator) AnswerGenerator {
	if inner == nil {
		return nil
	}
	return &loggingGenerator{inner: inner}
}

func (l *loggingGenerator) GenerateAnswer(ctx context.Context, userMessage string, jobData *models.JobPostData) (string, error) {
	start := time.Now()
	answer, err := l.inner.GenerateAnswer(ctx, userMessage, jobData)

	attrs := []any{
		slog.String("stage", "generate"),
		slog.Bool("hasJobData", jobData != nil),
		slog.Duration("duration", time.Since(start)),
	}
	if err != nil {
		slog.Error("generation failed", append(attrs, slog.Any("error", err))...)
		return "", err
	}
	slog.Info("answer generated", append(attrs, slog.Int("answerLength", len(answer)))...)
	return answer, nil
}
