package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/chrisbarreras/resume-backend/config"
)

const rateLimitCollection = "rateLimits"

// rateLimitRecord is the stored fixed-window counter for one key.
type rateLimitRecord struct {
	RequestCount int       `firestore:"requestCount"`
	ResetAt      time.Time `firestore:"windowResetTimestamp"`
}

// FirestoreCounters is the production CounterStore. Each Hit runs in a
// Firestore transaction, which gives atomic read-modify-write across all
// serving instances; a plain in-process map cannot, because the environment
// runs concurrent instances with no shared memory.
type FirestoreCounters struct {
	client *firestore.Client
}

// NewFirestoreCounters creates the counter store.
func NewFirestoreCounters(ctx context.Context, cfg *config.Config) (*FirestoreCounters, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return &FirestoreCounters{client: client}, nil
}

// Close closes the Firestore client.
func (f *FirestoreCounters) Close() error {
	return f.client.Close()
}

// Hit reads or initializes the counter for key, resets it when its window has
// expired, rejects at the ceiling, and otherwise increments, all inside one
// transaction.
func (f *FirestoreCounters) Hit(ctx context.Context, key string, window time.Duration, ceiling int) (bool, int, error) {
	ref := f.client.Collection(rateLimitCollection).Doc(key)

	var allowed bool
	var remaining int

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		now := time.Now()

		doc, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return fmt.Errorf("failed to read counter: %w", err)
		}

		var rec rateLimitRecord
		if err == nil {
			if err := doc.DataTo(&rec); err != nil {
				return fmt.Errorf("failed to parse counter record: %w", err)
			}
		}

		if doc == nil || !doc.Exists() || now.After(rec.ResetAt) {
			rec = rateLimitRecord{RequestCount: 1, ResetAt: now.Add(window)}
			allowed = true
			remaining = ceiling - 1
			return tx.Set(ref, rec)
		}

		if rec.RequestCount >= ceiling {
			allowed = false
			remaining = 0
			return nil
		}

		rec.RequestCount++
		allowed = true
		remaining = ceiling - rec.RequestCount
		return tx.Set(ref, rec)
	})
	if err != nil {
		return false, 0, err
	}

	return allowed, remaining, nil
}

// Peek returns the remaining quota for key without consuming a request.
func (f *FirestoreCounters) Peek(ctx context.Context, key string, ceiling int) (int, error) {
	doc, err := f.client.Collection(rateLimitCollection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ceiling, nil
		}
		return 0, fmt.Errorf("failed to read counter: %w", err)
	}

	var rec rateLimitRecord
	if err := doc.DataTo(&rec); err != nil {
		return 0, fmt.Errorf("failed to parse counter record: %w", err)
	}

	if time.Now().After(rec.ResetAt) {
		return ceiling, nil
	}
	remaining := ceiling - rec.RequestCount
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
