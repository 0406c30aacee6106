package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const recentSearchLimit = 5

// RecentSearchRepository keeps the last few search terms per session in
// Redis, most-recent-first. Everything here is best-effort: a nil client or a
// Redis failure degrades to a no-op, never an error the caller must handle
// beyond logging.
type RecentSearchRepository interface {
	Add(ctx context.Context, sessionID, term string) error
	List(ctx context.Context, sessionID string) ([]string, error)
}

type recentSearchRepository struct {
	client *redis.Client
}

func NewRecentSearchRepository(client *redis.Client) RecentSearchRepository {
	return &recentSearchRepository{client: client}
}

func searchKey(sessionID string) string {
	return fmt.Sprintf("recent_searches:%s", sessionID)
}

// Add pushes a term to the front of the session's history, de-duplicating and
// trimming to the last five entries.
func (r *recentSearchRepository) Add(ctx context.Context, sessionID, term string) error {
	if r.client == nil || term == "" {
		return nil
	}

	key := searchKey(sessionID)
	pipe := r.client.TxPipeline()
	pipe.LRem(ctx, key, 0, term)
	pipe.LPush(ctx, key, term)
	pipe.LTrim(ctx, key, 0, recentSearchLimit-1)
	_, err := pipe.Exec(ctx)
	return err
}

// List returns the session's recent searches, most-recent-first. A missing
// key is an empty history, not an error.
func (r *recentSearchRepository) List(ctx context.Context, sessionID string) ([]string, error) {
	if r.client == nil {
		return []string{}, nil
	}

	terms, err := r.client.LRange(ctx, searchKey(sessionID), 0, recentSearchLimit-1).Result()
	if err == redis.Nil {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return terms, nil
}
