package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecentSearchRepository_NoClientIsNoOp(t *testing.T) {
	repo := NewRecentSearchRepository(nil)
	ctx := context.Background()

	// Without Redis the history is silently disabled
	assert.NoError(t, repo.Add(ctx, "session-1", "vitamin c"))

	terms, err := repo.List(ctx, "session-1")
	assert.NoError(t, err)
	assert.NotNil(t, terms)
	assert.Empty(t, terms)
}

func TestRecentSearchRepository_EmptyTermIsNoOp(t *testing.T) {
	repo := NewRecentSearchRepository(nil)
	assert.NoError(t, repo.Add(context.Background(), "session-1", ""))
}
