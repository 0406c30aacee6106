package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
)

func TestCartRepository_GetCreatesEmptyCart(t *testing.T) {
	repo := NewCartRepository()

	cart := repo.Get("session-1")
	require.NotNil(t, cart)
	assert.Equal(t, "session-1", cart.SessionID)
	assert.Empty(t, cart.Items)
	assert.False(t, cart.IsOpen)
}

func TestCartRepository_SaveAndGet(t *testing.T) {
	repo := NewCartRepository()

	cart := repo.Get("session-1")
	cart.AddItem(model.Product{ID: "p1", Price: model.Money{Amount: 12.00, CurrencyCode: "USD"}}, 2)
	repo.Save(cart)

	loaded := repo.Get("session-1")
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
	assert.False(t, loaded.UpdatedAt.IsZero())
}

func TestCartRepository_GetReturnsCopy(t *testing.T) {
	repo := NewCartRepository()

	cart := repo.Get("session-1")
	cart.AddItem(model.Product{ID: "p1"}, 1)
	repo.Save(cart)

	// Mutating the returned cart must not touch the stored one
	loaded := repo.Get("session-1")
	loaded.Items[0].Quantity = 99

	fresh := repo.Get("session-1")
	assert.Equal(t, 1, fresh.Items[0].Quantity)
}

func TestCartRepository_SessionsAreIsolated(t *testing.T) {
	repo := NewCartRepository()

	cartA := repo.Get("session-a")
	cartA.AddItem(model.Product{ID: "p1"}, 1)
	repo.Save(cartA)

	cartB := repo.Get("session-b")
	assert.Empty(t, cartB.Items)
}

func TestCartRepository_Delete(t *testing.T) {
	repo := NewCartRepository()

	cart := repo.Get("session-1")
	cart.AddItem(model.Product{ID: "p1"}, 1)
	repo.Save(cart)

	repo.Delete("session-1")

	fresh := repo.Get("session-1")
	assert.Empty(t, fresh.Items)
}
