package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
	"github.com/elinacho/lumiskin-backend/internal/app/repository"
	"github.com/elinacho/lumiskin-backend/pkg/shopify"
)

// recordingNotifier captures every cart publication for assertions.
type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) Publish(sessionID string, cart *model.Cart) {
	n.events = append(n.events, sessionID)
}

func setupCartServiceTest(t *testing.T) (CartService, *recordingNotifier) {
	catalogRepo := repository.NewCatalogRepository(repository.SeedCatalog())
	searchRepo := repository.NewRecentSearchRepository(nil)
	productService := NewProductService(catalogRepo, searchRepo, shopify.NewClient(shopify.Config{}))

	notifier := &recordingNotifier{}
	cartService := NewCartService(repository.NewCartRepository(), productService, notifier)
	return cartService, notifier
}

func TestCartService_GetCart_Empty(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)

	cart := cartService.GetCart("session-1")
	require.NotNil(t, cart)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.ItemCount())
}

func TestCartService_AddItem_Success(t *testing.T) {
	cartService, notifier := setupCartServiceTest(t)

	cart, err := cartService.AddItem(context.Background(), "session-1", "gentle-foaming-cleanser", 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "Gentle Foaming Cleanser", cart.Items[0].Product.Name)

	// Observers hear about every mutation
	assert.Equal(t, []string{"session-1"}, notifier.events)
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	cartService, notifier := setupCartServiceTest(t)

	cart, err := cartService.AddItem(context.Background(), "session-1", "no-such-product", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, cart)
	assert.Empty(t, notifier.events)
}

func TestCartService_AddItem_ExistingLineIncrements(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, "session-1", "gentle-foaming-cleanser", 2)
	require.NoError(t, err)

	cart, err := cartService.AddItem(ctx, "session-1", "gentle-foaming-cleanser", 3)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartService_AddItem_ClampsQuantity(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)

	cart, err := cartService.AddItem(context.Background(), "session-1", "gentle-foaming-cleanser", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, "session-1", "gentle-foaming-cleanser", 2)
	require.NoError(t, err)

	cart, err := cartService.UpdateQuantity("session-1", "gentle-foaming-cleanser", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestCartService_UpdateQuantity_ZeroRemoves(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, "session-1", "gentle-foaming-cleanser", 2)
	require.NoError(t, err)

	cart, err := cartService.UpdateQuantity("session-1", "gentle-foaming-cleanser", 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_UpdateQuantity_NotFound(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)

	_, err := cartService.UpdateQuantity("session-1", "missing", 2)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, "session-1", "gentle-foaming-cleanser", 2)
	require.NoError(t, err)

	cart, err := cartService.RemoveItem("session-1", "gentle-foaming-cleanser")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = cartService.RemoveItem("session-1", "gentle-foaming-cleanser")
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartService_ClearCart(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, "session-1", "gentle-foaming-cleanser", 2)
	require.NoError(t, err)
	_, err = cartService.AddItem(ctx, "session-1", "vitamin-c-brightening-serum", 1)
	require.NoError(t, err)

	cart := cartService.ClearCart("session-1")
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.ItemCount())
}

func TestCartService_ToggleCart(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)

	cart := cartService.ToggleCart("session-1")
	assert.True(t, cart.IsOpen)

	cart = cartService.ToggleCart("session-1")
	assert.False(t, cart.IsOpen)
}

func TestCartService_SubtotalTracksMutations(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)
	ctx := context.Background()

	cart, err := cartService.AddItem(ctx, "session-1", "gentle-foaming-cleanser", 2)
	require.NoError(t, err)
	afterAdd := cart.Subtotal().Amount
	assert.Greater(t, afterAdd, 0.0)

	cart, err = cartService.UpdateQuantity("session-1", "gentle-foaming-cleanser", 1)
	require.NoError(t, err)
	assert.InDelta(t, afterAdd/2, cart.Subtotal().Amount, 0.0001)
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	cartService, _ := setupCartServiceTest(t)

	_, err := cartService.AddItem(context.Background(), "session-a", "gentle-foaming-cleanser", 1)
	require.NoError(t, err)

	assert.Empty(t, cartService.GetCart("session-b").Items)
	assert.Len(t, cartService.GetCart("session-a").Items, 1)
}
