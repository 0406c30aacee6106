package service

import (
	"context"
	"errors"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
	"github.com/elinacho/lumiskin-backend/internal/app/repository"
	"github.com/elinacho/lumiskin-backend/pkg/logger"
)

var ErrCartItemNotFound = errors.New("cart item not found")

// CartNotifier receives the full cart state after every mutation. The
// websocket hub implements it; a nil notifier disables notifications.
type CartNotifier interface {
	Publish(sessionID string, cart *model.Cart)
}

type CartService interface {
	GetCart(sessionID string) *model.Cart
	AddItem(ctx context.Context, sessionID, productID string, quantity int) (*model.Cart, error)
	UpdateQuantity(sessionID, productID string, quantity int) (*model.Cart, error)
	RemoveItem(sessionID, productID string) (*model.Cart, error)
	ClearCart(sessionID string) *model.Cart
	ToggleCart(sessionID string) *model.Cart
}

type cartService struct {
	cartRepo       repository.CartRepository
	productService ProductService
	notifier       CartNotifier
}

func NewCartService(
	cartRepo repository.CartRepository,
	productService ProductService,
	notifier CartNotifier,
) CartService {
	return &cartService{
		cartRepo:       cartRepo,
		productService: productService,
		notifier:       notifier,
	}
}

func (s *cartService) GetCart(sessionID string) *model.Cart {
	return s.cartRepo.Get(sessionID)
}

// AddItem resolves the product (static catalog first, then Shopify) and adds
// it to the session's cart. Adding a product already in the cart increments
// its quantity; non-positive quantities are clamped to 1.
func (s *cartService) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*model.Cart, error) {
	logger.Info("Adding item to cart", map[string]interface{}{
		"session_id": sessionID,
		"product_id": productID,
		"quantity":   quantity,
	})

	product, err := s.productService.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			logger.Warn("Cannot add to cart: product not found", map[string]interface{}{
				"session_id": sessionID,
				"product_id": productID,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to resolve product for cart", err, map[string]interface{}{
			"session_id": sessionID,
			"product_id": productID,
		})
		return nil, err
	}

	cart := s.cartRepo.Get(sessionID)
	cart.AddItem(*product, quantity)
	s.cartRepo.Save(cart)
	s.notify(cart)

	logger.Info("Cart item added successfully", map[string]interface{}{
		"session_id": sessionID,
		"product_id": productID,
		"item_count": cart.ItemCount(),
	})
	return cart, nil
}

// UpdateQuantity sets a line's quantity directly. Zero or negative removes
// the line, matching the remove operation's contract.
func (s *cartService) UpdateQuantity(sessionID, productID string, quantity int) (*model.Cart, error) {
	logger.Info("Updating cart item quantity", map[string]interface{}{
		"session_id": sessionID,
		"product_id": productID,
		"quantity":   quantity,
	})

	cart := s.cartRepo.Get(sessionID)
	if !cart.UpdateQuantity(productID, quantity) {
		logger.Warn("Cart item not found for update", map[string]interface{}{
			"session_id": sessionID,
			"product_id": productID,
		})
		return nil, ErrCartItemNotFound
	}
	s.cartRepo.Save(cart)
	s.notify(cart)
	return cart, nil
}

func (s *cartService) RemoveItem(sessionID, productID string) (*model.Cart, error) {
	logger.Info("Removing cart item", map[string]interface{}{
		"session_id": sessionID,
		"product_id": productID,
	})

	cart := s.cartRepo.Get(sessionID)
	if !cart.RemoveItem(productID) {
		logger.Warn("Cart item not found for removal", map[string]interface{}{
			"session_id": sessionID,
			"product_id": productID,
		})
		return nil, ErrCartItemNotFound
	}
	s.cartRepo.Save(cart)
	s.notify(cart)
	return cart, nil
}

func (s *cartService) ClearCart(sessionID string) *model.Cart {
	logger.Info("Clearing cart", map[string]interface{}{
		"session_id": sessionID,
	})

	cart := s.cartRepo.Get(sessionID)
	cart.Items = []model.CartItem{}
	s.cartRepo.Save(cart)
	s.notify(cart)
	return cart
}

// ToggleCart flips the cart drawer's visibility flag. A UI concern, but the
// page layer depends on it living here.
func (s *cartService) ToggleCart(sessionID string) *model.Cart {
	cart := s.cartRepo.Get(sessionID)
	cart.IsOpen = !cart.IsOpen
	s.cartRepo.Save(cart)
	s.notify(cart)
	return cart
}

func (s *cartService) notify(cart *model.Cart) {
	if s.notifier != nil {
		s.notifier.Publish(cart.SessionID, cart)
	}
}
