package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"

	"github.com/elinacho/lumiskin-backend/internal/app/service"
	apperrors "github.com/elinacho/lumiskin-backend/internal/errors"
	"github.com/elinacho/lumiskin-backend/internal/middleware"
	"github.com/elinacho/lumiskin-backend/internal/websocket"
)

type CartController struct {
	cartService service.CartService
	hub         *websocket.Hub
	upgrader    gorillaws.Upgrader
}

func NewCartController(cartService service.CartService, hub *websocket.Hub, allowedOrigins []string) *CartController {
	return &CartController{
		cartService: cartService,
		hub:         hub,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if allowed == "*" || allowed == origin {
						return true
					}
				}
				return false
			},
		},
	}
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart returns the session's cart with derived totals
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	cart := ctrl.cartService.GetCart(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"cart":       cart,
		"subtotal":   cart.Subtotal(),
		"item_count": cart.ItemCount(),
	})
}

// AddToCart adds a product to the session's cart
// POST /api/v1/cart
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sessionID, _ := middleware.GetSessionID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	cart, err := ctrl.cartService.AddItem(c.Request.Context(), sessionID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to add item to cart", err, map[string]interface{}{
			"session_id": sessionID,
			"product_id": req.ProductID,
		})
		apperrors.InternalError(c, "Failed to add item to cart")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"cart":       cart,
		"subtotal":   cart.Subtotal(),
		"item_count": cart.ItemCount(),
	})
}

// UpdateCartItem sets a line's quantity; zero removes the line
// PUT /api/v1/cart/items/:product_id
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sessionID, _ := middleware.GetSessionID(c)
	productID := c.Param("product_id")

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid update cart request", map[string]interface{}{
			"session_id": sessionID,
			"product_id": productID,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	cart, err := ctrl.cartService.UpdateQuantity(sessionID, productID, *req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			apperrors.NotFound(c, apperrors.CartItemNotFound, "Cart item not found")
			return
		}
		log.Error("Failed to update cart item", err, map[string]interface{}{
			"session_id": sessionID,
			"product_id": productID,
		})
		apperrors.InternalError(c, "Failed to update cart item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":       cart,
		"subtotal":   cart.Subtotal(),
		"item_count": cart.ItemCount(),
	})
}

// RemoveFromCart removes a line entirely
// DELETE /api/v1/cart/items/:product_id
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sessionID, _ := middleware.GetSessionID(c)
	productID := c.Param("product_id")

	cart, err := ctrl.cartService.RemoveItem(sessionID, productID)
	if err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			apperrors.NotFound(c, apperrors.CartItemNotFound, "Cart item not found")
			return
		}
		log.Error("Failed to remove cart item", err, map[string]interface{}{
			"session_id": sessionID,
			"product_id": productID,
		})
		apperrors.InternalError(c, "Failed to remove cart item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":       cart,
		"subtotal":   cart.Subtotal(),
		"item_count": cart.ItemCount(),
	})
}

// ClearCart empties the session's cart
// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	cart := ctrl.cartService.ClearCart(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"cart":       cart,
		"subtotal":   cart.Subtotal(),
		"item_count": cart.ItemCount(),
	})
}

// ToggleCart flips the cart drawer visibility flag
// POST /api/v1/cart/toggle
func (ctrl *CartController) ToggleCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	cart := ctrl.cartService.ToggleCart(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"is_open": cart.IsOpen,
	})
}

// CartFeed upgrades to a websocket pushing cart updates for this session
// GET /api/v1/cart/feed
func (ctrl *CartController) CartFeed(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Missing session")
		return
	}

	conn, err := ctrl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("Failed to upgrade cart feed connection", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return
	}

	client := websocket.NewClient(ctrl.hub, conn, sessionID)
	go client.WritePump()
	go client.ReadPump()
}
