package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elinacho/lumiskin-backend/internal/app/service"
	apperrors "github.com/elinacho/lumiskin-backend/internal/errors"
	"github.com/elinacho/lumiskin-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type SignupRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup creates a mock account and opens a session
// POST /api/v1/auth/signup
func (ctrl *AuthController) Signup(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid signup request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid signup data")
		return
	}

	user, token, err := ctrl.authService.Signup(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			apperrors.Conflict(c, apperrors.AuthEmailTaken, "An account with this email already exists")
			return
		}
		log.Error("Signup failed", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.InternalError(c, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

// Login verifies credentials and opens a session
// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid login data")
		return
	}

	user, token, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthBadCredentials, "Invalid email or password")
			return
		}
		log.Error("Login failed", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.InternalError(c, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// Logout revokes the current session token
// POST /api/v1/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	token := middleware.GetSessionToken(c)
	if err := ctrl.authService.Logout(c.Request.Context(), token); err != nil {
		// Revocation is best-effort; the client drops the token either way.
		middleware.GetLoggerFromContext(c).Warn("Session revocation failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

// GetMe returns the authenticated user's profile
// GET /api/v1/auth/me
func (ctrl *AuthController) GetMe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	user, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		apperrors.NotFound(c, apperrors.AuthUnauthorized, "Account not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetOrders returns the authenticated user's mock order history
// GET /api/v1/auth/me/orders
func (ctrl *AuthController) GetOrders(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	orders, err := ctrl.authService.GetOrders(userID)
	if err != nil {
		apperrors.NotFound(c, apperrors.AuthUnauthorized, "Account not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// ExportOrders streams the order history as an xlsx workbook
// GET /api/v1/auth/me/orders/export
func (ctrl *AuthController) ExportOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	file, err := ctrl.authService.ExportOrders(userID)
	if err != nil {
		log.Error("Failed to export orders", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "Failed to export orders")
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		log.Error("Failed to stream orders export", err, map[string]interface{}{
			"user_id": userID,
		})
	}
}
