package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elinacho/lumiskin-backend/internal/app/repository"
	"github.com/elinacho/lumiskin-backend/internal/app/service"
	"github.com/elinacho/lumiskin-backend/internal/middleware"
	"github.com/elinacho/lumiskin-backend/pkg/util"
)

const authControllerTestSecret = "auth-controller-test-secret"

func setupAuthControllerTest(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	demoHash, err := util.HashPassword("lumiskin-demo")
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(repository.SeedUsers(demoHash))
	authService := service.NewAuthService(userRepo, authControllerTestSecret, 24*time.Hour)
	authController := NewAuthController(authService)
	authMiddleware := middleware.NewAuthMiddleware(authControllerTestSecret)

	router := gin.New()
	router.POST("/auth/signup", authController.Signup)
	router.POST("/auth/login", authController.Login)
	router.POST("/auth/logout", authMiddleware.Authenticate(), authController.Logout)
	router.GET("/auth/me", authMiddleware.Authenticate(), authController.GetMe)
	router.GET("/auth/me/orders", authMiddleware.Authenticate(), authController.GetOrders)
	router.GET("/auth/me/orders/export", authMiddleware.Authenticate(), authController.ExportOrders)

	return router
}

func doAuthRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginDemoUser(t *testing.T, router *gin.Engine) string {
	w := doAuthRequest(t, router, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "demo@lumiskin.com",
		"password": "lumiskin-demo",
	})
	require.Equal(t, http.StatusOK, w.Code)

	response := parseBody(t, w)
	token, ok := response["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestAuthController_Signup_Success(t *testing.T) {
	router := setupAuthControllerTest(t)

	w := doAuthRequest(t, router, http.MethodPost, "/auth/signup", "", map[string]string{
		"email":      "new@example.com",
		"password":   "password123",
		"first_name": "Alex",
		"last_name":  "Kim",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	response := parseBody(t, w)
	assert.NotEmpty(t, response["token"])

	user, ok := response["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "new@example.com", user["email"])

	// The password hash must never leak
	_, hasHash := user["password_hash"]
	assert.False(t, hasHash)
}

func TestAuthController_Signup_ShortPassword(t *testing.T) {
	router := setupAuthControllerTest(t)

	w := doAuthRequest(t, router, http.MethodPost, "/auth/signup", "", map[string]string{
		"email":      "new@example.com",
		"password":   "short",
		"first_name": "Alex",
		"last_name":  "Kim",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthController_Signup_DuplicateEmail(t *testing.T) {
	router := setupAuthControllerTest(t)

	w := doAuthRequest(t, router, http.MethodPost, "/auth/signup", "", map[string]string{
		"email":      "demo@lumiskin.com",
		"password":   "password123",
		"first_name": "Alex",
		"last_name":  "Kim",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	response := parseBody(t, w)
	assert.Equal(t, "AUTH_EMAIL_TAKEN", response["error"])
}

func TestAuthController_Login_Success(t *testing.T) {
	router := setupAuthControllerTest(t)

	token := loginDemoUser(t, router)
	assert.NotEmpty(t, token)
}

func TestAuthController_Login_BadCredentials(t *testing.T) {
	router := setupAuthControllerTest(t)

	w := doAuthRequest(t, router, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "demo@lumiskin.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	response := parseBody(t, w)
	assert.Equal(t, "AUTH_BAD_CREDENTIALS", response["error"])
}

func TestAuthController_GetMe(t *testing.T) {
	router := setupAuthControllerTest(t)
	token := loginDemoUser(t, router)

	w := doAuthRequest(t, router, http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseBody(t, w)
	user := response["user"].(map[string]interface{})
	assert.Equal(t, "demo@lumiskin.com", user["email"])
	assert.Equal(t, true, user["is_insider"])
}

func TestAuthController_GetMe_NoToken(t *testing.T) {
	router := setupAuthControllerTest(t)

	w := doAuthRequest(t, router, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthController_GetMe_InvalidToken(t *testing.T) {
	router := setupAuthControllerTest(t)

	w := doAuthRequest(t, router, http.MethodGet, "/auth/me", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	response := parseBody(t, w)
	assert.Equal(t, "AUTH_TOKEN_INVALID", response["error"])
}

func TestAuthController_GetOrders(t *testing.T) {
	router := setupAuthControllerTest(t)
	token := loginDemoUser(t, router)

	w := doAuthRequest(t, router, http.MethodGet, "/auth/me/orders", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseBody(t, w)
	assert.Equal(t, float64(2), response["count"])

	orders := response["orders"].([]interface{})
	first := orders[0].(map[string]interface{})
	assert.Equal(t, "LS-10384", first["id"])
	assert.Equal(t, "delivered", first["status"])
}

func TestAuthController_ExportOrders(t *testing.T) {
	router := setupAuthControllerTest(t)
	token := loginDemoUser(t, router)

	w := doAuthRequest(t, router, http.MethodGet, "/auth/me/orders/export", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotZero(t, w.Body.Len())
}

func TestAuthController_Logout(t *testing.T) {
	router := setupAuthControllerTest(t)
	token := loginDemoUser(t, router)

	// Without Redis, revocation is a no-op but the endpoint still succeeds
	w := doAuthRequest(t, router, http.MethodPost, "/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
