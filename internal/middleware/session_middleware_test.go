package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSessionMiddlewareTest() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(SessionMiddleware())
	router.GET("/echo", func(c *gin.Context) {
		sessionID, ok := GetSessionID(c)
		c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "ok": ok})
	})
	return router
}

func TestSessionMiddleware_EchoesExistingSession(t *testing.T) {
	router := setupSessionMiddlewareTest()

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set(SessionHeader, "known-session")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "known-session", w.Header().Get(SessionHeader))
	assert.Contains(t, w.Body.String(), "known-session")
}

func TestSessionMiddleware_IssuesNewSession(t *testing.T) {
	router := setupSessionMiddlewareTest()

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	issued := w.Header().Get(SessionHeader)
	require.NotEmpty(t, issued)

	// Issued IDs are UUIDs
	_, err := uuid.Parse(issued)
	assert.NoError(t, err)
}

func TestSessionMiddleware_NewSessionPerClient(t *testing.T) {
	router := setupSessionMiddlewareTest()

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/echo", nil))

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/echo", nil))

	assert.NotEqual(t, first.Header().Get(SessionHeader), second.Header().Get(SessionHeader))
}
