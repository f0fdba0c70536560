package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Gamestore/config"
	"Gamestore/services/store"
	"Gamestore/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokens struct {
	valid map[string]store.Identity
}

func (s stubTokens) Parse(token string) (store.Identity, error) {
	if id, ok := s.valid[token]; ok {
		return id, nil
	}
	return store.Identity{}, errors.Join(store.ErrAuthenticationRequired, errors.New("bad token"))
}

func newTestEngine(tokens TokenParser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(utils.ErrorHandler())
	SetUpMiddleware(r, &config.Config{SessionKey: "test-key", CORSOrigins: "http://localhost:5173"})

	r.POST("/login/:id", func(c *gin.Context) {
		id, _ := utils.ParseID(c.Param("id"))
		if err := StartSession(c, store.Identity{UserID: id, Username: "alice"}); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})
	auth := r.Group("/", AuthRequired(tokens))
	auth.GET("/me", func(c *gin.Context) {
		id, ok := utils.CurrentIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, id)
	})
	auth.POST("/logout", func(c *gin.Context) {
		if err := EndSession(c); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})
	return r
}

func cookieFrom(w *httptest.ResponseRecorder) string {
	return strings.Split(w.Header().Get("Set-Cookie"), ";")[0]
}

func TestAuthRequiredWithoutCredentials(t *testing.T) {
	r := newTestEngine(stubTokens{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Authentication required"}`, w.Body.String())
}

func TestAuthRequiredWithSession(t *testing.T) {
	r := newTestEngine(stubTokens{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login/7", nil))
	require.Equal(t, http.StatusOK, w.Code)
	cookie := cookieFrom(w)
	assert.True(t, strings.HasPrefix(cookie, "gamestore_session="))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Cookie", cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var id store.Identity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &id))
	assert.Equal(t, store.Identity{UserID: 7, Username: "alice"}, id)

	// Logging out expires the cookie
	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Cookie", cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestAuthRequiredWithBearerToken(t *testing.T) {
	r := newTestEngine(stubTokens{valid: map[string]store.Identity{"good": {UserID: 3, Username: "bob"}}})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"bob"`)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer forged")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Authentication required"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	r := newTestEngine(stubTokens{})

	req := httptest.NewRequest(http.MethodOptions, "/me", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewRateLimiter(0.001, 2)
	r := gin.New()
	r.POST("/api/login", limiter.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Other clients have their own budget
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterCleanup(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	limiter.getLimiter("a")
	limiter.getLimiter("b")

	limiter.mu.Lock()
	limiter.limiters["a"].lastSeen = time.Now().Add(-time.Hour)
	limiter.mu.Unlock()

	limiter.Cleanup()
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Len(t, limiter.limiters, 1)
	assert.Contains(t, limiter.limiters, "b")
}
