package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Gamestore/config"
	_ "Gamestore/config/swagger"
	"Gamestore/middleware"
	"Gamestore/models/postgres"
	"Gamestore/services/auth"
	"Gamestore/services/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore serves an empty catalog and an empty cart
type stubStore struct{}

func (stubStore) GetAllCategories(context.Context) ([]postgres.Category, error) {
	return []postgres.Category{{ID: 1, Name: "Action"}}, nil
}

func (stubStore) GetAllGames(context.Context, *uint) ([]store.GameDetails, error) {
	return []store.GameDetails{}, nil
}

func (stubStore) GetSpecialOfferGames(context.Context, *uint) ([]store.GameDetails, error) {
	return []store.GameDetails{}, nil
}

func (stubStore) GetNewReleaseGames(context.Context, *uint) ([]store.GameDetails, error) {
	return []store.GameDetails{}, nil
}

func (stubStore) GetPopularGames(context.Context, *uint) ([]store.GameDetails, error) {
	return []store.GameDetails{}, nil
}

func (stubStore) GetFeaturedGame(context.Context) (*store.GameDetails, error) {
	return nil, nil
}

func (stubStore) GetGameByID(context.Context, uint) (*store.GameDetails, error) {
	return nil, store.ErrGameNotFound
}

func (stubStore) AddToCart(_ context.Context, id store.Identity, gameID uint) (*postgres.CartItem, error) {
	return &postgres.CartItem{UserID: id.UserID, GameID: gameID}, nil
}

func (stubStore) RemoveFromCart(context.Context, store.Identity, uint) error { return nil }

func (stubStore) ClearCart(context.Context, store.Identity) error { return nil }

func (stubStore) GetCartItems(context.Context, store.Identity) ([]store.GameDetails, error) {
	return []store.GameDetails{}, nil
}

func (stubStore) ProcessPayment(context.Context, store.Identity, store.PaymentRequest) (*postgres.Transaction, error) {
	return nil, store.ErrEmptyCart
}

func (stubStore) GetUserLibrary(context.Context, store.Identity) ([]store.LibraryGame, error) {
	return []store.LibraryGame{}, nil
}

func (stubStore) GetTransactions(context.Context, store.Identity) ([]postgres.Transaction, error) {
	return []postgres.Transaction{}, nil
}

type stubAccounts struct{}

var bob = &postgres.User{ID: 3, Username: "bob", Email: "bob@example.com"}

func (stubAccounts) Register(context.Context, auth.RegisterInput) (*postgres.User, error) {
	return bob, nil
}

func (stubAccounts) Login(_ context.Context, username, password string) (*postgres.User, error) {
	if username == "bob" && password == "hunter22" {
		return bob, nil
	}
	return nil, store.ErrInvalidCredentials
}

func (stubAccounts) CurrentUser(context.Context, store.Identity) (*postgres.User, error) {
	return bob, nil
}

func newRouter(limiter *middleware.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	middleware.SetUpMiddleware(r, &config.Config{SessionKey: "test-key"})
	SetupRoutes(r, Dependencies{
		Catalog:     stubStore{},
		Cart:        stubStore{},
		Checkout:    stubStore{},
		Library:     stubStore{},
		Accounts:    stubAccounts{},
		Tokens:      auth.NewTokenIssuer("test-secret", time.Hour),
		AuthLimiter: limiter,
	})
	return r
}

func serve(r http.Handler, method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPublicRoutes(t *testing.T) {
	r := newRouter(nil)

	for _, path := range []string{
		"/ping",
		"/api/categories",
		"/api/games",
		"/api/games/featured",
		"/api/games/special-offers",
		"/api/games/new-releases?categoryId=1",
		"/api/games/popular",
	} {
		w := serve(r, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := serve(r, http.MethodGet, "/api/games/5", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGatedRoutesRequireAuthentication(t *testing.T) {
	r := newRouter(nil)

	gated := []struct{ method, path string }{
		{http.MethodGet, "/api/cart"},
		{http.MethodPost, "/api/cart/add"},
		{http.MethodDelete, "/api/cart/1"},
		{http.MethodDelete, "/api/cart"},
		{http.MethodPost, "/api/payment/process"},
		{http.MethodGet, "/api/library"},
		{http.MethodGet, "/api/transactions"},
		{http.MethodGet, "/api/transactions/export"},
		{http.MethodGet, "/api/user"},
		{http.MethodPost, "/api/logout"},
	}
	for _, route := range gated {
		w := serve(r, route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
		assert.JSONEq(t, `{"message":"Authentication required"}`, w.Body.String(), route.path)

		w = serve(r, route.method, route.path, "", "forged.token.value")
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
	}
}

func TestBearerTokenFlow(t *testing.T) {
	r := newRouter(nil)

	w := serve(r, http.MethodPost, "/api/token", `{"username":"bob","password":"hunter22"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	w = serve(r, http.MethodGet, "/api/cart", "", body.Token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = serve(r, http.MethodPost, "/api/payment/process", `{"amount": 10, "method": "paypal"}`, body.Token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Cart is empty"}`, w.Body.String())
}

func TestCredentialRoutesAreRateLimited(t *testing.T) {
	r := newRouter(middleware.NewRateLimiter(0.001, 2))

	for i := 0; i < 2; i++ {
		w := serve(r, http.MethodPost, "/api/login", `{"username":"bob","password":"wrong"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
	w := serve(r, http.MethodPost, "/api/login", `{"username":"bob","password":"hunter22"}`, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Each route has its own budget
	w = serve(r, http.MethodPost, "/api/token", `{"username":"bob","password":"hunter22"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// Catalog routes are not limited
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/games", "", "").Code)
	}
}

func TestMetricsAndSwagger(t *testing.T) {
	r := newRouter(nil)
	serve(r, http.MethodGet, "/ping", "", "")

	w := serve(r, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gamestore_http_requests_total")

	w = serve(r, http.MethodGet, "/swagger/doc.json", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/payment/process")
}
