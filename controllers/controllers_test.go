package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Gamestore/config"
	store_constants "Gamestore/constants/store"
	"Gamestore/middleware"
	"Gamestore/models/postgres"
	"Gamestore/services/auth"
	"Gamestore/services/store"
	"Gamestore/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var alice = store.Identity{UserID: 7, Username: "alice"}

var errDatabase = errors.New("connection reset by peer")

// newEngine returns an engine with the global error handler and sessions
func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(utils.ErrorHandler())
	middleware.SetUpMiddleware(r, &config.Config{SessionKey: "test-key"})
	return r
}

// asAlice stands in for AuthRequired
func asAlice(c *gin.Context) {
	c.Set(store_constants.IdentityContextKey, alice)
	c.Next()
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

type fakeCatalog struct {
	categories []postgres.Category
	games      []store.GameDetails
	featured   *store.GameDetails
	err        error

	gotCategory *uint
	gotGameID   uint
}

func (f *fakeCatalog) GetAllCategories(ctx context.Context) ([]postgres.Category, error) {
	return f.categories, f.err
}

func (f *fakeCatalog) list(categoryID *uint) ([]store.GameDetails, error) {
	f.gotCategory = categoryID
	return f.games, f.err
}

func (f *fakeCatalog) GetAllGames(ctx context.Context, categoryID *uint) ([]store.GameDetails, error) {
	return f.list(categoryID)
}

func (f *fakeCatalog) GetSpecialOfferGames(ctx context.Context, categoryID *uint) ([]store.GameDetails, error) {
	return f.list(categoryID)
}

func (f *fakeCatalog) GetNewReleaseGames(ctx context.Context, categoryID *uint) ([]store.GameDetails, error) {
	return f.list(categoryID)
}

func (f *fakeCatalog) GetPopularGames(ctx context.Context, categoryID *uint) ([]store.GameDetails, error) {
	return f.list(categoryID)
}

func (f *fakeCatalog) GetFeaturedGame(ctx context.Context) (*store.GameDetails, error) {
	return f.featured, f.err
}

func (f *fakeCatalog) GetGameByID(ctx context.Context, id uint) (*store.GameDetails, error) {
	f.gotGameID = id
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.games {
		if f.games[i].ID == id {
			return &f.games[i], nil
		}
	}
	return nil, store.ErrGameNotFound
}

type fakeCart struct {
	items   []store.GameDetails
	err     error
	added   []uint
	removed []uint
	cleared bool
	who     store.Identity
}

func (f *fakeCart) AddToCart(ctx context.Context, id store.Identity, gameID uint) (*postgres.CartItem, error) {
	f.who = id
	if f.err != nil {
		return nil, f.err
	}
	f.added = append(f.added, gameID)
	return &postgres.CartItem{ID: 1, UserID: id.UserID, GameID: gameID}, nil
}

func (f *fakeCart) RemoveFromCart(ctx context.Context, id store.Identity, gameID uint) error {
	f.who = id
	f.removed = append(f.removed, gameID)
	return f.err
}

func (f *fakeCart) ClearCart(ctx context.Context, id store.Identity) error {
	f.who = id
	f.cleared = f.err == nil
	return f.err
}

func (f *fakeCart) GetCartItems(ctx context.Context, id store.Identity) ([]store.GameDetails, error) {
	f.who = id
	return f.items, f.err
}

type fakeCheckout struct {
	req store.PaymentRequest
	who store.Identity
	err error
}

func (f *fakeCheckout) ProcessPayment(ctx context.Context, id store.Identity, req store.PaymentRequest) (*postgres.Transaction, error) {
	f.who = id
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &postgres.Transaction{ID: 42, UserID: id.UserID, Amount: req.Amount, PaymentMethod: req.Method}, nil
}

type fakeLibrary struct {
	games        []store.LibraryGame
	transactions []postgres.Transaction
	err          error
}

func (f *fakeLibrary) GetUserLibrary(ctx context.Context, id store.Identity) ([]store.LibraryGame, error) {
	return f.games, f.err
}

func (f *fakeLibrary) GetTransactions(ctx context.Context, id store.Identity) ([]postgres.Transaction, error) {
	return f.transactions, f.err
}

type fakeAccounts struct {
	users    map[string]*postgres.User
	password string
	err      error
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{
		users:    map[string]*postgres.User{"alice": {ID: 7, Username: "alice", Email: "alice@example.com", Password: "hash"}},
		password: "secret1",
	}
}

func (f *fakeAccounts) Register(ctx context.Context, in auth.RegisterInput) (*postgres.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, taken := f.users[in.Username]; taken {
		return nil, store.ErrDuplicateUsername
	}
	user := &postgres.User{ID: uint(len(f.users) + 10), Username: in.Username, Email: in.Email, Password: "hash"}
	f.users[in.Username] = user
	return user, nil
}

func (f *fakeAccounts) Login(ctx context.Context, username, password string) (*postgres.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[username]
	if !ok || password != f.password {
		return nil, store.ErrInvalidCredentials
	}
	return user, nil
}

func (f *fakeAccounts) CurrentUser(ctx context.Context, id store.Identity) (*postgres.User, error) {
	for _, user := range f.users {
		if user.ID == id.UserID {
			return user, nil
		}
	}
	return nil, store.ErrAuthenticationRequired
}

type fakeTokens struct {
	expiresAt time.Time
}

func (f fakeTokens) Issue(id store.Identity) (string, time.Time, error) {
	return "token-for-" + id.Username, f.expiresAt, nil
}
