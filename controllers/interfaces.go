package controllers

import (
	"context"
	"time"

	"Gamestore/models/postgres"
	"Gamestore/services/auth"
	"Gamestore/services/store"
)

// Catalog serves the public storefront lists
type Catalog interface {
	GetAllCategories(ctx context.Context) ([]postgres.Category, error)
	GetAllGames(ctx context.Context, categoryID *uint) ([]store.GameDetails, error)
	GetSpecialOfferGames(ctx context.Context, categoryID *uint) ([]store.GameDetails, error)
	GetNewReleaseGames(ctx context.Context, categoryID *uint) ([]store.GameDetails, error)
	GetPopularGames(ctx context.Context, categoryID *uint) ([]store.GameDetails, error)
	GetFeaturedGame(ctx context.Context) (*store.GameDetails, error)
	GetGameByID(ctx context.Context, id uint) (*store.GameDetails, error)
}

type Cart interface {
	AddToCart(ctx context.Context, id store.Identity, gameID uint) (*postgres.CartItem, error)
	RemoveFromCart(ctx context.Context, id store.Identity, gameID uint) error
	ClearCart(ctx context.Context, id store.Identity) error
	GetCartItems(ctx context.Context, id store.Identity) ([]store.GameDetails, error)
}

type Checkout interface {
	ProcessPayment(ctx context.Context, id store.Identity, req store.PaymentRequest) (*postgres.Transaction, error)
}

type Library interface {
	GetUserLibrary(ctx context.Context, id store.Identity) ([]store.LibraryGame, error)
	GetTransactions(ctx context.Context, id store.Identity) ([]postgres.Transaction, error)
}

type Accounts interface {
	Register(ctx context.Context, in auth.RegisterInput) (*postgres.User, error)
	Login(ctx context.Context, username, password string) (*postgres.User, error)
	CurrentUser(ctx context.Context, id store.Identity) (*postgres.User, error)
}

type TokenIssuer interface {
	Issue(id store.Identity) (string, time.Time, error)
}

// Compile-time checks against the real implementations
var (
	_ Catalog     = (*store.Store)(nil)
	_ Cart        = (*store.Store)(nil)
	_ Checkout    = (*store.Store)(nil)
	_ Library     = (*store.Store)(nil)
	_ Accounts    = (*auth.Service)(nil)
	_ TokenIssuer = (*auth.TokenIssuer)(nil)
)
