package store

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Identity is the verified user a cart, checkout or library call acts for.
// It is resolved by the auth middleware and passed in explicitly.
type Identity struct {
	UserID   uint   `json:"id"`
	Username string `json:"username"`
}

// Cache is the read-through cache used for catalog lists
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// Locker serialises checkouts of the same user across server instances
type Locker interface {
	// TryLock returns a token identifying this holder when ok is true
	TryLock(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	Unlock(ctx context.Context, key, token string) error
}

type Options struct {
	CacheTTL        time.Duration
	PaymentDelay    time.Duration
	VerifyAmount    bool
	CheckoutLockTTL time.Duration
	Logger          logrus.FieldLogger
}

// Store is the data access layer on top of PostgreSQL
type Store struct {
	db     *gorm.DB
	cache  Cache
	locker Locker
	opts   Options
	log    logrus.FieldLogger
}

// New creates a Store. Cache and locker are optional, see WithCache and WithLocker
func New(db *gorm.DB, opts Options) *Store {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if opts.CheckoutLockTTL <= 0 {
		opts.CheckoutLockTTL = 30 * time.Second
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{
		// Multi-statement writes open their own transactions explicitly
		db:   db.Session(&gorm.Session{SkipDefaultTransaction: true}),
		opts: opts,
		log:  log.WithField("component", "store"),
	}
}

func (s *Store) WithCache(cache Cache) *Store {
	s.cache = cache
	return s
}

func (s *Store) WithLocker(locker Locker) *Store {
	s.locker = locker
	return s
}
