package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"Gamestore/models/postgres"
	"Gamestore/services/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUsers is an in-memory UserStore
type fakeUsers struct {
	byName  map[string]*postgres.User
	created int
	failErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byName: map[string]*postgres.User{}}
}

func (f *fakeUsers) CreateUser(_ context.Context, user *postgres.User) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.created++
	user.ID = uint(len(f.byName) + 1)
	f.byName[user.Username] = user
	return nil
}

func (f *fakeUsers) FindUserByUsername(_ context.Context, username string) (*postgres.User, error) {
	if u, ok := f.byName[username]; ok {
		return u, nil
	}
	return nil, store.ErrUserNotFound
}

func (f *fakeUsers) FindUserByID(_ context.Context, id uint) (*postgres.User, error) {
	for _, u := range f.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (f *fakeUsers) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := f.byName[username]
	return ok, nil
}

func (f *fakeUsers) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.byName {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates user with hashed password", func(t *testing.T) {
		users := newFakeUsers()
		svc := NewService(users)

		user, err := svc.Register(ctx, RegisterInput{Username: " alice ", Password: "secret1", Email: "alice@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.NotEqual(t, "secret1", user.Password)
		ok, err := ComparePassword(user.Password, "secret1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		users := newFakeUsers()
		svc := NewService(users)
		_, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "secret1", Email: "a@example.com"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, RegisterInput{Username: "alice", Password: "other12", Email: "b@example.com"})
		assert.ErrorIs(t, err, store.ErrDuplicateUsername)
		assert.Equal(t, 1, users.created)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		users := newFakeUsers()
		svc := NewService(users)
		_, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "secret1", Email: "a@example.com"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, RegisterInput{Username: "bob", Password: "secret1", Email: "a@example.com"})
		assert.ErrorIs(t, err, store.ErrDuplicateEmail)
		assert.Equal(t, 1, users.created)
	})

	t.Run("Invalid input", func(t *testing.T) {
		svc := NewService(newFakeUsers())
		cases := []RegisterInput{
			{Username: "", Password: "secret1", Email: "a@example.com"},
			{Username: "al", Password: "secret1", Email: "a@example.com"},
			{Username: "alice", Password: "short", Email: "a@example.com"},
			{Username: "alice", Password: "secret1", Email: "not-an-email"},
		}
		for _, in := range cases {
			_, err := svc.Register(ctx, in)
			assert.ErrorIs(t, err, store.ErrValidation, "%+v", in)
		}
	})

	t.Run("Store failure", func(t *testing.T) {
		users := newFakeUsers()
		users.failErr = errors.New("db down")
		_, err := NewService(users).Register(ctx, RegisterInput{Username: "alice", Password: "secret1", Email: "a@example.com"})
		assert.ErrorIs(t, err, users.failErr)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	users := newFakeUsers()
	svc := NewService(users)
	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "secret1", Email: "a@example.com"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, wrongPassword := svc.Login(ctx, "alice", "nope123")
	_, unknownUser := svc.Login(ctx, "mallory", "secret1")
	assert.ErrorIs(t, wrongPassword, store.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, store.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestCurrentUserRemovedAccount(t *testing.T) {
	svc := NewService(newFakeUsers())
	_, err := svc.CurrentUser(context.Background(), store.Identity{UserID: 99})
	assert.ErrorIs(t, err, store.ErrAuthenticationRequired)
}

func TestTokens(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	id := store.Identity{UserID: 7, Username: "alice"}

	t.Run("Round trip", func(t *testing.T) {
		token, expiresAt, err := issuer.Issue(id)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

		got, err := issuer.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, _, err := NewTokenIssuer("other-secret", time.Hour).Issue(id)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.ErrorIs(t, err, store.ErrAuthenticationRequired)
	})

	t.Run("Expired", func(t *testing.T) {
		past := NewTokenIssuer("test-secret", time.Hour)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _, err := past.Issue(id)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.ErrorIs(t, err, store.ErrAuthenticationRequired)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := issuer.Parse("not.a.token")
		assert.ErrorIs(t, err, store.ErrAuthenticationRequired)
	})
}
