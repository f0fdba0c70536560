package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"Gamestore/models/postgres"
	"Gamestore/services/store"

	"github.com/sirupsen/logrus"
)

// UserStore is the part of the store accounts need
type UserStore interface {
	CreateUser(ctx context.Context, user *postgres.User) error
	FindUserByUsername(ctx context.Context, username string) (*postgres.User, error)
	FindUserByID(ctx context.Context, id uint) (*postgres.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// Compared against when the username does not exist, so unknown users take
// as long to reject as wrong passwords
var dummyHash string

func init() {
	hash, err := HashPassword("gamestore-dummy-password")
	if err != nil {
		panic(err)
	}
	dummyHash = hash
}

// Service handles registration and credential checks
type Service struct {
	users UserStore
}

func NewService(users UserStore) *Service {
	return &Service{users: users}
}

type RegisterInput struct {
	Username string
	Password string
	Email    string
}

// Register creates an account. The username is checked before the email
func (s *Service) Register(ctx context.Context, in RegisterInput) (*postgres.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	taken, err := s.users.UsernameExists(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, store.ErrDuplicateUsername
	}
	taken, err = s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, store.ErrDuplicateEmail
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	user := &postgres.User{Username: in.Username, Email: in.Email, Password: hash}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("user registered")
	return user, nil
}

// Login checks credentials. Unknown users and wrong passwords both return
// store.ErrInvalidCredentials
func (s *Service) Login(ctx context.Context, username, password string) (*postgres.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, store.ErrInvalidCredentials
	}

	user, err := s.users.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		_, _ = ComparePassword(dummyHash, password)
		return nil, store.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ok, err := ComparePassword(user.Password, password)
	if err != nil {
		return nil, fmt.Errorf("comparing password: %w", err)
	}
	if !ok {
		return nil, store.ErrInvalidCredentials
	}
	return user, nil
}

// CurrentUser loads the account behind a verified identity
func (s *Service) CurrentUser(ctx context.Context, id store.Identity) (*postgres.User, error) {
	user, err := s.users.FindUserByID(ctx, id.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		// Account removed while the session was alive
		return nil, store.ErrAuthenticationRequired
	}
	return user, err
}

func validateRegistration(in RegisterInput) error {
	switch {
	case in.Username == "" || in.Password == "" || in.Email == "":
		return store.Invalid("Username, password and email are required")
	case utf8.RuneCountInString(in.Username) < 3:
		return store.Invalid("Username must be at least 3 characters")
	case utf8.RuneCountInString(in.Username) > 50:
		return store.Invalid("Username must be at most 50 characters")
	case len(in.Password) < 6:
		return store.Invalid("Password must be at least 6 characters")
	case len(in.Password) > 72:
		// bcrypt ignores anything past 72 bytes
		return store.Invalid("Password must be at most 72 bytes")
	case !strings.Contains(in.Email, "@") || len(in.Email) > 100:
		return store.Invalid("Invalid email address")
	}
	return nil
}
