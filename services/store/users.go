package store

import (
	"context"
	"errors"
	"fmt"

	"Gamestore/models/postgres"

	"gorm.io/gorm"
)

func (s *Store) CreateUser(ctx context.Context, user *postgres.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("creating user %s: %w", user.Username, err)
	}
	return nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*postgres.User, error) {
	return s.findUser(ctx, "username = ?", username)
}

func (s *Store) FindUserByID(ctx context.Context, id uint) (*postgres.User, error) {
	return s.findUser(ctx, "id = ?", id)
}

func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.userExists(ctx, "username = ?", username)
}

func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.userExists(ctx, "email = ?", email)
}

func (s *Store) findUser(ctx context.Context, cond string, arg any) (*postgres.User, error) {
	var user postgres.User
	err := s.db.WithContext(ctx).Where(cond, arg).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return &user, nil
}

func (s *Store) userExists(ctx context.Context, cond string, arg any) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&postgres.User{}).Where(cond, arg).Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking user: %w", err)
	}
	return count > 0, nil
}
