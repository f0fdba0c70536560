package store

import (
	"context"
	"errors"
	"fmt"

	"Gamestore/models/postgres"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddToCart puts a game in the user's cart. Adding a game that is already
// there returns the existing row
func (s *Store) AddToCart(ctx context.Context, id Identity, gameID uint) (*postgres.CartItem, error) {
	db := s.db.WithContext(ctx)

	existing, err := s.findCartItem(db, id.UserID, gameID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	var count int64
	if err := db.Model(&postgres.Game{}).Where("id = ?", gameID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("checking game %d: %w", gameID, err)
	}
	if count == 0 {
		return nil, ErrGameNotFound
	}

	item := postgres.CartItem{UserID: id.UserID, GameID: gameID}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_id"}},
		DoNothing: true,
	}).Omit(clause.Associations).Create(&item)
	if result.Error != nil {
		return nil, fmt.Errorf("adding game %d to cart: %w", gameID, result.Error)
	}
	if result.RowsAffected == 0 {
		// A concurrent request inserted the same pair first
		existing, err := s.findCartItem(db, id.UserID, gameID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}
	return &item, nil
}

// RemoveFromCart deletes the game from the user's cart. Absent games are ignored
func (s *Store) RemoveFromCart(ctx context.Context, id Identity, gameID uint) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", id.UserID, gameID).
		Delete(&postgres.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("removing game %d from cart: %w", gameID, err)
	}
	return nil
}

func (s *Store) ClearCart(ctx context.Context, id Identity) error {
	if err := s.db.WithContext(ctx).Where("user_id = ?", id.UserID).Delete(&postgres.CartItem{}).Error; err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	return nil
}

// GetCartItems returns the games in the user's cart in the order they were added
func (s *Store) GetCartItems(ctx context.Context, id Identity) ([]GameDetails, error) {
	var items []postgres.CartItem
	if err := s.db.WithContext(ctx).Where("user_id = ?", id.UserID).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("fetching cart: %w", err)
	}
	if len(items) == 0 {
		return []GameDetails{}, nil
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.GameID)
	}
	games, err := s.gamesByID(ctx, s.db, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}

	ordered := make([]postgres.Game, 0, len(items))
	for _, item := range items {
		if g, ok := games[item.GameID]; ok {
			ordered = append(ordered, g)
		}
	}
	return s.withCategories(ctx, ordered)
}

func (s *Store) findCartItem(db *gorm.DB, userID, gameID uint) (*postgres.CartItem, error) {
	var item postgres.CartItem
	err := db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching cart item: %w", err)
	}
	return &item, nil
}
