package store

import (
	"context"
	"fmt"
	"time"

	"Gamestore/models/postgres"
)

// LibraryGame is an owned game with the date it was bought
type LibraryGame struct {
	GameDetails
	PurchaseDate time.Time `json:"purchaseDate"`
}

// GetUserLibrary returns the user's purchased games, oldest purchase first.
// A game bought twice appears twice
func (s *Store) GetUserLibrary(ctx context.Context, id Identity) ([]LibraryGame, error) {
	var entries []postgres.UserLibrary
	err := s.db.WithContext(ctx).
		Where("user_id = ?", id.UserID).
		Order("purchase_date, id").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("fetching library: %w", err)
	}
	if len(entries) == 0 {
		return []LibraryGame{}, nil
	}

	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.GameID)
	}
	games, err := s.gamesByID(ctx, s.db, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}

	owned := make([]postgres.Game, 0, len(entries))
	dates := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		if g, ok := games[e.GameID]; ok {
			owned = append(owned, g)
			dates = append(dates, e.PurchaseDate)
		}
	}
	details, err := s.withCategories(ctx, owned)
	if err != nil {
		return nil, err
	}

	library := make([]LibraryGame, len(details))
	for i := range details {
		library[i] = LibraryGame{GameDetails: details[i], PurchaseDate: dates[i]}
	}
	return library, nil
}

// GetTransactions returns the user's purchase history, newest first, with
// the games of every transaction
func (s *Store) GetTransactions(ctx context.Context, id Identity) ([]postgres.Transaction, error) {
	var transactions []postgres.Transaction
	err := s.db.WithContext(ctx).
		Preload("Games", orderByID).
		Preload("Games.Game").
		Where("user_id = ?", id.UserID).
		Order("created_at DESC, id DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}
	return transactions, nil
}
