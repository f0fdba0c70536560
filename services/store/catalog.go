package store

import (
	"context"
	"errors"
	"fmt"

	store_constants "Gamestore/constants/store"
	"Gamestore/metrics"
	"Gamestore/models/postgres"
	redis_utils "Gamestore/services/redis/utils"

	"gorm.io/gorm"
)

// CategoryRef is the short form of a category attached to every game
type CategoryRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// GameDetails is a game enriched with the categories it belongs to
type GameDetails struct {
	postgres.Game
	Categories []CategoryRef `json:"categories"`
}

// GetAllCategories returns every category ordered by name
func (s *Store) GetAllCategories(ctx context.Context) ([]postgres.Category, error) {
	var categories []postgres.Category
	err := s.cached(ctx, store_constants.CatalogCategories, nil, &categories, func() error {
		return s.db.WithContext(ctx).Order("name").Find(&categories).Error
	})
	if err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	return categories, nil
}

// GetAllGames returns every game, optionally restricted to a category
func (s *Store) GetAllGames(ctx context.Context, categoryID *uint) ([]GameDetails, error) {
	return s.listGames(ctx, store_constants.CatalogAllGames, "", categoryID, 0)
}

func (s *Store) GetSpecialOfferGames(ctx context.Context, categoryID *uint) ([]GameDetails, error) {
	return s.listGames(ctx, store_constants.CatalogSpecialOffers, "is_special_offer", categoryID, store_constants.FlaggedListLimit)
}

func (s *Store) GetNewReleaseGames(ctx context.Context, categoryID *uint) ([]GameDetails, error) {
	return s.listGames(ctx, store_constants.CatalogNewReleases, "is_new_release", categoryID, store_constants.FlaggedListLimit)
}

func (s *Store) GetPopularGames(ctx context.Context, categoryID *uint) ([]GameDetails, error) {
	return s.listGames(ctx, store_constants.CatalogPopular, "is_popular", categoryID, store_constants.FlaggedListLimit)
}

// GetFeaturedGame returns the featured game with the lowest id, with its
// screenshots. Returns nil, nil when no game is featured
func (s *Store) GetFeaturedGame(ctx context.Context) (*GameDetails, error) {
	var featured *GameDetails
	err := s.cached(ctx, store_constants.CatalogFeatured, nil, &featured, func() error {
		var game postgres.Game
		err := s.db.WithContext(ctx).
			Preload("Screenshots", orderByID).
			Where("is_featured = ?", true).
			First(&game).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			featured = nil
			return nil
		}
		if err != nil {
			return err
		}
		details, err := s.withCategories(ctx, []postgres.Game{game})
		if err != nil {
			return err
		}
		featured = &details[0]
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching featured game: %w", err)
	}
	return featured, nil
}

// GetGameByID returns one game with screenshots and categories
func (s *Store) GetGameByID(ctx context.Context, id uint) (*GameDetails, error) {
	var game postgres.Game
	err := s.db.WithContext(ctx).Preload("Screenshots", orderByID).First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching game %d: %w", id, err)
	}

	details, err := s.withCategories(ctx, []postgres.Game{game})
	if err != nil {
		return nil, fmt.Errorf("fetching game %d: %w", id, err)
	}
	return &details[0], nil
}

// RefreshCatalogCache drops every cached catalog list and loads the
// unfiltered ones again. It is a no-op without a cache
func (s *Store) RefreshCatalogCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.DeletePrefix(ctx, redis_utils.CatalogPrefix); err != nil {
		return fmt.Errorf("invalidating catalog cache: %w", err)
	}
	if _, err := s.GetAllCategories(ctx); err != nil {
		return err
	}
	if _, err := s.GetFeaturedGame(ctx); err != nil {
		return err
	}
	loaders := []func(context.Context, *uint) ([]GameDetails, error){
		s.GetAllGames,
		s.GetSpecialOfferGames,
		s.GetNewReleaseGames,
		s.GetPopularGames,
	}
	for _, load := range loaders {
		if _, err := load(ctx, nil); err != nil {
			return err
		}
	}
	return nil
}

// listGames runs a catalog list query. flagColumn restricts to games with that
// flag set and limit caps the result size when positive
func (s *Store) listGames(ctx context.Context, kind string, flagColumn string, categoryID *uint, limit int) ([]GameDetails, error) {
	var details []GameDetails
	err := s.cached(ctx, kind, categoryID, &details, func() error {
		query := s.db.WithContext(ctx).Model(&postgres.Game{})
		if flagColumn != "" {
			query = query.Where(flagColumn+" = ?", true)
		}
		if categoryID != nil {
			members := s.db.Model(&postgres.GameCategory{}).Select("game_id").Where("category_id = ?", *categoryID)
			query = query.Where("id IN (?)", members)
		}
		query = query.Order("id")
		if limit > 0 {
			query = query.Limit(limit)
		}

		var games []postgres.Game
		if err := query.Find(&games).Error; err != nil {
			return err
		}
		var err error
		details, err = s.withCategories(ctx, games)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", kind, err)
	}
	return details, nil
}

type gameCategoryRow struct {
	GameID uint
	ID     uint
	Name   string
}

// withCategories attaches categories to games with a single join query.
// The result keeps the order of games
func (s *Store) withCategories(ctx context.Context, games []postgres.Game) ([]GameDetails, error) {
	details := make([]GameDetails, len(games))
	if len(games) == 0 {
		return details, nil
	}

	ids := make([]uint, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	ids = uniqueIDs(ids)

	var rows []gameCategoryRow
	err := s.db.WithContext(ctx).
		Table("game_categories").
		Select("game_categories.game_id AS game_id, categories.id AS id, categories.name AS name").
		Joins("JOIN categories ON categories.id = game_categories.category_id").
		Where("game_categories.game_id IN ?", ids).
		Order("categories.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetching game categories: %w", err)
	}

	byGame := make(map[uint][]CategoryRef, len(ids))
	for _, r := range rows {
		byGame[r.GameID] = append(byGame[r.GameID], CategoryRef{ID: r.ID, Name: r.Name})
	}
	for i, g := range games {
		categories := byGame[g.ID]
		if categories == nil {
			categories = []CategoryRef{}
		}
		details[i] = GameDetails{Game: g, Categories: categories}
	}
	return details, nil
}

// gamesByID loads the given games keyed by id
func (s *Store) gamesByID(ctx context.Context, db *gorm.DB, ids []uint) (map[uint]postgres.Game, error) {
	var games []postgres.Game
	if err := db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("fetching games: %w", err)
	}
	byID := make(map[uint]postgres.Game, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}
	return byID, nil
}

// cached serves dest from the cache when possible and fills it with load
// otherwise. Cache failures are logged and never fail the request
func (s *Store) cached(ctx context.Context, kind string, categoryID *uint, dest any, load func() error) error {
	if s.cache == nil {
		return load()
	}

	key := redis_utils.FormatCatalogKey(kind, categoryID)
	hit, err := s.cache.GetJSON(ctx, key, dest)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("catalog cache read failed")
	} else if hit {
		metrics.RecordCacheLookup(kind, true)
		return nil
	}
	metrics.RecordCacheLookup(kind, false)

	if err := load(); err != nil {
		return err
	}
	if err := s.cache.SetJSON(ctx, key, dest, s.opts.CacheTTL); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("catalog cache write failed")
	}
	return nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// uniqueIDs drops repeated ids, keeping first occurrences in order
func uniqueIDs(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
