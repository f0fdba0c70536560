package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"Gamestore/models/postgres"
	"Gamestore/services/auth"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DemoUsername = "demo_user"
	DemoEmail    = "demo@example.com"
)

var systemRequirements = map[string]map[string]string{
	"minimum": {
		"OS":        "Windows 10",
		"Processor": "INTEL CORE I5-8400 or AMD RYZEN 3 3300X",
		"Memory":    "12 GB RAM",
		"Graphics":  "NVIDIA GEFORCE GTX 1060 3 GB or AMD RADEON RX 580 4 GB",
		"Storage":   "60 GB available space",
	},
	"recommended": {
		"OS":        "Windows 10/11",
		"Processor": "INTEL CORE I7-8700K or AMD RYZEN 5 3600X",
		"Memory":    "16 GB RAM",
		"Graphics":  "NVIDIA GEFORCE GTX 1070 8 GB or AMD RADEON RX VEGA 56 8 GB",
		"Storage":   "60 GB available space",
	},
}

type Options struct {
	// Reset wipes every storefront table before seeding
	Reset bool
	// DemoPassword creates demo_user when set
	DemoPassword string
}

type Result struct {
	Skipped    bool
	Categories int
	Games      int
	DemoUser   bool
}

// Run loads the demo catalog. Without Reset it does nothing when the
// catalog already has games
func Run(ctx context.Context, db *gorm.DB, opts Options) (Result, error) {
	var result Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if opts.Reset {
			if err := wipe(tx); err != nil {
				return err
			}
		} else {
			var games int64
			if err := tx.Model(&postgres.Game{}).Count(&games).Error; err != nil {
				return fmt.Errorf("counting games: %w", err)
			}
			if games > 0 {
				result.Skipped = true
				return nil
			}
		}

		categoryIDs, err := insertCategories(tx)
		if err != nil {
			return err
		}
		result.Categories = len(categoryIDs)

		if err := insertGames(tx, categoryIDs); err != nil {
			return err
		}
		result.Games = len(Games)

		if opts.DemoPassword != "" {
			created, err := ensureDemoUser(tx, opts.DemoPassword)
			if err != nil {
				return err
			}
			result.DemoUser = created
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logrus.WithFields(logrus.Fields{
		"skipped":    result.Skipped,
		"categories": result.Categories,
		"games":      result.Games,
		"demo_user":  result.DemoUser,
	}).Info("catalog seeding finished")
	return result, nil
}

// wipe deletes children before parents
func wipe(tx *gorm.DB) error {
	all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	models := []interface{}{
		&postgres.TransactionGame{},
		&postgres.Transaction{},
		&postgres.UserLibrary{},
		&postgres.CartItem{},
		&postgres.Screenshot{},
		&postgres.GameCategory{},
		&postgres.Game{},
		&postgres.Category{},
		&postgres.User{},
	}
	for _, m := range models {
		if err := all.Delete(m).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", m, err)
		}
	}
	return nil
}

func insertCategories(tx *gorm.DB) (map[string]uint, error) {
	categories := make([]postgres.Category, len(Categories))
	for i, c := range Categories {
		description := c.Description
		categories[i] = postgres.Category{Name: c.Name, Description: &description}
	}
	if err := tx.Create(&categories).Error; err != nil {
		return nil, fmt.Errorf("inserting categories: %w", err)
	}

	ids := make(map[string]uint, len(categories))
	for _, c := range categories {
		ids[c.Name] = c.ID
	}
	return ids, nil
}

func insertGames(tx *gorm.DB, categoryIDs map[string]uint) error {
	requirements, err := json.Marshal(systemRequirements)
	if err != nil {
		return err
	}

	games := make([]postgres.Game, len(Games))
	for i, g := range Games {
		game, err := g.model()
		if err != nil {
			return fmt.Errorf("game %q: %w", g.Title, err)
		}
		game.SystemRequirements = datatypes.JSON(requirements)
		games[i] = game
	}
	// Screenshots are created with their games
	if err := tx.Create(&games).Error; err != nil {
		return fmt.Errorf("inserting games: %w", err)
	}

	var links []postgres.GameCategory
	for i, g := range Games {
		for _, name := range g.Categories {
			id, ok := categoryIDs[name]
			if !ok {
				return fmt.Errorf("game %q: unknown category %q", g.Title, name)
			}
			links = append(links, postgres.GameCategory{GameID: games[i].ID, CategoryID: id})
		}
	}
	if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
		return fmt.Errorf("linking categories: %w", err)
	}
	return nil
}

func ensureDemoUser(tx *gorm.DB, password string) (bool, error) {
	var existing int64
	if err := tx.Model(&postgres.User{}).Where("username = ?", DemoUsername).Count(&existing).Error; err != nil {
		return false, fmt.Errorf("looking up demo user: %w", err)
	}
	if existing > 0 {
		return false, nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}
	user := postgres.User{Username: DemoUsername, Email: DemoEmail, Password: hash}
	if err := tx.Create(&user).Error; err != nil {
		return false, fmt.Errorf("creating demo user: %w", err)
	}
	return true, nil
}

func (g GameSeed) model() (postgres.Game, error) {
	price, err := decimal.NewFromString(g.Price)
	if err != nil {
		return postgres.Game{}, err
	}
	original, err := decimal.NewFromString(g.OriginalPrice)
	if err != nil {
		return postgres.Game{}, err
	}
	released, err := time.Parse(time.DateOnly, g.ReleaseDate)
	if err != nil {
		return postgres.Game{}, err
	}

	screenshots := make([]postgres.Screenshot, len(g.Screenshots))
	for i, url := range g.Screenshots {
		screenshots[i] = postgres.Screenshot{URL: url}
	}

	return postgres.Game{
		Title:            g.Title,
		ShortDescription: g.ShortDescription,
		Description:      g.Description,
		HeaderImage:      g.HeaderImage,
		Price:            price,
		OriginalPrice:    original,
		Discount:         g.Discount,
		ReleaseDate:      released,
		Developer:        g.Developer,
		Publisher:        g.Publisher,
		Languages:        g.Languages,
		IsFeatured:       g.Featured,
		IsSpecialOffer:   g.SpecialOffer,
		IsNewRelease:     g.NewRelease,
		IsPopular:        g.Popular,
		Screenshots:      screenshots,
	}, nil
}
