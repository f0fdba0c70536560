package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestCatalogData(t *testing.T) {
	names := map[string]bool{}
	for _, c := range Categories {
		assert.False(t, names[c.Name], "duplicate category %s", c.Name)
		names[c.Name] = true
	}

	var featured, special, releases, popular int
	for _, g := range Games {
		game, err := g.model()
		require.NoError(t, err, g.Title)
		assert.True(t, game.Price.LessThanOrEqual(game.OriginalPrice), g.Title)
		assert.NotEmpty(t, g.Categories, g.Title)
		assert.NotEmpty(t, game.Description, g.Title)
		assert.NotEqual(t, g.ShortDescription, game.Description, "%s: description is the full store text", g.Title)
		for _, name := range g.Categories {
			assert.True(t, names[name], "%s: unknown category %s", g.Title, name)
		}
		if g.Featured {
			featured++
		}
		if g.SpecialOffer {
			special++
		}
		if g.NewRelease {
			releases++
		}
		if g.Popular {
			popular++
		}
	}
	assert.Equal(t, 1, featured)
	assert.Equal(t, 4, special)
	assert.Equal(t, 4, releases)
	assert.Equal(t, 4, popular)
}

func TestGameSeedModel(t *testing.T) {
	game, err := Games[0].model()
	require.NoError(t, err)

	assert.Equal(t, "Elden Ring", game.Title)
	assert.True(t, game.Price.Equal(decimal.RequireFromString("44.99")))
	assert.Equal(t, 2022, game.ReleaseDate.Year())
	assert.Len(t, game.Screenshots, 4)
	assert.True(t, strings.HasPrefix(game.Description, "THE NEW FANTASY ACTION RPG."))
	assert.Contains(t, game.Description, "\n\n")

	_, err = GameSeed{Price: "free"}.model()
	assert.Error(t, err)
}

func TestRunSkipsSeededCatalog(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "games"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectCommit()

	result, err := Run(context.Background(), db, Options{DemoPassword: "password123"})
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Zero(t, result.Games)
	assert.False(t, result.DemoUser)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunRollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "games"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "categories"`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := Run(context.Background(), db, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
