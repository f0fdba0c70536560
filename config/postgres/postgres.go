package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"Gamestore/config"
	"Gamestore/models/postgres"
	"Gamestore/utils"

	_ "github.com/lib/pq" // registers the "postgres" driver
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectGORM returns a GORM DB instance connected to PostgreSQL
func ConnectGORM(cfg config.PostgresConfig) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening PostgreSQL connection: %w", err)
	}

	db, err := Open(sqlDB, cfg.Verbose)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	// Verify connection
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging PostgreSQL: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	utils.Log.Info("Successfully connected to PostgreSQL with GORM")
	return db, nil
}

// Open wraps an existing connection pool in GORM
func Open(sqlDB *sql.DB, verbose bool) (*gorm.DB, error) {
	// NOTE: simple protocol keeps us compatible with pgbouncer in transaction mode
	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: utils.GormLogger(verbose),
	})
	if err != nil {
		return nil, fmt.Errorf("opening GORM: %w", err)
	}
	return db, nil
}

// Models lists every table the storefront owns, parents first
func Models() []interface{} {
	return []interface{}{
		&postgres.Category{},
		&postgres.Game{},
		&postgres.GameCategory{},
		&postgres.Screenshot{},
		&postgres.User{},
		&postgres.CartItem{},
		&postgres.UserLibrary{},
		&postgres.Transaction{},
		&postgres.TransactionGame{},
	}
}

// MigrateDatabase migrates the GORM models to the PostgreSQL database
func MigrateDatabase(db *gorm.DB) error {
	// NOTE: for more info, execute db.Debug().AutoMigrate(...)
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	utils.Log.Info("PostgreSQL database migrated successfully")
	return nil
}
