package main

import (
	"context"
	"flag"
	"os"

	"Gamestore/config"
	pgconfig "Gamestore/config/postgres"
	"Gamestore/services/seed"
	"Gamestore/utils"

	"github.com/joho/godotenv"
)

// Loads the demo catalog into the configured database
func main() {
	reset := flag.Bool("reset", false, "wipe every storefront table before seeding")
	demoPassword := flag.String("demo-password", os.Getenv("DEMO_PASSWORD"), "create demo_user with this password")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		utils.Log.Fatalf("Error loading configuration: %v", err)
	}
	utils.ConfigureLogger(cfg.LogLevel, cfg.Prod, os.Stdout)

	db, err := pgconfig.ConnectGORM(cfg.Postgres)
	if err != nil {
		utils.Log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		utils.Log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
	}
	defer sqlDB.Close()

	if err := pgconfig.MigrateDatabase(db); err != nil {
		utils.Log.Fatalf("Error migrating database: %v", err)
	}

	result, err := seed.Run(context.Background(), db, seed.Options{Reset: *reset, DemoPassword: *demoPassword})
	if err != nil {
		utils.Log.Fatalf("Error seeding database: %v", err)
	}
	if result.Skipped {
		utils.Log.Info("Catalog already seeded, run with -reset to reload it")
	}
}
