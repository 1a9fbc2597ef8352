// Package db wires the GORM connection and schema migrations.
package db

import (
	"fmt"
	"log"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/caua/madeira/internal/config"
	"github.com/caua/madeira/internal/models"
)

// Connect opens the database described by cfg, retrying a few times so a
// containerized Postgres has time to come up.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dial = sqlite.Open(cfg.Path)
	default:
		dial = postgres.Open(cfg.DSN())
	}

	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	var db *gorm.DB
	var err error
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(dial, gormCfg)
		if err == nil {
			break
		}
		log.Printf("db connection attempt %d/5 failed, retrying: %v", i+1, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	return db, nil
}

// Migrate applies the schema. With useSQL set (MIGRATIONS=1) and a Postgres
// target it runs the versioned SQL files under ./migrations via
// golang-migrate; otherwise it falls back to GORM AutoMigrate, which is also
// what the SQLite mode and the tests use.
func Migrate(db *gorm.DB, cfg config.DatabaseConfig, useSQL bool) error {
	if useSQL && cfg.Driver != "sqlite" {
		if err := runSQLMigrations(cfg.URL()); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
		return nil
	}
	if err := db.AutoMigrate(
		&models.Client{},
		&models.Quote{},
		&models.QuoteItem{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// runSQLMigrations executes migrations in ./migrations using the golang-migrate file source.
func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
