// Package sqlite implements the persistence ports on top of GORM and SQLite.
package sqlite

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config captures the settings required to open the database.
type Config struct {
	// Path is the database file, or ":memory:" for an in-memory store.
	Path string
	// Debug enables SQL statement logging.
	Debug bool
}

// Connect opens the SQLite database, enables foreign-key enforcement and
// runs the schema migration. SQLite ships with foreign keys off; the
// "referenced row must exist" guarantees depend on the pragma, so it is
// forced through the DSN rather than left to the environment.
func Connect(cfg Config) (*gorm.DB, error) {
	dsn := cfg.Path
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on"
	}

	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	if strings.Contains(cfg.Path, ":memory:") {
		// each pooled connection would otherwise see its own empty database
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	if err := db.AutoMigrate(&userModel{}, &taskModel{}, &loanModel{}, &paymentModel{}); err != nil {
		return nil, fmt.Errorf("sqlite migrate: %w", err)
	}

	return db, nil
}
