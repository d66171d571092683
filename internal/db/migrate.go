package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type migrator interface {
	Up() error
	Down() error
}

var (
	sqlOpen          = sql.Open
	postgresInstance = postgres.WithInstance
	iofsNew          = iofs.New
	newMigrator      = func(sourceName string, source src.Driver, dbName string, driver dbdriver.Driver) (migrator, error) {
		return migrate.NewWithInstance(sourceName, source, dbName, driver)
	}
)

// Migrate applies every pending up migration.
func Migrate(dbURL string) error {
	return withMigrator(dbURL, func(m migrator) error { return m.Up() })
}

// Rollback reverts every applied migration.
func Rollback(dbURL string) error {
	return withMigrator(dbURL, func(m migrator) error { return m.Down() })
}

func withMigrator(dbURL string, run func(migrator) error) error {
	sqlDB, err := sqlOpen("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("open migration handle: %w", err)
	}
	defer sqlDB.Close()

	driver, err := postgresInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	source, err := iofsNew(Migrations(), ".")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	m, err := newMigrator("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}

	if err := run(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Migrations exposes the embedded SQL files rooted at the migrations directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}
