package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationsSource отдает встроенные в бинарник миграции
func migrationsSource() (source.Driver, error) {
	return iofs.New(migrationsFS, "migrations")
}

// Migrate поднимает схему до последней версии и возвращает версию схемы после применения.
// Для миграций открывается отдельное соединение: migrate закрывает его в Close.
// Отмена ctx останавливает migrate после текущей миграции.
func Migrate(ctx context.Context, dsn string) (uint, error) {
	src, err := migrationsSource()
	if err != nil {
		return 0, fmt.Errorf("failed to open migrations: %w", err)
	}

	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		src.Close()
		return 0, fmt.Errorf("failed to open database: %w", err)
	}

	driver, err := pgxmigrate.WithInstance(conn, &pgxmigrate.Config{})
	if err != nil {
		src.Close()
		conn.Close()
		return 0, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		src.Close()
		driver.Close()
		return 0, fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			m.GracefulStop <- true
		case <-done:
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}

	return version, nil
}
