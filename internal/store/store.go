package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/post-kserks/schedule-bot/assets"

	_ "github.com/mattn/go-sqlite3"
)

const _defaultTimeout = 5 * time.Second

// Store — репозиторий поверх SQLite: контрольные мероприятия и реестр пользователей.
type Store struct {
	*sqlx.DB
	Builder squirrel.StatementBuilderType
	logger  *slog.Logger
}

// Open открывает (или создаёт) файл БД и применяет встроенные миграции.
func Open(dbPath string, logger *slog.Logger) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), _defaultTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("база данных инициализирована", "path", dbPath)

	return &Store{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		logger:  logger.With("component", "store"),
	}, nil
}

func runMigrations(db *sqlx.DB) error {
	src, err := iofs.New(assets.EmbeddedFiles, "migrations")
	if err != nil {
		return err
	}

	driver, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	if err != nil {
		return err
	}

	migrator, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
