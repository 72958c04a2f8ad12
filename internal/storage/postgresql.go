// Package storage реализует хранилище профилей пользователей на основе PostgreSQL.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/magabrotheeeer/user-service/internal/config"
)

var (
	// ErrUserNotFound запись не найдена.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists пользователь с таким номером телефона уже существует.
	ErrUserExists = errors.New("user already exists")
)

// Storage инкапсулирует пул соединений с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New открывает пул соединений, применяет настройки пула и проверяет доступность базы.
func New(ctx context.Context, cfg config.Storage) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// NewWithDB оборачивает уже открытое соединение.
func NewWithDB(db *sql.DB) *Storage {
	return &Storage{DB: db}
}

// Ping проверяет доступность базы данных.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.Ping"
	if err := s.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	return s.DB.Close()
}
