package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/user-service/internal/models"
)

const userColumns = `id, mobile, password_hash, nick_name, head_url, birthday,
			      address, description, gender, role`

// rowScanner общий интерфейс для *sql.Row и *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// CountUsers возвращает общее число пользователей.
func (s *Storage) CountUsers(ctx context.Context) (int64, error) {
	const op = "storage.CountUsers"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var total int64
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// listPrealloc ограничивает заранее выделяемую ёмкость страницы:
// limit приходит от клиента и может быть сколь угодно большим.
const listPrealloc = 64

// ListUsers возвращает страницу пользователей в порядке возрастания id.
func (s *Storage) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	const op = "storage.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.User, 0, min(limit, listPrealloc))
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetUserByID возвращает пользователя по id.
func (s *Storage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.GetUserByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE id = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUserByMobile возвращает пользователя по номеру телефона.
func (s *Storage) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	const op = "storage.GetUserByMobile"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE mobile = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, mobile))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// CreateUser сохраняет нового пользователя и возвращает его id.
// Нарушение уникальности номера телефона возвращается как ErrUserExists.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (int64, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (mobile, password_hash, nick_name, head_url, birthday,
			      address, description, gender, role)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id`
	var id int64
	if err := s.DB.QueryRowContext(ctx, query,
		user.Mobile, user.PasswordHash, nullString(user.NickName), nullString(user.HeadURL),
		nullDate(user.Birthday), nullString(user.Address), nullString(user.Desc),
		nullString(user.Gender), user.Role).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// UpdateUser перезаписывает изменяемые поля профиля.
// Номер телефона и хэш пароля не меняются.
func (s *Storage) UpdateUser(ctx context.Context, user models.User) error {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET nick_name = $1,
			      head_url = $2,
			      birthday = $3,
			      address = $4,
			      description = $5,
			      gender = $6,
			      role = $7
			  WHERE id = $8`
	res, err := s.DB.ExecContext(ctx, query,
		nullString(user.NickName), nullString(user.HeadURL), nullDate(user.Birthday),
		nullString(user.Address), nullString(user.Desc), nullString(user.Gender),
		user.Role, user.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return nil
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	var nickName, headURL, address, desc, gender sql.NullString
	var birthday sql.NullTime
	if err := row.Scan(&u.ID, &u.Mobile, &u.PasswordHash, &nickName, &headURL,
		&birthday, &address, &desc, &gender, &u.Role); err != nil {
		return nil, err
	}

	u.NickName = stringPtr(nickName)
	u.HeadURL = stringPtr(headURL)
	u.Address = stringPtr(address)
	u.Desc = stringPtr(desc)
	u.Gender = stringPtr(gender)
	if birthday.Valid {
		d := time.Date(birthday.Time.Year(), birthday.Time.Month(), birthday.Time.Day(), 0, 0, 0, 0, time.UTC)
		u.Birthday = &d
	}
	return u, nil
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

// nullDate передаёт дату как календарный день без часового пояса.
func nullDate(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.DateOnly), Valid: true}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
