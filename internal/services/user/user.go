// Package services содержит бизнес-логику работы с профилями пользователей:
// пагинацию, проверку уникальности номера телефона, хеширование паролей,
// кеширование профилей и публикацию событий.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/user-service/internal/lib/date"
	"github.com/magabrotheeeer/user-service/internal/lib/sl"
	"github.com/magabrotheeeer/user-service/internal/models"
	"github.com/magabrotheeeer/user-service/internal/storage"
)

// Значения пагинации по умолчанию.
const (
	DefaultPageSize = 10
	DefaultPage     = 1
)

const defaultCacheTTL = time.Hour

var (
	// ErrUserNotFound пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists пользователь с таким номером телефона уже существует.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidArgument входные данные не прошли проверку.
	ErrInvalidArgument = errors.New("invalid argument")
)

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// CountUsers возвращает общее число пользователей.
	CountUsers(ctx context.Context) (int64, error)
	// ListUsers возвращает страницу пользователей в порядке хранения.
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
	// GetUserByID возвращает пользователя по id.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	// GetUserByMobile возвращает пользователя по номеру телефона.
	GetUserByMobile(ctx context.Context, mobile string) (*models.User, error)
	// CreateUser сохраняет пользователя и возвращает назначенный id.
	CreateUser(ctx context.Context, user models.User) (int64, error)
	// UpdateUser перезаписывает изменяемые поля профиля.
	UpdateUser(ctx context.Context, user models.User) error
}

// PasswordHasher хеширует и проверяет пароли.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// Cache описывает методы для кэширования профилей.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значения из кеша по ключам.
	Invalidate(ctx context.Context, keys ...string) error
}

// EventPublisher публикует события об изменении профилей.
type EventPublisher interface {
	Publish(ctx context.Context, event models.UserEvent) error
}

// CreateUserRequest данные для создания пользователя.
type CreateUserRequest struct {
	Mobile   string `validate:"required,max=20"`
	NickName string `validate:"max=20"`
	Password string `validate:"required,maxbytes=72"`
}

// UpdateUserRequest данные для обновления профиля.
// Все три поля перезаписываются при каждом вызове.
type UpdateUserRequest struct {
	ID       int64
	NickName string `validate:"max=20"`
	Gender   string `validate:"omitempty,oneof=female male"`
	Birthday int64
}

// UserService реализует бизнес-логику работы с профилями.
type UserService struct {
	repo     UserRepository
	hasher   PasswordHasher
	cache    Cache
	events   EventPublisher
	log      *slog.Logger
	loc      *time.Location
	cacheTTL time.Duration
	validate *validator.Validate
	now      func() time.Time
}

// Option настраивает UserService.
type Option func(*UserService)

// WithCache включает кеширование профилей.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(s *UserService) {
		s.cache = cache
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithEvents включает публикацию событий.
func WithEvents(events EventPublisher) Option {
	return func(s *UserService) {
		s.events = events
	}
}

// WithLocation задаёт часовой пояс для дат рождения.
func WithLocation(loc *time.Location) Option {
	return func(s *UserService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// NewUserService создает новый экземпляр UserService.
// Без опций кеш и публикация событий выключены, даты трактуются в time.Local.
func NewUserService(repo UserRepository, hasher PasswordHasher, log *slog.Logger, opts ...Option) *UserService {
	s := &UserService{
		repo:     repo,
		hasher:   hasher,
		cache:    nopCache{},
		events:   nopEvents{},
		log:      log,
		loc:      time.Local,
		cacheTTL: defaultCacheTTL,
		validate: newValidator(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List возвращает страницу пользователей и общее их число.
// Нулевые pn и pSize заменяются значениями по умолчанию.
// Страница за пределами таблицы пуста, хранилище для неё не запрашивается.
func (s *UserService) List(ctx context.Context, pn, pSize uint32) (*models.UserList, error) {
	const op = "services.user.List"

	size := uint64(pSize)
	if size == 0 {
		size = DefaultPageSize
	}
	page := uint64(pn)
	if page == 0 {
		page = DefaultPage
	}
	// (2^32-1)*(2^32-2) помещается в uint64.
	offset := size * (page - 1)

	total, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if total <= 0 || offset >= uint64(total) {
		return &models.UserList{Total: total, Users: []*models.User{}}, nil
	}

	limit := min(size, uint64(total)-offset)
	users, err := s.repo.ListUsers(ctx, int(limit), int(offset))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.UserList{Total: total, Users: users}, nil
}

// GetByID возвращает пользователя по id, используя кеш или репозиторий.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "services.user.GetByID"
	return s.getCached(ctx, op, idKey(id), func() (*models.User, error) {
		return s.repo.GetUserByID(ctx, id)
	})
}

// GetByMobile возвращает пользователя по номеру телефона, используя кеш или репозиторий.
func (s *UserService) GetByMobile(ctx context.Context, mobile string) (*models.User, error) {
	const op = "services.user.GetByMobile"
	return s.getCached(ctx, op, mobileKey(mobile), func() (*models.User, error) {
		return s.repo.GetUserByMobile(ctx, mobile)
	})
}

// Create создаёт пользователя с ролью обычного пользователя.
// Возвращает ErrUserExists, если номер телефона уже занят.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	const op = "services.user.Create"

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrInvalidArgument, err.Error())
	}

	_, err := s.repo.GetUserByMobile(ctx, req.Mobile)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%s: %w", op, ErrUserExists)
	case !errors.Is(err, storage.ErrUserNotFound):
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		Mobile:       req.Mobile,
		PasswordHash: hash,
		NickName:     optional(req.NickName),
		Role:         models.RoleUser,
	}
	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}
	user.ID = id

	s.log.Info("created new user", slog.Int64("id", id))
	s.publish(ctx, models.EventUserCreated, &user)

	return &user, nil
}

// Update перезаписывает имя, пол и дату рождения пользователя.
// Сначала ищется запись, поэтому для несуществующего id ответ всегда ErrUserNotFound.
// Дата рождения берётся как календарный день момента Birthday в часовом поясе сервиса.
func (s *UserService) Update(ctx context.Context, req UpdateUserRequest) error {
	const op = "services.user.Update"

	user, err := s.repo.GetUserByID(ctx, req.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	if err = s.validate.Struct(req); err != nil {
		return fmt.Errorf("%s: %w: %s", op, ErrInvalidArgument, err.Error())
	}

	birthday := date.FromUnix(req.Birthday, s.loc)
	user.NickName = optional(req.NickName)
	user.Gender = optional(req.Gender)
	user.Birthday = &birthday

	if err = s.repo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	if err = s.cache.Invalidate(ctx, idKey(user.ID), mobileKey(user.Mobile)); err != nil {
		s.log.Warn("failed to invalidate cache", slog.Int64("id", user.ID), sl.Err(err))
	}

	s.log.Info("updated user", slog.Int64("id", user.ID))
	s.publish(ctx, models.EventUserUpdated, user)

	return nil
}

// CheckPassword сообщает, совпадает ли пароль с сохранённым хэшем.
// Хэш читается только из хранилища, в кеше его нет.
func (s *UserService) CheckPassword(ctx context.Context, mobile, password string) (bool, error) {
	const op = "services.user.CheckPassword"

	user, err := s.repo.GetUserByMobile(ctx, mobile)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}
	return s.hasher.Verify(password, user.PasswordHash), nil
}

func (s *UserService) getCached(ctx context.Context, op, key string, load func() (*models.User, error)) (*models.User, error) {
	var cached models.User
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	user, err := load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	if err := s.cache.Set(ctx, key, user, s.cacheTTL); err != nil {
		s.log.Warn("failed to cache user", slog.String("key", key), sl.Err(err))
	}
	return user, nil
}

func (s *UserService) publish(ctx context.Context, eventType string, user *models.User) {
	event := models.UserEvent{
		Type:       eventType,
		UserID:     user.ID,
		Mobile:     user.Mobile,
		OccurredAt: s.now().UTC(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn("failed to publish user event",
			slog.String("type", eventType),
			slog.Int64("id", user.ID),
			sl.Err(err),
		)
	}
}

// mapStorageErr переводит ошибки хранилища в ошибки сервиса.
func mapStorageErr(err error) error {
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, storage.ErrUserExists):
		return ErrUserExists
	default:
		return err
	}
}

// newValidator добавляет к стандартным правилам maxbytes: длину строки в байтах.
// Встроенное max считает руны.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})
	return v
}

// optional превращает пустую строку в отсутствующее значение.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func idKey(id int64) string {
	return fmt.Sprintf("user:id:%d", id)
}

func mobileKey(mobile string) string {
	return "user:mobile:" + mobile
}

// nopCache используется, когда кеш выключен.
type nopCache struct{}

func (nopCache) Get(context.Context, string, any) (bool, error) {
	return false, nil
}

func (nopCache) Set(context.Context, string, any, time.Duration) error {
	return nil
}

func (nopCache) Invalidate(context.Context, ...string) error {
	return nil
}

// nopEvents используется, когда публикация событий выключена.
type nopEvents struct{}

func (nopEvents) Publish(context.Context, models.UserEvent) error {
	return nil
}
