package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/user-service/internal/models"
	"github.com/magabrotheeeer/user-service/internal/storage"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepoMock) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *RepoMock) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepoMock) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	args := m.Called(ctx, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepoMock) CreateUser(ctx context.Context, user models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepoMock) UpdateUser(ctx context.Context, user models.User) error {
	return m.Called(ctx, user).Error(0)
}

type HasherMock struct{ mock.Mock }

func (m *HasherMock) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *HasherMock) Verify(plain, hash string) bool {
	return m.Called(plain, hash).Bool(0)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *CacheMock) Invalidate(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

type EventsMock struct{ mock.Mock }

func (m *EventsMock) Publish(ctx context.Context, event models.UserEvent) error {
	return m.Called(ctx, event).Error(0)
}

var (
	_ UserRepository = (*RepoMock)(nil)
	_ PasswordHasher = (*HasherMock)(nil)
	_ Cache          = (*CacheMock)(nil)
	_ EventPublisher = (*EventsMock)(nil)
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strp(s string) *string { return &s }

func notFound(op string) error {
	return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
}

func TestUserService_List_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		pn, pSize  uint32
		total      int64
		wantLimit  int
		wantOffset int
	}{
		{name: "both absent", pn: 0, pSize: 0, total: 1000, wantLimit: 10, wantOffset: 0},
		{name: "first page", pn: 1, pSize: 10, total: 1000, wantLimit: 10, wantOffset: 0},
		{name: "second page of two", pn: 2, pSize: 2, total: 1000, wantLimit: 2, wantOffset: 2},
		{name: "page without size", pn: 3, pSize: 0, total: 1000, wantLimit: 10, wantOffset: 20},
		{name: "size without page", pn: 0, pSize: 5, total: 1000, wantLimit: 5, wantOffset: 0},
		{name: "last partial page", pn: 100, pSize: 10, total: 995, wantLimit: 5, wantOffset: 990},
		{name: "huge page size", pn: 1, pSize: math.MaxUint32, total: 2, wantLimit: 2, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			repo.On("CountUsers", mock.Anything).Return(tt.total, nil).Once()
			repo.On("ListUsers", mock.Anything, tt.wantLimit, tt.wantOffset).
				Return([]*models.User{}, nil).Once()

			svc := NewUserService(repo, new(HasherMock), newTestLogger())
			res, err := svc.List(context.Background(), tt.pn, tt.pSize)

			require.NoError(t, err)
			assert.Equal(t, tt.total, res.Total)
			assert.Empty(t, res.Users)
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_List_BeyondTheEnd(t *testing.T) {
	tests := []struct {
		name      string
		pn, pSize uint32
		total     int64
	}{
		{name: "page after the last one", pn: 100, pSize: 10, total: 2},
		{name: "maximal page and size", pn: math.MaxUint32, pSize: math.MaxUint32, total: 2},
		{name: "empty table", pn: 1, pSize: 10, total: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			repo.On("CountUsers", mock.Anything).Return(tt.total, nil).Once()

			svc := NewUserService(repo, new(HasherMock), newTestLogger())
			res, err := svc.List(context.Background(), tt.pn, tt.pSize)

			require.NoError(t, err)
			assert.Equal(t, tt.total, res.Total)
			assert.NotNil(t, res.Users)
			assert.Empty(t, res.Users)
			repo.AssertNotCalled(t, "ListUsers", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUserService_List_Errors(t *testing.T) {
	repo := new(RepoMock)
	repo.On("CountUsers", mock.Anything).Return(int64(0), errors.New("db down")).Once()

	svc := NewUserService(repo, new(HasherMock), newTestLogger())
	res, err := svc.List(context.Background(), 1, 10)

	assert.Error(t, err)
	assert.Nil(t, res)
	repo.AssertNotCalled(t, "ListUsers", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_GetByID(t *testing.T) {
	alice := &models.User{ID: 1, Mobile: "13800000001", NickName: strp("Alice"), Role: models.RoleUser}

	tests := []struct {
		name      string
		repoSetup func(*RepoMock)
		wantErr   error
	}{
		{
			name: "found",
			repoSetup: func(m *RepoMock) {
				m.On("GetUserByID", mock.Anything, int64(1)).Return(alice, nil).Once()
			},
		},
		{
			name: "not found",
			repoSetup: func(m *RepoMock) {
				m.On("GetUserByID", mock.Anything, int64(1)).Return(nil, notFound("storage.GetUserByID")).Once()
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "storage failure",
			repoSetup: func(m *RepoMock) {
				m.On("GetUserByID", mock.Anything, int64(1)).Return(nil, assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.repoSetup(repo)

			svc := NewUserService(repo, new(HasherMock), newTestLogger())
			got, err := svc.GetByID(context.Background(), 1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, alice, got)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_GetByMobile_NotFound(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetUserByMobile", mock.Anything, "13800000099").
		Return(nil, notFound("storage.GetUserByMobile")).Once()

	svc := NewUserService(repo, new(HasherMock), newTestLogger())
	got, err := svc.GetByMobile(context.Background(), "13800000099")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, got)
}

func TestUserService_GetByID_CacheHit(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	cache.On("Get", mock.Anything, "user:id:1", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			u := args.Get(2).(*models.User)
			*u = models.User{ID: 1, Mobile: "13800000001", Role: models.RoleUser}
		}).
		Return(true, nil).Once()

	svc := NewUserService(repo, new(HasherMock), newTestLogger(), WithCache(cache, time.Minute))
	got, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "13800000001", got.Mobile)
	repo.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestUserService_GetByMobile_CacheMissStores(t *testing.T) {
	bob := &models.User{ID: 2, Mobile: "13800000002", Role: models.RoleUser}

	repo := new(RepoMock)
	repo.On("GetUserByMobile", mock.Anything, "13800000002").Return(bob, nil).Once()

	cache := new(CacheMock)
	cache.On("Get", mock.Anything, "user:mobile:13800000002", mock.Anything).Return(false, nil).Once()
	cache.On("Set", mock.Anything, "user:mobile:13800000002", bob, time.Minute).Return(nil).Once()

	svc := NewUserService(repo, new(HasherMock), newTestLogger(), WithCache(cache, time.Minute))
	got, err := svc.GetByMobile(context.Background(), "13800000002")

	require.NoError(t, err)
	assert.Equal(t, bob, got)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestUserService_GetByID_CacheErrorsAreIgnored(t *testing.T) {
	alice := &models.User{ID: 1, Mobile: "13800000001", Role: models.RoleUser}

	repo := new(RepoMock)
	repo.On("GetUserByID", mock.Anything, int64(1)).Return(alice, nil).Once()

	cache := new(CacheMock)
	cache.On("Get", mock.Anything, "user:id:1", mock.Anything).Return(false, errors.New("redis down")).Once()
	cache.On("Set", mock.Anything, "user:id:1", alice, defaultCacheTTL).Return(errors.New("redis down")).Once()

	svc := NewUserService(repo, new(HasherMock), newTestLogger(), WithCache(cache, 0))
	got, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, alice, got)
	cache.AssertExpectations(t)
}

func TestUserService_Create(t *testing.T) {
	repo := new(RepoMock)
	hasher := new(HasherMock)
	events := new(EventsMock)

	repo.On("GetUserByMobile", mock.Anything, "13800000001").
		Return(nil, notFound("storage.GetUserByMobile")).Once()
	hasher.On("Hash", "admin123").Return("hashed", nil).Once()
	repo.On("CreateUser", mock.Anything, models.User{
		Mobile:       "13800000001",
		PasswordHash: "hashed",
		NickName:     strp("Alice"),
		Role:         models.RoleUser,
	}).Return(int64(1), nil).Once()
	events.On("Publish", mock.Anything, mock.MatchedBy(func(e models.UserEvent) bool {
		return e.Type == models.EventUserCreated && e.UserID == 1 && e.Mobile == "13800000001"
	})).Return(nil).Once()

	svc := NewUserService(repo, hasher, newTestLogger(), WithEvents(events))
	got, err := svc.Create(context.Background(), CreateUserRequest{
		Mobile:   "13800000001",
		NickName: "Alice",
		Password: "admin123",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Alice", *got.NickName)
	assert.Equal(t, models.RoleUser, got.Role)
	assert.Nil(t, got.Gender)
	assert.Nil(t, got.Birthday)
	repo.AssertExpectations(t)
	hasher.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestUserService_Create_EmptyNickNameIsAbsent(t *testing.T) {
	repo := new(RepoMock)
	hasher := new(HasherMock)

	repo.On("GetUserByMobile", mock.Anything, "13800000001").
		Return(nil, notFound("storage.GetUserByMobile")).Once()
	hasher.On("Hash", "pw").Return("hashed", nil).Once()
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.NickName == nil
	})).Return(int64(3), nil).Once()

	svc := NewUserService(repo, hasher, newTestLogger())
	got, err := svc.Create(context.Background(), CreateUserRequest{Mobile: "13800000001", Password: "pw"})

	require.NoError(t, err)
	assert.Nil(t, got.NickName)
	repo.AssertExpectations(t)
}

func TestUserService_Create_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		setup   func(*RepoMock, *HasherMock)
		wantErr error
	}{
		{
			name:    "missing mobile",
			req:     CreateUserRequest{Password: "pw"},
			setup:   func(*RepoMock, *HasherMock) {},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "missing password",
			req:     CreateUserRequest{Mobile: "13800000001"},
			setup:   func(*RepoMock, *HasherMock) {},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "mobile too long",
			req:     CreateUserRequest{Mobile: "123456789012345678901", Password: "pw"},
			setup:   func(*RepoMock, *HasherMock) {},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "nick name too long",
			req:     CreateUserRequest{Mobile: "13800000001", NickName: "abcdefghijklmnopqrstu", Password: "pw"},
			setup:   func(*RepoMock, *HasherMock) {},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "password longer than 72 bytes",
			req:     CreateUserRequest{Mobile: "13800000001", Password: strings.Repeat("x", 73)},
			setup:   func(*RepoMock, *HasherMock) {},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "password of 37 cyrillic letters is 74 bytes",
			req:     CreateUserRequest{Mobile: "13800000001", Password: strings.Repeat("я", 37)},
			setup:   func(*RepoMock, *HasherMock) {},
			wantErr: ErrInvalidArgument,
		},
		{
			name: "mobile already registered",
			req:  CreateUserRequest{Mobile: "13800000001", Password: "pw"},
			setup: func(r *RepoMock, _ *HasherMock) {
				r.On("GetUserByMobile", mock.Anything, "13800000001").
					Return(&models.User{ID: 1, Mobile: "13800000001"}, nil).Once()
			},
			wantErr: ErrUserExists,
		},
		{
			name: "lost race on unique constraint",
			req:  CreateUserRequest{Mobile: "13800000001", Password: "pw"},
			setup: func(r *RepoMock, h *HasherMock) {
				r.On("GetUserByMobile", mock.Anything, "13800000001").
					Return(nil, notFound("storage.GetUserByMobile")).Once()
				h.On("Hash", "pw").Return("hashed", nil).Once()
				r.On("CreateUser", mock.Anything, mock.Anything).
					Return(int64(0), fmt.Errorf("storage.CreateUser: %w", storage.ErrUserExists)).Once()
			},
			wantErr: ErrUserExists,
		},
		{
			name: "lookup failure",
			req:  CreateUserRequest{Mobile: "13800000001", Password: "pw"},
			setup: func(r *RepoMock, _ *HasherMock) {
				r.On("GetUserByMobile", mock.Anything, "13800000001").Return(nil, assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
		{
			name: "hash failure",
			req:  CreateUserRequest{Mobile: "13800000001", Password: "pw"},
			setup: func(r *RepoMock, h *HasherMock) {
				r.On("GetUserByMobile", mock.Anything, "13800000001").
					Return(nil, notFound("storage.GetUserByMobile")).Once()
				h.On("Hash", "pw").Return("", assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			hasher := new(HasherMock)
			tt.setup(repo, hasher)

			svc := NewUserService(repo, hasher, newTestLogger())
			got, err := svc.Create(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
			repo.AssertExpectations(t)
			hasher.AssertExpectations(t)
		})
	}
}

func TestUserService_Create_PublishFailureIsIgnored(t *testing.T) {
	repo := new(RepoMock)
	hasher := new(HasherMock)
	events := new(EventsMock)

	repo.On("GetUserByMobile", mock.Anything, "13800000001").
		Return(nil, notFound("storage.GetUserByMobile")).Once()
	hasher.On("Hash", "pw").Return("hashed", nil).Once()
	repo.On("CreateUser", mock.Anything, mock.Anything).Return(int64(5), nil).Once()
	events.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	svc := NewUserService(repo, hasher, newTestLogger(), WithEvents(events))
	got, err := svc.Create(context.Background(), CreateUserRequest{Mobile: "13800000001", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	events.AssertExpectations(t)
}

func TestUserService_Update_OverwritesAllFields(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	oldBirthday := time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		req          UpdateUserRequest
		wantNick     *string
		wantGender   *string
		wantBirthday time.Time
	}{
		{
			name:         "all fields set",
			req:          UpdateUserRequest{ID: 2, NickName: "Bobby", Gender: "male", Birthday: 642891600},
			wantNick:     strp("Bobby"),
			wantGender:   strp("male"),
			wantBirthday: time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "empty fields clear previous values",
			req:          UpdateUserRequest{ID: 2},
			wantNick:     nil,
			wantGender:   nil,
			wantBirthday: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := &models.User{
				ID:       2,
				Mobile:   "13800000002",
				NickName: strp("Bob"),
				Gender:   strp("female"),
				Birthday: &oldBirthday,
				Address:  strp("Street 1"),
				Role:     models.RoleUser,
			}

			repo := new(RepoMock)
			cache := new(CacheMock)
			events := new(EventsMock)

			repo.On("GetUserByID", mock.Anything, int64(2)).Return(existing, nil).Once()
			repo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
				return u.ID == 2 &&
					u.Mobile == "13800000002" &&
					assert.ObjectsAreEqual(tt.wantNick, u.NickName) &&
					assert.ObjectsAreEqual(tt.wantGender, u.Gender) &&
					u.Birthday != nil && u.Birthday.Equal(tt.wantBirthday) &&
					u.Address != nil && *u.Address == "Street 1"
			})).Return(nil).Once()
			cache.On("Invalidate", mock.Anything, []string{"user:id:2", "user:mobile:13800000002"}).Return(nil).Once()
			events.On("Publish", mock.Anything, mock.MatchedBy(func(e models.UserEvent) bool {
				return e.Type == models.EventUserUpdated && e.UserID == 2
			})).Return(nil).Once()

			svc := NewUserService(repo, new(HasherMock), newTestLogger(),
				WithLocation(loc), WithCache(cache, time.Minute), WithEvents(events))
			err := svc.Update(context.Background(), tt.req)

			require.NoError(t, err)
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
			events.AssertExpectations(t)
		})
	}
}

func TestUserService_Update_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateUserRequest
		setup   func(*RepoMock)
		wantErr error
	}{
		{
			name: "unknown gender",
			req:  UpdateUserRequest{ID: 1, Gender: "other"},
			setup: func(r *RepoMock) {
				r.On("GetUserByID", mock.Anything, int64(1)).Return(&models.User{ID: 1, Mobile: "1"}, nil).Once()
			},
			wantErr: ErrInvalidArgument,
		},
		{
			name: "nick name too long",
			req:  UpdateUserRequest{ID: 1, NickName: "abcdefghijklmnopqrstu"},
			setup: func(r *RepoMock) {
				r.On("GetUserByID", mock.Anything, int64(1)).Return(&models.User{ID: 1, Mobile: "1"}, nil).Once()
			},
			wantErr: ErrInvalidArgument,
		},
		{
			name: "unknown id wins over invalid input",
			req:  UpdateUserRequest{ID: 999, Gender: "other"},
			setup: func(r *RepoMock) {
				r.On("GetUserByID", mock.Anything, int64(999)).Return(nil, notFound("storage.GetUserByID")).Once()
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "user not found",
			req:  UpdateUserRequest{ID: 999},
			setup: func(r *RepoMock) {
				r.On("GetUserByID", mock.Anything, int64(999)).Return(nil, notFound("storage.GetUserByID")).Once()
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "deleted between read and write",
			req:  UpdateUserRequest{ID: 1},
			setup: func(r *RepoMock) {
				r.On("GetUserByID", mock.Anything, int64(1)).Return(&models.User{ID: 1, Mobile: "1"}, nil).Once()
				r.On("UpdateUser", mock.Anything, mock.Anything).Return(notFound("storage.UpdateUser")).Once()
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setup(repo)

			svc := NewUserService(repo, new(HasherMock), newTestLogger())
			err := svc.Update(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_CheckPassword(t *testing.T) {
	tests := []struct {
		name    string
		valid   bool
		repoErr error
		wantErr error
	}{
		{name: "correct password", valid: true},
		{name: "wrong password", valid: false},
		{name: "unknown mobile", repoErr: notFound("storage.GetUserByMobile"), wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			hasher := new(HasherMock)

			if tt.repoErr != nil {
				repo.On("GetUserByMobile", mock.Anything, "13800000001").Return(nil, tt.repoErr).Once()
			} else {
				repo.On("GetUserByMobile", mock.Anything, "13800000001").
					Return(&models.User{ID: 1, Mobile: "13800000001", PasswordHash: "hashed"}, nil).Once()
				hasher.On("Verify", "admin123", "hashed").Return(tt.valid).Once()
			}

			svc := NewUserService(repo, hasher, newTestLogger())
			ok, err := svc.CheckPassword(context.Background(), "13800000001", "admin123")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, ok)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.valid, ok)
			}
			repo.AssertExpectations(t)
			hasher.AssertExpectations(t)
		})
	}
}

func TestNewUserService_Defaults(t *testing.T) {
	svc := NewUserService(new(RepoMock), new(HasherMock), newTestLogger(), WithLocation(nil))

	assert.Equal(t, time.Local, svc.loc)
	assert.Equal(t, defaultCacheTTL, svc.cacheTTL)
}
