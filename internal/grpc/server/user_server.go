// Package server реализует gRPC-сервер сервиса пользователей.
//
// UserServer принимает запросы, делегирует бизнес-логику UserService,
// переводит профили во внешнее представление и ошибки в коды gRPC.
package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	userpb "github.com/magabrotheeeer/user-service/internal/grpc/gen"
	"github.com/magabrotheeeer/user-service/internal/lib/sl"
	"github.com/magabrotheeeer/user-service/internal/models"
	services "github.com/magabrotheeeer/user-service/internal/services/user"
)

// UserService описывает бизнес-логику, которую использует сервер.
type UserService interface {
	List(ctx context.Context, pn, pSize uint32) (*models.UserList, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByMobile(ctx context.Context, mobile string) (*models.User, error)
	Create(ctx context.Context, req services.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, req services.UpdateUserRequest) error
	CheckPassword(ctx context.Context, mobile, password string) (bool, error)
}

// UserServer реализует gRPC-сервис User
type UserServer struct {
	userpb.UnimplementedUserServer
	userService UserService
	loc         *time.Location
	log         *slog.Logger
}

// NewUserServer создает новый экземпляр UserServer.
// loc задаёт часовой пояс, в котором дата рождения переводится в Unix-время.
func NewUserServer(userService UserService, loc *time.Location, logger *slog.Logger) *UserServer {
	if loc == nil {
		loc = time.Local
	}
	return &UserServer{
		userService: userService,
		loc:         loc,
		log:         logger,
	}
}

// GetUserList возвращает страницу пользователей и общее их число
func (s *UserServer) GetUserList(ctx context.Context, req *userpb.PageInfo) (*userpb.UserListResponse, error) {
	s.log.Debug("GetUserList request", slog.Any("pn", req.GetPn()), slog.Any("p_size", req.GetPSize()))

	list, err := s.userService.List(ctx, req.GetPn(), req.GetPSize())
	if err != nil {
		return &userpb.UserListResponse{}, s.toStatus(ctx, "GetUserList", err)
	}

	resp := &userpb.UserListResponse{
		Total: list.Total,
		Data:  make([]*userpb.UserInfoResponse, 0, len(list.Users)),
	}
	for _, u := range list.Users {
		resp.Data = append(resp.Data, toUserInfo(u, s.loc))
	}
	return resp, nil
}

// GetUserById возвращает профиль по id
func (s *UserServer) GetUserById(ctx context.Context, req *userpb.IdRequest) (*userpb.UserInfoResponse, error) {
	s.log.Debug("GetUserById request", slog.Int64("id", req.GetId()))

	user, err := s.userService.GetByID(ctx, req.GetId())
	if err != nil {
		return &userpb.UserInfoResponse{}, s.toStatus(ctx, "GetUserById", err)
	}
	return toUserInfo(user, s.loc), nil
}

// GetUserByMobile возвращает профиль по номеру телефона
func (s *UserServer) GetUserByMobile(ctx context.Context, req *userpb.MobileRequest) (*userpb.UserInfoResponse, error) {
	s.log.Debug("GetUserByMobile request", slog.String("mobile", req.GetMobile()))

	user, err := s.userService.GetByMobile(ctx, req.GetMobile())
	if err != nil {
		return &userpb.UserInfoResponse{}, s.toStatus(ctx, "GetUserByMobile", err)
	}
	return toUserInfo(user, s.loc), nil
}

// CreateUser создает нового пользователя
func (s *UserServer) CreateUser(ctx context.Context, req *userpb.CreateUserInfo) (*userpb.UserInfoResponse, error) {
	s.log.Info("CreateUser request", slog.String("mobile", req.GetMobile()))

	user, err := s.userService.Create(ctx, services.CreateUserRequest{
		Mobile:   req.GetMobile(),
		NickName: req.GetNickName(),
		Password: req.GetPassword(),
	})
	if err != nil {
		return &userpb.UserInfoResponse{}, s.toStatus(ctx, "CreateUser", err)
	}
	return toUserInfo(user, s.loc), nil
}

// UpdateUser перезаписывает имя, пол и дату рождения пользователя
func (s *UserServer) UpdateUser(ctx context.Context, req *userpb.UpdateUserInfo) (*emptypb.Empty, error) {
	s.log.Info("UpdateUser request", slog.Int64("id", req.GetId()))

	err := s.userService.Update(ctx, services.UpdateUserRequest{
		ID:       req.GetId(),
		NickName: req.GetNickName(),
		Gender:   req.GetGender(),
		Birthday: req.GetBirthday(),
	})
	if err != nil {
		return &emptypb.Empty{}, s.toStatus(ctx, "UpdateUser", err)
	}
	return &emptypb.Empty{}, nil
}

// CheckPassword проверяет пароль пользователя по номеру телефона
func (s *UserServer) CheckPassword(ctx context.Context, req *userpb.PasswordCheckInfo) (*userpb.CheckResponse, error) {
	s.log.Debug("CheckPassword request", slog.String("mobile", req.GetMobile()))

	ok, err := s.userService.CheckPassword(ctx, req.GetMobile(), req.GetPassword())
	if err != nil {
		return &userpb.CheckResponse{}, s.toStatus(ctx, "CheckPassword", err)
	}
	return &userpb.CheckResponse{Success: ok}, nil
}

// toStatus переводит ошибку сервиса в статус gRPC.
// Непредвиденные ошибки логируются, клиенту уходит только код Internal.
func (s *UserServer) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return status.Error(codes.NotFound, "user not found")
	case errors.Is(err, services.ErrUserExists):
		return status.Error(codes.AlreadyExists, "user already exists")
	case errors.Is(err, services.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		s.log.Error(method+" failed",
			sl.Op("server."+method),
			slog.String("request_id", RequestIDFromContext(ctx)),
			sl.Err(err),
		)
		return status.Error(codes.Internal, "internal error")
	}
}
