package server

import (
	"time"

	"google.golang.org/protobuf/proto"

	userpb "github.com/magabrotheeeer/user-service/internal/grpc/gen"
	"github.com/magabrotheeeer/user-service/internal/lib/date"
	"github.com/magabrotheeeer/user-service/internal/models"
)

// toUserInfo переводит профиль во внешнее представление.
// id, mobile и role передаются всегда, остальные поля только при наличии значения.
// Хэш пароля наружу не попадает.
func toUserInfo(u *models.User, loc *time.Location) *userpb.UserInfoResponse {
	resp := &userpb.UserInfoResponse{
		Id:     u.ID,
		Mobile: u.Mobile,
		Role:   int32(u.Role),
	}
	if u.NickName != nil {
		resp.NickName = proto.String(*u.NickName)
	}
	if u.Gender != nil {
		resp.Gender = proto.String(*u.Gender)
	}
	if u.Birthday != nil {
		resp.Birthday = proto.Int64(date.ToUnix(*u.Birthday, loc))
	}
	return resp
}
