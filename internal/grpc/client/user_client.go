// Package client содержит gRPC-клиент сервиса пользователей.
package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	userpb "github.com/magabrotheeeer/user-service/internal/grpc/gen"
)

// UserClient обёртка над сгенерированным клиентом сервиса User.
type UserClient struct {
	conn   *grpc.ClientConn
	client userpb.UserClient
}

// NewUserClient создаёт клиент для сервиса по адресу addr.
// Соединение устанавливается лениво, при первом вызове.
func NewUserClient(addr string, opts ...grpc.DialOption) (*UserClient, error) {
	const op = "client.NewUserClient"

	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &UserClient{conn: conn, client: userpb.NewUserClient(conn)}, nil
}

// Close закрывает соединение.
func (c *UserClient) Close() error {
	return c.conn.Close()
}

func (c *UserClient) GetUserList(ctx context.Context, pn, pSize uint32) (*userpb.UserListResponse, error) {
	return c.client.GetUserList(ctx, &userpb.PageInfo{Pn: pn, PSize: pSize})
}

func (c *UserClient) GetUserByID(ctx context.Context, id int64) (*userpb.UserInfoResponse, error) {
	return c.client.GetUserById(ctx, &userpb.IdRequest{Id: id})
}

func (c *UserClient) GetUserByMobile(ctx context.Context, mobile string) (*userpb.UserInfoResponse, error) {
	return c.client.GetUserByMobile(ctx, &userpb.MobileRequest{Mobile: mobile})
}

func (c *UserClient) CreateUser(ctx context.Context, nickName, password, mobile string) (*userpb.UserInfoResponse, error) {
	return c.client.CreateUser(ctx, &userpb.CreateUserInfo{
		NickName: nickName,
		Password: password,
		Mobile:   mobile,
	})
}

func (c *UserClient) UpdateUser(ctx context.Context, id int64, nickName, gender string, birthday int64) error {
	_, err := c.client.UpdateUser(ctx, &userpb.UpdateUserInfo{
		Id:       id,
		NickName: nickName,
		Gender:   gender,
		Birthday: birthday,
	})
	return err
}

func (c *UserClient) CheckPassword(ctx context.Context, mobile, password string) (bool, error) {
	resp, err := c.client.CheckPassword(ctx, &userpb.PasswordCheckInfo{
		Mobile:   mobile,
		Password: password,
	})
	if err != nil {
		return false, err
	}
	return resp.GetSuccess(), nil
}
