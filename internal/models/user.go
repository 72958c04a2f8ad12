// Package models содержит доменную модель профиля пользователя.
// Структура используется в бизнес-логике, при работе с хранилищем и кешем.
package models

import "time"

// Роли пользователя.
const (
	RoleUser  = 1 // Обычный пользователь
	RoleAdmin = 2 // Администратор
)

// Допустимые значения пола.
const (
	GenderFemale = "female"
	GenderMale   = "male"
)

// User представляет профиль пользователя.
//
// Необязательные поля хранятся указателями: nil означает отсутствие значения.
type User struct {
	ID           int64      `json:"id"`                 // Идентификатор, назначается хранилищем
	Mobile       string     `json:"mobile"`             // Номер телефона, уникален
	PasswordHash string     `json:"-"`                  // Хэш пароля, наружу не отдаётся
	NickName     *string    `json:"nick_name,omitempty"`
	HeadURL      *string    `json:"head_url,omitempty"`
	Birthday     *time.Time `json:"birthday,omitempty"` // Календарная дата (полночь UTC)
	Address      *string    `json:"address,omitempty"`
	Desc         *string    `json:"desc,omitempty"`
	Gender       *string    `json:"gender,omitempty"` // female или male
	Role         int        `json:"role"`
}

// UserList страница пользователей и общее число записей в таблице.
type UserList struct {
	Total int64
	Users []*User
}

// Типы событий, они же ключи маршрутизации в брокере.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
)

// UserEvent событие об изменении профиля, публикуемое в брокер.
type UserEvent struct {
	Type       string    `json:"type"`
	UserID     int64     `json:"user_id"`
	Mobile     string    `json:"mobile"`
	OccurredAt time.Time `json:"occurred_at"`
}
