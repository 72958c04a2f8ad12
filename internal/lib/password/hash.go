// Package password реализует хеширование и проверку паролей.
//
// Новые пароли хешируются bcrypt. Проверка дополнительно понимает
// хэши формата $pbkdf2-sha256$<rounds>$<salt>$<checksum>, оставшиеся
// от прежней версии сервиса.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

const legacyPrefix = "$pbkdf2-sha256$"

// MaxLength наибольшая длина пароля в байтах, которую принимает bcrypt.
const MaxLength = 72

var (
	// ErrUnknownFormat возвращается, если формат хэша не распознан.
	ErrUnknownFormat = errors.New("unknown hash format")
	// ErrTooLong пароль длиннее MaxLength байт.
	ErrTooLong = errors.New("password is longer than 72 bytes")
)

// CompareHash сравнивает хэш с введённым паролем.
//
// Возвращает nil, если пароль соответствует хэшу, иначе ошибку.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	if strings.HasPrefix(originalHash, legacyPrefix) {
		if err := compareLegacy(originalHash, externalPassword); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Hasher хеширует пароли bcrypt с заданной стоимостью.
type Hasher struct {
	cost int
}

// NewHasher создаёт Hasher. Стоимость вне допустимого диапазона заменяется на bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash возвращает хэш пароля.
func (h *Hasher) Hash(plain string) (string, error) {
	return hashWithCost(plain, h.cost)
}

// Verify сообщает, соответствует ли пароль хэшу.
func (h *Hasher) Verify(plain, hash string) bool {
	return CompareHash(hash, plain) == nil
}

func hashWithCost(password string, cost int) (string, error) {
	const op = "password.Hash"
	if len(password) > MaxLength {
		return "", fmt.Errorf("%s: %w", op, ErrTooLong)
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// compareLegacy проверяет пароль по хэшу pbkdf2-sha256.
// Соль и контрольная сумма закодированы base64 без паддинга, '+' заменён на '.'.
func compareLegacy(hash, password string) error {
	parts := strings.Split(strings.TrimPrefix(hash, legacyPrefix), "$")
	if len(parts) != 3 {
		return ErrUnknownFormat
	}
	rounds, err := strconv.Atoi(parts[0])
	if err != nil || rounds <= 0 {
		return ErrUnknownFormat
	}
	salt, err := decodeAB64(parts[1])
	if err != nil {
		return ErrUnknownFormat
	}
	checksum, err := decodeAB64(parts[2])
	if err != nil || len(checksum) == 0 {
		return ErrUnknownFormat
	}

	derived := pbkdf2.Key([]byte(password), salt, rounds, len(checksum), sha256.New)
	if subtle.ConstantTimeCompare(derived, checksum) != 1 {
		return bcrypt.ErrMismatchedHashAndPassword
	}
	return nil
}

func decodeAB64(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.ReplaceAll(s, ".", "+"))
}
