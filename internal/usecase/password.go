package usecase

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost задаёт число раундов bcrypt для паролей пользователей
const DefaultHashCost = 10

// BcryptHasher реализует PasswordHasher
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher(cost int) BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultHashCost
	}
	return BcryptHasher{Cost: cost}
}

func (h BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}
