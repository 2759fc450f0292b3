package usecase

import (
	"context"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/GoArmGo/BlogApp/internal/dto"
)

// UserUseCase определяет бизнес-логику работы с пользователями
type UserUseCase interface {
	// Create регистрирует пользователя, пароль сохраняется в виде bcrypt-хэша
	Create(ctx context.Context, in dto.CreateUserDTO) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindOne(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, in dto.UpdateUserDTO) (*domain.User, error)
	Remove(ctx context.Context, id int64) (*domain.User, error)
}

// PasswordHasher хэширует пароли перед сохранением
type PasswordHasher interface {
	Hash(password string) (string, error)
}
