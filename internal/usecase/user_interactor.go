package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/GoArmGo/BlogApp/internal/dto"
	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
)

// userUseCase implements UserUseCase
type userUseCase struct {
	userStorage ports.UserStorage
	hasher      PasswordHasher
	publisher   ports.ResourceEventPublisher
	logger      *slog.Logger
}

// NewUserUseCase создает новый экземпляр UserUseCase
func NewUserUseCase(
	userStorage ports.UserStorage,
	hasher PasswordHasher,
	publisher ports.ResourceEventPublisher,
	logger *slog.Logger,
) UserUseCase {
	if publisher == nil {
		publisher = ports.NoopPublisher{}
	}
	return &userUseCase{
		userStorage: userStorage,
		hasher:      hasher,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *userUseCase) Create(ctx context.Context, in dto.CreateUserDTO) (*domain.User, error) {
	hashed, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("usecase: create user: %w", err)
	}

	user := &domain.User{
		Email:    in.Email,
		Name:     in.Name,
		Password: hashed,
	}
	if err := uc.userStorage.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("usecase: create user: %w", err)
	}

	uc.logger.Info("user created", "id", user.ID)
	publish(ctx, uc.publisher, uc.logger, payloads.ResourceUser, payloads.ActionCreated, user.ID)
	return user, nil
}

func (uc *userUseCase) FindAll(ctx context.Context) ([]domain.User, error) {
	users, err := uc.userStorage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: list users: %w", err)
	}
	return users, nil
}

func (uc *userUseCase) FindOne(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userStorage.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: get user: %w", err)
	}
	return user, nil
}

func (uc *userUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserDTO) (*domain.User, error) {
	changes := in.Changes()
	if in.Password != nil {
		hashed, err := uc.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("usecase: update user: %w", err)
		}
		changes["password"] = hashed
	}

	user, err := uc.userStorage.UpdateUser(ctx, id, changes)
	if err != nil {
		return nil, fmt.Errorf("usecase: update user: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	publish(ctx, uc.publisher, uc.logger, payloads.ResourceUser, payloads.ActionUpdated, user.ID)
	return user, nil
}

func (uc *userUseCase) Remove(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userStorage.DeleteUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: delete user: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	uc.logger.Info("user removed", "id", user.ID)
	publish(ctx, uc.publisher, uc.logger, payloads.ResourceUser, payloads.ActionRemoved, user.ID)
	return user, nil
}
