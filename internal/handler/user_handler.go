package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/GoArmGo/BlogApp/internal/dto"
	"github.com/GoArmGo/BlogApp/internal/usecase"
	"github.com/go-chi/render"
)

// UserHandler обработчик HTTP-запросов для работы с пользователями.
// Все методы, кроме Create, вызываются только за JWTAuthGuard.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *slog.Logger
}

func NewUserHandler(uc usecase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: uc,
		logger:      logger,
	}
}

// Create обрабатывает POST /users (регистрация, без токена)
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in dto.CreateUserDTO
	if err := render.Bind(r, &in); err != nil {
		respondBindError(w, r, err, h.logger)
		return
	}

	user, err := h.userUseCase.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	respondSuccess(w, r, http.StatusCreated, render.M{"user": domain.NewUserEntity(user)}, h.logger)
}

func (h *UserHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUseCase.FindAll(r.Context())
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	respondSuccess(w, r, http.StatusOK, render.M{"users": domain.NewUserEntities(users)}, h.logger)
}

func (h *UserHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	user, err := h.userUseCase.FindOne(r.Context(), IDFromContext(r.Context()))
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	if user == nil {
		respondFail(w, r, http.StatusNotFound, msgUserNotFound, h.logger)
		return
	}

	respondSuccess(w, r, http.StatusOK, render.M{"user": domain.NewUserEntity(user)}, h.logger)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in dto.UpdateUserDTO
	if err := bindPatch(r, &in); err != nil {
		respondBindError(w, r, err, h.logger)
		return
	}

	user, err := h.userUseCase.Update(r.Context(), IDFromContext(r.Context()), in)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	if user == nil {
		respondFail(w, r, http.StatusNotFound, msgUserNotFound, h.logger)
		return
	}

	respondSuccess(w, r, http.StatusOK, render.M{"user": domain.NewUserEntity(user)}, h.logger)
}

func (h *UserHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, err := h.userUseCase.Remove(r.Context(), IDFromContext(r.Context()))
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	if user == nil {
		respondFail(w, r, http.StatusNotFound, msgUserNotFound, h.logger)
		return
	}

	respondSuccess(w, r, http.StatusOK, render.M{"user": domain.NewUserEntity(user)}, h.logger)
}
