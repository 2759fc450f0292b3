package dto

import "net/http"

// CreateUserDTO описывает тело POST /users (регистрация).
// bcrypt не принимает пароли длиннее 72 байт.
type CreateUserDTO struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72,maxbytes=72"`
}

func (d *CreateUserDTO) Bind(r *http.Request) error {
	return Validate(d)
}

// UpdateUserDTO это частичная версия CreateUserDTO для PATCH
type UpdateUserDTO struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=72,maxbytes=72"`
}

func (d *UpdateUserDTO) Bind(r *http.Request) error {
	return Validate(d)
}

// Changes возвращает переданные поля. Пароль здесь ещё в открытом виде,
// хэширование делает usecase.
func (d *UpdateUserDTO) Changes() map[string]any {
	changes := make(map[string]any, 3)
	if d.Name != nil {
		changes["name"] = *d.Name
	}
	if d.Email != nil {
		changes["email"] = *d.Email
	}
	if d.Password != nil {
		changes["password"] = *d.Password
	}
	return changes
}
