package domain

import "time"

// User представляет модель пользователя в системе.
// Соответствует таблице 'users' в базе данных.
// Password хранит bcrypt-хэш и никогда не сериализуется.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// UserEntity это проекция пользователя без пароля
type UserEntity struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserEntity(u *User) UserEntity {
	return UserEntity{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewUserEntities(users []User) []UserEntity {
	out := make([]UserEntity, 0, len(users))
	for i := range users {
		out = append(out, NewUserEntity(&users[i]))
	}
	return out
}
