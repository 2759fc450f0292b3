package ports

import (
	"context"

	"github.com/GoArmGo/BlogApp/internal/domain"
)

// ArticleStorage определяет методы для взаимодействия с хранилищем статей.
// Методы поиска по id возвращают (nil, nil), если записи нет.
type ArticleStorage interface {
	CreateArticle(ctx context.Context, article *domain.Article) error
	ListArticles(ctx context.Context) ([]domain.Article, error)
	ListArticlesByPublished(ctx context.Context, published bool) ([]domain.Article, error)
	GetArticleByID(ctx context.Context, id int64) (*domain.Article, error)
	UpdateArticle(ctx context.Context, id int64, changes map[string]any) (*domain.Article, error)
	DeleteArticle(ctx context.Context, id int64) (*domain.Article, error)
}

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	CreateUser(ctx context.Context, user *domain.User) error
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, changes map[string]any) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) (*domain.User, error)
}

// HealthChecker проверяет доступность бд
type HealthChecker interface {
	Ping(ctx context.Context) error
}
