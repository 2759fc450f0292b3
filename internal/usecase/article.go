package usecase

import (
	"context"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/GoArmGo/BlogApp/internal/dto"
)

// ArticleUseCase определяет бизнес-логику работы со статьями.
// Методы, работающие с одной записью, возвращают (nil, nil), если её нет.
type ArticleUseCase interface {
	Create(ctx context.Context, in dto.CreateArticleDTO) (*domain.Article, error)
	FindAll(ctx context.Context) ([]domain.Article, error)
	// FindDrafts возвращает только неопубликованные статьи
	FindDrafts(ctx context.Context) ([]domain.Article, error)
	FindOne(ctx context.Context, id int64) (*domain.Article, error)
	// Update меняет только переданные в dto поля
	Update(ctx context.Context, id int64, in dto.UpdateArticleDTO) (*domain.Article, error)
	// Remove удаляет статью и возвращает удалённую запись
	Remove(ctx context.Context, id int64) (*domain.Article, error)
}
