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

// articleUseCase implements ArticleUseCase
type articleUseCase struct {
	articleStorage ports.ArticleStorage
	publisher      ports.ResourceEventPublisher
	logger         *slog.Logger
}

// NewArticleUseCase создает новый экземпляр ArticleUseCase
func NewArticleUseCase(
	articleStorage ports.ArticleStorage,
	publisher ports.ResourceEventPublisher,
	logger *slog.Logger,
) ArticleUseCase {
	if publisher == nil {
		publisher = ports.NoopPublisher{}
	}
	return &articleUseCase{
		articleStorage: articleStorage,
		publisher:      publisher,
		logger:         logger,
	}
}

func (uc *articleUseCase) Create(ctx context.Context, in dto.CreateArticleDTO) (*domain.Article, error) {
	article := &domain.Article{
		Title:   in.Title,
		Content: in.Content,
	}
	if in.Published != nil {
		article.Published = *in.Published
	}

	if err := uc.articleStorage.CreateArticle(ctx, article); err != nil {
		return nil, fmt.Errorf("usecase: create article: %w", err)
	}

	uc.logger.Info("article created", "id", article.ID, "published", article.Published)
	publish(ctx, uc.publisher, uc.logger, payloads.ResourceArticle, payloads.ActionCreated, article.ID)
	return article, nil
}

func (uc *articleUseCase) FindAll(ctx context.Context) ([]domain.Article, error) {
	articles, err := uc.articleStorage.ListArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: list articles: %w", err)
	}
	return articles, nil
}

func (uc *articleUseCase) FindDrafts(ctx context.Context) ([]domain.Article, error) {
	drafts, err := uc.articleStorage.ListArticlesByPublished(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("usecase: list drafts: %w", err)
	}
	return drafts, nil
}

func (uc *articleUseCase) FindOne(ctx context.Context, id int64) (*domain.Article, error) {
	article, err := uc.articleStorage.GetArticleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: get article: %w", err)
	}
	return article, nil
}

func (uc *articleUseCase) Update(ctx context.Context, id int64, in dto.UpdateArticleDTO) (*domain.Article, error) {
	article, err := uc.articleStorage.UpdateArticle(ctx, id, in.Changes())
	if err != nil {
		return nil, fmt.Errorf("usecase: update article: %w", err)
	}
	if article == nil {
		return nil, nil
	}

	publish(ctx, uc.publisher, uc.logger, payloads.ResourceArticle, payloads.ActionUpdated, article.ID)
	return article, nil
}

func (uc *articleUseCase) Remove(ctx context.Context, id int64) (*domain.Article, error) {
	article, err := uc.articleStorage.DeleteArticle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: delete article: %w", err)
	}
	if article == nil {
		return nil, nil
	}

	uc.logger.Info("article removed", "id", article.ID)
	publish(ctx, uc.publisher, uc.logger, payloads.ResourceArticle, payloads.ActionRemoved, article.ID)
	return article, nil
}
