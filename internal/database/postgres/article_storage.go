package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ArticleStorage реализует ports.ArticleStorage с помощью GORM
type ArticleStorage struct {
	db *gorm.DB
}

func NewArticleStorage(db *gorm.DB) *ArticleStorage {
	return &ArticleStorage{db: db}
}

// CreateArticle сохраняет статью, id и временные метки заполняются в article
func (s *ArticleStorage) CreateArticle(ctx context.Context, article *domain.Article) error {
	if err := s.db.WithContext(ctx).Create(article).Error; err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

// ListArticles возвращает все статьи по возрастанию id
func (s *ArticleStorage) ListArticles(ctx context.Context) ([]domain.Article, error) {
	articles := []domain.Article{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// ListArticlesByPublished возвращает опубликованные или черновики
func (s *ArticleStorage) ListArticlesByPublished(ctx context.Context, published bool) ([]domain.Article, error) {
	articles := []domain.Article{}
	err := s.db.WithContext(ctx).
		Where("published = ?", published).
		Order("id ASC").
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("list articles by published=%t: %w", published, err)
	}
	return articles, nil
}

// GetArticleByID возвращает (nil, nil), если статьи нет
func (s *ArticleStorage) GetArticleByID(ctx context.Context, id int64) (*domain.Article, error) {
	var article domain.Article
	result := s.db.WithContext(ctx).First(&article, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article %d: %w", id, result.Error)
	}
	return &article, nil
}

// UpdateArticle меняет только переданные колонки и возвращает запись после изменения
func (s *ArticleStorage) UpdateArticle(ctx context.Context, id int64, changes map[string]any) (*domain.Article, error) {
	var article domain.Article
	result := s.db.WithContext(ctx).
		Model(&article).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(changes)
	if result.Error != nil {
		return nil, fmt.Errorf("update article %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &article, nil
}

// DeleteArticle удаляет статью и возвращает удалённую запись
func (s *ArticleStorage) DeleteArticle(ctx context.Context, id int64) (*domain.Article, error) {
	var article domain.Article
	result := s.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&article)
	if result.Error != nil {
		return nil, fmt.Errorf("delete article %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &article, nil
}
