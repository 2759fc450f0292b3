package domain

import "time"

// Article представляет модель статьи в системе,
// соответствует таблице articles в бд
type Article struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	Published bool      `gorm:"not null;default:false" json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Article) TableName() string {
	return "articles"
}

// ArticleEntity это внешнее представление статьи, которое уходит клиенту
type ArticleEntity struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewArticleEntity(a *Article) ArticleEntity {
	return ArticleEntity{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Published: a.Published,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func NewArticleEntities(articles []Article) []ArticleEntity {
	out := make([]ArticleEntity, 0, len(articles))
	for i := range articles {
		out = append(out, NewArticleEntity(&articles[i]))
	}
	return out
}
