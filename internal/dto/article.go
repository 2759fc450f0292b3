package dto

import "net/http"

// CreateArticleDTO описывает тело POST /articles
type CreateArticleDTO struct {
	Title     string `json:"title" validate:"required,min=5"`
	Content   string `json:"content" validate:"required"`
	Published *bool  `json:"published,omitempty"`
}

func (d *CreateArticleDTO) Bind(r *http.Request) error {
	return Validate(d)
}

// UpdateArticleDTO это частичная версия CreateArticleDTO для PATCH.
// nil означает, что поле не передано и не меняется.
type UpdateArticleDTO struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=5"`
	Content   *string `json:"content,omitempty" validate:"omitempty,min=1"`
	Published *bool   `json:"published,omitempty"`
}

func (d *UpdateArticleDTO) Bind(r *http.Request) error {
	return Validate(d)
}

// Changes возвращает только переданные поля в виде колонка -> значение
func (d *UpdateArticleDTO) Changes() map[string]any {
	changes := make(map[string]any, 3)
	if d.Title != nil {
		changes["title"] = *d.Title
	}
	if d.Content != nil {
		changes["content"] = *d.Content
	}
	if d.Published != nil {
		changes["published"] = *d.Published
	}
	return changes
}
