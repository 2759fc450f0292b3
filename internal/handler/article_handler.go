package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/GoArmGo/BlogApp/internal/dto"
	"github.com/GoArmGo/BlogApp/internal/usecase"
	"github.com/go-chi/render"
)

// ArticleHandler обработчик HTTP-запросов для работы со статьями.
type ArticleHandler struct {
	articleUseCase usecase.ArticleUseCase
	logger         *slog.Logger
}

// NewArticleHandler создаёт новый экземпляр ArticleHandler.
func NewArticleHandler(uc usecase.ArticleUseCase, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleUseCase: uc,
		logger:         logger,
	}
}

// Create обрабатывает POST /articles
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in dto.CreateArticleDTO
	if err := render.Bind(r, &in); err != nil {
		respondBindError(w, r, err, h.logger)
		return
	}

	article, err := h.articleUseCase.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	respondSuccess(w, r, http.StatusCreated, render.M{"article": domain.NewArticleEntity(article)}, h.logger)
}

// FindAll отдаёт GET /articles: опубликованные и черновики
func (h *ArticleHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleUseCase.FindAll(r.Context())
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	h.logger.Debug("articles fetched", "count", len(articles))
	respondSuccess(w, r, http.StatusOK, render.M{"articles": domain.NewArticleEntities(articles)}, h.logger)
}

// FindDrafts обрабатывает GET /articles/drafts
func (h *ArticleHandler) FindDrafts(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.articleUseCase.FindDrafts(r.Context())
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	respondSuccess(w, r, http.StatusOK, render.M{"articles": domain.NewArticleEntities(drafts)}, h.logger)
}

// FindOne обрабатывает GET /articles/{id}
func (h *ArticleHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	id := IDFromContext(r.Context())

	article, err := h.articleUseCase.FindOne(r.Context(), id)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	if article == nil {
		respondFail(w, r, http.StatusNotFound, msgArticleNotFound, h.logger)
		return
	}

	respondSuccess(w, r, http.StatusOK, render.M{"article": domain.NewArticleEntity(article)}, h.logger)
}

// Update обрабатывает PATCH /articles/{id} и меняет только переданные поля
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := IDFromContext(r.Context())

	var in dto.UpdateArticleDTO
	if err := bindPatch(r, &in); err != nil {
		respondBindError(w, r, err, h.logger)
		return
	}

	article, err := h.articleUseCase.Update(r.Context(), id, in)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	if article == nil {
		respondFail(w, r, http.StatusNotFound, msgArticleNotFound, h.logger)
		return
	}

	respondSuccess(w, r, http.StatusOK, render.M{"article": domain.NewArticleEntity(article)}, h.logger)
}

// Remove обрабатывает DELETE /articles/{id}, в ответе удалённая запись
func (h *ArticleHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := IDFromContext(r.Context())

	article, err := h.articleUseCase.Remove(r.Context(), id)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	if article == nil {
		respondFail(w, r, http.StatusNotFound, msgArticleNotFound, h.logger)
		return
	}

	respondSuccess(w, r, http.StatusOK, render.M{"article": domain.NewArticleEntity(article)}, h.logger)
}
