package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/BlogApp/internal/dto"
	"github.com/go-chi/render"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

const (
	msgInternalError      = "Internal Server Error"
	msgUnauthorized       = "Unauthorized"
	msgInvalidID          = "Validation failed (numeric string is expected)"
	msgInvalidBody        = "Invalid request body"
	msgValidationFailed   = "Validation failed"
	msgNotFound           = "Not Found"
	msgMethodNotAllowed   = "Method Not Allowed"
	msgArticleNotFound    = "Article not Found"
	msgUserNotFound       = "User not Found"
	msgServiceUnavailable = "Service Unavailable"
	msgGatewayTimeout     = "Gateway Timeout"
)

// Envelope задаёт общий формат всех ответов: {"status": ..., "data": ...}
type Envelope struct {
	HTTPStatusCode int    `json:"-"`
	Status         string `json:"status"`
	Data           any    `json:"data"`
}

func (e *Envelope) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// respond отправляет конверт клиенту через render.
func respond(w http.ResponseWriter, r *http.Request, env *Envelope, logger *slog.Logger) {
	if err := render.Render(w, r, env); err != nil {
		logger.Error("failed to render response", "request_id", RequestIDFromContext(r.Context()), "error", err)
	}
}

func respondSuccess(w http.ResponseWriter, r *http.Request, code int, data render.M, logger *slog.Logger) {
	respond(w, r, &Envelope{HTTPStatusCode: code, Status: StatusSuccess, Data: data}, logger)
}

func respondFail(w http.ResponseWriter, r *http.Request, code int, message string, logger *slog.Logger) {
	respond(w, r, &Envelope{HTTPStatusCode: code, Status: StatusFail, Data: render.M{"message": message}}, logger)
}

// respondError отвечает 500. Причина пишется только в лог, клиент видит общий текст.
// Если истёк REQUEST_TIMEOUT, ответ 504.
func respondError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if errors.Is(r.Context().Err(), context.DeadlineExceeded) {
		respondTimeout(w, r, err, logger)
		return
	}

	logger.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", RequestIDFromContext(r.Context()),
		"error", err,
	)
	respond(w, r, &Envelope{
		HTTPStatusCode: http.StatusInternalServerError,
		Status:         StatusError,
		Data:           render.M{"message": msgInternalError},
	}, logger)
}

func respondTimeout(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	logger.Warn("request timed out",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", RequestIDFromContext(r.Context()),
		"error", err,
	)
	respond(w, r, &Envelope{
		HTTPStatusCode: http.StatusGatewayTimeout,
		Status:         StatusError,
		Data:           render.M{"message": msgGatewayTimeout},
	}, logger)
}

// respondBindError различает ошибки валидации dto и нечитаемое тело запроса
func respondBindError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		respond(w, r, &Envelope{
			HTTPStatusCode: http.StatusBadRequest,
			Status:         StatusFail,
			Data:           render.M{"message": msgValidationFailed, "errors": verr.Fields},
		}, logger)
		return
	}

	logger.Warn("failed to decode request body", "request_id", RequestIDFromContext(r.Context()), "error", err)
	respondFail(w, r, http.StatusBadRequest, msgInvalidBody, logger)
}

// bindPatch разбирает тело PATCH. Пустое тело равносильно {} и ничего не меняет.
func bindPatch(r *http.Request, v render.Binder) error {
	err := render.Bind(r, v)
	if errors.Is(err, io.EOF) {
		return v.Bind(r)
	}
	return err
}

// NotFound и MethodNotAllowed отдают конверт вместо текстовых ответов chi
func NotFound(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondFail(w, r, http.StatusNotFound, msgNotFound, logger)
	}
}

func MethodNotAllowed(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondFail(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed, logger)
	}
}
