package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/GoArmGo/BlogApp/internal/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader задаёт заголовок, через который id запроса приходит и возвращается клиенту
const RequestIDHeader = "X-Request-ID"

type ctxKey int

const (
	ctxRequestID ctxKey = iota
	ctxResourceID
)

// RequestID берёт X-Request-ID из запроса или генерирует UUID v4
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), ctxRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxRequestID).(string)
	return id
}

// RequestLogger middleware для логирования HTTP-запросов.
func RequestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Оборачиваем ResponseWriter, чтобы знать статус
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"request_id", RequestIDFromContext(r.Context()),
				"duration_ms", duration.Milliseconds(),
			)
		})
	}
}

// Recoverer перехватывает панику и отвечает 500-конвертом
func Recoverer(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("panic recovered", "stack", string(debug.Stack()))
				respondError(w, r, fmt.Errorf("panic: %v", rec), logger)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// Timeout ограничивает время обработки запроса, как middleware.Timeout из chi,
// но если обработчик ничего не записал, отвечает 504-конвертом, а не пустым телом.
func Timeout(timeout time.Duration, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			if ww.Status() == 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				respondTimeout(ww, r, ctx.Err(), logger)
			}
		})
	}
}

// IDParam разбирает {id} из пути. Не число или id <= 0 дают 400 ещё до обработчика.
func IDParam(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := chi.URLParam(r, "id")
			// ParseInt сам принимает "+1", поэтому первый символ проверяем отдельно
			if raw == "" || raw[0] < '0' || raw[0] > '9' {
				logger.Debug("invalid id path parameter", "id", raw)
				respondFail(w, r, http.StatusBadRequest, msgInvalidID, logger)
				return
			}
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				logger.Debug("invalid id path parameter", "id", raw)
				respondFail(w, r, http.StatusBadRequest, msgInvalidID, logger)
				return
			}

			ctx := context.WithValue(r.Context(), ctxResourceID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IDFromContext возвращает id, положенный IDParam
func IDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(ctxResourceID).(int64)
	return id
}

// JWTAuthGuard пропускает запрос только с валидным bearer-токеном
func JWTAuthGuard(verifier *auth.Verifier, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := verifier.VerifyHeader(r.Header.Get("Authorization"))
			if err != nil {
				logger.Warn("unauthorized request",
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", RequestIDFromContext(r.Context()),
					"error", err,
				)
				respondFail(w, r, http.StatusUnauthorized, msgUnauthorized, logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}

// responseWriter нужен, чтобы перехватывать код ответа
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
