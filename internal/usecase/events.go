package usecase

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
)

// publish отправляет событие; ошибка публикации не отменяет уже сделанную запись в бд
func publish(ctx context.Context, p ports.ResourceEventPublisher, logger *slog.Logger, resource, action string, id int64) {
	event := payloads.NewResourceEvent(resource, action, id)
	if err := p.PublishResourceEvent(ctx, event); err != nil {
		logger.Warn("failed to publish resource event",
			"resource", resource,
			"action", action,
			"id", id,
			"error", err,
		)
	}
}
