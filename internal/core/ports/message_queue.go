package ports

import (
	"context"

	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
)

// ResourceEventPublisher публикует события изменения ресурсов.
// Используется usecase-слоем после успешной записи в бд.
type ResourceEventPublisher interface {
	PublishResourceEvent(ctx context.Context, event payloads.ResourceEvent) error
}

// ResourceEventConsumer используется воркером для чтения событий из очереди
type ResourceEventConsumer interface {
	// StartConsumingResourceEvents начинает прослушивание очереди,
	// handler вызывается для каждого сообщения
	StartConsumingResourceEvents(ctx context.Context, handler func(context.Context, payloads.ResourceEvent) error) error
}

// NoopPublisher используется, когда RabbitMQ не настроен
type NoopPublisher struct{}

func (NoopPublisher) PublishResourceEvent(context.Context, payloads.ResourceEvent) error {
	return nil
}
