package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
)

// runWorker читает события ресурсов из RabbitMQ и пишет их в журнал аудита
func runWorker(ctx context.Context, consumer ports.ResourceEventConsumer, logger *slog.Logger) error {
	if consumer == nil {
		return errors.New("worker mode requires RABBITMQ_URL")
	}

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	if err := consumer.StartConsumingResourceEvents(workerCtx, auditHandler(logger)); err != nil {
		return fmt.Errorf("start RabbitMQ consumer: %w", err)
	}

	logger.Info("worker started, waiting for resource events")
	<-ctx.Done()

	logger.Info("worker stopped")
	return nil
}

// auditHandler пишет каждое событие в журнал аудита
func auditHandler(logger *slog.Logger) func(context.Context, payloads.ResourceEvent) error {
	audit := logger.With("component", "audit")
	return func(ctx context.Context, e payloads.ResourceEvent) error {
		// неполное событие в очередь не возвращаем, повтор его не исправит
		if e.Resource == "" || e.Action == "" || e.ID <= 0 {
			audit.Warn("skipping incomplete resource event", "event", fmt.Sprintf("%+v", e))
			return nil
		}
		audit.Info("resource changed",
			"resource", e.Resource,
			"action", e.Action,
			"id", e.ID,
			"occurred_at", e.OccurredAt.Format(time.RFC3339),
			"lag_ms", time.Since(e.OccurredAt).Milliseconds(),
		)
		return nil
	}
}
