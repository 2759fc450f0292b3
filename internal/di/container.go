package di

import (
	"fmt"

	"github.com/GoArmGo/BlogApp/internal/app"
	"github.com/GoArmGo/BlogApp/internal/auth"
	"github.com/GoArmGo/BlogApp/internal/config"
	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/database/client"
	"github.com/GoArmGo/BlogApp/internal/database/postgres"
	"github.com/GoArmGo/BlogApp/internal/handler"
	"github.com/GoArmGo/BlogApp/internal/logger"
	"github.com/GoArmGo/BlogApp/internal/rabbitmq"
	"github.com/GoArmGo/BlogApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}
	closers := []func() error{dbClient.Close}

	// 3. GORM поверх того же пула и хранилища
	gormDB, err := postgres.OpenGorm(dbClient.DB.DB, slogger)
	if err != nil {
		_ = dbClient.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	articleStorage := postgres.NewArticleStorage(gormDB)
	userStorage := postgres.NewGormUserStorage(gormDB)

	// 4. RabbitMQ не обязателен: без URL события не публикуются, worker не запустится
	var (
		publisher ports.ResourceEventPublisher = ports.NoopPublisher{}
		consumer  ports.ResourceEventConsumer
	)
	if cfg.EventsEnabled() {
		rabbitMQClient, err := rabbitmq.NewClient(cfg, slogger)
		if err != nil {
			_ = dbClient.Close()
			return nil, err
		}
		publisher = rabbitMQClient
		consumer = rabbitMQClient
		closers = append(closers, func() error {
			rabbitMQClient.Close()
			return nil
		})
	} else {
		slogger.Warn("RABBITMQ_URL is not set, resource events are disabled")
	}

	// 5. Инициализация бизнес-логики (usecases)
	articleUseCase := usecase.NewArticleUseCase(articleStorage, publisher, slogger)
	userUseCase := usecase.NewUserUseCase(userStorage, usecase.NewBcryptHasher(usecase.DefaultHashCost), publisher, slogger)

	// 6. HTTP
	router := handler.NewRouter(handler.RouterDeps{
		Articles:       handler.NewArticleHandler(articleUseCase, slogger),
		Users:          handler.NewUserHandler(userUseCase, slogger),
		Verifier:       auth.NewVerifier(cfg.JWT.Secret, cfg.JWT.Issuer),
		Health:         dbClient,
		Metrics:        handler.NewMetrics(),
		Logger:         slogger,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	// 7. Сборка итогового приложения
	application := app.NewApp(app.Options{
		Config:   cfg,
		Logger:   slogger,
		Handler:  router,
		Migrate:  func() error { return postgres.ApplyMigrations(dbClient.DB.DB, slogger) },
		Consumer: consumer,
		Closers:  closers,
	})

	slogger.Info("all dependencies initialized")
	return application, nil
}
