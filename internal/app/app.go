package app

import (
	"context"
	"net/http"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	httpapi "github.com/shestoi/payment-gateway/internal/api/http"
	"github.com/shestoi/payment-gateway/internal/bank"
	"github.com/shestoi/payment-gateway/internal/config"
	"github.com/shestoi/payment-gateway/internal/event/kafka"
	"github.com/shestoi/payment-gateway/internal/logging"
	"github.com/shestoi/payment-gateway/internal/observability"
	"github.com/shestoi/payment-gateway/internal/repository/memory"
	"github.com/shestoi/payment-gateway/internal/service"
	"github.com/shestoi/payment-gateway/internal/shutdown"
)

// App содержит все зависимости для запуска и корректного shutdown платёжного шлюза
type App struct {
	logger      *zap.Logger
	httpServer  *http.Server
	shutdownMgr *shutdown.Manager
	wg          sync.WaitGroup
}

// Build создаёт и настраивает все зависимости сервиса
func Build(cfg config.Config) (*App, error) {
	const op = "app.Build"

	// Создаём logger
	logger, err := logging.New(logging.Config{
		ServiceName: "gateway",
		Env:         string(cfg.AppEnv),
		Level:       os.Getenv("LOG_LEVEL"),
		Format:      os.Getenv("LOG_FORMAT"),
	})
	if err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("op", op))
	logger.Info("Building payment gateway", zap.String("http_addr", cfg.HTTPAddr))

	// OpenTelemetry
	otelCfg := observability.Config{
		ServiceName:           "gateway",
		DeploymentEnvironment: string(cfg.AppEnv),
	}
	if err := observability.LoadEnv(&otelCfg); err != nil {
		return nil, err
	}
	otelShutdown, err := observability.Init(context.Background(), otelCfg)
	if err != nil {
		return nil, err
	}

	// Создаём in-memory репозиторий
	paymentRepo := memory.NewMemoryRepository()

	// Создаём клиент банка-эквайера
	logger.Info("Configuring bank client", zap.String("base_url", cfg.BankBaseURL))
	bankClient := bank.NewClient(logger, cfg.BankBaseURL, cfg.BankRequestTimeout)

	// Publisher событий платежей: Kafka при включённой конфигурации, иначе no-op
	kafkaCfg := kafka.DefaultConfig()
	if err := kafka.LoadEnv(&kafkaCfg); err != nil {
		return nil, err
	}
	var publisher service.PaymentEventPublisher
	var kafkaPublisher *kafka.PaymentEventPublisher
	if kafkaCfg.Enabled {
		logger.Info("Kafka event publisher enabled",
			zap.Strings("brokers", kafkaCfg.Brokers),
			zap.String("topic", kafkaCfg.Topic),
		)
		kafkaPublisher = kafka.NewPaymentEventPublisher(logger, kafkaCfg.Brokers, kafkaCfg.Topic)
		publisher = kafkaPublisher
	} else {
		publisher = kafka.NewNoOpPublisher(logger)
	}

	// Создаём service слой с зависимостями
	paymentService := service.NewPaymentService(logger, bankClient, paymentRepo, publisher)

	// Создаём HTTP handler и роутер
	handler := httpapi.NewHandler(paymentService, logger)

	// Хранилище в памяти - сервис готов сразу после старта
	readiness := func() bool { return true }

	router := httpapi.NewRouter(handler, readiness, logger)

	// Создаём HTTP сервер
	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Создаём shutdown manager
	shutdownMgr := shutdown.New(cfg.ShutdownTimeout, logger)

	// Регистрируем shutdown функции в обратном порядке выполнения
	shutdownMgr.Add("otel", otelShutdown)
	if kafkaPublisher != nil {
		shutdownMgr.Add("kafka_publisher", shutdown.CloseCloser(kafkaPublisher))
	}
	shutdownMgr.Add("http_server", shutdown.ShutdownHTTPServer(httpServer))

	return &App{
		logger:      logger,
		httpServer:  httpServer,
		shutdownMgr: shutdownMgr,
	}, nil
}

// Run запускает сервис и блокируется до получения сигнала shutdown
func (a *App) Run() error {
	defer logging.Sync(a.logger)

	a.logger.Info("Starting payment gateway", zap.String("addr", a.httpServer.Addr))
	a.logger.Info("Health check available", zap.String("url", "http://"+a.httpServer.Addr+"/health"))

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	// Ожидаем сигнал и выполняем shutdown
	a.shutdownMgr.Wait()

	a.wg.Wait()
	a.logger.Info("Payment gateway stopped")
	return nil
}
