package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/tokengate/ticketing-service/internal/api/http"
	"github.com/tokengate/ticketing-service/internal/api/http/handlers"
	"github.com/tokengate/ticketing-service/internal/auth"
	"github.com/tokengate/ticketing-service/internal/chain"
	"github.com/tokengate/ticketing-service/internal/config"
	"github.com/tokengate/ticketing-service/internal/events"
	"github.com/tokengate/ticketing-service/internal/observability"
	"github.com/tokengate/ticketing-service/internal/persistence"
	"github.com/tokengate/ticketing-service/internal/repository"
	"github.com/tokengate/ticketing-service/internal/service"
	"github.com/tokengate/ticketing-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	verifier, err := chain.NewVerifier(cfg.Chain, logger)
	if err != nil {
		logger.Fatal("failed to init chain verifier", zap.Error(err))
	}
	defer verifier.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	templateRepo := repository.NewTemplateRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	transactionRepo := repository.NewTransactionRepository(pool)
	checkinLogRepo := repository.NewCheckinLogRepository(pool)
	txManager := repository.NewTxManager(pg)

	dispatcher := events.NewInMemoryDispatcher()

	identityService := service.NewIdentityService(userRepo, logger)
	authService := service.NewAuthService(cfg.Auth, userRepo)
	eventService := service.NewEventService(eventRepo, templateRepo, identityService, logger)
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:      ticketRepo,
		TemplateRepo:    templateRepo,
		EventRepo:       eventRepo,
		TransactionRepo: transactionRepo,
		Identity:        identityService,
		TxManager:       txManager,
		Verifier:        verifier,
		Dispatcher:      dispatcher,
	}, cfg.Ticketing, logger)
	checkinService := service.NewCheckinService(service.CheckinDependencies{
		TicketRepo:   ticketRepo,
		TemplateRepo: templateRepo,
		EventRepo:    eventRepo,
		LogRepo:      checkinLogRepo,
		TxManager:    txManager,
		Dispatcher:   dispatcher,
	}, logger)
	notificationService := service.NewNotificationService(dispatcher, redis, cfg.Redis.EventChannel, logger)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Users:          handlers.NewUsersHandler(identityService),
		Staff:          handlers.NewStaffHandler(authService),
		Events:         handlers.NewEventsHandler(eventService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Checkin:        handlers.NewCheckinHandler(checkinService, metrics),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
