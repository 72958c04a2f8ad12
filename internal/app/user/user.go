// Package user собирает сервис пользователей: хранилище, кеш, события,
// gRPC-сервер и служебный HTTP-сервер с health и метриками.
package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/magabrotheeeer/user-service/internal/cache"
	"github.com/magabrotheeeer/user-service/internal/config"
	userpb "github.com/magabrotheeeer/user-service/internal/grpc/gen"
	"github.com/magabrotheeeer/user-service/internal/grpc/server"
	healthhandler "github.com/magabrotheeeer/user-service/internal/http/handlers/health"
	"github.com/magabrotheeeer/user-service/internal/lib/password"
	"github.com/magabrotheeeer/user-service/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/user-service/internal/lib/sl"
	"github.com/magabrotheeeer/user-service/internal/migrations"
	services "github.com/magabrotheeeer/user-service/internal/services/user"
	"github.com/magabrotheeeer/user-service/internal/storage"
)

const shutdownTimeout = 15 * time.Second

// App сервис пользователей со всеми зависимостями.
type App struct {
	grpcServer *grpc.Server
	listener   net.Listener
	httpServer *http.Server
	health     *health.Server
	logger     *slog.Logger
	closers    []io.Closer
}

// New подключает зависимости, применяет миграции и готовит серверы.
// Redis и RabbitMQ подключаются, только если включены в конфиге.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.user.New"

	app := &App{logger: logger}
	fail := func(err error) (*App, error) {
		app.closeResources()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return fail(err)
	}

	db, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return fail(err)
	}
	app.closers = append(app.closers, db)

	if err = migrations.Run(db.DB, cfg.Storage.MigrationsPath); err != nil {
		return fail(err)
	}

	checks := map[string]healthhandler.Pinger{"postgres": db}
	opts := []services.Option{services.WithLocation(loc)}

	if cfg.Redis.Enabled {
		redisCache, err := cache.InitServer(ctx, cfg.Redis)
		if err != nil {
			return fail(err)
		}
		app.closers = append(app.closers, redisCache)
		checks["redis"] = redisCache
		opts = append(opts, services.WithCache(redisCache, cfg.Redis.TTL))
		logger.Info("profile cache enabled", slog.String("address", cfg.Redis.Address))
	}

	if cfg.RabbitMQ.Enabled {
		publisher, err := rabbitmq.NewEventPublisher(cfg.RabbitMQ)
		if err != nil {
			return fail(err)
		}
		app.closers = append(app.closers, publisher)
		opts = append(opts, services.WithEvents(publisher))
		logger.Info("user events enabled", slog.String("exchange", cfg.RabbitMQ.Exchange))
	}

	userService := services.NewUserService(db, password.NewHasher(cfg.BcryptCost), logger, opts...)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, "users"),
	)
	metrics := server.NewMetrics(registry)

	interceptors := []grpc.UnaryServerInterceptor{
		server.RecoveryInterceptor(logger),
		server.LoggingInterceptor(logger),
		metrics.UnaryInterceptor(),
	}
	if cfg.GRPC.RateLimit > 0 {
		burst := cfg.GRPC.RateBurst
		if burst <= 0 {
			burst = int(cfg.GRPC.RateLimit) + 1
		}
		interceptors = append(interceptors,
			server.RateLimitInterceptor(rate.NewLimiter(rate.Limit(cfg.GRPC.RateLimit), burst), logger))
	}

	grpcOpts := []grpc.ServerOption{grpc.ChainUnaryInterceptor(interceptors...)}
	if cfg.GRPC.MaxWorkers > 0 {
		grpcOpts = append(grpcOpts,
			grpc.NumStreamWorkers(uint32(cfg.GRPC.MaxWorkers)),
			grpc.MaxConcurrentStreams(uint32(cfg.GRPC.MaxWorkers)),
		)
	}
	grpcServer := grpc.NewServer(grpcOpts...)
	userpb.RegisterUserServer(grpcServer, server.NewUserServer(userService, loc, logger))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(userpb.User_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPC.Address())
	if err != nil {
		return fail(err)
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, registry, checks)

	app.grpcServer = grpcServer
	app.listener = lis
	app.health = healthServer
	app.httpServer = &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}
	return app, nil
}

// Run запускает серверы и блокируется до отмены ctx или ошибки одного из них.
// При остановке дожидается завершения текущих вызовов и закрывает ресурсы.
func (a *App) Run(ctx context.Context) error {
	defer a.closeResources()

	errCh := make(chan error, 2)

	go func() {
		a.logger.Info("gRPC server listening on", slog.String("address", a.listener.Addr().String()))
		errCh <- a.grpcServer.Serve(a.listener)
	}()

	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.httpServer.Addr))
		err := a.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		a.logger.Error("server stopped unexpectedly", sl.Err(runErr))
	}

	a.logger.Info("shutting down servers gracefully")
	a.health.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("failed to shutdown HTTP server", sl.Err(err))
	}

	stopped := make(chan struct{})
	go func() {
		a.grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		a.logger.Warn("graceful stop timed out, forcing")
		a.grpcServer.Stop()
	}

	return runErr
}

// closeResources закрывает зависимости в обратном порядке подключения.
func (a *App) closeResources() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Error("failed to close resource", sl.Err(err))
		}
	}
	a.closers = nil
}
