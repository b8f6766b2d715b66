package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/todo-service/handlers"
	"github.com/gogotex/todo-service/internal/config"
	"github.com/gogotex/todo-service/internal/database"
	"github.com/gogotex/todo-service/internal/todo/handler"
	"github.com/gogotex/todo-service/internal/todo/repository"
	"github.com/gogotex/todo-service/pkg/logger"
	"github.com/gogotex/todo-service/pkg/metrics"
	"github.com/gogotex/todo-service/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var startTime = time.Now()

const (
	shutdownTimeout     = 10 * time.Second
	redisConnectTimeout = 5 * time.Second
)

func main() {
	// LOG_LEVEL is read directly so config loading itself can be traced.
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	logger.Infof("config loaded: backend=%s env=%s", cfg.Store.Backend, cfg.Server.Environment)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore := openRepository(ctx, cfg)
	defer closeStore()
	repo = repository.Instrument(repo, cfg.Store.Backend)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.Recovery(),
		middleware.CORS(),
		middleware.ErrorHandler(),
	)

	checks := map[string]handlers.ReadinessCheck{}
	if p, ok := repo.(repository.Pinger); ok {
		checks["store"] = p.Ping
	}
	handlers.RegisterHealth(r, startTime, checks)
	handlers.RegisterSwagger(r)
	handler.RegisterTodoRoutes(r, repo)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("starting todo service on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}

// openRepository builds the configured store. Connection problems never stop the
// process: an unreachable server is logged and requests fail with 500 until it
// answers; an unusable connection string yields a store that fails every call.
func openRepository(ctx context.Context, cfg *config.Config) (repository.Repository, func()) {
	noop := func() {}
	switch cfg.Store.Backend {
	case config.BackendMemory:
		logger.Infof("using in-memory todo store")
		return repository.NewMemoryRepo(), noop

	case config.BackendRedis:
		client, err := database.ConnectRedis(ctx, cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB, redisConnectTimeout)
		if err != nil {
			logger.Warnf("redis not reachable yet: %v", err)
		} else {
			logger.Infof("connected to redis at %s", cfg.Redis.Addr())
		}
		return repository.NewRedisRepo(client, cfg.Redis.Prefix), func() { _ = client.Close() }

	default:
		if cfg.MongoDB.URI == "" {
			logger.Errorf("no MongoDB connection string set (DB_CONN or MONGODB_URI)")
			return repository.NewUnavailableRepo(errors.New("no connection string configured")), noop
		}
		client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if client == nil {
			logger.Errorf("failed to connect to MongoDB: %v", err)
			return repository.NewUnavailableRepo(err), noop
		}
		if err != nil {
			logger.Warnf("MongoDB not reachable yet: %v", err)
		} else {
			logger.Infof("connected to MongoDB database=%s collection=%s", cfg.MongoDB.Database, cfg.MongoDB.Collection)
		}
		col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
		return repository.NewMongoRepo(col), func() {
			dctx, cancel := context.WithTimeout(context.Background(), cfg.MongoDB.Timeout)
			defer cancel()
			_ = client.Disconnect(dctx)
		}
	}
}
