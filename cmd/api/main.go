package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"blog-api/internal/common/pagination"
	pgRepo "blog-api/internal/infra/adapter/persistence/postgres"
	"blog-api/internal/infra/db"
	"blog-api/internal/observability/logging"
	"blog-api/internal/pkg/config"
	"blog-api/internal/resilience/circuitbreaker"

	artUC "blog-api/internal/usecase/article"
	cmtUC "blog-api/internal/usecase/comment"
	intUC "blog-api/internal/usecase/interaction"
	profUC "blog-api/internal/usecase/profile"

	hhttp "blog-api/internal/handler/http"
	harticle "blog-api/internal/handler/http/article"
	hcomment "blog-api/internal/handler/http/comment"
	hinteraction "blog-api/internal/handler/http/interaction"
	"blog-api/internal/handler/http/middleware"
	"blog-api/internal/handler/http/requestid"
	htaxonomy "blog-api/internal/handler/http/taxonomy"
	huser "blog-api/internal/handler/http/user"
)

func main() {
	logger := initLogger()
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, database, getVersion())
	runServer(logger, handler)
}

func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the connection pool and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

func getVersion() string {
	return config.LoadEnvString("VERSION", "dev")
}

// setupServer wires repositories, services, routes and the middleware chain.
func setupServer(logger *slog.Logger, database *sql.DB, version string) http.Handler {
	// All repositories go through the circuit breaker so a dead database
	// fails fast instead of exhausting the pool.
	store := circuitbreaker.NewDB(database)

	artSvc := &artUC.Service{Repo: pgRepo.NewArticleRepo(store)}
	cmtSvc := &cmtUC.Service{Repo: pgRepo.NewCommentRepo(store)}
	profSvc := &profUC.Service{Repo: pgRepo.NewProfileRepo(store)}

	likeSvc := &intUC.Service{Repo: pgRepo.NewLikeRepo(store)}
	bookmarkSvc := &intUC.Service{Repo: pgRepo.NewBookmarkRepo(store)}
	followSvc := &intUC.Service{Repo: pgRepo.NewFollowRepo(store)}

	paginationCfg := pagination.Config{
		DefaultPage:     config.LoadEnvInt("PAGINATION_DEFAULT_PAGE", pagination.DefaultConfig().DefaultPage),
		DefaultPageSize: config.LoadEnvInt("PAGINATION_DEFAULT_PAGE_SIZE", pagination.DefaultConfig().DefaultPageSize),
	}

	mux := http.NewServeMux()
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	harticle.Register(mux, artSvc, paginationCfg, logger)
	hcomment.Register(mux, cmtSvc)
	hinteraction.Register(mux, likeSvc, bookmarkSvc, followSvc)
	htaxonomy.Register(mux, pgRepo.NewTaxonomyRepo(store))
	huser.Register(mux, profSvc)

	mux.Handle("/", hhttp.NotFoundHandler())

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the router, innermost first: metrics, body limit,
// logging, recovery, request ID, CORS.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	corsConfig := middleware.LoadCORSConfig()
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Int("max_age", corsConfig.MaxAge))

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(corsConfig)(chain)
	return chain
}

// runServer starts the HTTP server and shuts it down gracefully on SIGINT
// or SIGTERM.
func runServer(logger *slog.Logger, handler http.Handler) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + config.LoadEnvString("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
