package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/autolote/autolote/internal/app"
	"github.com/autolote/autolote/internal/customers"
	"github.com/autolote/autolote/internal/platform/db"
	"github.com/autolote/autolote/internal/shared"
	"github.com/autolote/autolote/internal/vehicles"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	clock := shared.SystemClock{}

	vehiclesRepo := vehicles.NewRepository(pool)
	vehiclesService := vehicles.NewService(vehiclesRepo, clock)
	vehiclesHandler := vehicles.NewHandler(logger, vehiclesService)

	customersRepo := customers.NewRepository(pool)
	customersService := customers.NewService(customersRepo, clock)
	customersHandler := customers.NewHandler(logger, customersService)

	router := app.NewRouter(app.MiddlewareConfig{
		Logger: logger,
		Config: cfg,
	}, vehiclesHandler, customersHandler)

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server", slog.Any("error", err))
		os.Exit(1)
	}
}
