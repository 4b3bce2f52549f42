// Command api serves the activity booking HTTP API.
//
// @title Activity Booking API
// @version 1.0
// @description Registration of visitors into time slotted park activities.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Staff token: Bearer {token}
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"activitybooking/config"
	_ "activitybooking/docs"
	"activitybooking/internal/adapters/auth"
	"activitybooking/internal/adapters/lock"
	"activitybooking/internal/adapters/metrics"
	deliveryhttp "activitybooking/internal/delivery/http"
	"activitybooking/internal/delivery/http/controllers"
	"activitybooking/internal/domain"
	"activitybooking/internal/repository"
	"activitybooking/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := config.NewLogger()
	if err := run(logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, db, err := repository.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("storage ready", "driver", cfg.DBDriver)

	locker, closeLocker, err := newSlotLocker(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLocker()
	logger.Info("slot lock ready", "mode", cfg.SlotLock)

	m := metrics.New()
	activitySvc := services.NewActivityService(store, cfg.RequestTimeout)
	registrationSvc := services.NewRegistrationService(store, locker, m, logger, cfg.RequestTimeout)

	var verifier domain.TokenVerifier
	if cfg.StaffJWTSecret != "" {
		verifier = auth.NewJWT(cfg.StaffJWTSecret)
	} else {
		logger.Warn("STAFF_JWT_SECRET not set: staff routes are open")
	}

	router := deliveryhttp.NewRouter(deliveryhttp.RouterDeps{
		Logger:                 logger,
		ActivityController:     controllers.NewActivityController(logger, activitySvc),
		RegistrationController: controllers.NewRegistrationController(logger, registrationSvc),
		StaffVerifier:          verifier,
		Metrics:                m.Handler(),
		AllowedOrigins:         cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newSlotLocker(ctx context.Context, cfg *config.Config) (domain.SlotLocker, func(), error) {
	switch cfg.SlotLock {
	case config.LockRedis:
		client, err := lock.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return lock.NewRedis(client, lock.WithTTL(cfg.SlotLockTTL())), func() { client.Close() }, nil
	case config.LockNone:
		return lock.None{}, func() {}, nil
	default:
		return lock.NewLocal(), func() {}, nil
	}
}
