package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/MikeRez0/lunchorder/internal/adapter/auth"
	"github.com/MikeRez0/lunchorder/internal/adapter/catalog"
	"github.com/MikeRez0/lunchorder/internal/adapter/clock"
	"github.com/MikeRez0/lunchorder/internal/adapter/config"
	"github.com/MikeRez0/lunchorder/internal/adapter/handler/http"
	"github.com/MikeRez0/lunchorder/internal/adapter/logger"
	"github.com/MikeRez0/lunchorder/internal/adapter/storage"
	"github.com/MikeRez0/lunchorder/internal/adapter/storage/memory"
	"github.com/MikeRez0/lunchorder/internal/adapter/storage/repository"
	"github.com/MikeRez0/lunchorder/internal/core/port"
	"github.com/MikeRez0/lunchorder/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := run(conf, log); err != nil {
		log.Error("shutdown with error", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(conf *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings, closeSettings, err := newSettings(ctx, conf.Database, log)
	if err != nil {
		return err
	}
	defer closeSettings()

	wallClock, err := clock.NewSystem(conf.Order.TimeZone)
	if err != nil {
		return fmt.Errorf("clock: %w", err)
	}

	tokenService, err := auth.New(conf.Operator)
	if err != nil {
		return fmt.Errorf("token service: %w", err)
	}

	presenter := http.NewWebPresenter(log.Named("Presenter"))

	svc, err := service.NewService(settings, catalog.NewSource(conf.Order.MenuFile), wallClock, presenter,
		service.Options{
			TickInterval:     conf.Order.TickInterval,
			MessagingBaseURL: conf.Order.MessagingBaseURL,
			DefaultPhone:     conf.Order.DefaultPhone,
		}, log.Named("Service"))
	if err != nil {
		return fmt.Errorf("order service: %w", err)
	}

	// a failed start leaves the service in ERROR; the API keeps serving the alert
	if err := svc.Start(ctx); err != nil {
		log.Error("system start", zap.Error(err))
	}
	defer svc.Stop()

	orderHandler, err := http.NewOrderHandler(presenter, log.Named("Order handler"))
	if err != nil {
		return fmt.Errorf("order handler: %w", err)
	}
	operatorHandler, err := http.NewOperatorHandler(svc, tokenService, log.Named("Operator handler"))
	if err != nil {
		return fmt.Errorf("operator handler: %w", err)
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, orderHandler, operatorHandler, log.Named("Router"))
	if err != nil {
		return fmt.Errorf("router: %w", err)
	}

	log.Info("listening", zap.String("address", conf.HTTP.HostString))
	return r.Serve(ctx, conf.HTTP.HostString)
}

func newSettings(ctx context.Context, conf *config.Database, log *zap.Logger) (port.SettingsRepository, func(), error) {
	if conf.DSN == "" {
		log.Warn("no database configured, settings are kept in memory")
		return memory.NewRepository(), func() {}, nil
	}

	db, err := storage.NewDBStorage(ctx, conf)
	if err != nil {
		return nil, nil, fmt.Errorf("database: %w", err)
	}
	err = db.RunMigrations()
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("database migration: %w", err)
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("settings repo: %w", err)
	}
	return repo, db.Close, nil
}
