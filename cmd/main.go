package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/perivi8/business-guru-admin/internal/api"
	"github.com/perivi8/business-guru-admin/internal/api/events"
	"github.com/perivi8/business-guru-admin/internal/clients/gomail"
	"github.com/perivi8/business-guru-admin/internal/httpclients/clients"
	"github.com/perivi8/business-guru-admin/internal/httpclients/status"
	"github.com/perivi8/business-guru-admin/internal/httpclients/storage"
	"github.com/perivi8/business-guru-admin/internal/notification"
	"github.com/perivi8/business-guru-admin/internal/repository"
	"github.com/perivi8/business-guru-admin/internal/service"
	"github.com/perivi8/business-guru-admin/pkg/broker"
	"github.com/perivi8/business-guru-admin/pkg/config"
	"github.com/perivi8/business-guru-admin/pkg/job"
	"github.com/perivi8/business-guru-admin/pkg/logger"
	"github.com/perivi8/business-guru-admin/pkg/postgres"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)
	stores := notification.NewStores(repo)

	clientsAPI := clients.NewClient(cfg.Backend)
	statusAPI := status.NewClient(cfg.Backend)
	storageAPI := storage.NewClient(cfg.Backend)

	var mailer service.Mailer
	if cfg.Mailer.Enabled {
		mailer = gomail.New(cfg.Mailer)
	}

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.StatusUpdatedTopic)
	defer producer.Close()

	s := service.New(clientsAPI, statusAPI, storageAPI, repo, repo, stores, producer, mailer, cfg.Notifications)

	// Kafka consumers
	{
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID,
			cfg.Kafka.SystemNotificationTopic, cfg.Kafka.StatusUpdatedTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(stores)

		consumer.Handle(cfg.Kafka.SystemNotificationTopic, eventHandler.OnSystemNotification)
		consumer.Handle(cfg.Kafka.StatusUpdatedTopic, eventHandler.OnStatusUpdated)
		consumer.Consume(ctx)
	}

	jobs := job.NewService()
	jobs.RegisterJob("refresh_clients", cfg.Notifications.RefreshInterval, s.RefreshClients)
	jobs.Start(ctx)
	defer jobs.Stop()

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTP.Port)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
