package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/club-shop/internal/app"
	"github.com/bagdasarian/club-shop/internal/config"
	"github.com/bagdasarian/club-shop/internal/db"
	"github.com/bagdasarian/club-shop/internal/handler"
	"github.com/bagdasarian/club-shop/internal/handler/server"
	"github.com/bagdasarian/club-shop/internal/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	database := db.MustLoad(cfg)
	log.Info("successfully connected to database")
	defer database.Close()

	version, err := db.Migrate(context.Background(), db.DSN(cfg))
	if err != nil {
		log.WithError(err).Fatal("failed to apply migrations")
	}
	log.WithField("version", version).Info("database schema is up to date")

	rdb := app.ConnectCache(cfg.Redis, log)
	if rdb != nil {
		defer rdb.Close()
	}

	svc := app.NewServices(database, rdb, cfg, log)

	h := handler.NewHandler(
		svc.Teams,
		svc.Members,
		svc.Categories,
		svc.Products,
		svc.Orders,
		svc.Payments,
		svc.Analytics,
		log,
	)
	srv := server.NewServer(h, cfg.HTTP, log)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}
}
