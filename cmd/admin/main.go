package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/club-shop/internal/admin"
	"github.com/bagdasarian/club-shop/internal/app"
	"github.com/bagdasarian/club-shop/internal/config"
	"github.com/bagdasarian/club-shop/internal/db"
	"github.com/bagdasarian/club-shop/internal/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	database := db.MustLoad(cfg)
	defer database.Close()

	rdb := app.ConnectCache(cfg.Redis, log)
	if rdb != nil {
		defer rdb.Close()
	}

	svc := app.NewServices(database, rdb, cfg, log)
	console := admin.NewConsole(admin.Services{
		Teams:      svc.Teams,
		Members:    svc.Members,
		Categories: svc.Categories,
		Products:   svc.Products,
		Orders:     svc.Orders,
		Payments:   svc.Payments,
		Settings:   svc.Settings,
	}, os.Stdout, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := console.Run(ctx, os.Args[1:]); err != nil {
		log.WithError(err).Error("admin command failed")
		stop()
		database.Close()
		os.Exit(1)
	}
}
