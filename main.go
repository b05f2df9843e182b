package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/autotls"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ismilebharmal/prompt-techniques/config"
	"github.com/ismilebharmal/prompt-techniques/db"
	"github.com/ismilebharmal/prompt-techniques/handlers"
	"github.com/ismilebharmal/prompt-techniques/logger"
	"github.com/ismilebharmal/prompt-techniques/models"
	"github.com/ismilebharmal/prompt-techniques/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("Cannot load config: %v", err)
	}
	logger.Init(cfg.Log)

	dbHandle, err := db.Connect(cfg.Database)
	if err != nil {
		logrus.Fatalf("Cannot open database: %v", err)
	}
	defer func() { _ = db.Close(dbHandle) }()

	if err := models.Migrate(dbHandle); err != nil {
		logrus.Fatalf("Cannot migrate schema: %v", err)
	}
	if err := store.NewAdminStore(dbHandle).EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		logrus.Fatalf("Cannot create admin user: %v", err)
	}

	router := handlers.NewRouter(dbHandle, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.TLSDomains != "" {
		err = autotls.RunWithContext(ctx, router, strings.Split(cfg.Server.TLSDomains, ",")...)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("Server stopped: %v", err)
		}
		return
	}

	srv := &http.Server{Addr: cfg.Server.BindAddress, Handler: router}
	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", cfg.Server.BindAddress).Info("listening")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		logrus.Errorf("Server stopped: %v", err)
	case <-ctx.Done():
		logrus.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("shutdown incomplete")
		}
	}
}
