package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/linge-maison/boutique/internal/auth"
	"github.com/linge-maison/boutique/internal/config"
	"github.com/linge-maison/boutique/internal/db"
	"github.com/linge-maison/boutique/internal/logger"
	"github.com/linge-maison/boutique/internal/mailer"
	"github.com/linge-maison/boutique/internal/server"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")

func main() {
	flag.Parse()
	_ = godotenv.Load()
	log := logger.Get()
	defer func() { _ = log.Sync() }()

	cfg := config.Load()
	if *migrateOnlyFlag {
		if _, err := db.ConnectAndMigrate(cfg.DatabaseDSN); err != nil {
			log.Fatal("migrate-only failed", zap.Error(err))
		}
		log.Info("migrations completed; exiting as requested")
		return
	}

	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD doit être défini")
	}
	creds, err := auth.NewStaticCredentials(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		log.Fatal("credentials setup failed", zap.Error(err))
	}

	conn, err := db.ConnectAndMigrate(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("erreur connexion DB", zap.Error(err))
	}

	opts := server.Options{}
	if cfg.MailEnabled() {
		opts.Mailer = mailer.NewSMTP(cfg.Mail)
		opts.NotifyTo = cfg.Mail.NotifyTo
		log.Info("mail notifications enabled", zap.String("notify_to", cfg.Mail.NotifyTo))
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: server.New(conn, creds, opts)}
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("error during shutdown", zap.Error(err))
	}
	log.Info("server gracefully stopped")
}
