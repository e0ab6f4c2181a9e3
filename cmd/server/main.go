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

	"github.com/campuscompass/compass/internal/auth"
	"github.com/campuscompass/compass/internal/config"
	"github.com/campuscompass/compass/internal/server"
	"github.com/campuscompass/compass/internal/storage/sqlite"
	"github.com/campuscompass/compass/pkg/logging"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(conf.GetString("LOG_LEVEL"))

	store, err := sqlite.New(conf.GetString("DB_PATH"))
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", conf.GetString("DB_PATH"))

	jwtManager := auth.NewJWTManager(conf.GetString("SECRET_KEY"), conf.GetDuration("TOKEN_TTL"))
	authenticator := auth.NewPasswordAuthenticator(store)

	srv := server.New(server.Options{
		Store:         store,
		Authenticator: authenticator,
		JWT:           jwtManager,
		Debug:         conf.GetString("LOG_LEVEL") == "debug",
	})

	go func() {
		addr := conf.GetString("ADDR")
		slog.Info("Server starting", "address", addr)
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
}
