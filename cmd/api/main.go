package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wellnessPosts/cmd/app"
	"wellnessPosts/internal/config"
	handlers "wellnessPosts/internal/handler"
	"wellnessPosts/internal/logger"
	"wellnessPosts/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, services, err := app.App(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Ошибка инициализации приложения")
	}
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg, log)

	handlerChain := middleware.Chain(
		handlers.NewRouter(handler),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigins),
		middleware.LoggingMiddleware(log),
		middleware.RecoveryMiddleware(log),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handlerChain,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("Server is running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Ошибка запуска сервера")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Ошибка остановки сервера")
	}
	log.Info("Server stopped")
}
