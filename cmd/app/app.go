package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"wellnessPosts/internal/config"
	"wellnessPosts/internal/database"
	"wellnessPosts/internal/repository"
	"wellnessPosts/internal/service"
	"wellnessPosts/internal/storage"
)

// App wires the process dependencies once at startup. The caller owns the
// returned DB and closes it on shutdown.
func App(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*database.DB, *service.Service, error) {
	// connection DB
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	// connection media storage
	media, err := storage.NewStorage(ctx, cfg)
	if err != nil {
		db.CloseDB()
		return nil, nil, fmt.Errorf("не удалось инициализировать хранилище изображений: %w", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, media, db, log)

	return db, services, nil
}
