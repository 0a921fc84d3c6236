package service

import (
	"github.com/sirupsen/logrus"

	"wellnessPosts/internal/config"
	"wellnessPosts/internal/repository"
	"wellnessPosts/internal/storage"
)

type Service struct {
	Post   PostService
	Health HealthService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, db Pinger, log logrus.FieldLogger) *Service {
	return &Service{
		Post:   NewPostService(rep.Post, storage, cfg.Media, log),
		Health: NewHealthService(db),
	}
}
