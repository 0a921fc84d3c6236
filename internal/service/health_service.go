package service

import (
	"context"
	"fmt"
)

type Pinger interface {
	HealthCheck(ctx context.Context) error
}

type HealthService interface {
	Check(ctx context.Context) error
}

type healthService struct {
	db Pinger
}

func NewHealthService(db Pinger) HealthService {
	return &healthService{db: db}
}

func (h *healthService) Check(ctx context.Context) error {
	if err := h.db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("БД недоступна: %w", err)
	}
	return nil
}
