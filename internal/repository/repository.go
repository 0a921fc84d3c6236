package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"wellnessPosts/internal/models"
	"wellnessPosts/internal/query"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	List(ctx context.Context, spec query.Spec) ([]models.Post, error)
}

type Repository struct {
	Post PostRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Post: NewPostRepository(db),
	}
}
