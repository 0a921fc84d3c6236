package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"wellnessPosts/internal/models"
	"wellnessPosts/internal/query"
)

const selectPosts = `SELECT id, title, description, tag, image_url, created_at, updated_at FROM posts`

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	insert := `
		INSERT INTO posts (title, description, tag, image_url, created_at, updated_at)
		VALUES (:title, :description, :tag, :image_url, :created_at, :updated_at)
		RETURNING id
	`

	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	q, args, err := r.DB.BindNamed(insert, post)
	if err != nil {
		return fmt.Errorf("ошибка при подготовке запроса: %w", err)
	}

	if err := r.DB.QueryRowxContext(ctx, q, args...).Scan(&post.ID); err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

// List runs the filtered, ordered and windowed SELECT described by spec.
func (r *PostRepositoryImpl) List(ctx context.Context, spec query.Spec) ([]models.Post, error) {
	q, args := spec.SQL(selectPosts)

	posts := []models.Post{}
	if err := r.DB.SelectContext(ctx, &posts, r.DB.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}
