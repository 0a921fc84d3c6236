package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"wellnessPosts/internal/config"
	"wellnessPosts/internal/models"
	"wellnessPosts/internal/query"
	"wellnessPosts/internal/repository"
	"wellnessPosts/internal/storage"
)

var ErrImageRequired = errors.New("no image data provided")

type PostService interface {
	CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error)
	ListPosts(ctx context.Context, params query.Params) ([]models.Post, error)
}

type postService struct {
	postRepo repository.PostRepository
	storage  storage.Storage
	media    config.Media
	log      logrus.FieldLogger
}

func NewPostService(postRepo repository.PostRepository, storage storage.Storage, media config.Media, log logrus.FieldLogger) PostService {
	return &postService{
		postRepo: postRepo,
		storage:  storage,
		media:    media,
		log:      log,
	}
}

// CreatePost uploads the image first and writes the row only after the
// upload succeeded. A failed insert leaves the uploaded object behind unless
// CleanupOnFailure is set.
func (p *postService) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	if strings.TrimSpace(req.Image) == "" {
		return nil, ErrImageRequired
	}

	uploadCtx, cancel := ctx, context.CancelFunc(func() {})
	if p.media.UploadTimeout > 0 {
		uploadCtx, cancel = context.WithTimeout(ctx, p.media.UploadTimeout)
	}
	uploaded, err := p.storage.UploadImage(uploadCtx, req.Image, p.media.Folder)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки изображения: %w", err)
	}

	post := &models.Post{
		Title:    req.Title,
		Desc:     req.Desc,
		Tag:      req.Tag,
		ImageURL: &uploaded.URL,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		entry := p.log.WithField("object", uploaded.ObjectID)
		if p.media.CleanupOnFailure {
			if delErr := p.storage.DeleteImage(ctx, uploaded.ObjectID); delErr != nil {
				entry.WithError(delErr).Warn("не удалось удалить загруженное изображение")
			}
		} else {
			entry.Warn("изображение загружено, но пост не сохранен")
		}
		return nil, fmt.Errorf("ошибка сохранения поста в БД: %w", err)
	}

	return post, nil
}

func (p *postService) ListPosts(ctx context.Context, params query.Params) ([]models.Post, error) {
	return p.postRepo.List(ctx, query.Build(params))
}
