package storage

import (
	"context"
	"fmt"

	"wellnessPosts/internal/config"
)

// Uploaded identifies a stored image: ObjectID is what DeleteImage expects,
// URL is what gets persisted on the post.
type Uploaded struct {
	ObjectID string
	URL      string
}

type Storage interface {
	UploadImage(ctx context.Context, image string, folder string) (*Uploaded, error)
	DeleteImage(ctx context.Context, objectID string) error
}

const (
	ProviderMinIO      = "minio"
	ProviderCloudinary = "cloudinary"
)

func NewStorage(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Media.Provider {
	case ProviderMinIO, "":
		client, err := NewMinIOClient(ctx, cfg.MinIO)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderCloudinary:
		client, err := NewCloudinaryClient(cfg.Cloudinary)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("неизвестный провайдер медиа: %q", cfg.Media.Provider)
	}
}
