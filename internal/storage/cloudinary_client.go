package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"wellnessPosts/internal/config"
)

type cloudinaryUploader interface {
	Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// CloudinaryClient hands the image string (data URI, base64 or remote URL)
// to Cloudinary as is and keeps the returned secure URL.
type CloudinaryClient struct {
	upload cloudinaryUploader
}

func NewCloudinaryClient(cfg config.Cloudinary) (*CloudinaryClient, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("не заданы учетные данные Cloudinary")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента Cloudinary: %w", err)
	}

	return &CloudinaryClient{upload: &cld.Upload}, nil
}

func (c *CloudinaryClient) UploadImage(ctx context.Context, image string, folder string) (*Uploaded, error) {
	res, err := c.upload.Upload(ctx, image, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки в Cloudinary: %w", err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("ошибка загрузки в Cloudinary: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return nil, errors.New("ошибка загрузки в Cloudinary: пустой URL")
	}

	return &Uploaded{ObjectID: res.PublicID, URL: res.SecureURL}, nil
}

func (c *CloudinaryClient) DeleteImage(ctx context.Context, objectID string) error {
	res, err := c.upload.Destroy(ctx, uploader.DestroyParams{PublicID: objectID})
	if err != nil {
		return fmt.Errorf("ошибка удаления из Cloudinary: %w", err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("ошибка удаления из Cloudinary: %s", res.Error.Message)
	}
	return nil
}
