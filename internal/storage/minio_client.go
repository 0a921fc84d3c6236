package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"wellnessPosts/internal/config"
)

// objectStore is the part of *minio.Client used here.
type objectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

type MinIOClient struct {
	client  objectStore
	bucket  string
	baseURL string
	now     func() time.Time
}

func NewMinIOClient(ctx context.Context, cfg config.MinIO) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента MinIO: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки бакета %s: %w", cfg.BucketName, err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания бакета %s: %w", cfg.BucketName, err)
		}
	}

	return newMinIOClient(client, cfg), nil
}

func newMinIOClient(client objectStore, cfg config.MinIO) *MinIOClient {
	baseURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = scheme + "://" + cfg.Endpoint
	}

	return &MinIOClient{
		client:  client,
		bucket:  cfg.BucketName,
		baseURL: baseURL,
		now:     time.Now,
	}
}

func (m *MinIOClient) UploadImage(ctx context.Context, image string, folder string) (*Uploaded, error) {
	img, err := DecodeImage(image)
	if err != nil {
		return nil, err
	}

	now := m.now().UTC()
	objectName := fmt.Sprintf("%s/%d/%02d/%s%s",
		strings.Trim(folder, "/"),
		now.Year(),
		now.Month(),
		uuid.New().String(),
		img.Extension)

	_, err = m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader(img.Data), int64(len(img.Data)),
		minio.PutObjectOptions{
			ContentType: img.ContentType,
			UserMetadata: map[string]string{
				"folder":      folder,
				"uploaded-at": now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return &Uploaded{
		ObjectID: objectName,
		URL:      fmt.Sprintf("%s/%s/%s", m.baseURL, m.bucket, objectName),
	}, nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectID string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectID,
		minio.RemoveObjectOptions{
			GovernanceBypass: true,
		})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}
