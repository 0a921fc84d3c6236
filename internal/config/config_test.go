package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DB_DRIVER", "DB_PATH", "MEDIA_PROVIDER", "MEDIA_FOLDER",
		"MEDIA_UPLOAD_TIMEOUT", "MEDIA_CLEANUP_ON_FAILURE", "MAX_UPLOAD_SIZE",
		"CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_FORMAT",
		"CLOUDINARY_CLOUD_NAME", "CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := LoadConfig()

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "minio", cfg.Media.Provider)
	assert.Equal(t, 30*time.Second, cfg.Media.UploadTimeout)
	assert.False(t, cfg.Media.CleanupOnFailure)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadSize)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("MEDIA_PROVIDER", "Cloudinary")
	t.Setenv("MEDIA_FOLDER", "posts")
	t.Setenv("MEDIA_UPLOAD_TIMEOUT", "5s")
	t.Setenv("MEDIA_CLEANUP_ON_FAILURE", "true")
	t.Setenv("MAX_UPLOAD_SIZE", "2048")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("LOG_FORMAT", "json")

	cfg := LoadConfig()

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.DB.DbDRIVER)
	assert.Equal(t, "cloudinary", cfg.Media.Provider)
	assert.Equal(t, "posts", cfg.Media.Folder)
	assert.Equal(t, 5*time.Second, cfg.Media.UploadTimeout)
	assert.True(t, cfg.Media.CleanupOnFailure)
	assert.Equal(t, int64(2048), cfg.MaxUploadSize)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadMedia_ProviderFromCloudinaryCredentials(t *testing.T) {
	t.Setenv("MEDIA_PROVIDER", "")
	os.Unsetenv("MEDIA_PROVIDER")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")

	assert.Equal(t, "cloudinary", LoadMedia().Provider)

	t.Run("Явный провайдер важнее", func(t *testing.T) {
		t.Setenv("MEDIA_PROVIDER", "minio")
		assert.Equal(t, "minio", LoadMedia().Provider)
	})

	t.Run("Неполные учетные данные", func(t *testing.T) {
		t.Setenv("CLOUDINARY_API_SECRET", "")
		os.Unsetenv("CLOUDINARY_API_SECRET")
		assert.Equal(t, "minio", LoadMedia().Provider)
	})
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, 2*time.Hour, parseDuration("7d", 2*time.Hour))
	assert.Equal(t, time.Minute, parseDuration("1m", 2*time.Hour))
	assert.Equal(t, time.Second, parseDuration("-1s", time.Second))
	assert.Equal(t, int64(10*1024*1024), parseMaxUploadSize("big"))
	assert.Equal(t, int64(10*1024*1024), parseMaxUploadSize("-5"))
}
