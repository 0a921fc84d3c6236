package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Server struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DB struct {
	DbDRIVER   string
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
	DbPATH     string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

type Cloudinary struct {
	CloudName string
	APIKey    string
	APISecret string
}

type Media struct {
	Provider         string
	Folder           string
	UploadTimeout    time.Duration
	CleanupOnFailure bool
}

type Log struct {
	Level  string
	Format string
}

type Config struct {
	Server             Server
	DB                 DB
	MinIO              MinIO
	Cloudinary         Cloudinary
	Media              Media
	Log                Log
	MaxUploadSize      int64
	CORSAllowedOrigins []string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil || size <= 0 {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadServer() Server {
	return Server{
		Port:            getEnvAsInt("PORT", 3000),
		ReadTimeout:     parseDuration(getEnv("SERVER_READ_TIMEOUT", "15s"), 15*time.Second),
		WriteTimeout:    parseDuration(getEnv("SERVER_WRITE_TIMEOUT", "60s"), 60*time.Second),
		ShutdownTimeout: parseDuration(getEnv("SERVER_SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
	}
}

func LoadDB() DB {
	return DB{
		DbDRIVER:   getEnv("DB_DRIVER", "sqlite3"),
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "wellness"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
		DbPATH:     getEnv("DB_PATH", "database.sqlite"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "images"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", ""),
	}
}

func LoadCloudinary() Cloudinary {
	return Cloudinary{
		CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}
}

// LoadMedia picks cloudinary when MEDIA_PROVIDER is unset but Cloudinary
// credentials are present, so a Cloudinary-only environment starts as is.
func LoadMedia() Media {
	provider := "minio"
	if cld := LoadCloudinary(); cld.CloudName != "" && cld.APIKey != "" && cld.APISecret != "" {
		provider = "cloudinary"
	}

	return Media{
		Provider:         strings.ToLower(getEnv("MEDIA_PROVIDER", provider)),
		Folder:           getEnv("MEDIA_FOLDER", "wellnessZ"),
		UploadTimeout:    parseDuration(getEnv("MEDIA_UPLOAD_TIMEOUT", "30s"), 30*time.Second),
		CleanupOnFailure: getEnvBool("MEDIA_CLEANUP_ON_FAILURE", false),
	}
}

func LoadLog() Log {
	return Log{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "text"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		Server:             LoadServer(),
		DB:                 LoadDB(),
		MinIO:              LoadMinIO(),
		Cloudinary:         LoadCloudinary(),
		Media:              LoadMedia(),
		Log:                LoadLog(),
		MaxUploadSize:      parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}
