package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr   string
	GinMode   string
	JWTSecret string

	LogLevel string
	LogFile  string

	RedisURL    string
	CachePrefix string

	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool
	StoragePublicURL string

	RenormalizeEvery time.Duration
}

func LoadEnv() Env {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	bucket := strings.TrimSpace(os.Getenv("STORAGE_BUCKET"))
	if bucket == "" {
		bucket = "aqarhub-media"
	}

	prefix := strings.TrimSpace(os.Getenv("CACHE_PREFIX"))
	if prefix == "" {
		prefix = "aqarhub:pages"
	}

	every := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("RENORMALIZE_EVERY")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			every = d
		}
	}

	useSSL, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv("STORAGE_USE_SSL")))

	return Env{
		AppAddr:          appAddr,
		GinMode:          strings.TrimSpace(os.Getenv("GIN_MODE")),
		JWTSecret:        secret,
		LogLevel:         strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		LogFile:          strings.TrimSpace(os.Getenv("LOG_FILE")),
		RedisURL:         strings.TrimSpace(os.Getenv("REDIS_URL")),
		CachePrefix:      prefix,
		StorageEndpoint:  strings.TrimSpace(os.Getenv("STORAGE_ENDPOINT")),
		StorageAccessKey: strings.TrimSpace(os.Getenv("STORAGE_ACCESS_KEY")),
		StorageSecretKey: strings.TrimSpace(os.Getenv("STORAGE_SECRET_KEY")),
		StorageBucket:    bucket,
		StorageUseSSL:    useSSL,
		StoragePublicURL: strings.TrimSpace(os.Getenv("STORAGE_PUBLIC_URL")),
		RenormalizeEvery: every,
	}
}

// JWTSecretBytes returns the signing key for auth tokens.
func JWTSecretBytes() []byte {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}
	return []byte(secret)
}
