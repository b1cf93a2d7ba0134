package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"aqarhub/internal/utils"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config holds S3-compatible storage settings (MinIO, R2, ...).
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

// MediaStore persists listing media in an S3-compatible bucket. The
// ordering subsystem only ever sees the URLs it hands back.
type MediaStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	endpoint  string
	useSSL    bool
}

// NewMediaStore builds the client and makes sure the bucket exists.
func NewMediaStore(cfg Config) (*MediaStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		utils.Log.Infof("storage bucket %s created", cfg.Bucket)
	}

	return &MediaStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		endpoint:  cfg.Endpoint,
		useSSL:    cfg.UseSSL,
	}, nil
}

// Upload stores one object under a fresh key and returns key + public URL.
func (m *MediaStore) Upload(ctx context.Context, reader io.Reader, size int64, contentType, filename string) (string, string, error) {
	ext := strings.ToLower(path.Ext(filename))
	key := "listings/" + uuid.NewString() + ext

	_, err := m.client.PutObject(ctx, m.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", "", fmt.Errorf("upload %s: %w", key, err)
	}
	return key, m.URLFor(key), nil
}

// Remove deletes one object; callers treat failures as best-effort.
func (m *MediaStore) Remove(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}

// URLFor issues the public URL for a stored object.
func (m *MediaStore) URLFor(key string) string {
	if m.publicURL != "" {
		return m.publicURL + "/" + key
	}
	scheme := "http"
	if m.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.endpoint, m.bucket, key)
}
