package storage

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/storage"
)

// GCSStore - хранилище фото в Google Cloud Storage
type GCSStore struct {
	client    *storage.Client
	bucket    string
	prefix    string
	publicURL string
	publicACL bool
}

type GCSStoreConfig struct {
	Bucket    string
	Prefix    string
	PublicURL string // по умолчанию https://storage.googleapis.com/<bucket>
	PublicACL bool
}

// NewGCSStore использует Application Default Credentials
func NewGCSStore(ctx context.Context, cfg GCSStoreConfig) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	base := cfg.PublicURL
	if base == "" {
		base = "https://storage.googleapis.com/" + cfg.Bucket
	}
	return &GCSStore{
		client:    client,
		bucket:    cfg.Bucket,
		prefix:    cfg.Prefix,
		publicURL: base,
		publicACL: cfg.PublicACL,
	}, nil
}

// Put загружает объект и возвращает его публичный URL
func (s *GCSStore) Put(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	key := s.prefix + path
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=86400"
	if s.publicACL {
		w.PredefinedACL = "publicRead"
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs close failed: %w", err)
	}
	return publicURL(s.publicURL, key), nil
}

// Exists проверяет, что бакет существует и доступен
func (s *GCSStore) Exists(ctx context.Context) (bool, error) {
	_, err := s.client.Bucket(s.bucket).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrBucketNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("gcs bucket attrs error: %w", err)
	}
	return true, nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
