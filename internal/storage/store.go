// Package storage хранит загруженные фото и скачивает изображения по URL.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/cityfix_backend/internal/config"
)

// Store - объектное хранилище с публичными ссылками на объекты
type Store interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Exists(ctx context.Context) (bool, error)
	Close() error
}

// NewStore создает хранилище по STORAGE_PROVIDER
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageProvider {
	case "gcs":
		s, err := NewGCSStore(ctx, GCSStoreConfig{
			Bucket:    cfg.StorageBucket,
			Prefix:    cfg.StoragePrefix,
			PublicURL: cfg.StoragePublicURL,
			PublicACL: cfg.StoragePublicACL,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	case "s3":
		s, err := NewS3Store(ctx, S3StoreConfig{
			Bucket:    cfg.StorageBucket,
			Region:    cfg.StorageRegion,
			Endpoint:  cfg.StorageEndpoint,
			Prefix:    cfg.StoragePrefix,
			PublicURL: cfg.StoragePublicURL,
			PublicACL: cfg.StoragePublicACL,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported storage provider %q", cfg.StorageProvider)
}

// publicURL склеивает базовый адрес и путь объекта
func publicURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
