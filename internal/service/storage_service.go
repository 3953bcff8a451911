package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"skillbridge_backend/internal/config"
)

// StorageProvider archives uploaded resume files. Save returns the key the
// object was stored under.
type StorageProvider interface {
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type StorageService struct {
	provider StorageProvider
}

// NewStorageService builds the provider named by config. An unknown or
// empty type disables archiving; uploads still parse, nothing is kept.
func NewStorageService(cfg *config.Config) (*StorageService, error) {
	switch cfg.Storage.Type {
	case "local":
		return &StorageService{provider: &localProvider{basePath: cfg.Storage.LocalPath}}, nil
	case "minio":
		client, err := minio.New(cfg.Storage.MinioEndpoint, &minio.Options{
			Creds: credentials.NewStaticV4(cfg.Storage.MinioAccessID, cfg.Storage.MinioSecret, ""),
		})
		if err != nil {
			return nil, fmt.Errorf("init minio client: %w", err)
		}
		return &StorageService{provider: &minioProvider{client: client, bucket: cfg.Storage.MinioBucket}}, nil
	case "oss":
		client, err := oss.New(cfg.Storage.OSSEndpoint, cfg.Storage.OSSAccessKey, cfg.Storage.OSSSecretKey)
		if err != nil {
			return nil, fmt.Errorf("init oss client: %w", err)
		}
		bucket, err := client.Bucket(cfg.Storage.OSSBucket)
		if err != nil {
			return nil, fmt.Errorf("open oss bucket: %w", err)
		}
		return &StorageService{provider: &ossProvider{bucket: bucket}}, nil
	default:
		return &StorageService{}, nil
	}
}

// Enabled reports whether uploads are archived at all.
func (s *StorageService) Enabled() bool {
	return s.provider != nil
}

// ArchiveResume stores the raw PDF under a per-user, collision-free key.
func (s *StorageService) ArchiveResume(ctx context.Context, email, fileName string, data []byte) (string, error) {
	if s.provider == nil {
		return "", nil
	}
	key := fmt.Sprintf("resumes/%s/%s_%s", email, uuid.New().String()[:8], filepath.Base(fileName))
	return s.provider.Save(ctx, key, data, "application/pdf")
}

type localProvider struct {
	basePath string
}

func (p *localProvider) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	full := filepath.Join(p.basePath, key)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return "", err
	}
	return key, nil
}

type minioProvider struct {
	client *minio.Client
	bucket string
}

func (p *minioProvider) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := p.client.PutObject(ctx, p.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return key, nil
}

type ossProvider struct {
	bucket *oss.Bucket
}

func (p *ossProvider) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	err := p.bucket.PutObject(key, bytes.NewReader(data), oss.ContentType(contentType))
	if err != nil {
		return "", err
	}
	return key, nil
}
