package storage

import (
	"context"
	"io"
	"time"
)

// SignedURLTTL — время жизни подписанной ссылки на изображение.
const SignedURLTTL = 3600 * time.Second

// BlobStore описывает операции blob-хранилища, используемые сервисом записей.
type BlobStore interface {
	// EnsureBucket гарантирует наличие бакета.
	EnsureBucket(ctx context.Context) error

	// Upload сохраняет объект и возвращает его путь внутри бакета.
	Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) (string, error)

	// SignedURL возвращает подписанную ссылку с ограниченным сроком действия.
	SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)

	// PublicURL возвращает постоянную публичную ссылку на объект.
	PublicURL(path string) string

	// Delete удаляет объект.
	Delete(ctx context.Context, path string) error
}
