package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotConfigured возвращается операциями blob-хранилища, когда MinIO
// не настроен в конфигурации.
var ErrNotConfigured = errors.New("blob storage is not configured")

// Unconfigured — заглушка BlobStore для установок без blob-хранилища.
// Чтение image-записей при этом отдаёт сохранённый путь как есть.
type Unconfigured struct{}

var _ BlobStore = Unconfigured{}

func (Unconfigured) EnsureBucket(context.Context) error { return nil }

func (Unconfigured) Upload(context.Context, string, io.Reader, int64, string) (string, error) {
	return "", ErrNotConfigured
}

func (Unconfigured) SignedURL(context.Context, string, time.Duration) (string, error) {
	return "", ErrNotConfigured
}

func (Unconfigured) PublicURL(path string) string { return path }

func (Unconfigured) Delete(context.Context, string) error { return ErrNotConfigured }
