package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"PassVault/internal/model"
	"PassVault/internal/repo"
	"PassVault/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CredentialService инкапсулирует бизнес-логику работы с записями хранилища:
// валидацию, упаковку тела варианта в JSON-колонку и обратно, подстановку
// подписанных ссылок для изображений.
type CredentialService struct {
	repo     repo.CredentialRepository
	blobs    storage.BlobStore
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

// NewCredentialService создаёт сервис записей.
func NewCredentialService(r repo.CredentialRepository, blobs storage.BlobStore, logger *zap.SugaredLogger) (*CredentialService, error) {
	v := validator.New()
	if err := model.RegisterWithValidator(v); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}
	return &CredentialService{repo: r, blobs: blobs, validate: v, logger: logger}, nil
}

// List возвращает все записи пользователя, новые первыми.
// Пустой список — валидный результат.
func (s *CredentialService) List(ctx context.Context, userID int64) ([]model.Credential, error) {
	recs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	out := make([]model.Credential, 0, len(recs))
	for i := range recs {
		c, err := model.UnpackRecord(&recs[i])
		if err != nil {
			return nil, fmt.Errorf("unpack record %s: %w", recs[i].ID, err)
		}
		out = append(out, *c)
	}
	return out, nil
}

// Get возвращает одну запись пользователя. Для image-варианта путь к объекту
// заменяется подписанной ссылкой; при неудаче подписи — публичной ссылкой,
// чтобы не валить чтение целиком.
func (s *CredentialService) Get(ctx context.Context, userID int64, id string) (*model.Credential, error) {
	rec, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	c, err := model.UnpackRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("unpack record %s: %w", id, err)
	}

	if c.Type == model.TypeImage && c.Image != nil && c.Image.ImageURL != "" {
		signed, err := s.blobs.SignedURL(ctx, c.Image.ImageURL, storage.SignedURLTTL)
		if err != nil {
			s.logger.Warnw("failed to sign image URL, falling back to public",
				"id", id, "path", c.Image.ImageURL, "error", err)
			c.Image.ImageURL = s.blobs.PublicURL(c.Image.ImageURL)
		} else {
			c.Image.ImageURL = signed
		}
	}
	return c, nil
}

// Add валидирует черновик, присваивает ID и метки времени и сохраняет запись.
// В JSON-колонку попадают только поля активного варианта.
func (s *CredentialService) Add(ctx context.Context, userID int64, draft *model.Credential) (*model.Credential, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.CreatedAt = now
	draft.UpdatedAt = now

	rec, err := model.PackRecord(userID, draft)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(rec); err != nil {
		return nil, fmt.Errorf("record validation: %w", err)
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create credential: %w", err)
	}
	return draft, nil
}

// Update полностью заменяет заголовок, категорию, флаг избранного, заметки и
// тело варианта, обновляя updated_at. ID и created_at неизменяемы.
func (s *CredentialService) Update(ctx context.Context, userID int64, id string, updated *model.Credential) error {
	if err := updated.Validate(); err != nil {
		return err
	}

	updated.ID = id
	updated.UpdatedAt = time.Now().UTC()

	rec, err := model.PackRecord(userID, updated)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, userID, rec)
}

// Remove удаляет запись пользователя. Повторное удаление — no-op.
func (s *CredentialService) Remove(ctx context.Context, userID int64, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

// UploadImage сохраняет изображение в blob-хранилище и возвращает путь объекта,
// который записывается в image-вариант.
func (s *CredentialService) UploadImage(ctx context.Context, userID int64, name string, r io.Reader, size int64, contentType string) (string, error) {
	path := fmt.Sprintf("%d/%d_%s", userID, time.Now().UnixNano(), name)
	stored, err := s.blobs.Upload(ctx, path, r, size, contentType)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return stored, nil
}
