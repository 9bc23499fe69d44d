package repo

import (
	"context"
	"errors"

	"PassVault/internal/model"

	"gorm.io/gorm"
)

// CredentialRepository определяет контракт доступа к записям хранилища.
// Каждый метод обязан применять предикат владельца: записи чужих
// пользователей неотличимы от отсутствующих.
type CredentialRepository interface {
	// ListByUser возвращает все записи пользователя, новые первыми.
	ListByUser(ctx context.Context, userID int64) ([]model.CredentialRecord, error)

	// GetByID возвращает запись пользователя. Отсутствие или чужая запись — ErrNotFound.
	GetByID(ctx context.Context, userID int64, id string) (*model.CredentialRecord, error)

	// Create вставляет новую запись.
	Create(ctx context.Context, rec *model.CredentialRecord) error

	// Update полностью заменяет изменяемые колонки записи пользователя.
	// Отсутствие или чужая запись — ErrNotFound.
	Update(ctx context.Context, userID int64, rec *model.CredentialRecord) error

	// Delete удаляет запись пользователя. Идемпотентен: отсутствующий id — no-op.
	Delete(ctx context.Context, userID int64, id string) error
}

type credentialRepo struct {
	db *gorm.DB
}

// NewCredentialRepository создаёт реализацию репозитория записей.
func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepo{db: db}
}

func (r *credentialRepo) ListByUser(ctx context.Context, userID int64) ([]model.CredentialRecord, error) {
	var recs []model.CredentialRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *credentialRepo) GetByID(ctx context.Context, userID int64, id string) (*model.CredentialRecord, error) {
	var rec model.CredentialRecord
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *credentialRepo) Create(ctx context.Context, rec *model.CredentialRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *credentialRepo) Update(ctx context.Context, userID int64, rec *model.CredentialRecord) error {
	res := r.db.WithContext(ctx).
		Model(&model.CredentialRecord{}).
		Where("id = ? AND user_id = ?", rec.ID, userID).
		Updates(map[string]any{
			"type":       rec.Type,
			"title":      rec.Title,
			"category":   rec.Category,
			"favorite":   rec.Favorite,
			"notes":      rec.Notes,
			"data":       rec.Data,
			"updated_at": rec.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *credentialRepo) Delete(ctx context.Context, userID int64, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CredentialRecord{}).Error
}
