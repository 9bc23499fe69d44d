package model

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// CredentialRecord — строка таблицы credential_records: общие колонки плюс
// непрозрачная JSON-колонка data с телом активного варианта.
type CredentialRecord struct {
	ID     string `gorm:"primaryKey;type:uuid" validate:"required,uuid_rfc4122"`
	UserID int64  `gorm:"not null;index" validate:"required"` // ссылка на users.id

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Type     string `gorm:"not null" validate:"required,credential_type"`
	Title    string `gorm:"not null" validate:"required"`
	Category string `gorm:"not null;default:other" validate:"required,credential_category"`
	Favorite bool   `gorm:"not null;default:false"`
	Notes    string

	// Data содержит только поля активного варианта; поля чужих вариантов
	// не должны попадать в хранилище.
	Data datatypes.JSON `gorm:"not null" validate:"required"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// PackRecord собирает строку хранилища из записи: общие колонки из общих полей,
// тело активного варианта — в JSON-колонку data.
func PackRecord(userID int64, c *Credential) (*CredentialRecord, error) {
	body, typ, err := c.payload()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", typ, err)
	}
	return &CredentialRecord{
		ID:        c.ID,
		UserID:    userID,
		Type:      string(c.Type),
		Title:     c.Title,
		Category:  string(c.Category),
		Favorite:  c.Favorite,
		Notes:     c.Notes,
		Data:      datatypes.JSON(data),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}

// UnpackRecord восстанавливает запись из строки хранилища, разворачивая
// JSON-колонку data в тело варианта, соответствующее колонке type.
func UnpackRecord(r *CredentialRecord) (*Credential, error) {
	c := &Credential{
		ID:        r.ID,
		Type:      CredentialType(r.Type),
		Title:     r.Title,
		Category:  Category(r.Category),
		Favorite:  r.Favorite,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	var body any
	switch c.Type {
	case TypePassword:
		c.Password = &PasswordData{}
		body = c.Password
	case TypeCreditCard:
		c.CreditCard = &CreditCardData{}
		body = c.CreditCard
	case TypeNote:
		c.Note = &NoteData{}
		body = c.Note
	case TypeWiFi:
		c.WiFi = &WiFiData{}
		body = c.WiFi
	case TypeLink:
		c.Link = &LinkData{}
		body = c.Link
	case TypeImage:
		c.Image = &ImageData{}
		body = c.Image
	default:
		return nil, fmt.Errorf("unknown credential type %q", r.Type)
	}

	if err := json.Unmarshal(r.Data, body); err != nil {
		return nil, fmt.Errorf("unmarshal %s payload: %w", r.Type, err)
	}
	return c, nil
}
