package model

import "time"

// User — учётная запись владельца хранилища.
type User struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Login string `gorm:"not null;uniqueIndex" validate:"required"`
	// Password хранит bcrypt-хеш, никогда не исходный пароль.
	Password string `gorm:"not null" validate:"required"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
