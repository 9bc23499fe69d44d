package repo

import (
	"PassVault/internal/model"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	// Миграции для всех моделей, используемых в репозиториях
	if err := db.AutoMigrate(&model.User{}, &model.CredentialRecord{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	// Чистое состояние между тестами: in-memory БД с cache=shared переживает подключение
	if err := db.Where("1 = 1").Delete(&model.CredentialRecord{}).Error; err != nil {
		t.Fatalf("failed to clean credentials: %v", err)
	}
	if err := db.Where("1 = 1").Delete(&model.User{}).Error; err != nil {
		t.Fatalf("failed to clean users: %v", err)
	}
	return db
}
