package keystore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"PassVault/internal/cli/crypto"

	_ "modernc.org/sqlite"
)

// SQLiteStore — реализация Keystore поверх локального файла SQLite.
// Значения шифруются AES-GCM ключом пользователя перед записью на диск.
type SQLiteStore struct {
	db  *sql.DB
	key []byte
}

var _ Keystore = (*SQLiteStore)(nil)

// OpenForUser открывает (и создаёт при необходимости) файл keystore для
// указанного логина. Вторым значением возвращается путь к БД.
// Базовый каталог можно переопределить переменной CLIENT_DB_PATH.
func OpenForUser(login string) (*SQLiteStore, string, error) {
	if login == "" {
		return nil, "", errors.New("empty login for keystore")
	}
	base := os.Getenv("CLIENT_DB_PATH")
	if base == "" {
		cfgDir, err := os.UserConfigDir()
		if err != nil {
			return nil, "", err
		}
		base = filepath.Join(cfgDir, "PassVault", "users")
	}
	dir := filepath.Join(base, login)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, "", err
	}
	dbPath := filepath.Join(dir, "keystore.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, "", err
	}

	key, err := crypto.LoadOrCreateKey(login)
	if err != nil {
		_ = db.Close()
		return nil, "", err
	}

	s := &SQLiteStore{db: db, key: key}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, "", err
	}
	return s, dbPath, nil
}

// Close закрывает соединение с БД.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS keystore (
			key    TEXT PRIMARY KEY,
			cipher BLOB NOT NULL,
			nonce  BLOB NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("migrate keystore: %w", err)
	}
	return nil
}

// Get возвращает расшифрованное значение ключа.
func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var cipher, nonce []byte
	err := s.db.QueryRow(`SELECT cipher, nonce FROM keystore WHERE key = ?`, key).
		Scan(&cipher, &nonce)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	plain, err := crypto.Decrypt(cipher, nonce, s.key)
	if err != nil {
		return "", false, fmt.Errorf("decrypt keystore value %q: %w", key, err)
	}
	return string(plain), true, nil
}

// Set шифрует и сохраняет значение ключа.
func (s *SQLiteStore) Set(key, value string) error {
	cipher, nonce, err := crypto.Encrypt([]byte(value), s.key)
	if err != nil {
		return fmt.Errorf("encrypt keystore value %q: %w", key, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO keystore (key, cipher, nonce) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET cipher = excluded.cipher, nonce = excluded.nonce`,
		key, cipher, nonce)
	return err
}

// Delete удаляет ключ.
func (s *SQLiteStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM keystore WHERE key = ?`, key)
	return err
}
