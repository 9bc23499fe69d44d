package lock

import (
	"context"
	"fmt"

	"PassVault/internal/cli/keystore"
)

// MinPasswordLength — минимальная длина локального пароля приложения.
const MinPasswordLength = 4

// Settings управляет флагами локальной блокировки в keystore.
// Единственная точка записи флагов, которые читает Gate.
type Settings struct {
	ks   keystore.Keystore
	auth Authenticator
}

// NewSettings создаёт контроллер настроек блокировки.
func NewSettings(ks keystore.Keystore, auth Authenticator) *Settings {
	return &Settings{ks: ks, auth: auth}
}

// EnableFaceLock включает биометрическую блокировку. Требует наличия
// оборудования и настроенной биометрии, затем проводит одну проверку;
// флаг персистится только после её успеха.
func (s *Settings) EnableFaceLock(ctx context.Context) error {
	if !s.auth.HasHardware() {
		return ErrNoHardware
	}
	if !s.auth.IsEnrolled() {
		return ErrNotEnrolled
	}
	if err := s.auth.Authenticate(ctx, "Enable Face Lock"); err != nil {
		return ErrChallengeFailed
	}
	if err := s.ks.Set(keystore.KeyFaceLockEnabled, "true"); err != nil {
		return fmt.Errorf("persist face lock flag: %w", err)
	}
	return nil
}

// DisableFaceLock выключает биометрическую блокировку без повторной
// проверки — асимметрия политики сохранена намеренно.
func (s *Settings) DisableFaceLock() error {
	if err := s.ks.Set(keystore.KeyFaceLockEnabled, "false"); err != nil {
		return fmt.Errorf("persist face lock flag: %w", err)
	}
	return nil
}

// SetAppPassword устанавливает локальный пароль приложения.
func (s *Settings) SetAppPassword(candidate, confirm string) error {
	if candidate != confirm {
		return ErrMismatch
	}
	if len(candidate) < MinPasswordLength {
		return ErrTooShort
	}
	if err := s.ks.Set(keystore.KeyAppPassword, candidate); err != nil {
		return fmt.Errorf("persist app password: %w", err)
	}
	return nil
}

// RemoveAppPassword удаляет локальный пароль после проверки текущего.
// Несовпадение оставляет пароль установленным.
func (s *Settings) RemoveAppPassword(current string) error {
	stored, ok, err := s.ks.Get(keystore.KeyAppPassword)
	if err != nil {
		return fmt.Errorf("read app password: %w", err)
	}
	if !ok || current != stored {
		return ErrIncorrectPassword
	}
	if err := s.ks.Delete(keystore.KeyAppPassword); err != nil {
		return fmt.Errorf("delete app password: %w", err)
	}
	return nil
}
