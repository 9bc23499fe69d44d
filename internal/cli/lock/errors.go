package lock

import "errors"

var (
	// ErrIncorrectPassword — введённый пароль не совпал с сохранённым.
	// Счётчика попыток нет: гейт остаётся в том же состоянии.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrMismatch — пароль и подтверждение не совпали.
	ErrMismatch = errors.New("passwords do not match")

	// ErrTooShort — пароль короче минимальной длины.
	ErrTooShort = errors.New("password is too short")

	// ErrNoHardware — на устройстве нет биометрического оборудования.
	ErrNoHardware = errors.New("biometric hardware is not available")

	// ErrNotEnrolled — биометрия не настроена на устройстве.
	ErrNotEnrolled = errors.New("no biometric credentials enrolled")

	// ErrChallengeFailed — биометрическая проверка не пройдена или отменена.
	ErrChallengeFailed = errors.New("biometric challenge failed")
)
