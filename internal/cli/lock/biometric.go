package lock

import "context"

// Authenticator — порт платформенного биометрического аутентификатора.
type Authenticator interface {
	// HasHardware сообщает о наличии биометрического оборудования.
	HasHardware() bool

	// IsEnrolled сообщает, настроена ли хотя бы одна биометрическая запись.
	IsEnrolled() bool

	// Authenticate запускает одну биометрическую проверку с текстом prompt.
	// Ошибка означает неуспех/отмену; состояние вызывающей стороны не меняется.
	Authenticate(ctx context.Context, prompt string) error
}

// Unavailable — аутентификатор для платформ без биометрии.
type Unavailable struct{}

var _ Authenticator = Unavailable{}

func (Unavailable) HasHardware() bool { return false }
func (Unavailable) IsEnrolled() bool  { return false }

func (Unavailable) Authenticate(context.Context, string) error {
	return ErrNoHardware
}
