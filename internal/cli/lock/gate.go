package lock

import (
	"context"
	"fmt"

	"PassVault/internal/cli/keystore"
)

// State — состояние локального гейта разблокировки.
type State int

const (
	// StateNoLocalLock — локальная блокировка не настроена, доступ сразу.
	StateNoLocalLock State = iota
	// StatePasswordLock — требуется локальный пароль приложения.
	StatePasswordLock
	// StateBiometricLock — требуется биометрическая проверка.
	StateBiometricLock
	// StateUnlocked — гейт пройден; терминально до следующего Refresh.
	StateUnlocked
)

func (s State) String() string {
	switch s {
	case StateNoLocalLock:
		return "no-local-lock"
	case StatePasswordLock:
		return "password-lock"
	case StateBiometricLock:
		return "biometric-lock"
	case StateUnlocked:
		return "unlocked"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Flags — снимок флагов keystore, от которых зависит выбор состояния.
type Flags struct {
	HasAppPassword  bool
	FaceLockEnabled bool
}

// Evaluate выбирает состояние гейта по флагам. Чистая функция.
// Биометрия имеет строгий приоритет: пока face lock включён, парольный
// путь недостижим (смена/удаление пароля — только через настройки).
func Evaluate(f Flags) State {
	if f.FaceLockEnabled {
		return StateBiometricLock
	}
	if f.HasAppPassword {
		return StatePasswordLock
	}
	return StateNoLocalLock
}

// ReadFlags читает снимок флагов из keystore.
func ReadFlags(ks keystore.Keystore) (Flags, error) {
	_, hasPassword, err := ks.Get(keystore.KeyAppPassword)
	if err != nil {
		return Flags{}, fmt.Errorf("read app password flag: %w", err)
	}
	v, ok, err := ks.Get(keystore.KeyFaceLockEnabled)
	if err != nil {
		return Flags{}, fmt.Errorf("read face lock flag: %w", err)
	}
	return Flags{
		HasAppPassword:  hasPassword,
		FaceLockEnabled: ok && v == "true",
	}, nil
}

// Gate — локальный гейт разблокировки поверх keystore и аутентификатора.
type Gate struct {
	ks    keystore.Keystore
	auth  Authenticator
	state State
}

// NewGate создаёт гейт и сразу вычисляет состояние по флагам keystore.
func NewGate(ks keystore.Keystore, auth Authenticator) (*Gate, error) {
	g := &Gate{ks: ks, auth: auth}
	if _, err := g.Refresh(); err != nil {
		return nil, err
	}
	return g, nil
}

// Refresh перечитывает флаги и заново выбирает состояние.
// Вызывается на холодном старте и при возврате приложения на передний план.
func (g *Gate) Refresh() (State, error) {
	flags, err := ReadFlags(g.ks)
	if err != nil {
		return g.state, err
	}
	g.state = Evaluate(flags)
	return g.state, nil
}

// State возвращает текущее состояние гейта.
func (g *Gate) State() State {
	return g.state
}

// Authenticate проводит биометрическую проверку. Успех переводит гейт
// в StateUnlocked; неуспех оставляет StateBiometricLock — повторная попытка
// возможна только явным повторным вызовом, автоотката на пароль нет.
func (g *Gate) Authenticate(ctx context.Context, prompt string) error {
	if g.state != StateBiometricLock {
		return fmt.Errorf("authenticate called in state %s", g.state)
	}
	if err := g.auth.Authenticate(ctx, prompt); err != nil {
		return ErrChallengeFailed
	}
	g.state = StateUnlocked
	return nil
}

// Submit проверяет локальный пароль приложения. Точное строковое совпадение
// разблокирует гейт; несовпадение возвращает ErrIncorrectPassword и не
// меняет состояние (ввод очищает вызывающая сторона).
func (g *Gate) Submit(candidate string) error {
	if g.state != StatePasswordLock {
		return fmt.Errorf("submit called in state %s", g.state)
	}
	stored, ok, err := g.ks.Get(keystore.KeyAppPassword)
	if err != nil {
		return fmt.Errorf("read app password: %w", err)
	}
	if !ok || candidate != stored {
		return ErrIncorrectPassword
	}
	g.state = StateUnlocked
	return nil
}
