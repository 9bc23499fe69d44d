package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"PassVault/internal/cli/keystore"
	"PassVault/internal/cli/lock"
	fsrepo "PassVault/internal/cli/repo/fs"
	"PassVault/internal/cli/service"
	"PassVault/internal/cli/session"
	"PassVault/internal/config"
)

// In — источник интерактивного ввода CLI (пароль разблокировки).
// В тестах может переназначаться.
var In *bufio.Reader = bufio.NewReader(os.Stdin)

// newSessionGate создаёт гейт сессии процесса, восстанавливая её из
// сохранённого токена. Сервер остаётся источником истины: просроченный
// токен сбросит сессию при первом же запросе.
func newSessionGate() *session.Gate {
	gate := session.NewGate()
	store := fsrepo.AuthFSStore{}
	if _, err := store.Load(); err == nil {
		login, _ := store.LoadLogin()
		gate.Set(session.Identity{Login: login})
	}
	return gate
}

// newCredentialService собирает клиентский сервис записей.
func newCredentialService(cfg *config.Config) (service.CredentialService, *session.Gate) {
	gate := newSessionGate()
	return service.NewCredentialServiceRemote(cfg, gate, fsrepo.AuthFSStore{}), gate
}

// openKeystore открывает keystore текущего пользователя.
// cleanup закрывает соединение с БД.
func openKeystore() (keystore.Keystore, func() error, error) {
	login, err := (fsrepo.AuthFSStore{}).LoadLogin()
	if err != nil {
		return nil, nil, fmt.Errorf("нет активного пользователя: выполните login/register: %w", err)
	}
	ks, _, err := keystore.OpenForUser(login)
	if err != nil {
		return nil, nil, fmt.Errorf("open keystore: %w", err)
	}
	return ks, ks.Close, nil
}

// ensureUnlocked проводит пользователя через локальный гейт разблокировки
// перед доступом к хранилищу. Вызывается каждой vault-командой: процесс CLI
// короткоживущий, состояние гейта не переживает его завершение.
func ensureUnlocked(ctx context.Context) error {
	ks, done, err := openKeystore()
	if err != nil {
		return err
	}
	defer done()

	gate, err := lock.NewGate(ks, lock.Unavailable{})
	if err != nil {
		return err
	}

	switch gate.State() {
	case lock.StateNoLocalLock, lock.StateUnlocked:
		return nil
	case lock.StateBiometricLock:
		if err := gate.Authenticate(ctx, "Unlock your vault"); err != nil {
			return fmt.Errorf("биометрия недоступна на этой платформе; отключите face lock командой facelock off: %w", err)
		}
		return nil
	case lock.StatePasswordLock:
		fmt.Fprint(Out, "App password: ")
		line, err := In.ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read password: %w", err)
		}
		if err := gate.Submit(strings.TrimRight(line, "\r\n")); err != nil {
			if errors.Is(err, lock.ErrIncorrectPassword) {
				return errors.New("неверный пароль")
			}
			return err
		}
		return nil
	}
	return nil
}
