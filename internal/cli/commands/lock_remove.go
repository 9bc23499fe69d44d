package commands

import (
	"context"
	"errors"
	"fmt"

	"PassVault/internal/cli/lock"
	"PassVault/internal/config"
)

type lockRemoveCmd struct{}

func (lockRemoveCmd) Name() string { return "lock-remove" }
func (lockRemoveCmd) Description() string {
	return "Снять локальный пароль приложения (требует текущий пароль)"
}
func (lockRemoveCmd) Usage() string { return "lock-remove <current>" }

func (lockRemoveCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	ks, done, err := openKeystore()
	if err != nil {
		return err
	}
	defer done()
	settings := lock.NewSettings(ks, lock.Unavailable{})
	if err := settings.RemoveAppPassword(args[0]); err != nil {
		if errors.Is(err, lock.ErrIncorrectPassword) {
			return errors.New("неверный пароль: пароль приложения сохранён")
		}
		return err
	}
	fmt.Fprintln(Out, "App password removed")
	return nil
}

func init() { RegisterCmd(lockRemoveCmd{}) }
