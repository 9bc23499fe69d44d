package commands

import (
	"context"
	"errors"
	"fmt"

	"PassVault/internal/cli/lock"
	"PassVault/internal/config"
)

type lockSetCmd struct{}

func (lockSetCmd) Name() string { return "lock-set" }
func (lockSetCmd) Description() string {
	return "Установить локальный пароль приложения"
}
func (lockSetCmd) Usage() string { return "lock-set <password> <confirm>" }

func (lockSetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	ks, done, err := openKeystore()
	if err != nil {
		return err
	}
	defer done()
	settings := lock.NewSettings(ks, lock.Unavailable{})
	if err := settings.SetAppPassword(args[0], args[1]); err != nil {
		switch {
		case errors.Is(err, lock.ErrMismatch):
			return errors.New("пароли не совпадают")
		case errors.Is(err, lock.ErrTooShort):
			return fmt.Errorf("пароль короче %d символов", lock.MinPasswordLength)
		}
		return err
	}
	fmt.Fprintln(Out, "App password set")
	return nil
}

func init() { RegisterCmd(lockSetCmd{}) }
