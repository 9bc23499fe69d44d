package commands

import (
	"context"
	"errors"
	"fmt"

	"PassVault/internal/cli/lock"
	"PassVault/internal/config"
)

type faceLockCmd struct{}

func (faceLockCmd) Name() string { return "facelock" }
func (faceLockCmd) Description() string {
	return "Включить или выключить биометрическую блокировку"
}
func (faceLockCmd) Usage() string { return "facelock on|off" }

func (faceLockCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	ks, done, err := openKeystore()
	if err != nil {
		return err
	}
	defer done()
	settings := lock.NewSettings(ks, lock.Unavailable{})
	switch args[0] {
	case "on":
		if err := settings.EnableFaceLock(ctx); err != nil {
			switch {
			case errors.Is(err, lock.ErrNoHardware):
				return errors.New("биометрия недоступна на этой платформе")
			case errors.Is(err, lock.ErrNotEnrolled):
				return errors.New("биометрия не настроена в системе")
			case errors.Is(err, lock.ErrChallengeFailed):
				return errors.New("биометрическая проверка не пройдена")
			}
			return err
		}
		fmt.Fprintln(Out, "Face lock enabled")
		return nil
	case "off":
		// Выключение не требует проверки: пользователь уже за локальным гейтом.
		if err := settings.DisableFaceLock(); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Face lock disabled")
		return nil
	default:
		return ErrUsage
	}
}

func init() { RegisterCmd(faceLockCmd{}) }
