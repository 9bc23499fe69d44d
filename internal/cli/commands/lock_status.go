package commands

import (
	"context"
	"fmt"

	"PassVault/internal/cli/lock"
	"PassVault/internal/config"
)

type lockStatusCmd struct{}

func (lockStatusCmd) Name() string        { return "lock-status" }
func (lockStatusCmd) Description() string { return "Показать состояние локальной блокировки" }
func (lockStatusCmd) Usage() string       { return "lock-status" }

func (lockStatusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	ks, done, err := openKeystore()
	if err != nil {
		return err
	}
	defer done()
	flags, err := lock.ReadFlags(ks)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "state:        %s\n", lock.Evaluate(flags))
	fmt.Fprintf(Out, "app password: %v\n", flags.HasAppPassword)
	fmt.Fprintf(Out, "face lock:    %v\n", flags.FaceLockEnabled)
	return nil
}

func init() { RegisterCmd(lockStatusCmd{}) }
