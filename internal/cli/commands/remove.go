package commands

import (
	"context"
	"fmt"

	"PassVault/internal/config"
)

type removeCmd struct{}

func (removeCmd) Name() string        { return "remove" }
func (removeCmd) Description() string { return "Удалить запись" }
func (removeCmd) Usage() string       { return "remove <id>" }

func (removeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := ensureUnlocked(ctx); err != nil {
		return err
	}
	svc, _ := newCredentialService(cfg)
	if err := svc.Remove(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Removed")
	return nil
}

func init() { RegisterCmd(removeCmd{}) }
