package commands

import (
	"context"
	"fmt"

	fsrepo "PassVault/internal/cli/repo/fs"
	"PassVault/internal/config"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Завершить сессию и удалить сохранённый токен" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := (fsrepo.AuthFSStore{}).Clear(); err != nil {
		return fmt.Errorf("clearing auth: %w", err)
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
