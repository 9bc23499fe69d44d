package commands

import (
	"context"
	"fmt"

	"PassVault/internal/config"
	"PassVault/internal/model"
)

type searchCmd struct{}

func (searchCmd) Name() string { return "search" }
func (searchCmd) Description() string {
	return "Найти записи по подстроке (опционально по типу)"
}
func (searchCmd) Usage() string { return "search <query> [<type>]" }

func (searchCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	query := args[0]
	var typeFilter model.CredentialType
	if len(args) == 2 {
		t, err := parseType(args[1])
		if err != nil {
			return err
		}
		typeFilter = t
	}
	if err := ensureUnlocked(ctx); err != nil {
		return err
	}
	svc, _ := newCredentialService(cfg)
	list, err := svc.Search(ctx, query, typeFilter)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Ничего не найдено")
		return nil
	}
	for i := range list {
		c := &list[i]
		fmt.Fprintf(Out, "- %s  [%s] %s — %s\n", c.ID, c.Type, c.Title, model.Subtitle(c))
	}
	fmt.Fprintf(Out, "Найдено: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(searchCmd{}) }
