package commands

import (
	"context"
	"fmt"

	"PassVault/internal/config"
	"PassVault/internal/model"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Показать все записи (опционально по типу)" }
func (listCmd) Usage() string       { return "list [<type>]" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	var typeFilter model.CredentialType
	if len(args) == 1 {
		t, err := parseType(args[0])
		if err != nil {
			return err
		}
		typeFilter = t
	}
	if err := ensureUnlocked(ctx); err != nil {
		return err
	}
	svc, _ := newCredentialService(cfg)
	list, err := svc.Search(ctx, "", typeFilter)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for i := range list {
		c := &list[i]
		fav := ""
		if c.Favorite {
			fav = " ★"
		}
		fmt.Fprintf(Out, "- %s  [%s] %s — %s%s\n", c.ID, c.Type, c.Title, model.Subtitle(c), fav)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

// parseType проверяет, что строка — один из поддерживаемых типов записи.
func parseType(s string) (model.CredentialType, error) {
	for _, t := range model.Types() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown credential type %q (expected one of %v)", s, model.Types())
}

func init() { RegisterCmd(listCmd{}) }
