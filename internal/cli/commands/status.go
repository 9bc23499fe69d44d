package commands

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"PassVault/internal/cli/api"
	fsrepo "PassVault/internal/cli/repo/fs"
	"PassVault/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Проверить состояние сессии на сервере" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	store := fsrepo.AuthFSStore{}
	token, err := store.Load()
	if err != nil {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/user/test"
	resp, _, err := api.PostJSON(ctx, endpoint, struct{}{}, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintln(Out, "Session expired, please login again")
		return nil
	}
	login, _ := store.LoadLogin()
	if login != "" {
		fmt.Fprintf(Out, "Logged in as %s\n", login)
	} else {
		fmt.Fprintln(Out, "Logged in")
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
