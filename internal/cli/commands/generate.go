package commands

import (
	"context"
	"fmt"
	"strconv"

	"PassVault/internal/config"
	"PassVault/internal/model"
)

type generateCmd struct{}

func (generateCmd) Name() string { return "generate" }
func (generateCmd) Description() string {
	return "Сгенерировать случайный пароль (по умолчанию 12 символов)"
}
func (generateCmd) Usage() string { return "generate [<length>]" }

func (generateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	length := model.DefaultSecretLength
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return ErrUsage
		}
		length = n
	}
	secret, err := model.GenerateSecret(length)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, secret)
	return nil
}

func init() { RegisterCmd(generateCmd{}) }
