package commands

import (
	"context"
	"fmt"

	"PassVault/internal/cli/keystore"
	"PassVault/internal/config"
)

type onboardingCmd struct{}

func (onboardingCmd) Name() string { return "onboarding" }
func (onboardingCmd) Description() string {
	return "Состояние онбординга; done помечает его пройденным"
}
func (onboardingCmd) Usage() string { return "onboarding [done]" }

func (onboardingCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	ks, done, err := openKeystore()
	if err != nil {
		return err
	}
	defer done()
	if len(args) == 1 {
		if args[0] != "done" {
			return ErrUsage
		}
		if err := ks.Set(keystore.KeyOnboardingComplete, "true"); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Onboarding complete")
		return nil
	}
	v, ok, err := ks.Get(keystore.KeyOnboardingComplete)
	if err != nil {
		return err
	}
	if ok && v == "true" {
		fmt.Fprintln(Out, "Onboarding: complete")
	} else {
		fmt.Fprintln(Out, "Onboarding: pending")
	}
	return nil
}

func init() { RegisterCmd(onboardingCmd{}) }
