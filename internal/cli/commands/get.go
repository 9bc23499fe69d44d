package commands

import (
	"context"
	"fmt"

	"PassVault/internal/config"
	"PassVault/internal/model"
)

type getCmd struct{}

func (getCmd) Name() string { return "get" }
func (getCmd) Description() string {
	return "Показать запись; секреты скрыты, --reveal раскрывает их"
}
func (getCmd) Usage() string { return "get <id> [--reveal]" }

func (getCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	id := args[0]
	reveal := false
	if len(args) == 2 {
		if args[1] != "--reveal" {
			return ErrUsage
		}
		reveal = true
	}
	if err := ensureUnlocked(ctx); err != nil {
		return err
	}
	svc, _ := newCredentialService(cfg)
	c, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}
	printCredential(c, reveal)
	return nil
}

func printCredential(c *model.Credential, reveal bool) {
	fmt.Fprintf(Out, "id:       %s\n", c.ID)
	fmt.Fprintf(Out, "type:     %s\n", c.Type)
	fmt.Fprintf(Out, "title:    %s\n", c.Title)
	fmt.Fprintf(Out, "category: %s\n", c.Category)
	if c.Favorite {
		fmt.Fprintln(Out, "favorite: yes")
	}
	if c.Notes != "" {
		fmt.Fprintf(Out, "notes:    %s\n", c.Notes)
	}
	fmt.Fprintf(Out, "created:  %s\n", model.FormatDate(c.CreatedAt))
	fmt.Fprintf(Out, "updated:  %s\n", model.FormatDate(c.UpdatedAt))

	switch c.Type {
	case model.TypePassword:
		p := c.Password
		if p.Username != "" {
			fmt.Fprintf(Out, "username: %s\n", p.Username)
		}
		if p.Email != "" {
			fmt.Fprintf(Out, "email:    %s\n", p.Email)
		}
		fmt.Fprintf(Out, "password: %s\n", model.MaskSecret(p.Password, reveal))
		if p.Website != "" {
			fmt.Fprintf(Out, "website:  %s\n", p.Website)
		}
	case model.TypeCreditCard:
		cc := c.CreditCard
		number := model.MaskCardNumber(cc.CardNumber)
		if reveal {
			number = cc.CardNumber
		}
		fmt.Fprintf(Out, "number:   %s\n", number)
		fmt.Fprintf(Out, "holder:   %s\n", cc.CardholderName)
		fmt.Fprintf(Out, "expiry:   %s\n", cc.ExpiryDate)
		fmt.Fprintf(Out, "cvv:      %s\n", model.MaskSecret(cc.CVV, reveal))
		if cc.CardType != "" {
			fmt.Fprintf(Out, "cardtype: %s\n", cc.CardType)
		}
	case model.TypeNote:
		fmt.Fprintf(Out, "content:\n%s\n", c.Note.Content)
	case model.TypeWiFi:
		w := c.WiFi
		fmt.Fprintf(Out, "network:  %s\n", w.NetworkName)
		fmt.Fprintf(Out, "password: %s\n", model.MaskSecret(w.Password, reveal))
		if w.SecurityType != "" {
			fmt.Fprintf(Out, "security: %s\n", w.SecurityType)
		}
	case model.TypeLink:
		for _, l := range c.Link.Links {
			fmt.Fprintf(Out, "link:     %s  %s\n", l.Name, l.URL)
		}
	case model.TypeImage:
		fmt.Fprintf(Out, "image:    %s\n", c.Image.ImageURL)
		if c.Image.Description != "" {
			fmt.Fprintf(Out, "descr:    %s\n", c.Image.Description)
		}
	}
}

func init() { RegisterCmd(getCmd{}) }
