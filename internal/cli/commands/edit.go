package commands

import (
	"context"
	"fmt"

	"PassVault/internal/config"
	"PassVault/internal/model"
)

type editCmd struct{}

func (editCmd) Name() string { return "edit" }
func (editCmd) Description() string {
	return "Изменить запись; указываются только затронутые флаги"
}
func (editCmd) Usage() string { return "edit <id> [flags]" }

func (editCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id := args[0]
	f := newCredentialFlags("edit")
	if err := f.fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}
	if err := ensureUnlocked(ctx); err != nil {
		return err
	}
	svc, _ := newCredentialService(cfg)
	c, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}

	if f.set("title") {
		c.Title = f.title
	}
	if f.set("category") {
		c.Category = model.Category(f.category)
	}
	if f.set("favorite") {
		c.Favorite = f.favorite
	}
	if f.set("notes") {
		c.Notes = f.notes
	}

	switch c.Type {
	case model.TypePassword:
		if f.set("username") {
			c.Password.Username = f.username
		}
		if f.set("email") {
			c.Password.Email = f.email
		}
		if f.set("password") {
			c.Password.Password = f.password
		}
		if f.set("website") {
			c.Password.Website = f.website
		}
	case model.TypeCreditCard:
		if f.set("number") {
			c.CreditCard.CardNumber = f.number
		}
		if f.set("holder") {
			c.CreditCard.CardholderName = f.holder
		}
		if f.set("expiry") {
			c.CreditCard.ExpiryDate = f.expiry
		}
		if f.set("cvv") {
			c.CreditCard.CVV = f.cvv
		}
		if f.set("cardtype") {
			c.CreditCard.CardType = f.cardType
		}
	case model.TypeNote:
		if f.set("content") {
			c.Note.Content = f.content
		}
	case model.TypeWiFi:
		if f.set("network") {
			c.WiFi.NetworkName = f.network
		}
		if f.set("password") {
			c.WiFi.Password = f.password
		}
		if f.set("security") {
			c.WiFi.SecurityType = f.security
		}
	case model.TypeLink:
		if f.set("link") {
			c.Link.Links = f.links
		}
	case model.TypeImage:
		if f.set("descr") {
			c.Image.Description = f.descr
		}
		if f.set("file") {
			// Новый файл загружается в blob-хранилище и заменяет путь объекта.
			prevDescr := c.Image.Description
			if err := f.buildPayload(ctx, c, svc); err != nil {
				return err
			}
			if !f.set("descr") {
				c.Image.Description = prevDescr
			}
		}
	}

	if err := svc.Update(ctx, id, c); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Updated")
	return nil
}

func init() { RegisterCmd(editCmd{}) }
