package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"PassVault/internal/cli/service"
	"PassVault/internal/config"
	"PassVault/internal/model"
)

// linkList — повторяемый флаг --link name=url.
type linkList []model.LinkEntry

func (l *linkList) String() string { return fmt.Sprintf("%d links", len(*l)) }

func (l *linkList) Set(v string) error {
	name, url, ok := strings.Cut(v, "=")
	if !ok || name == "" || url == "" {
		return fmt.Errorf("expected name=url, got %q", v)
	}
	*l = append(*l, model.LinkEntry{Name: name, URL: url})
	return nil
}

// credentialFlags — общий набор флагов команд add и edit.
type credentialFlags struct {
	fs *flag.FlagSet

	title    string
	category string
	favorite bool
	notes    string

	username string
	email    string
	password string
	website  string

	number   string
	holder   string
	expiry   string
	cvv      string
	cardType string

	content string

	network  string
	security string

	links linkList

	file  string
	descr string
}

func newCredentialFlags(name string) *credentialFlags {
	f := &credentialFlags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	f.fs.SetOutput(io.Discard)
	f.fs.StringVar(&f.title, "title", "", "record title")
	f.fs.StringVar(&f.category, "category", "", "category: social|work|personal|financial|other")
	f.fs.BoolVar(&f.favorite, "favorite", false, "mark as favorite")
	f.fs.StringVar(&f.notes, "notes", "", "free-form notes")
	f.fs.StringVar(&f.username, "username", "", "username (password)")
	f.fs.StringVar(&f.email, "email", "", "email (password)")
	f.fs.StringVar(&f.password, "password", "", "secret value (password, wifi)")
	f.fs.StringVar(&f.website, "website", "", "website (password)")
	f.fs.StringVar(&f.number, "number", "", "card number (creditCard)")
	f.fs.StringVar(&f.holder, "holder", "", "cardholder name (creditCard)")
	f.fs.StringVar(&f.expiry, "expiry", "", "expiry MM/YY (creditCard)")
	f.fs.StringVar(&f.cvv, "cvv", "", "CVV (creditCard)")
	f.fs.StringVar(&f.cardType, "cardtype", "", "card type, e.g. visa (creditCard)")
	f.fs.StringVar(&f.content, "content", "", "note text (note)")
	f.fs.StringVar(&f.network, "network", "", "network name (wifi)")
	f.fs.StringVar(&f.security, "security", "", "security type, e.g. WPA2 (wifi)")
	f.fs.Var(&f.links, "link", "name=url, repeatable (link)")
	f.fs.StringVar(&f.file, "file", "", "path to image file (image)")
	f.fs.StringVar(&f.descr, "descr", "", "image description (image)")
	return f
}

// set возвращает true, если флаг был явно передан в командной строке.
func (f *credentialFlags) set(name string) bool {
	found := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// buildPayload заполняет тело варианта записи из флагов.
// Для image файл загружается в blob-хранилище через svc.
func (f *credentialFlags) buildPayload(ctx context.Context, c *model.Credential, svc service.CredentialService) error {
	switch c.Type {
	case model.TypePassword:
		c.Password = &model.PasswordData{
			Username: f.username,
			Email:    f.email,
			Password: f.password,
			Website:  f.website,
		}
	case model.TypeCreditCard:
		c.CreditCard = &model.CreditCardData{
			CardNumber:     f.number,
			CardholderName: f.holder,
			ExpiryDate:     f.expiry,
			CVV:            f.cvv,
			CardType:       f.cardType,
		}
	case model.TypeNote:
		c.Note = &model.NoteData{Content: f.content}
	case model.TypeWiFi:
		c.WiFi = &model.WiFiData{
			NetworkName:  f.network,
			Password:     f.password,
			SecurityType: f.security,
		}
	case model.TypeLink:
		c.Link = &model.LinkData{Links: f.links}
	case model.TypeImage:
		if f.file == "" {
			return &model.MissingFieldError{Field: "file"}
		}
		data, err := os.ReadFile(f.file)
		if err != nil {
			return fmt.Errorf("reading image: %w", err)
		}
		name := filepath.Base(f.file)
		contentType := mime.TypeByExtension(filepath.Ext(name))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		path, err := svc.UploadImage(ctx, name, data, contentType)
		if err != nil {
			return fmt.Errorf("uploading image: %w", err)
		}
		c.Image = &model.ImageData{ImageURL: path, Description: f.descr}
	}
	return nil
}

type addCmd struct{}

func (addCmd) Name() string { return "add" }
func (addCmd) Description() string {
	return "Добавить запись указанного типа"
}
func (addCmd) Usage() string { return "add <type> --title <t> [variant flags]" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	typ, err := parseType(args[0])
	if err != nil {
		return err
	}
	f := newCredentialFlags("add")
	if err := f.fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}
	if err := ensureUnlocked(ctx); err != nil {
		return err
	}
	svc, _ := newCredentialService(cfg)

	draft := &model.Credential{
		Type:     typ,
		Title:    f.title,
		Category: model.Category(f.category),
		Favorite: f.favorite,
		Notes:    f.notes,
	}
	if err := f.buildPayload(ctx, draft, svc); err != nil {
		return err
	}
	stored, err := svc.Add(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:    %s\n", stored.ID)
	fmt.Fprintf(Out, "  type:  %s\n", stored.Type)
	fmt.Fprintf(Out, "  title: %s\n", stored.Title)
	return nil
}

func init() { RegisterCmd(addCmd{}) }
