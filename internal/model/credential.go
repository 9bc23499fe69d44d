package model

import (
	"fmt"
	"time"
)

// CredentialType — дискриминатор варианта записи.
type CredentialType string

const (
	TypePassword   CredentialType = "password"
	TypeCreditCard CredentialType = "creditCard"
	TypeNote       CredentialType = "note"
	TypeWiFi       CredentialType = "wifi"
	TypeLink       CredentialType = "link"
	TypeImage      CredentialType = "image"
)

// Category — категория записи для группировки в списках.
type Category string

const (
	CategorySocial    Category = "social"
	CategoryWork      Category = "work"
	CategoryPersonal  Category = "personal"
	CategoryFinancial Category = "financial"
	CategoryOther     Category = "other"
)

// Types перечисляет все поддерживаемые типы записей.
func Types() []CredentialType {
	return []CredentialType{TypePassword, TypeCreditCard, TypeNote, TypeWiFi, TypeLink, TypeImage}
}

// Categories перечисляет все категории.
func Categories() []Category {
	return []Category{CategorySocial, CategoryWork, CategoryPersonal, CategoryFinancial, CategoryOther}
}

// PasswordData — полезная нагрузка варианта password.
type PasswordData struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	// Password обязателен по построению варианта, но может быть пустой строкой.
	Password string `json:"password"`
	Website  string `json:"website,omitempty"`
}

// CreditCardData — полезная нагрузка варианта creditCard.
type CreditCardData struct {
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
	ExpiryDate     string `json:"expiryDate"` // формат "MM/YY"
	CVV            string `json:"cvv"`
	CardType       string `json:"cardType,omitempty"` // например "visa"
}

// NoteData — полезная нагрузка варианта note.
type NoteData struct {
	Content string `json:"content"`
}

// WiFiData — полезная нагрузка варианта wifi.
type WiFiData struct {
	NetworkName  string `json:"networkName"`
	Password     string `json:"password"`
	SecurityType string `json:"securityType,omitempty"` // например "WPA2"
}

// LinkEntry — одна именованная ссылка.
type LinkEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LinkData — полезная нагрузка варианта link: упорядоченный список ссылок.
type LinkData struct {
	Links []LinkEntry `json:"links"`
}

// ImageData — полезная нагрузка варианта image. ImageURL хранит путь к объекту
// во внешнем blob-хранилище; подписанный URL подставляется при чтении.
type ImageData struct {
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description,omitempty"`
}

// Credential — запись хранилища. Закрытый sum-тип: дискриминатор Type плюс
// ровно один ненулевой указатель на полезную нагрузку соответствующего варианта.
type Credential struct {
	ID        string         `json:"id"`
	Type      CredentialType `json:"type"`
	Title     string         `json:"title"`
	Category  Category       `json:"category"`
	Favorite  bool           `json:"favorite"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`

	Password   *PasswordData   `json:"password,omitempty"`
	CreditCard *CreditCardData `json:"creditCard,omitempty"`
	Note       *NoteData       `json:"note,omitempty"`
	WiFi       *WiFiData       `json:"wifi,omitempty"`
	Link       *LinkData       `json:"link,omitempty"`
	Image      *ImageData      `json:"image,omitempty"`
}

// MissingFieldError возвращается валидацией, когда обязательное поле не заполнено.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// PayloadMismatchError возвращается, когда заполнено не ровно одно тело варианта
// или тело не соответствует Type.
type PayloadMismatchError struct {
	Type CredentialType
}

func (e *PayloadMismatchError) Error() string {
	return fmt.Sprintf("credential payload does not match type %q", e.Type)
}

// payload возвращает ненулевое тело варианта и его тип.
// Второе тело (если оно есть) считается нарушением инварианта.
func (c *Credential) payload() (any, CredentialType, error) {
	var (
		body any
		typ  CredentialType
		n    int
	)
	if c.Password != nil {
		body, typ = c.Password, TypePassword
		n++
	}
	if c.CreditCard != nil {
		body, typ = c.CreditCard, TypeCreditCard
		n++
	}
	if c.Note != nil {
		body, typ = c.Note, TypeNote
		n++
	}
	if c.WiFi != nil {
		body, typ = c.WiFi, TypeWiFi
		n++
	}
	if c.Link != nil {
		body, typ = c.Link, TypeLink
		n++
	}
	if c.Image != nil {
		body, typ = c.Image, TypeImage
		n++
	}
	if n != 1 || typ != c.Type {
		return nil, "", &PayloadMismatchError{Type: c.Type}
	}
	return body, typ, nil
}

// Validate проверяет заголовок и обязательные поля активного варианта.
// Категория по умолчанию — other.
func (c *Credential) Validate() error {
	if c.Title == "" {
		return &MissingFieldError{Field: "title"}
	}
	if c.Category == "" {
		c.Category = CategoryOther
	}
	body, _, err := c.payload()
	if err != nil {
		return err
	}
	switch p := body.(type) {
	case *PasswordData:
		// Пароль обязателен по построению; пустая строка допустима.
		_ = p
	case *CreditCardData:
		switch {
		case p.CardNumber == "":
			return &MissingFieldError{Field: "cardNumber"}
		case p.CardholderName == "":
			return &MissingFieldError{Field: "cardholderName"}
		case p.ExpiryDate == "":
			return &MissingFieldError{Field: "expiryDate"}
		case p.CVV == "":
			return &MissingFieldError{Field: "cvv"}
		}
	case *NoteData:
		if p.Content == "" {
			return &MissingFieldError{Field: "content"}
		}
	case *WiFiData:
		if p.NetworkName == "" {
			return &MissingFieldError{Field: "networkName"}
		}
	case *LinkData:
		if len(p.Links) == 0 {
			return &MissingFieldError{Field: "links"}
		}
		for _, l := range p.Links {
			if l.URL == "" {
				return &MissingFieldError{Field: "links.url"}
			}
		}
	case *ImageData:
		if p.ImageURL == "" {
			return &MissingFieldError{Field: "imageUrl"}
		}
	}
	return nil
}
