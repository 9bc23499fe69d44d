package model

import "time"

// maskedSecret — фиксированная строка-заглушка для скрытых секретов.
// Длина не зависит от длины исходного значения.
const maskedSecret = "••••••••"

// Subtitle возвращает подзаголовок записи для списков. Чистая функция.
func Subtitle(c *Credential) string {
	switch c.Type {
	case TypePassword:
		if c.Password != nil {
			if c.Password.Username != "" {
				return c.Password.Username
			}
			if c.Password.Email != "" {
				return c.Password.Email
			}
		}
		return "Password"
	case TypeCreditCard:
		if c.CreditCard != nil && c.CreditCard.CardholderName != "" {
			return c.CreditCard.CardholderName
		}
		return "Credit Card"
	case TypeNote:
		if c.Note != nil && c.Note.Content != "" {
			content := []rune(c.Note.Content)
			if len(content) > 50 {
				return string(content[:50]) + "..."
			}
			return string(content)
		}
		return "Note"
	case TypeWiFi:
		if c.WiFi != nil && c.WiFi.NetworkName != "" {
			return c.WiFi.NetworkName
		}
		return "WiFi Network"
	case TypeLink:
		return "Links"
	case TypeImage:
		return "Image"
	}
	return ""
}

// MaskSecret скрывает секрет, пока вызывающая сторона не подняла флаг reveal.
func MaskSecret(secret string, reveal bool) string {
	if reveal {
		return secret
	}
	return maskedSecret
}

// MaskCardNumber оставляет последние четыре цифры номера карты открытыми.
func MaskCardNumber(cardNumber string) string {
	r := []rune(cardNumber)
	if len(r) > 4 {
		r = r[len(r)-4:]
	}
	return "•••• •••• •••• " + string(r)
}

// FormatDate форматирует метку времени для отображения.
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}
