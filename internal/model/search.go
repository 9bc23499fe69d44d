package model

import "strings"

// Search фильтрует записи по подстроке без учёта регистра. Совпадение ищется
// в заголовке и в типозависимых полях: username/email/website (password),
// cardholderName (creditCard), content (note), networkName (wifi).
// Пустой запрос возвращает набор, отфильтрованный только по типу.
// Порядок входного списка сохраняется.
func Search(all []Credential, query string, typeFilter CredentialType) []Credential {
	filtered := all

	if typeFilter != "" {
		filtered = make([]Credential, 0, len(all))
		for _, c := range all {
			if c.Type == typeFilter {
				filtered = append(filtered, c)
			}
		}
	}

	if query == "" {
		return filtered
	}

	q := strings.ToLower(query)
	out := make([]Credential, 0, len(filtered))
	for _, c := range filtered {
		if matches(&c, q) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c *Credential, q string) bool {
	if containsFold(c.Title, q) {
		return true
	}
	switch c.Type {
	case TypePassword:
		if c.Password != nil {
			return containsFold(c.Password.Username, q) ||
				containsFold(c.Password.Email, q) ||
				containsFold(c.Password.Website, q)
		}
	case TypeCreditCard:
		if c.CreditCard != nil {
			return containsFold(c.CreditCard.CardholderName, q)
		}
	case TypeNote:
		if c.Note != nil {
			return containsFold(c.Note.Content, q)
		}
	case TypeWiFi:
		if c.WiFi != nil {
			return containsFold(c.WiFi.NetworkName, q)
		}
	}
	return false
}

// containsFold: q уже приведён к нижнему регистру.
func containsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}
