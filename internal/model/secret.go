package model

import (
	"crypto/rand"
	"math/big"
)

// secretCharset — алфавит генератора: строчные, прописные, цифры и символы.
const secretCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_+"

// DefaultSecretLength — длина пароля по умолчанию.
const DefaultSecretLength = 12

// GenerateSecret генерирует случайный пароль. Каждая позиция выбирается
// независимо и равномерно из secretCharset через crypto/rand.
func GenerateSecret(length int) (string, error) {
	if length <= 0 {
		length = DefaultSecretLength
	}
	max := big.NewInt(int64(len(secretCharset)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = secretCharset[n.Int64()]
	}
	return string(out), nil
}
