package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCode returns n random characters from A-Z0-9, using crypto/rand
// with rand.Int to avoid modulo bias.
func GenerateCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(codeCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(codeCharset[num.Int64()])
	}
	return sb.String(), nil
}

// GenerateReservationNumber builds a human-readable reservation number like
// "RES-7K2QX9AM". Uniqueness is enforced by the caller against the database.
func GenerateReservationNumber() (string, error) {
	code, err := GenerateCode(8)
	if err != nil {
		return "", err
	}
	return "RES-" + code, nil
}
