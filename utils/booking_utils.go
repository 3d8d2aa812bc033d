package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"regexp"
	"strings"
)

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// GenerateReferenceCode builds a booking reference like "BK-7F3K9Q2D".
// Uses crypto/rand + rand.Int (math/big) to avoid modulo bias.
func GenerateReferenceCode() (string, error) {
	code, err := randomCode(8)
	if err != nil {
		return "", err
	}
	return "BK-" + code, nil
}

func randomCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(referenceCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(referenceCharset[num.Int64()])
	}
	return sb.String(), nil
}

var phoneStripRe = regexp.MustCompile(`[^0-9]`)

// NormalizePhone strips everything but digits and a leading "+".
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	plus := strings.HasPrefix(phone, "+")
	digits := phoneStripRe.ReplaceAllString(phone, "")
	if plus {
		return "+" + digits
	}
	return digits
}

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// IsValidEmail checks the address against a standard email grammar.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}
