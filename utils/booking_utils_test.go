package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateReferenceCode(t *testing.T) {
	codeRe := regexp.MustCompile(`^BK-[A-Z0-9]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateReferenceCode()
		require.NoError(t, err)
		require.Regexp(t, codeRe, code)
		seen[code] = true
	}
	require.Len(t, seen, 50)
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+66 81 234 5678":     "+66812345678",
		"081-234-5678":        "0812345678",
		"(081) 234 5678":      "0812345678",
		" +1 (555) 000-1234 ": "+15550001234",
	}
	for in, want := range cases {
		require.Equal(t, want, NormalizePhone(in), "input %q", in)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"alice@example.com", "a.b+tag@sub.example.co", " padded@example.org "}
	invalid := []string{"", "plainstring", "@example.com", "alice@", "alice@localhost", "a b@example.com"}

	for _, e := range valid {
		require.True(t, IsValidEmail(e), "expected valid: %q", e)
	}
	for _, e := range invalid {
		require.False(t, IsValidEmail(e), "expected invalid: %q", e)
	}
}
