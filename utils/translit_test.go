package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransliterateLogin(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"cyrillic with digits", "ГБПОУ Колледж №1", "gbpou_kolledzh_1"},
		{"hyphen becomes underscore", "Школа-интернат", "shkola_internat"},
		{"multi letter mappings", "Щит и Меч", "schit_i_mech"},
		{"latin passes through", "Tech College 42", "tech_college_42"},
		{"punctuation dropped", "«Лицей»", "litsey"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TransliterateLogin(tc.input))
		})
	}
}

func TestTransliterateLoginTruncates(t *testing.T) {
	login := TransliterateLogin(strings.Repeat("а", 30))
	assert.Equal(t, strings.Repeat("a", MaxLoginBaseLength), login)
}

func TestTransliterateLoginStripsSeparators(t *testing.T) {
	assert.Equal(t, "a", TransliterateLogin("  а  "))

	// The 20-char cap can leave a trailing separator that must be trimmed
	login := TransliterateLogin(strings.Repeat("а", 19) + " я")
	assert.Equal(t, strings.Repeat("a", 19), login)
}

func TestTransliterateLoginFallback(t *testing.T) {
	assert.Equal(t, DefaultLoginToken, TransliterateLogin("!!! ---"))
	assert.Equal(t, DefaultLoginToken, TransliterateLogin(""))
}
