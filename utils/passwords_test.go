package utils

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePasswordLength(t *testing.T) {
	password, err := GeneratePassword(GeneratedPasswordLength)
	require.NoError(t, err)
	assert.Len(t, password, GeneratedPasswordLength)
}

func TestGeneratePasswordCharacterClasses(t *testing.T) {
	// Each generated password must carry all three classes, every time
	for i := 0; i < 50; i++ {
		password, err := GeneratePassword(GeneratedPasswordLength)
		require.NoError(t, err)

		var hasLower, hasUpper, hasDigit bool
		for _, r := range password {
			switch {
			case unicode.IsLower(r):
				hasLower = true
			case unicode.IsUpper(r):
				hasUpper = true
			case unicode.IsDigit(r):
				hasDigit = true
			}
		}
		assert.True(t, hasLower, "password %q lacks a lowercase letter", password)
		assert.True(t, hasUpper, "password %q lacks an uppercase letter", password)
		assert.True(t, hasDigit, "password %q lacks a digit", password)
	}
}

func TestGeneratePasswordTooShort(t *testing.T) {
	_, err := GeneratePassword(2)
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-Passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-Passw0rd", hash)

	assert.True(t, CheckPassword("s3cret-Passw0rd", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
}
