package utils

import (
	"crypto/rand"
	"errors"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
    lowercaseChars   = "abcdefghijklmnopqrstuvwxyz"
    uppercaseChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
    digitChars       = "0123456789"
    passwordAlphabet = lowercaseChars + uppercaseChars + digitChars

    // GeneratedPasswordLength is the length of machine-generated operator passwords
    GeneratedPasswordLength = 12
)

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
    if password == "" {
        return "", errors.New("password is empty")
    }
    hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        return "", err
    }
    return string(hash), nil
}

// CheckPassword compares a plaintext password with its stored bcrypt hash
func CheckPassword(password, hash string) bool {
    return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GeneratePassword produces a random password of the given length containing at least
// one lowercase letter, one uppercase letter and one digit. The guaranteed characters
// are shuffled into random positions so they are not predictable.
func GeneratePassword(length int) (string, error) {
    if length < 3 {
        return "", errors.New("password length must be at least 3")
    }

    chars := make([]byte, 0, length)

    first, err := randomChar(lowercaseChars)
    if err != nil {
        return "", err
    }
    second, err := randomChar(uppercaseChars)
    if err != nil {
        return "", err
    }
    third, err := randomChar(digitChars)
    if err != nil {
        return "", err
    }
    chars = append(chars, first, second, third)

    for i := 3; i < length; i++ {
        c, err := randomChar(passwordAlphabet)
        if err != nil {
            return "", err
        }
        chars = append(chars, c)
    }

    // Fisher-Yates shuffle with crypto/rand indices
    for i := len(chars) - 1; i > 0; i-- {
        n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
        if err != nil {
            return "", err
        }
        j := int(n.Int64())
        chars[i], chars[j] = chars[j], chars[i]
    }

    return string(chars), nil
}

func randomChar(alphabet string) (byte, error) {
    n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
    if err != nil {
        return 0, err
    }
    return alphabet[n.Int64()], nil
}
