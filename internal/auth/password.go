package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Temporary credential policy for new hires: fixed length, at least one
// character from every class, generated from a cryptographically secure
// source. The caller hashes the result before persistence; the plaintext is
// transmitted to the new hire once and never stored or logged.
const (
	PasswordLength = 16

	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{}<>?"
)

// GeneratePassword produces a random plaintext credential meeting the policy
// above. Each required class contributes at least one character; the
// remainder is drawn from the full alphabet and the result is shuffled so
// class positions are not predictable.
func GeneratePassword() (string, error) {
	classes := []string{upperChars, lowerChars, digitChars, symbolChars}
	alphabet := upperChars + lowerChars + digitChars + symbolChars

	chars := make([]byte, 0, PasswordLength)
	for _, class := range classes {
		c, err := randomChar(class)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for len(chars) < PasswordLength {
		c, err := randomChar(alphabet)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	for i := len(chars) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return "", err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}

	return string(chars), nil
}

func randomChar(alphabet string) (byte, error) {
	idx, err := randomInt(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[idx], nil
}

func randomInt(max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, fmt.Errorf("secure random source failed: %w", err)
	}
	return int(n.Int64()), nil
}
