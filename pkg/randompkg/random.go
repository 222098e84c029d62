// Package randompkg provides functionality for generating random application items.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	digits   = "0123456789"
)

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// IntBetween generates a random integer between min and max inclusive.
func IntBetween(min, max int) int {
	return min + int(Intn(max-min+1))
}

func fromSet(set string, n int) string {
	var sb strings.Builder

	k := len(set)

	for i := 0; i < n; i++ {
		_ = sb.WriteByte(set[Intn(k)]) // The returned err is always nil.
	}

	return sb.String()
}

// String generates a random string of length n.
func String(n int) string {
	return fromSet(alphabet, n)
}

// Digits generates a random string of n digits.
func Digits(n int) string {
	return fromSet(digits, n)
}

// Name generates a random capitalized name.
func Name() string {
	s := String(7)
	return strings.ToUpper(s[:1]) + s[1:]
}

// IdentityNumber generates a random identity number in DDD-DD-DDDD format.
func IdentityNumber() string {
	return fmt.Sprintf("%s-%s-%s", Digits(3), Digits(2), Digits(4))
}

// ISBN generates a random 10 character catalog code.
func ISBN() string {
	return Digits(10)
}

// Email generates a random email.
func Email() string {
	return fmt.Sprintf("%s@email.com", String(10))
}

// Phone generates a random phone number.
func Phone() string {
	return fmt.Sprintf("(%s) %s-%s", Digits(3), Digits(3), Digits(4))
}

// Address generates a random street address.
func Address() string {
	return fmt.Sprintf("%d %s St, Dallas, TX", IntBetween(1, 9999), Name())
}
