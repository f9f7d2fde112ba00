// Package entropy estimates password entropy from character-pool size.
package entropy

import (
	"math"
	"unicode"
)

// Pool sizes per character class.
const (
	poolLowercase = 26
	poolUppercase = 26
	poolDigits    = 10
	poolSymbols   = 32
)

// Bits returns the estimated entropy of the password in bits, computed as
// rune count times log2 of the character pool size. An empty pool yields 0.
func Bits(password string) float64 {
	pool := PoolSize(password)
	if pool == 0 {
		return 0
	}
	length := len([]rune(password))
	return float64(length) * math.Log2(float64(pool))
}

// PoolSize returns the combined size of the character classes present.
func PoolSize(password string) int {
	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasOther = true
		}
	}

	pool := 0
	if hasLower {
		pool += poolLowercase
	}
	if hasUpper {
		pool += poolUppercase
	}
	if hasDigit {
		pool += poolDigits
	}
	if hasOther {
		pool += poolSymbols
	}
	return pool
}
