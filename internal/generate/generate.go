// Package generate produces password suggestions with crypto/rand.
package generate

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

var (
	adjectives = []string{"Red", "Blue", "Happy", "Secure", "Strong"}
	nouns      = []string{"Dragon", "Coffee", "Mountain", "Shield", "Castle"}
	symbols    = "!@#$%^&*"
)

// Charset pools for Random.
const (
	lowerPool  = "abcdefghijklmnopqrstuvwxyz"
	upperPool  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitPool  = "0123456789"
	symbolPool = "!@#$%^&*(),.?\":{}|<>"
)

// Memorable returns an adjective+noun suggestion with two digits and a
// trailing symbol, e.g. "SecureDragon42!".
func Memorable() (string, error) {
	adj, err := choice(adjectives)
	if err != nil {
		return "", err
	}
	noun, err := choice(nouns)
	if err != nil {
		return "", err
	}
	n, err := intn(90)
	if err != nil {
		return "", err
	}
	sym, err := choiceString(symbols)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s%02d%c", adj, noun, n+10, sym), nil
}

// Random returns a random password of the given rune length covering all
// four character classes. Lengths below 4 are rejected.
func Random(length int) (string, error) {
	if length < 4 {
		return "", fmt.Errorf("length must be at least 4, got %d", length)
	}

	full := lowerPool + upperPool + digitPool + symbolPool
	var b strings.Builder

	// One guaranteed character per class, the rest from the full pool
	for _, pool := range []string{lowerPool, upperPool, digitPool, symbolPool} {
		c, err := choiceString(pool)
		if err != nil {
			return "", err
		}
		b.WriteRune(c)
	}
	for i := 4; i < length; i++ {
		c, err := choiceString(full)
		if err != nil {
			return "", err
		}
		b.WriteRune(c)
	}

	return shuffle(b.String())
}

func choice(items []string) (string, error) {
	i, err := intn(len(items))
	if err != nil {
		return "", err
	}
	return items[i], nil
}

func choiceString(pool string) (rune, error) {
	runes := []rune(pool)
	i, err := intn(len(runes))
	if err != nil {
		return 0, err
	}
	return runes[i], nil
}

func intn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("error reading randomness: %w", err)
	}
	return int(v.Int64()), nil
}

// shuffle Fisher-Yates shuffles the string so the guaranteed class
// characters are not always in front.
func shuffle(s string) (string, error) {
	runes := []rune(s)
	for i := len(runes) - 1; i > 0; i-- {
		j, err := intn(i + 1)
		if err != nil {
			return "", err
		}
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes), nil
}
