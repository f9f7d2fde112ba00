// Package history tracks previously used passwords as bcrypt hashes so
// reuse can be detected without storing cleartext.
package history

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the cost factor for bcrypt (higher = more secure but slower)
const BcryptCost = 12

// History is a loaded set of bcrypt hash lines.
type History struct {
	path   string
	hashes []string
}

// Load reads the history file at path. A missing file yields an empty
// history; the file is only required once something is added.
func Load(path string) (*History, error) {
	h := &History{path: path}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return nil, fmt.Errorf("error opening history file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.hashes = append(h.hashes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading history file %s: %w", path, err)
	}
	return h, nil
}

// Len returns the number of stored hashes.
func (h *History) Len() int {
	return len(h.hashes)
}

// Contains reports whether the password matches any stored hash.
func (h *History) Contains(password string) bool {
	for _, hash := range h.hashes {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil {
			return true
		}
	}
	return false
}

// Add hashes the password and appends it to the history file.
func (h *History) Add(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("error opening history file %s: %w", h.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, string(hash)); err != nil {
		return fmt.Errorf("error writing history file %s: %w", h.path, err)
	}

	h.hashes = append(h.hashes, string(hash))
	return nil
}
