// Package wordlist loads the common-password and dictionary word sets.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

//go:embed common_passwords.txt
var defaultCommon string

// Set is a lowercased word set.
type Set struct {
	words map[string]struct{}
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{words: make(map[string]struct{})}
}

// Add inserts a word, lowercased. Blank entries are ignored.
func (s *Set) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	s.words[word] = struct{}{}
}

// Contains reports whether the lowercased word is in the set.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	return len(s.words)
}

// LoadCommon returns the common-passwords set: the embedded defaults plus
// any entries from files matched by the given doublestar glob patterns.
// Lines starting with '#' are treated as comments.
func LoadCommon(patterns []string) (*Set, error) {
	set := NewSet()
	for _, line := range strings.Split(defaultCommon, "\n") {
		set.Add(line)
	}

	for _, pattern := range patterns {
		base, pat := doublestar.SplitPattern(pattern)
		matches, err := doublestar.Glob(os.DirFS(base), pat)
		if err != nil {
			return nil, fmt.Errorf("invalid wordlist pattern %s: %w", pattern, err)
		}
		for _, match := range matches {
			if err := addFromFile(set, filepath.Join(base, match), 0); err != nil {
				return nil, err
			}
		}
	}

	return set, nil
}

// LoadDictionary loads a system word file into a set, keeping only words
// longer than minLen runes. A missing file yields an empty set.
func LoadDictionary(path string, minLen int) (*Set, error) {
	set := NewSet()
	if path == "" {
		return set, nil
	}
	if _, err := os.Stat(path); err != nil {
		return set, nil // no dictionary available, not an error
	}
	if err := addFromFile(set, path, minLen); err != nil {
		return nil, err
	}
	return set, nil
}

// addFromFile appends entries from a newline-delimited file, skipping
// comments and words of minLen runes or fewer.
func addFromFile(set *Set, path string, minLen int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening wordlist %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if len([]rune(line)) <= minLen {
			continue
		}
		set.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading wordlist %s: %w", path, err)
	}
	return nil
}
