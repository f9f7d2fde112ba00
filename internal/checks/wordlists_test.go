package checks

import (
	"testing"

	"github.com/dotcommander/passaudit/internal/wordlist"
)

func TestCheckCommon(t *testing.T) {
	commons := wordlist.NewSet()
	commons.Add("password")
	commons.Add("letmein")

	tests := []struct {
		name       string
		password   string
		forbidden  []string
		wantPassed bool
	}{
		{"in list", "password", nil, false},
		{"in list ignoring case", "LetMeIn", nil, false},
		{"not in list", "Xk9#mTz2", nil, true},
		{"superstring of entry passes", "password1", nil, true},
		{"forbidden substring", "acme2026!", []string{"acme"}, false},
		{"forbidden case insensitive", "ACME2026!", []string{"acme"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Input{Password: tt.password, Commons: commons, Forbidden: tt.forbidden}
			if got := checkCommon(in); got.Passed != tt.wantPassed {
				t.Errorf("checkCommon(%q) passed = %v, want %v", tt.password, got.Passed, tt.wantPassed)
			}
		})
	}
}

func TestCheckDictionary(t *testing.T) {
	dict := wordlist.NewSet()
	dict.Add("mountain")
	dict.Add("coffee")

	tests := []struct {
		name       string
		password   string
		wantPassed bool
	}{
		{"word embedded", "mymountain99", false},
		{"word embedded ignoring case", "MyCoffee99", false},
		{"no dictionary words", "Xk9#mTz2", true},
		{"short fragments pass", "мount", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Input{Password: tt.password, Dictionary: dict}
			if got := checkDictionary(in); got.Passed != tt.wantPassed {
				t.Errorf("checkDictionary(%q) passed = %v, want %v", tt.password, got.Passed, tt.wantPassed)
			}
		})
	}
}

func TestCheckDictionaryWithoutDictionary(t *testing.T) {
	in := &Input{Password: "mountain"}
	if got := checkDictionary(in); !got.Passed {
		t.Error("dictionary check should pass when no dictionary is loaded")
	}
}
