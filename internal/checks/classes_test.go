package checks

import "testing"

func TestCheckLength(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		minLength  int
		wantPassed bool
	}{
		{"meets default minimum", "abcdefghijkl", 0, true},
		{"below default minimum", "abcdefghijk", 0, false},
		{"meets custom minimum", "abcdefgh", 8, true},
		{"below custom minimum", "abcdefg", 8, false},
		{"empty", "", 0, false},
		{"multibyte runes counted once", "äöüäöüäöüäöü", 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Input{Password: tt.password, MinLength: tt.minLength}
			if got := checkLength(in); got.Passed != tt.wantPassed {
				t.Errorf("checkLength(%q) passed = %v, want %v", tt.password, got.Passed, tt.wantPassed)
			}
		})
	}
}

func TestCharacterClassChecks(t *testing.T) {
	tests := []struct {
		name       string
		check      func(*Input) Result
		password   string
		wantPassed bool
	}{
		{"uppercase present", checkUppercase, "aBc", true},
		{"uppercase missing", checkUppercase, "abc1!", false},
		{"lowercase present", checkLowercase, "ABc", true},
		{"lowercase missing", checkLowercase, "ABC1!", false},
		{"digit present", checkDigit, "abc1", true},
		{"digit missing", checkDigit, "abc!", false},
		{"special present", checkSpecial, "abc!", true},
		{"special missing", checkSpecial, "abc1", false},
		{"special outside accepted set", checkSpecial, "abc~", false},
		{"accented uppercase does not count", checkUppercase, "émotdepasse9!É", false},
		{"accented lowercase does not count", checkLowercase, "ÉMOTDEPASSE9!é", false},
		{"ascii uppercase among accents", checkUppercase, "éA", true},
		{"ascii lowercase among accents", checkLowercase, "Éa", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Input{Password: tt.password}
			if got := tt.check(in); got.Passed != tt.wantPassed {
				t.Errorf("%s: passed = %v, want %v", tt.name, got.Passed, tt.wantPassed)
			}
		})
	}
}

func TestFailedChecksCarryNotes(t *testing.T) {
	in := &Input{Password: "abc"}
	res := checkUppercase(in)
	if res.Passed {
		t.Fatal("expected failure")
	}
	if res.Note == "" {
		t.Error("failed check should carry a note")
	}
}
