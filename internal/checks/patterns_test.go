package checks

import "testing"

func TestCheckSequential(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		wantPassed bool
	}{
		{"full qwerty row", "xqwertyuiopx", false},
		{"full digit run", "01234567890", false},
		{"reversed row", "poiuytrewq", false},
		{"case insensitive", "QWERTYUIOP", false},
		{"partial row passes", "qwer", true},
		{"no sequences", "Xk9#mTz2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Input{Password: tt.password}
			if got := checkSequential(in); got.Passed != tt.wantPassed {
				t.Errorf("checkSequential(%q) passed = %v, want %v", tt.password, got.Passed, tt.wantPassed)
			}
		})
	}
}

func TestCheckRepeat(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		wantPassed bool
	}{
		{"triple letter", "aaab", false},
		{"triple digit", "x111y", false},
		{"double only", "aabb", true},
		{"long run", "zzzzz", false},
		{"no repeats", "abcabc", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Input{Password: tt.password}
			if got := checkRepeat(in); got.Passed != tt.wantPassed {
				t.Errorf("checkRepeat(%q) passed = %v, want %v", tt.password, got.Passed, tt.wantPassed)
			}
		})
	}
}

func TestCheckKeyboard(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		wantPassed bool
	}{
		{"qwerty window", "xqwerx", false},
		{"reversed window", "xrewqx", false},
		{"home row window", "asdfzz", false},
		{"digit row window", "ab1234cd", false},
		{"three chars pass", "qwex", true},
		{"clean", "Xk9#mTz2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Input{Password: tt.password}
			if got := checkKeyboard(in); got.Passed != tt.wantPassed {
				t.Errorf("checkKeyboard(%q) passed = %v, want %v", tt.password, got.Passed, tt.wantPassed)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	if got := reverse("qwer"); got != "rewq" {
		t.Errorf("reverse(\"qwer\") = %q, want \"rewq\"", got)
	}
}
