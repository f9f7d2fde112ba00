package checks

import (
	"testing"

	"github.com/dotcommander/passaudit/internal/types"
)

func TestRegistry(t *testing.T) {
	reg := Registry()
	if len(reg) != 12 {
		t.Fatalf("Registry() returned %d checks, want 12", len(reg))
	}

	seen := make(map[string]bool)
	for _, c := range reg {
		if c.ID == "" || c.Name == "" || c.Run == nil {
			t.Errorf("check %+v is incomplete", c)
		}
		if seen[c.ID] {
			t.Errorf("duplicate check ID %s", c.ID)
		}
		seen[c.ID] = true
		if c.Severity != types.SeverityError && c.Severity != types.SeverityWarning {
			t.Errorf("check %s has unexpected severity %s", c.ID, c.Severity)
		}
	}

	if reg[0].ID != types.CheckLength {
		t.Errorf("first check = %s, want %s", reg[0].ID, types.CheckLength)
	}
}

func TestByID(t *testing.T) {
	c, ok := ByID(types.CheckKeyboard)
	if !ok {
		t.Fatal("ByID(keyboard) not found")
	}
	if c.ID != types.CheckKeyboard {
		t.Errorf("ByID returned %s", c.ID)
	}

	if _, ok := ByID("nonsense"); ok {
		t.Error("ByID(nonsense) should not be found")
	}
}

func TestInputLower(t *testing.T) {
	in := &Input{Password: "AbC"}
	if got := in.Lower(); got != "abc" {
		t.Errorf("Lower() = %q, want \"abc\"", got)
	}
	// Second call uses the cached value
	if got := in.Lower(); got != "abc" {
		t.Errorf("Lower() second call = %q, want \"abc\"", got)
	}
}
