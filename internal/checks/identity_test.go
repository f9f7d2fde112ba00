package checks

import (
	"path/filepath"
	"testing"

	"github.com/dotcommander/passaudit/internal/history"
)

func TestCheckPersonal(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		username   string
		email      string
		wantPassed bool
	}{
		{"no context", "anything", "", "", true},
		{"username embedded", "myjdoe123", "jdoe", "", false},
		{"username case insensitive", "myJDOE123", "jdoe", "", false},
		{"email local part embedded", "xjdoex", "", "jdoe@example.com", false},
		{"email domain ignored", "example", "", "jdoe@example.com", true},
		{"clean password", "Xk9#mTz2", "jdoe", "jdoe@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Input{Password: tt.password, Username: tt.username, Email: tt.email}
			if got := checkPersonal(in); got.Passed != tt.wantPassed {
				t.Errorf("checkPersonal(%q) passed = %v, want %v", tt.password, got.Passed, tt.wantPassed)
			}
		})
	}
}

func TestCheckReuse(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		oldPassword string
		wantPassed  bool
	}{
		{"no context", "anything", "", true},
		{"equal", "Secret123", "Secret123", false},
		{"equal ignoring case", "secret123", "SECRET123", false},
		{"old contained in new", "xSecret123x", "Secret123", false},
		{"different", "Xk9#mTz2", "Secret123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Input{Password: tt.password, OldPassword: tt.oldPassword}
			if got := checkReuse(in); got.Passed != tt.wantPassed {
				t.Errorf("checkReuse(%q) passed = %v, want %v", tt.password, got.Passed, tt.wantPassed)
			}
		})
	}
}

func TestCheckReuseHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	h, err := history.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := h.Add("OldSecret#1"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	in := &Input{Password: "OldSecret#1", History: h}
	if got := checkReuse(in); got.Passed {
		t.Error("expected reuse check to fail for a password in history")
	}

	in = &Input{Password: "Fresh#Secret9", History: h}
	if got := checkReuse(in); !got.Passed {
		t.Errorf("expected reuse check to pass, got note %q", got.Note)
	}
}
