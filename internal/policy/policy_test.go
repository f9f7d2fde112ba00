package policy

import (
	"os"
	"path/filepath"
	"testing"
)

func writePolicy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	p := Default()
	if p.MinLength != 12 {
		t.Errorf("MinLength = %d, want 12", p.MinLength)
	}
	if !p.Suggest {
		t.Error("Suggest should default to true")
	}
	if !p.Enabled("length") {
		t.Error("all checks should be enabled by default")
	}
}

func TestLoad(t *testing.T) {
	path := writePolicy(t, `
min_length: 16
disabled_checks:
  - dictionary
  - keyboard
forbidden_words:
  - acme
suggest: false
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if p.MinLength != 16 {
		t.Errorf("MinLength = %d, want 16", p.MinLength)
	}
	if p.Enabled("dictionary") {
		t.Error("dictionary should be disabled")
	}
	if !p.Enabled("length") {
		t.Error("length should remain enabled")
	}
	if len(p.ForbiddenWords) != 1 || p.ForbiddenWords[0] != "acme" {
		t.Errorf("ForbiddenWords = %v", p.ForbiddenWords)
	}
	if p.Suggest {
		t.Error("Suggest should be false")
	}
}

func TestLoadKeepsDefaultsForOmittedFields(t *testing.T) {
	path := writePolicy(t, "forbidden_words: [acme]\n")

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.MinLength != 12 {
		t.Errorf("MinLength = %d, want default 12", p.MinLength)
	}
	if !p.Suggest {
		t.Error("Suggest should keep its default")
	}
}

func TestLoadRejectsUnknownCheck(t *testing.T) {
	path := writePolicy(t, "disabled_checks: [telepathy]\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown check ID")
	}
}

func TestLoadRejectsSchemaViolation(t *testing.T) {
	path := writePolicy(t, "min_length: 0\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for min_length below 1")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing policy file")
	}
}

func TestValidatorUnknownField(t *testing.T) {
	v := NewValidator()
	if err := v.LoadSchema(); err != nil {
		t.Fatalf("LoadSchema() error = %v", err)
	}

	issues := v.ValidatePolicy(map[string]any{"min_lenght": 12})
	if len(issues) == 0 {
		t.Error("expected schema finding for misspelled field")
	}
}

func TestValidatorValidData(t *testing.T) {
	v := NewValidator()
	if err := v.LoadSchema(); err != nil {
		t.Fatalf("LoadSchema() error = %v", err)
	}

	issues := v.ValidatePolicy(map[string]any{"min_length": 16, "suggest": true})
	if len(issues) != 0 {
		t.Errorf("unexpected findings: %v", issues)
	}
}
