// Package policy loads and validates password policy files.
package policy

import (
	"fmt"
	"os"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/dotcommander/passaudit/internal/types"
)

// Policy holds the tunable thresholds and toggles for an audit run.
type Policy struct {
	MinLength      int      `yaml:"min_length"`
	DisabledChecks []string `yaml:"disabled_checks"`
	ForbiddenWords []string `yaml:"forbidden_words"`
	Suggest        bool     `yaml:"suggest"`
}

// Default returns the built-in policy used when no policy file is given.
func Default() *Policy {
	return &Policy{
		MinLength: 12,
		Suggest:   true,
	}
}

// Load reads a YAML policy file, validates it against the embedded schema,
// and merges it over the defaults.
func Load(path string) (*Policy, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading policy file: %w", err)
	}

	// Decode to a generic map first so the schema sees exactly what was written
	var raw map[string]any
	if err := yamlv3.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("error parsing policy file %s: %w", path, err)
	}

	validator := NewValidator()
	if err := validator.LoadSchema(); err == nil && raw != nil {
		if issues := validator.ValidatePolicy(raw); len(issues) > 0 {
			return nil, fmt.Errorf("policy file %s: %s", path, issues[0].Message)
		}
	}

	p := Default()
	if err := yamlv3.Unmarshal(content, p); err != nil {
		return nil, fmt.Errorf("error parsing policy file %s: %w", path, err)
	}

	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid policy in %s: %w", path, err)
	}

	return p, nil
}

// validate applies the constraints the schema cannot express alone.
func (p *Policy) validate() error {
	if p.MinLength < 1 {
		return fmt.Errorf("min_length must be at least 1")
	}
	known := map[string]bool{
		types.CheckLength:     true,
		types.CheckUppercase:  true,
		types.CheckLowercase:  true,
		types.CheckDigit:      true,
		types.CheckSpecial:    true,
		types.CheckCommon:     true,
		types.CheckSequential: true,
		types.CheckRepeat:     true,
		types.CheckPersonal:   true,
		types.CheckReuse:      true,
		types.CheckDictionary: true,
		types.CheckKeyboard:   true,
	}
	for _, id := range p.DisabledChecks {
		if !known[id] {
			return fmt.Errorf("unknown check in disabled_checks: %s", id)
		}
	}
	return nil
}

// Enabled reports whether the check with the given ID should run.
func (p *Policy) Enabled(checkID string) bool {
	for _, id := range p.DisabledChecks {
		if id == checkID {
			return false
		}
	}
	return true
}
