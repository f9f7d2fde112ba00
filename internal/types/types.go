// Package types provides shared types used across the passaudit codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// Finding represents a failed or noteworthy check against a password.
type Finding struct {
	Check    string
	Message  string
	Severity string // error, warning, suggestion, info
	Source   string // nist-guidance, owasp-guidance, passaudit-observation
}

// Rule source constants.
const (
	SourceNIST    = "nist-guidance"         // NIST SP 800-63B recommendations
	SourceOWASP   = "owasp-guidance"        // OWASP authentication cheat sheet
	SourceObserve = "passaudit-observation" // Our best practice observations
)

// Severity level constants.
const (
	SeverityError      = "error"
	SeverityWarning    = "warning"
	SeveritySuggestion = "suggestion"
	SeverityInfo       = "info"
)

// Check ID constants.
const (
	CheckLength     = "length"
	CheckUppercase  = "uppercase"
	CheckLowercase  = "lowercase"
	CheckDigit      = "digit"
	CheckSpecial    = "special"
	CheckCommon     = "common"
	CheckSequential = "sequential"
	CheckRepeat     = "repeat"
	CheckPersonal   = "personal"
	CheckReuse      = "reuse"
	CheckDictionary = "dictionary"
	CheckKeyboard   = "keyboard"
)

// Strength label constants, weakest to strongest.
const (
	LabelVeryWeak   = "very-weak"
	LabelWeak       = "weak"
	LabelModerate   = "moderate"
	LabelStrong     = "strong"
	LabelVeryStrong = "very-strong"
	LabelExcellent  = "excellent"
)

// LabelRank returns the ordering of a strength label, 0 for the weakest.
// Unknown labels rank below very-weak.
func LabelRank(label string) int {
	switch label {
	case LabelVeryWeak:
		return 0
	case LabelWeak:
		return 1
	case LabelModerate:
		return 2
	case LabelStrong:
		return 3
	case LabelVeryStrong:
		return 4
	case LabelExcellent:
		return 5
	default:
		return -1
	}
}
