// Package checks implements the password criteria. Each check inspects an
// Input and reports pass/fail with an optional note for the report.
package checks

import (
	"strings"

	"github.com/dotcommander/passaudit/internal/history"
	"github.com/dotcommander/passaudit/internal/types"
	"github.com/dotcommander/passaudit/internal/wordlist"
)

// Input carries the candidate password and the context a check may need.
type Input struct {
	Password    string
	Username    string
	Email       string
	OldPassword string
	MinLength   int
	Forbidden   []string
	Commons     *wordlist.Set
	Dictionary  *wordlist.Set
	History     *history.History

	lower string
}

// Lower returns the lowercased password, computed once.
func (in *Input) Lower() string {
	if in.lower == "" && in.Password != "" {
		in.lower = strings.ToLower(in.Password)
	}
	return in.lower
}

// Result is the outcome of a single check.
type Result struct {
	Passed bool
	Note   string
}

// pass and fail build Results; fail carries the feedback note.
func pass() Result            { return Result{Passed: true} }
func fail(note string) Result { return Result{Passed: false, Note: note} }

// Check pairs a criterion with its metadata.
type Check struct {
	ID       string
	Name     string
	Severity string
	Source   string
	Run      func(in *Input) Result
}

// Registry returns all checks in evaluation order.
func Registry() []Check {
	return []Check{
		{types.CheckLength, "Minimum length", types.SeverityError, types.SourceNIST, checkLength},
		{types.CheckUppercase, "Uppercase letter", types.SeverityError, types.SourceOWASP, checkUppercase},
		{types.CheckLowercase, "Lowercase letter", types.SeverityError, types.SourceOWASP, checkLowercase},
		{types.CheckDigit, "Digit", types.SeverityError, types.SourceOWASP, checkDigit},
		{types.CheckSpecial, "Special character", types.SeverityError, types.SourceOWASP, checkSpecial},
		{types.CheckCommon, "Not a common password", types.SeverityError, types.SourceNIST, checkCommon},
		{types.CheckSequential, "No sequential characters", types.SeverityWarning, types.SourceObserve, checkSequential},
		{types.CheckRepeat, "No repeated characters", types.SeverityWarning, types.SourceObserve, checkRepeat},
		{types.CheckPersonal, "No personal information", types.SeverityWarning, types.SourceNIST, checkPersonal},
		{types.CheckReuse, "Not a reused password", types.SeverityError, types.SourceNIST, checkReuse},
		{types.CheckDictionary, "No dictionary words", types.SeverityWarning, types.SourceNIST, checkDictionary},
		{types.CheckKeyboard, "No keyboard patterns", types.SeverityWarning, types.SourceObserve, checkKeyboard},
	}
}

// ByID returns the check with the given ID, or false when unknown.
func ByID(id string) (Check, bool) {
	for _, c := range Registry() {
		if c.ID == id {
			return c, true
		}
	}
	return Check{}, false
}
