package checks

import (
	"fmt"
	"strings"
	"unicode"
)

// specialChars is the accepted special character set.
const specialChars = `!@#$%^&*(),.?":{}|<>`

func checkLength(in *Input) Result {
	min := in.MinLength
	if min <= 0 {
		min = 12
	}
	if len([]rune(in.Password)) < min {
		return fail(fmt.Sprintf("shorter than %d characters", min))
	}
	return pass()
}

// The case checks accept ASCII letters only, matching the 26-letter pools
// the entropy estimate is built on.
func checkUppercase(in *Input) Result {
	for _, r := range in.Password {
		if r >= 'A' && r <= 'Z' {
			return pass()
		}
	}
	return fail("add an uppercase letter")
}

func checkLowercase(in *Input) Result {
	for _, r := range in.Password {
		if r >= 'a' && r <= 'z' {
			return pass()
		}
	}
	return fail("add a lowercase letter")
}

func checkDigit(in *Input) Result {
	for _, r := range in.Password {
		if unicode.IsDigit(r) {
			return pass()
		}
	}
	return fail("add a digit")
}

func checkSpecial(in *Input) Result {
	if strings.ContainsAny(in.Password, specialChars) {
		return pass()
	}
	return fail("add a special character")
}
