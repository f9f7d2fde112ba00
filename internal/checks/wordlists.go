package checks

import (
	"fmt"
	"strings"
)

// minDictionaryWord is the shortest dictionary word worth flagging.
const minDictionaryWord = 4

func checkCommon(in *Input) Result {
	if in.Commons != nil && in.Commons.Contains(in.Lower()) {
		return fail("appears in a common-passwords list")
	}
	for _, word := range in.Forbidden {
		if word != "" && strings.Contains(in.Lower(), strings.ToLower(word)) {
			return fail(fmt.Sprintf("contains forbidden word %q", word))
		}
	}
	return pass()
}

// checkDictionary scans every substring of length >= minDictionaryWord
// against the dictionary set. Passes when no dictionary is loaded.
func checkDictionary(in *Input) Result {
	if in.Dictionary == nil || in.Dictionary.Len() == 0 {
		return pass()
	}

	lower := []rune(in.Lower())
	for i := 0; i < len(lower); i++ {
		for j := i + minDictionaryWord; j <= len(lower); j++ {
			if in.Dictionary.Contains(string(lower[i:j])) {
				return fail(fmt.Sprintf("contains dictionary word %q", string(lower[i:j])))
			}
		}
	}
	return pass()
}
