package checks

import (
	"fmt"
	"strings"
)

// sequences are the ordered runs the sequential check scans for.
var sequences = []string{
	"abcdefghijklmnopqrstuvwxyz",
	"zyxwvutsrqponmlkjihgfedcba",
	"01234567890",
	"9876543210",
	"qwertyuiop",
	"poiuytrewq",
	"asdfghjkl",
	"lkjhgfdsa",
	"zxcvbnm",
	"mnbvcxz",
}

// keyboardRows are scanned in 4-character windows, both directions.
var keyboardRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"1234567890",
}

func checkSequential(in *Input) Result {
	lower := in.Lower()
	for _, seq := range sequences {
		if strings.Contains(lower, seq) {
			return fail(fmt.Sprintf("contains sequential run %q", seq))
		}
	}
	return pass()
}

// checkRepeat fails on any run of three or more identical characters.
func checkRepeat(in *Input) Result {
	runes := []rune(in.Password)
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= 3 {
				return fail(fmt.Sprintf("repeats %q three or more times", string(runes[i])))
			}
		} else {
			run = 1
		}
	}
	return pass()
}

func checkKeyboard(in *Input) Result {
	lower := in.Lower()
	for _, row := range keyboardRows {
		for i := 0; i+4 <= len(row); i++ {
			window := row[i : i+4]
			if strings.Contains(lower, window) || strings.Contains(lower, reverse(window)) {
				return fail(fmt.Sprintf("contains keyboard pattern %q", window))
			}
		}
	}
	return pass()
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
