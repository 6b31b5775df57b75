// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import "unicode/utf8"

// Nominal alphabet sizes for each character class. These are not a measurement of the
// password's actual character set.
const (
	lowerAlphabet  = 26
	upperAlphabet  = 26
	digitAlphabet  = 10
	symbolAlphabet = 33
)

// classes holds the character class predicates of a password. Only ASCII letters and digits
// are recognised, every other rune (whitespace, punctuation, accented letters, emoji) is a
// symbol.
type classes struct {
	lower  bool
	upper  bool
	digit  bool
	symbol bool
	length int
}

func classify(password string) classes {
	c := classes{length: utf8.RuneCountInString(password)}
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.symbol = true
		}
	}

	return c
}

// variety is the number of classes present, in [0,4].
func (c classes) variety() int {
	n := 0
	for _, present := range []bool{c.lower, c.upper, c.digit, c.symbol} {
		if present {
			n++
		}
	}

	return n
}

func (c classes) alphabet() int {
	size := 0
	if c.lower {
		size += lowerAlphabet
	}
	if c.upper {
		size += upperAlphabet
	}
	if c.digit {
		size += digitAlphabet
	}
	if c.symbol {
		size += symbolAlphabet
	}

	return size
}

// hasRun reports whether any rune appears n or more times in a row. Line terminators never
// form a run.
func hasRun(password string, n int) bool {
	var prev rune
	run := 0
	for _, r := range password {
		if isLineTerminator(r) {
			run = 0
			continue
		}
		if run > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}

	return false
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// asciiLower lowercases only A-Z, leaving every other rune untouched.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}

	return string(b)
}
