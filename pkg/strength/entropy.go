// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"fmt"
	"math"
)

// GuessesPerSecond is the assumed attacker speed used by CrackTime.
const GuessesPerSecond = 1e9

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerYear   = 31557600 // Julian year
	yearsPerCentury  = 100
)

// Entropy estimates the bits of entropy of a password as length * log2(alphabet), where the
// alphabet is the sum of the nominal sizes of the classes present. The result is rounded half
// away from zero.
func Entropy(password string) int {
	if password == "" {
		return 0
	}

	c := classify(password)
	alphabet := c.alphabet()
	if alphabet <= 1 {
		return 0
	}

	return int(math.Round(float64(c.length) * math.Log2(float64(alphabet))))
}

// CrackTime describes how long an average brute-force search of a keyspace of the given bits
// would take at GuessesPerSecond.
func CrackTime(bits int) string {
	if bits <= 0 {
		return "N/A"
	}

	// Half the keyspace on average. Ldexp overflows to +Inf past float64 range, which falls
	// through to the last bucket.
	seconds := math.Ldexp(1, bits-1) / GuessesPerSecond

	switch {
	case seconds < 1:
		return "less than 1 second"
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%.0f seconds", math.Round(seconds))
	case seconds < secondsPerHour:
		return fmt.Sprintf("%.0f minutes", math.Round(seconds/secondsPerMinute))
	case seconds < secondsPerDay:
		return fmt.Sprintf("%.0f hours", math.Round(seconds/secondsPerHour))
	case seconds < secondsPerYear:
		return fmt.Sprintf("%.0f days", math.Round(seconds/secondsPerDay))
	case seconds < secondsPerYear*yearsPerCentury:
		return fmt.Sprintf("%.0f years", math.Round(seconds/secondsPerYear))
	default:
		return "centuries or more"
	}
}
