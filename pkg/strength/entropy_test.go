// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"strings"
	"testing"
)

func TestEntropy(t *testing.T) {
	cases := []struct {
		password string
		want     int
	}{
		{"", 0},
		{"abcdefgh", 38},
		{"12345678", 27},
		{"ABCDEFGHIJKL", 56},
		{"Aa1!", 26},
		{"pässwörd", 47},
	}

	for _, tc := range cases {
		if got := Entropy(tc.password); got != tc.want {
			t.Errorf("Entropy(%q): %d, want: %d", tc.password, got, tc.want)
		}
	}
}

func TestEntropy_Deterministic(t *testing.T) {
	pwd := strings.Repeat("Ab1!", 100)
	if Entropy(pwd) != Entropy(pwd) {
		t.Errorf("Entropy should be deterministic")
	}
	if Entropy(pwd) <= 0 {
		t.Errorf("Entropy should be positive for a non-empty password")
	}
}

func TestCrackTime(t *testing.T) {
	cases := []struct {
		bits int
		want string
	}{
		{-5, "N/A"},
		{0, "N/A"},
		{1, "less than 1 second"},
		{10, "less than 1 second"},
		{30, "less than 1 second"},
		{31, "1 seconds"},
		{36, "34 seconds"},
		{37, "1 minutes"},
		{40, "9 minutes"},
		{45, "5 hours"},
		{50, "7 days"},
		{60, "18 years"},
		{62, "73 years"},
		{63, "centuries or more"},
		{100, "centuries or more"},
		{1025, "centuries or more"},
		{100000, "centuries or more"},
	}

	for _, tc := range cases {
		if got := CrackTime(tc.bits); got != tc.want {
			t.Errorf("CrackTime(%d): %q, want: %q", tc.bits, got, tc.want)
		}
	}
}

func TestCrackTime_Monotonic(t *testing.T) {
	// Once a password is rated "centuries or more", more bits must never rate it lower.
	seen := false
	for bits := 1; bits <= 2048; bits++ {
		got := CrackTime(bits)
		if seen && got != "centuries or more" {
			t.Fatalf("CrackTime(%d) wrapped to %q", bits, got)
		}
		if got == "centuries or more" {
			seen = true
		}
	}
}
