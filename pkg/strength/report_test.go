// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import "testing"

func TestCheck(t *testing.T) {
	cases := []struct {
		password string
		want     Requirements
	}{
		{"", Requirements{}},
		{"abc", Requirements{Lower: true}},
		{"ABCdef123!@#", Requirements{Length: true, Lower: true, Upper: true, Digit: true, Symbol: true}},
		{"hello world", Requirements{Lower: true, Symbol: true}},
		{"ÉCOLE", Requirements{Upper: true, Symbol: true}},
	}

	for _, tc := range cases {
		if got := Check(tc.password); got != tc.want {
			t.Errorf("Check(%q): %+v, want: %+v", tc.password, got, tc.want)
		}
	}
}

func TestRequirements_Met(t *testing.T) {
	r := Requirements{Length: true, Digit: true}
	for _, req := range RequirementOrder {
		want := req == ReqLength || req == ReqDigit
		if r.Met(req) != want {
			t.Errorf("Met(%s): %v, want: %v", req, r.Met(req), want)
		}
		if req.String() == "" {
			t.Errorf("Requirement %d should have a label", req)
		}
	}
}

func TestAnalyze(t *testing.T) {
	r := Analyze("abcdefgh")
	if r.Entropy != 38 {
		t.Errorf("Entropy should be 38, have %d", r.Entropy)
	}
	if r.CrackTime != CrackTime(38) {
		t.Errorf("CrackTime should follow entropy, have %q", r.CrackTime)
	}
	if r.Label != r.Level.String() {
		t.Errorf("Label should be the level text, have %q", r.Label)
	}

	empty := Analyze("")
	if empty.Level != Waiting || empty.CrackTime != "N/A" || empty.Entropy != 0 {
		t.Errorf("Empty report should be waiting with no entropy, have %+v", empty)
	}
}
