// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLevelFor_Bands(t *testing.T) {
	cases := []struct {
		from, to int
		want     Level
	}{
		{0, 25, VeryWeak},
		{26, 45, Weak},
		{46, 65, Fair},
		{66, 85, Strong},
		{86, 100, VeryStrong},
	}

	covered := 0
	for _, tc := range cases {
		for s := tc.from; s <= tc.to; s++ {
			if got := LevelFor(s); got != tc.want {
				t.Errorf("LevelFor(%d): %s, want: %s", s, got, tc.want)
			}
			covered++
		}
	}

	if covered != 101 {
		t.Errorf("Bands should cover the 101 scores in [0,100], covered %d", covered)
	}
}

func TestLevelFor_Clamps(t *testing.T) {
	if got := LevelFor(-20); got != VeryWeak {
		t.Errorf("LevelFor(-20): %s, want: %s", got, VeryWeak)
	}
	if got := LevelFor(250); got != VeryStrong {
		t.Errorf("LevelFor(250): %s, want: %s", got, VeryStrong)
	}
}

func TestLevel_Text(t *testing.T) {
	cases := []struct {
		level Level
		label string
		key   string
	}{
		{Waiting, "Waiting for input...", "waiting"},
		{VeryWeak, "Very weak", "very-weak"},
		{Weak, "Weak", "weak"},
		{Fair, "Fair", "fair"},
		{Strong, "Strong", "strong"},
		{VeryStrong, "Very strong", "very-strong"},
	}

	for _, tc := range cases {
		if tc.level.String() != tc.label {
			t.Errorf("String(): %q, want: %q", tc.level.String(), tc.label)
		}

		b, err := json.Marshal(tc.level)
		if err != nil {
			t.Errorf("Marshal should not fail: %s", err)
		}
		if string(b) != `"`+tc.key+`"` {
			t.Errorf("Marshal: %s, want: %q", b, tc.key)
		}

		var back Level
		if err = json.Unmarshal(b, &back); err != nil {
			t.Errorf("Unmarshal should not fail: %s", err)
		}
		if back != tc.level {
			t.Errorf("Unmarshal: %s, want: %s", back, tc.level)
		}
	}
}

func TestLevel_YAML(t *testing.T) {
	for _, level := range Levels {
		b, err := yaml.Marshal(Result{Level: level})
		if err != nil {
			t.Fatalf("Marshal should not fail: %s", err)
		}
		if !strings.Contains(string(b), "level: "+level.Key()) {
			t.Errorf("Marshal should write the key %q:\n%s", level.Key(), b)
		}

		var back Result
		if err = yaml.Unmarshal(b, &back); err != nil {
			t.Fatalf("Unmarshal should not fail: %s", err)
		}
		if back.Level != level {
			t.Errorf("Unmarshal: %s, want: %s", back.Level, level)
		}
	}
}

func TestLevel_Unknown(t *testing.T) {
	var l Level
	if err := l.UnmarshalText([]byte("mediocre")); err == nil {
		t.Errorf("Unmarshal of an unknown level should fail")
	}
	if _, err := Level(42).MarshalText(); err == nil {
		t.Errorf("Marshal of an unknown level should fail")
	}
}
