// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import "fmt"

// Level is the qualitative strength of a password.
type Level int

const (
	// Waiting is returned only for an empty password. It is not a score band.
	Waiting Level = iota
	VeryWeak
	Weak
	Fair
	Strong
	VeryStrong
)

// Levels lists the score bands, weakest first. Waiting is not included.
var Levels = []Level{VeryWeak, Weak, Fair, Strong, VeryStrong}

var levelLabels = map[Level]string{
	Waiting:    "Waiting for input...",
	VeryWeak:   "Very weak",
	Weak:       "Weak",
	Fair:       "Fair",
	Strong:     "Strong",
	VeryStrong: "Very strong",
}

var levelKeys = map[Level]string{
	Waiting:    "waiting",
	VeryWeak:   "very-weak",
	Weak:       "weak",
	Fair:       "fair",
	Strong:     "strong",
	VeryStrong: "very-strong",
}

// LevelFor maps a score to its band. Scores outside [0,100] are clamped first.
func LevelFor(score int) Level {
	switch s := clamp(score); {
	case s <= 25:
		return VeryWeak
	case s <= 45:
		return Weak
	case s <= 65:
		return Fair
	case s <= 85:
		return Strong
	default:
		return VeryStrong
	}
}

// String returns the human label shown next to the strength bar.
func (l Level) String() string {
	if s, ok := levelLabels[l]; ok {
		return s
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Key is a stable machine-readable name, used in JSON and as a style key.
func (l Level) Key() string {
	return levelKeys[l]
}

// MarshalText encodes the level as its Key.
func (l Level) MarshalText() ([]byte, error) {
	k, ok := levelKeys[l]
	if !ok {
		return nil, fmt.Errorf("unknown strength level %d", int(l))
	}
	return []byte(k), nil
}

// UnmarshalText decodes a level from its Key.
func (l *Level) UnmarshalText(text []byte) error {
	for level, key := range levelKeys {
		if key == string(text) {
			*l = level
			return nil
		}
	}
	return fmt.Errorf("unknown strength level %q", string(text))
}
