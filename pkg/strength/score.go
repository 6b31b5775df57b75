// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import "strings"

const (
	IssueTooShort      = "Too short. Aim for at least 12 characters."
	IssueLowVariety    = "Try mixing upper/lowercase letters, numbers, and symbols."
	IssueRepetition    = "Avoid repeating the same character several times in a row."
	IssueCommonPattern = "Avoid common patterns like '1234', 'abcd', 'password', or 'qwerty'."
)

const (
	MinScore = 0
	MaxScore = 100

	// RecommendedLength is the length the checklist asks for.
	RecommendedLength = 12
	// repeatRun is how many identical characters in a row trigger the repetition penalty.
	repeatRun = 3

	repetitionPenalty = 10
	sequencePenalty   = 15
)

var commonSequences = []string{"1234", "abcd", "qwerty", "password"}

// Result is the outcome of scoring a password.
type Result struct {
	Score  int      `json:"score" yaml:"score"`
	Level  Level    `json:"level" yaml:"level"`
	Issues []string `json:"issues" yaml:"issues"`
}

// Evaluate scores a password between 0 and 100 and lists its weaknesses in a fixed order:
// length, variety, repetition, common patterns.
//
// An empty password yields score 0 with the Waiting level, which callers can tell apart
// from a real VeryWeak result.
func Evaluate(password string) Result {
	if password == "" {
		return Result{Score: 0, Level: Waiting, Issues: []string{}}
	}

	c := classify(password)
	score := 0
	issues := make([]string, 0, 4)

	switch {
	case c.length < 8:
		score += 5
		issues = append(issues, IssueTooShort)
	case c.length < 12:
		score += 25
	case c.length < 16:
		score += 40
	default:
		score += 50
	}

	switch c.variety() {
	case 1:
		score += 5
		issues = append(issues, IssueLowVariety)
	case 2:
		score += 15
	case 3:
		score += 25
	case 4:
		score += 35
	}

	if hasRun(password, repeatRun) {
		score -= repetitionPenalty
		issues = append(issues, IssueRepetition)
	}

	if containsCommonSequence(password) {
		score -= sequencePenalty
		issues = append(issues, IssueCommonPattern)
	}

	score = clamp(score)
	return Result{Score: score, Level: LevelFor(score), Issues: issues}
}

func containsCommonSequence(password string) bool {
	lower := asciiLower(password)
	for _, seq := range commonSequences {
		if strings.Contains(lower, seq) {
			return true
		}
	}

	return false
}

func clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
