// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

// Requirement is one item of the password checklist.
type Requirement int

const (
	ReqLength Requirement = iota
	ReqLower
	ReqUpper
	ReqDigit
	ReqSymbol
)

// RequirementOrder is the order the checklist is displayed in.
var RequirementOrder = []Requirement{ReqLength, ReqLower, ReqUpper, ReqDigit, ReqSymbol}

var requirementLabels = map[Requirement]string{
	ReqLength: "At least 12 characters",
	ReqLower:  "Lowercase letter",
	ReqUpper:  "Uppercase letter",
	ReqDigit:  "Number",
	ReqSymbol: "Symbol",
}

func (r Requirement) String() string {
	return requirementLabels[r]
}

// Requirements tells which checklist items a password satisfies.
type Requirements struct {
	Length bool `json:"length" yaml:"length"`
	Lower  bool `json:"lower" yaml:"lower"`
	Upper  bool `json:"upper" yaml:"upper"`
	Digit  bool `json:"digit" yaml:"digit"`
	Symbol bool `json:"symbol" yaml:"symbol"`
}

// Check evaluates the checklist with the same character classes Evaluate uses.
func Check(password string) Requirements {
	c := classify(password)
	return Requirements{
		Length: c.length >= RecommendedLength,
		Lower:  c.lower,
		Upper:  c.upper,
		Digit:  c.digit,
		Symbol: c.symbol,
	}
}

// Met reports whether a single requirement is satisfied.
func (r Requirements) Met(req Requirement) bool {
	switch req {
	case ReqLength:
		return r.Length
	case ReqLower:
		return r.Lower
	case ReqUpper:
		return r.Upper
	case ReqDigit:
		return r.Digit
	case ReqSymbol:
		return r.Symbol
	}
	return false
}

// Report bundles everything known about a password.
type Report struct {
	Score        int          `json:"score" yaml:"score"`
	Level        Level        `json:"level" yaml:"level"`
	Label        string       `json:"label" yaml:"label"`
	Issues       []string     `json:"issues" yaml:"issues"`
	Entropy      int          `json:"entropy" yaml:"entropy"`
	CrackTime    string       `json:"crack_time" yaml:"crack_time"`
	Requirements Requirements `json:"requirements" yaml:"requirements"`
}

// Analyze runs Evaluate, Entropy, CrackTime and Check on a password.
func Analyze(password string) Report {
	res := Evaluate(password)
	bits := Entropy(password)

	return Report{
		Score:        res.Score,
		Level:        res.Level,
		Label:        res.Level.String(),
		Issues:       res.Issues,
		Entropy:      bits,
		CrackTime:    CrackTime(bits),
		Requirements: Check(password),
	}
}
