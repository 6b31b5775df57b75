// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package meter

import (
	"fmt"

	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"github.com/rs/zerolog/log"
)

// StrongAdvice is shown ahead of the issues when a password rates Strong or better.
const StrongAdvice = "This looks strong for most everyday use. " +
	"Still use unique passwords per site and a password manager."

// Bar is a proportional strength bar.
type Bar interface {
	SetFill(percent int, level strength.Level)
}

// Text is a single line of text.
type Text interface {
	SetText(text string)
}

// List is an ordered list of messages.
type List interface {
	SetItems(items []string)
}

// Checklist shows whether each requirement is met.
type Checklist interface {
	SetMet(req strength.Requirement, met bool)
}

// Targets are the surfaces a Meter renders into. Nil targets are skipped.
type Targets struct {
	Bar       Bar
	Label     Text
	Feedback  List
	Entropy   Text
	CrackTime Text
	Checklist Checklist
}

// Meter evaluates the password on every input change and pushes the result into its targets.
// It keeps no state between updates besides the targets themselves.
type Meter struct {
	targets Targets
}

func New(targets Targets) *Meter {
	return &Meter{targets: targets}
}

// OnInput re-renders every target for the current password value.
func (m *Meter) OnInput(password string) strength.Report {
	report := strength.Analyze(password)
	log.Debug().Int("score", report.Score).Str("level", report.Level.Key()).Msg("password evaluated")

	if m.targets.Bar != nil {
		m.targets.Bar.SetFill(report.Score, report.Level)
	}
	if m.targets.Label != nil {
		m.targets.Label.SetText(report.Label)
	}
	if m.targets.Feedback != nil {
		m.targets.Feedback.SetItems(Feedback(report.Level, report.Issues))
	}
	if m.targets.Entropy != nil {
		m.targets.Entropy.SetText(fmt.Sprintf("%d bits", report.Entropy))
	}
	if m.targets.CrackTime != nil {
		m.targets.CrackTime.SetText(report.CrackTime)
	}
	if m.targets.Checklist != nil {
		for _, req := range strength.RequirementOrder {
			m.targets.Checklist.SetMet(req, report.Requirements.Met(req))
		}
	}

	return report
}

// Feedback builds the message list: the advice for strong passwords first, then the issues in
// the order the scorer reported them.
func Feedback(level strength.Level, issues []string) []string {
	items := make([]string, 0, len(issues)+1)
	if level == strength.Strong || level == strength.VeryStrong {
		items = append(items, StrongAdvice)
	}

	return append(items, issues...)
}
