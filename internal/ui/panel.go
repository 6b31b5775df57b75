package ui

import (
	"fmt"
	"strings"

	"github.com/alvinbaena/pwd-meter/internal/meter"
	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"github.com/charmbracelet/bubbles/progress"
)

const defaultBarWidth = 40

type barField struct {
	percent int
	level   strength.Level
}

func (f *barField) SetFill(percent int, level strength.Level) {
	f.percent = percent
	f.level = level
}

type textField struct {
	value string
}

func (f *textField) SetText(text string) {
	f.value = text
}

type listField struct {
	items []string
}

func (f *listField) SetItems(items []string) {
	f.items = items
}

type checkField struct {
	met map[strength.Requirement]bool
}

func (f *checkField) SetMet(req strength.Requirement, met bool) {
	if f.met == nil {
		f.met = make(map[strength.Requirement]bool, len(strength.RequirementOrder))
	}
	f.met[req] = met
}

// Panel is the terminal rendering of a password meter: strength bar, label, entropy,
// crack time, requirement checklist and feedback.
type Panel struct {
	styles *Styles
	width  int

	bar       barField
	label     textField
	entropy   textField
	crackTime textField
	feedback  listField
	checks    checkField
}

func NewPanel(styles *Styles) *Panel {
	return &Panel{styles: styles, width: defaultBarWidth}
}

// Targets wires the panel fields as meter targets.
func (p *Panel) Targets() meter.Targets {
	return meter.Targets{
		Bar:       &p.bar,
		Label:     &p.label,
		Feedback:  &p.feedback,
		Entropy:   &p.entropy,
		CrackTime: &p.crackTime,
		Checklist: &p.checks,
	}
}

// SetWidth sets the bar width in cells.
func (p *Panel) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	p.width = width
}

func (p *Panel) View() string {
	var sb strings.Builder

	sb.WriteString(p.renderBar())
	sb.WriteString(" ")
	sb.WriteString(p.styles.Level(p.bar.level).Render(p.label.value))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("%s %s\n", p.styles.Caption.Render("Entropy:   "), p.styles.Value.Render(p.entropy.value)))
	sb.WriteString(fmt.Sprintf("%s %s\n", p.styles.Caption.Render("Crack time:"), p.styles.Value.Render(p.crackTime.value)))
	sb.WriteString("\n")

	for _, req := range strength.RequirementOrder {
		if p.checks.met[req] {
			sb.WriteString(p.styles.Met.Render("[x] " + req.String()))
		} else {
			sb.WriteString(p.styles.Unmet.Render("[ ] " + req.String()))
		}
		sb.WriteString("\n")
	}

	if len(p.feedback.items) > 0 {
		sb.WriteString("\n")
		for _, item := range p.feedback.items {
			sb.WriteString(p.styles.Item.Render("- " + item))
			sb.WriteString("\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func (p *Panel) renderBar() string {
	if p.styles.Enabled() {
		bar := progress.New(
			progress.WithSolidFill(p.styles.BarColor(p.bar.level)),
			progress.WithWidth(p.width),
		)
		return bar.ViewAs(float64(p.bar.percent) / 100)
	}

	filled := p.width * p.bar.percent / 100
	return fmt.Sprintf("[%s%s] %3d%%", strings.Repeat("#", filled), strings.Repeat("-", p.width-filled), p.bar.percent)
}
