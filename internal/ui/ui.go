package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alvinbaena/pwd-meter/internal/meter"
	"github.com/alvinbaena/pwd-meter/internal/util"
	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"gopkg.in/yaml.v3"
)

// OutputMode determines how reports are written
type OutputMode int

const (
	// OutputModeInteractive renders a colored panel
	OutputModeInteractive OutputMode = iota
	// OutputModePlain renders the panel without colors (for piped output)
	OutputModePlain
	// OutputModeJSON writes the report as JSON
	OutputModeJSON
	// OutputModeYAML writes the report as YAML
	OutputModeYAML
)

// UI writes password reports to a terminal or a pipe
type UI struct {
	Mode   OutputMode
	Writer io.Writer
	Styles *Styles
}

// New creates a UI with TTY detection. format is one of text, json or yaml.
func New(w io.Writer, format string) (*UI, error) {
	mode, err := detectMode(w, format)
	if err != nil {
		return nil, err
	}

	return &UI{
		Mode:   mode,
		Writer: w,
		Styles: NewStyles(mode == OutputModeInteractive),
	}, nil
}

func detectMode(w io.Writer, format string) (OutputMode, error) {
	switch format {
	case "json":
		return OutputModeJSON, nil
	case "yaml", "yml":
		return OutputModeYAML, nil
	case "", "text":
	default:
		return OutputModePlain, fmt.Errorf("unknown output format %q", format)
	}

	if util.IsTerminal(w) {
		return OutputModeInteractive, nil
	}

	return OutputModePlain, nil
}

// IsInteractive returns true if the output is a TTY
func (ui *UI) IsInteractive() bool {
	return ui.Mode == OutputModeInteractive
}

// Show evaluates a password and writes the result in the configured mode
func (ui *UI) Show(password string) error {
	switch ui.Mode {
	case OutputModeJSON:
		enc := json.NewEncoder(ui.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(strength.Analyze(password))
	case OutputModeYAML:
		enc := yaml.NewEncoder(ui.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(strength.Analyze(password)); err != nil {
			return err
		}
		return enc.Close()
	}

	panel := NewPanel(ui.Styles)
	meter.New(panel.Targets()).OnInput(password)
	_, err := fmt.Fprintln(ui.Writer, panel.View())
	return err
}
