// Package controller provides output adapters for displaying build results
// and component reports.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/mouse-blink/eghc/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeList StartMode = iota
	ModeBuild
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithListMode sets the UI to component listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithBuildMode sets the UI to build progress mode.
func WithBuildMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBuild
	}
}

// UI defines the interface for displaying build progress and component
// reports. Implementations can use different output methods (simple text,
// TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayComponents(infos []m.ComponentInfo) error
	DisplayInspection(info m.ComponentInfo) error
	DisplayBuildStart(total int, workers int)
	DisplayBuildResult(result m.BuildResult)
	DisplayBuildSummary(results []m.BuildResult)
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal. Redirected files and
// pipes are not.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}

// summary counts build outcomes.
type summary struct {
	compiled int
	cached   int
	failed   int
}

func summarize(results []m.BuildResult) summary {
	var s summary

	for _, result := range results {
		switch result.Status {
		case m.BuildCompiled:
			s.compiled++
		case m.BuildCached:
			s.cached++
		case m.BuildFailed:
			s.failed++
		}
	}

	return s
}
