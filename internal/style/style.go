// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All
// styling is semantic (Success, Error, etc.) rather than visual. When
// disabled, all helpers return the input string unchanged with no ANSI
// codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool

	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	mutedStyle   lipgloss.Style
	headerStyle  lipgloss.Style
)

// Init initializes the style package. It respects the NO_COLOR and
// REPLKIT_NO_COLOR environment variables; if either is set, styling is
// disabled regardless of the enable parameter. Call once from main
// before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("REPLKIT_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if !enabled {
		return
	}

	// Force ANSI256 so styling does not depend on lipgloss's own TTY
	// detection; the caller already decided.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle = lipgloss.NewStyle().Bold(true)
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Error styles text for error messages.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Info styles text for informational messages.
func Info(text string) string {
	if !enabled {
		return text
	}
	return infoStyle.Render(text)
}

// Muted styles text for secondary information.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}

// Header styles text for section headers.
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}
