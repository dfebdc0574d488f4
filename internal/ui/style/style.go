// Package style holds the colors and icons shared by every weld output surface.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/weld/internal/core/domain"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Sky    = lipgloss.Color("#0EA5E9")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// PlatformColor returns the label color of a build platform.
// The server half of a fullstack build is always distinguishable from the app.
func PlatformColor(p domain.Platform) lipgloss.Color {
	switch p {
	case domain.PlatformServer:
		return Yellow
	case domain.PlatformWeb:
		return Sky
	case domain.PlatformAndroid, domain.PlatformIOS:
		return Green
	default:
		return Iris
	}
}

// DiagnosticColor returns the color of a compiler diagnostic level.
func DiagnosticColor(level domain.DiagnosticLevel) lipgloss.Color {
	switch level {
	case domain.LevelError:
		return Red
	case domain.LevelWarning:
		return Yellow
	default:
		return Slate
	}
}
