package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/ui/style"
)

func TestPlatformColor(t *testing.T) {
	assert.Equal(t, style.Yellow, style.PlatformColor(domain.PlatformServer))
	assert.Equal(t, style.Sky, style.PlatformColor(domain.PlatformWeb))
	assert.Equal(t, style.Iris, style.PlatformColor(domain.PlatformLinux))
	assert.NotEqual(t, style.PlatformColor(domain.PlatformServer), style.PlatformColor(domain.PlatformMacOS))
}

func TestDiagnosticColor(t *testing.T) {
	assert.Equal(t, style.Red, style.DiagnosticColor(domain.LevelError))
	assert.Equal(t, style.Yellow, style.DiagnosticColor(domain.LevelWarning))
	assert.Equal(t, style.Slate, style.DiagnosticColor(domain.LevelNote))
}
