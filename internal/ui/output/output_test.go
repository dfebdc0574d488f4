package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/weld/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
	assert.Equal(t, termenv.Ascii, output.ColorProfileANSI())
}

func TestColorProfileANSI(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.ANSI, output.ColorProfileANSI())
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)

	_, _ = out.WriteString("compiling")
	assert.Equal(t, "compiling", buf.String())
}

func TestNewWithProfile_NilWriter(t *testing.T) {
	out := output.NewWithProfile(nil, output.ColorProfileANSI)
	assert.NotNil(t, out)
}
