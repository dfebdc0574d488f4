package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/weld/internal/adapters/detector"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		isTTY bool
		ci    string
		want  detector.OutputMode
	}{
		{"terminal", true, "", detector.ModeProgress},
		{"terminal in CI", true, "true", detector.ModeLinear},
		{"terminal with CI=1", true, "1", detector.ModeLinear},
		{"CI=false is ignored", true, "false", detector.ModeProgress},
		{"redirected", false, "", detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.Detect(tt.isTTY, tt.ci))
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		flag     string
		detected detector.OutputMode
		want     detector.OutputMode
	}{
		{"", detector.ModeProgress, detector.ModeProgress},
		{"auto", detector.ModeLinear, detector.ModeLinear},
		{"progress", detector.ModeLinear, detector.ModeProgress},
		{"linear", detector.ModeProgress, detector.ModeLinear},
		{"ci", detector.ModeProgress, detector.ModeLinear},
		{"fancy", detector.ModeLinear, detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveMode(tt.detected, tt.flag))
		})
	}
}
