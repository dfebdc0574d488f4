package app

import "go.trai.ch/weld/internal/adapters/detector"

// WithDetector replaces the terminal detection used to pick the output mode.
func (a *App) WithDetector(fn func() detector.OutputMode) *App {
	a.detect = fn
	return a
}

// CanonicalExecutable exposes the executable path resolution.
func CanonicalExecutable(resolve func() (string, error)) func() (string, error) {
	return canonicalExecutable(resolve)
}
