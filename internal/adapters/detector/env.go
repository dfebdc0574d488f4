// Package detector picks how build progress is presented.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is the presentation of build progress.
type OutputMode int

const (
	// ModeAuto defers to environment detection.
	ModeAuto OutputMode = iota
	// ModeProgress draws a live progress bar per platform.
	ModeProgress
	// ModeLinear prints one line per event, suitable for CI logs.
	ModeLinear
)

// DetectEnvironment returns ModeProgress on an interactive terminal and
// ModeLinear when stderr is redirected or CI is set.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	if !isTTY || ci == "true" || ci == "1" {
		return ModeLinear
	}
	return ModeProgress
}

// ResolveMode applies the --output flag to the detected mode.
// flag is one of "auto", "progress", "linear", "ci" or empty.
func ResolveMode(detected OutputMode, flag string) OutputMode {
	switch flag {
	case "progress":
		return ModeProgress
	case "linear", "ci":
		return ModeLinear
	default:
		return detected
	}
}
