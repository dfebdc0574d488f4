package domain

import "time"

// EventKind classifies one line of toolchain output.
type EventKind int

const (
	// EventText is a plain line that is not a structured message.
	EventText EventKind = iota
	// EventScriptExecuted reports that a build script ran.
	EventScriptExecuted
	// EventDiagnostic carries a compiler diagnostic.
	EventDiagnostic
	// EventArtifact reports a finished compilation unit.
	EventArtifact
	// EventBuildFinished closes the stream with the overall result.
	EventBuildFinished
)

// DiagnosticLevel is the severity of a compiler diagnostic.
type DiagnosticLevel string

// Diagnostic levels emitted by rustc.
const (
	LevelError   DiagnosticLevel = "error"
	LevelWarning DiagnosticLevel = "warning"
	LevelNote    DiagnosticLevel = "note"
	LevelHelp    DiagnosticLevel = "help"
)

// Diagnostic is a compiler message about a source location.
type Diagnostic struct {
	Level   DiagnosticLevel
	Message string
	// Rendered is the pre-formatted, ANSI coloured text.
	Rendered string
	Target   string
}

// Artifact describes one finished compilation unit.
type Artifact struct {
	PackageID  string
	TargetName string
	// Executable is set when the unit produced a runnable binary.
	Executable string
	Fresh      bool
}

// Event is one decoded line of toolchain output.
type Event struct {
	Kind       EventKind
	Text       string
	Diagnostic Diagnostic
	Artifact   Artifact
	Success    bool
}

// BuildArtifacts is the result of one toolchain run.
type BuildArtifacts struct {
	BuildID  string
	Platform Platform
	// Executable is the path of the produced binary. Always set on success.
	Executable string
	// DirectRustc holds each captured compiler invocation, split into arguments.
	DirectRustc [][]string
	Elapsed     time.Duration
}

// AppBuild pairs the app artifacts with the optional server artifacts of a fullstack build.
type AppBuild struct {
	App    *BuildArtifacts
	Server *BuildArtifacts
}
