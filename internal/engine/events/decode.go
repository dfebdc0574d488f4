// Package events decodes and classifies the toolchain's line oriented message stream.
package events

import (
	"encoding/json"
	"strings"

	"go.trai.ch/weld/internal/core/domain"
)

// Message reasons emitted by cargo with --message-format json.
const (
	reasonCompilerMessage     = "compiler-message"
	reasonCompilerArtifact    = "compiler-artifact"
	reasonBuildScriptExecuted = "build-script-executed"
	reasonBuildFinished       = "build-finished"
)

type wireTarget struct {
	Name string   `json:"name"`
	Kind []string `json:"kind"`
}

type wireDiagnostic struct {
	Level    string  `json:"level"`
	Message  string  `json:"message"`
	Rendered *string `json:"rendered"`
}

type wireMessage struct {
	Reason     string          `json:"reason"`
	PackageID  string          `json:"package_id"`
	Target     *wireTarget     `json:"target"`
	Message    *wireDiagnostic `json:"message"`
	Executable *string         `json:"executable"`
	Fresh      bool            `json:"fresh"`
	Success    *bool           `json:"success"`
}

// Decode turns one output line into an Event.
// Lines that are not JSON objects are text events. JSON lines that fail to decode,
// carry an unknown reason or miss required fields are dropped and ok is false.
func Decode(line string) (ev domain.Event, ok bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return domain.Event{Kind: domain.EventText, Text: strings.TrimRight(line, "\r\n")}, true
	}

	var msg wireMessage
	if err := json.Unmarshal([]byte(trimmed), &msg); err != nil {
		return domain.Event{}, false
	}

	switch msg.Reason {
	case reasonBuildScriptExecuted:
		return domain.Event{Kind: domain.EventScriptExecuted}, true

	case reasonCompilerMessage:
		if msg.Message == nil {
			return domain.Event{}, false
		}
		diag := domain.Diagnostic{
			Level:   domain.DiagnosticLevel(msg.Message.Level),
			Message: msg.Message.Message,
		}
		if msg.Message.Rendered != nil {
			diag.Rendered = *msg.Message.Rendered
		}
		if msg.Target != nil {
			diag.Target = msg.Target.Name
		}
		return domain.Event{Kind: domain.EventDiagnostic, Diagnostic: diag}, true

	case reasonCompilerArtifact:
		if msg.Target == nil {
			return domain.Event{}, false
		}
		art := domain.Artifact{
			PackageID:  msg.PackageID,
			TargetName: msg.Target.Name,
			Fresh:      msg.Fresh,
		}
		if msg.Executable != nil {
			art.Executable = *msg.Executable
		}
		return domain.Event{Kind: domain.EventArtifact, Artifact: art}, true

	case reasonBuildFinished:
		if msg.Success == nil {
			return domain.Event{}, false
		}
		return domain.Event{Kind: domain.EventBuildFinished, Success: *msg.Success}, true

	default:
		return domain.Event{}, false
	}
}
