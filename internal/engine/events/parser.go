package events

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
)

const runningPrefix = "Running "

// Parser classifies the events of one toolchain run.
// It is not safe for concurrent use; the supervisor feeds it from a single goroutine.
type Parser struct {
	platform domain.Platform
	total    int
	reporter ports.Reporter
	policy   ErrorPolicy

	units       int
	executable  string
	directRustc [][]string
}

// NewParser creates a parser for one stream. total sizes the progress counter.
func NewParser(platform domain.Platform, total int, reporter ports.Reporter, policy ErrorPolicy) *Parser {
	if policy == nil {
		policy = NewStickyErrorLatch()
	}
	return &Parser{
		platform: platform,
		total:    total,
		reporter: reporter,
		policy:   policy,
	}
}

// FeedLine decodes and classifies one raw output line.
func (p *Parser) FeedLine(line string) error {
	ev, ok := Decode(line)
	if !ok {
		return nil
	}
	return p.Feed(ev)
}

// Feed classifies one event. It returns domain.ErrToolchainFailed when the
// toolchain reports an unsuccessful build; the caller must stop draining.
func (p *Parser) Feed(ev domain.Event) error {
	switch ev.Kind {
	case domain.EventScriptExecuted:
		p.units++

	case domain.EventText:
		p.captureInvocation(ev.Text)
		if p.policy.IsError(ev.Text) {
			p.reporter.OnBuildError(p.platform, ev.Text)
		} else {
			p.reporter.OnBuildMessage(p.platform, ev.Text)
		}

	case domain.EventDiagnostic:
		p.reporter.OnDiagnostic(p.platform, ev.Diagnostic)

	case domain.EventArtifact:
		if ev.Artifact.Executable != "" {
			p.executable = ev.Artifact.Executable
			return nil
		}
		p.units++
		p.reporter.OnBuildProgress(p.platform, p.units, p.total, ev.Artifact.TargetName)

	case domain.EventBuildFinished:
		if !ev.Success {
			return domain.ErrToolchainFailed
		}
	}
	return nil
}

func (p *Parser) captureInvocation(line string) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, runningPrefix) {
		return
	}

	raw := strings.TrimPrefix(trimmed, runningPrefix)
	raw = strings.TrimPrefix(raw, "`")
	raw = strings.TrimSuffix(raw, "`")

	args, err := shellquote.Split(raw)
	if err != nil || len(args) == 0 {
		return
	}
	p.directRustc = append(p.directRustc, args)
}

// Units returns the number of finished units so far.
func (p *Parser) Units() int {
	return p.units
}

// DirectRustc returns the invocations captured so far.
func (p *Parser) DirectRustc() [][]string {
	return p.directRustc
}

// Finish validates the drained stream and returns the recorded executable and invocations.
func (p *Parser) Finish() (string, [][]string, error) {
	if p.executable == "" {
		return "", nil, domain.ErrNoExecutable
	}
	return p.executable, p.directRustc, nil
}
