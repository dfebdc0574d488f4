package linear_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/weld/internal/adapters/linear"
	"go.trai.ch/weld/internal/core/domain"
)

func newTestReporter(t *testing.T, progress bool) (*linear.Reporter, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return linear.NewReporter(buf, progress), buf
}

func TestReporter_LinearSuccess(t *testing.T) {
	r, buf := newTestReporter(t, false)

	r.OnBuildStart(domain.PlatformLinux, 3)
	r.OnBuildMessage(domain.PlatformLinux, "   Compiling demo v0.1.0")
	r.OnBuildMessage(domain.PlatformLinux, "   ")
	r.OnBuildProgress(domain.PlatformLinux, 1, 3, "serde")
	r.OnBuildProgress(domain.PlatformLinux, 4, 3, "demo")
	r.OnBuildComplete(domain.PlatformLinux, &domain.BuildArtifacts{
		Executable: "/t/debug/demo",
		Elapsed:    1500 * time.Millisecond,
	}, nil)

	want := "[linux] Building 3 units...\n" +
		"[linux]    Compiling demo v0.1.0\n" +
		"[linux] Compiled serde (1/3)\n" +
		"[linux] Compiled demo (4/4)\n" +
		"[linux] ✓ Built /t/debug/demo in 1.5s\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_Failure(t *testing.T) {
	r, buf := newTestReporter(t, false)

	r.OnBuildStart(domain.PlatformServer, 1)
	r.OnBuildError(domain.PlatformServer, "error: could not compile `demo`")
	r.OnDiagnostic(domain.PlatformServer, domain.Diagnostic{Level: domain.LevelError, Message: "mismatched types"})
	r.OnBuildComplete(domain.PlatformServer, nil, errors.New("cargo build failed"))

	out := buf.String()
	assert.Contains(t, out, "[server] error: could not compile `demo`\n")
	assert.Contains(t, out, "[server] error: mismatched types\n")
	assert.Contains(t, out, "[server] ✗ Failed after")
}

func TestReporter_RenderedDiagnostic(t *testing.T) {
	r, buf := newTestReporter(t, false)

	r.OnDiagnostic(domain.PlatformWeb, domain.Diagnostic{
		Level:    domain.LevelWarning,
		Message:  "unused variable",
		Rendered: "warning: unused variable: `x`\n --> src/main.rs:2:9\n",
	})

	assert.Equal(t, "[web] warning: unused variable: `x`\n[web]  --> src/main.rs:2:9\n", buf.String())
}

func TestReporter_ProgressModeHidesMessages(t *testing.T) {
	r, buf := newTestReporter(t, true)

	r.OnBuildStart(domain.PlatformMacOS, 2)
	buf.Reset()

	r.OnBuildMessage(domain.PlatformMacOS, "   Compiling demo v0.1.0")
	assert.Empty(t, buf.String())

	r.OnBuildProgress(domain.PlatformMacOS, 1, 2, "serde")
	r.OnBuildProgress(domain.PlatformMacOS, 3, 2, "demo")
	r.OnBuildComplete(domain.PlatformMacOS, &domain.BuildArtifacts{Executable: "/t/demo", Elapsed: time.Second}, nil)

	assert.Contains(t, buf.String(), "[macos] ✓ Built /t/demo in 1s")
	assert.NotContains(t, buf.String(), "Compiling demo")
}

func TestReporter_ConcurrentPlatforms(t *testing.T) {
	r, buf := newTestReporter(t, false)

	var wg sync.WaitGroup
	for _, p := range []domain.Platform{domain.PlatformWeb, domain.PlatformServer} {
		wg.Add(1)
		go func(p domain.Platform) {
			defer wg.Done()
			r.OnBuildStart(p, 10)
			for i := 1; i <= 10; i++ {
				r.OnBuildProgress(p, i, 10, "unit")
			}
			r.OnBuildComplete(p, &domain.BuildArtifacts{Executable: "/t/" + p.String(), Elapsed: time.Second}, nil)
		}(p)
	}
	wg.Wait()

	assert.Contains(t, buf.String(), "[web] ✓ Built /t/web in 1s")
	assert.Contains(t, buf.String(), "[server] ✓ Built /t/server in 1s")
}

func TestReporter_SetProgress(t *testing.T) {
	r, buf := newTestReporter(t, true)
	r.SetProgress(false)

	r.OnBuildMessage(domain.PlatformLinux, "   Compiling demo v0.1.0")
	assert.Equal(t, "[linux]    Compiling demo v0.1.0\n", buf.String())
}
