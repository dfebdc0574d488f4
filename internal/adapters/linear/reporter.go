// Package linear reports build progress as prefixed, chronological lines.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/schollz/progressbar/v3"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/ui/output"
	"go.trai.ch/weld/internal/ui/style"
)

// Reporter implements ports.Reporter.
// In progress mode each platform gets a live unit counter and plain toolchain
// chatter is hidden; errors and diagnostics are always printed.
type Reporter struct {
	w        io.Writer
	out      *termenv.Output
	progress bool
	now      func() time.Time

	mu     sync.Mutex
	starts map[domain.Platform]time.Time
	bars   map[domain.Platform]*progressbar.ProgressBar
}

// NewReporter creates a Reporter writing to w. A nil w writes to stderr.
func NewReporter(w io.Writer, progress bool) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	return &Reporter{
		w:        w,
		out:      output.NewWithProfile(w, output.ColorProfileANSI),
		progress: progress,
		now:      time.Now,
		starts:   make(map[domain.Platform]time.Time),
		bars:     make(map[domain.Platform]*progressbar.ProgressBar),
	}
}

// SetProgress switches progress bars on or off for builds started afterwards.
func (r *Reporter) SetProgress(enable bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = enable
}

// OnBuildStart announces a build and, in progress mode, opens its counter.
func (r *Reporter) OnBuildStart(platform domain.Platform, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.starts[platform] = r.now()
	r.printLocked(platform, fmt.Sprintf("Building %d units...", total))

	if r.progress {
		r.bars[platform] = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(r.w),
			progressbar.OptionSetDescription(r.prefix(platform)),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}
}

// OnBuildProgress advances the unit counter.
// The estimate may be short, so the counter grows with the reported units.
func (r *Reporter) OnBuildProgress(platform domain.Platform, done, total int, unit string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bar, ok := r.bars[platform]; ok {
		if done > bar.GetMax() {
			bar.ChangeMax(done)
		}
		_ = bar.Set(done)
		return
	}

	if done > total {
		total = done
	}
	r.printLocked(platform, r.out.String(fmt.Sprintf("Compiled %s (%d/%d)", unit, done, total)).Faint().String())
}

// OnBuildMessage prints a plain toolchain line outside progress mode.
func (r *Reporter) OnBuildMessage(platform domain.Platform, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress {
		return
	}
	r.printLocked(platform, line)
}

// OnBuildError prints a toolchain line reported after an error.
func (r *Reporter) OnBuildError(platform domain.Platform, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clearBarLocked(platform)
	r.printLocked(platform, r.colored(line, style.Red))
}

// OnDiagnostic prints a compiler diagnostic, preferring its rendered form.
func (r *Reporter) OnDiagnostic(platform domain.Platform, diag domain.Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clearBarLocked(platform)

	if diag.Rendered != "" {
		for _, line := range strings.Split(strings.TrimRight(diag.Rendered, "\n"), "\n") {
			r.printLocked(platform, line)
		}
		return
	}
	r.printLocked(platform, r.colored(fmt.Sprintf("%s: %s", diag.Level, diag.Message), style.DiagnosticColor(diag.Level)))
}

// OnBuildComplete closes the counter and prints the outcome.
func (r *Reporter) OnBuildComplete(platform domain.Platform, artifacts *domain.BuildArtifacts, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bar, ok := r.bars[platform]; ok {
		_ = bar.Finish()
		delete(r.bars, platform)
	}

	elapsed := r.now().Sub(r.starts[platform])
	delete(r.starts, platform)

	if err != nil {
		symbol := r.colored(style.Cross, style.Red)
		r.printLocked(platform, fmt.Sprintf("%s Failed after %v", symbol, elapsed.Round(time.Millisecond)))
		return
	}

	if artifacts != nil && artifacts.Elapsed > 0 {
		elapsed = artifacts.Elapsed
	}
	symbol := r.colored(style.Check, style.Green)
	exe := ""
	if artifacts != nil {
		exe = " " + artifacts.Executable
	}
	r.printLocked(platform, fmt.Sprintf("%s Built%s in %v", symbol, exe, elapsed.Round(time.Millisecond)))
}

func (r *Reporter) clearBarLocked(platform domain.Platform) {
	if bar, ok := r.bars[platform]; ok {
		_ = bar.Clear()
	}
}

func (r *Reporter) prefix(platform domain.Platform) string {
	return r.out.String(fmt.Sprintf("[%s]", platform)).
		Foreground(termenv.RGBColor(string(style.PlatformColor(platform)))).
		String()
}

func (r *Reporter) colored(s string, color lipgloss.Color) string {
	return r.out.String(s).Foreground(termenv.RGBColor(string(color))).String()
}

// printLocked writes one prefixed line. Must be called with r.mu held.
func (r *Reporter) printLocked(platform domain.Platform, line string) {
	line = strings.TrimRight(line, "\r\n")
	_, _ = fmt.Fprintf(r.w, "%s %s\n", r.prefix(platform), line)
}
