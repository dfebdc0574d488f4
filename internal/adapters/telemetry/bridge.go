package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/weld/internal/core/ports"
)

// platformKey is the span attribute naming the platform a span belongs to.
const platformKey = "weld.platform"

// TimingBridge implements sdktrace.SpanProcessor and reports finished spans
// through the logger at debug level.
type TimingBridge struct {
	logger ports.Logger
}

// NewTimingBridge returns a new TimingBridge.
func NewTimingBridge(logger ports.Logger) *TimingBridge {
	return &TimingBridge{logger: logger}
}

// OnStart does nothing.
func (b *TimingBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *TimingBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	name := s.Name()
	for _, attr := range s.Attributes() {
		if string(attr.Key) == platformKey {
			name = fmt.Sprintf("%s [%s]", name, attr.Value.Emit())
			break
		}
	}

	elapsed := s.EndTime().Sub(s.StartTime())
	if s.Status().Code == codes.Error {
		b.logger.Debug(fmt.Sprintf("span %s failed after %s: %s", name, elapsed, s.Status().Description))
		return
	}
	b.logger.Debug(fmt.Sprintf("span %s took %s", name, elapsed))
}

// ForceFlush does nothing.
func (b *TimingBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *TimingBridge) Shutdown(_ context.Context) error {
	return nil
}

// NewProvider builds a TracerProvider that feeds span timings to logger.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewTimingBridge(logger)),
	)
}
