// Package telemetry provides hierarchical timing collection for the report
// pipeline. Collectors travel through the context so instrumentation never
// changes function signatures; when no collector is attached, a no-op
// implementation keeps the overhead at zero.
//
// Example usage:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := collector.Start("report.build income")
//	phase := timer.Child("ledger.parse")
//	// ... work ...
//	phase.End()
//	timer.End()
//
//	collector.Report(os.Stderr, styles)
package telemetry

import (
	"context"
	"io"

	"github.com/ledgersheet-dev/ledgersheet/output"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{}

var collectorKey = contextKey{}

// Collector collects operation timings.
type Collector interface {
	// Start begins timing an operation. End the returned Timer when the
	// operation completes.
	Start(name string) Timer

	// Report writes the collected timings. The styles may be nil for plain
	// output.
	Report(w io.Writer, styles *output.Styles)
}

// Timer tracks a single operation and supports nesting via Child.
type Timer interface {
	// End stops the timer and records the duration.
	End()

	// Child creates a nested timer under this one.
	Child(name string) Timer
}

// WithCollector attaches a collector to a context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector from a context, or a no-op collector
// when none is attached.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

// noOpCollector does nothing; it is the default when telemetry is disabled.
type noOpCollector struct{}

func (noOpCollector) Start(name string) Timer              { return noOpTimer{} }
func (noOpCollector) Report(w io.Writer, s *output.Styles) {}

type noOpTimer struct{}

func (noOpTimer) End()                    {}
func (noOpTimer) Child(name string) Timer { return noOpTimer{} }
