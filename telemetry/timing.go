package telemetry

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ledgersheet-dev/ledgersheet/output"
)

// TimingCollector records operations as a tree of timed spans and reports
// them as a nested view.
type TimingCollector struct {
	mu      sync.Mutex
	root    *span
	current *span
}

// span is one timed operation in the tree.
type span struct {
	name     string
	start    time.Time
	end      time.Time
	parent   *span
	children []*span
}

// NewTimingCollector creates an empty timing collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins timing an operation. The first started timer becomes the root
// of the tree; later ones nest under the currently open span.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := &span{name: name, start: time.Now()}
	if c.root == nil {
		c.root = s
	} else {
		s.parent = c.current
		c.current.children = append(c.current.children, s)
	}
	c.current = s

	return &timingTimer{collector: c, span: s}
}

// Report writes the timing tree. It is a no-op when nothing was recorded.
func (c *TimingCollector) Report(w io.Writer, styles *output.Styles) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.root == nil {
		return
	}
	writeSpanTree(w, c.root, styles)
}

type timingTimer struct {
	collector *TimingCollector
	span      *span
}

// End stops the timer and reopens its parent span.
func (t *timingTimer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.span.end = time.Now()
	if t.span.parent != nil {
		t.collector.current = t.span.parent
	}
}

// Child creates a timer nested under this one.
func (t *timingTimer) Child(name string) Timer {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	s := &span{name: name, start: time.Now(), parent: t.span}
	t.span.children = append(t.span.children, s)

	return &timingTimer{collector: t.collector, span: s}
}

// slowThreshold marks spans worth highlighting in the report.
const slowThreshold = 100 * time.Millisecond

// writeSpanTree renders the span tree, e.g.:
//
//	report.build income: 12ms
//	├─ chart.construct: 1ms
//	├─ ledger.parse (2 tables): 3ms
//	└─ report.render: 2ms
func writeSpanTree(w io.Writer, root *span, styles *output.Styles) {
	name := root.name
	timing := formatDuration(root.end.Sub(root.start))
	if styles != nil {
		name = styles.Keyword(name)
		timing = styles.Dim(timing)
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", name, timing)

	for i, child := range root.children {
		writeSpan(w, child, "", i == len(root.children)-1, styles)
	}
}

func writeSpan(w io.Writer, s *span, prefix string, isLast bool, styles *output.Styles) {
	branch, extension := "├─ ", "│  "
	if isLast {
		branch, extension = "└─ ", "   "
	}

	duration := s.end.Sub(s.start)
	timing := formatDuration(duration)
	lead := prefix + branch
	if styles != nil {
		lead = styles.Dim(lead)
		if duration >= slowThreshold {
			timing = styles.Warning(timing)
		} else {
			timing = styles.Dim(timing)
		}
	}
	_, _ = fmt.Fprintf(w, "%s%s: %s\n", lead, s.name, timing)

	for i, child := range s.children {
		writeSpan(w, child, prefix+extension, i == len(s.children)-1, styles)
	}
}

// formatDuration shows milliseconds below one second, seconds otherwise.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", float64(d)/float64(time.Second))
}
