package cli

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/grovetools/hookcfg/theme"
)

// Progress states.
const (
	StatusStarted   = "started"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ProgressReporter prints status changes of concurrent operations, one
// line per change, and a summary when done.
type ProgressReporter struct {
	mu       sync.Mutex
	out      io.Writer
	statuses map[string]string
	start    time.Time
	quiet    bool
}

// NewProgressReporter creates a reporter writing to out. A quiet reporter
// only tracks state.
func NewProgressReporter(out io.Writer, quiet bool) *ProgressReporter {
	return &ProgressReporter{
		out:      out,
		statuses: make(map[string]string),
		start:    time.Now(),
		quiet:    quiet,
	}
}

// Update records the status of an item.
func (p *ProgressReporter) Update(item, status string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.statuses[item] = status
	if p.quiet {
		return
	}

	t := theme.DefaultTheme
	var symbol string
	switch status {
	case StatusCompleted:
		symbol = t.Success.Render(theme.IconSuccess)
	case StatusFailed:
		symbol = t.Error.Render(theme.IconError)
	default:
		symbol = t.Muted.Render(theme.IconBullet)
	}
	fmt.Fprintf(p.out, "%s %s %s\n", symbol, item, t.Muted.Render(status))
}

// Failed returns the items whose last status was failed, sorted.
func (p *ProgressReporter) Failed() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for item, status := range p.statuses {
		if status == StatusFailed {
			out = append(out, item)
		}
	}
	sort.Strings(out)
	return out
}

// Done prints the summary line.
func (p *ProgressReporter) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.quiet {
		return
	}
	elapsed := time.Since(p.start).Round(time.Millisecond)
	fmt.Fprintln(p.out, theme.DefaultTheme.Muted.Render(fmt.Sprintf("%d item(s) in %s", len(p.statuses), elapsed)))
}
