// Package profiling records how long the stages of a command take.
//
// Timing is off until Enable is called; Start then returns a span whose Stop
// adds the elapsed time to the stage's total. Spans may be started from
// several goroutines at once.
package profiling

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Span is a running measurement. A nil Span is valid and does nothing.
type Span struct {
	name  string
	start time.Time
	rec   *Recorder
}

// Stop ends the span.
func (s *Span) Stop() {
	if s == nil {
		return
	}
	s.rec.add(s.name, time.Since(s.start))
}

type stage struct {
	name  string
	calls int
	total time.Duration
}

// Recorder aggregates span durations per stage name, in first-seen order.
type Recorder struct {
	mu      sync.Mutex
	enabled bool
	started time.Time
	stages  []*stage
	index   map[string]*stage
}

var defaultRecorder = &Recorder{}

// Enable turns on the process-wide recorder.
func Enable() { defaultRecorder.Enable() }

// Enabled reports whether the process-wide recorder is on.
func Enabled() bool { return defaultRecorder.Enabled() }

// Start begins a span on the process-wide recorder.
func Start(name string) *Span { return defaultRecorder.Start(name) }

// Summarize writes the process-wide summary to w.
func Summarize(w io.Writer) { defaultRecorder.Summarize(w) }

// Enable starts recording. Calling it again keeps the collected data.
func (r *Recorder) Enable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.enabled {
		return
	}
	r.enabled = true
	r.started = time.Now()
	r.index = make(map[string]*stage)
}

// Enabled reports whether the recorder is on.
func (r *Recorder) Enabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled
}

// Start begins a span, or returns nil when recording is off.
func (r *Recorder) Start(name string) *Span {
	if !r.Enabled() {
		return nil
	}
	return &Span{name: name, start: time.Now(), rec: r}
}

func (r *Recorder) add(name string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.index[name]
	if !ok {
		st = &stage{name: name}
		r.index[name] = st
		r.stages = append(r.stages, st)
	}
	st.calls++
	st.total += d
}

// Summarize prints one line per stage with its call count, total time and
// share of the wall time since Enable. Parallel stages can exceed 100%.
func (r *Recorder) Summarize(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.enabled {
		return
	}

	wall := time.Since(r.started)
	fmt.Fprintf(w, "\n--- Timing (%v) ---\n", wall.Round(100*time.Microsecond))
	for _, st := range r.stages {
		share := 0.0
		if wall > 0 {
			share = float64(st.total) / float64(wall) * 100
		}
		fmt.Fprintf(w, "- %s x%d (%v, %.1f%%)\n", st.name, st.calls, st.total.Round(100*time.Microsecond), share)
	}
}
