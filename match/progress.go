package match

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/poiesic/synonyms/core"
)

// ProgressMonitor is a Monitor that writes running accuracy to a writer.
type ProgressMonitor struct {
	writer         io.Writer
	reportInterval int
	source         string
	attempted      int
	correct        int
	lastReported   int
	startTime      time.Time
	started        bool
	mu             sync.Mutex
}

var _ Monitor = (*ProgressMonitor)(nil)

// NewProgressMonitor creates a new progress monitor.
// writer: where to write progress output (typically os.Stderr)
// reportInterval: report progress every N attempted cases
func NewProgressMonitor(writer io.Writer, reportInterval int) *ProgressMonitor {
	if reportInterval < 1 {
		reportInterval = 1
	}
	return &ProgressMonitor{
		writer:         writer,
		reportInterval: reportInterval,
	}
}

// Start begins tracking a run over source.
func (p *ProgressMonitor) Start(source string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.source = source
	p.startTime = time.Now()
	p.started = true
	p.attempted = 0
	p.correct = 0
	p.lastReported = 0
}

// Skipped ignores malformed lines; they do not count as progress.
func (p *ProgressMonitor) Skipped(_ int, _ string) {}

// Predicted records one attempted case.
func (p *ProgressMonitor) Predicted(_ *core.TestCase, _ string, correct bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	p.attempted++
	if correct {
		p.correct++
	}

	// Report if we've crossed a report interval
	if p.attempted-p.lastReported >= p.reportInterval {
		p.report()
		p.lastReported = p.attempted
	}
}

// Finish prints the final tallies.
func (p *ProgressMonitor) Finish(result *Result) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	p.attempted = result.Attempted
	p.correct = result.Correct
	p.report()
	fmt.Fprintln(p.writer) // Print newline after final progress
	p.started = false
}

// Elapsed returns the time elapsed since Start was called.
func (p *ProgressMonitor) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return 0
	}

	return time.Since(p.startTime)
}

// report prints the current progress. Must be called with lock held.
func (p *ProgressMonitor) report() {
	rate := 0.0
	if elapsed := time.Since(p.startTime).Seconds(); elapsed > 0 {
		rate = float64(p.attempted) / elapsed
	}

	accuracy := 0.0
	if p.attempted > 0 {
		accuracy = float64(p.correct) / float64(p.attempted) * 100.0
	}

	fmt.Fprintf(p.writer, "\r%s: %d cases (%d correct, %.1f%%) - %.1f cases/s",
		p.source, p.attempted, p.correct, accuracy, rate)
}
