package match

import "github.com/poiesic/synonyms/core"

// Monitor provides hooks to observe an evaluation run.
// Implement this interface to track predictions as they are made.
type Monitor interface {
	Start(source string)
	Skipped(lineNo int, line string)
	Predicted(tc *core.TestCase, guess string, correct bool)
	Finish(result *Result)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                               {}
func (n *noopMonitor) Skipped(_ int, _ string)                      {}
func (n *noopMonitor) Predicted(_ *core.TestCase, _ string, _ bool) {}
func (n *noopMonitor) Finish(_ *Result)                             {}
