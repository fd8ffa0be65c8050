// Package tracing routes the traces of all parsec packages to a single
// schuko tracer.
package tracing

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var defaultOnce sync.Once

// Syntax returns the tracer for parsing, which is gtrace.SyntaxTracer.
// If no tracer has been configured, a log-based tracer is installed.
func Syntax() tracing.Trace {
	defaultOnce.Do(func() {
		if gtrace.SyntaxTracer == nil {
			gtrace.SyntaxTracer = gologadapter.New()
			gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelError)
		}
	})
	return gtrace.SyntaxTracer
}

// SetTestingLog redirects tracing to the test log of t and sets the syntax
// tracer to debug level. The returned teardown function has to be called at
// the end of the test.
func SetTestingLog(t *testing.T) func() {
	teardown := testconfig.QuickConfig(t)
	if gtrace.SyntaxTracer != nil {
		gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	}
	return teardown
}
