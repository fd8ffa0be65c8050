package parsec

import (
	"github.com/npillmayer/parsec/posmap"
	schuko "github.com/npillmayer/schuko/tracing"
)

// Option configures a parse.
type Option func(*config)

type config struct {
	module      string
	traceFaults bool
	user        interface{}
	tracer      schuko.Trace
	pm          *posmap.PositionMap
	show        ShowToken
	eofLabel    string
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Module sets the name of the source, used in diagnostics.
func Module(name string) Option {
	return func(c *config) { c.module = name }
}

// TraceFaults switches recording of active parsers on or off. If on,
// runtime faults raised by collaborators (tokenizers, mapping functions,
// actions) are reported with the full chain of parsers active at the time
// of the fault.
//
// Tracing costs an allocation per parser application and is meant for
// debugging grammars.
func TraceFaults(on bool) Option {
	return func(c *config) { c.traceFaults = on }
}

// UserState sets the initial user state.
func UserState(u interface{}) Option {
	return func(c *config) { c.user = u }
}

// Tracer sets a tracer for this parse, overriding the global syntax tracer.
func Tracer(t schuko.Trace) Option {
	return func(c *config) { c.tracer = t }
}

// PositionMap sets the position map for the source. Clients which need
// positions after the parse, e.g. for their own diagnostics, should create
// the map themselves and pass it in.
func PositionMap(pm *posmap.PositionMap) Option {
	return func(c *config) { c.pm = pm }
}

// ShowTokens sets the renderer for tokens in diagnostics of nested,
// token-level grammars.
func ShowTokens(show ShowToken) Option {
	return func(c *config) { c.show = show }
}

// EOFLabel sets the description of end of input for token-level
// diagnostics. Default is "EOF".
func EOFLabel(label string) Option {
	return func(c *config) { c.eofLabel = label }
}
