package fourth

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/jcorbin/fourth/internal/logio"
)

// Option configures an Evaluator under New.
type Option interface{ apply(e *Evaluator) }

var defaults = []Option{
	withLogger(zerolog.Nop()),
}

func (e *Evaluator) apply(opts ...Option) {
	for _, opt := range defaults {
		if opt != nil {
			opt.apply(e)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(e)
		}
	}
}

// WithLogger sends evaluation events to the given logger: a trace event per
// token, and a debug event for any failure.
func WithLogger(log zerolog.Logger) Option { return withLogger(log) }

// WithLogf sends evaluation events, at every level, through a printf-style
// function such as log.Printf or testing.T.Logf, one line per event.
func WithLogf(logf func(mess string, args ...interface{})) Option { return withLogfn(logf) }

// WithStack starts the evaluator with the given values, bottom first.
func WithStack(values ...Value) Option { return withStack(values) }

// WithWords seeds the user word table. Each name maps to the tokens it would
// stand for; see Evaluator.Word.
func WithWords(defs map[string][]string) Option { return withWords(defs) }

type loggerOption struct{ zerolog.Logger }
type withLogfn func(mess string, args ...interface{})
type withStack []Value
type withWords map[string][]string

func withLogger(log zerolog.Logger) loggerOption { return loggerOption{log} }

func (o loggerOption) apply(e *Evaluator) {
	e.log = o.Logger
}

func (logfn withLogfn) apply(e *Evaluator) {
	if logfn == nil {
		e.log = zerolog.Nop()
		return
	}
	out := zerolog.ConsoleWriter{
		Out:          &logio.Writer{Logf: logfn},
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	e.log = zerolog.New(out).Level(zerolog.TraceLevel)
}

func (values withStack) apply(e *Evaluator) {
	e.stack = append(e.stack, values...)
}

func (defs withWords) apply(e *Evaluator) {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		e.words.define(name, defs[name])
	}
}
