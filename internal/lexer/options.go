package lexer

// Options configures a Lexer. The zero value discards comments and
// whitespace, matching the default described in spec §4.2.
type Options struct {
	// ParseCommentsAsTokens emits Comment tokens instead of discarding
	// `#...\n` runs.
	ParseCommentsAsTokens bool

	// ParseWhitespaceAsTokens emits Whitespace tokens for runs of
	// spaces/tabs (never newlines, which are always EndOfStatement).
	ParseWhitespaceAsTokens bool

	// CommandNames is reserved for host integrations. Per spec §9 open
	// questions, it has no effect on tokenisation in the core; it is
	// carried here only so callers can round-trip the field.
	CommandNames map[string]bool

	// Trace enables fortio.org/log debug tracing of the scan loop.
	Trace bool
}

// Option mutates an Options value during lexer construction.
type Option func(*Options)

// WithComments toggles ParseCommentsAsTokens.
func WithComments(enabled bool) Option {
	return func(o *Options) { o.ParseCommentsAsTokens = enabled }
}

// WithWhitespace toggles ParseWhitespaceAsTokens.
func WithWhitespace(enabled bool) Option {
	return func(o *Options) { o.ParseWhitespaceAsTokens = enabled }
}

// WithCommandNames installs the reserved-identifier set for host
// integrations (see Options.CommandNames).
func WithCommandNames(names map[string]bool) Option {
	return func(o *Options) { o.CommandNames = names }
}

// WithTracing enables fortio.org/log debug tracing of the lexer scan.
func WithTracing(enabled bool) Option {
	return func(o *Options) { o.Trace = enabled }
}
