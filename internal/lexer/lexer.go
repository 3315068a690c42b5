// Package lexer implements the Zirconium scanner: a pull-iterator of
// Token values over a TextStream, dispatching on context-sensitive
// leading characters per spec §4.2.
package lexer

import (
	"fortio.org/log"

	"github.com/roblox-aurora/cmd-ast/internal/token"
)

// Lexer consumes a TextStream and produces a lazy sequence of tokens
// with one-token lookahead. It never aborts on malformed input: every
// failure mode surfaces as a flag on the emitted token, never as a Go
// error (spec §4.2 Failure semantics).
type Lexer struct {
	stream  *TextStream
	opts    Options
	history []*token.Token
	peeked  *token.Token
}

// New returns a Lexer over source configured by the given options.
func New(source string, opts ...Option) *Lexer {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}
	return &Lexer{stream: NewTextStream(source), opts: o}
}

// HasNext reports whether a non-EOF token remains to be read.
func (l *Lexer) HasNext() bool {
	return l.Peek().Kind != token.EOF
}

// Peek returns, without consuming, the next token the lexer would
// produce.
func (l *Lexer) Peek() *token.Token {
	if l.peeked == nil {
		l.peeked = l.scan()
		if l.opts.Trace {
			log.Debugf("lexer: %s", l.peeked)
		}
	}
	return l.peeked
}

// Next consumes and returns the next token.
func (l *Lexer) Next() *token.Token {
	t := l.Peek()
	l.peeked = nil
	l.history = append(l.history, t)
	return t
}

// Prev returns the offset-th most recently emitted token (offset=1 is
// the token immediately before the current lookahead), or nil if no
// such token has been emitted yet.
func (l *Lexer) Prev(offset int) *token.Token {
	if offset <= 0 {
		offset = 1
	}
	i := len(l.history) - offset
	if i < 0 || i >= len(l.history) {
		return nil
	}
	return l.history[i]
}

// PrevSkipWhitespace is like Prev but counts only non-Whitespace,
// non-Comment tokens.
func (l *Lexer) PrevSkipWhitespace(offset int) *token.Token {
	if offset <= 0 {
		offset = 1
	}
	seen := 0
	for i := len(l.history) - 1; i >= 0; i-- {
		t := l.history[i]
		if t.Kind == token.Whitespace || t.Kind == token.Comment {
			continue
		}
		seen++
		if seen == offset {
			return t
		}
	}
	return nil
}

// IsNextOfKind reports whether Peek().Kind == k.
func (l *Lexer) IsNextOfKind(k token.Kind) bool { return l.Peek().Kind == k }

// IsNextOfAnyKind reports whether Peek().Kind is any of ks.
func (l *Lexer) IsNextOfAnyKind(ks ...token.Kind) bool {
	cur := l.Peek().Kind
	for _, k := range ks {
		if cur == k {
			return true
		}
	}
	return false
}

// lastNonWhitespace finds the most recent emitted token that is not a
// Whitespace/Comment token, used by the Label and colon retrofit.
func (l *Lexer) lastNonWhitespace() *token.Token {
	for i := len(l.history) - 1; i >= 0; i-- {
		t := l.history[i]
		if t.Kind != token.Whitespace && t.Kind != token.Comment {
			return t
		}
	}
	return nil
}

// scan drives one full token production, silently swallowing
// discarded whitespace/comments and line continuations until it has a
// token to hand back (or has consumed the whole source).
func (l *Lexer) scan() *token.Token {
	for {
		l.skipDiscardedWhitespace()

		if l.consumeLineContinuation() {
			continue
		}

		if ws := l.maybeEmitWhitespace(); ws != nil {
			return ws
		}

		if !l.stream.HasNext() {
			p := token.Position{Offset: l.stream.GetPtr()}
			return &token.Token{Kind: token.EOF, Start: p, End: p}
		}

		c := l.stream.Peek(0)

		switch {
		case c == '#':
			t := l.scanComment()
			if l.opts.ParseCommentsAsTokens {
				return t
			}
			continue
		case c == '$':
			if isIdentStart(l.stream.Peek(1)) {
				return l.scanVariable()
			}
		case c == '"' || c == '\'':
			return l.scanString()
		case c == '-' && l.stream.Peek(1) == '-':
			return l.scanLongOption()
		case isDigit(c):
			return l.scanNumber()
		}

		switch {
		case operatorChars[c]:
			return l.scanOperatorRun()
		case endOfStatementChars[c]:
			return l.scanEndOfStatement()
		case punctuationChars[c]:
			return l.scanPunctuation()
		case prefixOnlyChars[c]:
			return l.scanPrefixChar()
		default:
			return l.scanLiteral()
		}
	}
}

// skipDiscardedWhitespace consumes spaces/tabs/CR when
// ParseWhitespaceAsTokens is disabled. Newlines are never whitespace.
func (l *Lexer) skipDiscardedWhitespace() {
	if l.opts.ParseWhitespaceAsTokens {
		return
	}
	for isWhitespace(l.stream.Peek(0)) {
		l.stream.Next(1)
	}
}

// maybeEmitWhitespace, when ParseWhitespaceAsTokens is enabled, reads
// a maximal run of spaces/tabs/CR into a Whitespace token.
func (l *Lexer) maybeEmitWhitespace() *token.Token {
	if !l.opts.ParseWhitespaceAsTokens || !isWhitespace(l.stream.Peek(0)) {
		return nil
	}
	start := token.Position{Offset: l.stream.GetPtr()}
	var buf []byte
	for isWhitespace(l.stream.Peek(0)) {
		buf = append(buf, l.stream.Next(1))
	}
	end := token.Position{Offset: l.stream.GetPtr()}
	return &token.Token{Kind: token.Whitespace, Value: string(buf), Start: start, End: end}
}

// consumeLineContinuation consumes a `\` immediately followed by `\n`
// without producing any token, per spec §4.3 "Line continuation".
func (l *Lexer) consumeLineContinuation() bool {
	if l.stream.Peek(0) == '\\' && l.stream.Peek(1) == '\n' {
		l.stream.Next(1)
		l.stream.Next(1)
		return true
	}
	return false
}

func (l *Lexer) scanComment() *token.Token {
	start := token.Position{Offset: l.stream.GetPtr()}
	var buf []byte
	for l.stream.HasNext() && l.stream.Peek(0) != '\n' {
		buf = append(buf, l.stream.Next(1))
	}
	end := token.Position{Offset: l.stream.GetPtr()}
	return &token.Token{Kind: token.Comment, Value: string(buf), Start: start, End: end}
}

func (l *Lexer) scanVariable() *token.Token {
	start := token.Position{Offset: l.stream.GetPtr()}
	l.stream.Next(1) // '$'
	name := l.readIdent()

	var props []string
	for l.stream.Peek(0) == '.' && isIdentStart(l.stream.Peek(1)) {
		l.stream.Next(1) // '.'
		props = append(props, l.readIdent())
	}

	end := token.Position{Offset: l.stream.GetPtr()}
	if len(props) > 0 {
		return &token.Token{Kind: token.PropertyAccess, Value: name, Properties: props, Start: start, End: end}
	}
	return &token.Token{Kind: token.Identifier, Value: name, Start: start, End: end}
}

func (l *Lexer) readIdent() string {
	var buf []byte
	for isIdentPart(l.stream.Peek(0)) {
		buf = append(buf, l.stream.Next(1))
	}
	return string(buf)
}

func (l *Lexer) scanString() *token.Token {
	start := token.Position{Offset: l.stream.GetPtr()}
	quote := l.stream.Next(1) // opening quote

	var values []string
	var variables []string
	var text []byte
	closed := false

	for l.stream.HasNext() {
		c := l.stream.Peek(0)
		if c == quote {
			l.stream.Next(1)
			closed = true
			break
		}
		if c == '\\' && l.stream.Peek(1) != 0 {
			l.stream.Next(1)
			text = append(text, l.stream.Next(1))
			continue
		}
		if c == '$' && isIdentStart(l.stream.Peek(1)) {
			values = append(values, string(text))
			text = nil
			l.stream.Next(1) // '$'
			variables = append(variables, l.readIdent())
			continue
		}
		text = append(text, l.stream.Next(1))
	}

	end := token.Position{Offset: l.stream.GetPtr()}
	var flags token.Flags
	if !closed {
		flags |= token.UnterminatedString
	}

	q := token.Quote(quote)
	if len(variables) == 0 {
		return &token.Token{
			Kind: token.String, Value: string(text),
			Quotes: q, Closed: closed, Flags: flags,
			Start: start, End: end,
		}
	}

	if len(text) > 0 {
		values = append(values, string(text))
	}
	flags |= token.Interpolated
	return &token.Token{
		Kind: token.InterpolatedString, Values: values, Variables: variables,
		Quotes: q, Closed: closed, Flags: flags,
		Start: start, End: end,
	}
}

func (l *Lexer) scanLongOption() *token.Token {
	start := token.Position{Offset: l.stream.GetPtr()}
	l.stream.Next(1)
	l.stream.Next(1)
	var buf []byte
	for c := l.stream.Peek(0); isIdentPart(c) || c == '-'; c = l.stream.Peek(0) {
		buf = append(buf, l.stream.Next(1))
	}
	end := token.Position{Offset: l.stream.GetPtr()}
	return &token.Token{Kind: token.Option, Value: string(buf), Prefix: "--", Start: start, End: end}
}

func (l *Lexer) scanNumber() *token.Token {
	start := token.Position{Offset: l.stream.GetPtr()}
	var buf []byte
	for isDigit(l.stream.Peek(0)) {
		buf = append(buf, l.stream.Next(1))
	}
	if l.stream.Peek(0) == '.' && isDigit(l.stream.Peek(1)) {
		buf = append(buf, l.stream.Next(1))
		for isDigit(l.stream.Peek(0)) {
			buf = append(buf, l.stream.Next(1))
		}
	}
	end := token.Position{Offset: l.stream.GetPtr()}
	raw := string(buf)
	value := parseFloat(raw)
	return &token.Token{Kind: token.Number, NumberValue: value, Raw: raw, Value: raw, Start: start, End: end}
}

// scanPrefixChar emits a single-character Operator token for one of
// the sigil characters not already covered by scanOperatorRun (`~`,
// `@`, `%`, `^`). It never reads more than one byte: a prefix sigil is
// only ever one character wide (spec §6).
func (l *Lexer) scanPrefixChar() *token.Token {
	start := token.Position{Offset: l.stream.GetPtr()}
	c := l.stream.Next(1)
	end := token.Position{Offset: l.stream.GetPtr()}
	return &token.Token{Kind: token.Operator, Value: string(c), Start: start, End: end}
}

func (l *Lexer) scanOperatorRun() *token.Token {
	start := token.Position{Offset: l.stream.GetPtr()}
	var buf []byte
	for operatorChars[l.stream.Peek(0)] {
		buf = append(buf, l.stream.Next(1))
	}
	end := token.Position{Offset: l.stream.GetPtr()}
	return &token.Token{Kind: token.Operator, Value: string(buf), Start: start, End: end}
}

func (l *Lexer) scanEndOfStatement() *token.Token {
	start := token.Position{Offset: l.stream.GetPtr()}
	c := l.stream.Next(1)
	end := token.Position{Offset: l.stream.GetPtr()}
	return &token.Token{Kind: token.EndOfStatement, Value: string(c), Start: start, End: end}
}

// scanPunctuation emits a Special token for a single punctuation
// character, retroactively tagging the preceding token with the Label
// flag when the character is ':'.
func (l *Lexer) scanPunctuation() *token.Token {
	start := token.Position{Offset: l.stream.GetPtr()}
	c := l.stream.Next(1)
	end := token.Position{Offset: l.stream.GetPtr()}

	if c == ':' {
		if prev := l.lastNonWhitespace(); prev != nil {
			prev.Flags |= token.Label
		}
	}

	return &token.Token{Kind: token.Special, Value: string(c), Start: start, End: end}
}

func (l *Lexer) scanLiteral() *token.Token {
	start := token.Position{Offset: l.stream.GetPtr()}
	var buf []byte
	for !isLiteralTerminator(l.stream.Peek(0)) {
		buf = append(buf, l.stream.Next(1))
	}
	if len(buf) == 0 {
		// A stray character that matches nothing else (spec §4.2 rule 9
		// fallback); consume it as a single-byte bareword so the scan
		// always makes progress.
		buf = append(buf, l.stream.Next(1))
	}
	end := token.Position{Offset: l.stream.GetPtr()}
	text := string(buf)

	if token.Keywords[text] {
		return &token.Token{Kind: token.Keyword, Value: text, Start: start, End: end}
	}
	if token.Booleans[text] {
		return &token.Token{Kind: token.Boolean, Value: text, BoolValue: text == "true", Start: start, End: end}
	}

	var flags token.Flags
	if prev := l.PrevSkipWhitespace(1); prev != nil && prev.Kind == token.Keyword && prev.Value == "function" {
		flags |= token.FunctionName
		return &token.Token{Kind: token.Identifier, Value: text, Flags: flags, Start: start, End: end}
	}

	return &token.Token{Kind: token.String, Value: text, Quotes: token.NoQuote, Closed: true, Start: start, End: end}
}

// parseFloat converts a decimal-aware digit run into a float64. It
// never fails: spec's numeric grammar (§4.2 rule 5) guarantees raw
// consists only of digits and at most one '.', so any malformed
// leftover is simply treated as zero for that run.
func parseFloat(raw string) float64 {
	var intPart, fracPart float64
	var fracDiv float64 = 1
	seenDot := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '.' {
			seenDot = true
			continue
		}
		d := float64(c - '0')
		if seenDot {
			fracDiv *= 10
			fracPart = fracPart*10 + d
		} else {
			intPart = intPart*10 + d
		}
	}
	if fracDiv == 1 {
		return intPart
	}
	return intPart + fracPart/fracDiv
}
