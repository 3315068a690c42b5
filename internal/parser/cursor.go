package parser

import (
	"github.com/roblox-aurora/cmd-ast/internal/lexer"
	"github.com/roblox-aurora/cmd-ast/internal/token"
)

// tokenCursor gives the parser arbitrary-depth lookahead over a
// lexer's otherwise one-token-lookahead pull interface, by buffering
// tokens pulled from the lexer until consumed. Mirrors the teacher's
// internal/parser/cursor.go role without the parser needing to know
// about the lexer's own internal peek buffer.
type tokenCursor struct {
	l   *lexer.Lexer
	buf []*token.Token
}

func newTokenCursor(l *lexer.Lexer) *tokenCursor {
	return &tokenCursor{l: l}
}

// fill ensures at least n+1 tokens are buffered (so peek(n) is valid).
// Whitespace/Comment tokens are lexer-level conveniences for tooling
// that walks the raw token stream (e.g. `zr lex`); the grammar itself
// has no production for them, so the cursor always skips them
// regardless of which LexerOptions produced the stream.
func (c *tokenCursor) fill(n int) {
	for len(c.buf) <= n {
		t := c.l.Next()
		if t.Kind == token.Whitespace || t.Kind == token.Comment {
			continue
		}
		c.buf = append(c.buf, t)
	}
}

// peek returns the token n positions ahead of the cursor (peek(0) is
// the next token to be consumed by advance()).
func (c *tokenCursor) peek(n int) *token.Token {
	c.fill(n)
	return c.buf[n]
}

// advance consumes and returns the next token.
func (c *tokenCursor) advance() *token.Token {
	c.fill(0)
	t := c.buf[0]
	c.buf = c.buf[1:]
	return t
}

// adjacent reports whether b starts exactly where a ends, i.e. there
// is no whitespace or comment between them in the source.
func adjacent(a, b *token.Token) bool {
	return a != nil && b != nil && a.End.Offset == b.Start.Offset
}
