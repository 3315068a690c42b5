package parser

import (
	"fmt"

	"github.com/roblox-aurora/cmd-ast/internal/ast"
	"github.com/roblox-aurora/cmd-ast/internal/token"
)

// Error codes, mirroring the teacher's parser.ErrXxx constants
// (internal/parser/error.go) but scoped to the error kinds spec §7
// enumerates for Zirconium.
const (
	ErrUnterminatedString = "E_UNTERMINATED_STRING"
	// ErrInvalidVariableName is part of the error taxonomy but never
	// raised: scanVariable only fires when '$' is followed by an
	// identifier-start byte, so a lone/malformed '$' falls through to
	// scanLiteral and degrades to an ordinary bareword String instead
	// of reaching any parser production that could flag it.
	ErrInvalidVariableName   = "E_INVALID_VARIABLE_NAME"
	ErrUnexpectedToken       = "E_UNEXPECTED_TOKEN"
	ErrMissingExpression     = "E_MISSING_EXPRESSION"
	ErrUnclosedBlock         = "E_UNCLOSED_BLOCK"
	ErrUnclosedBracket       = "E_UNCLOSED_BRACKET"
	ErrUnclosedParen         = "E_UNCLOSED_PAREN"
	ErrInvalidPropertyAccess = "E_INVALID_PROPERTY_ACCESS"
)

// fail records a NodeError and wraps best-effort into an Invalid node,
// which is what every parser production returns instead of a Go error
// (spec §4.3 "Error recovery", §7 propagation policy).
func (p *Parser) fail(partial ast.Node, code, format string, args ...any) *ast.Invalid {
	msg := fmt.Sprintf("%s: %s", code, fmt.Sprintf(format, args...))
	inv := ast.NewInvalid(partial, msg)
	p.stampSpanFromCursor(inv)
	p.errors = append(p.errors, &ast.NodeError{Node: inv, Message: msg})
	return inv
}

// synchronize advances past tokens until it finds a safe resumption
// point: EndOfStatement, a closing `}`, `)` or `]`, or EOF (spec §4.3,
// §7). It stops at the first closer it meets without checking which
// opener that closer belongs to.
func (p *Parser) synchronize() {
	for {
		t := p.cur.peek(0)
		switch t.Kind {
		case token.EOF, token.EndOfStatement:
			return
		case token.Special:
			if t.Value == "}" || t.Value == ")" || t.Value == "]" {
				return
			}
		}
		p.cur.advance()
	}
}
