// Package parser implements the Zirconium parser: recursive-descent
// for statements, Pratt precedence for expressions, over the token
// stream internal/lexer produces (spec §4.3).
package parser

import (
	"github.com/roblox-aurora/cmd-ast/internal/ast"
	"github.com/roblox-aurora/cmd-ast/internal/lexer"
	"github.com/roblox-aurora/cmd-ast/internal/token"
)

// Parser holds the lexer handle, accumulated diagnostics, and the
// parse-context stack spec §4.3 describes.
type Parser struct {
	cur    *tokenCursor
	errors []*ast.NodeError
	ctx    []context
}

// context distinguishes command-mode from expression-mode parsing, and
// tracks the bracket/paren nesting the parser is inside, per spec
// §4.3's "stack of contexts".
type context int

const (
	ctxCommand context = iota
	ctxExpression
	ctxArray
	ctxObject
	ctxParens
	ctxCall
)

// New returns a Parser consuming tokens from l.
func New(l *lexer.Lexer) *Parser {
	return &Parser{cur: newTokenCursor(l)}
}

// Parse lexes and parses source into a Source root plus any
// accumulated diagnostics (spec §6 `parse(source, options?)`).
func Parse(source string, lexOpts ...lexer.Option) (*ast.Source, []*ast.NodeError) {
	l := lexer.New(source, lexOpts...)
	p := New(l)
	return p.ParseSource(), p.errors
}

// Errors exposes the diagnostics accumulated so far.
func (p *Parser) Errors() []*ast.NodeError { return p.errors }

func (p *Parser) pushCtx(c context) { p.ctx = append(p.ctx, c) }
func (p *Parser) popCtx() {
	if len(p.ctx) > 0 {
		p.ctx = p.ctx[:len(p.ctx)-1]
	}
}

// ParseSource reads statements until EOF. Each statement is terminated
// by EndOfStatement or the closing `}` of an enclosing block.
func (p *Parser) ParseSource() *ast.Source {
	src := ast.NewSource()
	for p.cur.peek(0).Kind != token.EOF {
		p.skipStatementSeparators()
		if p.cur.peek(0).Kind == token.EOF {
			break
		}
		stmt := p.parseStatement()
		if stmt != nil {
			src.AddStatement(stmt)
		}
		p.skipStatementSeparators()
	}
	return src
}

// skipStatementSeparators consumes any run of EndOfStatement tokens
// between statements (e.g. blank lines, stray semicolons).
func (p *Parser) skipStatementSeparators() {
	for p.cur.peek(0).Kind == token.EndOfStatement {
		p.cur.advance()
	}
}

// stampSpanFromCursor gives a synthesized node (e.g. an Invalid
// wrapper with no real extent) a zero-width span at the current
// cursor position, so every node callers inspect has *a* position.
func (p *Parser) stampSpanFromCursor(n ast.Node) {
	if _, _, ok := n.Span(); ok {
		return
	}
	at := p.cur.peek(0).Start.Offset
	n.SetSpan(at, at)
}

// spanFrom stamps n's span as running from startTok's start offset to
// endOffset. No production calls it; each one sets its span directly
// with SetSpan.
func spanFrom(n ast.Node, startTok *token.Token, endOffset int) {
	n.SetSpan(startTok.Start.Offset, endOffset)
}

// parseStatement dispatches per spec §4.3 "Statement selection".
func (p *Parser) parseStatement() ast.Node {
	t := p.cur.peek(0)

	switch {
	case t.Kind == token.Keyword && t.Value == "function":
		return p.parseFunctionDeclaration()
	case t.Kind == token.Keyword && t.Value == "if":
		return p.parseIfStatement()
	case t.Kind == token.Keyword && t.Value == "for":
		return p.parseForInStatement()
	case t.Kind == token.Special && t.Value == "{":
		return p.parseBlock()
	case t.Kind == token.Identifier && p.cur.peek(1).Kind == token.Operator && p.cur.peek(1).Value == "=":
		return p.parseVariableStatement()
	case t.Kind == token.Special && (t.Value == "}" || t.Value == ")" || t.Value == "]"):
		// A closer cannot start a statement; consume it so the caller's
		// statement loop always makes progress.
		p.cur.advance()
		return p.fail(nil, ErrUnexpectedToken, "unexpected '%s' at start of statement", t.Value)
	default:
		return p.parseCommandPipeline()
	}
}
