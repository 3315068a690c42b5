package parser

import (
	"github.com/roblox-aurora/cmd-ast/internal/ast"
	"github.com/roblox-aurora/cmd-ast/internal/lexer"
	"github.com/roblox-aurora/cmd-ast/internal/token"
)

// lowest is the minimum binding power parseExpression is ever called
// with; any infix operator with precedence > lowest gets consumed.
const lowest = 0

// parseExpression is the Pratt entry point: parse one prefix
// production, then fold in infix operators while their precedence
// exceeds minPrec (spec §4.3 "Expression-mode parsing").
func (p *Parser) parseExpression(minPrec int) ast.Node {
	left := p.parsePrefix()

	for {
		t := p.cur.peek(0)
		if t.Kind != token.Operator {
			break
		}
		prec, ok := lexer.OperatorPrecedence[t.Value]
		if !ok || prec <= minPrec {
			break
		}
		opTok := p.cur.advance()
		op := ast.NewOperatorToken(opTok.Value)
		op.SetSpan(opTok.Start.Offset, opTok.End.Offset)
		right := p.parseExpression(prec)
		bin := ast.NewBinaryExpression(left, op, right)
		bin.SetSpan(spanStart(left), spanEnd(right))
		left = bin
	}

	return left
}

func spanStart(n ast.Node) int {
	if s, _, ok := n.Span(); ok {
		return s
	}
	return 0
}

func spanEnd(n ast.Node) int {
	if _, e, ok := n.Span(); ok {
		return e
	}
	return 0
}

// parsePrefix parses one prefix production: literal, identifier,
// property access, parenthesised/array/object literal, unary `!`, or
// inner-expression.
func (p *Parser) parsePrefix() ast.Node {
	t := p.cur.peek(0)

	switch {
	case t.Kind == token.Operator && t.Value == "!":
		p.cur.advance()
		expr := p.parseExpression(lexer.OperatorPrecedence["!"])
		u := ast.NewUnaryExpression("!", expr)
		u.SetSpan(t.Start.Offset, spanEnd(expr))
		return u

	case t.Kind == token.Number:
		p.cur.advance()
		n := ast.NewNumberLit(t.NumberValue, t.Raw)
		n.SetSpan(t.Start.Offset, t.End.Offset)
		return n

	case t.Kind == token.Boolean:
		p.cur.advance()
		b := ast.NewBooleanLit(t.BoolValue)
		b.SetSpan(t.Start.Offset, t.End.Offset)
		return b

	case t.Kind == token.String && t.Value == "$" && adjacent(t, p.cur.peek(1)) && p.cur.peek(1).Kind == token.Special && p.cur.peek(1).Value == "(":
		return p.parseDollarParen()

	case t.Kind == token.String:
		p.cur.advance()
		s := ast.NewStringLit(t.Value, byte(t.Quotes), !t.Closed)
		s.SetSpan(t.Start.Offset, t.End.Offset)
		return s

	case t.Kind == token.InterpolatedString:
		p.cur.advance()
		return p.buildInterpolatedString(t)

	case t.Kind == token.Identifier:
		p.cur.advance()
		id := ast.NewIdentifier(t.Value)
		id.SetSpan(t.Start.Offset, t.End.Offset)
		return p.parsePropertyAccessChain(id, t.End.Offset)

	case t.Kind == token.PropertyAccess:
		p.cur.advance()
		id := ast.NewIdentifier(t.Value)
		id.SetSpan(t.Start.Offset, t.Start.Offset+len(t.Value))
		var expr ast.Node = id
		for _, prop := range t.Properties {
			name := ast.NewIdentifier(prop)
			name.SetSpan(t.End.Offset, t.End.Offset)
			expr = ast.NewPropertyAccessExpression(expr, name)
			expr.SetSpan(t.Start.Offset, t.End.Offset)
		}
		return p.parsePropertyAccessChain(expr, t.End.Offset)

	case t.Kind == token.Special && t.Value == "(":
		return p.parseParenthesized()

	case t.Kind == token.Special && t.Value == "[":
		return p.parseArrayLiteral()

	case t.Kind == token.Special && t.Value == "{":
		return p.parseObjectLiteral()

	default:
		p.cur.advance()
		return p.fail(nil, ErrMissingExpression, "unexpected token %s in expression", t.Kind)
	}
}

// parsePropertyAccessChain extends a base expression with any
// following `.name` or `[index]` suffixes. PropertyAccess tokens
// already fold their dotted tail at the lexer level; this additionally
// supports a `.name` chain arriving as an Identifier followed by
// Special "." tokens, and `[index]` subscripting (spec §3.2).
func (p *Parser) parsePropertyAccessChain(base ast.Node, endOffset int) ast.Node {
	expr := base
	for {
		t := p.cur.peek(0)
		switch {
		case t.Kind == token.Special && t.Value == ".":
			p.cur.advance()
			nameTok := p.cur.peek(0)
			if nameTok.Kind != token.Identifier && nameTok.Kind != token.String {
				return p.fail(expr, ErrInvalidPropertyAccess,
					"'.' not followed by an identifier, got %s", nameTok.Kind)
			}
			p.cur.advance()
			name := ast.NewIdentifier(nameTok.Value)
			name.SetSpan(nameTok.Start.Offset, nameTok.End.Offset)
			expr = ast.NewPropertyAccessExpression(expr, name)
			expr.SetSpan(spanStart(base), nameTok.End.Offset)
			endOffset = nameTok.End.Offset
		case t.Kind == token.Special && t.Value == "[":
			p.cur.advance()
			idxTok := p.cur.peek(0)
			if idxTok.Kind != token.Number {
				return p.fail(expr, ErrInvalidPropertyAccess,
					"'[' index must be a number, got %s", idxTok.Kind)
			}
			p.cur.advance()
			idx := ast.NewNumberLit(idxTok.NumberValue, idxTok.Raw)
			idx.SetSpan(idxTok.Start.Offset, idxTok.End.Offset)
			closeTok := p.cur.peek(0)
			if closeTok.Kind == token.Special && closeTok.Value == "]" {
				p.cur.advance()
				endOffset = closeTok.End.Offset
			} else {
				endOffset = idxTok.End.Offset
			}
			expr = ast.NewArrayIndexExpression(expr, idx)
			expr.SetSpan(spanStart(base), endOffset)
		default:
			return expr
		}
	}
}

func (p *Parser) buildInterpolatedString(t *token.Token) ast.Node {
	var values []ast.Node
	for i := 0; i < len(t.Values) || i < len(t.Variables); i++ {
		if i < len(t.Values) {
			s := ast.NewStringLit(t.Values[i], byte(t.Quotes), false)
			s.SetSpan(t.Start.Offset, t.End.Offset)
			values = append(values, s)
		}
		if i < len(t.Variables) {
			id := ast.NewIdentifier(t.Variables[i])
			id.SetSpan(t.Start.Offset, t.End.Offset)
			values = append(values, id)
		}
	}
	n := ast.NewInterpolatedString(values)
	n.SetSpan(t.Start.Offset, t.End.Offset)
	return n
}

func (p *Parser) parseParenthesized() ast.Node {
	open := p.cur.advance() // '('
	p.pushCtx(ctxParens)
	inner := p.parseExpression(lowest)
	p.popCtx()

	end := open.End.Offset
	if t := p.cur.peek(0); t.Kind == token.Special && t.Value == ")" {
		p.cur.advance()
		end = t.End.Offset
	} else {
		p.fail(inner, ErrUnclosedParen, "unclosed '(' starting at %d", open.Start.Offset)
	}

	n := ast.NewParenthesizedExpression(inner)
	n.SetSpan(open.Start.Offset, end)
	return n
}

func (p *Parser) parseArrayLiteral() ast.Node {
	open := p.cur.advance() // '['
	p.pushCtx(ctxArray)
	var values []ast.Node
	for {
		t := p.cur.peek(0)
		if t.Kind == token.Special && t.Value == "]" {
			p.cur.advance()
			break
		}
		if t.Kind == token.EOF {
			p.fail(nil, ErrUnclosedBracket, "unclosed '[' starting at %d", open.Start.Offset)
			break
		}
		values = append(values, p.parseExpression(lowest))
		if t := p.cur.peek(0); t.Kind == token.Special && t.Value == "," {
			p.cur.advance()
		}
	}
	p.popCtx()

	n := ast.NewArrayLiteral(values)
	n.SetSpan(open.Start.Offset, p.cur.peek(0).Start.Offset)
	return n
}

func (p *Parser) parseObjectLiteral() ast.Node {
	open := p.cur.advance() // '{'
	p.pushCtx(ctxObject)
	var props []*ast.PropertyAssignment
	for {
		t := p.cur.peek(0)
		if t.Kind == token.Special && t.Value == "}" {
			p.cur.advance()
			break
		}
		if t.Kind == token.EOF {
			p.fail(nil, ErrUnclosedBlock, "unclosed '{' starting at %d", open.Start.Offset)
			break
		}
		nameTok := p.cur.advance()
		var name ast.Node
		if nameTok.Kind == token.String {
			s := ast.NewStringLit(nameTok.Value, byte(nameTok.Quotes), !nameTok.Closed)
			s.SetSpan(nameTok.Start.Offset, nameTok.End.Offset)
			name = s
		} else {
			id := ast.NewIdentifier(nameTok.Value)
			id.SetSpan(nameTok.Start.Offset, nameTok.End.Offset)
			name = id
		}
		if t := p.cur.peek(0); t.Kind == token.Special && t.Value == ":" {
			p.cur.advance()
		}
		value := p.parseExpression(lowest)
		prop := ast.NewPropertyAssignment(name, value)
		prop.SetSpan(nameTok.Start.Offset, spanEnd(value))
		props = append(props, prop)
		if t := p.cur.peek(0); t.Kind == token.Special && t.Value == "," {
			p.cur.advance()
		}
	}
	p.popCtx()

	n := ast.NewObjectLiteral(props)
	n.SetSpan(open.Start.Offset, p.cur.peek(0).Start.Offset)
	return n
}

// parseDollarParen parses the `$( ... )` inner-expression form. `$`
// alone isn't a variable sigil to the lexer (scanVariable only fires
// when `$` is followed by an identifier-start byte), so a lone `$`
// scans as a one-character String bareword; this production fires
// when that bareword sits directly against a following `(`.
func (p *Parser) parseDollarParen() ast.Node {
	dollar := p.cur.advance() // "$" bareword
	open := p.cur.advance()   // '('

	p.pushCtx(ctxCall)
	body := p.parseInnerExpressionBody()
	p.popCtx()

	end := open.End.Offset
	if t := p.cur.peek(0); t.Kind == token.Special && t.Value == ")" {
		p.cur.advance()
		end = t.End.Offset
	} else {
		p.fail(body, ErrUnclosedParen, "unclosed '$(' starting at %d", dollar.Start.Offset)
	}

	n := ast.NewInnerExpression(body, false)
	n.SetSpan(dollar.Start.Offset, end)
	return n
}

// parseInnerExpressionBody parses the statement-shaped contents of a
// `$( ... )` form: a variable statement, a command pipeline, or
// (falling back) a bare expression.
func (p *Parser) parseInnerExpressionBody() ast.Node {
	t := p.cur.peek(0)
	if t.Kind == token.Identifier && p.cur.peek(1).Kind == token.Operator && p.cur.peek(1).Value == "=" {
		return p.parseVariableStatement()
	}
	if t.Kind == token.String {
		return p.parseCommandPipeline()
	}
	return p.parseExpression(lowest)
}
