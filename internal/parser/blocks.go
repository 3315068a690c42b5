package parser

import (
	"github.com/roblox-aurora/cmd-ast/internal/ast"
	"github.com/roblox-aurora/cmd-ast/internal/token"
)

// parseBlockOrColonStatement parses an if/else branch, which is
// either a brace-delimited Block or a single statement introduced by
// ':' (spec §4.3 "Statement selection", IfStatement).
func (p *Parser) parseBlockOrColonStatement() ast.Node {
	t := p.cur.peek(0)
	switch {
	case t.Kind == token.Special && t.Value == "{":
		return p.parseBlock()
	case t.Kind == token.Special && t.Value == ":":
		p.cur.advance()
		blk := ast.NewBlock(false)
		stmt := p.parseStatement()
		if stmt != nil {
			blk.AddStatement(stmt)
		}
		blk.SetSpan(t.Start.Offset, p.cur.peek(0).Start.Offset)
		return blk
	default:
		return p.fail(nil, ErrUnexpectedToken, "expected '{' or ':' to start a statement body, got %s", t.Kind)
	}
}

// parseBlock parses a brace-delimited `{ ... }` scope.
func (p *Parser) parseBlock() *ast.Block {
	open := p.cur.advance() // '{'
	blk := ast.NewBlock(true)

	for {
		p.skipStatementSeparators()
		t := p.cur.peek(0)
		if t.Kind == token.EOF {
			inv := p.fail(blk, ErrUnclosedBlock, "unclosed block starting at %d", open.Start.Offset)
			blk.AddFlags(ast.NodeHasError)
			_ = inv
			break
		}
		if t.Kind == token.Special && t.Value == "}" {
			p.cur.advance()
			break
		}
		stmt := p.parseStatement()
		if stmt != nil {
			blk.AddStatement(stmt)
		}
	}

	blk.SetSpan(open.Start.Offset, p.cur.peek(0).Start.Offset)
	return blk
}

// parseIfStatement parses `if cond { ... } else ...` (spec §4.3,
// §8 scenario 6).
func (p *Parser) parseIfStatement() ast.Node {
	start := p.cur.advance() // 'if'
	cond := p.parseExpression(lowest)
	then := p.parseBlockOrColonStatement()

	ifStmt := ast.NewIfStatement(cond, then)

	if t := p.cur.peek(0); t.Kind == token.Keyword && t.Value == "else" {
		p.cur.advance()
		if next := p.cur.peek(0); next.Kind == token.Keyword && next.Value == "if" {
			ifStmt.SetElse(p.parseIfStatement())
		} else {
			ifStmt.SetElse(p.parseBlockOrColonStatement())
		}
	}

	ifStmt.SetSpan(start.Start.Offset, p.cur.peek(0).Start.Offset)
	return ifStmt
}

// parseForInStatement parses `for $id in expr { ... }` (spec §4.3).
func (p *Parser) parseForInStatement() ast.Node {
	start := p.cur.advance() // 'for'

	idTok := p.cur.peek(0)
	if idTok.Kind != token.Identifier {
		return p.fail(nil, ErrUnexpectedToken, "expected '$identifier' after 'for', got %s", idTok.Kind)
	}
	p.cur.advance()
	initializer := ast.NewIdentifier(idTok.Value)
	initializer.SetSpan(idTok.Start.Offset, idTok.End.Offset)

	inTok := p.cur.peek(0)
	if inTok.Kind != token.Keyword || inTok.Value != "in" {
		return p.fail(initializer, ErrUnexpectedToken, "expected 'in' in for-statement, got %s", inTok.Kind)
	}
	p.cur.advance()

	expr := p.parseExpression(lowest)

	bodyTok := p.cur.peek(0)
	if bodyTok.Kind != token.Special || bodyTok.Value != "{" {
		return p.fail(expr, ErrUnexpectedToken, "expected '{' to start for-loop body, got %s", bodyTok.Kind)
	}
	body := p.parseBlock()

	stmt := ast.NewForInStatement(initializer, expr, body)
	stmt.SetSpan(start.Start.Offset, p.cur.peek(0).Start.Offset)
	return stmt
}

// parseFunctionDeclaration parses `function name(params) { body }`.
func (p *Parser) parseFunctionDeclaration() ast.Node {
	start := p.cur.advance() // 'function'

	nameTok := p.cur.peek(0)
	if nameTok.Kind != token.Identifier {
		return p.fail(nil, ErrUnexpectedToken, "expected function name, got %s", nameTok.Kind)
	}
	p.cur.advance()
	name := ast.NewIdentifier(nameTok.Value)
	name.SetSpan(nameTok.Start.Offset, nameTok.End.Offset)
	name.AddFlags(flagsToAST(nameTok.Flags))

	if t := p.cur.peek(0); t.Kind != token.Special || t.Value != "(" {
		return p.fail(name, ErrUnexpectedToken, "expected '(' after function name, got %s", t.Kind)
	}
	p.cur.advance()

	var params []*ast.Parameter
	for {
		t := p.cur.peek(0)
		if t.Kind == token.Special && t.Value == ")" {
			p.cur.advance()
			break
		}
		if t.Kind == token.EOF {
			break
		}
		params = append(params, p.parseParameter())
		if t := p.cur.peek(0); t.Kind == token.Special && t.Value == "," {
			p.cur.advance()
		}
	}

	body := p.parseBlock()

	decl := ast.NewFunctionDeclaration(name, params, body)
	decl.SetSpan(start.Start.Offset, p.cur.peek(0).Start.Offset)
	return decl
}

func (p *Parser) parseParameter() *ast.Parameter {
	nameTok := p.cur.advance()
	name := ast.NewIdentifier(nameTok.Value)
	name.SetSpan(nameTok.Start.Offset, nameTok.End.Offset)

	var typeRef *ast.TypeReference
	if t := p.cur.peek(0); t.Kind == token.Special && t.Value == ":" {
		p.cur.advance()
		typeTok := p.cur.advance()
		typeName := ast.NewIdentifier(typeTok.Value)
		typeName.SetSpan(typeTok.Start.Offset, typeTok.End.Offset)
		typeRef = ast.NewTypeReference(typeName)
		typeRef.SetSpan(typeTok.Start.Offset, typeTok.End.Offset)
	}

	param := ast.NewParameter(name, typeRef)
	end := nameTok.End.Offset
	if typeRef != nil {
		if _, e, ok := typeRef.Span(); ok {
			end = e
		}
	}
	param.SetSpan(nameTok.Start.Offset, end)
	return param
}

// parseVariableStatement parses `$id = expr` (spec §4.3, §8 scenario 5).
func (p *Parser) parseVariableStatement() ast.Node {
	idTok := p.cur.advance()
	identifier := ast.NewIdentifier(idTok.Value)
	identifier.SetSpan(idTok.Start.Offset, idTok.End.Offset)

	p.cur.advance() // '='

	expr := p.parseExpression(lowest)

	decl := ast.NewVariableDeclaration(identifier, expr)
	decl.SetSpan(idTok.Start.Offset, p.cur.peek(0).Start.Offset)

	stmt := ast.NewVariableStatement(decl)
	stmt.SetSpan(idTok.Start.Offset, p.cur.peek(0).Start.Offset)
	return stmt
}

func flagsToAST(f token.Flags) ast.Flags {
	// Token flags and AST flags are independent bitsets today; only
	// NodeHasError is shared conceptually, and nothing token-side maps
	// to it, so this is always NoFlags. Kept as a named conversion
	// point so a future shared flag gains one place to be wired in.
	return ast.NoFlags
}
