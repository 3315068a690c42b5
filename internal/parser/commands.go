package parser

import (
	"github.com/roblox-aurora/cmd-ast/internal/ast"
	"github.com/roblox-aurora/cmd-ast/internal/lexer"
	"github.com/roblox-aurora/cmd-ast/internal/token"
)

// commandBoundaryOps are the operators that end a command's argument
// list and become pipeline/logical fold points rather than arguments
// (spec §4.3 "Command-mode parsing").
var commandBoundaryOps = map[string]bool{"|": true, "&&": true, "||": true}

// sigilPrefixOps are the single-character Operator values that, when
// directly adjacent to a value-producing token in an argument slot,
// form a PrefixExpression rather than an operator fold (spec §6, §GLOSSARY
// "Prefix expression").
var sigilPrefixOps = map[string]bool{
	"~": true, "@": true, "%": true, "^": true, "*": true, "!": true,
}

// parseCommandPipeline parses one CommandStatement, then folds any
// trailing `|`, `&&`, `||` operators into BinaryExpressions by
// precedence climbing, matching the Pratt fold used for expressions
// but applied at command-statement boundaries (spec §4.3).
func (p *Parser) parseCommandPipeline() ast.Node {
	return p.parseCommandFold(lowest)
}

func (p *Parser) parseCommandFold(minPrec int) ast.Node {
	left := p.parseSingleCommandStatement()

	for {
		t := p.cur.peek(0)
		if t.Kind != token.Operator || !commandBoundaryOps[t.Value] {
			break
		}
		prec, ok := lexer.OperatorPrecedence[t.Value]
		if !ok || prec <= minPrec {
			break
		}
		opTok := p.cur.advance()
		op := ast.NewOperatorToken(opTok.Value)
		op.SetSpan(opTok.Start.Offset, opTok.End.Offset)
		right := p.parseCommandFold(prec)
		bin := ast.NewBinaryExpression(left, op, right)
		bin.SetSpan(spanStart(left), spanEnd(right))
		left = bin
	}

	return left
}

// parseSingleCommandStatement parses one bareword command name and
// its argument list, stopping at EndOfStatement, a pipeline/logical
// operator, or a closing brace/paren/bracket (spec §4.3).
func (p *Parser) parseSingleCommandStatement() ast.Node {
	nameTok := p.cur.peek(0)
	if nameTok.Kind != token.String {
		inv := p.fail(nil, ErrUnexpectedToken, "expected a command name, got %s", nameTok.Kind)
		p.synchronize()
		return inv
	}
	p.cur.advance()

	nameLit := ast.NewStringLit(nameTok.Value, byte(nameTok.Quotes), !nameTok.Closed)
	nameLit.SetSpan(nameTok.Start.Offset, nameTok.End.Offset)
	cmdName := ast.NewCommandName(nameLit)
	cmdName.SetSpan(nameTok.Start.Offset, nameTok.End.Offset)

	cmd := ast.NewCommandStatement(cmdName)

	if nameTok.Flags.Has(token.UnterminatedString) {
		return p.fail(cmd, ErrUnterminatedString, "unterminated string literal starting at %d", nameTok.Start.Offset)
	}

	p.pushCtx(ctxCommand)

	for !p.atCommandBoundary() {
		t := p.cur.peek(0)
		if t.Kind == token.Operator && t.Value == "-" && adjacent(t, p.cur.peek(1)) &&
			p.cur.peek(1).Kind == token.String && isLetterRun(p.cur.peek(1).Value) {
			for _, key := range p.parseShortOptionCluster() {
				cmd.AddArg(key)
			}
			continue
		}
		arg := p.parseCommandArgument()
		if arg == nil {
			break
		}
		cmd.AddArg(arg)
	}

	p.popCtx()
	cmd.SetSpan(nameTok.Start.Offset, p.cur.peek(0).Start.Offset)
	return cmd
}

func (p *Parser) atCommandBoundary() bool {
	t := p.cur.peek(0)
	switch t.Kind {
	case token.EOF, token.EndOfStatement:
		return true
	case token.Operator:
		return commandBoundaryOps[t.Value]
	case token.Special:
		return t.Value == "}" || t.Value == ")" || t.Value == "]" || t.Value == ","
	}
	return false
}

// parseCommandArgument parses one CommandStatement argument: a long
// option, a sigil prefix expression, a literal, an interpolated
// string, an array literal, or an inner expression (spec §4.3
// "Command-mode parsing"). Single-dash flag clusters are split by
// parseSingleCommandStatement before this is reached.
func (p *Parser) parseCommandArgument() ast.Node {
	t := p.cur.peek(0)

	switch {
	case t.Kind == token.Operator && sigilPrefixOps[t.Value] && adjacent(t, p.cur.peek(1)) &&
		isValueProducing(p.cur.peek(1)):
		return p.parsePrefixExpression()

	case t.Kind == token.Option:
		return p.parseLongOptionArgument()

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

	case t.Kind == token.Identifier:
		p.cur.advance()
		id := ast.NewIdentifier(t.Value)
		id.SetSpan(t.Start.Offset, t.End.Offset)
		return id

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
		return expr

	case t.Kind == token.InterpolatedString:
		p.cur.advance()
		return p.buildInterpolatedString(t)

	case t.Kind == token.String && t.Value == "$" && adjacent(t, p.cur.peek(1)) &&
		p.cur.peek(1).Kind == token.Special && p.cur.peek(1).Value == "(":
		return p.parseDollarParen()

	case t.Kind == token.String && adjacent(t, p.cur.peek(1)) &&
		p.cur.peek(1).Kind == token.Special && p.cur.peek(1).Value == "(":
		return p.parseExplicitCall()

	case t.Kind == token.String:
		p.cur.advance()
		s := ast.NewStringLit(t.Value, byte(t.Quotes), !t.Closed)
		s.SetSpan(t.Start.Offset, t.End.Offset)
		return s

	case t.Kind == token.Special && t.Value == "[":
		return p.parseArrayLiteral()

	default:
		p.cur.advance()
		inv := p.fail(nil, ErrUnexpectedToken, "unexpected token %s in command argument", t.Kind)
		p.synchronize()
		return inv
	}
}

// parseExplicitCall parses the explicit-call form `name(arg, arg)`
// into an InnerExpression wrapping a CommandStatement whose args are
// parsed as expressions rather than bareword command-mode arguments
// (spec §4.3 "Command-mode parsing", Inner expression).
func (p *Parser) parseExplicitCall() ast.Node {
	nameTok := p.cur.advance()
	open := p.cur.advance() // '('

	nameLit := ast.NewStringLit(nameTok.Value, byte(nameTok.Quotes), !nameTok.Closed)
	nameLit.SetSpan(nameTok.Start.Offset, nameTok.End.Offset)
	cmdName := ast.NewCommandName(nameLit)
	cmdName.SetSpan(nameTok.Start.Offset, nameTok.End.Offset)
	cmd := ast.NewCommandStatement(cmdName)

	p.pushCtx(ctxCall)
	for {
		t := p.cur.peek(0)
		if t.Kind == token.Special && t.Value == ")" {
			p.cur.advance()
			break
		}
		if t.Kind == token.EOF {
			p.fail(cmd, ErrUnclosedParen, "unclosed '(' starting at %d", open.Start.Offset)
			break
		}
		cmd.AddArg(p.parseExpression(lowest))
		if t := p.cur.peek(0); t.Kind == token.Special && t.Value == "," {
			p.cur.advance()
		}
	}
	p.popCtx()

	cmd.SetSpan(nameTok.Start.Offset, p.cur.peek(0).Start.Offset)
	n := ast.NewInnerExpression(cmd, true)
	n.SetSpan(nameTok.Start.Offset, spanEnd(cmd))
	return n
}

// parsePrefixExpression parses a sigil (`~ @ % ^ * !`) immediately
// preceding a literal in a command argument slot into a
// PrefixExpression (spec §3.2, §6, §GLOSSARY "Prefix expression").
func (p *Parser) parsePrefixExpression() ast.Node {
	sigilTok := p.cur.advance()
	prefix := ast.NewPrefixToken(sigilTok.Value)
	prefix.SetSpan(sigilTok.Start.Offset, sigilTok.End.Offset)

	expr := p.parseCommandArgument()
	n := ast.NewPrefixExpression(prefix, expr)
	n.SetSpan(sigilTok.Start.Offset, spanEnd(expr))
	return n
}

// isLetterRun reports whether s is a run of ASCII letters (and
// nothing else), as a single-dash flag cluster requires.
func isLetterRun(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

// isValueProducing reports whether t's kind can open a value
// expression for an adjacent long option (spec §4.3's "adjacent to a
// value-producing token" test).
func isValueProducing(t *token.Token) bool {
	switch t.Kind {
	case token.String, token.Number, token.Boolean, token.Identifier,
		token.PropertyAccess, token.InterpolatedString:
		return true
	case token.Special:
		return t.Value == "["
	}
	return false
}

// parseLongOptionArgument parses a `--flag` token, reducing to an
// OptionExpression when the next token can produce a value (spec §4.3
// scenario 2), or a bare OptionExpression with no Expression when it
// cannot.
func (p *Parser) parseLongOptionArgument() ast.Node {
	optTok := p.cur.advance()
	key := ast.NewOptionKey(optTok.Value)
	key.SetSpan(optTok.Start.Offset, optTok.End.Offset)

	if next := p.cur.peek(0); isValueProducing(next) && !p.atCommandBoundary() {
		value := p.parseCommandArgument()
		expr := ast.NewOptionExpression(key, value)
		expr.SetSpan(optTok.Start.Offset, spanEnd(value))
		return expr
	}

	expr := ast.NewOptionExpression(key, nil)
	expr.SetSpan(optTok.Start.Offset, optTok.End.Offset)
	return expr
}

// parseShortOptionCluster splits a `-kEwL` run into one OptionKey per
// letter, each becoming a direct CommandStatement argument (spec §4.3
// scenario 3, §8 testable property: "value.len() == 1").
func (p *Parser) parseShortOptionCluster() []ast.Node {
	p.cur.advance()             // '-'
	letters := p.cur.advance() // the letter run

	keys := make([]ast.Node, len(letters.Value))
	offset := letters.Start.Offset
	for i := 0; i < len(letters.Value); i++ {
		key := ast.NewOptionKey(string(letters.Value[i]))
		key.SetSpan(offset+i, offset+i+1)
		keys[i] = key
	}
	return keys
}
