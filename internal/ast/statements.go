package ast

import "fmt"

// Source is the AST root: the top-level sequence of statements a
// parse produces.
type Source struct {
	base
	Statements []Node
}

func NewSource() *Source {
	n := &Source{}
	n.kind = KindSource
	return n
}

// AddStatement appends a statement, wiring its parent back-link.
func (n *Source) AddStatement(s Node) {
	s.SetParent(n)
	n.Statements = append(n.Statements, s)
}

func (n *Source) Children() []Node { return n.Statements }
func (n *Source) String() string   { return fmt.Sprintf("Source(%d stmts)", len(n.Statements)) }

// Block is a brace-delimited scope, or the single-statement body of a
// `:`-led if/else clause.
type Block struct {
	base
	Statements []Node
	Braced     bool
}

func NewBlock(braced bool) *Block {
	n := &Block{Braced: braced}
	n.kind = KindBlock
	return n
}

func (n *Block) AddStatement(s Node) {
	s.SetParent(n)
	n.Statements = append(n.Statements, s)
}

func (n *Block) Children() []Node { return n.Statements }
func (n *Block) String() string   { return fmt.Sprintf("Block(%d stmts)", len(n.Statements)) }

// CommandName wraps the bareword naming a CommandStatement's command.
type CommandName struct {
	base
	Name *StringLit
}

func NewCommandName(name *StringLit) *CommandName {
	n := &CommandName{Name: name}
	n.kind = KindCommandName
	name.SetParent(n)
	return n
}

func (n *CommandName) Children() []Node { return []Node{n.Name} }
func (n *CommandName) String() string   { return fmt.Sprintf("CommandName(%s)", n.Name.Text) }

// CommandStatement is a shell-style invocation: a command name
// followed by positional arguments, options, and inner expressions.
type CommandStatement struct {
	base
	Command      *CommandName
	Args         []Node
	Unterminated bool
}

func NewCommandStatement(command *CommandName) *CommandStatement {
	n := &CommandStatement{Command: command}
	n.kind = KindCommandStatement
	command.SetParent(n)
	return n
}

func (n *CommandStatement) AddArg(a Node) {
	a.SetParent(n)
	n.Args = append(n.Args, a)
}

func (n *CommandStatement) Children() []Node {
	children := make([]Node, 0, len(n.Args)+1)
	children = append(children, n.Command)
	children = append(children, n.Args...)
	return children
}
func (n *CommandStatement) String() string {
	return fmt.Sprintf("CommandStatement(%s, %d args)", n.Command.Name.Text, len(n.Args))
}

// IfStatement is a conditional; ElseStatement may itself be another
// IfStatement, forming an else-if chain.
type IfStatement struct {
	base
	Condition Node
	Then      Node
	Else      Node
}

func NewIfStatement(condition, then Node) *IfStatement {
	n := &IfStatement{Condition: condition, Then: then}
	n.kind = KindIfStatement
	condition.SetParent(n)
	then.SetParent(n)
	return n
}

func (n *IfStatement) SetElse(e Node) {
	e.SetParent(n)
	n.Else = e
}

func (n *IfStatement) Children() []Node {
	children := []Node{n.Condition, n.Then}
	if n.Else != nil {
		children = append(children, n.Else)
	}
	return children
}
func (n *IfStatement) String() string { return "IfStatement" }

// ForInStatement iterates Expression, binding each element to
// Initializer for the duration of Statement.
type ForInStatement struct {
	base
	Initializer *Identifier
	Expression  Node
	Statement   *Block
}

func NewForInStatement(initializer *Identifier, expression Node, statement *Block) *ForInStatement {
	n := &ForInStatement{Initializer: initializer, Expression: expression, Statement: statement}
	n.kind = KindForInStatement
	initializer.SetParent(n)
	expression.SetParent(n)
	statement.SetParent(n)
	return n
}

func (n *ForInStatement) Children() []Node {
	return []Node{n.Initializer, n.Expression, n.Statement}
}
func (n *ForInStatement) String() string {
	return fmt.Sprintf("ForInStatement($%s)", n.Initializer.Name)
}

// TypeReference names a parameter's declared type.
type TypeReference struct {
	base
	TypeName *Identifier
}

func NewTypeReference(typeName *Identifier) *TypeReference {
	n := &TypeReference{TypeName: typeName}
	n.kind = KindTypeReference
	typeName.SetParent(n)
	return n
}

func (n *TypeReference) Children() []Node { return []Node{n.TypeName} }
func (n *TypeReference) String() string   { return fmt.Sprintf("TypeReference(%s)", n.TypeName.Name) }

// Parameter is one function-declaration parameter, optionally typed.
type Parameter struct {
	base
	Name *Identifier
	Type *TypeReference
}

func NewParameter(name *Identifier, typ *TypeReference) *Parameter {
	n := &Parameter{Name: name, Type: typ}
	n.kind = KindParameter
	name.SetParent(n)
	if typ != nil {
		typ.SetParent(n)
	}
	return n
}

func (n *Parameter) Children() []Node {
	if n.Type == nil {
		return []Node{n.Name}
	}
	return []Node{n.Name, n.Type}
}
func (n *Parameter) String() string { return fmt.Sprintf("Parameter(%s)", n.Name.Name) }

// FunctionDeclaration declares a named function with parameters and a
// block body.
type FunctionDeclaration struct {
	base
	Name       *Identifier
	Parameters []*Parameter
	Body       *Block
}

func NewFunctionDeclaration(name *Identifier, params []*Parameter, body *Block) *FunctionDeclaration {
	n := &FunctionDeclaration{Name: name, Parameters: params, Body: body}
	n.kind = KindFunctionDeclaration
	name.SetParent(n)
	for _, p := range params {
		p.SetParent(n)
	}
	body.SetParent(n)
	return n
}

func (n *FunctionDeclaration) Children() []Node {
	children := make([]Node, 0, len(n.Parameters)+2)
	children = append(children, n.Name)
	for _, p := range n.Parameters {
		children = append(children, p)
	}
	children = append(children, n.Body)
	return children
}
func (n *FunctionDeclaration) String() string {
	return fmt.Sprintf("FunctionDeclaration(%s, %d params)", n.Name.Name, len(n.Parameters))
}

// VariableDeclaration binds Identifier to the value of Expression.
type VariableDeclaration struct {
	base
	Identifier *Identifier
	Expression Node
}

func NewVariableDeclaration(identifier *Identifier, expression Node) *VariableDeclaration {
	n := &VariableDeclaration{Identifier: identifier, Expression: expression}
	n.kind = KindVariableDeclaration
	identifier.SetParent(n)
	expression.SetParent(n)
	return n
}

func (n *VariableDeclaration) Children() []Node {
	return []Node{n.Identifier, n.Expression}
}
func (n *VariableDeclaration) String() string {
	return fmt.Sprintf("VariableDeclaration($%s)", n.Identifier.Name)
}

// VariableStatement is a top-level `$x = expr` statement.
type VariableStatement struct {
	base
	Declaration *VariableDeclaration
}

func NewVariableStatement(decl *VariableDeclaration) *VariableStatement {
	n := &VariableStatement{Declaration: decl}
	n.kind = KindVariableStatement
	decl.SetParent(n)
	return n
}

func (n *VariableStatement) Children() []Node { return []Node{n.Declaration} }
func (n *VariableStatement) String() string   { return "VariableStatement" }

// PropertyAssignment is one `key: value` pair inside an ObjectLiteral.
type PropertyAssignment struct {
	base
	Name        Node // Identifier or StringLit
	Initializer Node
}

func NewPropertyAssignment(name, initializer Node) *PropertyAssignment {
	n := &PropertyAssignment{Name: name, Initializer: initializer}
	n.kind = KindPropertyAssignment
	name.SetParent(n)
	initializer.SetParent(n)
	return n
}

func (n *PropertyAssignment) Children() []Node { return []Node{n.Name, n.Initializer} }
func (n *PropertyAssignment) String() string   { return "PropertyAssignment" }
