/*
File    : twig/parser/ast.go
*/
package parser

import "github.com/twiglang/twig/lexer"

// ExprVisitor and StmtVisitor implement the visitor pattern over the AST: one method per
// concrete node type, used by the evaluator, the resolver, and the
// pretty-printer (Print, in printer.go) to traverse the tree without
// each of those three needing its own type switch.
type ExprVisitor interface {
	VisitLiteral(e *Literal) (interface{}, error)
	VisitVariable(e *Variable) (interface{}, error)
	VisitAssign(e *Assign) (interface{}, error)
	VisitUnary(e *Unary) (interface{}, error)
	VisitBinary(e *Binary) (interface{}, error)
	VisitLogical(e *Logical) (interface{}, error)
	VisitGrouping(e *Grouping) (interface{}, error)
	VisitCall(e *Call) (interface{}, error)
	VisitLambda(e *Lambda) (interface{}, error)
}

type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitBlockStmt(s *BlockStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitWhileStmt(s *WhileStmt) error
	VisitFunctionStmt(s *FunctionStmt) error
	VisitReturnStmt(s *ReturnStmt) error
	VisitBreakStmt(s *BreakStmt) error
}

// Expr is any expression node. Accept dispatches to the matching
// ExprVisitor method. ID is a stable per-node identity assigned at
// parse time (newID, below) and read through ExprID, used by the
// resolver's side table — it
// exists precisely because two syntactically identical Variable nodes
// at different source positions must resolve to different distances
// (spec.md section 3, section 9).
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
	ExprID() int
}

// Stmt is any statement node.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// base carries the expression identity every Expr embeds.
type base struct{ id int }

func (b base) ExprID() int { return b.id }

var nextID = 0

func newID() int {
	nextID++
	return nextID
}

// Literal is a literal value: a number, string, boolean, or nil.
type Literal struct {
	base
	Value interface{} // float64, string, bool, or nil
}

func (e *Literal) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteral(e) }

// NewLiteral constructs a Literal with a fresh expression identity.
func NewLiteral(value interface{}) *Literal {
	return &Literal{base: base{id: newID()}, Value: value}
}

// Variable is a bare identifier used as an expression.
type Variable struct {
	base
	Name lexer.Token
}

func (e *Variable) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariable(e) }

// NewVariable constructs a Variable with a fresh expression identity.
func NewVariable(name lexer.Token) *Variable {
	return &Variable{base: base{id: newID()}, Name: name}
}

// Assign is `name = value`.
type Assign struct {
	base
	Name  lexer.Token
	Value Expr
}

func (e *Assign) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssign(e) }

// NewAssign constructs an Assign with a fresh expression identity.
func NewAssign(name lexer.Token, value Expr) *Assign {
	return &Assign{base: base{id: newID()}, Name: name, Value: value}
}

// Unary is a prefix operator applied to one operand: `-x`, `!x`.
type Unary struct {
	base
	Op      lexer.Token
	Operand Expr
}

func (e *Unary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnary(e) }

// NewUnary constructs a Unary with a fresh expression identity.
func NewUnary(op lexer.Token, operand Expr) *Unary {
	return &Unary{base: base{id: newID()}, Op: op, Operand: operand}
}

// Binary is an infix arithmetic/comparison operator.
type Binary struct {
	base
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (e *Binary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinary(e) }

// NewBinary constructs a Binary with a fresh expression identity.
func NewBinary(left Expr, op lexer.Token, right Expr) *Binary {
	return &Binary{base: base{id: newID()}, Left: left, Op: op, Right: right}
}

// Logical is `and`/`or`, which short-circuit (spec.md section 4.4) and
// so cannot share Binary's always-evaluate-both-operands evaluation.
type Logical struct {
	base
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (e *Logical) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogical(e) }

// NewLogical constructs a Logical with a fresh expression identity.
func NewLogical(left Expr, op lexer.Token, right Expr) *Logical {
	return &Logical{base: base{id: newID()}, Left: left, Op: op, Right: right}
}

// Grouping is a parenthesized expression, kept as its own node (rather
// than discarded at parse time) so the pretty-printer can round-trip
// explicit parentheses.
type Grouping struct {
	base
	Inner Expr
}

func (e *Grouping) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGrouping(e) }

// NewGrouping constructs a Grouping with a fresh expression identity.
func NewGrouping(inner Expr) *Grouping {
	return &Grouping{base: base{id: newID()}, Inner: inner}
}

// Call is `callee(args...)`. Paren is the closing ')' token, kept for
// diagnostics that need a line/location (e.g. Arity errors).
type Call struct {
	base
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

func (e *Call) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCall(e) }

// NewCall constructs a Call with a fresh expression identity.
func NewCall(callee Expr, paren lexer.Token, args []Expr) *Call {
	return &Call{base: base{id: newID()}, Callee: callee, Paren: paren, Args: args}
}

// Lambda is an anonymous function expression: `fun(params) { body }`.
type Lambda struct {
	base
	Params []lexer.Token
	Body   []Stmt
}

func (e *Lambda) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLambda(e) }

// NewLambda constructs a Lambda with a fresh expression identity.
func NewLambda(params []lexer.Token, body []Stmt) *Lambda {
	return &Lambda{base: base{id: newID()}, Params: params, Body: body}
}

// ExpressionStmt evaluates an expression for its side effects (and, in
// REPL mode only, prints the result — spec.md section 6).
type ExpressionStmt struct{ Expression Expr }

func (s *ExpressionStmt) Accept(v StmtVisitor) error { return v.VisitExpressionStmt(s) }

// PrintStmt is `print expr;`.
type PrintStmt struct{ Expression Expr }

func (s *PrintStmt) Accept(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// VarStmt is `var name = initializer;` (initializer may be nil).
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

func (s *VarStmt) Accept(v StmtVisitor) error { return v.VisitVarStmt(s) }

// BlockStmt is a brace-delimited sequence of statements, executed
// together in one freshly pushed child scope (spec.md section 4.4).
type BlockStmt struct{ Statements []Stmt }

func (s *BlockStmt) Accept(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// IfStmt is `if (cond) then [else else]`.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if there is no else branch
}

func (s *IfStmt) Accept(v StmtVisitor) error { return v.VisitIfStmt(s) }

// WhileStmt is `while (cond) body`. `for` loops desugar into this at
// parse time (spec.md section 4.2) so the evaluator only ever sees one
// loop construct.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) error { return v.VisitWhileStmt(s) }

// FunctionStmt is a named function declaration.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) error { return v.VisitFunctionStmt(s) }

// ReturnStmt is `return [value];`. Keyword is kept for diagnostics.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr // nil if bare `return;`
}

func (s *ReturnStmt) Accept(v StmtVisitor) error { return v.VisitReturnStmt(s) }

// BreakStmt is `break;`.
type BreakStmt struct{ Keyword lexer.Token }

func (s *BreakStmt) Accept(v StmtVisitor) error { return v.VisitBreakStmt(s) }
