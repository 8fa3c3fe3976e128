/*
File    : twig/parser/printer.go
*/
package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer renders an AST back into Twig source text. It exists to
// support the round-trip testable property in spec.md section 8:
// re-printing and re-parsing a program that parsed cleanly must yield
// an isomorphic tree. Operators are printed without added parentheses;
// every parenthesized expression in the source is kept as a Grouping
// node and printed with its parentheses, so the printed text parses
// back into the same tree.
type Printer struct {
	buf strings.Builder
}

// Print renders a full program (a slice of statements) as Twig source.
func Print(stmts []Stmt) string {
	p := &Printer{}
	for _, s := range stmts {
		s.Accept(p)
	}
	return p.buf.String()
}

// PrintExpr renders a single expression as Twig source.
func PrintExpr(e Expr) string {
	p := &Printer{}
	v, _ := e.Accept(p)
	return v.(string)
}

func (p *Printer) expr(e Expr) string {
	v, _ := e.Accept(p)
	return v.(string)
}

func (p *Printer) VisitLiteral(e *Literal) (interface{}, error) {
	switch v := e.Value.(type) {
	case nil:
		return "nil", nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v)), nil
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case string:
		return `"` + v + `"`, nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func (p *Printer) VisitVariable(e *Variable) (interface{}, error) {
	return e.Name.Lexeme, nil
}

func (p *Printer) VisitAssign(e *Assign) (interface{}, error) {
	return fmt.Sprintf("%s = %s", e.Name.Lexeme, p.expr(e.Value)), nil
}

func (p *Printer) VisitUnary(e *Unary) (interface{}, error) {
	return fmt.Sprintf("%s%s", e.Op.Lexeme, p.expr(e.Operand)), nil
}

func (p *Printer) VisitBinary(e *Binary) (interface{}, error) {
	return fmt.Sprintf("%s %s %s", p.expr(e.Left), e.Op.Lexeme, p.expr(e.Right)), nil
}

func (p *Printer) VisitLogical(e *Logical) (interface{}, error) {
	return fmt.Sprintf("%s %s %s", p.expr(e.Left), e.Op.Lexeme, p.expr(e.Right)), nil
}

func (p *Printer) VisitGrouping(e *Grouping) (interface{}, error) {
	return fmt.Sprintf("(%s)", p.expr(e.Inner)), nil
}

func (p *Printer) VisitCall(e *Call) (interface{}, error) {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = p.expr(a)
	}
	return fmt.Sprintf("%s(%s)", p.expr(e.Callee), strings.Join(args, ", ")), nil
}

func (p *Printer) VisitLambda(e *Lambda) (interface{}, error) {
	names := make([]string, len(e.Params))
	for i, param := range e.Params {
		names[i] = param.Lexeme
	}
	return fmt.Sprintf("fun(%s) { %s }", strings.Join(names, ", "), p.block(e.Body)), nil
}

func (p *Printer) block(stmts []Stmt) string {
	inner := &Printer{}
	for _, s := range stmts {
		s.Accept(inner)
	}
	return inner.buf.String()
}

func (p *Printer) VisitExpressionStmt(s *ExpressionStmt) error {
	fmt.Fprintf(&p.buf, "%s;", p.expr(s.Expression))
	return nil
}

func (p *Printer) VisitPrintStmt(s *PrintStmt) error {
	fmt.Fprintf(&p.buf, "print %s;", p.expr(s.Expression))
	return nil
}

func (p *Printer) VisitVarStmt(s *VarStmt) error {
	if s.Initializer == nil {
		fmt.Fprintf(&p.buf, "var %s;", s.Name.Lexeme)
		return nil
	}
	fmt.Fprintf(&p.buf, "var %s = %s;", s.Name.Lexeme, p.expr(s.Initializer))
	return nil
}

func (p *Printer) VisitBlockStmt(s *BlockStmt) error {
	fmt.Fprintf(&p.buf, "{ %s }", p.block(s.Statements))
	return nil
}

func (p *Printer) VisitIfStmt(s *IfStmt) error {
	fmt.Fprintf(&p.buf, "if (%s) %s", p.expr(s.Condition), p.stmt(s.Then))
	if s.Else != nil {
		fmt.Fprintf(&p.buf, " else %s", p.stmt(s.Else))
	}
	return nil
}

func (p *Printer) stmt(s Stmt) string {
	inner := &Printer{}
	s.Accept(inner)
	return inner.buf.String()
}

func (p *Printer) VisitWhileStmt(s *WhileStmt) error {
	fmt.Fprintf(&p.buf, "while (%s) %s", p.expr(s.Condition), p.stmt(s.Body))
	return nil
}

func (p *Printer) VisitFunctionStmt(s *FunctionStmt) error {
	names := make([]string, len(s.Params))
	for i, param := range s.Params {
		names[i] = param.Lexeme
	}
	fmt.Fprintf(&p.buf, "fun %s(%s) { %s }", s.Name.Lexeme, strings.Join(names, ", "), p.block(s.Body))
	return nil
}

func (p *Printer) VisitReturnStmt(s *ReturnStmt) error {
	if s.Value == nil {
		p.buf.WriteString("return;")
		return nil
	}
	fmt.Fprintf(&p.buf, "return %s;", p.expr(s.Value))
	return nil
}

func (p *Printer) VisitBreakStmt(s *BreakStmt) error {
	p.buf.WriteString("break;")
	return nil
}
