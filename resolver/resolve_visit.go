/*
File    : twig/resolver/resolve_visit.go
*/
package resolver

import (
	"github.com/twiglang/twig/diag"
	"github.com/twiglang/twig/lexer"
	"github.com/twiglang/twig/parser"
)

// resolveStmts walks a statement list, tracking reachability locally:
// once a Return is seen, every later statement in *this same list* is
// UnreachableAfterReturn. Nested blocks (including both branches of an
// if) get their own local tracker, which is exactly why reachability is
// "cleared on scope entry/exit and branches" (spec.md section 4.3) —
// nothing here ever needs to reset a flag, because nothing leaks out of
// the slice being iterated.
func (r *Resolver) resolveStmts(stmts []parser.Stmt) {
	returned := false
	for _, s := range stmts {
		if returned {
			r.diags = append(r.diags, diag.New(diag.StageStatic, diag.KindUnreachableAfterReturn, statementLine(s),
				"Unreachable code after return."))
		}
		r.resolveStmt(s)
		if _, ok := s.(*parser.ReturnStmt); ok {
			returned = true
		}
	}
}

func statementLine(s parser.Stmt) int {
	switch st := s.(type) {
	case *parser.ReturnStmt:
		return st.Keyword.Line
	case *parser.BreakStmt:
		return st.Keyword.Line
	case *parser.VarStmt:
		return st.Name.Line
	case *parser.FunctionStmt:
		return st.Name.Line
	case *parser.ExpressionStmt:
		return exprLine(st.Expression)
	case *parser.PrintStmt:
		return exprLine(st.Expression)
	case *parser.IfStmt:
		return exprLine(st.Condition)
	case *parser.WhileStmt:
		return exprLine(st.Condition)
	case *parser.BlockStmt:
		if len(st.Statements) > 0 {
			return statementLine(st.Statements[0])
		}
	}
	return 0
}

func exprLine(e parser.Expr) int {
	switch ex := e.(type) {
	case *parser.Variable:
		return ex.Name.Line
	case *parser.Assign:
		return ex.Name.Line
	case *parser.Unary:
		return ex.Op.Line
	case *parser.Binary:
		return ex.Op.Line
	case *parser.Logical:
		return ex.Op.Line
	case *parser.Call:
		return ex.Paren.Line
	case *parser.Grouping:
		return exprLine(ex.Inner)
	}
	return 0
}

func (r *Resolver) resolveStmt(s parser.Stmt) {
	switch st := s.(type) {
	case *parser.ExpressionStmt:
		r.resolveExpr(st.Expression)
	case *parser.PrintStmt:
		r.resolveExpr(st.Expression)
	case *parser.VarStmt:
		r.declare(st.Name)
		if st.Initializer != nil {
			r.resolveExpr(st.Initializer)
		}
		r.define(st.Name)
	case *parser.BlockStmt:
		r.beginScope()
		r.resolveStmts(st.Statements)
		r.endScope()
	case *parser.IfStmt:
		r.resolveExpr(st.Condition)
		r.resolveStmt(st.Then)
		if st.Else != nil {
			r.resolveStmt(st.Else)
		}
	case *parser.WhileStmt:
		r.resolveExpr(st.Condition)
		r.resolveStmt(st.Body)
	case *parser.FunctionStmt:
		r.declare(st.Name)
		r.define(st.Name)
		r.resolveFunction(st.Params, st.Body)
	case *parser.ReturnStmt:
		if r.currentFunction == noFunction {
			r.diags = append(r.diags, diag.New(diag.StageStatic, diag.KindReturnFromTopLevel, st.Keyword.Line,
				"Can't return from top-level code."))
		}
		if st.Value != nil {
			r.resolveExpr(st.Value)
		}
	case *parser.BreakStmt:
		// Loop-nesting validity for break is checked at evaluation time
		// (spec.md section 4.4), not here.
	}
}

// resolveFunction pushes a scope for a function/lambda body, declares and
// immediately defines every parameter (a parameter is always already
// initialized by the time the body runs), then resolves the body.
func (r *Resolver) resolveFunction(params []lexer.Token, body []parser.Stmt) {
	enclosing := r.currentFunction
	r.currentFunction = inFunction
	r.beginScope()
	for _, p := range params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(body)
	r.endScope()
	r.currentFunction = enclosing
}

func (r *Resolver) resolveExpr(e parser.Expr) {
	switch ex := e.(type) {
	case *parser.Literal:
		// no identifiers involved
	case *parser.Variable:
		if r.inLocalScope() {
			if defined, ok := r.current()[ex.Name.Lexeme]; ok && !defined {
				r.diags = append(r.diags, diag.NewAt(diag.StageStatic, diag.KindReadInOwnInitializer, ex.Name.Line, ex.Name.Lexeme,
					"Can't read local variable '%s' in its own initializer.", ex.Name.Lexeme))
			}
		}
		r.resolveLocal(ex.ExprID(), ex.Name)
	case *parser.Assign:
		r.resolveExpr(ex.Value)
		r.resolveLocal(ex.ExprID(), ex.Name)
	case *parser.Unary:
		r.resolveExpr(ex.Operand)
	case *parser.Binary:
		r.resolveExpr(ex.Left)
		r.resolveExpr(ex.Right)
	case *parser.Logical:
		r.resolveExpr(ex.Left)
		r.resolveExpr(ex.Right)
	case *parser.Grouping:
		r.resolveExpr(ex.Inner)
	case *parser.Call:
		r.resolveExpr(ex.Callee)
		for _, a := range ex.Args {
			r.resolveExpr(a)
		}
	case *parser.Lambda:
		r.resolveFunction(ex.Params, ex.Body)
	}
}
