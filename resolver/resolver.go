/*
File    : twig/resolver/resolver.go
*/

// Package resolver performs the static analysis spec.md section 4.3
// describes: a single pass over the AST, before any evaluation happens,
// that assigns every local Variable/Assign expression a "distance" — the
// number of enclosing lexical scopes to skip before finding its binding.
// Because environments are a runtime chain that can be reshaped by
// nested calls, a name lookup that simply walked the chain at call time
// could find the wrong binding; the resolver pins down, once and for
// all, exactly which scope a use refers to at its definition site.
//
// Grounded on the canonical Lox resolver
// (_examples/original_source/src/resolver.rs) and its Go port in
// _examples/other_examples/38982037_hosome17-glox__resolver.go.go.
package resolver

import (
	"github.com/twiglang/twig/diag"
	"github.com/twiglang/twig/lexer"
	"github.com/twiglang/twig/parser"
)

// Table maps an expression's identity (parser.Expr.ExprID) to the
// lexical distance computed for it. A missing entry means "resolve
// against the global scope" (spec.md section 3).
type Table map[int]int

type functionType int

const (
	noFunction functionType = iota
	inFunction
)

// Resolver walks a parsed program once, producing a Table and a list of
// static diagnostics. It never evaluates anything — print statements are
// not executed, conditions are not branched on, loops are visited once
// (spec.md section 4.3's algorithm description).
type Resolver struct {
	scopes          []map[string]bool
	table           Table
	diags           []diag.Diagnostic
	currentFunction functionType
}

// New creates an empty Resolver. The scope stack starts empty: top-level
// declarations are never tracked as locals, which is exactly why an
// absent Table entry means "global" (spec.md section 4.3 and section 9).
func New() *Resolver {
	return &Resolver{table: make(Table)}
}

// Resolve runs static resolution over a full program and returns the
// resulting Table together with every diagnostic found. If the returned
// diagnostic slice is non-empty, the caller (twig.Run) must not proceed
// to evaluation (spec.md section 4.3: "If any diagnostic is emitted, the
// evaluator does not run.").
func Resolve(stmts []parser.Stmt) (Table, []diag.Diagnostic) {
	r := New()
	r.resolveStmts(stmts)
	return r.table, r.diags
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) inLocalScope() bool { return len(r.scopes) > 0 }

func (r *Resolver) current() map[string]bool {
	return r.scopes[len(r.scopes)-1]
}

// declare marks name as present-but-not-yet-initialized in the
// innermost scope. Redeclaring a name already present in that same
// scope is a DuplicateLocal error; this rule is scoped to locals only
// (spec.md section 4.3: "Does not apply to the global scope").
func (r *Resolver) declare(name lexer.Token) {
	if !r.inLocalScope() {
		return
	}
	scope := r.current()
	if _, exists := scope[name.Lexeme]; exists {
		r.diags = append(r.diags, diag.NewAt(diag.StageStatic, diag.KindDuplicateLocal, name.Line, name.Lexeme,
			"Already a variable named '%s' in this scope.", name.Lexeme))
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	if !r.inLocalScope() {
		return
	}
	r.current()[name.Lexeme] = true
}

// resolveLocal searches the scope stack innermost-out for name and, if
// found, records the distance from the current scope in the Table.
func (r *Resolver) resolveLocal(exprID int, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.table[exprID] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any local scope: leave no entry, meaning global.
}
