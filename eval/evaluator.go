/*
File    : twig/eval/evaluator.go
*/

// Package eval is the tree-walking Evaluator: the last of the four
// pipeline stages (spec.md section 4.4), executing a resolved AST
// directly against a chain of env.Environment frames. It never compiles
// to bytecode or builds an intermediate form — each Stmt/Expr node's
// Accept method is visited exactly once per execution, recursively.
//
// Grounded on the evaluator/scope-swap pattern in
// _examples/akashmaji946-go-mix/eval/evaluator.go, adapted to use the
// resolver's distance table instead of a live scope search, and to
// route the two control-flow signals (return, break) through the
// existing Stmt.Accept error channel rather than a bespoke result type.
package eval

import (
	"fmt"
	"io"

	"github.com/twiglang/twig/diag"
	"github.com/twiglang/twig/env"
	"github.com/twiglang/twig/parser"
	"github.com/twiglang/twig/resolver"
	"github.com/twiglang/twig/stdlib"
	"github.com/twiglang/twig/value"
)

// RuntimeError wraps a diag.Diagnostic so it can travel the ordinary Go
// error channel that Expr.Accept/Stmt.Accept already expose, without
// being confused with value.ReturnSignal/value.BreakSignal, which also
// satisfy error but carry no diagnostic.
type RuntimeError struct{ Diag diag.Diagnostic }

func (r RuntimeError) Error() string { return r.Diag.RuntimeError() }

// Evaluator holds the mutable state one program execution needs: the
// global scope, the environment currently in effect, the resolver's
// distance table, where `print` writes, and whether bare expression
// statements should echo their value (REPL mode, spec.md section 6).
type Evaluator struct {
	Globals  *env.Environment
	Current  *env.Environment
	Table    resolver.Table
	Out      io.Writer
	REPLMode bool
	loopDepth int
}

// New builds an Evaluator with a fresh global scope pre-populated with
// every stdlib builtin (clock, ...).
func New(out io.Writer, table resolver.Table, replMode bool) *Evaluator {
	globals := env.New(nil)
	stdlib.Install(globals.Define)
	return &Evaluator{Globals: globals, Current: globals, Table: table, Out: out, REPLMode: replMode}
}

// Interpret executes a program's top-level statements in order. The
// first runtime error aborts the statement it occurred in and halts all
// further execution — spec.md section 7: "First one aborts the
// evaluation of the current top-level statement and is reported;
// subsequent statements in the input are not executed."
func (ev *Evaluator) Interpret(stmts []parser.Stmt) []diag.Diagnostic {
	var diags []diag.Diagnostic
	for _, s := range stmts {
		if err := ev.execute(s); err != nil {
			if re, ok := err.(RuntimeError); ok {
				diags = append(diags, re.Diag)
				return diags
			}
			// A bare ReturnSignal/BreakSignal reaching here means the
			// resolver's ReturnFromTopLevel check or this evaluator's
			// own loop-nesting check failed to catch it first.
			panic(fmt.Sprintf("eval: control signal escaped to top level: %v", err))
		}
	}
	return diags
}

func (ev *Evaluator) execute(s parser.Stmt) error {
	return s.Accept(ev)
}

func (ev *Evaluator) evalExpr(e parser.Expr) (value.Value, error) {
	res, err := e.Accept(ev)
	if err != nil {
		return nil, err
	}
	return res.(value.Value), nil
}

// ExecuteBlock runs stmts with scope as the current environment,
// restoring the previous environment on the way out regardless of how
// execution ends. It implements function.Interpreter, letting
// function.Function.Call drive the evaluator without function importing
// eval (which would cycle back through parser/env).
func (ev *Evaluator) ExecuteBlock(stmts []parser.Stmt, scope *env.Environment) error {
	previous := ev.Current
	ev.Current = scope
	defer func() { ev.Current = previous }()

	for _, s := range stmts {
		if err := ev.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Evaluator) runtimeErr(line int, kind diag.Kind, format string, args ...interface{}) error {
	return RuntimeError{Diag: diag.New(diag.StageRuntime, kind, line, format, args...)}
}

func (ev *Evaluator) runtimeErrAt(line int, kind diag.Kind, lexeme string, format string, args ...interface{}) error {
	return RuntimeError{Diag: diag.NewAt(diag.StageRuntime, kind, line, lexeme, format, args...)}
}
