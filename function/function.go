/*
File    : twig/function/function.go
*/

// Package function implements user-defined (Twig-source) callables.
// It is its own package, separate from eval, purely to break an import
// cycle: env needs no knowledge of functions, but a Function needs to
// hold an *env.Environment, and the evaluator needs to call into both.
//
// Grounded on _examples/akashmaji946-go-mix/function/function.go, with
// the closure field changed from the teacher's copy-on-write
// *scope.Scope to a raw *env.Environment pointer — spec.md section 9 is
// explicit that environments must never be copied, only shared.
package function

import (
	"fmt"
	"strings"

	"github.com/twiglang/twig/env"
	"github.com/twiglang/twig/lexer"
	"github.com/twiglang/twig/parser"
	"github.com/twiglang/twig/value"
)

// Interpreter is the slice of the evaluator a Function needs to invoke
// its body, kept minimal to avoid function importing eval.
type Interpreter interface {
	ExecuteBlock(stmts []parser.Stmt, scope *env.Environment) error
}

// Function is a user-defined Twig function or lambda. Closure is a
// pointer to the environment that was current at the function's
// declaration site, never a copy — this is what makes closures observe
// later mutations of their enclosing scope (spec.md section 4.4,
// "Closures").
type Function struct {
	Name    string // empty for an anonymous lambda
	Params  []lexer.Token
	Body    []parser.Stmt
	Closure *env.Environment
}

func (*Function) Type() value.Type { return value.TypeFunction }

// String renders the function for `print` and string concatenation:
// "<fn NAME>", with an empty NAME for a lambda (spec.md section 4.4,
// "Stringify").
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}

// Arity reports how many arguments Call expects, used by the evaluator
// to produce an Arity diagnostic before attempting the call.
func (f *Function) Arity() int { return len(f.Params) }

// Call binds args to Params in a fresh environment chained off Closure
// (never off the caller's environment — that is what makes lexical, not
// dynamic, scoping work) and executes Body through interp. A
// ReturnSignal raised inside Body is consumed here and turned into its
// carried value; any other error propagates to the caller unchanged.
func (f *Function) Call(interp Interpreter, args []value.Value) (value.Value, error) {
	callScope := env.New(f.Closure)
	for i, p := range f.Params {
		callScope.Define(p.Lexeme, args[i])
	}

	err := interp.ExecuteBlock(f.Body, callScope)
	if err == nil {
		return value.Nil{}, nil
	}
	if ret, ok := err.(value.ReturnSignal); ok {
		return ret.Value, nil
	}
	return nil, err
}

// Signature renders the parameter list for debugging/REPL inspection,
// e.g. "add(a, b)".
func (f *Function) Signature() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Lexeme
	}
	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(names, ", "))
}
