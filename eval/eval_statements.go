/*
File    : twig/eval/eval_statements.go
*/
package eval

import (
	"fmt"

	"github.com/twiglang/twig/diag"
	"github.com/twiglang/twig/env"
	"github.com/twiglang/twig/function"
	"github.com/twiglang/twig/parser"
	"github.com/twiglang/twig/value"
)

func (ev *Evaluator) VisitExpressionStmt(s *parser.ExpressionStmt) error {
	v, err := ev.evalExpr(s.Expression)
	if err != nil {
		return err
	}
	if ev.REPLMode {
		fmt.Fprintln(ev.Out, v.String())
	}
	return nil
}

func (ev *Evaluator) VisitPrintStmt(s *parser.PrintStmt) error {
	v, err := ev.evalExpr(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(ev.Out, v.String())
	return nil
}

func (ev *Evaluator) VisitVarStmt(s *parser.VarStmt) error {
	var v value.Value = value.Nil{}
	if s.Initializer != nil {
		var err error
		v, err = ev.evalExpr(s.Initializer)
		if err != nil {
			return err
		}
	}
	ev.Current.Define(s.Name.Lexeme, v)
	return nil
}

func (ev *Evaluator) VisitBlockStmt(s *parser.BlockStmt) error {
	return ev.ExecuteBlock(s.Statements, env.New(ev.Current))
}

func (ev *Evaluator) VisitIfStmt(s *parser.IfStmt) error {
	cond, err := ev.evalExpr(s.Condition)
	if err != nil {
		return err
	}
	if value.Truthy(cond) {
		return ev.execute(s.Then)
	}
	if s.Else != nil {
		return ev.execute(s.Else)
	}
	return nil
}

// VisitWhileStmt tracks loop nesting so VisitBreakStmt can tell a break
// inside a loop from one that escaped to the top level (spec.md section
// 4.4: BreakOutsideLoop is a runtime, not static, diagnostic).
func (ev *Evaluator) VisitWhileStmt(s *parser.WhileStmt) error {
	ev.loopDepth++
	defer func() { ev.loopDepth-- }()

	for {
		cond, err := ev.evalExpr(s.Condition)
		if err != nil {
			return err
		}
		if !value.Truthy(cond) {
			return nil
		}
		if err := ev.execute(s.Body); err != nil {
			if _, ok := err.(value.BreakSignal); ok {
				return nil
			}
			return err
		}
	}
}

func (ev *Evaluator) VisitFunctionStmt(s *parser.FunctionStmt) error {
	fn := &function.Function{Name: s.Name.Lexeme, Params: s.Params, Body: s.Body, Closure: ev.Current}
	ev.Current.Define(s.Name.Lexeme, fn)
	return nil
}

func (ev *Evaluator) VisitReturnStmt(s *parser.ReturnStmt) error {
	var v value.Value = value.Nil{}
	if s.Value != nil {
		var err error
		v, err = ev.evalExpr(s.Value)
		if err != nil {
			return err
		}
	}
	return value.ReturnSignal{Value: v}
}

func (ev *Evaluator) VisitBreakStmt(s *parser.BreakStmt) error {
	if ev.loopDepth == 0 {
		return ev.runtimeErr(s.Keyword.Line, diag.KindBreakOutsideLoop, "Can't use 'break' outside of a loop.")
	}
	return value.BreakSignal{}
}
