/*
File    : twig/eval/eval_expressions.go
*/
package eval

import (
	"github.com/twiglang/twig/diag"
	"github.com/twiglang/twig/function"
	"github.com/twiglang/twig/lexer"
	"github.com/twiglang/twig/parser"
	"github.com/twiglang/twig/value"
)

func (ev *Evaluator) VisitLiteral(e *parser.Literal) (interface{}, error) {
	switch v := e.Value.(type) {
	case float64:
		return value.Number{Value: v}, nil
	case string:
		return value.String{Value: v}, nil
	case bool:
		return value.Bool{Value: v}, nil
	default:
		return value.Nil{}, nil
	}
}

func (ev *Evaluator) VisitVariable(e *parser.Variable) (interface{}, error) {
	return ev.lookupVariable(e.Name, e.ExprID())
}

// lookupVariable consults the resolver's distance table first; an
// absent entry means the name was never found in any local scope and so
// resolves against the global environment (spec.md section 3).
func (ev *Evaluator) lookupVariable(name lexer.Token, exprID int) (value.Value, error) {
	if dist, ok := ev.Table[exprID]; ok {
		if v, ok := ev.Current.GetAt(dist, name.Lexeme); ok {
			return v, nil
		}
	} else if v, ok := ev.Globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, ev.runtimeErrAt(name.Line, diag.KindUndefinedVariable, name.Lexeme, "Undefined variable '%s'.", name.Lexeme)
}

func (ev *Evaluator) VisitAssign(e *parser.Assign) (interface{}, error) {
	v, err := ev.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	if dist, ok := ev.Table[e.ExprID()]; ok {
		ev.Current.AssignAt(dist, e.Name.Lexeme, v)
		return v, nil
	}
	if ev.Globals.Assign(e.Name.Lexeme, v) {
		return v, nil
	}
	return nil, ev.runtimeErrAt(e.Name.Line, diag.KindUndefinedVariable, e.Name.Lexeme, "Undefined variable '%s'.", e.Name.Lexeme)
}

func (ev *Evaluator) VisitUnary(e *parser.Unary) (interface{}, error) {
	operand, err := ev.evalExpr(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case lexer.MINUS:
		n, ok := operand.(value.Number)
		if !ok {
			return nil, ev.runtimeErr(e.Op.Line, diag.KindTypeError, "Operand must be a number.")
		}
		return value.Number{Value: -n.Value}, nil
	case lexer.BANG:
		return value.Bool{Value: !value.Truthy(operand)}, nil
	}
	return nil, ev.runtimeErr(e.Op.Line, diag.KindTypeError, "Unknown unary operator '%s'.", e.Op.Lexeme)
}

func (ev *Evaluator) VisitBinary(e *parser.Binary) (interface{}, error) {
	left, err := ev.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case lexer.EQUAL_EQUAL:
		return value.Bool{Value: value.Equal(left, right)}, nil
	case lexer.BANG_EQUAL:
		return value.Bool{Value: !value.Equal(left, right)}, nil
	case lexer.PLUS:
		return ev.evalPlus(e.Op, left, right)
	case lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.PERCENT:
		return ev.evalArithmetic(e.Op, left, right)
	case lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL:
		return ev.evalComparison(e.Op, left, right)
	}
	return nil, ev.runtimeErr(e.Op.Line, diag.KindTypeError, "Unknown binary operator '%s'.", e.Op.Lexeme)
}

// evalPlus implements spec.md section 4.4's overload of '+': Number+Number
// adds; if either operand is a String, the other is stringified and the
// two are concatenated; anything else is a TypeError.
func (ev *Evaluator) evalPlus(op lexer.Token, left, right value.Value) (value.Value, error) {
	if l, ok := left.(value.Number); ok {
		if r, ok := right.(value.Number); ok {
			return value.Number{Value: l.Value + r.Value}, nil
		}
	}
	if _, ok := left.(value.String); ok {
		return value.String{Value: left.String() + right.String()}, nil
	}
	if _, ok := right.(value.String); ok {
		return value.String{Value: left.String() + right.String()}, nil
	}
	return nil, ev.runtimeErr(op.Line, diag.KindTypeError, "Operands must be two numbers or at least one string.")
}

func (ev *Evaluator) evalArithmetic(op lexer.Token, left, right value.Value) (value.Value, error) {
	l, lok := left.(value.Number)
	r, rok := right.(value.Number)
	if !lok || !rok {
		return nil, ev.runtimeErr(op.Line, diag.KindTypeError, "Operands must be numbers.")
	}
	switch op.Type {
	case lexer.MINUS:
		return value.Number{Value: l.Value - r.Value}, nil
	case lexer.STAR:
		return value.Number{Value: l.Value * r.Value}, nil
	case lexer.SLASH:
		if r.Value == 0 {
			return nil, ev.runtimeErr(op.Line, diag.KindDivideByZero, "Division by zero.")
		}
		return value.Number{Value: l.Value / r.Value}, nil
	case lexer.PERCENT:
		if r.Value == 0 {
			return nil, ev.runtimeErr(op.Line, diag.KindDivideByZero, "Division by zero.")
		}
		return value.Number{Value: float64(int64(l.Value) % int64(r.Value))}, nil
	}
	return nil, ev.runtimeErr(op.Line, diag.KindTypeError, "Unknown arithmetic operator '%s'.", op.Lexeme)
}

func (ev *Evaluator) evalComparison(op lexer.Token, left, right value.Value) (value.Value, error) {
	l, lok := left.(value.Number)
	r, rok := right.(value.Number)
	if !lok || !rok {
		return nil, ev.runtimeErr(op.Line, diag.KindTypeError, "Operands must be numbers.")
	}
	switch op.Type {
	case lexer.GREATER:
		return value.Bool{Value: l.Value > r.Value}, nil
	case lexer.GREATER_EQUAL:
		return value.Bool{Value: l.Value >= r.Value}, nil
	case lexer.LESS:
		return value.Bool{Value: l.Value < r.Value}, nil
	case lexer.LESS_EQUAL:
		return value.Bool{Value: l.Value <= r.Value}, nil
	}
	return nil, ev.runtimeErr(op.Line, diag.KindTypeError, "Unknown comparison operator '%s'.", op.Lexeme)
}

// VisitLogical short-circuits and returns the deciding operand itself,
// not a coerced boolean (spec.md section 4.4's Open Question,
// resolved: "and"/"or" yield one of their operands unchanged).
func (ev *Evaluator) VisitLogical(e *parser.Logical) (interface{}, error) {
	left, err := ev.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Type == lexer.OR {
		if value.Truthy(left) {
			return left, nil
		}
	} else {
		if !value.Truthy(left) {
			return left, nil
		}
	}
	return ev.evalExpr(e.Right)
}

func (ev *Evaluator) VisitGrouping(e *parser.Grouping) (interface{}, error) {
	return ev.evalExpr(e.Inner)
}

func (ev *Evaluator) VisitCall(e *parser.Call) (interface{}, error) {
	callee, err := ev.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := ev.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *function.Function:
		if len(args) != fn.Arity() {
			return nil, ev.runtimeErr(e.Paren.Line, diag.KindArity, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		result, err := fn.Call(ev, args)
		if err != nil {
			return nil, err
		}
		return result, nil
	case *value.Native:
		if len(args) != fn.Arity {
			return nil, ev.runtimeErr(e.Paren.Line, diag.KindArity, "Expected %d arguments but got %d.", fn.Arity, len(args))
		}
		result, err := fn.Fn(args)
		if err != nil {
			return nil, ev.runtimeErr(e.Paren.Line, diag.KindArity, "%s", err.Error())
		}
		return result, nil
	default:
		return nil, ev.runtimeErr(e.Paren.Line, diag.KindNotCallable, "Can only call functions.")
	}
}

func (ev *Evaluator) VisitLambda(e *parser.Lambda) (interface{}, error) {
	return &function.Function{Params: e.Params, Body: e.Body, Closure: ev.Current}, nil
}
