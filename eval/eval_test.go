package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twiglang/twig/lexer"
	"github.com/twiglang/twig/parser"
	"github.com/twiglang/twig/resolver"
)

func run(t *testing.T, src string) (string, []interface{ Error() string }) {
	t.Helper()
	tokens, diags := lexer.New(src).Scan()
	require.Empty(t, diags)
	p := parser.New(tokens)
	stmts := p.Parse()
	require.False(t, p.HasErrors())
	table, rdiags := resolver.Resolve(stmts)
	require.Empty(t, rdiags)

	var buf bytes.Buffer
	ev := New(&buf, table, false)
	rtdiags := ev.Interpret(stmts)
	var errs []interface{ Error() string }
	for _, d := range rtdiags {
		errs = append(errs, d)
	}
	return buf.String(), errs
}

func TestEval_ArithmeticPrecedence(t *testing.T) {
	out, errs := run(t, `print 1 + 2 * 3;`)
	assert.Empty(t, errs)
	assert.Equal(t, "7\n", out)
}

func TestEval_StringConcatenation(t *testing.T) {
	out, errs := run(t, `print "a" + "b";`)
	assert.Empty(t, errs)
	assert.Equal(t, "ab\n", out)
}

func TestEval_NumberStringifyDropsTrailingZero(t *testing.T) {
	out, errs := run(t, `print 6.0 / 2.0;`)
	assert.Empty(t, errs)
	assert.Equal(t, "3\n", out)
}

func TestEval_DivideByZero(t *testing.T) {
	_, errs := run(t, `print 1 / 0;`)
	require.Len(t, errs, 1)
}

func TestEval_StringPlusNumberStringifiesTheNumber(t *testing.T) {
	out, errs := run(t, `var a = "hi"; print a + 1;`)
	assert.Empty(t, errs)
	assert.Equal(t, "hi1\n", out)
}

func TestEval_TypeErrorOnPlusWithNoStringOperand(t *testing.T) {
	_, errs := run(t, `print true + 1;`)
	require.Len(t, errs, 1)
}

func TestEval_TruthinessAndLogicalReturnsOperand(t *testing.T) {
	out, errs := run(t, `print 0 and "second";`)
	assert.Empty(t, errs)
	assert.Equal(t, "second\n", out)
}

func TestEval_OrReturnsFirstTruthyOperand(t *testing.T) {
	out, errs := run(t, `print false or "fallback";`)
	assert.Empty(t, errs)
	assert.Equal(t, "fallback\n", out)
}

func TestEval_EqualityIsSameTagOnly(t *testing.T) {
	out, errs := run(t, `print 1 == "1";`)
	assert.Empty(t, errs)
	assert.Equal(t, "false\n", out)
}

func TestEval_VariablesAndAssignment(t *testing.T) {
	out, errs := run(t, `var a = 1; a = a + 1; print a;`)
	assert.Empty(t, errs)
	assert.Equal(t, "2\n", out)
}

func TestEval_UndefinedVariable(t *testing.T) {
	_, errs := run(t, `print nope;`)
	require.Len(t, errs, 1)
}

func TestEval_BlockScoping(t *testing.T) {
	out, errs := run(t, `var a = "outer"; { var a = "inner"; print a; } print a;`)
	assert.Empty(t, errs)
	assert.Equal(t, "inner\nouter\n", out)
}

func TestEval_IfElse(t *testing.T) {
	out, errs := run(t, `if (1 < 2) { print "yes"; } else { print "no"; }`)
	assert.Empty(t, errs)
	assert.Equal(t, "yes\n", out)
}

func TestEval_WhileLoopWithBreak(t *testing.T) {
	out, errs := run(t, `var i = 0; while (true) { if (i >= 3) break; print i; i = i + 1; }`)
	assert.Empty(t, errs)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestEval_ForDesugaring(t *testing.T) {
	out, errs := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	assert.Empty(t, errs)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestEval_BreakOutsideLoopIsRuntimeError(t *testing.T) {
	_, errs := run(t, `if (true) { break; }`)
	require.Len(t, errs, 1)
}

func TestEval_FunctionCallAndReturn(t *testing.T) {
	out, errs := run(t, `fun add(a, b) { return a + b; } print add(2, 3);`)
	assert.Empty(t, errs)
	assert.Equal(t, "5\n", out)
}

func TestEval_ClosureCapturesByReferenceNotCopy(t *testing.T) {
	src := `
	fun makeCounter() {
		var count = 0;
		fun increment() {
			count = count + 1;
			return count;
		}
		return increment;
	}
	var counter = makeCounter();
	print counter();
	print counter();
	print counter();
	`
	out, errs := run(t, src)
	assert.Empty(t, errs)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestEval_LambdaExpression(t *testing.T) {
	out, errs := run(t, `var square = fun(x) { return x * x; }; print square(4);`)
	assert.Empty(t, errs)
	assert.Equal(t, "16\n", out)
}

func TestEval_ArityMismatch(t *testing.T) {
	_, errs := run(t, `fun add(a, b) { return a + b; } print add(1);`)
	require.Len(t, errs, 1)
}

func TestEval_NotCallable(t *testing.T) {
	_, errs := run(t, `var x = 1; print x();`)
	require.Len(t, errs, 1)
}

func TestEval_EachCallCapturesItsOwnParameterClosure(t *testing.T) {
	src := `fun make(n) { fun g() { return n; } return g; }
	var g1 = make(1); var g2 = make(2); print g1(); print g2();`
	out, errs := run(t, src)
	assert.Empty(t, errs)
	assert.Equal(t, "1\n2\n", out)
}

func TestEval_ClockBuiltinIsCallable(t *testing.T) {
	_, errs := run(t, `print clock() >= 0;`)
	assert.Empty(t, errs)
}

func TestEval_RuntimeErrorHaltsAllFurtherExecution(t *testing.T) {
	out, errs := run(t, `print 1 / 0; print "never runs";`)
	require.Len(t, errs, 1)
	assert.Empty(t, out)
}

func TestEval_RuntimeErrorDoesNotUndoEarlierStatements(t *testing.T) {
	out, errs := run(t, `print "before"; print 1 / 0; print "never runs";`)
	require.Len(t, errs, 1)
	assert.Equal(t, "before\n", out)
}
