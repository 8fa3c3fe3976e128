package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twiglang/twig/lexer"
)

func parse(t *testing.T, src string) ([]Stmt, *Parser) {
	t.Helper()
	tokens, diags := lexer.New(src).Scan()
	require.Empty(t, diags)
	p := New(tokens)
	stmts := p.Parse()
	return stmts, p
}

func TestParse_BinaryPrecedence(t *testing.T) {
	stmts, p := parse(t, "1 + 2 * 3;")
	require.False(t, p.HasErrors())
	require.Len(t, stmts, 1)
	es := stmts[0].(*ExpressionStmt)
	bin := es.Expression.(*Binary)
	assert.Equal(t, lexer.PLUS, bin.Op.Type)
	rhs := bin.Right.(*Binary)
	assert.Equal(t, lexer.STAR, rhs.Op.Type)
}

func TestParse_AssignmentRightAssociative(t *testing.T) {
	stmts, p := parse(t, "a = b = 3;")
	require.False(t, p.HasErrors())
	es := stmts[0].(*ExpressionStmt)
	outer := es.Expression.(*Assign)
	assert.Equal(t, "a", outer.Name.Lexeme)
	inner := outer.Value.(*Assign)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetRecovers(t *testing.T) {
	stmts, p := parse(t, "1 + 2 = 3; print 1;")
	require.True(t, p.HasErrors())
	require.Len(t, stmts, 2)
	_, ok := stmts[1].(*PrintStmt)
	assert.True(t, ok)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts, p := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.False(t, p.HasErrors())
	outerBlock := stmts[0].(*BlockStmt)
	require.Len(t, outerBlock.Statements, 2)
	_, ok := outerBlock.Statements[0].(*VarStmt)
	assert.True(t, ok)
	while, ok := outerBlock.Statements[1].(*WhileStmt)
	require.True(t, ok)
	body := while.Body.(*BlockStmt)
	require.Len(t, body.Statements, 2)
}

func TestParse_ForMissingConditionBecomesTrue(t *testing.T) {
	stmts, p := parse(t, "for (;;) break;")
	require.False(t, p.HasErrors())
	while := stmts[0].(*WhileStmt)
	lit := while.Condition.(*Literal)
	assert.Equal(t, true, lit.Value)
}

func TestParse_CallChaining(t *testing.T) {
	stmts, p := parse(t, "make(1)(2);")
	require.False(t, p.HasErrors())
	es := stmts[0].(*ExpressionStmt)
	outer := es.Expression.(*Call)
	_, ok := outer.Callee.(*Call)
	assert.True(t, ok)
}

func TestParse_TooManyArguments(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"
	_, p := parse(t, src)
	assert.True(t, p.HasErrors())
}

func TestParse_FunctionDeclarationVsLambda(t *testing.T) {
	stmts, p := parse(t, "fun add(a, b) { return a + b; } var f = fun(x) { return x; };")
	require.False(t, p.HasErrors())
	fn, ok := stmts[0].(*FunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)

	v := stmts[1].(*VarStmt)
	_, ok = v.Initializer.(*Lambda)
	assert.True(t, ok)
}

func TestParse_BreakRequiresSemicolon(t *testing.T) {
	_, p := parse(t, "while (true) { break }")
	assert.True(t, p.HasErrors())
}

func TestPrint_RoundTrip(t *testing.T) {
	src := "var a = 1 + 2 * 3; if (a > 0) { print a; } else { print 0; }"
	stmts, p := parse(t, src)
	require.False(t, p.HasErrors())

	printed := Print(stmts)
	reTokens, diags := lexer.New(printed).Scan()
	require.Empty(t, diags)
	p2 := New(reTokens)
	reStmts := p2.Parse()
	require.False(t, p2.HasErrors())
	assert.Equal(t, Print(reStmts), printed)
}
