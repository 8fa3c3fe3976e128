package twig

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twiglang/twig/diag"
)

func TestRun_LexicalErrorStillLetsParserRunAndAggregatesSyntaxErrors(t *testing.T) {
	var buf bytes.Buffer
	// The unterminated string consumes the rest of the source, so the
	// parser sees only PRINT, EOF — it still runs over that EOF-terminated
	// stream (spec.md section 4.1) and reports its own errors alongside
	// the lexical one in the same Run call.
	res := Run(`print "unterminated;`, Options{Out: &buf})
	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, diag.ExitSyntaxOrStatic, res.Exit)

	var sawLexical, sawSyntax bool
	for _, d := range res.Diagnostics {
		switch d.Stage {
		case diag.StageLexical:
			sawLexical = true
		case diag.StageSyntax:
			sawSyntax = true
		}
	}
	assert.True(t, sawLexical, "expected a lexical diagnostic")
	assert.True(t, sawSyntax, "expected the parser to still run and report its own diagnostic")
}

func TestRun_LexicalErrorDoesNotHideALaterUnrelatedSyntaxError(t *testing.T) {
	var buf bytes.Buffer
	// A stray lexical character early on must not swallow a real syntax
	// error later in the same file.
	res := Run(`@ var a = ;`, Options{Out: &buf})
	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, diag.ExitSyntaxOrStatic, res.Exit)

	var sawLexical, sawSyntax bool
	for _, d := range res.Diagnostics {
		switch d.Stage {
		case diag.StageLexical:
			sawLexical = true
		case diag.StageSyntax:
			sawSyntax = true
		}
	}
	assert.True(t, sawLexical, "expected the '@' to be reported")
	assert.True(t, sawSyntax, "expected the missing initializer expression to also be reported")
}

func TestRun_SyntaxErrorStopsBeforeResolving(t *testing.T) {
	var buf bytes.Buffer
	res := Run(`print ;`, Options{Out: &buf})
	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, diag.ExitSyntaxOrStatic, res.Exit)
}

func TestRun_StaticErrorStopsBeforeEvaluating(t *testing.T) {
	var buf bytes.Buffer
	res := Run(`{ var a = a; }`, Options{Out: &buf})
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, diag.ExitSyntaxOrStatic, res.Exit)
	assert.Equal(t, "", buf.String())
}

func TestRun_SuccessfulProgramPrintsAndReturnsExitOK(t *testing.T) {
	var buf bytes.Buffer
	res := Run(`print "hello";`, Options{Out: &buf})
	assert.Empty(t, res.Diagnostics)
	assert.Equal(t, diag.ExitOK, res.Exit)
	assert.Equal(t, "hello\n", buf.String())
}

func TestRun_RuntimeErrorReportsExitRuntime(t *testing.T) {
	var buf bytes.Buffer
	res := Run(`print 1 / 0;`, Options{Out: &buf})
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, diag.ExitRuntime, res.Exit)
}

func TestRun_SessionPersistsDeclarationsAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	session := NewSession(&buf)
	res1 := Run(`var a = 1;`, Options{Out: &buf, REPLMode: true, Evaluator: session})
	assert.Empty(t, res1.Diagnostics)
	res2 := Run(`print a;`, Options{Out: &buf, REPLMode: true, Evaluator: session})
	assert.Empty(t, res2.Diagnostics)
	assert.Equal(t, "1\n", buf.String())
}
