/*
File    : twig/twig.go
*/

// Package twig is the interpreter core's single external entry point
// (spec.md section 5): Run takes source text and returns every
// diagnostic produced plus a classification of how far the pipeline
// got. It owns no process state — no stdin/stdout assumptions beyond
// the io.Writer callers hand it, no os.Exit — so the CLI, the REPL, and
// tests can all drive it identically.
package twig

import (
	"io"

	"github.com/twiglang/twig/diag"
	"github.com/twiglang/twig/eval"
	"github.com/twiglang/twig/lexer"
	"github.com/twiglang/twig/parser"
	"github.com/twiglang/twig/resolver"
)

// RunResult is everything a caller of Run needs: the diagnostics to
// render and the exit classification to map to a process exit code (0,
// 65, or 70 conventionally — spec.md section 6).
type RunResult struct {
	Diagnostics []diag.Diagnostic
	Exit        diag.ExitKind
}

// Options lets a caller reuse one Evaluator's global scope across
// multiple Run calls (the REPL's one defining use case) instead of
// starting over from an empty global environment each time.
type Options struct {
	Out      io.Writer
	REPLMode bool
	Evaluator *eval.Evaluator // when non-nil, reused instead of constructing a fresh one
}

// Run drives the full pipeline — Scanner, Parser, Resolver, Evaluator —
// over one chunk of source text (spec.md section 5). The scanner never
// stops at the first bad character (spec.md section 4.1: "continue
// scanning (so all lexical errors surface in one pass)"; "the stream
// still terminates with EOF so downstream stages can proceed when
// appropriate"), so the parser still runs over the EOF-terminated token
// stream and its syntax diagnostics are aggregated alongside any lexical
// ones in the same Run call, rather than a stray lexical error hiding an
// unrelated syntax error later in the file. Any lexical or syntax
// diagnostic stops the pipeline before the resolver runs; any static
// diagnostic stops it before the evaluator runs (spec.md section 4.3:
// "If any diagnostic is emitted, the evaluator does not run.").
func Run(source string, opts Options) RunResult {
	tokens, lexDiags := lexer.New(source).Scan()

	p := parser.New(tokens)
	stmts := p.Parse()

	if len(lexDiags) > 0 || p.HasErrors() {
		diags := append(append([]diag.Diagnostic{}, lexDiags...), p.Errors()...)
		return RunResult{Diagnostics: diags, Exit: diag.ExitSyntaxOrStatic}
	}

	table, staticDiags := resolver.Resolve(stmts)
	if len(staticDiags) > 0 {
		return RunResult{Diagnostics: staticDiags, Exit: diag.ExitSyntaxOrStatic}
	}

	ev := opts.Evaluator
	if ev == nil {
		ev = eval.New(opts.Out, table, opts.REPLMode)
	} else {
		// Merge rather than replace: functions declared by an earlier
		// Run still look up their locals by the IDs resolved back then.
		if ev.Table == nil {
			ev.Table = resolver.Table{}
		}
		for id, dist := range table {
			ev.Table[id] = dist
		}
	}
	runtimeDiags := ev.Interpret(stmts)
	if len(runtimeDiags) > 0 {
		return RunResult{Diagnostics: runtimeDiags, Exit: diag.ExitRuntime}
	}
	return RunResult{Exit: diag.ExitOK}
}

// NewSession constructs a long-lived Evaluator a REPL can pass back into
// repeated Run calls via Options.Evaluator, so `var`/`fun` declarations
// from one line are visible on the next.
func NewSession(out io.Writer) *eval.Evaluator {
	return eval.New(out, nil, true)
}
