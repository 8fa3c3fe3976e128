/*
File    : twig/diag/diag.go
*/

// Package diag defines the diagnostic shape shared by every stage of the
// interpreter pipeline (scanner, parser, resolver, evaluator). A Diagnostic
// carries enough information to render the "[line L] Error<HINT>: MESSAGE"
// format the driver and REPL both rely on, without any stage needing to
// know about the others' formatting conventions.
package diag

import "fmt"

// Kind classifies a Diagnostic by the stage that raised it and, within
// that stage, the specific condition, so callers can tell conditions
// apart without matching message strings. twig.Run decides whether
// evaluation may proceed by which stage reported diagnostics, not by Kind.
type Kind string

const (
	// Lexical diagnostics: non-fatal, scanning continues.
	KindUnexpectedChar      Kind = "UnexpectedChar"
	KindUnterminatedString  Kind = "UnterminatedString"

	// Syntax diagnostics: trigger synchronize, parsing resumes.
	KindExpectToken            Kind = "ExpectToken"
	KindInvalidAssignmentTarget Kind = "InvalidAssignmentTarget"
	KindTooManyArguments       Kind = "TooManyArguments"

	// Static (resolver) diagnostics: all collected, evaluation skipped if any occurred.
	KindDuplicateLocal        Kind = "DuplicateLocal"
	KindReadInOwnInitializer  Kind = "ReadInOwnInitializer"
	KindReturnFromTopLevel    Kind = "ReturnFromTopLevel"
	KindUnreachableAfterReturn Kind = "UnreachableAfterReturn"

	// Runtime diagnostics: first one aborts the current top-level statement.
	KindTypeError        Kind = "TypeError"
	KindDivideByZero     Kind = "DivideByZero"
	KindArity            Kind = "Arity"
	KindNotCallable      Kind = "NotCallable"
	KindUndefinedVariable Kind = "UndefinedVariable"
	KindBreakOutsideLoop Kind = "BreakOutsideLoop"
)

// Stage identifies which pipeline stage produced a Diagnostic, which in
// turn determines how twig.Run maps diagnostics to an ExitKind.
type Stage int

const (
	StageLexical Stage = iota
	StageSyntax
	StageStatic
	StageRuntime
)

// Diagnostic is the uniform error/warning value threaded through the
// scanner, parser, resolver, and evaluator. Line is always set; Hint is
// empty, "at end", or "at 'LEXEME'" per spec.md section 6.
type Diagnostic struct {
	Line    int
	Hint    string
	Message string
	Kind    Kind
	Stage   Stage
}

// New builds a Diagnostic with no location hint.
func New(stage Stage, kind Kind, line int, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Line: line, Message: fmt.Sprintf(format, args...), Kind: kind, Stage: stage}
}

// NewAt builds a Diagnostic with a "at 'LEXEME'" hint.
func NewAt(stage Stage, kind Kind, line int, lexeme string, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Line: line, Hint: " at '" + lexeme + "'", Message: fmt.Sprintf(format, args...), Kind: kind, Stage: stage}
}

// NewAtEnd builds a Diagnostic with the "at end" hint, used when a parse
// error occurs while positioned on the EOF token.
func NewAtEnd(stage Stage, kind Kind, line int, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Line: line, Hint: " at end", Message: fmt.Sprintf(format, args...), Kind: kind, Stage: stage}
}

// Error renders the diagnostic per spec.md section 6:
// "[line L] Error<HINT>: MESSAGE". Runtime diagnostics additionally
// append a second line, "[line L]", handled by RuntimeError below so
// that Error() alone stays usable for lexical/syntax/static reporting.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Hint, d.Message)
}

// RuntimeError renders a runtime diagnostic with the extra "[line L]"
// trailer spec.md section 6 requires for runtime errors specifically.
func (d Diagnostic) RuntimeError() string {
	return fmt.Sprintf("%s\n[line %d]", d.Error(), d.Line)
}

// ExitKind is the outcome twig.Run reports to its callers (CLI, REPL,
// tests), conventionally mapped to process exit codes 0, 65, 70 by the
// CLI — the core itself never calls os.Exit.
type ExitKind int

const (
	ExitOK ExitKind = iota
	ExitSyntaxOrStatic
	ExitRuntime
)
