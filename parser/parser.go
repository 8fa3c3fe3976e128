/*
File    : twig/parser/parser.go
*/

// Package parser turns a lexer.Token stream into the Expr/Stmt AST
// defined in ast.go. It is a standard recursive-descent parser with
// panic-mode error recovery (synchronize, in parser_helpers.go): a
// syntax error is recorded, the parser skips forward to a plausible
// statement boundary, and parsing resumes so one source file can
// surface every syntax error it has, not just the first.
package parser

import (
	"github.com/twiglang/twig/diag"
	"github.com/twiglang/twig/lexer"
)

// Parser consumes a fixed token slice (produced by lexer.Lexer.Scan) and
// produces a program: a slice of top-level statements.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []diag.Diagnostic
}

// New creates a Parser over tokens. tokens must end with an EOF token,
// as lexer.Lexer.Scan guarantees.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse runs the parser to completion, returning every statement it
// could build. Even when errors occurred, the returned slice is as
// complete as recovery allowed — callers must still check HasErrors
// before evaluating, per spec.md section 4.2.
func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// HasErrors reports whether any syntax diagnostic was recorded.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

// Errors returns every syntax diagnostic recorded during Parse.
func (p *Parser) Errors() []diag.Diagnostic { return p.errors }
