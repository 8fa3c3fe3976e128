/*
File    : twig/parser/parser_helpers.go
*/
package parser

import (
	"github.com/twiglang/twig/diag"
	"github.com/twiglang/twig/lexer"
)

func (p *Parser) peek() lexer.Token { return p.tokens[p.current] }

func (p *Parser) previous() lexer.Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.EOF }

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

// match advances and returns true if the current token has any of the
// given types, otherwise leaves the cursor untouched.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume requires the current token to have type t, advancing past it;
// otherwise it records an ExpectToken diagnostic and returns the current
// token anyway so callers can keep building a best-effort tree.
func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	p.reportAt(diag.KindExpectToken, p.peek(), message)
	return p.peek()
}

// reportAt records a diagnostic with an " at end" / " at 'LEXEME'" hint
// depending on whether tok is the EOF sentinel, per spec.md section 6.
func (p *Parser) reportAt(kind diag.Kind, tok lexer.Token, message string) {
	if tok.Type == lexer.EOF {
		p.errors = append(p.errors, diag.NewAtEnd(diag.StageSyntax, kind, tok.Line, "%s", message))
		return
	}
	p.errors = append(p.errors, diag.NewAt(diag.StageSyntax, kind, tok.Line, tok.Lexeme, "%s", message))
}

// synchronize implements the panic-mode recovery spec.md section 4.2
// describes: skip tokens until just past the next ';' or until the next
// token starts a new declaration/statement. If the erroring statement
// already ended at its ';', the parser is already just past it and
// nothing is skipped.
func (p *Parser) synchronize() {
	if p.current > 0 && p.previous().Type == lexer.SEMICOLON {
		return
	}
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS, lexer.FOR, lexer.FUN, lexer.IF, lexer.PRINT, lexer.RETURN, lexer.VAR, lexer.WHILE:
			return
		}
		p.advance()
	}
}
