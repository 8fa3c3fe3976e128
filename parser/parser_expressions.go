/*
File    : twig/parser/parser_expressions.go
*/
package parser

import (
	"github.com/twiglang/twig/diag"
	"github.com/twiglang/twig/lexer"
)

const maxArguments = 255

// expression is the entry point of the precedence chain (spec.md
// section 4.2): assignment -> or -> and -> equality -> comparison ->
// term -> factor -> unary -> call -> primary.
func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment parses the lowest-precedence level. The left-hand side is
// first parsed as an ordinary expression; only if a '=' follows is it
// reinterpreted as an assignment target. This lets `a = b = c` work
// right-associatively without a separate lvalue grammar.
func (p *Parser) assignment() Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment() // right-associative
		if v, ok := expr.(*Variable); ok {
			return NewAssign(v.Name, value)
		}
		p.reportAt(diag.KindInvalidAssignmentTarget, equals, "Invalid assignment target.")
		return expr
	}
	return expr
}

func (p *Parser) or() Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		op := p.previous()
		right := p.and()
		expr = NewLogical(expr, op, right)
	}
	return expr
}

func (p *Parser) and() Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		op := p.previous()
		right := p.equality()
		expr = NewLogical(expr, op, right)
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(lexer.PLUS, lexer.MINUS) {
		op := p.previous()
		right := p.factor()
		expr = NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(lexer.STAR, lexer.SLASH, lexer.PERCENT) {
		op := p.previous()
		right := p.unary()
		expr = NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		operand := p.unary()
		return NewUnary(op, operand)
	}
	return p.call()
}

// call parses a primary followed by zero or more postfix '(' arg-list
// ')' groups, each producing a nested Call node (spec.md section 4.2).
func (p *Parser) call() Expr {
	expr := p.primary()
	for {
		if p.match(lexer.LEFT_PAREN) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArguments {
				p.reportAt(diag.KindTooManyArguments, p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return NewCall(callee, paren, args)
}

func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.FALSE):
		return NewLiteral(false)
	case p.match(lexer.TRUE):
		return NewLiteral(true)
	case p.match(lexer.NIL):
		return NewLiteral(nil)
	case p.match(lexer.NUMBER, lexer.STRING):
		return NewLiteral(p.previous().Literal)
	case p.match(lexer.IDENTIFIER):
		return NewVariable(p.previous())
	case p.match(lexer.LEFT_PAREN):
		inner := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return NewGrouping(inner)
	case p.match(lexer.FUN):
		return p.lambda()
	}
	p.reportAt(diag.KindExpectToken, p.peek(), "Expect expression.")
	return NewLiteral(nil)
}

// lambda parses `fun` used as an expression prefix: an anonymous
// function `fun(params) { body }` (spec.md section 4.2).
func (p *Parser) lambda() Expr {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'fun'.")
	params := p.parameterList()
	p.consume(lexer.LEFT_BRACE, "Expect '{' before lambda body.")
	body := p.block()
	return NewLambda(params, body)
}

// parameterList parses a comma-separated, possibly empty, list of
// identifiers up to the closing ')'. Shared by function declarations
// and lambdas.
func (p *Parser) parameterList() []lexer.Token {
	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArguments {
				p.reportAt(diag.KindTooManyArguments, p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")
	return params
}
