/*
File    : twig/parser/parser_statements.go
*/
package parser

import "github.com/twiglang/twig/lexer"

// declaration parses one top-level or block-level declaration, recovering
// via synchronize (parser_helpers.go) if a syntax error is encountered
// partway through. The statement is returned even when it had errors,
// so the tree stays as complete as recovery allows; it is never nil.
func (p *Parser) declaration() Stmt {
	errCountBefore := len(p.errors)
	var stmt Stmt
	switch {
	case p.match(lexer.VAR):
		stmt = p.varDeclaration()
	case p.check(lexer.FUN) && p.checkNext(lexer.IDENTIFIER):
		p.advance() // consume 'fun'
		stmt = p.functionDeclaration()
	default:
		stmt = p.statement()
	}
	if len(p.errors) > errCountBefore {
		p.synchronize()
	}
	return stmt
}

// checkNext looks one token past the current one without consuming
// anything — used to disambiguate `fun` as a statement prefix
// (function declaration) from `fun` as an expression prefix (lambda).
func (p *Parser) checkNext(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	if p.current+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[p.current+1].Type == t
}

func (p *Parser) varDeclaration() Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")
	var initializer Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &VarStmt{Name: name, Initializer: initializer}
}

// functionDeclaration parses `fun name(params) { body }` after the
// leading 'fun' has already been consumed by declaration().
func (p *Parser) functionDeclaration() Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect function name.")
	p.consume(lexer.LEFT_PAREN, "Expect '(' after function name.")
	params := p.parameterList()
	p.consume(lexer.LEFT_BRACE, "Expect '{' before function body.")
	body := p.block()
	return &FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) statement() Stmt {
	switch {
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.LEFT_BRACE):
		return &BlockStmt{Statements: p.block()}
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.BREAK):
		return p.breakStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return &PrintStmt{Expression: value}
}

func (p *Parser) expressionStatement() Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ExpressionStmt{Expression: expr}
}

// block parses statements until the matching '}'. The caller is
// responsible for having consumed the opening '{'.
func (p *Parser) block() []Stmt {
	var stmts []Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

func (p *Parser) ifStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")
	thenBranch := p.statement()
	var elseBranch Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &IfStmt{Condition: cond, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after while condition.")
	body := p.statement()
	return &WhileStmt{Condition: cond, Body: body}
}

// forStatement desugars `for (init; cond; incr) body` into
// Block(init, While(cond, Block(body, Expression(incr)))) at parse time
// (spec.md section 4.2), so the evaluator needs only one loop construct.
func (p *Parser) forStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = NewLiteral(true)
	}
	body = &WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) returnStatement() Stmt {
	keyword := p.previous()
	var value Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after return value.")
	return &ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) breakStatement() Stmt {
	keyword := p.previous()
	p.consume(lexer.SEMICOLON, "Expect ';' after 'break'.")
	return &BreakStmt{Keyword: keyword}
}
