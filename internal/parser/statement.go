package parser

import (
	"github.com/SparkyPotato/Wave/internal/ast"
	"github.com/SparkyPotato/Wave/internal/diag"
	"github.com/SparkyPotato/Wave/internal/token"
)

// parseBlock is a brace-delimited sequence of statements, each
// recovered independently at statement granularity (§4.7).
func (p *Parser) parseBlock() *ast.Block {
	brace := p.ensure(token.LBrace, "expected '{'")
	block := &ast.Block{Brace: brace}
	for p.isGood() && !p.at(token.RBrace) {
		block.Statements = append(block.Statements, p.recoverStatement(p.parseStatement))
	}
	p.ensure(token.RBrace, "expected '}'")
	return block
}

// parseStatement dispatches on the current token to the matching
// statement variant (§4.7).
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.isDefinitionStart():
		return &ast.DefinitionStatement{Def: p.parseDefinition()}
	case p.at(token.While):
		return p.parseWhile()
	case p.at(token.For):
		return p.parseFor()
	case p.at(token.Return):
		return p.parseReturn()
	case p.at(token.Break):
		tok := p.advance()
		p.ensure(token.Semicolon, "expected ';' after 'break'")
		return &ast.Break{Token: tok}
	case p.at(token.Continue):
		tok := p.advance()
		p.ensure(token.Semicolon, "expected ';' after 'continue'")
		return &ast.Continue{Token: tok}
	case p.at(token.LBrace):
		return p.parseBlock()
	case p.at(token.If):
		return p.parseIf()
	case p.at(token.Try):
		return p.parseTry()
	case p.at(token.Throw):
		return p.parseThrow()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.peek()
	expr := p.parseExpression()
	p.ensure(token.Semicolon, "expected ';' after expression")
	return &ast.ExpressionStatement{Expr: expr, Token: tok}
}

// parseIf is `if cond { … } (else if cond { … })* (else { … })?`
// (§4.7).
func (p *Parser) parseIf() ast.Statement {
	tok := p.ensure(token.If, "expected 'if'")
	stmt := &ast.If{Token: tok, Condition: p.parseExpression(), True: p.parseBlock()}

	for p.at(token.Else) && p.peekAt(1) == token.If {
		p.advance()
		p.advance()
		stmt.ElseIfs = append(stmt.ElseIfs, ast.ElseIf{Condition: p.parseExpression(), Body: p.parseBlock()})
	}
	if p.check(token.Else) {
		stmt.Else = p.parseBlock()
	}
	return stmt
}

// parseWhile is `while cond { … }`.
func (p *Parser) parseWhile() ast.Statement {
	tok := p.ensure(token.While, "expected 'while'")
	return &ast.While{Token: tok, Condition: p.parseExpression(), Body: p.parseBlock()}
}

// parseFor speculatively scans ahead for `in` (before any `{`) to
// disambiguate RangeFor from ConditionFor, then parses the chosen
// form (§4.7, "For disambiguation").
func (p *Parser) parseFor() ast.Statement {
	tok := p.ensure(token.For, "expected 'for'")
	if p.scanIsRangeFor() {
		return p.parseRangeFor(tok)
	}
	return p.parseConditionFor(tok)
}

func (p *Parser) scanIsRangeFor() bool {
	save := p.tok
	defer func() { p.tok = save }()
	for p.isGood() {
		switch p.peek().Kind {
		case token.In:
			return true
		case token.LBrace:
			return false
		}
		p.advance()
	}
	return false
}

func (p *Parser) parseRangeFor(tok token.Token) ast.Statement {
	ident := p.ensure(token.Ident, "expected identifier")
	p.ensure(token.In, "expected 'in'")
	rangeExpr := p.parseExpression()
	return &ast.RangeFor{Token: tok, Ident: ident, Range: rangeExpr, Body: p.parseBlock()}
}

// parseConditionFor is the C-style `for init; cond; incr { … }`; each
// clause may be empty. The body's `{` terminates the increment clause.
func (p *Parser) parseConditionFor(tok token.Token) ast.Statement {
	stmt := &ast.ConditionFor{Token: tok}

	if !p.at(token.Semicolon) {
		if p.isDefinitionStart() {
			stmt.Init.Def = p.parseDefinition()
		} else {
			stmt.Init.Expr = p.parseExpression()
			p.ensure(token.Semicolon, "expected ';' after for-loop initializer")
		}
	} else {
		p.advance()
	}

	if !p.at(token.Semicolon) {
		stmt.Cond = p.parseExpression()
	}
	p.ensure(token.Semicolon, "expected ';' after for-loop condition")

	if !p.at(token.LBrace) {
		stmt.Incr = p.parseExpression()
	}
	stmt.Body = p.parseBlock()
	return stmt
}

// parseReturn is `return [value];`.
func (p *Parser) parseReturn() ast.Statement {
	tok := p.ensure(token.Return, "expected 'return'")
	ret := &ast.Return{Token: tok}
	if !p.at(token.Semicolon) {
		ret.Value = p.parseExpression()
	}
	p.ensure(token.Semicolon, "expected ';' after return statement")
	return ret
}

// parseThrow is `throw [value];`.
func (p *Parser) parseThrow() ast.Statement {
	tok := p.ensure(token.Throw, "expected 'throw'")
	th := &ast.Throw{Token: tok}
	if !p.at(token.Semicolon) {
		th.Value = p.parseExpression()
	}
	p.ensure(token.Semicolon, "expected ';' after throw statement")
	return th
}

// parseTry is `try { … } (catch param { … })+`. Zero catches is an
// error, but the node is still returned (§4.7, §9).
func (p *Parser) parseTry() ast.Statement {
	tok := p.ensure(token.Try, "expected 'try'")
	stmt := &ast.Try{Token: tok, Body: p.parseBlock()}

	for p.check(token.Catch) {
		param := p.parseParam()
		stmt.Catches = append(stmt.Catches, ast.Catch{Param: param, Body: p.parseBlock()})
	}
	if len(stmt.Catches) == 0 {
		p.report(diag.SevError, p.peek().Span, "expected catch block")
	}
	return stmt
}
