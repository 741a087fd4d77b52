package parser

import (
	"github.com/SparkyPotato/Wave/internal/ast"
	"github.com/SparkyPotato/Wave/internal/diag"
	"github.com/SparkyPotato/Wave/internal/token"
)

// parseExpression enters the precedence ladder at its lowest level
// (§4.6).
func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignment()
}

// parseAssignment is right-associative: `Or [ = Assignment ]`. If the
// left side isn't a VarAccess, the assignment is rejected and Or's
// result is returned unchanged (§4.6, invariant 7).
func (p *Parser) parseAssignment() ast.Expression {
	left := p.parseOr()
	if !p.at(token.Eq) {
		return left
	}
	va, ok := left.(*ast.VarAccess)
	if !ok {
		p.report(diag.SevError, p.peek().Span, "invalid assignment, can only assign to variables")
		return left
	}
	eq := p.advance()
	return &ast.Assignment{Var: va.Var, Value: p.parseAssignment(), Eq: eq}
}

func (p *Parser) parseOr() ast.Expression {
	left := p.parseAnd()
	for p.at(token.Or) {
		op := p.advance()
		left = &ast.Logical{Left: left, Operator: op, Right: p.parseAnd()}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expression {
	left := p.parseEquality()
	for p.at(token.And) {
		op := p.advance()
		left = &ast.Logical{Left: left, Operator: op, Right: p.parseEquality()}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expression {
	left := p.parseComparison()
	for p.at(token.EqEq) || p.at(token.NotEq) {
		op := p.advance()
		left = &ast.Binary{Left: left, Operator: op, Right: p.parseComparison()}
	}
	return left
}

func (p *Parser) parseComparison() ast.Expression {
	left := p.parseTerm()
	for p.at(token.Greater) || p.at(token.GreaterEq) || p.at(token.Less) || p.at(token.LessEq) {
		op := p.advance()
		left = &ast.Binary{Left: left, Operator: op, Right: p.parseTerm()}
	}
	return left
}

func (p *Parser) parseTerm() ast.Expression {
	left := p.parseFactor()
	for p.at(token.Plus) || p.at(token.Minus) {
		op := p.advance()
		left = &ast.Binary{Left: left, Operator: op, Right: p.parseFactor()}
	}
	return left
}

func (p *Parser) parseFactor() ast.Expression {
	left := p.parseUnary()
	for p.at(token.Star) || p.at(token.Slash) || p.at(token.Percent) {
		op := p.advance()
		left = &ast.Binary{Left: left, Operator: op, Right: p.parseUnary()}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	if p.at(token.Not) || p.at(token.Minus) {
		op := p.advance()
		return &ast.Unary{Operator: op, Right: p.parseUnary()}
	}
	return p.parseCall()
}

// parseCall is `Primary [ ( args ) ]` — a single call suffix, since
// the grammar does not chain calls (§4.6).
func (p *Parser) parseCall() ast.Expression {
	callee := p.parsePrimary()
	if !p.at(token.LParen) {
		return callee
	}
	lparen := p.advance()
	call := &ast.Call{Callee: lparen, Fn: callee}
	for p.isGood() && !p.at(token.RParen) {
		call.Args = append(call.Args, p.parseExpression())
		if !p.check(token.Comma) {
			break
		}
	}
	p.ensure(token.RParen, "expected ')' after call arguments")
	return call
}

// parsePrimary handles literals, variable access (with optional
// indexing or `copy`), initializer lists, and the `(` ambiguity
// between an anonymous function and a parenthesized group (§4.6).
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.peek()
	switch tok.Kind {
	case token.True, token.False, token.Integer, token.Real, token.String:
		p.advance()
		return &ast.Literal{Token: tok}
	case token.Copy:
		p.advance()
		if !p.at(token.Ident) {
			p.report(diag.SevError, p.peek().Span, "can only only copy variables")
			p.note(tok.Span, "consider removing 'copy'")
			p.fault("expected identifier after 'copy'")
		}
		return p.parseVarAccessOrIndex(true)
	case token.Ident:
		return p.parseVarAccessOrIndex(false)
	case token.LBrace:
		return p.parseInitializerList(tok)
	case token.LParen:
		if p.isFunction() {
			return p.parseFunctionExpr(tok)
		}
		p.advance()
		expr := p.parseExpression()
		p.ensure(token.RParen, "expected ')' after expression")
		return &ast.Group{Expr: expr, LParen: tok}
	default:
		p.fault("expected expression")
		return nil
	}
}

func (p *Parser) parseVarAccessOrIndex(isCopy bool) ast.Expression {
	id := p.parseIdentifier()
	va := ast.VarAccess{Var: id, IsCopy: isCopy}
	if !p.at(token.LBracket) {
		return &va
	}
	bracket := p.advance()
	index := p.parseExpression()
	p.ensure(token.RBracket, "expected ']' after array index")
	return &ast.ArrayIndex{VarAccess: va, Index: index, Bracket: bracket}
}

func (p *Parser) parseInitializerList(brace token.Token) ast.Expression {
	p.advance()
	lit := &ast.InitializerList{Brace: brace}
	for p.isGood() && !p.at(token.RBrace) {
		lit.Data = append(lit.Data, p.parseExpression())
		if !p.check(token.Comma) {
			break
		}
	}
	p.ensure(token.RBrace, "expected '}' after initializer list")
	return lit
}

// isFunction decides, from a `(` not yet consumed, whether what
// follows is an anonymous function or a parenthesized group: scan
// past an optional single identifier (or an immediate `)`), advance
// to the matching `)`, then check whether the next token is `:` or
// `{` (§4.6, "Anonymous function detection").
func (p *Parser) isFunction() bool {
	save := p.tok
	defer func() { p.tok = save }()

	p.advance() // '('
	if p.at(token.Ident) {
		p.advance()
	}
	depth := 0
	for p.isGood() && !(depth == 0 && p.at(token.RParen)) {
		switch p.peek().Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		}
		p.advance()
	}
	if p.at(token.RParen) {
		p.advance()
	}
	return p.at(token.Colon) || p.at(token.LBrace)
}

// parseFunctionExpr parses an anonymous function used as an
// expression: `( params ) [: [const] Type] { … }`.
func (p *Parser) parseFunctionExpr(lparen token.Token) ast.Expression {
	return p.parseFunctionTail()
}

// parseFunctionTail parses the shared tail shape used by both
// function definitions and anonymous function expressions, starting
// right at the opening `(` (§4.5, §4.6): `( params ) [: [const] Type] { … }`.
func (p *Parser) parseFunctionTail() *ast.Function {
	lparen := p.ensure(token.LParen, "expected '(' to start parameter list")
	fn := &ast.Function{LParen: lparen}

	for p.isGood() && !p.at(token.RParen) {
		if p.at(token.Period) && p.peekAt(1) == token.Period && p.peekAt(2) == token.Period {
			p.advance()
			p.advance()
			p.advance()
			fn.IsVariadic = true
			break
		}
		fn.Params = append(fn.Params, p.parseParam())
		if !p.check(token.Comma) {
			break
		}
	}
	p.ensure(token.RParen, "expected ')' after parameter list")

	if p.check(token.Colon) {
		fn.IsReturnConst = p.check(token.Const)
		fn.ReturnType = p.parseType()
	}
	fn.Body = p.parseBlock()
	return fn
}
