package parser

import (
	"github.com/SparkyPotato/Wave/internal/ast"
	"github.com/SparkyPotato/Wave/internal/token"
)

// parseType parses one type expression, then wraps it in ArrayType
// for every trailing `[...]` suffix (§4.8).
func (p *Parser) parseType() ast.Type {
	tok := p.peek()
	var t ast.Type

	switch tok.Kind {
	case token.IntT:
		p.advance()
		t = &ast.SimpleType{Which: ast.Int, Token: tok}
	case token.RealT:
		p.advance()
		t = &ast.SimpleType{Which: ast.Real, Token: tok}
	case token.CharT:
		p.advance()
		t = &ast.SimpleType{Which: ast.Char, Token: tok}
	case token.BoolT:
		p.advance()
		t = &ast.SimpleType{Which: ast.Bool, Token: tok}
	case token.Func:
		t = p.parseFuncType(tok)
	case token.TypeOf:
		p.advance()
		t = &ast.TypeOf{Expr: p.parseExpression(), Token: tok}
	case token.Tuple:
		t = p.parseTupleType(tok)
	case token.LParen:
		p.advance()
		t = p.parseType()
		p.ensure(token.RParen, "expected ')' after parenthesized type")
	case token.Ident:
		t = &ast.ClassType{Ident: p.parseIdentifier(), Token: tok}
	default:
		p.fault("expected type")
	}

	for p.isGood() && p.at(token.LBracket) {
		bracket := p.advance()
		var size ast.Expression
		if !p.at(token.RBracket) {
			size = p.parseExpression()
		}
		p.ensure(token.RBracket, "expected ']' after array type")
		t = &ast.ArrayType{HoldType: t, Size: size, Token: bracket}
	}
	return t
}

// parseFuncType is `func ( T1, T2, … ) [: Type]`.
func (p *Parser) parseFuncType(tok token.Token) ast.Type {
	p.ensure(token.Func, "expected 'func'")
	p.ensure(token.LParen, "expected '(' after 'func'")

	ft := &ast.FuncType{Token: tok}
	for p.isGood() && !p.at(token.RParen) {
		ft.ParamTypes = append(ft.ParamTypes, p.parseType())
		if !p.check(token.Comma) {
			break
		}
	}
	p.ensure(token.RParen, "expected ')' after function type parameters")
	if p.check(token.Colon) {
		ft.ReturnType = p.parseType()
	}
	return ft
}

// parseTupleType is `tuple < T1, T2, … >`.
func (p *Parser) parseTupleType(tok token.Token) ast.Type {
	p.ensure(token.Tuple, "expected 'tuple'")
	p.ensure(token.Less, "expected '<' after 'tuple'")

	tt := &ast.TupleType{Token: tok}
	for p.isGood() && !p.at(token.Greater) {
		tt.Types = append(tt.Types, p.parseType())
		if !p.check(token.Comma) {
			break
		}
	}
	p.ensure(token.Greater, "expected '>' after tuple type")
	return tt
}

// parseParam is `ident [: [const] Type]`. When the colon is absent,
// or present but followed directly by a closing delimiter, the
// parameter's type defaults to SimpleType{Generic} (§3.3, §4.8).
func (p *Parser) parseParam() ast.Parameter {
	ident := p.ensure(token.Ident, "expected parameter name")
	param := ast.Parameter{Ident: ident, DataType: &ast.SimpleType{Which: ast.Generic, Token: ident}}

	if p.check(token.Colon) {
		if p.at(token.Comma) || p.at(token.RParen) {
			return param
		}
		param.IsConst = p.check(token.Const)
		param.DataType = p.parseType()
	}
	return param
}
