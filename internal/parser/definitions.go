package parser

import (
	"github.com/SparkyPotato/Wave/internal/ast"
	"github.com/SparkyPotato/Wave/internal/diag"
	"github.com/SparkyPotato/Wave/internal/token"
)

// parseGlobalDefinition is an optional `export` followed by one
// Definition (§4.5).
func (p *Parser) parseGlobalDefinition() ast.GlobalDefinition {
	exported := p.check(token.Export)
	return ast.GlobalDefinition{Exported: exported, Def: p.parseDefinition()}
}

// parseDefinition dispatches on the current token to the matching
// definition variant (§4.5).
func (p *Parser) parseDefinition() ast.Definition {
	switch p.peek().Kind {
	case token.Func:
		return p.parseFunctionDefinition()
	case token.Class:
		return p.parseClassDefinition()
	case token.Enum:
		return p.parseEnumDefinition()
	case token.Var, token.Const, token.Static:
		return p.parseVarDefinition()
	default:
		p.fault("expected definition")
		return nil
	}
}

// isDefinitionStart reports whether the current token begins a
// Definition, used by statement dispatch to route into local
// definitions (§4.7).
func (p *Parser) isDefinitionStart() bool {
	switch p.peek().Kind {
	case token.Func, token.Class, token.Enum, token.Var, token.Const, token.Static:
		return true
	default:
		return false
	}
}

// parseVarDefinition is `(var|const|static) ident [: Type] [= Expr];`.
// Both type and value may be omitted — that specific combination is
// flagged as an error but the definition is still built (§9).
func (p *Parser) parseVarDefinition() *ast.VarDefinition {
	kindTok := p.advance()
	return p.parseVarDefinitionBody(kindTok)
}

// parseVarDefinitionBody parses everything after the var/const/static
// keyword, which the caller has already consumed (used both by the
// top-level entry point and by class member dispatch, which needs to
// inspect the keyword before committing to this path).
func (p *Parser) parseVarDefinitionBody(kindTok token.Token) *ast.VarDefinition {
	def := &ast.VarDefinition{Ident: p.ensure(token.Ident, "expected identifier"), VarKind: varKindOf(kindTok.Kind)}

	if p.check(token.Colon) {
		def.DataType = p.parseType()
	}
	if p.check(token.Eq) {
		def.Value = p.parseExpression()
	}
	if def.DataType == nil && def.Value == nil {
		p.report(diag.SevError, def.Ident.Span, "type can only be omitted if variable is initialized")
	}
	p.ensure(token.Semicolon, "expected ';' after variable definition")
	return def
}

func varKindOf(k token.Kind) ast.VarKind {
	switch k {
	case token.Const:
		return ast.KindConst
	case token.Static:
		return ast.KindStatic
	default:
		return ast.KindVar
	}
}

// parseFunctionDefinition is `func ident Function` at module or local
// scope.
func (p *Parser) parseFunctionDefinition() *ast.FunctionDefinition {
	p.ensure(token.Func, "expected 'func'")
	ident := p.ensure(token.Ident, "expected identifier")
	return &ast.FunctionDefinition{Ident: ident, Func: p.parseFunctionTail()}
}

// parseEnumDefinition is `enum ident { A, B, C };`.
func (p *Parser) parseEnumDefinition() *ast.EnumDefinition {
	p.ensure(token.Enum, "expected 'enum'")
	ident := p.ensure(token.Ident, "expected identifier")
	p.ensure(token.LBrace, "expected '{' after enum name")

	def := &ast.EnumDefinition{Ident: ident}
	for p.isGood() && !p.at(token.RBrace) {
		def.Elements = append(def.Elements, p.ensure(token.Ident, "expected enum member"))
		if !p.check(token.Comma) {
			break
		}
	}
	p.ensure(token.RBrace, "expected '}' after enum body")
	p.ensure(token.Semicolon, "expected ';' after enum definition")
	return def
}
