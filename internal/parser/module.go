package parser

import (
	"github.com/SparkyPotato/Wave/internal/ast"
	"github.com/SparkyPotato/Wave/internal/diag"
	"github.com/SparkyPotato/Wave/internal/token"
)

// parseModule runs the top-level sequence: `module <ident>;`, then
// imports, then definitions until the stream is exhausted (§4.3).
func (p *Parser) parseModule() *ast.Module {
	p.ensure(token.Module, "expected 'module' at the start of a file")
	def := p.parseIdentifier()
	p.ensure(token.Semicolon, "expected ';' after module declaration")

	mod := &ast.Module{Def: def}

	for p.isGood() && p.at(token.Import) {
		p.recoverTopLevel(func() {
			p.parseImport(mod)
		})
	}

	for p.isGood() {
		p.recoverTopLevel(func() {
			mod.Definitions = append(mod.Definitions, p.parseGlobalDefinition())
		})
	}

	return mod
}

// parseIdentifier is one or more identifier tokens separated by '.'.
func (p *Parser) parseIdentifier() ast.Identifier {
	id := ast.Identifier{Path: []token.Token{p.ensure(token.Ident, "expected identifier")}}
	for p.check(token.Period) {
		id.Path = append(id.Path, p.ensure(token.Ident, "expected identifier"))
	}
	return id
}

// parseImport is `import` followed by either `extern "path" ;` or a
// dotted identifier with an optional `as alias`, terminated by `;`.
func (p *Parser) parseImport(mod *ast.Module) {
	p.ensure(token.Import, "expected 'import'")

	if p.check(token.Extern) {
		if !p.at(token.String) {
			p.report(diag.SevError, p.peek().Span, "extern import must be a string literal")
			p.note(p.previous().Span, "to import a Wave module, remove 'extern'")
			p.synchronizeToSemicolon()
			return
		}
		path := p.advance()
		p.ensure(token.Semicolon, "expected ';' after import")
		mod.CImports = append(mod.CImports, ast.CImport{Path: path})
		return
	}

	imported := p.parseIdentifier()
	alias := imported
	if p.check(token.As) {
		alias = p.parseIdentifier()
	}
	p.ensure(token.Semicolon, "expected ';' after import")
	mod.Imports = append(mod.Imports, ast.ModuleImport{Imported: imported, As: alias})
}

// synchronizeToSemicolon advances past the current construct up to
// and including the next Semicolon, used by the extern-import
// recovery path which doesn't go through Ensure/fault.
func (p *Parser) synchronizeToSemicolon() {
	for p.isGood() && !p.at(token.Semicolon) {
		p.advance()
	}
	if p.at(token.Semicolon) {
		p.advance()
	}
}
