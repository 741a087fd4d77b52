package parser

import (
	"github.com/SparkyPotato/Wave/internal/ast"
	"github.com/SparkyPotato/Wave/internal/token"
)

// synchronize advances the cursor until either a Semicolon has just
// been consumed or a definition-starting keyword is current, giving
// the caller a known-good boundary to resume parsing from (§4.3, §7).
func (p *Parser) synchronize() {
	for p.isGood() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Func, token.For, token.If, token.While, token.Return, token.Ident:
			return
		}
		p.advance()
	}
}

// recoverStatement runs fn, and on parse fault synchronizes and
// returns a placeholder ExpressionStatement in its place — the
// statement-granularity recovery site described in §4.3 and §4.7.
func (p *Parser) recoverStatement(fn func() ast.Statement) (res ast.Statement) {
	func() {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(parseFault); !ok {
					panic(r)
				}
				tok := p.peek()
				p.synchronize()
				res = &ast.ExpressionStatement{Token: tok}
			}
		}()
		res = fn()
	}()
	return res
}

// recoverTopLevel runs fn, and on parse fault synchronizes and reports
// no definition for that iteration — the module-level recovery site
// used by the import and global-definition loops (§4.3).
func (p *Parser) recoverTopLevel(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseFault); !ok {
				panic(r)
			}
			p.synchronize()
		}
	}()
	fn()
}
