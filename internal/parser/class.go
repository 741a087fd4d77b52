package parser

import (
	"github.com/SparkyPotato/Wave/internal/ast"
	"github.com/SparkyPotato/Wave/internal/diag"
	"github.com/SparkyPotato/Wave/internal/token"
)

// parseClassDefinition is `class ident [: Bases] { members… };`
// (§4.5). Members are distributed into Public, Protected, or Private
// according to the most recently seen visibility label; the bucket
// active before any label is Public (§9).
func (p *Parser) parseClassDefinition() *ast.ClassDefinition {
	p.ensure(token.Class, "expected 'class'")
	class := &ast.ClassDefinition{Ident: p.ensure(token.Ident, "expected class name")}

	if p.check(token.Colon) {
		class.Bases = append(class.Bases, p.parseIdentifier())
		for p.check(token.Comma) {
			class.Bases = append(class.Bases, p.parseIdentifier())
		}
	}

	p.ensure(token.LBrace, "expected '{' after class header")
	bucket := &class.Public
	for p.isGood() && !p.at(token.RBrace) {
		if next := p.visibilityLabel(); next != nil {
			bucket = next(class)
			continue
		}
		p.recoverTopLevel(func() {
			*bucket = append(*bucket, p.parseClassMember())
		})
	}
	p.ensure(token.RBrace, "expected '}' after class body")
	p.ensure(token.Semicolon, "expected ';' after class definition")
	return class
}

// visibilityLabel consumes a `public:` / `protected:` / `private:`
// label if present and returns a selector for the bucket it switches
// to; otherwise it consumes nothing and returns nil.
func (p *Parser) visibilityLabel() func(*ast.ClassDefinition) *[]ast.Definition {
	var kind token.Kind
	switch p.peek().Kind {
	case token.Public, token.Protected, token.Private:
		kind = p.peek().Kind
	default:
		return nil
	}
	if p.peekAt(1) != token.Colon {
		return nil
	}
	p.advance()
	p.advance()
	switch kind {
	case token.Protected:
		return func(c *ast.ClassDefinition) *[]ast.Definition { return &c.Protected }
	case token.Private:
		return func(c *ast.ClassDefinition) *[]ast.Definition { return &c.Private }
	default:
		return func(c *ast.ClassDefinition) *[]ast.Definition { return &c.Public }
	}
}

// parseClassMember dispatches one class-body construct (§4.5).
func (p *Parser) parseClassMember() ast.Definition {
	switch p.peek().Kind {
	case token.Var:
		return p.parseVarDefinition()
	case token.Static, token.Const:
		return p.parseModifiedMember()
	case token.Class:
		return p.parseClassDefinition()
	case token.Enum:
		return p.parseEnumDefinition()
	case token.Func:
		return p.parseMethod(false, false)
	case token.Abstract:
		return p.parseAbstract(false)
	case token.Construct:
		return p.parseConstructor()
	case token.Ident:
		if p.peek().Text() == "op" && isOverloadableOperator(p.peekAt(1)) {
			return p.parseOperatorOverload()
		}
		return p.parseGetterOrSetter()
	default:
		p.fault("expected class member")
		return nil
	}
}

// parseModifiedMember handles the `static` / `const` prefix: followed
// by `func` it's a method, by `abstract` an abstract method, and the
// static+const / static+abstract combinations are forbidden (§4.5).
func (p *Parser) parseModifiedMember() ast.Definition {
	first := p.advance()
	isStatic := first.Kind == token.Static
	isConst := first.Kind == token.Const

	if isStatic && p.at(token.Const) {
		p.advance()
		p.fault("function cannot be marked static and const")
	}
	if isConst && p.at(token.Static) {
		p.advance()
		p.fault("function cannot be marked static and const")
	}

	switch p.peek().Kind {
	case token.Func:
		return p.parseMethod(isStatic, isConst)
	case token.Abstract:
		if isStatic {
			p.fault("function cannot be marked static and abstract")
		}
		return p.parseAbstract(isConst)
	default:
		return p.parseVarDefinitionBody(first)
	}
}

func (p *Parser) parseMethod(isStatic, isConst bool) *ast.Method {
	fdef := p.parseFunctionDefinition()
	return &ast.Method{Ident: fdef.Ident, IsStatic: isStatic, IsConst: isConst, Def: fdef}
}

// parseAbstract parses a bodiless virtual method declaration
// (§3.3, §4.5).
func (p *Parser) parseAbstract(isConst bool) *ast.Abstract {
	p.ensure(token.Abstract, "expected 'abstract'")
	ident := p.ensure(token.Ident, "expected method name")
	p.ensure(token.LParen, "expected '(' after abstract method name")

	abs := &ast.Abstract{Ident: ident, IsConst: isConst}
	for p.isGood() && !p.at(token.RParen) {
		abs.Params = append(abs.Params, p.parseParam())
		if !p.check(token.Comma) {
			break
		}
	}
	p.ensure(token.RParen, "expected ')' after abstract method parameters")
	if p.check(token.Colon) {
		abs.IsReturnConst = p.check(token.Const)
		abs.ReturnType = p.parseType()
	}
	p.ensure(token.Semicolon, "expected ';' after abstract method declaration")
	return abs
}

// parseConstructor is `construct ( params ) { … }`.
func (p *Parser) parseConstructor() *ast.Constructor {
	tok := p.ensure(token.Construct, "expected 'construct'")
	p.ensure(token.LParen, "expected '(' after 'construct'")

	ctor := &ast.Constructor{Ident: tok}
	for p.isGood() && !p.at(token.RParen) {
		ctor.Params = append(ctor.Params, p.parseParam())
		if !p.check(token.Comma) {
			break
		}
	}
	p.ensure(token.RParen, "expected ')' after constructor parameters")
	ctor.Body = p.parseBlock()
	return ctor
}

// parseGetterOrSetter distinguishes `ident : Type { … }` (getter) from
// `ident ( param ) { … }` (setter) on a bare member identifier (§4.5).
func (p *Parser) parseGetterOrSetter() ast.Definition {
	ident := p.ensure(token.Ident, "expected member name")
	switch p.peek().Kind {
	case token.Colon:
		p.advance()
		getType := p.parseType()
		return &ast.Getter{Ident: ident, GetType: getType, Body: p.parseBlock()}
	case token.LParen:
		p.advance()
		param := p.parseParam()
		p.ensure(token.RParen, "expected ')' after setter parameter")
		return &ast.Setter{Ident: ident, Param: param, Body: p.parseBlock()}
	default:
		p.fault("expected ':' or '(' after member name")
		return nil
	}
}

// parseOperatorOverload is `op OPERATOR ( params ) : Type { … }`. One
// parameter means unary (allowed only for '-' and '!'); two means
// binary (all allowed operators except '!') (§3.3, §4.5).
func (p *Parser) parseOperatorOverload() *ast.OperatorOverload {
	ident := p.ensure(token.Ident, "expected 'op'")
	opTok := p.advance()
	p.ensure(token.LParen, "expected '(' after operator")

	left := p.parseParam()
	right := left
	isUnary := true
	if p.check(token.Comma) {
		right = p.parseParam()
		isUnary = false
	}
	p.ensure(token.RParen, "expected ')' after operator parameters")

	if isUnary {
		if opTok.Kind != token.Minus && opTok.Kind != token.Not {
			p.fault("only '-' and '!' are allowed unary overloads")
		}
	} else if opTok.Kind == token.Not {
		p.fault("'!' can only be overloaded as a unary")
	}

	if !p.check(token.Colon) {
		p.report(diag.SevError, p.peek().Span, "expected ':' after operator parameters")
		p.note(opTok.Span, "operator overloads must have a return type")
		p.fault("expected return type")
	}
	returnType := p.parseType()
	body := p.parseBlock()

	return &ast.OperatorOverload{
		Ident:      ident,
		Operator:   opTok,
		IsUnary:    isUnary,
		Left:       left,
		Right:      right,
		ReturnType: returnType,
		Body:       body,
	}
}

func isOverloadableOperator(k token.Kind) bool {
	switch k {
	case token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.EqEq, token.NotEq, token.Not, token.Greater, token.GreaterEq,
		token.Less, token.LessEq:
		return true
	default:
		return false
	}
}
