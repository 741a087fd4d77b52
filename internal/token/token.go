// Package token defines the closed set of lexical atoms the lexer
// produces and the parser consumes.
package token

import "github.com/SparkyPotato/Wave/internal/source"

// Token is a single lexical atom: a kind, an optional literal payload,
// and the source span it occupies.
type Token struct {
	Kind  Kind
	Value Value
	Span  source.Span
}

// Text renders the token's literal payload as a string, or its fixed
// spelling for keywords and punctuation.
func (t Token) Text() string {
	if t.Value.Kind != NoValue {
		return t.Value.String()
	}
	return t.Kind.String()
}

// IsKeyword reports whether the token's kind is one of the reserved words.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case And, Or, If, Else, True, False, For, In, While, Break, Continue,
		Try, Catch, Throw, Enum, Tuple, Class, Construct, Abstract, Static,
		Copy, Const, Public, Private, Protected, Self, Super, Func, Return,
		Var, Type, TypeOf, IntT, RealT, CharT, BoolT, Module, Import, Extern,
		As, Export:
		return true
	default:
		return false
	}
}
