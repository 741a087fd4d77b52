package ast

import "github.com/SparkyPotato/Wave/internal/token"

// SimpleKind enumerates the non-composite type variants (§3.3).
type SimpleKind uint8

const (
	Int SimpleKind = iota
	Real
	Char
	Bool
	// Generic marks an omitted parameter type, inferred downstream.
	Generic
)

// Type is the closed sum of type-expression variants. Every variant
// carries a representative token for diagnostic spans (§4.8).
type Type interface {
	Node
	Tok() token.Token
}

// SimpleType is one of int, real, char, bool, or an inferred (Generic)
// parameter type.
type SimpleType struct {
	Which SimpleKind
	Token token.Token
}

func (t *SimpleType) Tok() token.Token { return t.Token }

// ClassType names a user-defined type by its dotted identifier.
type ClassType struct {
	Ident Identifier
	Token token.Token
}

func (t *ClassType) Tok() token.Token { return t.Token }

// FuncType is the type of a function value: `func (T1, T2) : R`.
type FuncType struct {
	ReturnType Type // nil if the function returns nothing
	ParamTypes []Type
	Token      token.Token
}

func (t *FuncType) Tok() token.Token { return t.Token }

// ArrayType wraps another type with an optional, constant-or-dynamic
// size expression: `T[]` or `T[N]`. Repeatable as a suffix.
type ArrayType struct {
	HoldType Type
	Size     Expression // nil when unsized
	Token    token.Token
}

func (t *ArrayType) Tok() token.Token { return t.Token }

// TupleType is a fixed-arity heterogeneous product: `tuple<T1, T2, …>`.
type TupleType struct {
	Types []Type
	Token token.Token
}

func (t *TupleType) Tok() token.Token { return t.Token }

// TypeOf defers type resolution to the static type of an expression:
// `typeof expr`.
type TypeOf struct {
	Expr  Expression
	Token token.Token
}

func (t *TypeOf) Tok() token.Token { return t.Token }

// Parameter is a named, optionally-const binding with a type that
// defaults to SimpleType{Generic} when omitted in source.
type Parameter struct {
	Ident    token.Token
	IsConst  bool
	DataType Type
}
