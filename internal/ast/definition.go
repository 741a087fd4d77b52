package ast

import "github.com/SparkyPotato/Wave/internal/token"

// Definition is the closed sum of top-level and class-level definition
// variants. Every variant carries the identifier token it defines.
type Definition interface {
	Node
	def()
	Name() token.Token
}

// VarKind records which of var/const/static introduced a VarDefinition.
type VarKind uint8

const (
	KindVar VarKind = iota
	KindConst
	KindStatic
)

// VarDefinition is `(var|const|static) ident [: Type] [= Expr];`.
// DataType and Value may each be absent, but not both (§4.5) — this is
// a parser-enforced invariant, not a structural one: the permissive
// original still builds the node when both are missing.
type VarDefinition struct {
	Ident    token.Token
	VarKind  VarKind
	DataType Type       // nil if omitted
	Value    Expression // nil if omitted
}

func (*VarDefinition) def()                {}
func (d *VarDefinition) Name() token.Token { return d.Ident }

// FunctionDefinition is `func ident ( params ) [: Type] { … }` at
// module or local scope.
type FunctionDefinition struct {
	Ident token.Token
	Func  *Function
}

func (*FunctionDefinition) def()                {}
func (d *FunctionDefinition) Name() token.Token { return d.Ident }

// EnumDefinition is `enum ident { A, B, C };`.
type EnumDefinition struct {
	Ident    token.Token
	Elements []token.Token
}

func (*EnumDefinition) def()                {}
func (d *EnumDefinition) Name() token.Token { return d.Ident }

// ClassDefinition is `class ident [: Bases] { members… };`. Members
// are bucketed by visibility; a definition appears in exactly one
// bucket, and the bucket active before any label is Public (§9).
type ClassDefinition struct {
	Ident     token.Token
	Bases     []Identifier
	Public    []Definition
	Protected []Definition
	Private   []Definition
}

func (*ClassDefinition) def()                {}
func (d *ClassDefinition) Name() token.Token { return d.Ident }
