package ast

import "github.com/SparkyPotato/Wave/internal/token"

// Expression is the closed sum of expression variants, precedence-
// ordered per §4.6. Every variant knows its own span for diagnostics.
type Expression interface {
	Node
	Span() token.Token // representative token; full range derivable by caller
}

// Assignment is right-associative: `target = value`. The target must
// reduce to a VarAccess; the parser enforces this, not the type.
type Assignment struct {
	Var   Identifier
	Value Expression
	Eq    token.Token
}

func (e *Assignment) Span() token.Token { return e.Eq }

// Logical is `left (and|or) right`.
type Logical struct {
	Left     Expression
	Operator token.Token
	Right    Expression
}

func (e *Logical) Span() token.Token { return e.Operator }

// Binary covers equality, comparison, additive, and multiplicative
// levels — they share shape and differ only by operator set.
type Binary struct {
	Left     Expression
	Operator token.Token
	Right    Expression
}

func (e *Binary) Span() token.Token { return e.Operator }

// Unary is `(- | !) right`.
type Unary struct {
	Operator token.Token
	Right    Expression
}

func (e *Unary) Span() token.Token { return e.Operator }

// Call is `callee ( args, … )`.
type Call struct {
	Callee token.Token // LParen of the call, for span purposes
	Fn     Expression
	Args   []Expression
}

func (e *Call) Span() token.Token { return e.Callee }

// Literal wraps a true/false/int/real/string token directly.
type Literal struct {
	Token token.Token
}

func (e *Literal) Span() token.Token { return e.Token }

// VarAccess reads a (possibly dotted) variable, optionally via `copy`.
type VarAccess struct {
	Var    Identifier
	IsCopy bool
}

func (e *VarAccess) Span() token.Token { return e.Var.Path[0] }

// ArrayIndex is a VarAccess subscripted by an expression: `v[i]`.
type ArrayIndex struct {
	VarAccess
	Index   Expression
	Bracket token.Token
}

func (e *ArrayIndex) Span() token.Token { return e.Bracket }

// Group is a parenthesized expression: `( expr )`.
type Group struct {
	Expr   Expression
	LParen token.Token
}

func (e *Group) Span() token.Token { return e.LParen }

// InitializerList is a brace-delimited expression list: `{ a, b, c }`.
type InitializerList struct {
	Data  []Expression
	Brace token.Token
}

func (e *InitializerList) Span() token.Token { return e.Brace }

// Function is an anonymous function used as an expression.
type Function struct {
	Params        []Parameter
	ReturnType    Type // nil if the function returns nothing
	IsReturnConst bool
	IsVariadic    bool
	Body          *Block
	LParen        token.Token
}

func (e *Function) Span() token.Token { return e.LParen }
