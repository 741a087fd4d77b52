package ast

import "github.com/SparkyPotato/Wave/internal/token"

// ClassFunc is the closed sum of definition variants admissible only
// inside a class body: methods, abstracts, constructors, getters,
// setters, and operator overloads (§3.3). It satisfies Definition so
// it can sit directly in a visibility bucket alongside plain members.
type ClassFunc interface {
	Definition
	classFunc()
}

// Method is an ordinary member function, optionally static or const.
// A method may not be both (§3.4).
type Method struct {
	Ident    token.Token
	IsStatic bool
	IsConst  bool
	Def      *FunctionDefinition
}

func (*Method) def()                {}
func (*Method) classFunc()          {}
func (m *Method) Name() token.Token { return m.Ident }

// Abstract declares a bodiless virtual method. It must not be static.
type Abstract struct {
	Ident         token.Token
	Params        []Parameter
	ReturnType    Type // nil if the method returns nothing
	IsReturnConst bool
	IsConst       bool
}

func (*Abstract) def()                {}
func (*Abstract) classFunc()          {}
func (a *Abstract) Name() token.Token { return a.Ident }

// Constructor is `construct ( params ) { … }`.
type Constructor struct {
	Ident  token.Token // the `construct` keyword token
	Params []Parameter
	Body   *Block
}

func (*Constructor) def()                {}
func (*Constructor) classFunc()          {}
func (c *Constructor) Name() token.Token { return c.Ident }

// Getter is `ident : Type { … }`, invoked as property access.
type Getter struct {
	Ident   token.Token
	GetType Type
	Body    *Block
}

func (*Getter) def()                {}
func (*Getter) classFunc()          {}
func (g *Getter) Name() token.Token { return g.Ident }

// Setter is `ident ( param ) { … }`, invoked as property assignment.
type Setter struct {
	Ident token.Token
	Param Parameter
	Body  *Block
}

func (*Setter) def()                {}
func (*Setter) classFunc()          {}
func (s *Setter) Name() token.Token { return s.Ident }

// OperatorOverload is `op OPERATOR ( params ) : Type { … }`.
// Overloadable operators: + - * / % == != ! > >= < <=. Unary overloads
// are allowed only for `-` and `!`; `!` is unary-only (§3.3).
type OperatorOverload struct {
	Ident      token.Token // the `op` identifier token
	Operator   token.Token
	IsUnary    bool
	Left       Parameter
	Right      Parameter // equal to Left when IsUnary
	ReturnType Type
	Body       *Block
}

func (*OperatorOverload) def()                {}
func (*OperatorOverload) classFunc()          {}
func (o *OperatorOverload) Name() token.Token { return o.Ident }
