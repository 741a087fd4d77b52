package ast

import "github.com/SparkyPotato/Wave/internal/token"

// Statement is the closed sum of statement variants (§3.3, §4.7).
type Statement interface {
	Node
	stmt()
}

// Block is a brace-delimited sequence of statements, its own scope.
type Block struct {
	Statements []Statement
	Brace      token.Token
}

func (*Block) stmt() {}

// ExpressionStatement wraps a bare expression terminated by `;`. On
// parse fault the parser returns one with Expr == nil as a placeholder.
type ExpressionStatement struct {
	Expr  Expression
	Token token.Token
}

func (*ExpressionStatement) stmt() {}

// ElseIf is one `else if condition { … }` clause in an If chain.
type ElseIf struct {
	Condition Expression
	Body      *Block
}

// If is `if cond { … } (else if cond { … })* (else { … })?`. ElseIfs
// are evaluated in order; at most one Else is present.
type If struct {
	Condition Expression
	True      *Block
	ElseIfs   []ElseIf
	Else      *Block
	Token     token.Token
}

func (*If) stmt() {}

// While is `while cond { … }`.
type While struct {
	Condition Expression
	Body      *Block
	Token     token.Token
}

func (*While) stmt() {}

// ForInit is the optional initializer clause of a ConditionFor: either
// an expression, a definition (e.g. `var i = 0`), or absent (both nil).
type ForInit struct {
	Expr Expression
	Def  Definition
}

// ConditionFor is the C-style `for init; cond; incr { … }`. Each of
// Init, Cond, and Incr may be absent.
type ConditionFor struct {
	Init  ForInit
	Cond  Expression // nil if omitted
	Incr  Expression // nil if omitted
	Body  *Block
	Token token.Token
}

func (*ConditionFor) stmt() {}

// RangeFor is `for ident in range { … }`.
type RangeFor struct {
	Ident token.Token
	Range Expression
	Body  *Block
	Token token.Token
}

func (*RangeFor) stmt() {}

// Return is `return [value];`.
type Return struct {
	Value Expression // nil if omitted
	Token token.Token
}

func (*Return) stmt() {}

// Break is `break;`.
type Break struct {
	Token token.Token
}

func (*Break) stmt() {}

// Continue is `continue;`.
type Continue struct {
	Token token.Token
}

func (*Continue) stmt() {}

// Catch is one `catch param { … }` clause of a Try.
type Catch struct {
	Param Parameter
	Body  *Block
}

// Try is `try { … } (catch param { … })+`. At least one Catch is
// required; zero catches is a parse error but the node is still built.
type Try struct {
	Body    *Block
	Catches []Catch
	Token   token.Token
}

func (*Try) stmt() {}

// Throw is `throw [value];`.
type Throw struct {
	Value Expression // nil if omitted
	Token token.Token
}

func (*Throw) stmt() {}

// DefinitionStatement lets a Definition (var/func/class/enum) appear
// as a local statement.
type DefinitionStatement struct {
	Def Definition
}

func (*DefinitionStatement) stmt() {}
