package ast

// Visitor dispatches to the concrete type of any node in the tree. A
// single closed-table method keeps the interface small; implementers
// switch on the concrete type inside Visit, matching the "pattern
// matching" realization allowed by the node family's closed sum types.
type Visitor interface {
	Visit(node Node)
}

// Node is satisfied by every concrete AST node — definitions, class
// members, statements, expressions, and types alike — so a Visitor can
// be handed anything reachable from a Module.
type Node interface {
	Accept(v Visitor)
}

func (m *Module) Accept(v Visitor) { v.Visit(m) }

func (d *VarDefinition) Accept(v Visitor)      { v.Visit(d) }
func (d *FunctionDefinition) Accept(v Visitor) { v.Visit(d) }
func (d *EnumDefinition) Accept(v Visitor)     { v.Visit(d) }
func (d *ClassDefinition) Accept(v Visitor)    { v.Visit(d) }

func (c *Method) Accept(v Visitor)           { v.Visit(c) }
func (c *Abstract) Accept(v Visitor)         { v.Visit(c) }
func (c *Constructor) Accept(v Visitor)      { v.Visit(c) }
func (c *Getter) Accept(v Visitor)           { v.Visit(c) }
func (c *Setter) Accept(v Visitor)           { v.Visit(c) }
func (c *OperatorOverload) Accept(v Visitor) { v.Visit(c) }

func (s *Block) Accept(v Visitor)               { v.Visit(s) }
func (s *ExpressionStatement) Accept(v Visitor) { v.Visit(s) }
func (s *If) Accept(v Visitor)                  { v.Visit(s) }
func (s *While) Accept(v Visitor)               { v.Visit(s) }
func (s *ConditionFor) Accept(v Visitor)        { v.Visit(s) }
func (s *RangeFor) Accept(v Visitor)            { v.Visit(s) }
func (s *Return) Accept(v Visitor)              { v.Visit(s) }
func (s *Break) Accept(v Visitor)               { v.Visit(s) }
func (s *Continue) Accept(v Visitor)            { v.Visit(s) }
func (s *Try) Accept(v Visitor)                 { v.Visit(s) }
func (s *Throw) Accept(v Visitor)               { v.Visit(s) }
func (s *DefinitionStatement) Accept(v Visitor) { v.Visit(s) }

func (e *Assignment) Accept(v Visitor)      { v.Visit(e) }
func (e *Logical) Accept(v Visitor)         { v.Visit(e) }
func (e *Binary) Accept(v Visitor)          { v.Visit(e) }
func (e *Unary) Accept(v Visitor)           { v.Visit(e) }
func (e *Call) Accept(v Visitor)            { v.Visit(e) }
func (e *Literal) Accept(v Visitor)         { v.Visit(e) }
func (e *VarAccess) Accept(v Visitor)       { v.Visit(e) }
func (e *ArrayIndex) Accept(v Visitor)      { v.Visit(e) }
func (e *Group) Accept(v Visitor)           { v.Visit(e) }
func (e *InitializerList) Accept(v Visitor) { v.Visit(e) }
func (e *Function) Accept(v Visitor)        { v.Visit(e) }

func (t *SimpleType) Accept(v Visitor) { v.Visit(t) }
func (t *ClassType) Accept(v Visitor)  { v.Visit(t) }
func (t *FuncType) Accept(v Visitor)   { v.Visit(t) }
func (t *ArrayType) Accept(v Visitor)  { v.Visit(t) }
func (t *TupleType) Accept(v Visitor)  { v.Visit(t) }
func (t *TypeOf) Accept(v Visitor)     { v.Visit(t) }
