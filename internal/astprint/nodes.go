package astprint

import "github.com/SparkyPotato/Wave/internal/ast"

const indentStep = 2

func (p *printer) incIndent() { p.indent += indentStep }
func (p *printer) decIndent() { p.indent -= indentStep }

func (p *printer) visitVarDefinition(n *ast.VarDefinition) {
	p.write(varKindName(n.VarKind) + " " + n.Ident.Text())
	if n.DataType != nil {
		p.write(": ")
		n.DataType.Accept(p)
	}
	if n.Value != nil {
		p.write(" = ")
		n.Value.Accept(p)
	}
	p.write(";")
}

func varKindName(k ast.VarKind) string {
	switch k {
	case ast.KindConst:
		return "const"
	case ast.KindStatic:
		return "static"
	default:
		return "var"
	}
}

func (p *printer) visitEnumDefinition(n *ast.EnumDefinition) {
	p.write("enum " + n.Ident.Text() + " {\n")
	p.incIndent()
	for _, el := range n.Elements {
		p.write(p.pad() + el.Text() + ",\n")
	}
	p.decIndent()
	p.write(p.pad() + "};")
}

func (p *printer) visitClassDefinition(n *ast.ClassDefinition) {
	p.write("class " + n.Ident.Text())
	for _, base := range n.Bases {
		p.write(" : " + base.Name())
	}
	p.write(" {\n")
	p.incIndent()
	p.printBucket("public", n.Public)
	p.printBucket("protected", n.Protected)
	p.printBucket("private", n.Private)
	p.decIndent()
	p.write(p.pad() + "};")
}

func (p *printer) printBucket(label string, members []ast.Definition) {
	if len(members) == 0 {
		return
	}
	p.write(p.pad() + label + ":\n")
	p.incIndent()
	for _, m := range members {
		p.write(p.pad())
		m.Accept(p)
		p.write("\n")
	}
	p.decIndent()
}

func (p *printer) visitAbstract(n *ast.Abstract) {
	if n.IsConst {
		p.write("const ")
	}
	p.write("abstract " + n.Ident.Text() + " (")
	p.printParams(n.Params)
	p.write("): ")
	if n.IsReturnConst {
		p.write("const ")
	}
	if n.ReturnType != nil {
		n.ReturnType.Accept(p)
	}
	p.write(";")
}

func (p *printer) visitConstructor(n *ast.Constructor) {
	p.write("construct (")
	p.printParams(n.Params)
	p.write(") ")
	n.Body.Accept(p)
}

func (p *printer) visitSetter(n *ast.Setter) {
	p.write(n.Ident.Text() + "(")
	p.printParam(n.Param)
	p.write(") ")
	n.Body.Accept(p)
}

func (p *printer) visitOperatorOverload(n *ast.OperatorOverload) {
	p.write("op " + n.Operator.Text() + " (")
	p.printParam(n.Left)
	if !n.IsUnary {
		p.write(", ")
		p.printParam(n.Right)
	}
	p.write("): ")
	n.ReturnType.Accept(p)
	p.write(" ")
	n.Body.Accept(p)
}

func (p *printer) printParams(params []ast.Parameter) {
	for i, param := range params {
		if i > 0 {
			p.write(", ")
		}
		p.printParam(param)
	}
}

func (p *printer) printParam(param ast.Parameter) {
	if param.IsConst {
		p.write("const ")
	}
	p.write(param.Ident.Text() + ": ")
	param.DataType.Accept(p)
}

func (p *printer) visitBlock(n *ast.Block) {
	p.write("{\n")
	p.incIndent()
	for _, stmt := range n.Statements {
		p.write(p.pad())
		stmt.Accept(p)
		p.write("\n")
	}
	p.decIndent()
	p.write(p.pad() + "}")
}

func (p *printer) visitIf(n *ast.If) {
	p.write("if ")
	n.Condition.Accept(p)
	p.write(" ")
	n.True.Accept(p)
	for _, elif := range n.ElseIfs {
		p.write(" else if ")
		elif.Condition.Accept(p)
		p.write(" ")
		elif.Body.Accept(p)
	}
	if n.Else != nil {
		p.write(" else ")
		n.Else.Accept(p)
	}
}

func (p *printer) visitConditionFor(n *ast.ConditionFor) {
	p.write("for ")
	switch {
	case n.Init.Def != nil:
		n.Init.Def.Accept(p)
	case n.Init.Expr != nil:
		n.Init.Expr.Accept(p)
		p.write(";")
	default:
		p.write(";")
	}
	p.write(" ")
	if n.Cond != nil {
		n.Cond.Accept(p)
	}
	p.write("; ")
	if n.Incr != nil {
		n.Incr.Accept(p)
	}
	p.write(" ")
	n.Body.Accept(p)
}

func (p *printer) visitTry(n *ast.Try) {
	p.write("try ")
	n.Body.Accept(p)
	for _, c := range n.Catches {
		p.write(" catch (")
		p.printParam(c.Param)
		p.write(") ")
		c.Body.Accept(p)
	}
}

func (p *printer) visitCall(n *ast.Call) {
	n.Fn.Accept(p)
	p.write("(")
	for i, arg := range n.Args {
		if i > 0 {
			p.write(", ")
		}
		arg.Accept(p)
	}
	p.write(")")
}

func (p *printer) visitInitializerList(n *ast.InitializerList) {
	p.write("{")
	for i, d := range n.Data {
		if i > 0 {
			p.write(", ")
		}
		d.Accept(p)
	}
	p.write("}")
}

func (p *printer) visitFunction(n *ast.Function) {
	p.write("(")
	p.printParams(n.Params)
	if n.IsVariadic {
		if len(n.Params) > 0 {
			p.write(", ")
		}
		p.write("...")
	}
	p.write(")")
	if n.ReturnType != nil {
		p.write(": ")
		if n.IsReturnConst {
			p.write("const ")
		}
		n.ReturnType.Accept(p)
	}
	p.write(" ")
	n.Body.Accept(p)
}

func (p *printer) visitFuncType(n *ast.FuncType) {
	p.write("func (")
	for i, t := range n.ParamTypes {
		if i > 0 {
			p.write(", ")
		}
		t.Accept(p)
	}
	p.write(")")
	if n.ReturnType != nil {
		p.write(": ")
		n.ReturnType.Accept(p)
	}
}

func (p *printer) visitTupleType(n *ast.TupleType) {
	p.write("tuple<")
	for i, t := range n.Types {
		if i > 0 {
			p.write(", ")
		}
		t.Accept(p)
	}
	p.write(">")
}

func simpleKindName(k ast.SimpleKind) string {
	switch k {
	case ast.Int:
		return "int"
	case ast.Real:
		return "real"
	case ast.Char:
		return "char"
	case ast.Bool:
		return "bool"
	default:
		return "generic"
	}
}
