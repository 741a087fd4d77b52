// Package astprint is the pretty-printer consumer alluded to in the
// AST's visitor design: it walks a Module and renders a human-readable
// approximation of its source, carrying a numeric indent through
// traversal the way the original tree-printer pass does.
package astprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/SparkyPotato/Wave/internal/ast"
)

// Print renders mod to w.
func Print(w io.Writer, mod *ast.Module) {
	p := &printer{w: w}
	p.printModule(mod)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) write(s string) { fmt.Fprint(p.w, s) }

func (p *printer) pad() string { return strings.Repeat(" ", p.indent) }

func (p *printer) printModule(mod *ast.Module) {
	p.write("module " + mod.Def.Name() + "\n\n")

	p.write("imports:\n")
	for _, imp := range mod.Imports {
		p.write("  " + imp.Imported.Name() + " as " + imp.As.Name() + "\n")
	}
	p.write("\nexternal imports:\n")
	for _, imp := range mod.CImports {
		p.write("  " + imp.Path.Text() + "\n")
	}

	p.write("\ndefinitions:\n")
	for _, def := range mod.Definitions {
		if def.Exported {
			p.write("exported ")
		}
		def.Def.Accept(p)
		p.write("\n\n")
	}
}

// Visit dispatches on the concrete node type, matching the closed sum
// of AST variants (§4.9).
func (p *printer) Visit(node ast.Node) {
	switch n := node.(type) {
	case *ast.VarDefinition:
		p.visitVarDefinition(n)
	case *ast.FunctionDefinition:
		p.write("func " + n.Ident.Text() + " ")
		n.Func.Accept(p)
	case *ast.EnumDefinition:
		p.visitEnumDefinition(n)
	case *ast.ClassDefinition:
		p.visitClassDefinition(n)

	case *ast.Method:
		if n.IsConst {
			p.write("const ")
		} else if n.IsStatic {
			p.write("static ")
		}
		n.Def.Accept(p)
	case *ast.Abstract:
		p.visitAbstract(n)
	case *ast.Constructor:
		p.visitConstructor(n)
	case *ast.Getter:
		p.write(n.Ident.Text() + ": ")
		n.GetType.Accept(p)
		n.Body.Accept(p)
	case *ast.Setter:
		p.visitSetter(n)
	case *ast.OperatorOverload:
		p.visitOperatorOverload(n)

	case *ast.Block:
		p.visitBlock(n)
	case *ast.ExpressionStatement:
		if n.Expr != nil {
			n.Expr.Accept(p)
		}
		p.write(";\n" + p.pad())
	case *ast.If:
		p.visitIf(n)
	case *ast.While:
		p.write("while ")
		n.Condition.Accept(p)
		n.Body.Accept(p)
	case *ast.ConditionFor:
		p.visitConditionFor(n)
	case *ast.RangeFor:
		p.write("for " + n.Ident.Text() + " in ")
		n.Range.Accept(p)
		n.Body.Accept(p)
	case *ast.Return:
		p.write("return ")
		if n.Value != nil {
			n.Value.Accept(p)
		}
	case *ast.Break:
		p.write("break;")
	case *ast.Continue:
		p.write("continue;")
	case *ast.Try:
		p.visitTry(n)
	case *ast.Throw:
		p.write("throw ")
		if n.Value != nil {
			n.Value.Accept(p)
		}
	case *ast.DefinitionStatement:
		n.Def.Accept(p)

	case *ast.Assignment:
		p.write(n.Var.Name() + " = ")
		n.Value.Accept(p)
	case *ast.Logical:
		n.Left.Accept(p)
		p.write(" " + n.Operator.Text() + " ")
		n.Right.Accept(p)
	case *ast.Binary:
		n.Left.Accept(p)
		p.write(" " + n.Operator.Text() + " ")
		n.Right.Accept(p)
	case *ast.Unary:
		p.write(n.Operator.Text())
		n.Right.Accept(p)
	case *ast.Call:
		p.visitCall(n)
	case *ast.Literal:
		p.write(n.Token.Text())
	case *ast.VarAccess:
		if n.IsCopy {
			p.write("copy ")
		}
		p.write(n.Var.Name())
	case *ast.ArrayIndex:
		if n.IsCopy {
			p.write("copy ")
		}
		p.write(n.Var.Name() + "[")
		n.Index.Accept(p)
		p.write("]")
	case *ast.Group:
		p.write("(")
		n.Expr.Accept(p)
		p.write(")")
	case *ast.InitializerList:
		p.visitInitializerList(n)
	case *ast.Function:
		p.visitFunction(n)

	case *ast.SimpleType:
		p.write(simpleKindName(n.Which))
	case *ast.ClassType:
		p.write(n.Ident.Name())
	case *ast.FuncType:
		p.visitFuncType(n)
	case *ast.ArrayType:
		n.HoldType.Accept(p)
		p.write("[")
		if n.Size != nil {
			n.Size.Accept(p)
		}
		p.write("]")
	case *ast.TupleType:
		p.visitTupleType(n)
	case *ast.TypeOf:
		p.write("typeof ")
		n.Expr.Accept(p)

	default:
		p.write(fmt.Sprintf("<unknown node %T>", n))
	}
}
