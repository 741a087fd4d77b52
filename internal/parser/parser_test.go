package parser

import (
	"testing"

	"github.com/SparkyPotato/Wave/internal/ast"
	"github.com/SparkyPotato/Wave/internal/diag"
	"github.com/SparkyPotato/Wave/internal/lexer"
)

func parse(t *testing.T, src string) (*ast.Module, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(0)
	reporter := diag.BagReporter{Bag: bag}
	toks := lexer.New("t.wv", []byte(src), reporter).Lex()
	mod := New(toks, Options{Reporter: reporter}).Parse()
	return mod, bag
}

func TestParseEmptyFile(t *testing.T) {
	mod, bag := parse(t, "")
	if mod != nil {
		t.Fatalf("Parse(\"\") = %+v, want nil", mod)
	}
	if !bag.HasErrors() {
		t.Fatalf("expected an error for an empty file")
	}
}

func TestParseMinimalModule(t *testing.T) {
	mod, bag := parse(t, "module foo;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if mod == nil {
		t.Fatalf("Parse() = nil, want a Module")
	}
	if mod.Def.Name() != "foo" {
		t.Fatalf("module name = %q, want foo", mod.Def.Name())
	}
	if len(mod.Definitions) != 0 {
		t.Fatalf("Definitions = %+v, want empty", mod.Definitions)
	}
}

func TestParseDottedModuleName(t *testing.T) {
	mod, bag := parse(t, "module foo.bar.baz;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if got := mod.Def.Name(); got != "foo.bar.baz" {
		t.Fatalf("module name = %q, want foo.bar.baz", got)
	}
}

func TestParseImportNative(t *testing.T) {
	mod, bag := parse(t, "module m; import foo.bar as fb;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if len(mod.Imports) != 1 {
		t.Fatalf("Imports = %+v, want 1 entry", mod.Imports)
	}
	if mod.Imports[0].Imported.Name() != "foo.bar" || mod.Imports[0].As.Name() != "fb" {
		t.Fatalf("import = %+v, want Imported=foo.bar As=fb", mod.Imports[0])
	}
}

func TestParseImportExtern(t *testing.T) {
	mod, bag := parse(t, `module m; import extern "stdio.h";`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if len(mod.CImports) != 1 || mod.CImports[0].Path.Value.Str != "stdio.h" {
		t.Fatalf("CImports = %+v, want one entry for stdio.h", mod.CImports)
	}
}

func TestParseVarDefinitionWithTypeAndValue(t *testing.T) {
	mod, bag := parse(t, "module m; var x: int = 1;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	def, ok := mod.Definitions[0].Def.(*ast.VarDefinition)
	if !ok {
		t.Fatalf("Def = %T, want *ast.VarDefinition", mod.Definitions[0].Def)
	}
	if def.DataType == nil || def.Value == nil {
		t.Fatalf("VarDefinition = %+v, want both DataType and Value set", def)
	}
}

func TestParseVarDefinitionNeitherTypeNorValueIsPermissive(t *testing.T) {
	// Open question §9: neither type nor value is an error, but the
	// node is still built rather than discarded.
	mod, bag := parse(t, "module m; var x;")
	if !bag.HasErrors() {
		t.Fatalf("expected an error for a var with neither type nor value")
	}
	if len(mod.Definitions) != 1 {
		t.Fatalf("Definitions = %+v, want exactly one node still built", mod.Definitions)
	}
	def, ok := mod.Definitions[0].Def.(*ast.VarDefinition)
	if !ok || def.DataType != nil || def.Value != nil {
		t.Fatalf("VarDefinition = %+v, want DataType and Value both nil", def)
	}
}

func TestParseExportedDefinition(t *testing.T) {
	mod, bag := parse(t, "module m; export var x: int = 1;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if !mod.Definitions[0].Exported {
		t.Fatalf("Exported = false, want true")
	}
}

func TestParseFunctionDefinition(t *testing.T) {
	mod, bag := parse(t, "module m; func add(a: int, b: int): int { return a + b; }")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	fn, ok := mod.Definitions[0].Def.(*ast.FunctionDefinition)
	if !ok {
		t.Fatalf("Def = %T, want *ast.FunctionDefinition", mod.Definitions[0].Def)
	}
	if len(fn.Func.Params) != 2 {
		t.Fatalf("Params = %+v, want 2", fn.Func.Params)
	}
	if fn.Func.ReturnType == nil {
		t.Fatalf("ReturnType = nil, want int")
	}
	if len(fn.Func.Body.Statements) != 1 {
		t.Fatalf("Body.Statements = %+v, want 1", fn.Func.Body.Statements)
	}
}

func TestParseEnumDefinition(t *testing.T) {
	mod, bag := parse(t, "module m; enum Color { Red, Green, Blue };")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	enum, ok := mod.Definitions[0].Def.(*ast.EnumDefinition)
	if !ok || len(enum.Elements) != 3 {
		t.Fatalf("Def = %+v, want EnumDefinition with 3 elements", mod.Definitions[0].Def)
	}
}

func TestParseMalformedTopLevelRecovers(t *testing.T) {
	// A broken first definition shouldn't prevent the second definition
	// from being parsed once synchronize finds a new definition start.
	mod, bag := parse(t, "module m; var; func ok() { }")
	if !bag.HasErrors() {
		t.Fatalf("expected an error for the malformed var")
	}
	found := false
	for _, d := range mod.Definitions {
		if fn, ok := d.Def.(*ast.FunctionDefinition); ok && fn.Ident.Text() == "ok" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Definitions = %+v, want recovery to still find 'ok'", mod.Definitions)
	}
}
