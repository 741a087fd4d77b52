package parser

import (
	"testing"

	"github.com/SparkyPotato/Wave/internal/ast"
	"github.com/SparkyPotato/Wave/internal/diag"
	"github.com/SparkyPotato/Wave/internal/lexer"
)

func parseStmt(t *testing.T, src string) (ast.Statement, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(0)
	reporter := diag.BagReporter{Bag: bag}
	toks := lexer.New("t.wv", []byte(src), reporter).Lex()
	p := New(toks, Options{Reporter: reporter})
	var stmt ast.Statement
	p.guarded(func() { stmt = p.recoverStatement(p.parseStatement) })
	return stmt, bag
}

func TestParseIfElseIfElse(t *testing.T) {
	stmt, bag := parseStmt(t, "if a { } else if b { } else { }")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	ifStmt, ok := stmt.(*ast.If)
	if !ok {
		t.Fatalf("stmt = %T, want *ast.If", stmt)
	}
	if len(ifStmt.ElseIfs) != 1 {
		t.Fatalf("ElseIfs = %+v, want 1 entry", ifStmt.ElseIfs)
	}
	if ifStmt.Else == nil {
		t.Fatalf("Else = nil, want a block")
	}
}

func TestParseWhile(t *testing.T) {
	stmt, bag := parseStmt(t, "while x { break; }")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	w, ok := stmt.(*ast.While)
	if !ok || len(w.Body.Statements) != 1 {
		t.Fatalf("stmt = %+v, want a While with one body statement", stmt)
	}
	if _, ok := w.Body.Statements[0].(*ast.Break); !ok {
		t.Fatalf("body[0] = %T, want *ast.Break", w.Body.Statements[0])
	}
}

func TestParseRangeFor(t *testing.T) {
	stmt, bag := parseStmt(t, "for x in xs { }")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	rf, ok := stmt.(*ast.RangeFor)
	if !ok || rf.Ident.Text() != "x" {
		t.Fatalf("stmt = %+v, want RangeFor over x", stmt)
	}
}

func TestParseConditionForAllClausesEmpty(t *testing.T) {
	stmt, bag := parseStmt(t, "for ;; { }")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	cf, ok := stmt.(*ast.ConditionFor)
	if !ok {
		t.Fatalf("stmt = %T, want *ast.ConditionFor", stmt)
	}
	if cf.Init.Expr != nil || cf.Init.Def != nil || cf.Cond != nil || cf.Incr != nil {
		t.Fatalf("ConditionFor = %+v, want every clause empty", cf)
	}
}

func TestParseConditionForWithVarInit(t *testing.T) {
	stmt, bag := parseStmt(t, "for var i: int = 0; i < 10; i = i + 1 { }")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	cf, ok := stmt.(*ast.ConditionFor)
	if !ok {
		t.Fatalf("stmt = %T, want *ast.ConditionFor", stmt)
	}
	if cf.Init.Def == nil {
		t.Fatalf("Init.Def = nil, want a VarDefinition")
	}
	if cf.Cond == nil || cf.Incr == nil {
		t.Fatalf("ConditionFor = %+v, want Cond and Incr set", cf)
	}
}

func TestParseReturnWithAndWithoutValue(t *testing.T) {
	stmt, bag := parseStmt(t, "return;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	ret, ok := stmt.(*ast.Return)
	if !ok || ret.Value != nil {
		t.Fatalf("stmt = %+v, want empty Return", stmt)
	}

	stmt2, bag2 := parseStmt(t, "return 1;")
	if bag2.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag2.Items())
	}
	ret2, ok := stmt2.(*ast.Return)
	if !ok || ret2.Value == nil {
		t.Fatalf("stmt = %+v, want Return with a value", stmt2)
	}
}

func TestParseBreakRequiresSemicolon(t *testing.T) {
	_, bag := parseStmt(t, "break")
	if !bag.HasErrors() {
		t.Fatalf("expected an error for 'break' without a trailing ';'")
	}
}

func TestParseContinueRequiresSemicolon(t *testing.T) {
	_, bag := parseStmt(t, "continue")
	if !bag.HasErrors() {
		t.Fatalf("expected an error for 'continue' without a trailing ';'")
	}
}

func TestParseTryWithCatch(t *testing.T) {
	stmt, bag := parseStmt(t, "try { } catch e { }")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	tr, ok := stmt.(*ast.Try)
	if !ok || len(tr.Catches) != 1 {
		t.Fatalf("stmt = %+v, want a Try with one catch", stmt)
	}
}

func TestParseTryWithoutCatchIsError(t *testing.T) {
	stmt, bag := parseStmt(t, "try { }")
	if !bag.HasErrors() {
		t.Fatalf("expected an error for a try with zero catches")
	}
	if _, ok := stmt.(*ast.Try); !ok {
		t.Fatalf("stmt = %T, want the Try node still built", stmt)
	}
}

func TestParseThrowWithValue(t *testing.T) {
	stmt, bag := parseStmt(t, "throw err;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	th, ok := stmt.(*ast.Throw)
	if !ok || th.Value == nil {
		t.Fatalf("stmt = %+v, want Throw with a value", stmt)
	}
}

func TestParseLocalVarDefinitionAsStatement(t *testing.T) {
	stmt, bag := parseStmt(t, "var x: int = 1;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	ds, ok := stmt.(*ast.DefinitionStatement)
	if !ok {
		t.Fatalf("stmt = %T, want *ast.DefinitionStatement", stmt)
	}
	if _, ok := ds.Def.(*ast.VarDefinition); !ok {
		t.Fatalf("Def = %T, want *ast.VarDefinition", ds.Def)
	}
}

func TestParseMalformedStatementRecovers(t *testing.T) {
	// A statement that panics mid-parse should synchronize to the next
	// semicolon rather than abort the enclosing block.
	bag := diag.NewBag(0)
	reporter := diag.BagReporter{Bag: bag}
	toks := lexer.New("t.wv", []byte("{ var; return; }"), reporter).Lex()
	p := New(toks, Options{Reporter: reporter})
	var block *ast.Block
	p.guarded(func() { block = p.parseBlock() })
	if block == nil {
		t.Fatalf("parseBlock returned nil")
	}
	if len(block.Statements) != 2 {
		t.Fatalf("Statements = %+v, want 2", block.Statements)
	}
	if _, ok := block.Statements[1].(*ast.Return); !ok {
		t.Fatalf("Statements[1] = %T, want *ast.Return after recovery", block.Statements[1])
	}
}
