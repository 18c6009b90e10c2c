// parser_test.go
package simpil

import (
	"errors"
	"testing"
)

// --- helpers ---------------------------------------------------------------

func statements(t *testing.T, src string) ([]Stmt, *CollectReporter) {
	t.Helper()
	rep := &CollectReporter{}
	stmts, err := ParseSource(src, rep)
	if err != nil {
		t.Fatalf("ParseSource error: %v\nsource:\n%s", err, src)
	}
	return stmts, rep
}

func mustParseOne(t *testing.T, src string) Stmt {
	t.Helper()
	stmts, rep := statements(t, src)
	if len(rep.Diags) != 0 {
		t.Fatalf("unexpected diagnostics for %q: %v", src, rep.Diags)
	}
	if len(stmts) != 1 {
		t.Fatalf("want 1 statement for %q, got %d", src, len(stmts))
	}
	return stmts[0]
}

func mustFailStmt(t *testing.T, src string) *ParseError {
	t.Helper()
	toks, err := NewScanner(src, &CollectReporter{}).Scan()
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	_, perr := NewParser(toks, &CollectReporter{}).Next()
	if perr == nil {
		t.Fatalf("want parse error for %q, got none", src)
	}
	var pe *ParseError
	if !errors.As(perr, &pe) {
		t.Fatalf("want *ParseError, got %T: %v", perr, perr)
	}
	return pe
}

func wantShape(t *testing.T, src, shape string) {
	t.Helper()
	if got := FormatStmt(mustParseOne(t, src)); got != shape {
		t.Fatalf("source %q\nwant shape %s\ngot shape  %s", src, shape, got)
	}
}

// --- statements ------------------------------------------------------------

func Test_Parser_Assignment(t *testing.T) {
	st, ok := mustParseOne(t, "x := 1").(*Assignment)
	if !ok {
		t.Fatalf("want *Assignment, got %T", st)
	}
	if st.Name.Lexeme != "x" {
		t.Fatalf("want name x, got %q", st.Name.Lexeme)
	}
}

func Test_Parser_Store(t *testing.T) {
	if _, ok := mustParseOne(t, "store(1, 1)").(*Store); !ok {
		t.Fatalf("want *Store")
	}
}

func Test_Parser_Goto(t *testing.T) {
	if _, ok := mustParseOne(t, "goto 1").(*Goto); !ok {
		t.Fatalf("want *Goto")
	}
}

func Test_Parser_Assert(t *testing.T) {
	if _, ok := mustParseOne(t, "assert 1").(*Assert); !ok {
		t.Fatalf("want *Assert")
	}
}

func Test_Parser_IfThenElse(t *testing.T) {
	st, ok := mustParseOne(t, "if 1 then goto 2 else goto 3").(*IfThenElse)
	if !ok {
		t.Fatalf("want *IfThenElse")
	}
	if FormatExpr(st.Then) != "2" || FormatExpr(st.Else) != "3" {
		t.Fatalf("branch expressions not captured: then=%s else=%s",
			FormatExpr(st.Then), FormatExpr(st.Else))
	}
}

func Test_Parser_IfRequiresGotoBeforeBranches(t *testing.T) {
	pe := mustFailStmt(t, "if 1 then 2 else 3")
	if pe.Kind != ErrExpected || pe.Want != GOTO {
		t.Fatalf("want Expected(GOTO), got kind=%d want=%v: %v", pe.Kind, pe.Want, pe)
	}
}

func Test_Parser_LoadStructure(t *testing.T) {
	st := mustParseOne(t, "goto load(1)").(*Goto)
	if _, ok := st.Target.(*Load); !ok {
		t.Fatalf("want goto target *Load, got %T", st.Target)
	}
}

func Test_Parser_GetInput(t *testing.T) {
	st := mustParseOne(t, "goto get_input").(*Goto)
	gi, ok := st.Target.(*GetInput)
	if !ok {
		t.Fatalf("want *GetInput, got %T", st.Target)
	}
	if gi.Source != "stdin" {
		t.Fatalf("want source stdin, got %q", gi.Source)
	}
}

func Test_Parser_UnaryStructure(t *testing.T) {
	st := mustParseOne(t, "goto -1").(*Goto)
	if _, ok := st.Target.(*Unary); !ok {
		t.Fatalf("want goto target *Unary, got %T", st.Target)
	}
	st = mustParseOne(t, "goto +1").(*Goto)
	if _, ok := st.Target.(*Unary); !ok {
		t.Fatalf("want goto target *Unary for prefix plus, got %T", st.Target)
	}
}

// --- precedence ------------------------------------------------------------

func Test_Parser_Precedence(t *testing.T) {
	wantShape(t, "goto 1 + 1 * 1", "(goto (+ 1 (* 1 1)))")
	wantShape(t, "goto 1 * 1 + 1", "(goto (+ (* 1 1) 1))")
}

func Test_Parser_LeftAssociativity(t *testing.T) {
	wantShape(t, "goto 8 - 2 - 1", "(goto (- (- 8 2) 1))")
	wantShape(t, "goto 1 + 2 - 3", "(goto (- (+ 1 2) 3))")
	wantShape(t, "goto 8 / 2 * 2", "(goto (* (/ 8 2) 2))")
}

func Test_Parser_UnaryTakesFullExpression(t *testing.T) {
	wantShape(t, "goto -1 + 2", "(goto (- (+ 1 2)))")
}

// --- errors & recovery -----------------------------------------------------

func Test_Parser_MissingComma(t *testing.T) {
	pe := mustFailStmt(t, "store(1 2)")
	if pe.Kind != ErrExpected || pe.Want != COMMA {
		t.Fatalf("want Expected(COMMA), got %v", pe)
	}
}

func Test_Parser_InvalidAssignment(t *testing.T) {
	pe := mustFailStmt(t, "x 1")
	if pe.Kind != ErrExpected || pe.Want != ASSIGN {
		t.Fatalf("want Expected(ASSIGN), got %v", pe)
	}
}

func Test_Parser_StmtError(t *testing.T) {
	pe := mustFailStmt(t, "then")
	if pe.Kind != ErrStmt {
		t.Fatalf("want Stmt error, got %v", pe)
	}
}

func Test_Parser_ExprError(t *testing.T) {
	pe := mustFailStmt(t, "goto then")
	if pe.Kind != ErrExpr {
		t.Fatalf("want Expr error, got %v", pe)
	}
}

func Test_Parser_ExprErrorAtEndOfInput(t *testing.T) {
	pe := mustFailStmt(t, "goto")
	if pe.Kind != ErrExpr {
		t.Fatalf("want Expr error at end of input, got %v", pe)
	}
}

func Test_Parser_RecoversAfterStrayToken(t *testing.T) {
	stmts, rep := statements(t, "then x := 1")
	if len(stmts) != 1 {
		t.Fatalf("want the valid statement after recovery, got %d statements", len(stmts))
	}
	if _, ok := stmts[0].(*Assignment); !ok {
		t.Fatalf("want *Assignment, got %T", stmts[0])
	}
	if len(rep.Diags) != 1 {
		t.Fatalf("want 1 diagnostic, got %v", rep.Diags)
	}
}

func Test_Parser_RecoversBetweenStatements(t *testing.T) {
	stmts, rep := statements(t, "goto then\nstore(1, 2)\nassert 1")
	if len(stmts) != 2 {
		t.Fatalf("want 2 statements after recovery, got %d\n%s", len(stmts), FormatProgram(stmts))
	}
	if len(rep.Diags) != 1 {
		t.Fatalf("want 1 diagnostic, got %v", rep.Diags)
	}
}

func Test_Parser_EmptyInput(t *testing.T) {
	stmts, rep := statements(t, "")
	if len(stmts) != 0 || len(rep.Diags) != 0 {
		t.Fatalf("want no statements and no diagnostics, got %v / %v", stmts, rep.Diags)
	}
}
