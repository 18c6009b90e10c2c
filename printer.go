// printer.go: deterministic s-expression rendering of the syntax tree.
//
// Used by the CLI's AST trace and by tests that pin parse shapes (operator
// grouping is unambiguous in the rendered form).
package simpil

import (
	"fmt"
	"strings"
)

// FormatExpr renders an expression as an s-expression, e.g.
// `1 + 1 * 1` → `(+ 1 (* 1 1))`.
func FormatExpr(e Expr) string {
	switch ex := e.(type) {
	case *Val:
		return fmt.Sprintf("%d", ex.Value)
	case *Var:
		return ex.Name.Lexeme
	case *Load:
		return fmt.Sprintf("(load %s)", FormatExpr(ex.Addr))
	case *GetInput:
		return fmt.Sprintf("(get_input %s)", ex.Source)
	case *Unary:
		return fmt.Sprintf("(%s %s)", ex.Op.Lexeme, FormatExpr(ex.Operand))
	case *Binary:
		return fmt.Sprintf("(%s %s %s)", ex.Op.Lexeme, FormatExpr(ex.Left), FormatExpr(ex.Right))
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

// FormatStmt renders a statement as an s-expression.
func FormatStmt(s Stmt) string {
	switch st := s.(type) {
	case *Assignment:
		return fmt.Sprintf("(:= %s %s)", st.Name.Lexeme, FormatExpr(st.Value))
	case *Store:
		return fmt.Sprintf("(store %s %s)", FormatExpr(st.Addr), FormatExpr(st.Value))
	case *Goto:
		return fmt.Sprintf("(goto %s)", FormatExpr(st.Target))
	case *Assert:
		return fmt.Sprintf("(assert %s)", FormatExpr(st.Cond))
	case *IfThenElse:
		return fmt.Sprintf("(if %s %s %s)", FormatExpr(st.Cond), FormatExpr(st.Then), FormatExpr(st.Else))
	default:
		return fmt.Sprintf("<%T>", s)
	}
}

// FormatProgram renders a statement list one per line, prefixed with the
// statement index (the jump-target address space).
func FormatProgram(stmts []Stmt) string {
	var b strings.Builder
	for i, s := range stmts {
		fmt.Fprintf(&b, "%d: %s\n", i, FormatStmt(s))
	}
	return b.String()
}
