// ast.go: definitions of the simpIL syntax tree.
//
// Statements and expressions are tagged variants: one struct per form behind
// the Stmt and Expr interfaces. Every node exclusively owns its children (the
// grammar is strictly tree-structured) and is never mutated after the parser
// constructs it. A parsed program is an ordered []Stmt; statement order is
// both the fall-through control flow and the jump-target address space.
package simpil

// Stmt is a simpIL statement.
type Stmt interface {
	stmtNode()
}

// Expr is a simpIL expression.
type Expr interface {
	exprNode()
}

// Assignment binds Name to the value of Value: `name := expr`.
type Assignment struct {
	Name  Token // IDENT token
	Value Expr
}

// Store writes Value to the register addressed by Addr: `store(addr, value)`.
type Store struct {
	Addr  Expr
	Value Expr
}

// Goto sets the program counter to the value of Target: `goto expr`.
type Goto struct {
	Target Expr
}

// Assert halts the whole run unless Cond evaluates to exactly 1.
type Assert struct {
	Cond Expr
}

// IfThenElse evaluates exactly one branch expression depending on Cond.
// It yields a value; it never redirects the program counter itself.
type IfThenElse struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (*Assignment) stmtNode() {}
func (*Store) stmtNode()      {}
func (*Goto) stmtNode()       {}
func (*Assert) stmtNode()     {}
func (*IfThenElse) stmtNode() {}

// Load reads the register addressed by Addr: `load(expr)`.
type Load struct {
	Addr Expr
}

// Binary applies Op to Left and Right.
type Binary struct {
	Left  Expr
	Op    Token // PLUS, MINUS, STAR or SLASH
	Right Expr
}

// Unary is a prefix `+`/`-` applied to Operand.
type Unary struct {
	Op      Token
	Operand Expr
}

// Var reads the variable bound to Name.
type Var struct {
	Name Token // IDENT token
}

// GetInput reads the external input source to exhaustion and parses it as an
// unsigned decimal integer. Source names the input channel.
type GetInput struct {
	Source string
}

// Val is an unsigned 32-bit literal.
type Val struct {
	Value uint32
}

func (*Load) exprNode()     {}
func (*Binary) exprNode()   {}
func (*Unary) exprNode()    {}
func (*Var) exprNode()      {}
func (*GetInput) exprNode() {}
func (*Val) exprNode()      {}
