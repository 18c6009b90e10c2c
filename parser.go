// parser.go — precedence-climbing parser for simpIL.
//
// OVERVIEW
// --------
// The parser consumes the token slice produced by the scanner (see lexer.go)
// and builds the statement list executed by the interpreter. Statements are
// dispatched on their first token; expressions use Pratt parsing with
// per-operator binding powers.
//
// Statement grammar:
//
//	IDENT  := expression
//	store  ( expression , expression )
//	goto   expression
//	assert expression
//	if expression then goto expression else goto expression
//
// Expression grammar: literals and identifiers are atoms; `load(expr)` and
// `get_input` are prefix forms; a leading '+'/'-' wraps a full expression in
// a Unary node. Binary '+','-' bind as (1,2) and '*','/' as (3,4); the loop
// continues only while the operator's left power strictly exceeds the
// caller's minimum, so unbroken ties group left-to-right:
//
//	1 + 1 * 1  →  (+ 1 (* 1 1))
//	1 * 1 + 1  →  (+ (* 1 1) 1)
//
// Error recovery: a malformed statement is reported to the diagnostic
// Reporter and the parser synchronizes — it discards tokens until the next
// statement-starting token (identifier, 'store', 'goto', 'assert', 'if') or
// end of input — then keeps parsing. One bad statement never aborts the rest
// of the program.
package simpil

import "fmt"

// ParseSource scans and parses src into a statement list, recovering at
// statement boundaries. Scanner invalid bytes and malformed statements are
// reported to r; only a lexical failure (literal overflow) aborts the parse.
func ParseSource(src string, r Reporter) ([]Stmt, error) {
	if r == nil {
		r = NewConsoleReporter()
	}
	toks, err := NewScanner(src, r).Scan()
	if err != nil {
		return nil, err
	}
	return NewParser(toks, r).Parse(), nil
}

// ─────────────────────────────── errors ─────────────────────────────────────

// ParseErrorKind distinguishes the three parse failure modes.
type ParseErrorKind int

const (
	// ErrStmt: the current token cannot start any statement.
	ErrStmt ParseErrorKind = iota
	// ErrExpr: the current token cannot start any expression.
	ErrExpr
	// ErrExpected: a specific mandatory token was missing.
	ErrExpected
)

// ParseError is a statement-granular parse failure. Line is 1-based,
// Col 0-based; both point at the offending token.
type ParseError struct {
	Kind ParseErrorKind
	Want TokenType // only set for ErrExpected
	Msg  string
	Line int
	Col  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// ─────────────────────────────── parser ─────────────────────────────────────

// Parser turns a token slice into statements, one pull at a time.
type Parser struct {
	toks    []Token
	i       int
	reports Reporter
}

// NewParser creates a parser over toks. The slice must end with an EOF token
// (Scanner.Scan guarantees this). Recovery reports go to r; a nil r falls
// back to the console reporter.
func NewParser(toks []Token, r Reporter) *Parser {
	if r == nil {
		r = NewConsoleReporter()
	}
	if len(toks) == 0 || toks[len(toks)-1].Type != EOF {
		toks = append(toks, Token{Type: EOF})
	}
	return &Parser{toks: toks, reports: r}
}

func (p *Parser) atEnd() bool { return p.peek().Type == EOF }

func (p *Parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}

func (p *Parser) prev() Token { return p.toks[p.i-1] }

func (p *Parser) advance() Token {
	if p.atEnd() {
		return p.peek()
	}
	p.i++
	return p.prev()
}

// need consumes the next token iff it has the wanted type.
func (p *Parser) need(tt TokenType) (Token, error) {
	if p.peek().Type == tt {
		return p.advance(), nil
	}
	g := p.peek()
	return Token{}, &ParseError{
		Kind: ErrExpected,
		Want: tt,
		Msg:  fmt.Sprintf("expected %s, found %s", tt, g.Type),
		Line: g.Line,
		Col:  g.Col,
	}
}

func errStmt(at Token, msg string) error {
	return &ParseError{Kind: ErrStmt, Msg: msg, Line: at.Line, Col: at.Col}
}

func errExpr(at Token, msg string) error {
	return &ParseError{Kind: ErrExpr, Msg: msg, Line: at.Line, Col: at.Col}
}

// Parse materializes the whole program. Malformed statements are reported to
// the Reporter and skipped via synchronize; parsing continues until the token
// stream is exhausted.
func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !p.atEnd() {
		stmt, err := p.Next()
		if err != nil {
			p.report(err)
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts
}

// Next attempts to parse exactly one statement in the parser's current state.
// It does not recover; callers wanting recovery use Parse.
func (p *Parser) Next() (Stmt, error) {
	tok := p.advance()
	switch tok.Type {
	case IDENT:
		return p.assignment()
	case STORE:
		return p.store()
	case GOTO:
		return p.gotoStmt()
	case ASSERT:
		return p.assert()
	case IF:
		return p.ifThenElse()
	case EOF:
		return nil, errStmt(tok, "unexpected end of input, expected statement")
	default:
		return nil, errStmt(tok, fmt.Sprintf("found %s, expected statement", tok.Type))
	}
}

func (p *Parser) report(err error) {
	if pe, ok := err.(*ParseError); ok {
		p.reports.Report(pe.Line, pe.Col, pe.Msg)
		return
	}
	p.reports.Report(0, 0, err.Error())
}

// synchronize discards tokens until the next statement boundary. The failing
// statement has already consumed at least one token, so stopping on an
// already-current statement starter is safe and cannot loop.
func (p *Parser) synchronize() {
	for !p.atEnd() {
		switch p.peek().Type {
		case IDENT, STORE, GOTO, ASSERT, IF:
			return
		}
		p.advance()
	}
}

// ───────────────────────────── statements ───────────────────────────────────

// assignment parses `name := expression`; the IDENT is already consumed.
func (p *Parser) assignment() (Stmt, error) {
	name := p.prev()
	if _, err := p.need(ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	return &Assignment{Name: name, Value: value}, nil
}

func (p *Parser) store() (Stmt, error) {
	if _, err := p.need(LPAREN); err != nil {
		return nil, err
	}
	addr, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.need(COMMA); err != nil {
		return nil, err
	}
	value, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.need(RPAREN); err != nil {
		return nil, err
	}
	return &Store{Addr: addr, Value: value}, nil
}

func (p *Parser) gotoStmt() (Stmt, error) {
	target, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	return &Goto{Target: target}, nil
}

func (p *Parser) assert() (Stmt, error) {
	cond, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	return &Assert{Cond: cond}, nil
}

// ifThenElse parses `if cond then goto expr else goto expr`. Branches are
// jump targets, so the grammar requires the goto keyword before each; the
// keyword is purely syntactic and the node stores only the expressions.
func (p *Parser) ifThenElse() (Stmt, error) {
	cond, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.need(THEN); err != nil {
		return nil, err
	}
	if _, err := p.need(GOTO); err != nil {
		return nil, err
	}
	then, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.need(ELSE); err != nil {
		return nil, err
	}
	if _, err := p.need(GOTO); err != nil {
		return nil, err
	}
	els, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	return &IfThenElse{Cond: cond, Then: then, Else: els}, nil
}

// ─────────────────────────── expressions ────────────────────────────────────

// bindingPower returns the left and right binding power of a binary operator.
func bindingPower(tt TokenType) (lbp, rbp int, ok bool) {
	switch tt {
	case PLUS, MINUS:
		return 1, 2, true
	case STAR, SLASH:
		return 3, 4, true
	}
	return 0, 0, false
}

// expression parses with precedence climbing: after a prefix form, binary
// operators are folded in while their left power exceeds minBP, recursing
// with the operator's right power.
func (p *Parser) expression(minBP int) (Expr, error) {
	left, err := p.prefix()
	if err != nil {
		return nil, err
	}
	for {
		lbp, rbp, ok := bindingPower(p.peek().Type)
		if !ok || lbp <= minBP {
			return left, nil
		}
		op := p.advance()
		right, err := p.expression(rbp)
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: op, Right: right}
	}
}

func (p *Parser) prefix() (Expr, error) {
	tok := p.advance()
	switch tok.Type {
	case VALUE:
		return &Val{Value: tok.Value}, nil
	case IDENT:
		return &Var{Name: tok}, nil
	case LOAD:
		return p.load()
	case GETINPUT:
		return &GetInput{Source: "stdin"}, nil
	case PLUS, MINUS:
		operand, err := p.expression(0)
		if err != nil {
			return nil, err
		}
		return &Unary{Op: tok, Operand: operand}, nil
	case EOF:
		return nil, errExpr(tok, "unexpected end of input, expected expression")
	default:
		return nil, errExpr(tok, fmt.Sprintf("found %s, expected expression", tok.Type))
	}
}

func (p *Parser) load() (Expr, error) {
	if _, err := p.need(LPAREN); err != nil {
		return nil, err
	}
	addr, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.need(RPAREN); err != nil {
		return nil, err
	}
	return &Load{Addr: addr}, nil
}
