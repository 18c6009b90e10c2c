// lexer.go: turn source bytes into Tokens.
//
// The scanner is a single-pass byte-class dispatcher. Whitespace is skipped,
// invalid bytes are reported to the diagnostic Reporter and discarded (the
// scan continues), and every emitted token carries the exact source slice it
// consumed along with its 1-based line and 0-based start column.
package simpil

import (
	"fmt"
	"strconv"
)

// Scanner scans simpIL source into tokens. A Scanner is good for one pass
// over its source; to rescan, construct a new one from the original text.
type Scanner struct {
	src     string
	start   int // start index of current token
	cur     int // current index
	line    int // 1-based
	col     int // 0-based column within line
	reports Reporter

	// token start position, captured after leading ignorable bytes
	tokStartLine int
	tokStartCol  int
}

// NewScanner creates a scanner for the given source. Invalid-byte reports go
// to r; a nil r falls back to the console reporter.
func NewScanner(src string, r Reporter) *Scanner {
	if r == nil {
		r = NewConsoleReporter()
	}
	return &Scanner{
		src:     src,
		line:    1,
		col:     0,
		reports: r,
	}
}

func (s *Scanner) isAtEnd() bool { return s.cur >= len(s.src) }

func (s *Scanner) peek() (byte, bool) {
	if s.isAtEnd() {
		return 0, false
	}
	return s.src[s.cur], true
}

func (s *Scanner) advance() (byte, bool) {
	if s.isAtEnd() {
		return 0, false
	}
	ch := s.src[s.cur]
	s.cur++
	if ch == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return ch, true
}

// matches consumes the next byte iff it equals expected.
func (s *Scanner) matches(expected byte) bool {
	b, ok := s.peek()
	if !ok || b != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) token(tt TokenType, val uint32) Token {
	return Token{
		Type:   tt,
		Lexeme: s.src[s.start:s.cur],
		Value:  val,
		Line:   s.tokStartLine,
		Col:    s.tokStartCol,
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// ----- errors -----

// LexError is a scan-time failure (currently only literal overflow).
// Line is 1-based, Col 0-based.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

func (s *Scanner) err(msg string) error {
	return &LexError{Line: s.tokStartLine, Col: s.tokStartCol, Msg: msg}
}

// ----- scanners -----

// scanValue parses a greedy run of decimal digits as an unsigned 32-bit
// literal. The first digit has already been consumed.
func (s *Scanner) scanValue() (Token, error) {
	for {
		b, ok := s.peek()
		if !ok || !isDigit(b) {
			break
		}
		s.advance()
	}
	lex := s.src[s.start:s.cur]
	v, convErr := strconv.ParseUint(lex, 10, 32)
	if convErr != nil {
		return Token{}, s.err(fmt.Sprintf("value %s does not fit an unsigned 32-bit integer", lex))
	}
	return s.token(VALUE, uint32(v)), nil
}

// scanIdentifier parses [A-Za-z_][A-Za-z0-9_]* and resolves keywords.
// The first byte has already been consumed.
func (s *Scanner) scanIdentifier() Token {
	for {
		b, ok := s.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		s.advance()
	}
	lex := s.src[s.start:s.cur]
	if tt, ok := keywords[lex]; ok {
		return s.token(tt, 0)
	}
	return s.token(IDENT, 0)
}

// ----- main scanner -----

// scanToken returns the next token, skipping whitespace and reporting and
// discarding invalid bytes. At end of input it returns an EOF token.
func (s *Scanner) scanToken() (Token, error) {
	for {
		s.tokStartLine = s.line
		s.tokStartCol = s.col
		s.start = s.cur

		if s.isAtEnd() {
			return s.token(EOF, 0), nil
		}

		ch, _ := s.advance()
		switch ch {
		case '(':
			return s.token(LPAREN, 0), nil
		case ')':
			return s.token(RPAREN, 0), nil
		case ',':
			return s.token(COMMA, 0), nil
		case '+':
			return s.token(PLUS, 0), nil
		case '-':
			return s.token(MINUS, 0), nil
		case '*':
			return s.token(STAR, 0), nil
		case '/':
			return s.token(SLASH, 0), nil
		case ':':
			if s.matches('=') {
				return s.token(ASSIGN, 0), nil
			}
		case ' ', '\r', '\t', '\n':
			continue
		default:
			if isDigit(ch) {
				return s.scanValue()
			}
			if isAlpha(ch) {
				return s.scanIdentifier(), nil
			}
		}

		s.reports.Report(s.tokStartLine, s.tokStartCol, fmt.Sprintf("invalid byte %q", ch))
	}
}

// Scan tokenizes the entire source and returns the tokens, EOF included.
func (s *Scanner) Scan() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := s.scanToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
