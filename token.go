package simpil

import "fmt"

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	INVALID

	// Punctuation
	LPAREN // "("
	RPAREN // ")"
	COMMA  // ","

	// Operators
	PLUS  // "+"
	MINUS // "-"
	STAR  // "*"
	SLASH // "/"

	ASSIGN // ":="

	// Literals & identifiers
	VALUE // unsigned 32-bit literal
	IDENT

	// Keywords
	STORE
	GOTO
	ASSERT
	IF
	THEN
	ELSE
	LOAD
	GETINPUT
)

var tokenNames = map[TokenType]string{
	EOF:      "end of file",
	INVALID:  "invalid byte",
	LPAREN:   "'('",
	RPAREN:   "')'",
	COMMA:    "','",
	PLUS:     "'+'",
	MINUS:    "'-'",
	STAR:     "'*'",
	SLASH:    "'/'",
	ASSIGN:   "':='",
	VALUE:    "value",
	IDENT:    "identifier",
	STORE:    "'store'",
	GOTO:     "'goto'",
	ASSERT:   "'assert'",
	IF:       "'if'",
	THEN:     "'then'",
	ELSE:     "'else'",
	LOAD:     "'load'",
	GETINPUT: "'get_input'",
}

func (tt TokenType) String() string {
	if s, ok := tokenNames[tt]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", int(tt))
}

// keywords map
var keywords = map[string]TokenType{
	"store":     STORE,
	"goto":      GOTO,
	"assert":    ASSERT,
	"if":        IF,
	"then":      THEN,
	"else":      ELSE,
	"load":      LOAD,
	"get_input": GETINPUT,
}

// Token is a lexical token. Value is only meaningful for VALUE tokens.
// Tokens are immutable once produced by the scanner.
type Token struct {
	Type   TokenType
	Lexeme string // raw source slice
	Value  uint32 // parsed literal for VALUE tokens
	Line   int    // 1-based
	Col    int    // 0-based column of the token start
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	case VALUE:
		return fmt.Sprintf("VALUE(%d)", t.Value)
	case IDENT:
		return fmt.Sprintf("IDENT(%s)", t.Lexeme)
	default:
		return t.Lexeme
	}
}
