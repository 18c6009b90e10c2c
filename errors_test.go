// errors_test.go
package simpil

import (
	"errors"
	"strings"
	"testing"
)

func Test_Errors_ParseSnippet(t *testing.T) {
	src := "store(1, 2)\nstore(3 )\nx := load(1)"
	perr := &ParseError{
		Kind: ErrExpected,
		Want: COMMA,
		Msg:  "expected ',', found ')'",
		Line: 2,
		Col:  8,
	}
	out := WrapErrorWithName(perr, "demo.il", src).Error()

	for _, want := range []string{
		"PARSE ERROR in demo.il at 2:9: expected ',', found ')'",
		"   1 | store(1, 2)",
		"   2 | store(3 )",
		"     |         ^",
		"   3 | x := load(1)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("snippet missing %q:\n%s", want, out)
		}
	}
}

func Test_Errors_LexSnippet(t *testing.T) {
	src := "x := 99999999999"
	_, err := NewScanner(src, &CollectReporter{}).Scan()
	if err == nil {
		t.Fatalf("want lex error")
	}
	out := WrapErrorWithSource(err, src).Error()
	if !strings.Contains(out, "LEXICAL ERROR at 1:6") {
		t.Fatalf("want header with position, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("want caret, got:\n%s", out)
	}
}

func Test_Errors_ClampedOutOfRangePosition(t *testing.T) {
	perr := &ParseError{Kind: ErrStmt, Msg: "boom", Line: 99, Col: 99}
	out := WrapErrorWithSource(perr, "x := 1").Error()
	if !strings.Contains(out, "x := 1") {
		t.Fatalf("clamped snippet should still show the source:\n%s", out)
	}
}

func Test_Errors_OtherErrorsPassThrough(t *testing.T) {
	base := errors.New("plain")
	if got := WrapErrorWithSource(base, "x := 1"); got != base {
		t.Fatalf("want the original error back, got %v", got)
	}
}
