// interpreter.go — program-counter-driven evaluation of a simpIL program.
//
// The interpreter owns the full, parsed statement list: jumps are absolute
// indexes into it, so the program must be materialized before execution
// starts. State is three mutable pieces — registers (u32 address → u32),
// vars (name → u32) and the program counter — all owned exclusively by one
// Interpreter for the duration of one Run.
//
// The counter is incremented *before* a statement is evaluated, so a non-jump
// statement falls through to the next index and a goto simply overwrites the
// counter with its target. A target equal to the statement count terminates
// the run cleanly; anything beyond is a range error. `goto` back to an
// earlier index is the language's only loop, and a program that never
// advances past the end never terminates — that is intended behavior, capped
// only by the optional StepLimit.
//
// All failures surface as typed error values: *RuntimeError for recoverable
// faults (undefined variable/register, malformed input, division by zero,
// checked overflow/underflow, out-of-range jump, step-limit exhaustion) and
// *AssertionError for the deliberate whole-run stop of a failed assert.
package simpil

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// RuntimeErrorKind enumerates the recoverable execution faults.
type RuntimeErrorKind int

const (
	UndefinedVar RuntimeErrorKind = iota
	UndefinedRegister
	BadInput
	DivisionByZero
	Overflow
	Underflow
	JumpOutOfRange
	StepLimitExceeded
)

// RuntimeError is a recoverable execution failure. PC is the index of the
// statement that was executing when the fault occurred.
type RuntimeError struct {
	Kind RuntimeErrorKind
	PC   int
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR at statement %d: %s", e.PC, e.Msg)
}

// AssertionError is the distinguished outcome of a failed assert. It is not
// a RuntimeError: it means the program demanded an immediate stop, not that
// evaluation went wrong. Hosts typically map it to a dedicated exit code.
type AssertionError struct {
	PC    int
	Value uint32
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("ASSERTION FAILED at statement %d: expected 1, got %d", e.PC, e.Value)
}

// Interpreter executes a parsed simpIL program.
//
// Configure the exported fields before calling Run; they are not safe to
// change mid-run. Registers and vars persist across Run calls on the same
// Interpreter (entries are overwritten, never removed), while the program
// counter resets each time.
type Interpreter struct {
	statements []Stmt
	registers  map[uint32]uint32
	vars       map[string]uint32
	pc         int

	// Input backs get_input: each evaluation reads it to exhaustion and
	// parses the content as an unsigned decimal integer. Defaults to stdin.
	Input io.Reader

	// StepLimit caps the number of executed statements; 0 means unlimited.
	// Exceeding it fails the run with a StepLimitExceeded RuntimeError.
	StepLimit int
}

// NewInterpreter creates an interpreter owning statements.
func NewInterpreter(statements []Stmt) *Interpreter {
	return &Interpreter{
		statements: statements,
		registers:  make(map[uint32]uint32),
		vars:       make(map[string]uint32),
		Input:      os.Stdin,
	}
}

// Run executes the program from statement 0 and returns one value per
// executed statement, in execution order. A statement jumped back to
// contributes one value per execution. On failure the values produced so far
// are returned alongside the error.
func (ip *Interpreter) Run() ([]uint32, error) {
	ip.pc = 0
	var res []uint32
	steps := 0
	for ip.pc < len(ip.statements) {
		if ip.StepLimit > 0 && steps >= ip.StepLimit {
			return res, &RuntimeError{
				Kind: StepLimitExceeded,
				PC:   ip.pc,
				Msg:  fmt.Sprintf("step limit of %d exceeded", ip.StepLimit),
			}
		}
		steps++
		at := ip.pc
		stmt := ip.statements[at]
		ip.pc++
		v, err := ip.execStmt(at, stmt)
		if err != nil {
			return res, err
		}
		res = append(res, v)
	}
	return res, nil
}

func (ip *Interpreter) execStmt(at int, s Stmt) (uint32, error) {
	switch st := s.(type) {
	case *Assignment:
		v, err := ip.evalExpr(at, st.Value)
		if err != nil {
			return 0, err
		}
		// First bindings succeed like rebindings; there is no previous
		// value to care about.
		ip.vars[st.Name.Lexeme] = v
		return v, nil

	case *Store:
		addr, err := ip.evalExpr(at, st.Addr)
		if err != nil {
			return 0, err
		}
		v, err := ip.evalExpr(at, st.Value)
		if err != nil {
			return 0, err
		}
		ip.registers[addr] = v
		return v, nil

	case *Goto:
		target, err := ip.evalExpr(at, st.Target)
		if err != nil {
			return 0, err
		}
		// target == len(statements) is a valid way to terminate.
		if uint64(target) > uint64(len(ip.statements)) {
			return 0, &RuntimeError{
				Kind: JumpOutOfRange,
				PC:   at,
				Msg:  fmt.Sprintf("goto target %d is out of range (program has %d statements)", target, len(ip.statements)),
			}
		}
		ip.pc = int(target)
		return target, nil

	case *Assert:
		v, err := ip.evalExpr(at, st.Cond)
		if err != nil {
			return 0, err
		}
		if v != 1 {
			return 0, &AssertionError{PC: at, Value: v}
		}
		return v, nil

	case *IfThenElse:
		cond, err := ip.evalExpr(at, st.Cond)
		if err != nil {
			return 0, err
		}
		switch cond {
		case 1:
			return ip.evalExpr(at, st.Then)
		case 0:
			return ip.evalExpr(at, st.Else)
		default:
			// Neither branch is evaluated for any other condition value.
			return 0, nil
		}

	default:
		return 0, &RuntimeError{PC: at, Msg: fmt.Sprintf("unknown statement %T", s)}
	}
}

func (ip *Interpreter) evalExpr(at int, e Expr) (uint32, error) {
	switch ex := e.(type) {
	case *Val:
		return ex.Value, nil

	case *Var:
		v, ok := ip.vars[ex.Name.Lexeme]
		if !ok {
			return 0, &RuntimeError{
				Kind: UndefinedVar,
				PC:   at,
				Msg:  fmt.Sprintf("variable %q is not defined", ex.Name.Lexeme),
			}
		}
		return v, nil

	case *Load:
		addr, err := ip.evalExpr(at, ex.Addr)
		if err != nil {
			return 0, err
		}
		v, ok := ip.registers[addr]
		if !ok {
			return 0, &RuntimeError{
				Kind: UndefinedRegister,
				PC:   at,
				Msg:  fmt.Sprintf("register %d is not defined", addr),
			}
		}
		return v, nil

	case *Binary:
		lhs, err := ip.evalExpr(at, ex.Left)
		if err != nil {
			return 0, err
		}
		rhs, err := ip.evalExpr(at, ex.Right)
		if err != nil {
			return 0, err
		}
		return ip.applyBinary(at, ex.Op, lhs, rhs)

	case *Unary:
		// The operator is recognized but not applied; the operand's value
		// passes through unchanged.
		return ip.evalExpr(at, ex.Operand)

	case *GetInput:
		return ip.readInput(at)

	default:
		return 0, &RuntimeError{PC: at, Msg: fmt.Sprintf("unknown expression %T", e)}
	}
}

// applyBinary performs checked u32 arithmetic: overflow, underflow and
// division by zero are runtime errors rather than silent wraps.
func (ip *Interpreter) applyBinary(at int, op Token, lhs, rhs uint32) (uint32, error) {
	switch op.Type {
	case PLUS:
		sum := lhs + rhs
		if sum < lhs {
			return 0, &RuntimeError{
				Kind: Overflow,
				PC:   at,
				Msg:  fmt.Sprintf("%d + %d overflows", lhs, rhs),
			}
		}
		return sum, nil
	case MINUS:
		if rhs > lhs {
			return 0, &RuntimeError{
				Kind: Underflow,
				PC:   at,
				Msg:  fmt.Sprintf("%d - %d underflows", lhs, rhs),
			}
		}
		return lhs - rhs, nil
	case STAR:
		if lhs != 0 && lhs*rhs/lhs != rhs {
			return 0, &RuntimeError{
				Kind: Overflow,
				PC:   at,
				Msg:  fmt.Sprintf("%d * %d overflows", lhs, rhs),
			}
		}
		return lhs * rhs, nil
	case SLASH:
		if rhs == 0 {
			return 0, &RuntimeError{
				Kind: DivisionByZero,
				PC:   at,
				Msg:  fmt.Sprintf("%d / 0", lhs),
			}
		}
		return lhs / rhs, nil
	default:
		return 0, &RuntimeError{PC: at, Msg: fmt.Sprintf("invalid binary operator %s", op.Type)}
	}
}

// readInput drains the input source and parses it as an unsigned decimal
// integer. The read blocks until the source signals end-of-data.
func (ip *Interpreter) readInput(at int) (uint32, error) {
	in := ip.Input
	if in == nil {
		in = os.Stdin
	}
	raw, err := io.ReadAll(in)
	if err != nil {
		return 0, &RuntimeError{
			Kind: BadInput,
			PC:   at,
			Msg:  fmt.Sprintf("reading input: %v", err),
		}
	}
	text := strings.TrimSpace(string(raw))
	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, &RuntimeError{
			Kind: BadInput,
			PC:   at,
			Msg:  fmt.Sprintf("input %q is not an unsigned 32-bit integer", text),
		}
	}
	return uint32(v), nil
}
