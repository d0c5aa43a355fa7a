// Package instr defines the statement model the clone analysis works on: a
// function body is a list of basic blocks, each block an ordered list of
// statements, each statement a kind plus its operands.
package instr

import (
	"fmt"
	"strings"
)

// Kind is the statement class that drives the comparison rules.
type Kind int

const (
	Other Kind = iota
	Assign
	Call
	Cond
	Return
)

func (k Kind) String() string {
	switch k {
	case Assign:
		return "assign"
	case Call:
		return "call"
	case Cond:
		return "cond"
	case Return:
		return "return"
	default:
		return "other"
	}
}

// CalleeKind tells direct calls from calls through a pointer.
type CalleeKind int

const (
	Direct CalleeKind = iota
	Indirect
)

func (k CalleeKind) String() string {
	if k == Indirect {
		return "indirect"
	}
	return "direct"
}

// Callee is the call target of a Call statement. Symbol is only meaningful
// for direct calls.
type Callee struct {
	Kind   CalleeKind
	Symbol string
}

func (c *Callee) String() string {
	if c == nil {
		return "<nil>"
	}
	if c.Kind == Indirect {
		return "*" + c.Symbol
	}
	return c.Symbol
}

// Inst is one statement of a function body.
type Inst struct {
	Kind Kind

	// Code is the operation code of an Assign, the comparison code of a Cond,
	// or the host tag of an Other statement.
	Code string

	// Operands of an Assign. Operands[0] is the target.
	Operands []*Operand

	Callee *Callee
	Args   []*Operand

	LHS *Operand
	RHS *Operand

	// Value is the returned value, nil for a bare return.
	Value *Operand

	// Text is the host's printed form of the statement.
	Text string
}

// NewAssign creates an assignment of op over the given operands, target first.
func NewAssign(op string, target *Operand, srcs ...*Operand) *Inst {
	return &Inst{
		Kind:     Assign,
		Code:     op,
		Operands: append([]*Operand{target}, srcs...),
	}
}

// NewCall creates a call to callee.
func NewCall(callee *Callee, args ...*Operand) *Inst {
	return &Inst{Kind: Call, Callee: callee, Args: args}
}

// NewCond creates a conditional branch comparing lhs and rhs with code.
func NewCond(code string, lhs, rhs *Operand) *Inst {
	return &Inst{Kind: Cond, Code: code, LHS: lhs, RHS: rhs}
}

// NewReturn creates a return of value. A nil value is a bare return.
func NewReturn(value *Operand) *Inst {
	return &Inst{Kind: Return, Value: value}
}

// NewOther creates a statement the comparison rules do not look into.
func NewOther(tag string) *Inst {
	return &Inst{Kind: Other, Code: tag}
}

// HasValue reports whether a Return carries a value.
func (i *Inst) HasValue() bool {
	return i.Value != nil
}

func (i *Inst) String() string {
	if i == nil {
		return "<nil>"
	}
	if i.Text != "" {
		return i.Text
	}

	switch i.Kind {
	case Assign:
		if len(i.Operands) == 0 {
			return fmt.Sprintf("%s <no operands>", i.Code)
		}
		return fmt.Sprintf("%s = %s %s",
			i.Operands[0], i.Code, joinOperands(i.Operands[1:]))
	case Call:
		return fmt.Sprintf("call %s(%s)", i.Callee, joinOperands(i.Args))
	case Cond:
		return fmt.Sprintf("if (%s %s %s)", i.LHS, i.Code, i.RHS)
	case Return:
		if i.Value == nil {
			return "return"
		}
		return fmt.Sprintf("return %s", i.Value)
	default:
		return i.Code
	}
}

func joinOperands(ops []*Operand) string {
	strs := make([]string, len(ops))
	for i, op := range ops {
		strs[i] = op.String()
	}
	return strings.Join(strs, ", ")
}

// Block is a basic block as the host lays it out.
type Block struct {
	Label string
	Insts []*Inst
}
