package core

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/mvprune/instr"
)

// Mismatch explains why two statement sequences are not substantially the
// same. Index is -1 when the sequences differ in length.
type Mismatch struct {
	Index int
	Msg   string

	// CodeMismatch is set when the statements differ in kind or tag.
	CodeMismatch bool

	A, B *instr.Inst
}

func (m *Mismatch) String() string {
	return m.Msg
}

func mismatchAt(
	i int,
	a, b *instr.Inst,
	format string,
	args ...any,
) *Mismatch {
	return &Mismatch{
		Index: i,
		Msg:   fmt.Sprintf(format, args...),
		A:     a,
		B:     b,
	}
}

func codeMismatch(i int, a, b *instr.Inst) *Mismatch {
	m := mismatchAt(i, a, b, "Statement %d: Different gimple codes", i)
	m.CodeMismatch = true
	return m
}

// Equivalent reports whether two statement sequences are substantially the
// same. Statements are matched by position only. Constants, return values
// and direct call targets are compared by value; symbolic names and branch
// operands only by shape. Other statements match when their tags match. The
// first difference found is returned.
func Equivalent(a, b []*instr.Inst) (bool, *Mismatch) {
	if len(a) != len(b) {
		return false, &Mismatch{
			Index: -1,
			Msg: fmt.Sprintf(
				"Functions have different statement counts: %d vs %d",
				len(a), len(b)),
		}
	}

	for i := range a {
		if m := compareInst(i, a[i], b[i]); m != nil {
			return false, m
		}
	}

	return true, nil
}

func compareInst(i int, a, b *instr.Inst) *Mismatch {
	if a == nil || b == nil {
		return mismatchAt(i, a, b,
			"Statement %d: Null statement encountered", i)
	}

	if a.Kind != b.Kind {
		return codeMismatch(i, a, b)
	}

	switch a.Kind {
	case instr.Assign:
		return compareAssign(i, a, b)
	case instr.Call:
		return compareCall(i, a, b)
	case instr.Cond:
		return compareCond(i, a, b)
	case instr.Return:
		return compareReturn(i, a, b)
	default:
		if a.Code != b.Code {
			return codeMismatch(i, a, b)
		}
		return nil
	}
}

func compareAssign(i int, a, b *instr.Inst) *Mismatch {
	if a.Code != b.Code {
		return mismatchAt(i, a, b,
			"Assignment operation mismatch at statement %d", i)
	}

	if len(a.Operands) != len(b.Operands) {
		return mismatchAt(i, a, b,
			"Different number of operands at statement %d", i)
	}

	// Operand 0 is the target and is never compared.
	for j := 1; j < len(a.Operands); j++ {
		x, y := a.Operands[j], b.Operands[j]

		if x == nil || y == nil {
			return mismatchAt(i, a, b,
				"Null operand encountered at statement %d", i)
		}

		if x.Kind != y.Kind {
			return mismatchAt(i, a, b,
				"Different operand types at statement %d", i)
		}

		if x.Kind == instr.Constant && x.Value != y.Value {
			return mismatchAt(i, a, b,
				"Different constant values at statement %d", i)
		}
	}

	return nil
}

func compareCall(i int, a, b *instr.Inst) *Mismatch {
	if a.Callee == nil || b.Callee == nil {
		return mismatchAt(i, a, b, "Null function in call at statement %d", i)
	}

	if a.Callee.Kind != b.Callee.Kind {
		return mismatchAt(i, a, b,
			"Different function call types at statement %d", i)
	}

	if a.Callee.Kind == instr.Direct {
		if a.Callee.Symbol == "" || b.Callee.Symbol == "" {
			return mismatchAt(i, a, b,
				"Invalid function declaration at statement %d", i)
		}

		if a.Callee.Symbol != b.Callee.Symbol {
			return mismatchAt(i, a, b,
				"Calling different functions at statement %d", i)
		}
	}

	if len(a.Args) != len(b.Args) {
		return mismatchAt(i, a, b,
			"Different number of arguments in call at statement %d", i)
	}

	for j := range a.Args {
		if a.Args[j] == nil || b.Args[j] == nil {
			return mismatchAt(i, a, b,
				"Null argument in call at statement %d, arg %d", i, j)
		}
	}

	return nil
}

func compareCond(i int, a, b *instr.Inst) *Mismatch {
	if a.Code != b.Code {
		return mismatchAt(i, a, b,
			"Different conditional codes at statement %d", i)
	}

	if a.LHS == nil || b.LHS == nil || a.RHS == nil || b.RHS == nil {
		return mismatchAt(i, a, b,
			"Null operand in condition at statement %d", i)
	}

	return nil
}

func compareReturn(i int, a, b *instr.Inst) *Mismatch {
	if a.HasValue() != b.HasValue() {
		return mismatchAt(i, a, b,
			"One function returns a value, the other doesn't at statement %d",
			i)
	}

	if a.Value.IsConstant() && b.Value.IsConstant() &&
		a.Value.Value != b.Value.Value {
		return mismatchAt(i, a, b, "Different return values at statement %d", i)
	}

	return nil
}

// HookPosMismatch marks a failed comparison. The item is a *Mismatch.
var HookPosMismatch = &sim.HookPos{Name: "Compare Mismatch"}

// HookPosMatch marks a comparison that found no difference. The item is a
// Comparison.
var HookPosMatch = &sim.HookPos{Name: "Compare Match"}

// Comparison identifies the two variants being compared.
type Comparison struct {
	Base      string
	Baseline  string
	Candidate string
}

// A Comparator runs Equivalent and reports the outcome to its hooks.
type Comparator struct {
	*sim.HookableBase
}

// NewComparator creates a comparator that reports to hooks.
func NewComparator(hooks *sim.HookableBase) *Comparator {
	if hooks == nil {
		hooks = sim.NewHookableBase()
	}

	return &Comparator{HookableBase: hooks}
}

// Compare reports whether the statement sequences of baseline and candidate
// are substantially the same.
func (c *Comparator) Compare(baseline, candidate *Variant) bool {
	same, m := Equivalent(baseline.Stmts, candidate.Stmts)

	if c.NumHooks() == 0 {
		return same
	}

	if !same {
		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosMismatch,
			Item:   m,
		})

		return false
	}

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    HookPosMatch,
		Item: Comparison{
			Base:      baseline.Base,
			Baseline:  baseline.Suffix,
			Candidate: candidate.Suffix,
		},
	})

	return true
}
