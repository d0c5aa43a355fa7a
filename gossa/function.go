package gossa

import (
	"fmt"
	"go/token"
	"go/types"
	"strings"

	"github.com/sarchlab/mvprune/instr"
	"golang.org/x/tools/go/ssa"
)

// Function is a Go function seen through its SSA form.
type Function struct {
	fn       *ssa.Function
	name     string
	marker   bool
	external bool
	blocks   []instr.Block
}

func newFunction(fn *ssa.Function, name string, marker, bodyless bool) *Function {
	f := &Function{
		fn:       fn,
		name:     name,
		marker:   marker,
		external: bodyless || fn.Blocks == nil,
	}

	if !f.external {
		f.blocks = convertBlocks(fn)
	}

	return f
}

func (f *Function) Name() string {
	return f.name
}

func (f *Function) External() bool {
	return f.external
}

func (f *Function) HasCloneMarker() bool {
	return f.marker
}

func (f *Function) Blocks() []instr.Block {
	return f.blocks
}

// SSA returns the underlying SSA function.
func (f *Function) SSA() *ssa.Function {
	return f.fn
}

func convertBlocks(fn *ssa.Function) []instr.Block {
	blocks := make([]instr.Block, 0, len(fn.Blocks))

	for _, b := range fn.Blocks {
		block := instr.Block{
			Label: fmt.Sprintf("b%d", b.Index),
			Insts: make([]*instr.Inst, 0, len(b.Instrs)),
		}

		for _, i := range b.Instrs {
			if inst := Convert(i); inst != nil {
				block.Insts = append(block.Insts, inst)
			}
		}

		blocks = append(blocks, block)
	}

	return blocks
}

// Convert maps one SSA instruction to a statement. Phi nodes and debug
// references have no statement and yield nil.
func Convert(i ssa.Instruction) *instr.Inst {
	var inst *instr.Inst

	switch in := i.(type) {
	case *ssa.Phi, *ssa.DebugRef:
		return nil
	case *ssa.Call:
		inst = convertCall(&in.Call)
	case *ssa.If:
		inst = convertIf(in)
	case *ssa.Return:
		inst = convertReturn(in)
	case *ssa.BinOp:
		inst = instr.NewAssign(in.Op.String(), target(in),
			operand(in.X), operand(in.Y))
	case *ssa.UnOp:
		inst = instr.NewAssign(in.Op.String(), target(in), operand(in.X))
	case *ssa.Store:
		inst = instr.NewAssign("store", operand(in.Addr), operand(in.Val))
	case *ssa.MapUpdate:
		inst = instr.NewAssign("mapupdate", operand(in.Map),
			operand(in.Key), operand(in.Value))
	case ssa.Value:
		inst = instr.NewAssign(tagOf(i), target(in), operands(i)...)
	default:
		inst = instr.NewOther(tagOf(i))
		inst.Operands = operands(i)
	}

	inst.Text = text(i)

	return inst
}

func convertCall(common *ssa.CallCommon) *instr.Inst {
	var callee *instr.Callee

	switch {
	case common.IsInvoke():
		callee = &instr.Callee{
			Kind:   instr.Indirect,
			Symbol: common.Method.Name(),
		}
	case common.StaticCallee() != nil:
		callee = &instr.Callee{
			Kind:   instr.Direct,
			Symbol: common.StaticCallee().String(),
		}
	default:
		if b, ok := common.Value.(*ssa.Builtin); ok {
			callee = &instr.Callee{Kind: instr.Direct, Symbol: b.Name()}
		} else {
			callee = &instr.Callee{
				Kind:   instr.Indirect,
				Symbol: common.Value.Name(),
			}
		}
	}

	args := make([]*instr.Operand, len(common.Args))
	for j, a := range common.Args {
		args[j] = operand(a)
	}

	return instr.NewCall(callee, args...)
}

// convertIf uses the comparison feeding the branch when there is one, and
// tests the condition against false otherwise.
func convertIf(i *ssa.If) *instr.Inst {
	if cmp, ok := i.Cond.(*ssa.BinOp); ok && isComparison(cmp.Op) {
		return instr.NewCond(cmp.Op.String(), operand(cmp.X), operand(cmp.Y))
	}

	return instr.NewCond(token.NEQ.String(), operand(i.Cond), instr.Const("false"))
}

func isComparison(op token.Token) bool {
	switch op {
	case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ:
		return true
	default:
		return false
	}
}

func convertReturn(i *ssa.Return) *instr.Inst {
	switch len(i.Results) {
	case 0:
		return instr.NewReturn(nil)
	case 1:
		return instr.NewReturn(operand(i.Results[0]))
	default:
		names := make([]string, len(i.Results))
		for j, r := range i.Results {
			names[j] = operand(r).String()
		}
		return instr.NewReturn(instr.Opaque("(" + strings.Join(names, ", ") + ")"))
	}
}

func target(v ssa.Value) *instr.Operand {
	return instr.Sym(v.Name())
}

// operand maps an SSA value to an operand. Constants keep their exact value,
// function and builtin references are opaque, and every other value is a
// name.
func operand(v ssa.Value) *instr.Operand {
	switch v := v.(type) {
	case nil:
		return nil
	case *ssa.Const:
		if v.Value == nil {
			return instr.Const("nil")
		}
		return instr.Const(v.Value.ExactString())
	case *ssa.Function, *ssa.Builtin:
		return instr.Opaque(v.Name())
	default:
		return instr.Sym(v.Name())
	}
}

// operands maps the operands an instruction actually uses. Optional operand
// slots that are empty are left out.
func operands(i ssa.Instruction) []*instr.Operand {
	var ops []*instr.Operand

	for _, rand := range i.Operands(nil) {
		if rand == nil || *rand == nil {
			continue
		}
		ops = append(ops, operand(*rand))
	}

	return ops
}

func tagOf(i ssa.Instruction) string {
	return strings.ToLower(strings.TrimPrefix(fmt.Sprintf("%T", i), "*ssa."))
}

func text(i ssa.Instruction) string {
	if v, ok := i.(ssa.Value); ok && v.Name() != "" {
		if _, isCall := i.(*ssa.Call); !isCall || !isVoid(v) {
			return v.Name() + " = " + i.String()
		}
	}

	return i.String()
}

func isVoid(v ssa.Value) bool {
	tuple, ok := v.Type().(*types.Tuple)
	return ok && tuple.Len() == 0
}
