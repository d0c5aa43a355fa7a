package program

import (
	"fmt"
	"strings"

	"github.com/sarchlab/mvprune/instr"
)

// ParseInst parses one statement line of a dump:
//
//	assign <code> <target> <operand>...
//	call <symbol>|*<pointer> <arg>...
//	cond <code> <lhs> <rhs>
//	return [<operand>]
//	<tag> [<operand>...]
//
// Operands are "#lit" for constants, "$name" for names and "?" for a
// missing operand. Anything else is kept as an opaque operand. Commas are
// treated as blanks.
func ParseInst(line string) (*instr.Inst, error) {
	text := strings.TrimSpace(line)
	fields := strings.Fields(strings.ReplaceAll(text, ",", " "))
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty statement")
	}

	keyword, rest := strings.ToLower(fields[0]), fields[1:]

	var inst *instr.Inst
	switch keyword {
	case "assign":
		if len(rest) < 2 {
			return nil, fmt.Errorf(
				"assign needs an operation and a target: %q", text)
		}
		inst = instr.NewAssign(rest[0], ParseOperand(rest[1]),
			parseOperands(rest[2:])...)
	case "call":
		if len(rest) < 1 {
			return nil, fmt.Errorf("call needs a callee: %q", text)
		}
		inst = instr.NewCall(parseCallee(rest[0]), parseOperands(rest[1:])...)
	case "cond":
		if len(rest) != 3 {
			return nil, fmt.Errorf(
				"cond needs a code and two operands: %q", text)
		}
		inst = instr.NewCond(rest[0], ParseOperand(rest[1]),
			ParseOperand(rest[2]))
	case "return":
		switch len(rest) {
		case 0:
			inst = instr.NewReturn(nil)
		case 1:
			inst = instr.NewReturn(ParseOperand(rest[0]))
		default:
			return nil, fmt.Errorf("return takes at most one value: %q", text)
		}
	default:
		inst = instr.NewOther(keyword)
		inst.Operands = parseOperands(rest)
	}

	inst.Text = text

	return inst, nil
}

// ParseOperand parses a single operand token.
func ParseOperand(tok string) *instr.Operand {
	switch {
	case tok == "?":
		return nil
	case strings.HasPrefix(tok, "#"):
		return instr.Const(tok[1:])
	case strings.HasPrefix(tok, "$"):
		return instr.Sym(tok[1:])
	default:
		return instr.Opaque(tok)
	}
}

func parseOperands(toks []string) []*instr.Operand {
	ops := make([]*instr.Operand, len(toks))
	for i, tok := range toks {
		ops[i] = ParseOperand(tok)
	}
	return ops
}

func parseCallee(tok string) *instr.Callee {
	switch {
	case tok == "?":
		return nil
	case strings.HasPrefix(tok, "*"):
		return &instr.Callee{Kind: instr.Indirect, Symbol: tok[1:]}
	default:
		return &instr.Callee{
			Kind:   instr.Direct,
			Symbol: strings.TrimPrefix(tok, "@"),
		}
	}
}
