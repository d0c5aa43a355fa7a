package core

import "github.com/sarchlab/mvprune/instr"

// Collect flattens a function body into the sequence the comparator works on.
// Blocks are taken in the order the host lists them and statements in their
// stored order, so two variants with different block layouts yield different
// sequences.
func Collect(blocks []instr.Block) []*instr.Inst {
	n := 0
	for _, b := range blocks {
		n += len(b.Insts)
	}

	stmts := make([]*instr.Inst, 0, n)
	for _, b := range blocks {
		stmts = append(stmts, b.Insts...)
	}

	return stmts
}
