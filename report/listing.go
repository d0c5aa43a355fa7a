package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/mvprune/instr"
)

// WriteListing prints every statement of a function block by block, followed
// by the block and statement totals.
func WriteListing(w io.Writer, name string, blocks []instr.Block) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(name)
	t.AppendHeader(table.Row{"Block", "#", "Kind", "Statement"})

	count := 0
	for i, b := range blocks {
		label := b.Label
		if label == "" {
			label = fmt.Sprintf("bb%d", i)
		}

		for _, stmt := range b.Insts {
			t.AppendRow(table.Row{label, count, kindName(stmt), stmt.String()})
			count++
		}
	}

	t.AppendFooter(table.Row{
		"Total",
		fmt.Sprintf("%d blocks", len(blocks)),
		fmt.Sprintf("%d statements", count),
		"",
	})

	t.Render()
}

func kindName(stmt *instr.Inst) string {
	if stmt == nil {
		return "<nil>"
	}
	if stmt.Kind == instr.Other && stmt.Code != "" {
		return stmt.Code
	}
	return stmt.Kind.String()
}
