package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/mvprune/core"
)

// Summary collects family verdicts for an end-of-session table.
type Summary struct {
	Families []*core.FamilyVerdict
}

// Func implements sim.Hook.
func (s *Summary) Func(ctx sim.HookCtx) {
	if ctx.Pos != core.HookPosFamilyVerdict {
		return
	}

	if fv, ok := ctx.Item.(*core.FamilyVerdict); ok {
		s.Families = append(s.Families, fv)
	}
}

// Counts returns the number of families that can and cannot be pruned.
func (s *Summary) Counts() (prune, noPrune int) {
	for _, fv := range s.Families {
		if fv.Verdict == core.Prune {
			prune++
		} else {
			noPrune++
		}
	}

	return prune, noPrune
}

// WriteTable renders the collected verdicts, one row per family.
func (s *Summary) WriteTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Clone families")
	t.AppendHeader(table.Row{"Family", "Baseline", "Variants", "Verdict"})

	for _, fv := range s.Families {
		variants := make([]string, 0, len(fv.Variants))
		for _, vv := range fv.Variants {
			variants = append(variants,
				fmt.Sprintf("%s=%s", vv.Suffix, vv.Verdict))
		}

		t.AppendRow(table.Row{
			fv.Base,
			fv.Baseline,
			strings.Join(variants, " "),
			fv.Verdict.String(),
		})
	}

	prune, noPrune := s.Counts()
	t.AppendFooter(table.Row{
		"Total", len(s.Families),
		fmt.Sprintf("%d PRUNE", prune),
		fmt.Sprintf("%d NOPRUNE", noPrune),
	})

	t.Render()
}
