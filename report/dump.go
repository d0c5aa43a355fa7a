// Package report turns the tracker's hook events into diagnostics: a
// line-oriented dump stream, a per-family summary table, and statement
// listings.
package report

import (
	"fmt"
	"io"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/mvprune/core"
)

// DumpHook writes one diagnostic line per tracker event. Attaching it to a
// tracker is what makes the diagnostic sink active.
type DumpHook struct {
	w io.Writer

	// Statements adds the two differing statements below a mismatch of
	// statement kinds.
	Statements bool
}

// NewDumpHook creates a DumpHook writing to w.
func NewDumpHook(w io.Writer) *DumpHook {
	return &DumpHook{w: w, Statements: true}
}

// Func implements sim.Hook.
func (h *DumpHook) Func(ctx sim.HookCtx) {
	switch item := ctx.Item.(type) {
	case core.CloneFound:
		h.cloneFound(item)
	case core.FamilyStart:
		fmt.Fprintf(h.w, "Analyzing clones of function: %s\n", item.Base)
	case core.Comparison:
		if ctx.Pos == core.HookPosMatch {
			fmt.Fprintln(h.w, "Functions are substantially the same")
			return
		}
		fmt.Fprintf(h.w, "Comparing %s%s with %s%s\n",
			item.Base, item.Baseline, item.Base, item.Candidate)
	case *core.Mismatch:
		h.mismatch(item)
	case core.VariantVerdict:
		fmt.Fprintf(h.w, "%s: %s%s\n", item.Verdict, item.Base, item.Suffix)
	case *core.FamilyVerdict:
		fmt.Fprintf(h.w, "%s: %s\n", item.Verdict, item.Base)
	}
}

func (h *DumpHook) cloneFound(item core.CloneFound) {
	if item.ByMarker {
		fmt.Fprintf(h.w, "Found default function with clones: %s\n", item.Name)
		return
	}

	fmt.Fprintf(h.w, "Found potential clone: %s (base: %s, variant: %s)\n",
		item.Name, item.Base, item.Suffix)
}

func (h *DumpHook) mismatch(m *core.Mismatch) {
	fmt.Fprintln(h.w, m.Msg)

	if !h.Statements || !m.CodeMismatch || m.A == nil || m.B == nil {
		return
	}

	fmt.Fprintf(h.w, "  %s\n", m.A)
	fmt.Fprintf(h.w, "  %s\n", m.B)
}
