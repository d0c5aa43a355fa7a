package core

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sarchlab/akita/v4/sim"
)

// HookPosCloneFound marks a function classified as a clone variant. The item
// is a CloneFound.
var HookPosCloneFound = &sim.HookPos{Name: "Clone Found"}

// HookPosFamilyAnalyze marks the start of a family decision. The item is a
// FamilyStart.
var HookPosFamilyAnalyze = &sim.HookPos{Name: "Family Analyze"}

// HookPosCompare marks a pairwise comparison against the baseline. The item
// is a Comparison.
var HookPosCompare = &sim.HookPos{Name: "Compare"}

// HookPosVariantVerdict marks the verdict for one variant. The item is a
// VariantVerdict.
var HookPosVariantVerdict = &sim.HookPos{Name: "Variant Verdict"}

// HookPosFamilyVerdict marks the verdict for a whole family. The item is a
// *FamilyVerdict.
var HookPosFamilyVerdict = &sim.HookPos{Name: "Family Verdict"}

// Verdict tells whether a variant can be dropped in favor of the baseline.
type Verdict int

const (
	NoPrune Verdict = iota
	Prune
)

func (v Verdict) String() string {
	if v == Prune {
		return "PRUNE"
	}
	return "NOPRUNE"
}

func verdictOf(same bool) Verdict {
	if same {
		return Prune
	}
	return NoPrune
}

// BaselinePolicy selects the variant the others are compared against.
type BaselinePolicy int

const (
	// BaselineDefault compares every variant against the first default
	// variant, or against the first collected one if there is no default.
	BaselineDefault BaselinePolicy = iota

	// BaselineFirstTwo compares the second collected variant against the
	// first and ignores the rest.
	BaselineFirstTwo
)

func (p BaselinePolicy) String() string {
	if p == BaselineFirstTwo {
		return "first-two"
	}
	return "default"
}

// ParseBaselinePolicy parses the String form of a policy.
func ParseBaselinePolicy(s string) (BaselinePolicy, error) {
	switch strings.ToLower(s) {
	case "default", "":
		return BaselineDefault, nil
	case "first-two":
		return BaselineFirstTwo, nil
	default:
		return BaselineDefault, fmt.Errorf("unknown baseline policy %q", s)
	}
}

// CloneFound reports a newly classified variant.
type CloneFound struct {
	Classification

	Name string

	// ByMarker is set when the function was recognized by its clone marker
	// rather than by its name.
	ByMarker bool
}

// FamilyStart reports that a family has enough variants to be decided.
type FamilyStart struct {
	Base     string
	Variants int
}

// VariantVerdict is the decision for one non-baseline variant.
type VariantVerdict struct {
	Base    string
	Suffix  string
	Verdict Verdict
}

// FamilyVerdict is the decision for a whole clone family.
type FamilyVerdict struct {
	Base     string
	Baseline string
	Variants []VariantVerdict
	Verdict  Verdict
}

// A Tracker groups clone variants by base name and decides each family once
// enough variants have been collected. The groups themselves live in a
// Session so that one Tracker can serve independent sessions.
type Tracker struct {
	*sim.HookableBase

	name        string
	names       NameOptions
	baseline    BaselinePolicy
	minVariants int
	comparator  *Comparator
}

// Name returns the name of the tracker.
func (t *Tracker) Name() string {
	return t.name
}

// NameOptions returns the naming convention the tracker classifies with.
func (t *Tracker) NameOptions() NameOptions {
	return t.names
}

// Classify classifies a function name and announces clone variants to the
// hooks.
func (t *Tracker) Classify(
	name string,
	hasCloneMarker bool,
) (Classification, bool) {
	c, ok := Classify(name, hasCloneMarker, t.names)
	if !ok {
		return c, false
	}

	t.invoke(HookPosCloneFound, CloneFound{
		Classification: c,
		Name:           name,
		ByMarker:       !strings.Contains(name, t.names.Separator),
	})

	return c, true
}

// Add puts v into its family in s. If the family becomes complete, it is
// decided, reported, and removed from s; the decision is returned. Otherwise
// Add returns nil. Resolvers and non-clones are never added.
func (t *Tracker) Add(s *Session, v *Variant) *FamilyVerdict {
	if v.Tag == TagResolver || v.Tag == TagNone {
		return nil
	}

	Trace("Collected statements",
		"tracker", t.name, "function", v.DisplayName(), "count", len(v.Stmts))
	LogVariant(v)

	n := s.add(v)
	if n < t.minVariants {
		return nil
	}

	verdict := t.decide(v.Base, s.Variants(v.Base))
	s.clear(v.Base)

	return verdict
}

// Finish ends s. Families that never became complete are dropped without a
// verdict; their base names are returned.
func (t *Tracker) Finish(s *Session) []string {
	pending := s.Pending()
	for _, base := range pending {
		slog.Debug("Dropping unpaired clone family",
			"tracker", t.name, "base", base, "variants", s.Len(base))
		s.clear(base)
	}

	return pending
}

func (t *Tracker) decide(base string, variants []*Variant) *FamilyVerdict {
	t.invoke(HookPosFamilyAnalyze, FamilyStart{
		Base:     base,
		Variants: len(variants),
	})

	baselineIdx, candidates := t.pickBaseline(variants)
	baseline := variants[baselineIdx]

	fv := &FamilyVerdict{
		Base:     base,
		Baseline: baseline.Suffix,
		Verdict:  Prune,
	}

	for _, i := range candidates {
		candidate := variants[i]

		t.invoke(HookPosCompare, Comparison{
			Base:      base,
			Baseline:  baseline.Suffix,
			Candidate: candidate.Suffix,
		})

		vv := VariantVerdict{
			Base:    base,
			Suffix:  candidate.Suffix,
			Verdict: verdictOf(t.comparator.Compare(baseline, candidate)),
		}
		if vv.Verdict == NoPrune {
			fv.Verdict = NoPrune
		}

		fv.Variants = append(fv.Variants, vv)
		t.invoke(HookPosVariantVerdict, vv)
	}

	slog.Debug("Clone family decided",
		"tracker", t.name,
		"base", base,
		"baseline", baseline.DisplayName(),
		"verdict", fv.Verdict.String())

	t.invoke(HookPosFamilyVerdict, fv)

	return fv
}

func (t *Tracker) pickBaseline(variants []*Variant) (int, []int) {
	if t.baseline == BaselineFirstTwo {
		return 0, []int{1}
	}

	baselineIdx := 0
	for i, v := range variants {
		if v.Tag == TagDefault {
			baselineIdx = i
			break
		}
	}

	candidates := make([]int, 0, len(variants)-1)
	for i := range variants {
		if i != baselineIdx {
			candidates = append(candidates, i)
		}
	}

	return baselineIdx, candidates
}

func (t *Tracker) invoke(pos *sim.HookPos, item interface{}) {
	if t.NumHooks() == 0 {
		return
	}

	t.InvokeHook(sim.HookCtx{
		Domain: t,
		Pos:    pos,
		Item:   item,
	})
}
