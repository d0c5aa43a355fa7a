package core

import (
	"sort"

	"github.com/sarchlab/mvprune/instr"
)

// Variant is one collected body of a clone family.
type Variant struct {
	Classification

	Name  string
	Stmts []*instr.Inst
}

// DisplayName returns the base name joined with the variant suffix.
func (v *Variant) DisplayName() string {
	return v.Base + v.Suffix
}

// Session holds the clone families seen so far in one compilation session.
// Families are keyed by base name and hold their variants in discovery order.
// A Session is not safe for concurrent use.
type Session struct {
	groups map[string][]*Variant
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		groups: make(map[string][]*Variant),
	}
}

// Len returns the number of variants currently collected for base.
func (s *Session) Len(base string) int {
	return len(s.groups[base])
}

// Variants returns the variants currently collected for base.
func (s *Session) Variants(base string) []*Variant {
	return s.groups[base]
}

// Pending returns the base names of the families that are still collecting,
// sorted.
func (s *Session) Pending() []string {
	bases := make([]string, 0, len(s.groups))
	for base := range s.groups {
		bases = append(bases, base)
	}

	sort.Strings(bases)

	return bases
}

func (s *Session) add(v *Variant) int {
	s.groups[v.Base] = append(s.groups[v.Base], v)
	return len(s.groups[v.Base])
}

func (s *Session) clear(base string) {
	delete(s.groups, base)
}
