package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mvprune/core"
	"github.com/sarchlab/mvprune/instr"
)

var _ = Describe("Collect", func() {
	It("should flatten blocks in host order", func() {
		s0 := add("x", instr.Sym("a"), instr.Sym("b"))
		s1 := instr.NewOther("goto")
		s2 := instr.NewReturn(instr.Sym("x"))

		stmts := core.Collect([]instr.Block{
			{Label: "bb2", Insts: []*instr.Inst{s0, s1}},
			{Label: "bb3"},
			{Label: "bb4", Insts: []*instr.Inst{s2}},
		})

		Expect(stmts).To(HaveLen(3))
		Expect(stmts[0]).To(BeIdenticalTo(s0))
		Expect(stmts[1]).To(BeIdenticalTo(s1))
		Expect(stmts[2]).To(BeIdenticalTo(s2))
	})

	It("should give an empty body no statements", func() {
		Expect(core.Collect(nil)).To(BeEmpty())
	})
})

var _ = Describe("Variant", func() {
	It("should join the base and the suffix", func() {
		v := &core.Variant{
			Classification: core.Classification{Base: "foo", Suffix: ".avx2"},
		}

		Expect(v.DisplayName()).To(Equal("foo.avx2"))
	})
})
