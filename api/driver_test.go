package api_test

import (
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mvprune/api"
	"github.com/sarchlab/mvprune/core"
	"github.com/sarchlab/mvprune/instr"
)

func body(constant string) []instr.Block {
	return []instr.Block{
		{
			Label: "bb2",
			Insts: []*instr.Inst{
				instr.NewAssign("mult_expr", instr.Sym("x"),
					instr.Sym("a"), instr.Const(constant)),
			},
		},
		{
			Label: "bb3",
			Insts: []*instr.Inst{instr.NewReturn(instr.Sym("x"))},
		},
	}
}

var _ = Describe("Driver", func() {
	var (
		mockCtrl *gomock.Controller
		driver   api.Driver
	)

	mockFn := func(name string, marker bool, blocks []instr.Block) *MockFunction {
		fn := NewMockFunction(mockCtrl)
		fn.EXPECT().External().Return(false).AnyTimes()
		fn.EXPECT().Name().Return(name).AnyTimes()
		fn.EXPECT().HasCloneMarker().Return(marker).AnyTimes()
		fn.EXPECT().Blocks().Return(blocks).AnyTimes()
		return fn
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		driver = api.DriverBuilder{}.Build("Driver")
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should skip external functions", func() {
		fn := NewMockFunction(mockCtrl)
		fn.EXPECT().External().Return(true)

		Expect(driver.Analyze(fn)).To(BeNil())
		Expect(driver.Session().Pending()).To(BeEmpty())
	})

	It("should not collect the body of a plain function", func() {
		fn := NewMockFunction(mockCtrl)
		fn.EXPECT().External().Return(false)
		fn.EXPECT().Name().Return("main")
		fn.EXPECT().HasCloneMarker().Return(false)

		Expect(driver.Analyze(fn)).To(BeNil())
		Expect(driver.Session().Pending()).To(BeEmpty())
	})

	It("should not collect the body of a resolver", func() {
		fn := NewMockFunction(mockCtrl)
		fn.EXPECT().External().Return(false)
		fn.EXPECT().Name().Return("foo.resolver")
		fn.EXPECT().HasCloneMarker().Return(false)

		Expect(driver.Analyze(fn)).To(BeNil())
		Expect(driver.Session().Pending()).To(BeEmpty())
	})

	It("should decide a family when its second variant is analyzed", func() {
		Expect(driver.Analyze(mockFn("foo", true, body("2")))).To(BeNil())

		fv := driver.Analyze(mockFn("foo._Msve2", false, body("2")))

		Expect(fv).NotTo(BeNil())
		Expect(fv.Base).To(Equal("foo"))
		Expect(fv.Verdict).To(Equal(core.Prune))
	})

	It("should run submitted functions in order", func() {
		driver.Submit(
			mockFn("foo", true, body("2")),
			mockFn("main", false, body("0")),
			mockFn("foo._Msve2", false, body("2")),
			mockFn("bar.avx2", false, body("2")),
			mockFn("bar.sve2", false, body("3")),
		)

		Expect(driver.Run()).To(Succeed())

		verdicts := driver.Verdicts()
		Expect(verdicts).To(HaveLen(2))
		Expect(verdicts[0].Base).To(Equal("foo"))
		Expect(verdicts[0].Verdict).To(Equal(core.Prune))
		Expect(verdicts[1].Base).To(Equal("bar"))
		Expect(verdicts[1].Verdict).To(Equal(core.NoPrune))
	})

	It("should report unpaired families when finished", func() {
		driver.Analyze(mockFn("foo", true, body("2")))

		Expect(driver.Finish()).To(Equal([]string{"foo"}))
		Expect(driver.Session().Pending()).To(BeEmpty())
	})

	It("should analyze whole units", func() {
		unit := NewMockUnit(mockCtrl)
		unit.EXPECT().Functions().Return([]api.Function{
			mockFn("foo", true, body("2")),
			mockFn("foo._Msve2", false, body("4")),
			mockFn("baz.avx2", false, body("2")),
		})

		dropped, err := api.AnalyzeUnits(driver, unit)

		Expect(err).NotTo(HaveOccurred())
		Expect(dropped).To(Equal([]string{"baz"}))
		Expect(driver.Verdicts()).To(HaveLen(1))
		Expect(driver.Verdicts()[0].Verdict).To(Equal(core.NoPrune))
	})

	It("should feed the given tracker", func() {
		tracker := core.NewBuilder().WithMinVariants(3).Build("Tracker")
		driver = api.DriverBuilder{}.WithTracker(tracker).Build("Driver")

		driver.Analyze(mockFn("foo", true, body("2")))
		Expect(driver.Analyze(mockFn("foo.avx2", false, body("2")))).To(BeNil())

		Expect(driver.Tracker()).To(BeIdenticalTo(tracker))
		Expect(driver.Session().Len("foo")).To(Equal(2))
	})
})
