package compare_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/invdp/compare"
	"github.com/katalvlaran/invdp/cost"
	"github.com/katalvlaran/invdp/demand"
	"github.com/katalvlaran/invdp/dp"
	"github.com/katalvlaran/invdp/internal/logging"
)

func problem(initial int, holding, shortage, order float64, mutate func(*dp.Options)) *dp.Problem {
	m, err := cost.NewModel(initial, holding, shortage, order)
	Expect(err).NotTo(HaveOccurred())
	opts := dp.DefaultOptions()
	opts.Logger = logging.NewTestLogger()
	if mutate != nil {
		mutate(&opts)
	}
	p, err := dp.NewProblem(m, demand.Default(), opts)
	Expect(err).NotTo(HaveOccurred())

	return p
}

func fixedWindow(boundary dp.BoundaryPolicy) func(*dp.Options) {
	return func(o *dp.Options) {
		o.Window = dp.FixedWindow
		o.FixedMin, o.FixedMax = dp.DefaultFixedMin, dp.DefaultFixedMax
		o.Boundary = boundary
	}
}

var _ = Describe("Run", func() {
	Context("calibration scenario", func() {
		It("agrees on 1154.50 over twelve periods", func() {
			res, err := compare.Run(problem(20, 2.0, 10.0, 5.0, nil), 12, 0)
			Expect(err).NotTo(HaveOccurred())

			Expect(res.TopDown).To(BeNumerically("~", 1154.5, 1e-6))
			Expect(res.BottomUp).To(BeNumerically("~", res.TopDown, 1e-9))
			Expect(res.Difference).To(BeNumerically("<", compare.DefaultTolerance))
			Expect(res.Tolerance).To(Equal(compare.DefaultTolerance))
			Expect(res.Match).To(BeTrue())
			Expect(res.StatesVisited).To(Equal(738))
			Expect(res.TableStates).To(Equal(3642))
			Expect(res.Truncated).To(BeFalse())
		})

		It("stores exactly the visited states with a sparse window", func() {
			res, err := compare.Run(problem(20, 2.0, 10.0, 5.0, func(o *dp.Options) {
				o.Window = dp.SparseWindow
			}), 12, 0.001)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Match).To(BeTrue())
			Expect(res.TableStates).To(Equal(res.StatesVisited))
			Expect(res.Tolerance).To(Equal(0.001))
		})

		It("still matches on the legacy window but reports truncation", func() {
			res, err := compare.Run(problem(20, 2.0, 10.0, 5.0, fixedWindow(dp.ZeroFill)), 12, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Match).To(BeTrue())
			Expect(res.Truncated).To(BeTrue())
		})
	})

	Context("field scenario", func() {
		It("agrees on 2313.50 over fifteen periods", func() {
			res, err := compare.Run(problem(25, 1.5, 15.0, 8.0, nil), 15, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.TopDown).To(BeNumerically("~", 2313.5, 1e-6))
			Expect(res.Match).To(BeTrue())
			Expect(res.StatesVisited).To(Equal(1170))
			Expect(res.TableStates).To(Equal(5790))
		})

		It("diverges when the fixed window zero-fills its tails", func() {
			res, err := compare.Run(problem(25, 1.5, 15.0, 8.0, fixedWindow(dp.ZeroFill)), 15, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.BottomUp).To(BeNumerically("~", 1793.376, 1e-6))
			Expect(res.Difference).To(BeNumerically(">", 500))
			Expect(res.Match).To(BeFalse())
			Expect(res.Truncated).To(BeTrue())
		})

		It("refuses a strict fixed window that is too small", func() {
			_, err := compare.Run(problem(25, 1.5, 15.0, 8.0, fixedWindow(dp.Strict)), 15, 0)
			Expect(err).To(MatchError(dp.ErrStateWindowOverflow))
		})
	})

	Context("short horizons", func() {
		DescribeTable("match the reference values",
			func(horizon int, want float64) {
				res, err := compare.Run(problem(20, 2.0, 10.0, 5.0, nil), horizon, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(res.TopDown).To(BeNumerically("~", want, 1e-6))
				Expect(res.Match).To(BeTrue())
			},
			Entry("one period", 1, 10.0),
			Entry("two periods", 2, 78.0),
			Entry("three periods", 3, 163.0),
		)

		It("fits a strict fixed window over three periods", func() {
			res, err := compare.Run(problem(20, 2.0, 10.0, 5.0, fixedWindow(dp.Strict)), 3, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.BottomUp).To(BeNumerically("~", 163.0, 1e-6))
			Expect(res.Truncated).To(BeFalse())
		})
	})

	Context("with zero costs", func() {
		It("reports zero on both sides", func() {
			res, err := compare.Run(problem(20, 0, 0, 0, nil), 12, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.TopDown).To(BeZero())
			Expect(res.BottomUp).To(BeZero())
			Expect(res.Match).To(BeTrue())
		})
	})

	Context("invalid input", func() {
		It("rejects a nil problem", func() {
			_, err := compare.Run(nil, 12, 0)
			Expect(err).To(MatchError(compare.ErrNilProblem))
		})

		It("rejects an empty horizon", func() {
			_, err := compare.Run(problem(20, 2.0, 10.0, 5.0, nil), 0, 0)
			Expect(err).To(MatchError(dp.ErrInvalidParameter))
		})
	})
})
