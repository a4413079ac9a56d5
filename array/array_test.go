package array_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/dycg/array"
	"github.com/sarchlab/dycg/errs"
	"github.com/sarchlab/dycg/hardware/cpu"
	"github.com/sarchlab/dycg/shape"
)

var _ = Describe("Array", func() {
	var hw *cpu.Hardware

	BeforeEach(func() {
		hw = cpu.New()
	})

	Describe("scalar construction", func() {
		It("round-trips a scalar value", func() {
			a := array.Scalar(hw, 123)
			defer a.Release()

			v, err := a.GetScalar()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(float32(123)))
			Expect(a.Shape()).To(Equal(shape.Scalar()))
		})

		It("errors getting a scalar from a non-scalar array", func() {
			a := array.Fill(hw, shape.New(2), 1)
			defer a.Release()

			_, err := a.GetScalar()
			Expect(err.(*errs.Error).Kind).To(Equal(errs.InvalidShape))
		})
	})

	Describe("constant construction", func() {
		It("round-trips row-major values matching the shape", func() {
			s := shape.New(2, 3)
			values := []float32{1, 2, 3, 4, 5, 6}
			a, err := array.Constant(hw, s, values)
			Expect(err).NotTo(HaveOccurred())
			defer a.Release()

			Expect(a.GetValues()).To(Equal(values))
		})

		It("errors with InvalidLength on a mismatched values slice", func() {
			s := shape.New(2, 3)
			_, err := array.Constant(hw, s, []float32{1, 2})
			Expect(err.(*errs.Error).Kind).To(Equal(errs.InvalidLength))
		})
	})

	Describe("fill", func() {
		It("fills every element with the given value", func() {
			a := array.Fill(hw, shape.New(4), 7)
			defer a.Release()

			Expect(a.GetValues()).To(Equal([]float32{7, 7, 7, 7}))
		})
	})

	Describe("SetValues", func() {
		It("errors with InvalidLength on mismatch", func() {
			a := array.Fill(hw, shape.New(3), 0)
			defer a.Release()

			err := a.SetValues([]float32{1, 2})
			Expect(err.(*errs.Error).Kind).To(Equal(errs.InvalidLength))
		})
	})

	Describe("Clone", func() {
		It("copies values into a fresh colocated buffer", func() {
			a, _ := array.Constant(hw, shape.New(3), []float32{1, 2, 3})
			defer a.Release()

			b := a.Clone()
			defer b.Release()

			Expect(b.GetValues()).To(Equal(a.GetValues()))
		})
	})

	Describe("elementwise binary ops", func() {
		It("adds colocated, shape-matching arrays", func() {
			a, _ := array.Constant(hw, shape.New(2), []float32{1, 2})
			b, _ := array.Constant(hw, shape.New(2), []float32{10, 20})
			defer a.Release()
			defer b.Release()

			out, err := a.Add(b)
			Expect(err).NotTo(HaveOccurred())
			defer out.Release()

			Expect(out.GetValues()).To(Equal([]float32{11, 22}))
		})

		It("divides colocated, shape-matching arrays", func() {
			a, _ := array.Constant(hw, shape.New(2), []float32{4, 9})
			b, _ := array.Constant(hw, shape.New(2), []float32{2, 3})
			defer a.Release()
			defer b.Release()

			out, err := a.Div(b)
			Expect(err).NotTo(HaveOccurred())
			defer out.Release()

			Expect(out.GetValues()).To(Equal([]float32{2, 3}))
		})

		It("errors with InvalidShape on mismatched shapes", func() {
			a := array.Fill(hw, shape.New(2), 1)
			b := array.Fill(hw, shape.New(3), 1)
			defer a.Release()
			defer b.Release()

			_, err := a.Add(b)
			Expect(err.(*errs.Error).Kind).To(Equal(errs.InvalidShape))
		})

		It("errors with InvalidHardware across different hardware", func() {
			hw2 := cpu.New()
			a := array.Fill(hw, shape.New(2), 1)
			b := array.Fill(hw2, shape.New(2), 1)
			defer a.Release()
			defer b.Release()

			_, err := a.Add(b)
			Expect(err.(*errs.Error).Kind).To(Equal(errs.InvalidHardware))
		})

		It("short-circuits cleanly on zero-length shapes", func() {
			a := array.Fill(hw, shape.New(0), 1)
			b := array.Fill(hw, shape.New(0), 1)
			defer a.Release()
			defer b.Release()

			out, err := a.Add(b)
			Expect(err).NotTo(HaveOccurred())
			defer out.Release()
			Expect(out.GetValues()).To(BeEmpty())
		})

		It("negates elementwise", func() {
			a, _ := array.Constant(hw, shape.New(3), []float32{1, -2, 3})
			defer a.Release()

			out := a.Neg()
			defer out.Release()

			Expect(out.GetValues()).To(Equal([]float32{-1, 2, -3}))
		})
	})

	Describe("Render", func() {
		It("produces a non-empty table", func() {
			a, _ := array.Constant(hw, shape.New(2, 2), []float32{1, 2, 3, 4})
			defer a.Release()

			Expect(a.Render()).NotTo(BeEmpty())
		})
	})
})
