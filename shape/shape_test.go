package shape_test

import (
	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/dycg/errs"
	"github.com/sarchlab/dycg/shape"
)

var _ = Describe("Shape", func() {
	Describe("construction", func() {
		It("computes num elements as the product of dims", func() {
			s := shape.New(2, 3, 4)
			Expect(s.NumElements()).To(Equal(uint64(24)))
			Expect(s.NDim()).To(Equal(3))
			Expect(s.Dims()).To(Equal([]uint64{2, 3, 4}))
		})

		It("treats the scalar shape as having one element", func() {
			s := shape.Scalar()
			Expect(s.NDim()).To(Equal(0))
			Expect(s.NumElements()).To(Equal(uint64(1)))
		})

		It("is zero-element whenever any axis is zero", func() {
			s := shape.New(2, 0, 4)
			Expect(s.NumElements()).To(Equal(uint64(0)))
		})

		It("panics when given more than MaxNDim axes", func() {
			dims := make([]uint64, shape.MaxNDim+1)
			Expect(func() { shape.New(dims...) }).To(Panic())
		})

		It("rejects an over-long runtime slice with InvalidLength", func() {
			dims := make([]uint64, shape.MaxNDim+1)
			_, err := shape.FromSlice(dims)
			Expect(err).To(HaveOccurred())
			var e *errs.Error
			Expect(err).To(BeAssignableToTypeOf(e))
			Expect(err.(*errs.Error).Kind).To(Equal(errs.InvalidLength))
		})
	})

	Describe("Dim", func() {
		It("returns the size of a valid axis", func() {
			s := shape.New(5, 6)
			d, err := s.Dim(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(Equal(uint64(6)))
		})

		It("returns OutOfRange for an invalid axis", func() {
			s := shape.New(5, 6)
			_, err := s.Dim(2)
			Expect(err.(*errs.Error).Kind).To(Equal(errs.OutOfRange))
		})
	})

	Describe("DimsN", func() {
		It("returns dims when n matches the shape's rank", func() {
			s := shape.New(5, 6)
			dims, err := s.DimsN(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(dims).To(Equal([]uint64{5, 6}))
		})

		It("returns InvalidLength when n does not match the shape's rank", func() {
			s := shape.New(5, 6)
			_, err := s.DimsN(3)
			Expect(err.(*errs.Error).Kind).To(Equal(errs.InvalidLength))
		})
	})

	Describe("MemorySize", func() {
		It("returns one element's worth of bytes for a scalar", func() {
			Expect(shape.Scalar().MemorySize(4)).To(Equal(uint64(4)))
		})

		It("scales linearly with element size", func() {
			s := shape.New(2, 3)
			Expect(s.MemorySize(4)).To(Equal(uint64(24)))
		})
	})

	Describe("Elementwise", func() {
		It("returns the shape itself when shapes match", func() {
			a := shape.New(2, 3)
			b := shape.New(2, 3)
			got, err := a.Elementwise(b)
			Expect(err).NotTo(HaveOccurred())
			Expect(cmp.Diff(a, got, cmp.AllowUnexported(shape.Shape{}))).To(BeEmpty())
		})

		It("errors with InvalidShape when shapes differ", func() {
			a := shape.New(2, 3)
			b := shape.New(3, 2)
			_, err := a.Elementwise(b)
			Expect(err).To(HaveOccurred())
			Expect(err.(*errs.Error).Kind).To(Equal(errs.InvalidShape))
		})
	})

	Describe("Equal", func() {
		It("is structural, ignoring unused tail capacity", func() {
			a := shape.New(1, 2)
			b := shape.New(1, 2)
			Expect(a.Equal(b)).To(BeTrue())
		})

		It("distinguishes shapes of different rank", func() {
			a := shape.New(1, 2)
			b := shape.New(1, 2, 1)
			Expect(a.Equal(b)).To(BeFalse())
		})
	})

	Describe("String", func() {
		It("renders a scalar as empty brackets", func() {
			Expect(shape.Scalar().String()).To(Equal("[]"))
		})

		It("renders dims space-separated", func() {
			Expect(shape.New(2, 3).String()).To(Equal("[2 3]"))
		})
	})
})
