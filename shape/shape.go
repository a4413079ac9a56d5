// Package shape describes the fixed-capacity dimension vector shared by
// every Array and graph Step.
package shape

import (
	"fmt"
	"strings"

	"github.com/sarchlab/dycg/errs"
)

// MaxNDim is the maximum number of axes a Shape can carry.
const MaxNDim = 8

// Shape is an immutable, fixed-capacity dimension vector. The zero value
// has ndim 0 but reports 0 elements; Scalar builds the rank-0 shape with
// one element.
type Shape struct {
	ndim        int
	dims        [MaxNDim]uint64
	numElements uint64
}

// New builds a Shape from a compile-time-sized dimension list. It panics
// if more than MaxNDim axes are given, mirroring the teacher's own
// fail-fast builder constructors (e.g. core.Builder.WithDirections).
func New(dims ...uint64) Shape {
	if len(dims) > MaxNDim {
		panic(fmt.Sprintf("shape: got %d dimensions, but at most %d are supported", len(dims), MaxNDim))
	}

	s := Shape{ndim: len(dims), numElements: 1}
	for i, d := range dims {
		s.dims[i] = d
		s.numElements *= d
	}

	return s
}

// FromSlice builds a Shape from a runtime slice, returning InvalidLength
// if the slice is longer than MaxNDim.
func FromSlice(dims []uint64) (Shape, error) {
	if len(dims) > MaxNDim {
		return Shape{}, errs.New(errs.InvalidLength,
			"shape: got %d dimensions, but at most %d are supported", len(dims), MaxNDim)
	}

	return New(dims...), nil
}

// Scalar is the rank-0 shape with exactly one element.
func Scalar() Shape {
	return New()
}

// NDim returns the number of axes.
func (s Shape) NDim() int {
	return s.ndim
}

// Dim returns the size of axis i. It returns OutOfRange if i is not a
// valid axis index.
func (s Shape) Dim(i int) (uint64, error) {
	if i < 0 || i >= s.ndim {
		return 0, errs.New(errs.OutOfRange, "shape: axis %d out of range for %d-dimensional shape", i, s.ndim)
	}

	return s.dims[i], nil
}

// Dims returns a freshly allocated slice of the shape's dimensions, in
// order.
func (s Shape) Dims() []uint64 {
	out := make([]uint64, s.ndim)
	copy(out, s.dims[:s.ndim])

	return out
}

// DimsN returns the shape's dimensions as a fixed-length slice, mirroring
// the original's as_array<N>-style rank-checked extraction. It returns
// InvalidLength unless n == s.ndim.
func (s Shape) DimsN(n int) ([]uint64, error) {
	if n != s.ndim {
		return nil, errs.New(errs.InvalidLength, "shape: requested %d dimensions, but shape has %d", n, s.ndim)
	}

	return s.Dims(), nil
}

// NumElements returns the cached element count: 1 for the scalar shape,
// 0 whenever any axis is zero.
func (s Shape) NumElements() uint64 {
	return s.numElements
}

// MemorySize returns the number of bytes num_elements elements of size
// elemSize would occupy, per spec.md's memory_size<T>().
func (s Shape) MemorySize(elemSize uint64) uint64 {
	return s.numElements * elemSize
}

// Equal reports structural equality over (ndim, dims[0:ndim]).
func (s Shape) Equal(other Shape) bool {
	if s.ndim != other.ndim {
		return false
	}

	for i := 0; i < s.ndim; i++ {
		if s.dims[i] != other.dims[i] {
			return false
		}
	}

	return true
}

// Elementwise returns self if self and other are structurally equal, else
// InvalidShape.
func (s Shape) Elementwise(other Shape) (Shape, error) {
	if !s.Equal(other) {
		return Shape{}, errs.New(errs.InvalidShape, "shape mismatch: %s vs %s", s, other)
	}

	return s, nil
}

// IsScalar reports whether the shape has rank 0.
func (s Shape) IsScalar() bool {
	return s.ndim == 0
}

// String renders the shape as e.g. "[2 3 4]" or "[]" for a scalar.
func (s Shape) String() string {
	parts := make([]string, s.ndim)
	for i := 0; i < s.ndim; i++ {
		parts[i] = fmt.Sprintf("%d", s.dims[i])
	}

	return "[" + strings.Join(parts, " ") + "]"
}
