// Package array implements the user-visible dense f32 tensor: a Shape
// paired with a device-resident Buffer, plus the elementwise ops and
// colocation checks every binary operator depends on.
package array

import (
	"encoding/binary"
	"math"

	"github.com/sarchlab/dycg/buffer"
	"github.com/sarchlab/dycg/errs"
	"github.com/sarchlab/dycg/hardware"
	"github.com/sarchlab/dycg/shape"
)

const f32Size = 4

// Array is a dense, row-major f32 tensor living on one Hardware.
type Array struct {
	shape shape.Shape
	buf   *buffer.Buffer
}

// Uninitialised allocates an Array of the given shape on hw without
// writing to it. Callers that use this constructor are expected to fill
// the memory immediately, e.g. via a Hardware kernel.
func Uninitialised(hw hardware.Hardware, s shape.Shape) *Array {
	return &Array{
		shape: s,
		buf:   buffer.NewUninit(hw, s.MemorySize(f32Size)),
	}
}

// colocatedUninitialised allocates an Array of shape s on the same
// Hardware as other, without writing to it.
func colocatedUninitialised(other *Array, s shape.Shape) *Array {
	return &Array{
		shape: s,
		buf:   buffer.ColocatedUninit(other.buf, s.MemorySize(f32Size)),
	}
}

// Scalar builds a rank-0 Array holding v.
func Scalar(hw hardware.Hardware, v float32) *Array {
	a := Uninitialised(hw, shape.Scalar())
	_ = a.SetScalar(v)

	return a
}

// Constant builds an Array of shape s from flat row-major values. It
// returns InvalidLength if len(values) != s.NumElements().
func Constant(hw hardware.Hardware, s shape.Shape, values []float32) (*Array, error) {
	a := Uninitialised(hw, s)
	if err := a.SetValues(values); err != nil {
		a.Release()
		return nil, err
	}

	return a, nil
}

// Fill builds an Array of shape s with every element set to v.
func Fill(hw hardware.Hardware, s shape.Shape, v float32) *Array {
	a := Uninitialised(hw, s)
	hw.FillF32(a.buf.Handle(), v, s.NumElements())

	return a
}

// ColocatedFill builds an Array of shape s, filled with v, on the same
// Hardware as other.
func ColocatedFill(other *Array, s shape.Shape, v float32) *Array {
	a := colocatedUninitialised(other, s)
	a.Hardware().FillF32(a.buf.Handle(), v, s.NumElements())

	return a
}

// Release frees the Array's underlying device memory. Safe to call more
// than once.
func (a *Array) Release() {
	a.buf.Release()
}

// Shape returns the Array's Shape.
func (a *Array) Shape() shape.Shape {
	return a.shape
}

// Hardware returns the Hardware the Array's Buffer lives on.
func (a *Array) Hardware() hardware.Hardware {
	return a.buf.Hardware()
}

// checkIsScalar returns InvalidShape unless the Array is rank 0.
func (a *Array) checkIsScalar() error {
	if !a.shape.IsScalar() {
		return errs.New(errs.InvalidShape, "array is not a scalar: shape is %s", a.shape)
	}

	return nil
}

// GetScalar returns the Array's sole element. It errors unless ndim=0.
func (a *Array) GetScalar() (float32, error) {
	if err := a.checkIsScalar(); err != nil {
		return 0, err
	}

	buf := make([]byte, f32Size)
	a.Hardware().CopyDeviceToHost(a.buf.Handle(), buf, f32Size)

	return math.Float32frombits(binary.LittleEndian.Uint32(buf)), nil
}

// SetScalar overwrites the Array's sole element. It errors unless
// ndim=0.
func (a *Array) SetScalar(v float32) error {
	if err := a.checkIsScalar(); err != nil {
		return err
	}

	buf := make([]byte, f32Size)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
	a.Hardware().CopyHostToDevice(buf, a.buf.Handle(), f32Size)

	return nil
}

// GetValues reads every element of the Array out in row-major order.
func (a *Array) GetValues() []float32 {
	n := a.shape.NumElements()
	buf := make([]byte, n*f32Size)
	a.Hardware().CopyDeviceToHost(a.buf.Handle(), buf, n*f32Size)

	out := make([]float32, n)
	for i := uint64(0); i < n; i++ {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*f32Size : i*f32Size+f32Size]))
	}

	return out
}

// SetValues overwrites every element of the Array in row-major order. It
// returns InvalidLength if len(values) does not match NumElements.
func (a *Array) SetValues(values []float32) error {
	n := a.shape.NumElements()
	if uint64(len(values)) != n {
		return errs.New(errs.InvalidLength, "expected %d values for shape %s, got %d", n, a.shape, len(values))
	}

	buf := make([]byte, n*f32Size)
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[uint64(i)*f32Size:uint64(i)*f32Size+f32Size], math.Float32bits(v))
	}

	a.Hardware().CopyHostToDevice(buf, a.buf.Handle(), n*f32Size)

	return nil
}

// Clone allocates a fresh colocated Buffer and copies this Array's data
// into it.
func (a *Array) Clone() *Array {
	out := colocatedUninitialised(a, a.shape)
	a.Hardware().CopyDeviceToDevice(a.buf.Handle(), out.buf.Handle(), a.shape.MemorySize(f32Size))

	return out
}

// checkBinaryCompatible verifies colocation and shape equality, returning
// the common shape on success.
func checkBinaryCompatible(a, b *Array) (shape.Shape, error) {
	if err := buffer.CheckColocated(a.buf, b.buf); err != nil {
		return shape.Shape{}, err
	}

	return a.shape.Elementwise(b.shape)
}

func elementwiseBinary(
	a, b *Array,
	kernel func(hw hardware.Hardware, lhs, rhs, dst hardware.Handle, n uint64),
) (*Array, error) {
	s, err := checkBinaryCompatible(a, b)
	if err != nil {
		return nil, err
	}

	out := colocatedUninitialised(a, s)
	kernel(a.Hardware(), a.buf.Handle(), b.buf.Handle(), out.buf.Handle(), s.NumElements())

	return out, nil
}

// Neg returns a fresh colocated Array holding the elementwise negation.
func (a *Array) Neg() *Array {
	out := colocatedUninitialised(a, a.shape)
	a.Hardware().NegF32(a.buf.Handle(), out.buf.Handle(), a.shape.NumElements())

	return out
}

// Add returns a+b as a fresh colocated Array. It errors if a and b are
// not colocated or not shape-compatible.
func (a *Array) Add(b *Array) (*Array, error) {
	return elementwiseBinary(a, b, hardware.Hardware.AddF32)
}

// Sub returns a-b as a fresh colocated Array.
func (a *Array) Sub(b *Array) (*Array, error) {
	return elementwiseBinary(a, b, hardware.Hardware.SubF32)
}

// Mul returns a*b as a fresh colocated Array.
func (a *Array) Mul(b *Array) (*Array, error) {
	return elementwiseBinary(a, b, hardware.Hardware.MulF32)
}

// Div returns a/b as a fresh colocated Array.
func (a *Array) Div(b *Array) (*Array, error) {
	return elementwiseBinary(a, b, hardware.Hardware.DivF32)
}
