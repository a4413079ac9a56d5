// Package ndarray is the interop boundary between array.Array and
// external flat row-major buffers: a caller owns its own n-dimensional
// array representation (its own shape/stride bookkeeping) and only ever
// hands this package a flat []float32 plus a shape.Shape.
package ndarray

import (
	"github.com/sarchlab/dycg/array"
	"github.com/sarchlab/dycg/hardware"
	"github.com/sarchlab/dycg/shape"
)

// ToFlat exports a's elements as a fresh flat row-major []float32. The
// returned slice is independent of a's device memory; a is left
// untouched and still owned by the caller.
func ToFlat(a *array.Array) []float32 {
	return a.GetValues()
}

// FromFlat takes ownership of values, constructing a new Array of shape
// s on hw. It returns errs.InvalidLength if len(values) != s.NumElements().
func FromFlat(hw hardware.Hardware, s shape.Shape, values []float32) (*array.Array, error) {
	return array.Constant(hw, s, values)
}
