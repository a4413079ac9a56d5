// Package buffer provides scoped ownership of one device allocation tied
// to a single Hardware instance.
package buffer

import (
	"github.com/sarchlab/dycg/errs"
	"github.com/sarchlab/dycg/hardware"
)

// Buffer owns a device allocation on one Hardware. It must be released,
// via Release, before the Hardware it was allocated from goes away;
// releasing it again is a no-op.
type Buffer struct {
	hw        hardware.Hardware
	sizeBytes uint64
	handle    hardware.Handle
	released  bool
}

// NewUninit allocates sizeBytes of uninitialised memory on hw.
func NewUninit(hw hardware.Hardware, sizeBytes uint64) *Buffer {
	return &Buffer{
		hw:        hw,
		sizeBytes: sizeBytes,
		handle:    hw.Allocate(sizeBytes),
	}
}

// ColocatedUninit allocates sizeBytes of uninitialised memory on the same
// Hardware as other.
func ColocatedUninit(other *Buffer, sizeBytes uint64) *Buffer {
	return NewUninit(other.hw, sizeBytes)
}

// Release deallocates the buffer's memory. It is a no-op if called more
// than once, so callers that both defer Release and release explicitly on
// an error path don't double free.
func (b *Buffer) Release() {
	if b.released {
		return
	}

	b.hw.Deallocate(b.handle, b.sizeBytes)
	b.released = true
}

// Hardware returns the Hardware this Buffer's memory lives on.
func (b *Buffer) Hardware() hardware.Hardware {
	return b.hw
}

// SizeBytes returns the buffer's allocation size.
func (b *Buffer) SizeBytes() uint64 {
	return b.sizeBytes
}

// Handle returns the opaque device handle. Only the Array layer and
// Hardware kernels are expected to use it.
func (b *Buffer) Handle() hardware.Handle {
	return b.handle
}

// IsColocated reports whether a and b reference the same Hardware
// instance.
func IsColocated(a, b *Buffer) bool {
	return a.hw == b.hw
}

// CheckColocated returns InvalidHardware unless a and b are colocated.
func CheckColocated(a, b *Buffer) error {
	if !IsColocated(a, b) {
		return errs.New(errs.InvalidHardware, "buffers are not colocated on the same hardware")
	}

	return nil
}
