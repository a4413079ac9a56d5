// Package cpu provides the reference host-CPU Hardware implementation:
// plain Go byte slices stand in for device memory, and a leak-tracking
// registry panics on Close if any allocation was never released.
package cpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/rs/xid"

	"github.com/sarchlab/dycg"
	"github.com/sarchlab/dycg/hardware"
)

// record is the Handle this backend hands out: a slice of host memory
// plus a short tag used only to make leak reports and traces legible.
type record struct {
	buf []byte
	tag xid.ID
}

// Hardware is the reference CPU backend. It owns a registry of
// outstanding nonzero-size allocations and panics on Close if any
// remain, so leak tests are deterministic (spec.md §4.2).
type Hardware struct {
	mu       sync.Mutex
	supplied map[*record]uint64
}

// New creates an empty CPU Hardware with no outstanding allocations.
func New() *Hardware {
	return &Hardware{supplied: make(map[*record]uint64)}
}

// Builder constructs a Hardware with a fluent with-style API, mirroring
// the teacher's DeviceBuilder/core.Builder convention even though the
// reference CPU backend needs no configuration today.
type Builder struct {
	initialCapacity int
}

// NewBuilder returns a Builder with teacher-style defaults.
func NewBuilder() Builder {
	return Builder{initialCapacity: 0}
}

// WithInitialRegistryCapacity pre-sizes the leak-tracking registry.
func (b Builder) WithInitialRegistryCapacity(n int) Builder {
	b.initialCapacity = n
	return b
}

// Build returns a new Hardware.
func (b Builder) Build() *Hardware {
	return &Hardware{supplied: make(map[*record]uint64, b.initialCapacity)}
}

// Allocate reserves sizeBytes of uninitialised host memory. Zero-length
// allocations are legal and are never tracked by the leak registry.
func (hw *Hardware) Allocate(sizeBytes uint64) hardware.Handle {
	r := &record{buf: make([]byte, sizeBytes), tag: xid.New()}

	if sizeBytes > 0 {
		hw.mu.Lock()
		hw.supplied[r] = sizeBytes
		hw.mu.Unlock()

		dycg.Logger().Debug("cpu: allocated", "tag", r.tag.String(), "bytes", sizeBytes)
	}

	return r
}

// Deallocate releases a Handle returned by Allocate. It panics if the
// handle was never supplied by this Hardware at the given size — a
// double-free or cross-hardware free is a bug, not a recoverable error.
func (hw *Hardware) Deallocate(h hardware.Handle, sizeBytes uint64) {
	if sizeBytes == 0 {
		return
	}

	r := h.(*record)

	hw.mu.Lock()
	defer hw.mu.Unlock()

	registered, ok := hw.supplied[r]
	if !ok || registered != sizeBytes {
		panic(fmt.Sprintf("cpu: handle %p was not supplied at size %d", r, sizeBytes))
	}

	delete(hw.supplied, r)
	dycg.Logger().Debug("cpu: deallocated", "tag", r.tag.String(), "bytes", sizeBytes)
}

// Close panics if any nonzero-size allocation is still outstanding. It is
// the Go analogue of the reference backend's Drop-time leak check.
func (hw *Hardware) Close() {
	hw.mu.Lock()
	defer hw.mu.Unlock()

	if len(hw.supplied) == 0 {
		return
	}

	n := len(hw.supplied)
	tags := make([]string, 0, n)
	for r := range hw.supplied {
		tags = append(tags, r.tag.String())
		delete(hw.supplied, r)
	}

	panic(fmt.Sprintf("cpu: detected memory leak: %d allocation(s) were never released: %v", n, tags))
}

// Outstanding reports the number of nonzero-size allocations that have
// not yet been released, for use in tests that want to assert on leak
// state without triggering the Close panic.
func (hw *Hardware) Outstanding() int {
	hw.mu.Lock()
	defer hw.mu.Unlock()

	return len(hw.supplied)
}

func (hw *Hardware) CopyHostToDevice(src []byte, dst hardware.Handle, sizeBytes uint64) {
	r := dst.(*record)
	copy(r.buf[:sizeBytes], src[:sizeBytes])
}

func (hw *Hardware) CopyDeviceToHost(src hardware.Handle, dst []byte, sizeBytes uint64) {
	r := src.(*record)
	copy(dst[:sizeBytes], r.buf[:sizeBytes])
}

func (hw *Hardware) CopyDeviceToDevice(src, dst hardware.Handle, sizeBytes uint64) {
	s := src.(*record)
	d := dst.(*record)
	copy(d.buf[:sizeBytes], s.buf[:sizeBytes])
}

func (hw *Hardware) FillF32(dst hardware.Handle, value float32, n uint64) {
	out := make([]float32, n)
	for i := range out {
		out[i] = value
	}

	putF32(dst.(*record), out)
}

func (hw *Hardware) NegF32(src, dst hardware.Handle, n uint64) {
	in := getF32(src.(*record), n)
	out := make([]float32, n)
	for i := range out {
		out[i] = -in[i]
	}

	putF32(dst.(*record), out)
}

func (hw *Hardware) AddF32(lhs, rhs, dst hardware.Handle, n uint64) {
	a := getF32(lhs.(*record), n)
	b := getF32(rhs.(*record), n)
	out := make([]float32, n)
	for i := range out {
		out[i] = a[i] + b[i]
	}

	putF32(dst.(*record), out)
}

func (hw *Hardware) SubF32(lhs, rhs, dst hardware.Handle, n uint64) {
	a := getF32(lhs.(*record), n)
	b := getF32(rhs.(*record), n)
	out := make([]float32, n)
	for i := range out {
		out[i] = a[i] - b[i]
	}

	putF32(dst.(*record), out)
}

func (hw *Hardware) MulF32(lhs, rhs, dst hardware.Handle, n uint64) {
	a := getF32(lhs.(*record), n)
	b := getF32(rhs.(*record), n)
	out := make([]float32, n)
	for i := range out {
		out[i] = a[i] * b[i]
	}

	putF32(dst.(*record), out)
}

func (hw *Hardware) DivF32(lhs, rhs, dst hardware.Handle, n uint64) {
	a := getF32(lhs.(*record), n)
	b := getF32(rhs.(*record), n)
	out := make([]float32, n)
	for i := range out {
		out[i] = a[i] / b[i]
	}

	putF32(dst.(*record), out)
}

// getF32 decodes the first n little-endian f32 elements of a record's
// backing store.
func getF32(r *record, n uint64) []float32 {
	out := make([]float32, n)
	for i := uint64(0); i < n; i++ {
		bits := binary.LittleEndian.Uint32(r.buf[i*4 : i*4+4])
		out[i] = math.Float32frombits(bits)
	}

	return out
}

// putF32 encodes vals as little-endian f32 into a record's backing store.
func putF32(r *record, vals []float32) {
	for i, v := range vals {
		binary.LittleEndian.PutUint32(r.buf[i*4:i*4+4], math.Float32bits(v))
	}
}
