package cpu_test

import (
	"encoding/binary"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/dycg/hardware/cpu"
)

var _ = Describe("Hardware", func() {
	Describe("allocation and leak tracking", func() {
		It("tracks nonzero allocations and panics on Close if any remain", func() {
			hw := cpu.New()
			hw.Allocate(8)
			Expect(hw.Outstanding()).To(Equal(1))
			Expect(func() { hw.Close() }).To(Panic())
		})

		It("never tracks zero-length allocations", func() {
			hw := cpu.New()
			hw.Allocate(0)
			hw.Allocate(0)
			Expect(hw.Outstanding()).To(Equal(0))
			Expect(func() { hw.Close() }).NotTo(Panic())
		})

		It("is clean after a matching deallocate", func() {
			hw := cpu.New()
			h := hw.Allocate(8)
			hw.Deallocate(h, 8)
			Expect(hw.Outstanding()).To(Equal(0))
			Expect(func() { hw.Close() }).NotTo(Panic())
		})

		It("panics on a size-mismatched deallocate", func() {
			hw := cpu.New()
			h := hw.Allocate(8)
			Expect(func() { hw.Deallocate(h, 4) }).To(Panic())
		})
	})

	Describe("memcpy", func() {
		It("round-trips host to device and back", func() {
			hw := cpu.New()
			h := hw.Allocate(4)
			defer hw.Deallocate(h, 4)

			hw.CopyHostToDevice([]byte{1, 2, 3, 4}, h, 4)
			out := make([]byte, 4)
			hw.CopyDeviceToHost(h, out, 4)
			Expect(out).To(Equal([]byte{1, 2, 3, 4}))
		})

		It("copies device to device", func() {
			hw := cpu.New()
			src := hw.Allocate(4)
			dst := hw.Allocate(4)
			defer hw.Deallocate(src, 4)
			defer hw.Deallocate(dst, 4)

			hw.CopyHostToDevice([]byte{9, 8, 7, 6}, src, 4)
			hw.CopyDeviceToDevice(src, dst, 4)

			out := make([]byte, 4)
			hw.CopyDeviceToHost(dst, out, 4)
			Expect(out).To(Equal([]byte{9, 8, 7, 6}))
		})
	})

	Describe("elementwise f32 kernels", func() {
		var hw *cpu.Hardware

		BeforeEach(func() {
			hw = cpu.New()
		})

		It("fills n elements with a value", func() {
			dst := hw.Allocate(4 * 4)
			defer hw.Deallocate(dst, 4*4)

			hw.FillF32(dst, 42, 4)
			Expect(readF32(hw, dst, 4)).To(Equal([]float32{42, 42, 42, 42}))
		})

		It("negates elementwise", func() {
			src := hw.Allocate(4 * 4)
			dst := hw.Allocate(4 * 4)
			defer hw.Deallocate(src, 4*4)
			defer hw.Deallocate(dst, 4*4)

			writeF32(hw, src, []float32{1, -2, 3, -4})
			hw.NegF32(src, dst, 4)
			Expect(readF32(hw, dst, 4)).To(Equal([]float32{-1, 2, -3, 4}))
		})

		It("adds elementwise", func() {
			a := hw.Allocate(4 * 4)
			b := hw.Allocate(4 * 4)
			dst := hw.Allocate(4 * 4)
			defer hw.Deallocate(a, 4*4)
			defer hw.Deallocate(b, 4*4)
			defer hw.Deallocate(dst, 4*4)

			writeF32(hw, a, []float32{1, 2, 3, 4})
			writeF32(hw, b, []float32{5, 6, 7, 8})
			hw.AddF32(a, b, dst, 4)
			Expect(readF32(hw, dst, 4)).To(Equal([]float32{6, 8, 10, 12}))
		})

		It("divides elementwise", func() {
			a := hw.Allocate(4 * 4)
			b := hw.Allocate(4 * 4)
			dst := hw.Allocate(4 * 4)
			defer hw.Deallocate(a, 4*4)
			defer hw.Deallocate(b, 4*4)
			defer hw.Deallocate(dst, 4*4)

			writeF32(hw, a, []float32{1, 2, 3, 4})
			writeF32(hw, b, []float32{4, 2, 1, 0.5})
			hw.DivF32(a, b, dst, 4)
			Expect(readF32(hw, dst, 4)).To(Equal([]float32{0.25, 1, 3, 8}))
		})

		It("handles n=0 without touching memory", func() {
			dst := hw.Allocate(0)
			Expect(func() { hw.FillF32(dst, 1, 0) }).NotTo(Panic())
		})
	})
})

func writeF32(hw *cpu.Hardware, h interface{}, vals []float32) {
	buf := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(v))
	}

	hw.CopyHostToDevice(buf, h, uint64(len(buf)))
}

func readF32(hw *cpu.Hardware, h interface{}, n int) []float32 {
	buf := make([]byte, n*4)
	hw.CopyDeviceToHost(h, buf, uint64(len(buf)))

	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4 : i*4+4]))
	}

	return out
}
