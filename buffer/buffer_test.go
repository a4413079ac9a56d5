package buffer_test

import (
	"github.com/golang/mock/gomock"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/dycg/buffer"
	"github.com/sarchlab/dycg/hardware"
	"github.com/sarchlab/dycg/hardware/cpu"
	"github.com/sarchlab/dycg/hardware/hardwaremock"
)

var _ = Describe("Buffer", func() {
	It("allocates and releases through its Hardware", func() {
		hw := cpu.New()
		b := buffer.NewUninit(hw, 16)
		Expect(hw.Outstanding()).To(Equal(1))

		b.Release()
		Expect(hw.Outstanding()).To(Equal(0))
		Expect(func() { hw.Close() }).NotTo(Panic())
	})

	It("is idempotent on double Release", func() {
		hw := cpu.New()
		b := buffer.NewUninit(hw, 16)
		b.Release()
		Expect(func() { b.Release() }).NotTo(Panic())
	})

	It("never tracks zero-sized buffers as leaks", func() {
		hw := cpu.New()
		b := buffer.NewUninit(hw, 0)
		_ = b
		Expect(func() { hw.Close() }).NotTo(Panic())
	})

	Describe("with a mocked Hardware", func() {
		It("allocates once and deallocates exactly the same handle and size on Release", func() {
			ctrl := gomock.NewController(GinkgoT())
			mockHW := hardwaremock.NewMockHardware(ctrl)

			handle := new(int)
			mockHW.EXPECT().Allocate(uint64(32)).Return(hardware.Handle(handle))
			mockHW.EXPECT().Deallocate(hardware.Handle(handle), uint64(32))

			b := buffer.NewUninit(mockHW, 32)
			b.Release()
		})

		It("still forwards zero-sized allocation and release to the Hardware", func() {
			ctrl := gomock.NewController(GinkgoT())
			mockHW := hardwaremock.NewMockHardware(ctrl)

			handle := new(int)
			mockHW.EXPECT().Allocate(uint64(0)).Return(hardware.Handle(handle))
			mockHW.EXPECT().Deallocate(hardware.Handle(handle), uint64(0))

			b := buffer.NewUninit(mockHW, 0)
			b.Release()
		})
	})

	Describe("colocation", func() {
		It("considers buffers on the same hardware colocated", func() {
			hw := cpu.New()
			a := buffer.NewUninit(hw, 4)
			b := buffer.ColocatedUninit(a, 4)
			defer a.Release()
			defer b.Release()

			Expect(buffer.IsColocated(a, b)).To(BeTrue())
			Expect(buffer.CheckColocated(a, b)).NotTo(HaveOccurred())
		})

		It("considers buffers on different hardware not colocated", func() {
			hw1 := cpu.New()
			hw2 := cpu.New()
			a := buffer.NewUninit(hw1, 4)
			b := buffer.NewUninit(hw2, 4)
			defer a.Release()
			defer b.Release()

			Expect(buffer.IsColocated(a, b)).To(BeFalse())
			Expect(buffer.CheckColocated(a, b)).To(HaveOccurred())
		})
	})
})
