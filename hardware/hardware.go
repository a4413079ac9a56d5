// Package hardware defines the capability set the graph/array/buffer
// layers consume from a device. The core never interprets a Handle; only
// the Hardware that produced it does.
package hardware

// Handle is an opaque device allocation token. Only the Hardware instance
// that produced it may dereference it.
type Handle interface{}

// Hardware is the abstract device the core requires: allocation, host
// and device-to-device memcpy, fill, and the elementwise f32 kernels used
// by Array's binary and unary ops. Implementations live outside this
// module; hardware/cpu ships a reference host-CPU implementation.
//
// Allocate must fail fatally (panic) on OOM — the core performs no
// recovery. Deallocate, the Copy* family, and Fill accept any
// non-negative size, including zero. The elementwise kernels take raw
// element counts, never byte sizes.
type Hardware interface {
	// Allocate reserves sizeBytes of uninitialised device memory.
	Allocate(sizeBytes uint64) Handle

	// Deallocate releases a Handle previously returned by Allocate, given
	// the same sizeBytes it was allocated with.
	Deallocate(h Handle, sizeBytes uint64)

	// CopyHostToDevice copies sizeBytes bytes from host memory src into
	// device memory dst.
	CopyHostToDevice(src []byte, dst Handle, sizeBytes uint64)

	// CopyDeviceToHost copies sizeBytes bytes from device memory src into
	// host memory dst.
	CopyDeviceToHost(src Handle, dst []byte, sizeBytes uint64)

	// CopyDeviceToDevice copies sizeBytes bytes from src to dst, both
	// resident on this Hardware.
	CopyDeviceToDevice(src, dst Handle, sizeBytes uint64)

	// FillF32 fills n consecutive f32 elements of dst with value.
	FillF32(dst Handle, value float32, n uint64)

	// NegF32 computes dst[i] = -src[i] for i in [0, n).
	NegF32(src, dst Handle, n uint64)

	// AddF32 computes dst[i] = lhs[i] + rhs[i] for i in [0, n).
	AddF32(lhs, rhs, dst Handle, n uint64)

	// SubF32 computes dst[i] = lhs[i] - rhs[i] for i in [0, n).
	SubF32(lhs, rhs, dst Handle, n uint64)

	// MulF32 computes dst[i] = lhs[i] * rhs[i] for i in [0, n).
	MulF32(lhs, rhs, dst Handle, n uint64)

	// DivF32 computes dst[i] = lhs[i] / rhs[i] for i in [0, n).
	DivF32(lhs, rhs, dst Handle, n uint64)
}
