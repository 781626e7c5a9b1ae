package grad

import (
	"sync/atomic"

	"github.com/gomlx/gopjrt/dtypes"
)

// float64Enabled is the process-wide precision flag. Computations default to
// float32; see SetFloat64.
var float64Enabled atomic.Bool

// SetFloat64 switches all subsequently dispatched computations between
// 32-bit (the default) and 64-bit floating point. Host-side data is always
// generated in float64 and narrowed on the way into the compiled function,
// so flipping the flag changes accuracy, never the data itself.
//
// Compiled programs are cached per input shape and dtype, so toggling the
// flag triggers a recompile on the next call, nothing more.
func SetFloat64(enabled bool) {
	float64Enabled.Store(enabled)
}

// Float64Enabled reports whether 64-bit precision is active.
func Float64Enabled() bool {
	return float64Enabled.Load()
}

// DType returns the dtype computations currently run under.
func DType() dtypes.DType {
	if Float64Enabled() {
		return dtypes.Float64
	}
	return dtypes.Float32
}
