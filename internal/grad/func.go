package grad

import (
	"github.com/gomlx/gomlx/graph"
	"github.com/gomlx/gomlx/types/tensors"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Func is a compiled numerical function of (x, A, b). The first call with a
// given input shape and dtype compiles the program; later calls reuse it.
//
// The backend reports failures (shape mismatches, unsupported ops) by
// panicking; Func recovers those at the call boundary and returns them as
// errors, so callers see ordinary Go error handling.
type Func struct {
	exec *graph.Exec
}

// call executes the compiled program and returns its single output tensor.
func (f *Func) call(x *mat.VecDense, a *mat.Dense, b *mat.VecDense) (t *tensors.Tensor, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = errors.WithMessage(e, "executing compiled function")
				return
			}
			err = errors.Errorf("executing compiled function: %v", r)
		}
	}()
	outs := f.exec.Call(vecTensor(x), matTensor(a), vecTensor(b))
	if len(outs) != 1 {
		return nil, errors.Errorf("expected 1 output, backend returned %d", len(outs))
	}
	return outs[0], nil
}

// Scalar evaluates f and returns its scalar output.
func (f *Func) Scalar(x *mat.VecDense, a *mat.Dense, b *mat.VecDense) (float64, error) {
	t, err := f.call(x, a, b)
	if err != nil {
		return 0, err
	}
	flat := flatData(t)
	if len(flat) != 1 {
		return 0, errors.Errorf("expected scalar output, got %d elements", len(flat))
	}
	return flat[0], nil
}

// Vec evaluates f and returns its rank-1 output as a gonum vector.
func (f *Func) Vec(x *mat.VecDense, a *mat.Dense, b *mat.VecDense) (*mat.VecDense, error) {
	t, err := f.call(x, a, b)
	if err != nil {
		return nil, err
	}
	dims := t.Shape().Dimensions
	if len(dims) != 1 {
		return nil, errors.Errorf("expected rank-1 output, got rank %d", len(dims))
	}
	return mat.NewVecDense(dims[0], flatData(t)), nil
}

// Mat evaluates f and returns its rank-2 output as a gonum matrix.
func (f *Func) Mat(x *mat.VecDense, a *mat.Dense, b *mat.VecDense) (*mat.Dense, error) {
	t, err := f.call(x, a, b)
	if err != nil {
		return nil, err
	}
	dims := t.Shape().Dimensions
	if len(dims) != 2 {
		return nil, errors.Errorf("expected rank-2 output, got rank %d", len(dims))
	}
	return mat.NewDense(dims[0], dims[1], flatData(t)), nil
}

// vecTensor converts a gonum vector to a device tensor in the active dtype.
func vecTensor(v *mat.VecDense) *tensors.Tensor {
	n := v.Len()
	if Float64Enabled() {
		data := make([]float64, n)
		for i := range data {
			data[i] = v.AtVec(i)
		}
		return tensors.FromFlatDataAndDimensions(data, n)
	}
	data := make([]float32, n)
	for i := range data {
		data[i] = float32(v.AtVec(i))
	}
	return tensors.FromFlatDataAndDimensions(data, n)
}

// matTensor converts a gonum matrix to a row-major device tensor in the
// active dtype.
func matTensor(m *mat.Dense) *tensors.Tensor {
	r, c := m.Dims()
	if Float64Enabled() {
		data := make([]float64, r*c)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				data[i*c+j] = m.At(i, j)
			}
		}
		return tensors.FromFlatDataAndDimensions(data, r, c)
	}
	data := make([]float32, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = float32(m.At(i, j))
		}
	}
	return tensors.FromFlatDataAndDimensions(data, r, c)
}

// flatData copies a tensor back to host float64, widening float32 results.
func flatData(t *tensors.Tensor) []float64 {
	if t.DType() == dtypes.Float64 {
		return tensors.CopyFlatData[float64](t)
	}
	f32 := tensors.CopyFlatData[float32](t)
	data := make([]float64, len(f32))
	for i, v := range f32 {
		data[i] = float64(v)
	}
	return data
}
