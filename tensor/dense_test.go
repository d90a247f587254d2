package tensor_test

import (
	"math"
	"testing"

	"go-ml.dev/pkg/dataset/tensor"
	"golang.org/x/xerrors"
	"gotest.tools/assert"
)

func TestNew(t *testing.T) {
	d, err := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	assert.NilError(t, err)
	assert.Equal(t, d.Len(), 2)
	assert.Equal(t, d.Shape().String(), "(2, 3)")

	_, err = tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3})
	assert.ErrorContains(t, err, "requires 6 elements, got 3")
}

func TestSelectAt(t *testing.T) {
	d, err := tensor.New(tensor.Shape{3, 2}, []float64{1, 2, 3, 4, 5, 6})
	assert.NilError(t, err)

	q, err := d.Select(tensor.At(1))
	assert.NilError(t, err)
	assert.Assert(t, q.Equal(tensor.Of(3, 4)))

	// negative positions count from the end
	q, err = d.Select(tensor.At(-1))
	assert.NilError(t, err)
	assert.Assert(t, q.Equal(tensor.Of(5, 6)))

	_, err = d.Select(tensor.At(3))
	assert.Assert(t, xerrors.Is(err, tensor.ErrBadIndex))
}

func TestSelectAtCollapses(t *testing.T) {
	d := tensor.Of(10, 20, 30)
	q, err := d.Select(tensor.At(2))
	assert.NilError(t, err)
	assert.Equal(t, len(q.Shape()), 0)
	assert.Equal(t, q.Len(), 1)
	assert.Equal(t, q.Data()[0], 30.0)
}

func TestSelectList(t *testing.T) {
	d := tensor.Of(10, 20, 30, 40)
	q, err := d.Select(tensor.List{3, 0, -1})
	assert.NilError(t, err)
	assert.Assert(t, q.Equal(tensor.Of(40, 10, 40)))

	_, err = d.Select(tensor.List{0, 4})
	assert.Assert(t, xerrors.Is(err, tensor.ErrBadIndex))
}

func TestSelectMask(t *testing.T) {
	d, err := tensor.New(tensor.Shape{3, 2}, []float64{1, 2, 3, 4, 5, 6})
	assert.NilError(t, err)

	q, err := d.Select(tensor.Mask{true, false, true})
	assert.NilError(t, err)
	w, _ := tensor.New(tensor.Shape{2, 2}, []float64{1, 2, 5, 6})
	assert.Assert(t, q.Equal(w))

	_, err = d.Select(tensor.Mask{true, false})
	assert.Assert(t, xerrors.Is(err, tensor.ErrBadIndex))
}

func TestSelectScalar(t *testing.T) {
	d, err := tensor.Of(1).Select(tensor.At(0))
	assert.NilError(t, err)
	_, err = d.Select(tensor.At(0))
	assert.Assert(t, xerrors.Is(err, tensor.ErrBadIndex))
}

func TestStats(t *testing.T) {
	d := tensor.Of(0, 10, 20)
	assert.Equal(t, d.Min(), 0.0)
	assert.Equal(t, d.Max(), 20.0)
	assert.Equal(t, d.Mean(), 10.0)
	assert.Assert(t, math.Abs(d.Std()-math.Sqrt(200.0/3.0)) < 1e-12)
}

func TestShiftScale(t *testing.T) {
	d := tensor.Of(1, 2, 3)
	q := d.Shift(-2).Scale(10)
	assert.Assert(t, q == d) // in place, chained
	assert.Assert(t, d.Equal(tensor.Of(-10, 0, 10)))
}

func TestCloneIsIndependent(t *testing.T) {
	d := tensor.Of(1, 2, 3)
	q := d.Clone().Shift(1)
	assert.Assert(t, d.Equal(tensor.Of(1, 2, 3)))
	assert.Assert(t, q.Equal(tensor.Of(2, 3, 4)))
}

func TestString(t *testing.T) {
	assert.Equal(t, tensor.Of(1, 2, 3).String(), "[1 2 3]")
	d, _ := tensor.New(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
	assert.Equal(t, d.String(), "(2, 2)[1 2 3 4]")
}
