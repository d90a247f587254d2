/*
Package tensor implements the dense float64 arrays the dataset
containers are built on. All numeric kernels are delegated to gonum.
*/
package tensor

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

/*
Shape is the dimensions of a tensor, outermost axis first.
*/
type Shape []int

// Size is the total count of elements a tensor of this shape holds.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

func (s Shape) String() string {
	q := make([]string, len(s))
	for i, d := range s {
		q[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(q, ", ") + ")"
}

func (s Shape) clone() Shape {
	return append(Shape{}, s...)
}

/*
Dense is a dense float64 tensor over a flat backing slice.
*/
type Dense struct {
	shape Shape
	data  []float64
}

/*
New creates a tensor of the given shape wrapping (not copying) data.
*/
func New(shape Shape, data []float64) (*Dense, error) {
	if shape.Size() != len(data) {
		return nil, xerrors.Errorf("shape %v requires %v elements, got %v", shape, shape.Size(), len(data))
	}
	return &Dense{shape: shape.clone(), data: data}, nil
}

/*
Of creates a 1-d tensor from the given values.
*/
func Of(values ...float64) *Dense {
	return &Dense{shape: Shape{len(values)}, data: values}
}

// Shape returns a copy of the tensor dimensions.
func (d *Dense) Shape() Shape { return d.shape.clone() }

/*
Len is the length of the first axis. A 0-d tensor holds a single
element and has length 1.
*/
func (d *Dense) Len() int {
	if len(d.shape) == 0 {
		return 1
	}
	return d.shape[0]
}

// Data returns the flat backing slice without copying.
func (d *Dense) Data() []float64 { return d.data }

// Clone deep-copies the tensor.
func (d *Dense) Clone() *Dense {
	data := make([]float64, len(d.data))
	copy(data, d.data)
	return &Dense{shape: d.shape.clone(), data: data}
}

/*
Shift adds c to every element in place and returns the receiver.
*/
func (d *Dense) Shift(c float64) *Dense {
	floats.AddConst(c, d.data)
	return d
}

/*
Scale multiplies every element by c in place and returns the receiver.
*/
func (d *Dense) Scale(c float64) *Dense {
	floats.Scale(c, d.data)
	return d
}

// Min is the smallest element. Panics on an empty tensor.
func (d *Dense) Min() float64 { return floats.Min(d.data) }

// Max is the largest element. Panics on an empty tensor.
func (d *Dense) Max() float64 { return floats.Max(d.data) }

// Mean is the arithmetic mean over all elements.
func (d *Dense) Mean() float64 { return stat.Mean(d.data, nil) }

/*
Std is the population standard deviation over all elements, matching
the statistics convention used for feature normalization.
*/
func (d *Dense) Std() float64 { return stat.PopStdDev(d.data, nil) }

// Equal reports whether both tensors have the same shape and elements.
func (d *Dense) Equal(o *Dense) bool {
	if len(d.shape) != len(o.shape) {
		return false
	}
	for i, q := range d.shape {
		if o.shape[i] != q {
			return false
		}
	}
	return floats.Equal(d.data, o.data)
}

func (d *Dense) String() string {
	if len(d.shape) <= 1 {
		return fmt.Sprint(d.data)
	}
	return d.shape.String() + fmt.Sprint(d.data)
}
