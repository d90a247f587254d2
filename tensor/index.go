package tensor

import (
	"golang.org/x/xerrors"
)

// ErrBadIndex means a selection does not fit the tensor it is applied to.
var ErrBadIndex = xerrors.New("bad tensor index")

/*
Index selects entries along the first axis of a tensor. The three
forms are At (a single position, collapsing the axis), List (integer
positions) and Mask (a boolean mask of matching length).
*/
type Index interface {
	slice(d *Dense) (*Dense, error)
}

/*
At selects the single entry at this position. Negative positions count
from the end.
*/
type At int

/*
List selects the entries at these positions, in order. Negative
positions count from the end.
*/
type List []int

/*
Mask selects the entries at positions where the mask is true. The mask
length must equal the first-axis length.
*/
type Mask []bool

/*
Select applies an index along the first axis and returns a new tensor
holding copies of the selected entries.
*/
func (d *Dense) Select(ix Index) (*Dense, error) {
	if len(d.shape) == 0 {
		return nil, xerrors.Errorf("cannot index a scalar tensor: %w", ErrBadIndex)
	}
	return ix.slice(d)
}

// width is the element count of one first-axis entry.
func (d *Dense) width() int {
	return Shape(d.shape[1:]).Size()
}

func (d *Dense) position(i int) (int, error) {
	n := d.shape[0]
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, xerrors.Errorf("position %v out of range for length %v: %w", i, n, ErrBadIndex)
	}
	return i, nil
}

func (ix At) slice(d *Dense) (*Dense, error) {
	i, err := d.position(int(ix))
	if err != nil {
		return nil, err
	}
	w := d.width()
	data := make([]float64, w)
	copy(data, d.data[i*w:(i+1)*w])
	return &Dense{shape: Shape(d.shape[1:]).clone(), data: data}, nil
}

func (ix List) slice(d *Dense) (*Dense, error) {
	w := d.width()
	data := make([]float64, 0, len(ix)*w)
	for _, p := range ix {
		i, err := d.position(p)
		if err != nil {
			return nil, err
		}
		data = append(data, d.data[i*w:(i+1)*w]...)
	}
	shape := d.shape.clone()
	shape[0] = len(ix)
	return &Dense{shape: shape, data: data}, nil
}

func (ix Mask) slice(d *Dense) (*Dense, error) {
	if len(ix) != d.shape[0] {
		return nil, xerrors.Errorf("mask length %v does not match length %v: %w", len(ix), d.shape[0], ErrBadIndex)
	}
	w := d.width()
	data := make([]float64, 0, len(ix)*w)
	n := 0
	for i, keep := range ix {
		if keep {
			data = append(data, d.data[i*w:(i+1)*w]...)
			n++
		}
	}
	shape := d.shape.clone()
	shape[0] = n
	return &Dense{shape: shape, data: data}, nil
}
