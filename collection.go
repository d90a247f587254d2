package dataset

import (
	"fmt"
	"iter"
	"strings"

	"go-ml.dev/pkg/dataset/fu"
	"go-ml.dev/pkg/dataset/tensor"
	"go-ml.dev/pkg/zorros"
	"golang.org/x/xerrors"
)

// TrainSplit is the canonical split normalization statistics come from.
const TrainSplit = "train"

/*
Collection stores a whole dataset as named splits, conventionally
"train", "test" and "validation". A "train" split is required before
Normalise can be called.
*/
type Collection struct {
	splits map[string]*Record
}

/*
NewCollection creates a Collection from raw split data of the format
`train/test/validation/etc. key -> X, Y keys -> array`, wrapping every
split into a Record. Fails when any split's arrays differ in length.
*/
func NewCollection(data map[string]Fields) (*Collection, error) {
	splits := make(map[string]*Record, len(data))
	for name, fields := range data {
		r, err := NewRecord(fields)
		if err != nil {
			return nil, xerrors.Errorf("split %v: %w", name, err)
		}
		splits[name] = r
	}
	return &Collection{splits: splits}, nil
}

/*
NewCollectionOf creates a Collection from pre-built Records.
*/
func NewCollectionOf(splits map[string]*Record) *Collection {
	m := make(map[string]*Record, len(splits))
	for name, r := range splits {
		m[name] = r
	}
	return &Collection{splits: m}
}

/*
Lookup returns the Record of the named split.
*/
func (c *Collection) Lookup(split string) (*Record, error) {
	r, ok := c.splits[split]
	if !ok {
		return nil, xerrors.Errorf("no split %v in collection: %w", split, ErrNotFound)
	}
	return r, nil
}

/*
Keys yields the split names of the collection in lexicographic order.
The sequence is restartable.
*/
func (c *Collection) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range fu.SortedKeys(c.splits) {
			if !yield(name) {
				return
			}
		}
	}
}

/*
Select returns a new Collection holding only the entries at the
specified positions, split by split. The result contains exactly the
splits named in the index mapping; naming a split absent from the
collection fails, omitting one silently excludes it from the result.
*/
func (c *Collection) Select(ix map[string]tensor.Index) (*Collection, error) {
	splits := make(map[string]*Record, len(ix))
	for name, i := range ix {
		r, err := c.Lookup(name)
		if err != nil {
			return nil, err
		}
		q, err := r.Select(i)
		if err != nil {
			return nil, xerrors.Errorf("split %v: %w", name, err)
		}
		splits[name] = q
	}
	return &Collection{splits: splits}, nil
}

/*
Map applies the same mapping to every split's Record and returns the
receiver for chaining.
*/
func (c *Collection) Map(fn func(Fields) Fields) *Collection {
	for _, r := range c.splits {
		r.Map(fn)
	}
	return c
}

/*
Normalise rescales the features of every split to the standard
Gaussian distribution on the basis of the training split: the mean and
population standard deviation of the train split's "X" field are
applied to all splits, train included. Fails when the "train" split or
its "X" field is absent. Returns the receiver for chaining.
*/
func (c *Collection) Normalise() (*Collection, error) {
	train, err := c.Lookup(TrainSplit)
	if err != nil {
		return nil, err
	}
	x, err := train.Lookup("X")
	if err != nil {
		return nil, xerrors.Errorf("split %v: %w", TrainSplit, err)
	}
	mean, std := x.Mean(), x.Std()
	for _, r := range c.splits {
		r.Normalise(mean, std)
	}
	return c, nil
}

/*
Normalize is an alias of Normalise.
*/
func (c *Collection) Normalize() (*Collection, error) {
	return c.Normalise()
}

/*
LuckyNormalise normalises the collection and throws any occurred error
as a panic. It exists to keep call chains unbroken.
*/
func (c *Collection) LuckyNormalise() *Collection {
	if _, err := c.Normalise(); err != nil {
		panic(zorros.Panic(err))
	}
	return c
}

/*
Describe gives a shortened summary of the structure of the data, one
line per split.
*/
func (c *Collection) Describe() string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, name := range fu.SortedKeys(c.splits) {
		fmt.Fprintf(&b, "\t%v: %v\n", name, c.splits[name].Describe())
	}
	b.WriteString("}")
	return b.String()
}

func (c *Collection) String() string {
	return c.Describe()
}
