/*
Package dataset implements in-memory containers for labeled, split
tabular data: Record holds one split as named equal-length arrays,
Collection groups Records under split names (train/test/validation)
and carries the bulk select/map/normalise operations over them.
*/
package dataset

import (
	"fmt"
	"strings"

	"go-ml.dev/pkg/dataset/fu"
	"go-ml.dev/pkg/dataset/tensor"
	"go-ml.dev/pkg/zorros/zlog"
	"golang.org/x/xerrors"
)

/*
Fields maps a field name to its array of values. The conventional
names are "X" for features and "Y" for labels.
*/
type Fields map[string]*tensor.Dense

/*
Role tells how a field participates in feature normalization.
*/
type Role int

const (
	// Label fields are left untouched by normalization.
	Label Role = iota
	// Feature fields are rescaled by Normalise.
	Feature
)

// Roles maps field names to their roles.
type Roles map[string]Role

// ErrLengthMismatch means a Record was constructed from arrays of differing length.
var ErrLengthMismatch = xerrors.New("fields must be composed of equal length arrays")

// ErrNotFound means a field or split name is absent.
var ErrNotFound = xerrors.New("no such key")

/*
Record stores one split of a dataset as named equal-length arrays.
The zero value is not usable; construct with NewRecord or
NewRecordWithRoles.
*/
type Record struct {
	fields Fields
	roles  Roles
	length int
}

/*
NewRecord creates a Record, inferring each field's role from its name:
names containing "X" are features, anything else is a label. Fails when
the arrays do not all share the same first-axis length.
*/
func NewRecord(fields Fields) (*Record, error) {
	roles := make(Roles, len(fields))
	for name := range fields {
		if strings.Contains(name, "X") {
			roles[name] = Feature
		} else {
			roles[name] = Label
		}
	}
	return NewRecordWithRoles(fields, roles)
}

/*
NewRecordWithRoles creates a Record with explicitly assigned field
roles. Fields without an entry in roles default to Label. Fails when
the arrays do not all share the same first-axis length.
*/
func NewRecordWithRoles(fields Fields, roles Roles) (*Record, error) {
	length := 0
	for i, name := range fu.SortedKeys(fields) {
		if n := fields[name].Len(); i == 0 {
			length = n
		} else if n != length {
			return nil, xerrors.Errorf("column %v has length %v, should be %v: %w", name, n, length, ErrLengthMismatch)
		}
	}
	if roles == nil {
		roles = Roles{}
	}
	return &Record{fields: fields, roles: roles, length: length}, nil
}

// Len is the entry count cached at construction time.
func (r *Record) Len() int { return r.length }

// Names lists the field names in lexicographic order.
func (r *Record) Names() []string { return fu.SortedKeys(r.fields) }

/*
Lookup returns the array of the named field.
*/
func (r *Record) Lookup(name string) (*tensor.Dense, error) {
	v, ok := r.fields[name]
	if !ok {
		return nil, xerrors.Errorf("no field %v in record: %w", name, ErrNotFound)
	}
	return v, nil
}

/*
Size is the entry count of the field literally named "X". It usually
agrees with Len but a Map that changed lengths can make them diverge;
that divergence is logged, not repaired.
*/
func (r *Record) Size() (int, error) {
	x, err := r.Lookup("X")
	if err != nil {
		return 0, err
	}
	if n := x.Len(); n != r.length {
		zlog.Warning(fmt.Sprintf("field X has length %v but the record was constructed with length %v", n, r.length))
	}
	return x.Len(), nil
}

/*
Select returns a new Record that only contains the entries at the
positions the index specifies. The same index is applied to every
field, so the equal-length invariant holds without re-validation. The
receiver keeps its own arrays untouched.
*/
func (r *Record) Select(ix tensor.Index) (*Record, error) {
	fields := make(Fields, len(r.fields))
	for name, v := range r.fields {
		w, err := v.Select(ix)
		if err != nil {
			return nil, xerrors.Errorf("select field %v: %w", name, err)
		}
		fields[name] = w
	}
	length := 0
	if names := fu.SortedKeys(fields); len(names) > 0 {
		length = fields[names[0]].Len()
	}
	roles := make(Roles, len(r.roles))
	for name, role := range r.roles {
		roles[name] = role
	}
	return &Record{fields: fields, roles: roles, length: length}, nil
}

/*
Map replaces the field mapping wholesale with the result of fn applied
to it, then returns the receiver for chaining. Lengths of the returned
arrays are not re-validated; that is the caller's responsibility.
Roles of fields fn introduces are inferred from their names.
*/
func (r *Record) Map(fn func(Fields) Fields) *Record {
	r.fields = fn(r.fields)
	for name := range r.fields {
		if _, ok := r.roles[name]; !ok {
			if strings.Contains(name, "X") {
				r.roles[name] = Feature
			} else {
				r.roles[name] = Label
			}
		}
	}
	return r
}

/*
Normalise rescales every Feature field to `(v - mean) / std`
elementwise and returns the receiver for chaining. Label fields are
untouched. A zero std is not guarded against; IEEE infinities and NaNs
propagate. Each rescaled field gets a freshly computed array, so
arrays previously obtained from Lookup keep their values.
*/
func (r *Record) Normalise(mean, std float64) *Record {
	for name, v := range r.fields {
		if r.roles[name] == Feature {
			r.fields[name] = v.Clone().Shift(-mean).Scale(1 / std)
		}
	}
	return r
}

/*
Normalize is an alias of Normalise.
*/
func (r *Record) Normalize(mean, std float64) *Record {
	return r.Normalise(mean, std)
}

/*
Describe gives a shortened summary of the structure of the data: the
element type, shape and value range of every field.
*/
func (r *Record) Describe() string {
	var b strings.Builder
	b.WriteString("{")
	for i, name := range fu.SortedKeys(r.fields) {
		if i > 0 {
			b.WriteString(", ")
		}
		v := r.fields[name]
		fmt.Fprintf(&b, "%v: type float64, shape %v, range [%v, %v]", name, v.Shape(), v.Min(), v.Max())
	}
	b.WriteString("}")
	return b.String()
}

func (r *Record) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, name := range fu.SortedKeys(r.fields) {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", name, r.fields[name])
	}
	b.WriteString("}")
	return b.String()
}
