package dataset

import (
	"github.com/go-gota/gota/dataframe"
	"go-ml.dev/pkg/dataset/tensor"
	"golang.org/x/xerrors"
)

/*
FromDataFrame creates a Record from the columns of a gota frame. Every
column is converted to a 1-d float64 array; non-numeric cells become
NaN under gota's conversion rules. Field roles are inferred from the
column names as in NewRecord.
*/
func FromDataFrame(df dataframe.DataFrame) (*Record, error) {
	if err := df.Error(); err != nil {
		return nil, xerrors.Errorf("bad dataframe: %w", err)
	}
	fields := make(Fields, len(df.Names()))
	for _, name := range df.Names() {
		fields[name] = tensor.Of(df.Col(name).Float()...)
	}
	return NewRecord(fields)
}
