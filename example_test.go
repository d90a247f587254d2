package dataset_test

import (
	"fmt"

	"go-ml.dev/pkg/dataset"
	"go-ml.dev/pkg/dataset/tensor"
)

func ExampleRecord_Describe() {
	r, err := dataset.NewRecord(dataset.Fields{
		"X": tensor.Of(0, 10, 20),
		"Y": tensor.Of(0, 1, 0),
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Describe())
	// Output: {X: type float64, shape (3), range [0, 20], Y: type float64, shape (3), range [0, 1]}
}

func ExampleCollection_Select() {
	c, err := dataset.NewCollection(map[string]dataset.Fields{
		"train": {"X": tensor.Of(0, 10, 20), "Y": tensor.Of(0, 1, 0)},
		"test":  {"X": tensor.Of(5, 15), "Y": tensor.Of(1, 0)},
	})
	if err != nil {
		panic(err)
	}
	q, err := c.Select(map[string]tensor.Index{"train": tensor.Mask{true, false, true}})
	if err != nil {
		panic(err)
	}
	r, _ := q.Lookup("train")
	fmt.Println(r)
	// Output: {X: [0 20], Y: [0 0]}
}
