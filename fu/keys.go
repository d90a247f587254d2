package fu

import (
	"cmp"
	"slices"
)

/*
SortedKeys returns the keys of a map in ascending order. Go maps have
no iteration order, so every place the dataset containers need a stable
"first field" or printable listing goes through this.
*/
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
