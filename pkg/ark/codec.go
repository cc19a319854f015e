package ark

import (
	"fmt"
)

// Codec converts between a 1-based linear index into the cartesian product
// of all categories and the per-category word positions (the subscript) that
// compose it.
//
// The radix convention is category-major with the rightmost category varying
// fastest: index = 1 + Σ_i (pos_i − 1) × weight_i, where weight_i is the
// product of the sizes of all categories after i. Encode and Decode both
// depend on this convention; changing it invalidates every issued index.
type Codec struct {
	sizes   []int
	weights []int
	total   int
}

// NewCodec derives a codec from the space's category sizes.
func NewCodec(space *NameSpace) *Codec {
	sizes := space.Sizes()
	weights := make([]int, len(sizes))
	w := 1
	for i := len(sizes) - 1; i >= 0; i-- {
		weights[i] = w
		w *= sizes[i]
	}
	return &Codec{sizes: sizes, weights: weights, total: space.Total()}
}

// Total returns the size of the index space, matching the source NameSpace.
func (c *Codec) Total() int {
	return c.total
}

// Encode computes the linear index of a subscript. Every component is
// 1-based and must lie within its category's size.
func (c *Codec) Encode(subscript []int) (int, error) {
	if len(subscript) != len(c.sizes) {
		return 0, fmt.Errorf("subscript has %d components, codec expects %d", len(subscript), len(c.sizes))
	}
	index := 1
	for i, pos := range subscript {
		if pos < 1 || pos > c.sizes[i] {
			return 0, &IndexOutOfRangeError{Index: pos, Min: 1, Max: c.sizes[i]}
		}
		index += (pos - 1) * c.weights[i]
	}
	return index, nil
}

// Decode computes the subscript of a linear index by successive
// modulo/divide against category sizes, last category first.
func (c *Codec) Decode(index int) ([]int, error) {
	if index < 1 || index > c.total {
		return nil, &IndexOutOfRangeError{Index: index, Min: 1, Max: c.total}
	}
	subscript := make([]int, len(c.sizes))
	rem := index - 1
	for i := len(c.sizes) - 1; i >= 0; i-- {
		subscript[i] = rem%c.sizes[i] + 1
		rem /= c.sizes[i]
	}
	return subscript, nil
}

// EncodeAll encodes a batch of subscripts, preserving order.
func (c *Codec) EncodeAll(subscripts [][]int) ([]int, error) {
	out := make([]int, len(subscripts))
	for i, s := range subscripts {
		idx, err := c.Encode(s)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}

// DecodeAll decodes a batch of linear indices, preserving order.
func (c *Codec) DecodeAll(indices []int) ([][]int, error) {
	out := make([][]int, len(indices))
	for i, idx := range indices {
		s, err := c.Decode(idx)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
