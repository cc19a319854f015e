package ark

import (
	"fmt"
	"strings"
)

// Category is one ordered list of interchangeable name parts, e.g. all
// adjectives or all animals. Words are case-sensitive as given and must be
// unique within the category.
type Category struct {
	Name  string
	Words []string
}

// NameSpace holds the ordered name-part categories and derives the size of
// the combinatorial space they span. It is immutable after construction; the
// category order fixes the meaning of every linear index for the lifetime of
// the space.
type NameSpace struct {
	categories []Category
	sizes      []int
	total      int
}

// NewNameSpace builds a NameSpace from the given categories. At least one
// category is required, every category needs at least one word, and words
// must not repeat within a category.
func NewNameSpace(categories []Category) (*NameSpace, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("name space needs at least one category")
	}

	sizes := make([]int, len(categories))
	total := 1
	for i, c := range categories {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("category %d", i+1)
		}
		if len(c.Words) == 0 {
			return nil, &EmptyCategoryError{Category: name}
		}
		seen := make(map[string]bool, len(c.Words))
		for _, w := range c.Words {
			if seen[w] {
				return nil, fmt.Errorf("duplicate word %q in %s", w, name)
			}
			seen[w] = true
		}
		sizes[i] = len(c.Words)
		total *= len(c.Words)
	}

	// Copy so later mutation of the caller's slices cannot alias the space.
	owned := make([]Category, len(categories))
	for i, c := range categories {
		owned[i] = Category{Name: c.Name, Words: append([]string(nil), c.Words...)}
	}

	return &NameSpace{categories: owned, sizes: sizes, total: total}, nil
}

// DefaultNameSpace returns the built-in adjective × animal space.
func DefaultNameSpace() *NameSpace {
	space, err := NewNameSpace([]Category{
		{Name: "adjectives", Words: defaultAdjectives},
		{Name: "animals", Words: defaultAnimals},
	})
	if err != nil {
		// The built-in lists are static and valid; failing here is a bug.
		panic(err)
	}
	return space
}

// Sizes returns the per-category word counts, in category order.
func (s *NameSpace) Sizes() []int {
	return append([]int(nil), s.sizes...)
}

// Total returns the number of distinct pseudonyms the space can produce:
// the product of all category sizes.
func (s *NameSpace) Total() int {
	return s.total
}

// Categories returns a copy of the configured categories.
func (s *NameSpace) Categories() []Category {
	out := make([]Category, len(s.categories))
	for i, c := range s.categories {
		out[i] = Category{Name: c.Name, Words: append([]string(nil), c.Words...)}
	}
	return out
}

// Word returns the word at 1-based position pos within category i.
func (s *NameSpace) Word(i, pos int) (string, error) {
	if i < 0 || i >= len(s.categories) {
		return "", &IndexOutOfRangeError{Index: i, Min: 0, Max: len(s.categories) - 1}
	}
	if pos < 1 || pos > s.sizes[i] {
		return "", &IndexOutOfRangeError{Index: pos, Min: 1, Max: s.sizes[i]}
	}
	return s.categories[i].Words[pos-1], nil
}

// Compose joins one word per category into a pseudonym string, taking the
// 1-based position for each category from subscript.
func (s *NameSpace) Compose(subscript []int) (string, error) {
	if len(subscript) != len(s.categories) {
		return "", fmt.Errorf("subscript has %d components, space has %d categories", len(subscript), len(s.categories))
	}
	words := make([]string, len(subscript))
	for i, pos := range subscript {
		w, err := s.Word(i, pos)
		if err != nil {
			return "", err
		}
		words[i] = w
	}
	return strings.Join(words, " "), nil
}
