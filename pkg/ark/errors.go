package ark

import (
	"fmt"
)

// EmptyCategoryError reports a configured name-part category with no words.
// It is fatal at construction time and not recoverable.
type EmptyCategoryError struct {
	Category string // category name, or its position if unnamed
}

func (e *EmptyCategoryError) Error() string {
	return fmt.Sprintf("category %q has no words", e.Category)
}

// IndexOutOfRangeError reports a linear index or subscript component outside
// its valid range. Under correct operation it never surfaces from Ark
// methods; seeing one indicates a bug in codec use.
type IndexOutOfRangeError struct {
	Index int // offending value (linear index or subscript component)
	Min   int
	Max   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [%d, %d]", e.Index, e.Min, e.Max)
}

// InsufficientCapacityError reports a draw request larger than a pool's
// undrawn remainder. The pool is left unchanged.
type InsufficientCapacityError struct {
	Requested int
	Remaining int
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("requested %d indices but only %d remain undrawn", e.Requested, e.Remaining)
}

// CapacityExhaustedError reports that a pseudonymize call needed more new
// pseudonyms than the selected pool can supply. It carries the remaining
// capacity of both pools so the caller can tell alliteration scarcity apart
// from overall scarcity. Recoverable: reduce the batch, disable
// alliteration, or configure a larger word space. No state was mutated.
type CapacityExhaustedError struct {
	Requested             int  // distinct new pseudonyms needed
	RemainingFull         int  // undrawn capacity of the full space
	RemainingAlliteration int  // undrawn capacity of the alliterating subset
	Alliterate            bool // which pool the caller asked for
}

func (e *CapacityExhaustedError) Error() string {
	if e.Alliterate && e.RemainingFull > e.RemainingAlliteration {
		return fmt.Sprintf(
			"alliteration pool exhausted: requested %d new pseudonyms but only %d alliterating combinations remain (%d combinations still available in the full space)",
			e.Requested, e.RemainingAlliteration, e.RemainingFull)
	}
	return fmt.Sprintf(
		"name space exhausted: requested %d new pseudonyms but only %d combinations remain (%d alliterating)",
		e.Requested, e.RemainingFull, e.RemainingAlliteration)
}

// InconsistentLengthError reports input columns of differing lengths passed
// to a single pseudonymize call. Rejected before any hashing or drawing.
type InconsistentLengthError struct {
	Lengths []int // observed column lengths, in input order
}

func (e *InconsistentLengthError) Error() string {
	return fmt.Sprintf("input columns have inconsistent lengths %v", e.Lengths)
}
