// Package ark provides stable, human-readable pseudonyms for arbitrary
// input values.
//
// # Overview
//
// An Ark owns a finite combinatorial name space (the cartesian product of
// ordered word categories, e.g. adjectives × animals) and issues one
// pseudonym per distinct input, drawn in shuffled order. It guarantees that
// the same input always maps to the same pseudonym and that no pseudonym is
// ever issued twice within one Ark instance.
//
// # Core Concepts
//
// A LinearIndex identifies one point in the cartesian product of all
// categories; the Codec converts between a linear index and the per-category
// word positions (the Subscript) that compose it.
//
// Pools are consumable, uniformly shuffled orderings of not-yet-issued
// indices. The Ark coordinates two pools over overlapping index sets: the
// full space and its alliterating subset (combinations whose words all share
// a first letter). An index consumed from either pool is removed from both,
// so the two windows can never double-issue a pseudonym.
//
// Inputs are reduced to opaque Fingerprint values before allocation; the
// registry maps fingerprints to their assigned pseudonyms so repeated inputs
// replay deterministically.
//
// # Usage Example
//
//	import "github.com/cran/noah/pkg/ark"
//
//	a, err := ark.New(ark.WithSeed(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	names, err := a.PseudonymizeValues(false, []string{"alice", "bob", "alice"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	// names[0] == names[2], names[1] differs from both
//
// Requesting alliterating pseudonyms never falls back silently: when the
// alliteration pool runs dry a CapacityExhaustedError reports the remaining
// capacity of both pools so the caller can choose a remedy.
//
// An Ark is safe for concurrent use; each operation runs as a single
// critical section.
package ark
