package ark

import (
	"errors"
	"math/rand/v2"
	"sync"
)

// Ark allocates pseudonyms. It owns two coordinated pools over overlapping
// index sets — the full cartesian space and its alliterating subset — plus
// the fingerprint→pseudonym registry. The registry only grows and the pools
// only shrink; once a pool is empty no further new pseudonyms of that kind
// can be issued, though registered keys resolve indefinitely.
//
// All methods are safe for concurrent use: each call runs under one mutex,
// so a draw and the matching removal from the sibling pool are a single
// transaction.
type Ark struct {
	mu sync.Mutex

	space *NameSpace
	codec *Codec

	full  *Pool // shuffled permutation of 1..Total
	allit *Pool // shuffled permutation of the alliterating subset

	registry map[Fingerprint]string
	order    []Fingerprint // registry keys in draw order

	defaultAlliterate bool
}

// Entry is one registered key→pseudonym pair, exposed for inspection.
type Entry struct {
	Key          Fingerprint `json:"key"`
	Pseudonym    string      `json:"pseudonym"`
	Alliteration bool        `json:"alliteration"`
}

// Option configures an Ark at construction time.
type Option func(*arkOptions)

type arkOptions struct {
	categories []Category
	rng        *rand.Rand
	alliterate bool
}

// WithCategories replaces the built-in adjective × animal space.
func WithCategories(categories []Category) Option {
	return func(o *arkOptions) { o.categories = categories }
}

// WithSeed makes the draw order reproducible across runs.
func WithSeed(seed uint64) Option {
	return func(o *arkOptions) { o.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithRand supplies the random source used to shuffle both pools. Overrides
// WithSeed when both are given.
func WithRand(rng *rand.Rand) Option {
	return func(o *arkOptions) { o.rng = rng }
}

// WithAlliteration sets the default alliteration preference used by
// PseudonymizeValues.
func WithAlliteration(alliterate bool) Option {
	return func(o *arkOptions) { o.alliterate = alliterate }
}

// New creates an Ark over the configured name space. The alliterating subset
// is enumerated once here and never recomputed.
func New(opts ...Option) (*Ark, error) {
	var o arkOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	space := DefaultNameSpace()
	if o.categories != nil {
		var err error
		space, err = NewNameSpace(o.categories)
		if err != nil {
			return nil, err
		}
	}

	codec := NewCodec(space)
	return &Ark{
		space:             space,
		codec:             codec,
		full:              NewPool(o.rng, space.Total()),
		allit:             NewPoolFrom(o.rng, FindAlliterations(space, codec)),
		registry:          make(map[Fingerprint]string),
		defaultAlliterate: o.alliterate,
	}, nil
}

// Pseudonymize returns one pseudonym per input key, preserving input order.
// Keys already registered reuse their stored pseudonym; a key repeated
// within the batch consumes exactly one new pseudonym, reused for all of its
// occurrences.
//
// When alliterate is true, new pseudonyms are drawn from the alliterating
// subset only; there is no silent fallback to plain combinations. If the
// selected pool cannot supply enough new pseudonyms the call fails with
// CapacityExhaustedError and mutates nothing.
func (a *Ark) Pseudonymize(keys []Fingerprint, alliterate bool) ([]string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Distinct unregistered fingerprints, in first-occurrence order.
	var fresh []Fingerprint
	inBatch := make(map[Fingerprint]bool)
	for _, k := range keys {
		if _, ok := a.registry[k]; ok || inBatch[k] {
			continue
		}
		inBatch[k] = true
		fresh = append(fresh, k)
	}

	if len(fresh) > 0 {
		source, sibling := a.full, a.allit
		if alliterate {
			source, sibling = a.allit, a.full
		}

		drawn, err := source.Draw(len(fresh))
		if err != nil {
			var insufficient *InsufficientCapacityError
			if errors.As(err, &insufficient) {
				return nil, &CapacityExhaustedError{
					Requested:             len(fresh),
					RemainingFull:         a.full.Remaining(),
					RemainingAlliteration: a.allit.Remaining(),
					Alliterate:            alliterate,
				}
			}
			return nil, err
		}
		// Drawn indices must vanish from the sibling pool too; the two pools
		// are windows onto overlapping sets and may never double-issue.
		sibling.Remove(drawn)

		for i, k := range fresh {
			name, err := a.compose(drawn[i])
			if err != nil {
				return nil, err
			}
			a.registry[k] = name
			a.order = append(a.order, k)
		}
	}

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = a.registry[k]
	}
	return out, nil
}

// PseudonymizeValues fingerprints a table of equal-length columns row-wise
// and pseudonymizes the resulting keys. Length mismatches are rejected
// before any hashing or drawing occurs.
func (a *Ark) PseudonymizeValues(alliterate bool, columns ...[]string) ([]string, error) {
	fps, err := FingerprintColumns(columns...)
	if err != nil {
		return nil, err
	}
	return a.Pseudonymize(fps, alliterate)
}

// Lookup returns the pseudonym registered for a key, if any.
func (a *Ark) Lookup(key Fingerprint) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	name, ok := a.registry[key]
	return name, ok
}

// Size returns the number of registered keys.
func (a *Ark) Size() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.registry)
}

// AlliterationCount returns how many registered keys hold an alliterating
// pseudonym, whether it was requested as one or drawn by chance.
func (a *Ark) AlliterationCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allit.Total() - a.allit.Remaining()
}

// Remaining returns how many new pseudonyms the full space can still issue.
func (a *Ark) Remaining() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.full.Remaining()
}

// RemainingAlliterations returns how many new alliterating pseudonyms can
// still be issued.
func (a *Ark) RemainingAlliterations() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allit.Remaining()
}

// Entries returns the registry in draw order.
func (a *Ark) Entries() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Entry, len(a.order))
	for i, k := range a.order {
		name := a.registry[k]
		out[i] = Entry{Key: k, Pseudonym: name, Alliteration: IsAlliteration(name)}
	}
	return out
}

// NameSpace returns the space this Ark draws from.
func (a *Ark) NameSpace() *NameSpace {
	return a.space
}

// DefaultAlliterate reports the construction-time alliteration preference.
func (a *Ark) DefaultAlliterate() bool {
	return a.defaultAlliterate
}

// compose turns a drawn linear index into its pseudonym string.
func (a *Ark) compose(index int) (string, error) {
	subscript, err := a.codec.Decode(index)
	if err != nil {
		return "", err
	}
	return a.space.Compose(subscript)
}
