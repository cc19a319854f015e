package ark

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tinySpace is the 2×2 scenario space: alliterations are exactly
// "Big Bear" and "Red Rat".
func tinySpace() []Category {
	return []Category{
		{Name: "adjectives", Words: []string{"Big", "Red"}},
		{Name: "animals", Words: []string{"Bear", "Rat"}},
	}
}

// disjointSpace has no shared first letters, so its alliteration pool is
// empty from the start.
func disjointSpace() []Category {
	return []Category{
		{Name: "adjectives", Words: []string{"Big", "Shy"}},
		{Name: "animals", Words: []string{"Rat", "Owl"}},
	}
}

func newTestArk(t *testing.T, categories []Category) *Ark {
	t.Helper()
	a, err := New(WithCategories(categories), WithSeed(42))
	require.NoError(t, err)
	return a
}

func TestPseudonymizeDeterminism(t *testing.T) {
	a, err := New(WithSeed(1))
	require.NoError(t, err)

	key := FingerprintRow("alice")
	first, err := a.Pseudonymize([]Fingerprint{key}, false)
	require.NoError(t, err)
	second, err := a.Pseudonymize([]Fingerprint{key}, false)
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated key must replay its pseudonym")
	assert.Equal(t, 1, a.Size())

	stored, ok := a.Lookup(key)
	assert.True(t, ok)
	assert.Equal(t, first[0], stored)

	_, ok = a.Lookup(FingerprintRow("nobody"))
	assert.False(t, ok)
}

func TestPseudonymizeSeedReproducible(t *testing.T) {
	keys := []Fingerprint{FingerprintRow("a"), FingerprintRow("b"), FingerprintRow("c")}

	a1, err := New(WithSeed(99))
	require.NoError(t, err)
	a2, err := New(WithSeed(99))
	require.NoError(t, err)

	n1, err := a1.Pseudonymize(keys, false)
	require.NoError(t, err)
	n2, err := a2.Pseudonymize(keys, false)
	require.NoError(t, err)
	assert.Equal(t, n1, n2, "same seed, same draws")
}

func TestPseudonymizeBatchDuplicates(t *testing.T) {
	a := newTestArk(t, tinySpace())

	keyA := FingerprintRow("A")
	keyB := FingerprintRow("B")
	keyC := FingerprintRow("C")

	names, err := a.Pseudonymize([]Fingerprint{keyA, keyB, keyA, keyC}, false)
	require.NoError(t, err)
	require.Len(t, names, 4)

	assert.Equal(t, names[0], names[2], "duplicate key positions must match")
	distinct := map[string]bool{names[0]: true, names[1]: true, names[3]: true}
	assert.Len(t, distinct, 3, "three distinct keys, three distinct pseudonyms")
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, 1, a.Remaining())
}

func TestPseudonymizeNoRepetition(t *testing.T) {
	a := newTestArk(t, tinySpace())

	seen := make(map[string]bool)
	for i := 0; i < 4; i++ {
		names, err := a.Pseudonymize([]Fingerprint{FingerprintRow(fmt.Sprintf("key-%d", i))}, false)
		require.NoError(t, err)
		assert.False(t, seen[names[0]], "pseudonym %q issued twice", names[0])
		seen[names[0]] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 0, a.Remaining())
	assert.Equal(t, 0, a.RemainingAlliterations(),
		"alliterating combinations issued via the full pool must drain the alliteration pool")
}

func TestPseudonymizeCapacityExhausted(t *testing.T) {
	a := newTestArk(t, disjointSpace())

	keys := make([]Fingerprint, 5)
	for i := range keys {
		keys[i] = FingerprintRow(fmt.Sprintf("key-%d", i))
	}

	_, err := a.Pseudonymize(keys, false)
	var exhausted *CapacityExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 5, exhausted.Requested)
	assert.Equal(t, 4, exhausted.RemainingFull)
	assert.Equal(t, 0, exhausted.RemainingAlliteration)
	assert.False(t, exhausted.Alliterate)

	// Failure leaves everything unchanged: the same four keys still fit.
	assert.Equal(t, 0, a.Size())
	names, err := a.Pseudonymize(keys[:4], false)
	require.NoError(t, err)
	assert.Len(t, names, 4)

	// A fifth distinct request afterwards also fails.
	_, err = a.Pseudonymize([]Fingerprint{FingerprintRow("one-more")}, false)
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 1, exhausted.Requested)
	assert.Equal(t, 0, exhausted.RemainingFull)

	// Registered keys still resolve after exhaustion.
	again, err := a.Pseudonymize(keys[:4], false)
	require.NoError(t, err)
	assert.Equal(t, names, again)
}

func TestPseudonymizeAlliterationExhaustedNoFallback(t *testing.T) {
	a := newTestArk(t, tinySpace())

	keys := make([]Fingerprint, 3)
	for i := range keys {
		keys[i] = FingerprintRow(fmt.Sprintf("key-%d", i))
	}

	_, err := a.Pseudonymize(keys, true)
	var exhausted *CapacityExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 3, exhausted.Requested)
	assert.Equal(t, 4, exhausted.RemainingFull)
	assert.Equal(t, 2, exhausted.RemainingAlliteration)
	assert.True(t, exhausted.Alliterate)
	assert.Contains(t, err.Error(), "alliteration pool exhausted",
		"message must point at alliteration scarcity, not overall scarcity")

	// No partial draw happened; both alliterations are still available.
	names, err := a.Pseudonymize(keys[:2], true)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Big Bear", "Red Rat"}, names)
}

func TestPseudonymizeScenario(t *testing.T) {
	a := newTestArk(t, tinySpace())

	allit, err := a.Pseudonymize([]Fingerprint{FingerprintRow("X")}, true)
	require.NoError(t, err)
	assert.Contains(t, []string{"Big Bear", "Red Rat"}, allit[0])

	plain, err := a.Pseudonymize([]Fingerprint{FingerprintRow("Y")}, false)
	require.NoError(t, err)
	assert.Contains(t, []string{"Big Bear", "Big Rat", "Red Bear", "Red Rat"}, plain[0])
	assert.NotEqual(t, allit[0], plain[0],
		"an index issued through the alliteration pool is gone from the full pool")

	assert.Equal(t, 2, a.Size())
	assert.Equal(t, 2, a.Remaining())
}

func TestPoolDisjointnessMaintained(t *testing.T) {
	a := newTestArk(t, tinySpace())

	// One alliterating draw, then drain the full pool; every pseudonym must
	// still be unique across both pools.
	names := make(map[string]bool)
	allit, err := a.Pseudonymize([]Fingerprint{FingerprintRow("X")}, true)
	require.NoError(t, err)
	names[allit[0]] = true

	for i := 0; i < 3; i++ {
		got, err := a.Pseudonymize([]Fingerprint{FingerprintRow(fmt.Sprintf("plain-%d", i))}, false)
		require.NoError(t, err)
		assert.False(t, names[got[0]], "pseudonym %q issued from both pools", got[0])
		names[got[0]] = true
	}
	assert.Len(t, names, 4)
	assert.Equal(t, 0, a.Remaining())
	assert.Equal(t, 0, a.RemainingAlliterations())
}

func TestAlliterationCount(t *testing.T) {
	a := newTestArk(t, tinySpace())

	_, err := a.Pseudonymize([]Fingerprint{FingerprintRow("X")}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, a.AlliterationCount())

	// Draining the full pool consumes the remaining alliteration by chance.
	for i := 0; i < 3; i++ {
		_, err := a.Pseudonymize([]Fingerprint{FingerprintRow(fmt.Sprintf("plain-%d", i))}, false)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, a.AlliterationCount(),
		"counts alliterating pseudonyms issued through either pool")
}

func TestEntriesDrawOrder(t *testing.T) {
	a := newTestArk(t, tinySpace())

	keys := []Fingerprint{FingerprintRow("first"), FingerprintRow("second"), FingerprintRow("third")}
	names, err := a.Pseudonymize(keys, false)
	require.NoError(t, err)

	entries := a.Entries()
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, keys[i], e.Key, "entry %d out of draw order", i)
		assert.Equal(t, names[i], e.Pseudonym)
		assert.Equal(t, IsAlliteration(e.Pseudonym), e.Alliteration)
	}
}

func TestPseudonymizeValues(t *testing.T) {
	a := newTestArk(t, tinySpace())

	names, err := a.PseudonymizeValues(false,
		[]string{"alice", "bob", "alice"},
		[]string{"1", "2", "1"},
	)
	require.NoError(t, err)
	require.Len(t, names, 3)
	assert.Equal(t, names[0], names[2], "identical rows share one pseudonym")
	assert.NotEqual(t, names[0], names[1])
}

func TestPseudonymizeValuesInconsistentLengths(t *testing.T) {
	a := newTestArk(t, tinySpace())

	_, err := a.PseudonymizeValues(false, []string{"a", "b"}, []string{"1"})
	var lenErr *InconsistentLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, []int{2, 1}, lenErr.Lengths)
	assert.Equal(t, 0, a.Size(), "rejected before any hashing or drawing")
	assert.Equal(t, 4, a.Remaining())
}

func TestNewInvalidCategories(t *testing.T) {
	_, err := New(WithCategories([]Category{{Name: "empty"}}))
	var emptyErr *EmptyCategoryError
	require.ErrorAs(t, err, &emptyErr)
}

func TestDefaultAlliterate(t *testing.T) {
	a, err := New(WithSeed(3), WithAlliteration(true))
	require.NoError(t, err)
	assert.True(t, a.DefaultAlliterate())
}
