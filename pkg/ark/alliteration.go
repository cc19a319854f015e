package ark

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FindAlliterations enumerates every linear index whose composing words all
// share the same first letter, case-insensitively.
//
// Word positions in each category are grouped by case-folded first rune; for
// every letter where each category has at least one match, the cartesian
// product of the per-category position subsets is encoded into linear
// indices. Letters missing from any category contribute nothing, so the
// result may be empty — that is a valid outcome, not an error.
//
// The result is duplicate-free and enumerated in a stable order (letters
// ascending, then product order). Indices are a subset of [1, space.Total()].
func FindAlliterations(space *NameSpace, codec *Codec) []int {
	categories := space.Categories()

	// positions[i][r] = 1-based positions in category i starting with rune r.
	positions := make([]map[rune][]int, len(categories))
	for i, c := range categories {
		positions[i] = make(map[rune][]int)
		for pos, w := range c.Words {
			r, _ := utf8.DecodeRuneInString(w)
			if r == utf8.RuneError {
				continue
			}
			r = unicode.ToLower(r)
			positions[i][r] = append(positions[i][r], pos+1)
		}
	}

	// A letter can only alliterate if the first category uses it.
	letters := make([]rune, 0, len(positions[0]))
	for r := range positions[0] {
		letters = append(letters, r)
	}
	slices.Sort(letters)

	var result []int
	seen := make(map[int]bool)
	for _, letter := range letters {
		subsets := make([][]int, len(categories))
		complete := true
		for i := range categories {
			subset := positions[i][letter]
			if len(subset) == 0 {
				complete = false
				break
			}
			subsets[i] = subset
		}
		if !complete {
			continue
		}
		for _, subscript := range cartesian(subsets) {
			idx, err := codec.Encode(subscript)
			if err != nil {
				// Positions come straight from the space; encoding them
				// cannot fail unless codec and space disagree.
				panic(err)
			}
			if !seen[idx] {
				seen[idx] = true
				result = append(result, idx)
			}
		}
	}
	return result
}

// IsAlliteration reports whether all space-separated words of a pseudonym
// share the same case-folded first rune.
func IsAlliteration(pseudonym string) bool {
	words := strings.Fields(pseudonym)
	if len(words) == 0 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(words[0])
	first = unicode.ToLower(first)
	for _, w := range words[1:] {
		r, _ := utf8.DecodeRuneInString(w)
		if unicode.ToLower(r) != first {
			return false
		}
	}
	return true
}

// cartesian returns every combination taking one element from each subset,
// rightmost subset varying fastest.
func cartesian(subsets [][]int) [][]int {
	n := 1
	for _, s := range subsets {
		n *= len(s)
	}
	out := make([][]int, 0, n)
	combo := make([]int, len(subsets))
	counters := make([]int, len(subsets))
	for i := 0; i < n; i++ {
		for j, s := range subsets {
			combo[j] = s[counters[j]]
		}
		out = append(out, append([]int(nil), combo...))
		for j := len(counters) - 1; j >= 0; j-- {
			counters[j]++
			if counters[j] < len(subsets[j]) {
				break
			}
			counters[j] = 0
		}
	}
	return out
}
