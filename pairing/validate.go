// Package pairing - Latin-square contract validation.
//
// Validation runs before any search state exists, so a malformed pairing
// can never leak into an engine. Checks are deterministic, side-effect free,
// and return only sentinel errors from types.go.
package pairing

// Validate enforces the Latin-square contract on L:
//
//   - L is non-empty, square, with even order n ≥ 2.
//   - Every row is a permutation of [0,n).
//   - Every column is a permutation of [0,n).
//
// Pair-uniqueness (each (i,j) opponent pair in exactly one round) follows
// from the column property and needs no separate pass here; the independent
// verifier re-checks it anyway.
//
// Complexity: O(n²) time, O(n) extra space.
func Validate(l [][]int) error {
	n := len(l)
	if n < 2 || n%2 != 0 {
		return ErrOddOrder
	}

	var (
		r, i int
		v    int
		seen = make([]bool, n) // reused permutation marker
	)

	// Row permutations.
	for r = 0; r < n; r++ {
		if len(l[r]) != n {
			return ErrNotLatin
		}
		clearBools(seen)
		for i = 0; i < n; i++ {
			v = l[r][i]
			if v < 0 || v >= n || seen[v] {
				return ErrNotLatin
			}
			seen[v] = true
		}
	}

	// Column permutations.
	for i = 0; i < n; i++ {
		clearBools(seen)
		for r = 0; r < n; r++ {
			v = l[r][i]
			if seen[v] {
				return ErrNotLatin
			}
			seen[v] = true
		}
	}

	return nil
}

// clearBools resets a reusable marker slice.
func clearBools(b []bool) {
	for i := range b {
		b[i] = false
	}
}
