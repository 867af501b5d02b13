// Package pairing - constraint model derivation.
//
// NewModel is the single entry point from a raw pairing matrix into the
// search engines: it validates the Latin-square contract, deep-copies L so
// later caller mutations cannot corrupt a running attempt, and derives the
// inverse rounds P and the transversal table T exactly once.
package pairing

// NewModel validates l and derives the immutable constraint model.
//
// Contracts:
//   - l must satisfy Validate (even order, row/column permutations).
//   - The returned model owns private copies; the caller keeps ownership of l.
//
// Errors: ErrOddOrder, ErrNotLatin.
//
// Complexity: O(n²) time and space.
func NewModel(l [][]int) (*Model, error) {
	if err := Validate(l); err != nil {
		return nil, err
	}

	n := len(l)
	md := &Model{
		n: n,
		m: n / 2,
		l: copySquare(l),
	}

	var r, i, j int

	// Inverse rounds: P[r][L[r][i]] = i.
	md.p = make([][]int, n)
	for r = 0; r < n; r++ {
		md.p[r] = make([]int, n)
		for i = 0; i < n; i++ {
			md.p[r][md.l[r][i]] = i
		}
	}

	// Opponent transversals: T[j][r] = P[r][j].
	md.t = make([][]int, n)
	for j = 0; j < n; j++ {
		md.t[j] = make([]int, n)
		for r = 0; r < n; r++ {
			md.t[j][r] = md.p[r][j]
		}
	}

	return md, nil
}
