package pairing

import "errors"

var (
	// ErrOddOrder indicates that the pairing order n is below 2 or odd;
	// the balance target m = n/2 is undefined for such orders.
	ErrOddOrder = errors.New("pairing: order must be even and at least 2")

	// ErrNotLatin indicates that a pairing matrix violates the Latin-square
	// contract: some row or column is not a permutation of [0,n).
	ErrNotLatin = errors.New("pairing: matrix is not a Latin square")

	// ErrRandomExhausted indicates that the random Latin-square generator
	// exceeded its retry budget without completing a valid square.
	ErrRandomExhausted = errors.New("pairing: random generation retries exhausted")
)

// Model is the immutable constraint model derived from a validated pairing
// matrix. It is a pure function of L: construction performs all derivation
// work once, and the search engines only ever read from it.
//
// Fields:
//
//	L – the pairing matrix itself; L[r][i] is player i's round-r opponent.
//	P – inverse rounds; P[r][L[r][i]] = i for every r, i.
//	T – opponent transversals; T[j][r] = P[r][j] is the player index whose
//	    first/second status in round r feeds opponent j's second-count.
//
// For every j, T[j] is itself a permutation of [0,n); this follows from
// each P[r] being a permutation and is checked by the test suite.
type Model struct {
	n int
	m int

	l [][]int
	p [][]int
	t [][]int
}

// N returns the order of the pairing (rounds and players per pool).
func (md *Model) N() int { return md.n }

// M returns the balance target m = n/2.
func (md *Model) M() int { return md.m }

// Opponent returns L[r][i]: player i's opponent in round r.
func (md *Model) Opponent(r, i int) int { return md.l[r][i] }

// Carrier returns T[j][r]: the player index whose round-r first-status
// determines opponent j's second-count.
func (md *Model) Carrier(j, r int) int { return md.t[j][r] }

// Pairing returns a deep copy of L; callers may mutate the copy freely.
func (md *Model) Pairing() [][]int { return copySquare(md.l) }

// Transversals returns a deep copy of T.
func (md *Model) Transversals() [][]int { return copySquare(md.t) }

// copySquare clones an n×n matrix row by row.
func copySquare(src [][]int) [][]int {
	out := make([][]int, len(src))

	var r int
	for r = 0; r < len(src); r++ {
		out[r] = make([]int, len(src[r]))
		copy(out[r], src[r])
	}

	return out
}
