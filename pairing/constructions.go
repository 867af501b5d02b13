// Package pairing - pairing-matrix constructions.
//
// Each construction returns a fresh n×n matrix intended to satisfy the
// Latin-square contract; none of them is trusted by the engines, which only
// accept a pairing through NewModel/Validate. Constructions are deliberately
// varied: the cyclic family is known to be infeasible to color for some
// orders (n=10 in particular), so callers typically feed the restart
// controller a mix of non-cyclic candidates.
package pairing

import (
	"math/rand"

	"github.com/samber/lo"
)

// Cyclic builds the pure shift pairing L[r][i] = (i+r) mod n.
//
// Complexity: O(n²).
func Cyclic(n int) [][]int {
	l := emptySquare(n)

	var r, i int
	for r = 0; r < n; r++ {
		for i = 0; i < n; i++ {
			l[r][i] = (i + r) % n
		}
	}

	return l
}

// ShiftSwap builds a non-cyclic pairing: even rounds shift by 2*(r/2),
// odd rounds apply the same shift and then swap adjacent even/odd values.
//
// Complexity: O(n²).
func ShiftSwap(n int) [][]int {
	l := emptySquare(n)

	var (
		r, i  int
		shift int
		v     int
	)
	for r = 0; r < n; r++ {
		shift = 2 * (r / 2)
		for i = 0; i < n; i++ {
			v = (i + shift) % n
			if r%2 == 1 {
				if v%2 == 0 {
					v = (v + 1) % n
				} else {
					v = (v - 1 + n) % n
				}
			}
			l[r][i] = v
		}
	}

	return l
}

// Dihedral builds the Cayley table of the dihedral group D_{n/2}: elements
// 0..n/2-1 are rotations, n/2..n-1 are reflections, and L[a][b] = a∘b.
// Cayley tables of finite groups are always Latin squares.
//
// Complexity: O(n²).
func Dihedral(n int) [][]int {
	l := emptySquare(n)
	k := n / 2

	var (
		a, b           int
		aRot, bRot, cR int
		aRef, bRef, cF bool
	)
	for a = 0; a < n; a++ {
		aRot, aRef = a%k, a >= k
		for b = 0; b < n; b++ {
			bRot, bRef = b%k, b >= k
			if !aRef {
				cR = (aRot + bRot) % k
				cF = bRef
			} else {
				cR = (aRot - bRot + k) % k
				cF = !bRef
			}
			if cF {
				l[a][b] = cR + k
			} else {
				l[a][b] = cR
			}
		}
	}

	return l
}

// MixedShiftReflect builds a pairing whose first n/2 rounds are even shifts
// (i+2r) mod n and whose last n/2 rounds are reflections (2(r-n/2)+1-i) mod n.
//
// Complexity: O(n²).
func MixedShiftReflect(n int) [][]int {
	l := emptySquare(n)
	k := n / 2

	var r, i int
	for r = 0; r < n; r++ {
		for i = 0; i < n; i++ {
			if r < k {
				l[r][i] = (i + 2*r) % n
			} else {
				l[r][i] = ((2*(r-k)+1-i)%n + n) % n
			}
		}
	}

	return l
}

// Random builds a uniform-ish random Latin square by sequential row
// construction: each row fills its cells in a shuffled order, choosing a
// value that is still unused in the cell's column. Dead ends abort the
// whole square and retry from scratch, up to maxTries squares.
//
// The rng is injected so generation is reproducible and attempts stay
// independent; Random never touches ambient entropy.
//
// Errors: ErrRandomExhausted when maxTries squares all dead-ended.
//
// Complexity: O(tries·n³) worst case. The per-try completion rate decays
// steeply with n (around one in two at n=4, one in fifty at n=8), so budget
// maxTries generously for larger orders.
func Random(n int, rng *rand.Rand, maxTries int) ([][]int, error) {
	if maxTries < 1 {
		maxTries = 1
	}

	var (
		try int
		l   [][]int
	)
	for try = 0; try < maxTries; try++ {
		l = randomOnce(n, rng)
		if l != nil {
			return l, nil
		}
	}

	return nil, ErrRandomExhausted
}

// randomOnce attempts a single sequential construction; nil means dead end.
func randomOnce(n int, rng *rand.Rand) [][]int {
	l := emptySquare(n)

	// colUsed[i][v] marks value v already placed in column i.
	colUsed := make([][]bool, n)
	for i := range colUsed {
		colUsed[i] = make([]bool, n)
	}

	var (
		r, i, j    int
		order      []int
		rowUsed    []bool
		candidates []int
	)
	for r = 0; r < n; r++ {
		order = rng.Perm(n)
		rowUsed = make([]bool, n)
		for _, i = range order {
			candidates = lo.Filter(lo.Range(n), func(v int, _ int) bool {
				return !colUsed[i][v] && !rowUsed[v]
			})
			if len(candidates) == 0 {
				return nil // dead end: retry the whole square
			}
			j = candidates[rng.Intn(len(candidates))]
			l[r][i] = j
			rowUsed[j] = true
		}
		for i = 0; i < n; i++ {
			colUsed[i][l[r][i]] = true
		}
	}

	return l
}

// emptySquare allocates an n×n zero matrix.
func emptySquare(n int) [][]int {
	l := make([][]int, n)
	for r := range l {
		l[r] = make([]int, n)
	}

	return l
}
