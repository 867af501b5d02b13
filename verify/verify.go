// Package verify independently re-checks a tournament coloring against the
// full balance contract. It deliberately shares no derivation code with the
// search engines (no constraint model, no transversal tables): every sum is
// re-derived from the raw (L, F) matrices by direct scanning, so a defect in
// the solvers cannot be reproduced here and slip through.
//
// Checks performed by Check, in order:
//
//  1. shape    – both matrices square, same even order n ≥ 2, F binary.
//  2. pairs    – every (player, opponent) pair occurs in exactly one round
//     (this subsumes the Latin-square contract on L).
//  3. row sums – every round has exactly m = n/2 first-movers.
//  4. col sums – every player moves first in exactly m rounds.
//  5. opponent – every opponent sees its counterpart move first in exactly
//     m rounds (scanned straight out of L, not via a transversal table).
//
// Check is deterministic and idempotent: verifying the same (L, F) twice
// yields identical reports.
package verify

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// ErrShape indicates non-square, mismatched, odd-order or non-binary input;
// such input cannot be meaningfully reported check by check.
var ErrShape = errors.New("verify: need equal square matrices of even order with binary coloring")

// Failure pinpoints one violated balance check.
type Failure struct {
	Check string // "pair", "row-sum", "col-sum", "opponent-sum"
	Index int    // row, column or opponent index; pair index i*n+j for "pair"
	Got   int
	Want  int
}

// String renders the failure for diagnostics.
func (f Failure) String() string {
	return fmt.Sprintf("%s[%d]: got %d, want %d", f.Check, f.Index, f.Got, f.Want)
}

// Report is the full outcome of one verification pass.
type Report struct {
	N        int
	M        int
	Failures []Failure
}

// OK reports whether every check passed.
func (r Report) OK() bool { return len(r.Failures) == 0 }

// Check verifies f against l and reports every violated balance family.
// It never mutates its inputs.
//
// Complexity: O(n³) time (opponent scan), O(n²) space; verification is a
// cold path and favors independence over speed.
func Check(l, f [][]int) (Report, error) {
	n := len(l)
	if n < 2 || n%2 != 0 || len(f) != n {
		return Report{}, ErrShape
	}

	var r, i, j int
	for r = 0; r < n; r++ {
		if len(l[r]) != n || len(f[r]) != n {
			return Report{}, ErrShape
		}
		for i = 0; i < n; i++ {
			if f[r][i] != 0 && f[r][i] != 1 {
				return Report{}, ErrShape
			}
			if l[r][i] < 0 || l[r][i] >= n {
				return Report{}, ErrShape
			}
		}
	}

	m := n / 2
	rep := Report{N: n, M: m}

	// Pair uniqueness: (i, l[r][i]) across all rounds covers each cell once.
	pairCount := make([][]int, n)
	for i = 0; i < n; i++ {
		pairCount[i] = make([]int, n)
	}
	for r = 0; r < n; r++ {
		for i = 0; i < n; i++ {
			pairCount[i][l[r][i]]++
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if pairCount[i][j] != 1 {
				rep.Failures = append(rep.Failures, Failure{
					Check: "pair", Index: i*n + j, Got: pairCount[i][j], Want: 1,
				})
			}
		}
	}

	// Row sums: m first-movers per round.
	for r = 0; r < n; r++ {
		if got := lo.Sum(f[r]); got != m {
			rep.Failures = append(rep.Failures, Failure{
				Check: "row-sum", Index: r, Got: got, Want: m,
			})
		}
	}

	// Column sums: each player first in m rounds.
	for i = 0; i < n; i++ {
		got := 0
		for r = 0; r < n; r++ {
			got += f[r][i]
		}
		if got != m {
			rep.Failures = append(rep.Failures, Failure{
				Check: "col-sum", Index: i, Got: got, Want: m,
			})
		}
	}

	// Opponent sums: scan L directly for the cell carrying opponent j in
	// round r; no transversal table is consulted.
	for j = 0; j < n; j++ {
		got := 0
		for r = 0; r < n; r++ {
			for i = 0; i < n; i++ {
				if l[r][i] == j {
					got += f[r][i]

					break
				}
			}
		}
		if got != m {
			rep.Failures = append(rep.Failures, Failure{
				Check: "opponent-sum", Index: j, Got: got, Want: m,
			})
		}
	}

	return rep, nil
}
