// Package verify_test checks the independent verifier against a known-good
// solution and against single, surgically introduced defects.
package verify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tesolchina/math-tournament/verify"
)

// Known-good order-10 pairing and balanced coloring; every row, column and
// opponent sum of the coloring equals 5.
var goodPairing = [][]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 8, 3, 5, 6, 9, 2, 0, 7, 4},
	{7, 6, 4, 9, 0, 8, 5, 3, 2, 1},
	{8, 3, 9, 1, 7, 4, 0, 2, 6, 5},
	{5, 0, 1, 6, 8, 2, 3, 4, 9, 7},
	{3, 4, 8, 2, 1, 7, 9, 6, 5, 0},
	{6, 9, 5, 4, 2, 0, 7, 8, 1, 3},
	{4, 2, 7, 0, 9, 1, 8, 5, 3, 6},
	{9, 7, 6, 8, 5, 3, 4, 1, 0, 2},
	{2, 5, 0, 7, 3, 6, 1, 9, 4, 8},
}

var goodColoring = [][]int{
	{1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
	{0, 0, 1, 0, 1, 0, 1, 1, 1, 0},
	{0, 0, 1, 1, 0, 0, 0, 1, 1, 1},
	{1, 1, 1, 0, 0, 1, 0, 0, 0, 1},
	{0, 0, 0, 1, 1, 0, 1, 0, 1, 1},
	{0, 0, 0, 1, 0, 1, 0, 1, 1, 1},
	{1, 0, 0, 0, 0, 1, 1, 1, 1, 0},
	{1, 1, 0, 0, 1, 1, 0, 1, 0, 0},
	{1, 1, 0, 1, 1, 0, 1, 0, 0, 0},
	{0, 1, 1, 0, 0, 1, 1, 0, 0, 1},
}

// cloneMatrix deep-copies a matrix so mutation tests stay isolated.
func cloneMatrix(src [][]int) [][]int {
	out := make([][]int, len(src))
	for r := range src {
		out[r] = append([]int(nil), src[r]...)
	}

	return out
}

func TestCheck_AcceptsKnownGoodSolution(t *testing.T) {
	rep, err := verify.Check(goodPairing, goodColoring)
	require.NoError(t, err)
	require.True(t, rep.OK(), "failures: %v", rep.Failures)
	require.Equal(t, 10, rep.N)
	require.Equal(t, 5, rep.M)
}

func TestCheck_IsIdempotent(t *testing.T) {
	first, err := verify.Check(goodPairing, goodColoring)
	require.NoError(t, err)
	second, err := verify.Check(goodPairing, goodColoring)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCheck_RejectsMalformedShapes(t *testing.T) {
	cases := map[string]struct{ l, f [][]int }{
		"empty":          {nil, nil},
		"odd order":      {[][]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
		"order mismatch": {goodPairing, [][]int{{0, 1}, {1, 0}}},
		"ragged row":     {[][]int{{0, 1}, {1}}, [][]int{{1, 0}, {0, 1}}},
		"non-binary":     {[][]int{{0, 1}, {1, 0}}, [][]int{{2, 0}, {0, 1}}},
		"out of range":   {[][]int{{0, 9}, {9, 0}}, [][]int{{1, 0}, {0, 1}}},
	}

	for name, tc := range cases {
		_, err := verify.Check(tc.l, tc.f)
		require.ErrorIs(t, err, verify.ErrShape, name)
	}
}

func TestCheck_FlagsBitFlip(t *testing.T) {
	// Flipping a single cell 1→0 breaks exactly one row sum, one column sum
	// and one opponent sum; the pairing itself stays intact.
	f := cloneMatrix(goodColoring)
	require.Equal(t, 1, f[2][3])
	f[2][3] = 0

	rep, err := verify.Check(goodPairing, f)
	require.NoError(t, err)
	require.False(t, rep.OK())
	require.Len(t, rep.Failures, 3)

	byCheck := map[string]verify.Failure{}
	for _, fail := range rep.Failures {
		byCheck[fail.Check] = fail
	}
	require.Equal(t, verify.Failure{Check: "row-sum", Index: 2, Got: 4, Want: 5}, byCheck["row-sum"])
	require.Equal(t, verify.Failure{Check: "col-sum", Index: 3, Got: 4, Want: 5}, byCheck["col-sum"])
	require.Equal(t, verify.Failure{Check: "opponent-sum", Index: goodPairing[2][3], Got: 4, Want: 5}, byCheck["opponent-sum"])
}

func TestCheck_FlagsRowPreservingSwap(t *testing.T) {
	// Swapping a 1 and a 0 within one row keeps the row sum at m but moves
	// one unit between two columns and two opponents.
	f := cloneMatrix(goodColoring)
	require.Equal(t, 1, f[0][0])
	require.Equal(t, 0, f[0][9])
	f[0][0], f[0][9] = 0, 1

	rep, err := verify.Check(goodPairing, f)
	require.NoError(t, err)
	require.False(t, rep.OK())
	require.Len(t, rep.Failures, 4)
	for _, fail := range rep.Failures {
		require.NotEqual(t, "row-sum", fail.Check, "row sums survive within-row swaps")
		require.NotEqual(t, "pair", fail.Check)
	}
}

func TestCheck_FlagsRepeatedPairing(t *testing.T) {
	// Duplicating round 0 as round 1 makes every round-0 pair occur twice
	// and every dropped pair zero times.
	l := cloneMatrix(goodPairing)
	f := cloneMatrix(goodColoring)
	copy(l[1], l[0])

	rep, err := verify.Check(l, f)
	require.NoError(t, err)
	require.False(t, rep.OK())

	pairFails := 0
	for _, fail := range rep.Failures {
		if fail.Check == "pair" {
			pairFails++
			require.NotEqual(t, 1, fail.Got)
		}
	}
	require.Positive(t, pairFails)
}
