// Package coloring_test exercises the restart controller: attempt grids,
// first-success collection, exhaustion, validation and cancellation.
package coloring_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tesolchina/math-tournament/coloring"
	"github.com/tesolchina/math-tournament/pairing"
	"github.com/tesolchina/math-tournament/verify"
)

func TestRun_ValidatesThePlanUpFront(t *testing.T) {
	ctx := context.Background()

	_, err := coloring.Run(ctx, coloring.Plan{Engine: coloring.Backtracking, Options: coloring.DefaultOptions()})
	require.ErrorIs(t, err, coloring.ErrEmptyPlan)

	_, err = coloring.Run(ctx, coloring.Plan{
		Pairings: [][][]int{pairing.Cyclic(4)},
		Options:  coloring.DefaultOptions(),
	})
	require.ErrorIs(t, err, coloring.ErrUnknownEngine)

	// A single malformed pairing aborts the whole run before any attempt.
	_, err = coloring.Run(ctx, coloring.Plan{
		Engine:   coloring.Backtracking,
		Pairings: [][][]int{pairing.Cyclic(4), {{0, 0}, {1, 1}}},
		Options:  coloring.DefaultOptions(),
	})
	require.ErrorIs(t, err, pairing.ErrNotLatin)

	opts := coloring.DefaultOptions()
	opts.NodeBudget = -5
	_, err = coloring.Run(ctx, coloring.Plan{
		Engine:   coloring.Backtracking,
		Pairings: [][][]int{pairing.Cyclic(4)},
		Options:  opts,
	})
	require.ErrorIs(t, err, coloring.ErrBadBudget)
}

func TestRun_BacktrackingPicksTheFeasiblePairing(t *testing.T) {
	plan := coloring.Plan{
		Engine:   coloring.Backtracking,
		Pairings: [][][]int{pairing.Cyclic(6), knownTenPairing},
		Workers:  1, // sequential: attempt order is the pairing order
		Options:  coloring.DefaultOptions(),
	}

	out, err := coloring.Run(context.Background(), plan)
	require.NoError(t, err)
	require.Equal(t, coloring.Solved, out.Outcome)
	require.Equal(t, 1, out.Stats.PairingIndex, "cyclic 6 is infeasible; the known pairing must win")
	require.Equal(t, 2, out.Stats.Attempts)
	require.Positive(t, out.Stats.TotalNodes)

	rep, err := verify.Check(plan.Pairings[out.Stats.PairingIndex], out.Coloring)
	require.NoError(t, err)
	require.True(t, rep.OK(), "verifier rejected: %v", rep.Failures)
}

func TestRun_DeclaresInfeasibleOnlyAfterExhaustion(t *testing.T) {
	out, err := coloring.Run(context.Background(), coloring.Plan{
		Engine:   coloring.Backtracking,
		Pairings: [][][]int{{{0, 1}, {1, 0}}, {{1, 0}, {0, 1}}},
		Options:  coloring.DefaultOptions(),
	})
	require.NoError(t, err)
	require.Equal(t, coloring.Infeasible, out.Outcome)
	require.Nil(t, out.Coloring)
	require.Equal(t, 2, out.Stats.Attempts, "every combination must be tried before giving up")
	require.Equal(t, -1, out.Stats.PairingIndex)
}

func TestRun_LocalSearchConvergesAcrossSeeds(t *testing.T) {
	opts := coloring.DefaultOptions()
	opts.Steps = 400_000

	plan := coloring.Plan{
		Engine:   coloring.LocalSearch,
		Pairings: [][][]int{knownTenPairing},
		Seeds:    []int64{1, 2, 3, 4},
		Workers:  2,
		Options:  opts,
	}

	out, err := coloring.Run(context.Background(), plan)
	require.NoError(t, err)
	require.Equal(t, coloring.Converged, out.Outcome)
	require.Zero(t, out.Energy)
	require.Contains(t, plan.Seeds, out.Stats.Seed)

	rep, err := verify.Check(knownTenPairing, out.Coloring)
	require.NoError(t, err)
	require.True(t, rep.OK(), "verifier rejected: %v", rep.Failures)
}

func TestRun_LocalSearchTracksBestEnergyOnFailure(t *testing.T) {
	opts := coloring.DefaultOptions()
	opts.Steps = 2_000

	out, err := coloring.Run(context.Background(), coloring.Plan{
		Engine:   coloring.LocalSearch,
		Pairings: [][][]int{pairing.Cyclic(2)},
		Seeds:    []int64{1, 2, 3},
		Options:  opts,
	})
	require.NoError(t, err)
	require.Equal(t, coloring.Infeasible, out.Outcome)
	require.Equal(t, 3, out.Stats.Attempts)
	require.Positive(t, out.Stats.BestEnergy, "order 2 never reaches zero energy")
	require.Positive(t, out.Stats.TotalSteps)
}

func TestRun_DefaultsToTheSingleConfiguredSeed(t *testing.T) {
	opts := coloring.DefaultOptions()
	opts.Seed = 1
	opts.Steps = 50_000

	out, err := coloring.Run(context.Background(), coloring.Plan{
		Engine:   coloring.LocalSearch,
		Pairings: [][][]int{pairing.Cyclic(4)},
		Options:  opts,
	})
	require.NoError(t, err)
	require.Equal(t, coloring.Converged, out.Outcome)
	require.Equal(t, 1, out.Stats.Attempts)
	require.Equal(t, int64(1), out.Stats.Seed)
}

func TestRun_PropagatesCallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := coloring.Run(ctx, coloring.Plan{
		Engine:   coloring.Backtracking,
		Pairings: [][][]int{pairing.Cyclic(6)},
		Options:  coloring.DefaultOptions(),
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_StopsAtTheCallerDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Dihedral order 10 outruns 50ms by orders of magnitude; the run must
	// come back with the context error, not block until exhaustion.
	_, err := coloring.Run(ctx, coloring.Plan{
		Engine:   coloring.Backtracking,
		Pairings: [][][]int{pairing.Dihedral(10)},
		Options:  coloring.DefaultOptions(),
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
