// Package coloring_test exercises JSON plan loading.
package coloring_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tesolchina/math-tournament/coloring"
)

// writePlan drops a JSON document into a temp dir and returns its path.
func writePlan(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

func TestPlanFromJSON_DecodesAFullDocument(t *testing.T) {
	path := writePlan(t, `{
		"engine": "localsearch",
		"workers": 4,
		"seeds": [1, 2, 3],
		"pairings": [[[0, 1], [1, 0]]],
		"steps": 300000,
		"initialTemp": 2.5,
		"minTemp": 0.01,
		"zeroDeltaProb": 0.25,
		"acceptScale": 0.9,
		"timeLimitMs": 1500
	}`)

	plan, err := coloring.PlanFromJSON(path)
	require.NoError(t, err)
	require.Equal(t, coloring.LocalSearch, plan.Engine)
	require.Equal(t, 4, plan.Workers)
	require.Equal(t, []int64{1, 2, 3}, plan.Seeds)
	require.Equal(t, [][][]int{{{0, 1}, {1, 0}}}, plan.Pairings)
	require.Equal(t, int64(300_000), plan.Options.Steps)
	require.Equal(t, 2.5, plan.Options.InitialTemp)
	require.Equal(t, 0.01, plan.Options.MinTemp)
	require.Equal(t, 0.25, plan.Options.ZeroDeltaProb)
	require.Equal(t, 0.9, plan.Options.AcceptScale)
	require.Equal(t, 1500*time.Millisecond, plan.Options.TimeLimit)
}

func TestPlanFromJSON_FallsBackToDefaults(t *testing.T) {
	path := writePlan(t, `{"engine": "backtracking", "pairings": [[[0, 1], [1, 0]]]}`)

	plan, err := coloring.PlanFromJSON(path)
	require.NoError(t, err)

	want := coloring.DefaultOptions()
	require.Equal(t, coloring.Backtracking, plan.Engine)
	require.Equal(t, want.Steps, plan.Options.Steps)
	require.Equal(t, want.InitialTemp, plan.Options.InitialTemp)
	require.Equal(t, want.ZeroDeltaProb, plan.Options.ZeroDeltaProb)
	require.Zero(t, plan.Options.TimeLimit)
	require.Empty(t, plan.Seeds)
}

func TestPlanFromJSON_AcceptsEngineAliases(t *testing.T) {
	for alias, want := range map[string]coloring.Engine{
		"backtrack":   coloring.Backtracking,
		"anneal":      coloring.LocalSearch,
		"annealing":   coloring.LocalSearch,
		"LocalSearch": coloring.LocalSearch,
	} {
		plan, err := coloring.PlanFromJSON(writePlan(t, `{"engine": "`+alias+`"}`))
		require.NoError(t, err, alias)
		require.Equal(t, want, plan.Engine, alias)
	}
}

func TestPlanFromJSON_RejectsBadInput(t *testing.T) {
	_, err := coloring.PlanFromJSON(writePlan(t, `{"engine": "simplex"}`))
	require.ErrorIs(t, err, coloring.ErrUnknownEngine)

	_, err = coloring.PlanFromJSON(writePlan(t, `{"engine": `))
	require.Error(t, err)

	_, err = coloring.PlanFromJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
