// Package coloring - restart controller.
//
// Run drives N independent attempts across a (pairing, seed) grid:
// backtracking attempts vary the candidate pairing, local-search attempts
// vary both the pairing and the random seed. Attempts share no mutable
// state (each engine owns private counters), so they are embarrassingly
// parallel; the only cross-attempt coordination is a shared cancellation
// context observed cooperatively at move/branch boundaries, plus collection
// of the first success.
//
// Outcome policy:
//   - The first Solved/Converged attempt wins; every other in-flight attempt
//     is cancelled and its partial state discarded.
//   - Infeasible is declared only once every configured combination has been
//     exhausted (all Unsat/Timeout/Exhausted).
//
// Diagnostics (best-seen energy, node/step totals) are tracked purely for
// observation and never influence scheduling or outcomes.
package coloring

import (
	"context"
	"runtime"
	"sync"

	"github.com/tesolchina/math-tournament/pairing"
)

// Engine selects which search engine a restart plan drives.
type Engine int

const (
	// Backtracking runs the exact engine once per candidate pairing.
	Backtracking Engine = iota + 1

	// LocalSearch runs the annealing engine once per (pairing, seed) pair.
	LocalSearch
)

// String implements fmt.Stringer.
func (e Engine) String() string {
	switch e {
	case Backtracking:
		return "backtracking"
	case LocalSearch:
		return "localsearch"
	default:
		return "unknown"
	}
}

// Plan describes one restart run.
//
//	Engine   – which engine to drive.
//	Pairings – candidate pairing matrices; each must satisfy the
//	           Latin-square contract (validated up front, before any attempt).
//	Seeds    – local-search seeds; ignored by Backtracking. Empty ⇒ the
//	           single seed Options.Seed. Each attempt's RNG stream is
//	           derived from (seed, pairing index), so attempts sharing a
//	           configured seed across pairings stay decorrelated.
//	Workers  – parallel attempt executors; 0 ⇒ runtime.NumCPU().
//	Options  – per-attempt engine options (Seed is overridden per attempt
//	           for LocalSearch).
type Plan struct {
	Engine   Engine
	Pairings [][][]int
	Seeds    []int64
	Workers  int
	Options  Options
}

// Stats aggregates purely observational diagnostics across all attempts.
type Stats struct {
	Attempts   int   // attempts actually started
	TotalNodes int64 // summed backtracking nodes
	TotalSteps int64 // summed annealing proposals
	BestEnergy int   // lowest energy seen by any annealing attempt (-1 if n/a)

	// Winning coordinates; PairingIndex is -1 unless the run succeeded.
	PairingIndex int
	Seed         int64
}

// RunResult couples the winning (or terminal negative) Result with Stats.
type RunResult struct {
	Result
	Stats Stats
}

// attempt is one cell of the (pairing, seed) grid.
type attempt struct {
	pairingIdx int
	model      *pairing.Model
	seed       int64
}

// Run executes the plan and returns the first feasible coloring, or a
// RunResult with Outcome Infeasible once every combination is exhausted.
//
// Errors: ErrEmptyPlan, ErrUnknownEngine, pairing validation sentinels
// (reported before any attempt starts), option sentinels, or ctx.Err() when
// the caller cancelled the whole run.
func Run(ctx context.Context, plan Plan) (RunResult, error) {
	if err := validateOptions(plan.Options); err != nil {
		return RunResult{}, err
	}
	if plan.Engine != Backtracking && plan.Engine != LocalSearch {
		return RunResult{}, ErrUnknownEngine
	}
	if len(plan.Pairings) == 0 {
		return RunResult{}, ErrEmptyPlan
	}

	// Fail fast on any malformed pairing before creating search state.
	models := make([]*pairing.Model, len(plan.Pairings))
	for i, l := range plan.Pairings {
		md, err := pairing.NewModel(l)
		if err != nil {
			return RunResult{}, err
		}
		models[i] = md
	}

	seeds := plan.Seeds
	if len(seeds) == 0 {
		seeds = []int64{plan.Options.Seed}
	}

	// Build the attempt grid.
	var attempts []attempt
	switch plan.Engine {
	case Backtracking:
		attempts = make([]attempt, 0, len(models))
		for i, md := range models {
			attempts = append(attempts, attempt{pairingIdx: i, model: md})
		}
	case LocalSearch:
		attempts = make([]attempt, 0, len(models)*len(seeds))
		for i, md := range models {
			for _, s := range seeds {
				attempts = append(attempts, attempt{pairingIdx: i, model: md, seed: s})
			}
		}
	}

	workers := plan.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(attempts) {
		workers = len(attempts)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		winner  *RunResult
		stats   = Stats{BestEnergy: -1, PairingIndex: -1}
		jobs    = make(chan attempt)
		runOne  func(at attempt) (Result, error)
		collect func(at attempt, res Result, err error)
	)

	runOne = func(at attempt) (Result, error) {
		opts := plan.Options
		if plan.Engine == LocalSearch {
			// Decorrelate attempts that share a configured seed across
			// pairings; the stream stays a pure function of the plan.
			opts.Seed = deriveSeed(at.seed, uint64(at.pairingIdx))

			return Anneal(runCtx, at.model, opts)
		}

		return Backtrack(runCtx, at.model, opts)
	}

	collect = func(at attempt, res Result, err error) {
		mu.Lock()
		defer mu.Unlock()

		stats.Attempts++
		stats.TotalNodes += res.Nodes
		stats.TotalSteps += res.Steps
		if plan.Engine == LocalSearch && !res.Outcome.Success() && err == nil {
			if stats.BestEnergy < 0 || res.BestEnergy < stats.BestEnergy {
				stats.BestEnergy = res.BestEnergy
			}
		}

		// Cancelled attempts (err != nil after a winner emerged) are discarded.
		if err != nil || !res.Outcome.Success() || winner != nil {
			return
		}
		winner = &RunResult{Result: res}
		stats.PairingIndex = at.pairingIdx
		stats.Seed = at.seed
		cancel() // stop every other in-flight attempt at its next boundary
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for at := range jobs {
				res, err := runOne(at)
				collect(at, res, err)
			}
		}()
	}

	for _, at := range attempts {
		select {
		case jobs <- at:
		case <-runCtx.Done():
		}
		if runCtx.Err() != nil {
			break
		}
	}
	close(jobs)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()

	if winner != nil {
		winner.Stats = stats

		return *winner, nil
	}
	// Distinguish caller cancellation from genuine exhaustion.
	if ctx.Err() != nil {
		return RunResult{Stats: stats}, ctx.Err()
	}

	return RunResult{Result: Result{Outcome: Infeasible}, Stats: stats}, nil
}
