// Package coloring - stochastic local-search engine (simulated annealing).
//
// Anneal initializes F with each row an independent random permutation of
// m ones and n-m zeros, so row sums are exactly m by construction and never
// need re-checking. A move picks a random round r, a currently-1 column i1
// and a currently-0 column i0 within that row, and proposes flipping both;
// the row-sum invariant is preserved exactly.
//
// Energy is the squared deviation of column and transversal sums from m.
// A move touches exactly two column counters and exactly two opponent
// counters (one per flipped position; distinct because each round pairs
// every player once), so the delta folds to four applications of
// (x±1-m)² - (x-m)² = ±2(x-m)+1 — O(1) per proposal.
//
// Acceptance (annealing):
//   - delta < 0: always accept.
//   - delta == 0: accept with the fixed exploration probability ZeroDeltaProb.
//   - delta > 0: accept with probability AcceptScale·exp(-delta/temp) while
//     temp > MinTemp. AcceptScale is an ad hoc tunable, not a canonical
//     Metropolis rule; do not "correct" it.
//
// The temperature cools geometrically every proposal across the fixed step
// budget, which structurally bounds the attempt — no separate timeout
// mechanism is needed. Energy hitting zero terminates with Converged;
// spending the budget with energy > 0 yields Exhausted, a normal negative
// result for one attempt.
//
// Reproducibility: the whole trajectory is a pure function of (pairing,
// seed, options); no ambient entropy is consulted. Cancellation is observed
// between proposals, never mid-update.
package coloring

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/tesolchina/math-tournament/pairing"
)

// saEngine owns all state of one annealing attempt.
type saEngine struct {
	n, m int
	md   *pairing.Model

	f      [][]int
	colSum []int // colSum[i] = Σ_r f[r][i]
	oppSum []int // oppSum[j] = Σ_r f[r][T[j][r]]

	energy int
	best   int

	rng      *rand.Rand
	temp     float64
	cool     float64
	minTemp  float64
	zeroProb float64
	scale    float64

	steps  int64 // proposals made so far
	budget int64

	ctx      context.Context
	progress ProgressFunc
	started  time.Time

	ones  []int // scratch: currently-1 columns of the picked row
	zeros []int // scratch: currently-0 columns of the picked row
}

// newSAEngine builds the engine and rolls the random initial coloring.
func newSAEngine(ctx context.Context, md *pairing.Model, opts Options) *saEngine {
	// Resolve the effective step budget before deriving the cooling factor:
	// the schedule must span the steps the run will actually take.
	if opts.Steps == 0 {
		opts.Steps = DefaultSteps
	}

	n := md.N()
	e := &saEngine{
		n:        n,
		m:        md.M(),
		md:       md,
		f:        make([][]int, n),
		colSum:   make([]int, n),
		oppSum:   make([]int, n),
		rng:      rngFromSeed(opts.Seed),
		temp:     opts.InitialTemp,
		cool:     coolingFactor(opts),
		minTemp:  opts.MinTemp,
		zeroProb: opts.ZeroDeltaProb,
		scale:    opts.AcceptScale,
		budget:   opts.Steps,
		ctx:      ctx,
		progress: opts.Progress,
		started:  time.Now(),
		ones:     make([]int, 0, n),
		zeros:    make([]int, 0, n),
	}

	// Row-randomized init: m ones then n-m zeros, shuffled in place.
	var r, i int
	for r = 0; r < n; r++ {
		row := make([]int, n)
		for i = 0; i < e.m; i++ {
			row[i] = 1
		}
		shuffleIntsInPlace(row, e.rng)
		e.f[r] = row
	}

	// Counters and baseline energy, computed once; moves keep them exact.
	var j int
	for r = 0; r < n; r++ {
		for i = 0; i < n; i++ {
			e.colSum[i] += e.f[r][i]
		}
	}
	for j = 0; j < n; j++ {
		for r = 0; r < n; r++ {
			e.oppSum[j] += e.f[r][e.md.Carrier(j, r)]
		}
	}
	e.energy = e.recomputeEnergy()
	e.best = e.energy

	return e
}

// recomputeEnergy derives the objective from scratch; the run loop never
// calls it after init (the tests do, to detect incremental drift).
func (e *saEngine) recomputeEnergy() int {
	var (
		i, d, sum int
	)
	for i = 0; i < e.n; i++ {
		d = e.colSum[i] - e.m
		sum += d * d
		d = e.oppSum[i] - e.m
		sum += d * d
	}

	return sum
}

// moveOnce makes one proposal and possibly applies it. Returns true once
// energy reached zero. The apply-and-update sequence is atomic with respect
// to cancellation: callers only check the context between calls.
func (e *saEngine) moveOnce() bool {
	r := e.rng.Intn(e.n)

	// Collect the row's ones and zeros (O(n); the row always holds exactly
	// m ones by construction).
	e.ones = e.ones[:0]
	e.zeros = e.zeros[:0]
	var i int
	for i = 0; i < e.n; i++ {
		if e.f[r][i] == 1 {
			e.ones = append(e.ones, i)
		} else {
			e.zeros = append(e.zeros, i)
		}
	}
	i1 := e.ones[e.rng.Intn(len(e.ones))]
	i0 := e.zeros[e.rng.Intn(len(e.zeros))]

	// Affected opponents; distinct because row r of the pairing is a
	// permutation and i1 != i0.
	j1 := e.md.Opponent(r, i1)
	j0 := e.md.Opponent(r, i0)

	// O(1) delta: (x±1-m)² - (x-m)² = ±2(x-m)+1 per touched counter.
	delta := -2*(e.colSum[i1]-e.m) + 1 +
		2*(e.colSum[i0]-e.m) + 1 +
		-2*(e.oppSum[j1]-e.m) + 1 +
		2*(e.oppSum[j0]-e.m) + 1

	var accept bool
	switch {
	case delta < 0:
		accept = true
	case delta == 0:
		accept = e.rng.Float64() < e.zeroProb
	default:
		accept = e.temp > e.minTemp &&
			e.rng.Float64() < e.scale*math.Exp(-float64(delta)/e.temp)
	}

	if accept {
		e.f[r][i1] = 0
		e.f[r][i0] = 1
		e.colSum[i1]--
		e.colSum[i0]++
		e.oppSum[j1]--
		e.oppSum[j0]++
		e.energy += delta
		if e.energy < e.best {
			e.best = e.energy
		}
	}

	e.temp *= e.cool

	return e.energy == 0
}

// run drives proposals until convergence, budget exhaustion or cancellation.
func (e *saEngine) run() (Outcome, error) {
	if e.energy == 0 {
		return Converged, nil // lucky initial roll
	}

	for e.steps = 0; e.steps < e.budget; e.steps++ {
		if e.steps&cancelMask == 0 && e.ctx != nil && e.ctx.Err() != nil {
			return 0, e.ctx.Err()
		}
		if e.progress != nil && e.steps&progressMask == 0 && e.steps > 0 {
			e.progress(ProgressEvent{
				Steps:      e.steps,
				Energy:     e.energy,
				BestEnergy: e.best,
				Elapsed:    time.Since(e.started),
			})
		}

		if e.moveOnce() {
			e.steps++

			return Converged, nil
		}
	}

	return Exhausted, nil
}

// coloring returns the final matrix (only meaningful on convergence).
func (e *saEngine) coloring() [][]int {
	out := make([][]int, e.n)

	var r int
	for r = 0; r < e.n; r++ {
		out[r] = make([]int, e.n)
		copy(out[r], e.f[r])
	}

	return out
}

// Anneal runs one seeded local-search attempt on md.
//
// Outcomes:
//   - Converged — Result.Coloring holds a feasible F (energy reached zero).
//   - Exhausted — step budget spent with energy > 0 (soft; the restart
//     controller typically spawns a new attempt with a fresh seed).
//
// Errors: validation sentinels, or ctx.Err() on cancellation (the partial
// attempt is discarded).
func Anneal(ctx context.Context, md *pairing.Model, opts Options) (Result, error) {
	if err := validateModel(md); err != nil {
		return Result{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	e := newSAEngine(ctx, md, opts)

	outcome, err := e.run()
	if err != nil {
		return Result{Steps: e.steps}, err
	}

	res := Result{
		Outcome:    outcome,
		Steps:      e.steps,
		Energy:     e.energy,
		BestEnergy: e.best,
	}
	if outcome == Converged {
		res.Coloring = e.coloring()
	}

	return res, nil
}
