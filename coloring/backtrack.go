// Package coloring - exact backtracking engine.
//
// Backtrack builds the coloring matrix F row by row (r = 0..n-1). Before
// branching on a row it classifies every column index against the running
// column and opponent counters:
//
//   - forbidden: the counter already reached m; no further first-assignment.
//   - prune:     count + remain + 1 < m; the target is unreachable even if
//     every remaining row (this one included) assigns the index.
//   - forced:    count + remain < m; the index must be assigned in this row
//     or the target becomes unreachable.
//
// The same three rules run against the opponent counters through the
// transversal table (the index they constrain is T[j][r]). The branch dies
// when a column is both forced and forbidden, when |forced| > m, or when
// fewer than m columns remain non-forbidden. Otherwise the engine lazily
// enumerates every way to extend the forced set to exactly m columns with
// picks from the free set, applies each completion to both counters, checks
// reachability, and recurses. Apply and undo are exact inverses.
//
// Rationale (succinct):
//  1. Per-depth scratch frames are allocated once per attempt; the hot loop
//     never allocates ("arena-style" per-attempt buffers).
//  2. Completions come from an in-place lexicographic combination stepper,
//     never a materialized subset list, so memory stays O(n²) and pruning
//     can abort mid-enumeration.
//  3. Node budget is checked every node (one compare); wall clock and
//     cancellation are checked sparsely (every 1024 nodes) to keep the hot
//     path free of syscalls. Cancellation is only observed between
//     completions, never mid-update.
//
// Determinism: identical pairing ⇒ identical node count and outcome; the
// engine consults no randomness and iterates indices in ascending order.
//
// Complexity: worst case exponential in n (exact search); per node O(n)
// classification + O(n) feasibility check per completion.
package coloring

import (
	"context"
	"time"

	"github.com/tesolchina/math-tournament/pairing"
)

// btStatus is the internal verdict of one search branch.
type btStatus int

const (
	btDead    btStatus = iota // branch exhausted; siblings may still succeed
	btFound                   // feasible coloring committed in e.rows
	btStopped                 // cutoff or cancellation; unwind immediately
)

// btFrame carries the per-depth scratch buffers of one row decision.
type btFrame struct {
	forced []bool // column must be assigned in this row
	forbid []bool // column may not be assigned in this row
	free   []int  // non-forced, non-forbidden columns (ascending)
	chosen []int  // forced prefix + current completion (exactly m when applied)
	idx    []int  // combination cursor into free
}

// btEngine owns all state of one backtracking attempt. A dedicated engine
// struct (instead of closures) keeps hot-path state predictable and lets the
// test suite exercise apply/undo exactness directly.
type btEngine struct {
	n, m int
	md   *pairing.Model

	col []int // col[i]: first-assignments of player i so far
	opp []int // opp[j]: transversal hits of opponent j so far

	frames []btFrame
	rows   [][]int // committed chosen-column sets per row

	nodes  int64
	budget int64 // 0 ⇒ unlimited

	useDeadline bool
	deadline    time.Time
	started     time.Time

	ctx      context.Context
	progress ProgressFunc

	cut Outcome // Timeout once a budget/deadline cutoff fired; 0 otherwise
}

// newBTEngine sizes every buffer once; nothing grows afterwards.
func newBTEngine(ctx context.Context, md *pairing.Model, opts Options) *btEngine {
	n := md.N()
	e := &btEngine{
		n:        n,
		m:        md.M(),
		md:       md,
		col:      make([]int, n),
		opp:      make([]int, n),
		frames:   make([]btFrame, n),
		rows:     make([][]int, n),
		budget:   opts.NodeBudget,
		started:  time.Now(),
		ctx:      ctx,
		progress: opts.Progress,
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = e.started.Add(opts.TimeLimit)
	}

	var r int
	for r = 0; r < n; r++ {
		e.frames[r] = btFrame{
			forced: make([]bool, n),
			forbid: make([]bool, n),
			free:   make([]int, 0, n),
			chosen: make([]int, n),
			idx:    make([]int, e.m),
		}
		e.rows[r] = make([]int, e.m)
	}

	return e
}

// checkpoint performs budget, deadline, cancellation and progress duties at
// a branch boundary. Returns true when the search must stop unwinding.
func (e *btEngine) checkpoint(r int) bool {
	if e.budget > 0 && e.nodes > e.budget {
		e.cut = Timeout

		return true
	}
	if e.nodes&cancelMask == 0 {
		if e.ctx != nil && e.ctx.Err() != nil {
			return true // cooperative cancellation; e.cut stays zero
		}
		if e.useDeadline && time.Now().After(e.deadline) {
			e.cut = Timeout

			return true
		}
	}
	if e.progress != nil && e.nodes&progressMask == 0 {
		e.progress(ProgressEvent{Nodes: e.nodes, Row: r, Elapsed: time.Since(e.started)})
	}

	return false
}

// apply adds one row completion to both counter families.
// For a chosen column i in round r, the opponent counter it feeds is
// j = L[r][i] (equivalently: the unique j with T[j][r] == i).
func (e *btEngine) apply(r int, chosen []int) {
	var i int
	for _, i = range chosen {
		e.col[i]++
		e.opp[e.md.Opponent(r, i)]++
	}
}

// undo is the exact inverse of apply.
func (e *btEngine) undo(r int, chosen []int) {
	var i int
	for _, i = range chosen {
		e.col[i]--
		e.opp[e.md.Opponent(r, i)]--
	}
}

// feasibleAfter reports whether every counter is still within [m-remain, m]
// after a completion was applied, with remain rows left below this one.
func (e *btEngine) feasibleAfter(remain int) bool {
	var i int
	for i = 0; i < e.n; i++ {
		if e.col[i] > e.m || e.col[i]+remain < e.m {
			return false
		}
		if e.opp[i] > e.m || e.opp[i]+remain < e.m {
			return false
		}
	}

	return true
}

// dfs explores the decision for row r. Counters reflect rows [0, r).
func (e *btEngine) dfs(r int) btStatus {
	e.nodes++
	if e.checkpoint(r) {
		return btStopped
	}

	if r == e.n {
		// All rows placed; counters must all have landed on m.
		var i int
		for i = 0; i < e.n; i++ {
			if e.col[i] != e.m || e.opp[i] != e.m {
				return btDead
			}
		}

		return btFound
	}

	remain := e.n - r - 1 // rows after this one
	fr := &e.frames[r]
	clearBools(fr.forced)
	clearBools(fr.forbid)

	// Column rules: forbidden / prune / forced.
	var i, j, bi int
	for i = 0; i < e.n; i++ {
		switch {
		case e.col[i] >= e.m:
			fr.forbid[i] = true
		case e.col[i]+remain+1 < e.m:
			return btDead // unreachable even if every remaining row assigns i
		case e.col[i]+remain < e.m:
			fr.forced[i] = true
		}
	}

	// Opponent rules through the transversal: T[j][r] is the column index
	// whose first-status feeds opponent j in this round.
	for j = 0; j < e.n; j++ {
		bi = e.md.Carrier(j, r)
		switch {
		case e.opp[j] >= e.m:
			fr.forbid[bi] = true
		case e.opp[j]+remain+1 < e.m:
			return btDead
		case e.opp[j]+remain < e.m:
			fr.forced[bi] = true
		}
	}

	// Union conflicts and cardinality pruning.
	var forcedCount, allowed int
	fr.free = fr.free[:0]
	for i = 0; i < e.n; i++ {
		if fr.forced[i] && fr.forbid[i] {
			return btDead
		}
		if fr.forced[i] {
			fr.chosen[forcedCount] = i
			forcedCount++
		}
		if !fr.forbid[i] {
			allowed++
			if !fr.forced[i] {
				fr.free = append(fr.free, i)
			}
		}
	}
	if forcedCount > e.m || allowed < e.m {
		return btDead
	}
	need := e.m - forcedCount
	if need > len(fr.free) {
		return btDead
	}

	// Lazy enumeration of completions: forced prefix + (free choose need).
	idx := fr.idx[:need]
	for i = 0; i < need; i++ {
		idx[i] = i
	}
	chosen := fr.chosen[:e.m]

	for {
		for i = 0; i < need; i++ {
			chosen[forcedCount+i] = fr.free[idx[i]]
		}

		e.apply(r, chosen)
		if e.feasibleAfter(remain) {
			switch st := e.dfs(r + 1); st {
			case btFound:
				copy(e.rows[r], chosen)

				return btFound
			case btStopped:
				e.undo(r, chosen)

				return btStopped
			}
		}
		e.undo(r, chosen)

		if !nextCombination(idx, len(fr.free)) {
			break
		}
	}

	return btDead
}

// clearBools resets a reusable marker slice.
func clearBools(b []bool) {
	for i := range b {
		b[i] = false
	}
}

// nextCombination advances idx to the next lexicographic k-combination of
// [0,n); it returns false once the enumeration is complete. The k == 0 case
// has exactly one (empty) combination, emitted by the caller before the
// first advance.
func nextCombination(idx []int, n int) bool {
	need := len(idx)
	if need == 0 {
		return false
	}

	k := need - 1
	for k >= 0 && idx[k] == n-need+k {
		k--
	}
	if k < 0 {
		return false
	}
	idx[k]++

	var t int
	for t = k + 1; t < need; t++ {
		idx[t] = idx[t-1] + 1
	}

	return true
}

// coloringFromRows materializes F from the committed per-row column sets.
func (e *btEngine) coloringFromRows() [][]int {
	f := make([][]int, e.n)

	var r, i int
	for r = 0; r < e.n; r++ {
		f[r] = make([]int, e.n)
		for _, i = range e.rows[r] {
			f[r][i] = 1
		}
	}

	return f
}

// Backtrack runs the exact engine on md.
//
// Outcomes:
//   - Solved  — Result.Coloring holds a feasible F.
//   - Unsat   — search space exhausted for this pairing (soft; not evidence
//     of infeasibility for other pairings).
//   - Timeout — node budget or wall-clock cutoff fired (soft; distinct from
//     Unsat, retry with a larger budget may still decide).
//
// Errors: validation sentinels, or ctx.Err() when the context was canceled
// mid-search (the partial attempt is discarded).
//
// Determinism: repeated calls with the same pairing yield identical node
// counts and outcomes.
func Backtrack(ctx context.Context, md *pairing.Model, opts Options) (Result, error) {
	if err := validateModel(md); err != nil {
		return Result{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	e := newBTEngine(ctx, md, opts)

	switch st := e.dfs(0); {
	case st == btFound:
		return Result{Outcome: Solved, Coloring: e.coloringFromRows(), Nodes: e.nodes}, nil
	case st == btStopped && e.cut == Timeout:
		return Result{Outcome: Timeout, Nodes: e.nodes}, nil
	case st == btStopped:
		return Result{Nodes: e.nodes}, ctx.Err()
	default:
		return Result{Outcome: Unsat, Nodes: e.nodes}, nil
	}
}
