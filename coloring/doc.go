// Package coloring implements the two complementary search engines that
// look for a balanced "who moves first" matrix F over a fixed Latin-square
// pairing, plus the restart controller that orchestrates them.
//
// Problem shape:
//
//	Given an n×n pairing model (see pairing.NewModel) and m = n/2, find a
//	binary n×n matrix F whose row sums, column sums and opponent-transversal
//	sums are all exactly m. Zero energy ⇔ feasible coloring.
//
// Engines:
//
//   - Backtrack — exact depth-first search building F row by row with
//     forced/forbidden constraint propagation, bound-based pruning and lazy
//     enumeration of row completions. Deterministic: identical pairing ⇒
//     identical node count and outcome. Terminal outcomes: Solved, Unsat,
//     Timeout (node/time cutoff).
//
//   - Anneal — simulated annealing over row-preserving swap moves with O(1)
//     incremental energy deltas. Stochastic but fully reproducible from the
//     injected seed. Terminal outcomes: Converged, Exhausted (step budget).
//
//   - Controller — drives N independent attempts over a (pairing, seed)
//     grid, possibly in parallel; the first success cancels the rest at
//     their next move/branch boundary. Terminal outcome after exhausting
//     every configured combination: Infeasible.
//
// Concurrency model:
//
//	Attempts share no mutable state; each owns private counters sized once
//	at start. Cancellation is observed cooperatively at move/branch
//	boundaries, never mid-update, so an interrupted attempt leaves no
//	half-applied move behind. Within one attempt, search is strictly
//	sequential.
//
// Determinism & observability:
//
//	No ambient entropy: every random choice flows from Options.Seed through
//	the rng helpers in rng.go. Progress hooks are purely observational and
//	must never influence search outcome or ordering.
//
// An engine never returns a partially constructed coloring: a Result either
// carries a fully counter-consistent F (independently checkable with the
// verify package) or an explicit negative outcome.
package coloring
