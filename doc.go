// Package tournament is a toolkit for constructing balanced bipartite
// round-robin tournament colorings: given n rounds and two player pools of
// size n paired by a Latin square L, it searches for a binary "who moves
// first" matrix F whose per-round, per-player and per-opponent first/second
// counts all equal m = n/2.
//
// 🚀 What is inside?
//
//	A deterministic, reproducible library that brings together:
//		• Pairing constructions: cyclic shifts, shift+swap, dihedral Cayley
//		  tables, mixed shift/reflection, seeded random Latin squares
//		• Constraint model: inverse rounds and opponent transversal tables
//		• Exact search: row-by-row backtracking with forced/forbidden
//		  propagation and lazy completion enumeration
//		• Stochastic search: simulated annealing over row-preserving swaps
//		  with O(1) incremental energy deltas
//		• Restart orchestration: parallel attempts over (pairing, seed) grids
//		  with cooperative cancellation
//		• Independent verification: re-derives every balance family from
//		  scratch so solver defects cannot hide
//
// ✨ Why choose this library?
//
//   - Reproducible – every random choice flows from an injected seed
//   - Rock-solid guarantees – strict sentinel errors, exact apply/undo
//   - Pure Go – no cgo, no external solvers
//   - Observable – progress hooks that never influence the search
//
// Under the hood, everything is organized under four subpackages:
//
//	pairing/  — Latin-square constructions, validation & the constraint model
//	coloring/ — backtracking + annealing engines & the restart controller
//	verify/   — independent result verification
//	schedule/ — round-by-round schedule rendering and parsing
//
// Quick ASCII example (n=4, m=2; one feasible round):
//
//	round 1:  A1-B1  A2-B2  B3-A3  B4-A4
//
//	two A-players move first, two B-players move first.
//
// Dive into the package docs for contracts, complexity notes and runnable
// examples.
package tournament
