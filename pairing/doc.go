// Package pairing provides Latin-square pairing matrices for balanced
// bipartite round-robin tournaments, plus the constraint model derived
// from them.
//
// A pairing matrix L is an n×n matrix over [0,n) where L[r][i] names the
// opponent of player i in round r. The Latin-square contract (every row and
// every column a permutation of [0,n)) guarantees that each (i,j) opponent
// pair occurs in exactly one round.
//
// The package has three responsibilities:
//
//  1. Constructions - Cyclic, ShiftSwap, Dihedral, MixedShiftReflect and
//     seeded Random generators. Any construction is acceptable to the search
//     engines as long as Validate accepts it; the engines do not care how L
//     was produced.
//  2. Validation - Validate enforces the Latin-square contract and fails
//     with ErrNotLatin before any search state is created.
//  3. Constraint model - NewModel derives, once per pairing, the inverse
//     rounds P (P[r][L[r][i]] = i) and the opponent transversal table T
//     (T[j][r] = P[r][j]). Both are immutable after construction and are
//     shared read-only by the exact and stochastic engines.
//
// Complexity:
//
//	– Validate:  O(n²) time, O(n) extra space.
//	– NewModel:  O(n²) time and space (P and T tables).
//	– Constructions: O(n²) time each; Random may retry a bounded number of
//	  partial row constructions before succeeding.
//
// Errors (sentinel):
//
//	– ErrOddOrder  if n < 2 or n is odd (the balance m = n/2 needs even n).
//	– ErrNotLatin  if a row or column is not a permutation of [0,n).
//	– ErrRandomExhausted if the random generator ran out of retries.
package pairing
