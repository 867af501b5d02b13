// Package coloring - option and input validation shared by both engines.
//
// Deterministic, side-effect free, sentinel errors only. Pairing-level
// validation (the Latin-square contract) already happened in pairing.NewModel;
// here we only guard engine inputs and option consistency.
package coloring

import "github.com/tesolchina/math-tournament/pairing"

// validateModel guards the engine input contract: a non-nil model (the order
// contract itself is enforced by pairing.NewModel).
//
// Complexity: O(1).
func validateModel(md *pairing.Model) error {
	if md == nil {
		return ErrNilModel
	}

	return nil
}

// validateOptions checks internal consistency of Options without touching
// any model. Both engines call it; fields irrelevant to the calling engine
// are still validated so a single Options value stays coherent across a
// restart plan.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.NodeBudget < 0 || opts.TimeLimit < 0 || opts.Steps < 0 {
		return ErrBadBudget
	}
	if opts.InitialTemp <= 0 || opts.MinTemp < 0 {
		return ErrBadSchedule
	}
	// Cooling == 0 means "derive from Steps"; anything else must be a valid
	// multiplicative factor.
	if opts.Cooling != 0 && (opts.Cooling <= 0 || opts.Cooling > 1) {
		return ErrBadSchedule
	}
	if opts.ZeroDeltaProb < 0 || opts.ZeroDeltaProb > 1 {
		return ErrBadProbability
	}
	if opts.AcceptScale < 0 {
		return ErrBadProbability
	}

	return nil
}

// coolingFactor resolves the effective per-step cooling multiplier.
func coolingFactor(opts Options) float64 {
	if opts.Cooling != 0 {
		return opts.Cooling
	}
	if opts.Steps <= 0 {
		return 1
	}

	return 1 - defaultCoolingPull/float64(opts.Steps)
}
