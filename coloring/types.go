package coloring

import (
	"errors"
	"time"
)

// Sentinel errors returned by the engines and the restart controller.
var (
	// ErrNilModel indicates that a nil constraint model was passed to an engine.
	ErrNilModel = errors.New("coloring: constraint model is nil")

	// ErrBadBudget indicates a negative node budget, step budget or time limit.
	ErrBadBudget = errors.New("coloring: budgets must be non-negative")

	// ErrBadSchedule indicates an annealing schedule parameter out of range
	// (non-positive initial temperature, cooling factor outside (0,1], or a
	// negative temperature floor).
	ErrBadSchedule = errors.New("coloring: annealing schedule out of range")

	// ErrBadProbability indicates an acceptance probability parameter outside
	// [0,1] or a negative uphill scaling constant.
	ErrBadProbability = errors.New("coloring: acceptance parameters out of range")

	// ErrEmptyPlan indicates a restart plan with no candidate pairings.
	ErrEmptyPlan = errors.New("coloring: restart plan has no attempts")

	// ErrUnknownEngine indicates a restart plan naming an engine this package
	// does not provide.
	ErrUnknownEngine = errors.New("coloring: unknown engine")
)

// Outcome is the terminal state of an attempt (or of a whole restart run).
type Outcome int

const (
	// Solved: the backtracking engine found a feasible coloring.
	Solved Outcome = iota + 1

	// Converged: the local-search engine reached zero energy.
	Converged

	// Unsat: the backtracking engine exhausted the search space for this
	// pairing. Not evidence of infeasibility for other pairings.
	Unsat

	// Exhausted: the local-search engine spent its step budget with energy
	// still positive. A normal, non-fatal negative result for one attempt.
	Exhausted

	// Timeout: the backtracking engine hit its node or wall-clock cutoff.
	// Distinct from Unsat; a retry with a larger budget may still decide.
	Timeout

	// Infeasible: the restart controller exhausted every configured
	// (pairing, seed, budget) combination without a success.
	Infeasible
)

// Success reports whether the outcome carries a feasible coloring.
func (o Outcome) Success() bool { return o == Solved || o == Converged }

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Solved:
		return "Solved"
	case Converged:
		return "Converged"
	case Unsat:
		return "Unsat"
	case Exhausted:
		return "Exhausted"
	case Timeout:
		return "Timeout"
	case Infeasible:
		return "Infeasible"
	default:
		return "Unknown"
	}
}

// Result is the outcome of one attempt.
//
// Coloring is non-nil if and only if Outcome.Success(); it is then fully
// counter-consistent (row, column and transversal sums all equal m).
type Result struct {
	Outcome  Outcome
	Coloring [][]int

	// Diagnostics. Nodes counts decision-tree entries (backtracking);
	// Steps counts proposed moves (annealing); Energy and BestEnergy track
	// the annealing objective (Energy is 0 on Converged).
	Nodes      int64
	Steps      int64
	Energy     int
	BestEnergy int
}

// ProgressEvent is a purely observational snapshot emitted by an engine.
// Handlers must not mutate search state; the engines never read anything
// back from the hook.
type ProgressEvent struct {
	Nodes      int64
	Steps      int64
	Row        int
	Energy     int
	BestEnergy int
	Elapsed    time.Duration
}

// ProgressFunc receives periodic ProgressEvents when configured.
type ProgressFunc func(ProgressEvent)

// Default tunables. The annealing constants mirror the schedule the engines
// were tuned with; they are knobs, not physical laws (see Options).
const (
	// DefaultSteps is the per-attempt annealing step budget.
	DefaultSteps int64 = 200_000

	// DefaultInitialTemp is the starting temperature of the cooling schedule.
	DefaultInitialTemp = 3.0

	// DefaultMinTemp is the floor below which uphill moves are rejected outright.
	DefaultMinTemp = 0.001

	// DefaultZeroDeltaProb is the fixed exploration probability for
	// energy-neutral moves.
	DefaultZeroDeltaProb = 0.3

	// DefaultAcceptScale multiplies the uphill acceptance probability
	// exp(-delta/temp). Deliberately ad hoc and tunable.
	DefaultAcceptScale = 1.0

	// defaultCoolingPull is the numerator of the derived per-step cooling
	// factor 1 - defaultCoolingPull/Steps used when Options.Cooling == 0.
	defaultCoolingPull = 5.0

	// progressMask throttles progress hooks to every 8192 node/step events.
	progressMask = 1<<13 - 1

	// cancelMask throttles context checks to every 1024 node/step events.
	cancelMask = 1<<10 - 1
)

// Options configures both engines. Zero value is not usable directly; start
// from DefaultOptions and override.
//
// Backtracking knobs:
//
//	NodeBudget – maximum decision nodes (0 ⇒ unlimited).
//	TimeLimit  – soft wall-clock cutoff (0 ⇒ none); checked sparsely.
//
// Annealing knobs:
//
//	Steps         – step budget of one attempt (structurally bounds the run).
//	InitialTemp   – starting temperature.
//	Cooling       – per-step multiplicative cooling factor in (0,1];
//	                0 ⇒ derived as 1 - 5/Steps.
//	MinTemp       – uphill moves are rejected once temp ≤ MinTemp.
//	ZeroDeltaProb – acceptance probability for delta == 0 moves.
//	AcceptScale   – ad hoc multiplier on exp(-delta/temp) for delta > 0.
//	                Not a canonical Metropolis rule; keep it tunable.
//	Seed          – RNG seed (0 ⇒ fixed default stream; see rng.go).
//
// Shared:
//
//	Progress – optional observational hook, throttled internally.
type Options struct {
	NodeBudget int64
	TimeLimit  time.Duration

	Steps         int64
	InitialTemp   float64
	Cooling       float64
	MinTemp       float64
	ZeroDeltaProb float64
	AcceptScale   float64
	Seed          int64

	Progress ProgressFunc
}

// DefaultOptions returns the tuned defaults documented above.
func DefaultOptions() Options {
	return Options{
		Steps:         DefaultSteps,
		InitialTemp:   DefaultInitialTemp,
		MinTemp:       DefaultMinTemp,
		ZeroDeltaProb: DefaultZeroDeltaProb,
		AcceptScale:   DefaultAcceptScale,
	}
}
