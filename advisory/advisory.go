// Package advisory computes a non-authoritative confidence score a caller
// may choose to surface alongside a DecisionRequest's evidence summary.
// It sits entirely outside the core decision path: nothing in
// core/decision, core/intent, core/authorization, core/planning,
// core/orchestration, core/readiness, or core/instructions imports this
// package, and every output carries a mandatory disclaimer so a caller
// can never mistake it for an authorization.
//
// Scoring is a deterministic heuristic, not a model call: advisory
// scoring never introduces network I/O or nondeterminism anywhere near
// the core, and is gated behind an explicit opt-in so it can never drift
// into being treated as load-bearing.
package advisory

import (
	"errors"
	"os"
)

// Disclaimer is the mandatory, verbatim text every AdvisoryOutput carries.
const Disclaimer = "Advisory output only. Human decision required."

// Input is the bounded, non-sensitive context the scorer may reason
// about. It deliberately excludes raw_data, executor_output, and any
// other field EvidenceSummary already hides.
type Input struct {
	ChainLength    int
	ExecutionState string
	RiskLevel      int // planning.PlanRiskLevel's integer scale, passed as a plain int to avoid a core import
	HumanPresent   bool
}

// Output is the advisory verdict. Never treat this as authorization —
// it is computed for display only.
type Output struct {
	ConfidenceScore float64
	Rationale       string
	Disclaimer      string
}

// Score computes a deterministic, explainable confidence score in [0,1].
// Returns an error (to be ignored by the caller, never propagated as a
// decision) unless ADVISORY_MODE=enabled — a hard-mode gate that prevents
// silent drift into treating advisory output as load-bearing.
func Score(input Input) (*Output, error) {
	if os.Getenv("ADVISORY_MODE") != "enabled" {
		return nil, errors.New("advisory scoring is not enabled")
	}

	score := baseScore(input)

	return &Output{
		ConfidenceScore: score,
		Rationale:       rationale(input, score),
		Disclaimer:      Disclaimer,
	}, nil
}

func baseScore(input Input) float64 {
	score := 0.5

	switch {
	case input.ChainLength >= 10:
		score += 0.2
	case input.ChainLength >= 3:
		score += 0.1
	}

	switch input.RiskLevel {
	case 1: // LOW
		score += 0.2
	case 2: // MEDIUM
		score += 0.0
	case 3: // HIGH
		score -= 0.2
	case 4: // CRITICAL
		score -= 0.4
	}

	if input.HumanPresent {
		score += 0.1
	}

	if input.ExecutionState == "HALTED" {
		score -= 0.3
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score
}

func rationale(input Input, score float64) string {
	if score >= 0.7 {
		return "long evidence chain, acceptable risk, favorable state"
	}
	if score >= 0.4 {
		return "mixed signals across chain length, risk, and state"
	}
	return "short evidence chain, elevated risk, or unfavorable state"
}
