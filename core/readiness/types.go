package readiness

import "veristack/core/orchestration"

// -----------------------------------------------------------------------------
// Readiness — THE LAST AGGREGATE GATE
//
// Readiness never computes a new fact; it only aggregates booleans other
// stages already established plus the sealed OrchestrationIntent itself.
// -----------------------------------------------------------------------------

// Decision is the closed two-member decision decide_readiness returns.
type Decision string

const (
	Allow Decision = "ALLOW"
	Block Decision = "BLOCK"
)

// ExecutionReadinessState is the closed two-member state that accompanies
// a Decision.
type ExecutionReadinessState string

const (
	Ready    ExecutionReadinessState = "READY"
	NotReady ExecutionReadinessState = "NOT_READY"
)

// ReadinessContext carries the five independently-computed preconditions
// plus the sealed orchestration intent they gate.
type ReadinessContext struct {
	OrchestrationIntent        *orchestration.OrchestrationIntent
	CapabilityResultAccepted   bool
	SandboxPolicyAllows        bool
	NativePolicyAccepts        bool
	EvidenceVerificationPassed bool
	HumanPresent               bool
}

// ReadinessResult bundles the decision, the resulting state, and the
// reason that produced them.
type ReadinessResult struct {
	Decision Decision
	State    ExecutionReadinessState
	Reason   string
}
