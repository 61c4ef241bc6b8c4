package orchestration

import "veristack/core/planning"

// -----------------------------------------------------------------------------
// Orchestration — LIFT AN ACCEPTED PLAN, SEAL IT, NEVER REOPEN IT
//
// An OrchestrationIntent only exists because a plan was ACCEPTed upstream.
// It moves through a one-way state machine: DRAFT -> SEALED or DRAFT ->
// REJECTED, both terminal.
// -----------------------------------------------------------------------------

// IntentState is the closed three-member state enum an OrchestrationIntent
// occupies.
type IntentState string

const (
	StateDraft    IntentState = "DRAFT"
	StateSealed   IntentState = "SEALED"
	StateRejected IntentState = "REJECTED"
)

// OrchestrationIntent lifts an accepted ExecutionPlan into a sealed
// intent to orchestrate.
type OrchestrationIntent struct {
	IntentID             string
	ExecutionPlan        planning.ExecutionPlan
	CapabilitySnapshot   map[planning.ActionType]bool
	EvidenceRequirements []string
	CreatedAt            string
	State                IntentState
}

// OrchestrationDecision is the closed two-member decision
// decide_orchestration returns.
type OrchestrationDecision string

const (
	OrchestrationAccept OrchestrationDecision = "ACCEPT"
	OrchestrationReject OrchestrationDecision = "REJECT"
)

// OrchestrationResult bundles the decision with the reason that produced
// it.
type OrchestrationResult struct {
	Decision OrchestrationDecision
	Reason   string
}

// OrchestrationContext carries the inputs decide_orchestration needs
// beyond the intent itself.
type OrchestrationContext struct {
	HumanPresent bool
}
