package orchestration

import "veristack/core/planning"

// BindPlanToIntent lifts plan into a DRAFT OrchestrationIntent. Non-nil
// only when validationResult.Decision is ACCEPT — a plan that was
// REJECTed or REQUIRES_HUMAN never reaches orchestration.
func BindPlanToIntent(
	plan planning.ExecutionPlan,
	validationResult planning.PlanValidationResult,
	capabilities map[planning.ActionType]bool,
	evidenceRequirements []string,
	intentID, createdAt string,
) *OrchestrationIntent {
	if validationResult.Decision != planning.PlanAccept {
		return nil
	}

	return &OrchestrationIntent{
		IntentID:             intentID,
		ExecutionPlan:        plan,
		CapabilitySnapshot:   capabilities,
		EvidenceRequirements: evidenceRequirements,
		CreatedAt:            createdAt,
		State:                StateDraft,
	}
}

// SealOrchestrationIntent advances intent along its one-way state
// machine: DRAFT becomes SEALED; SEALED passes through unchanged; a
// REJECTED or nil intent yields nil — there is no path back to DRAFT.
func SealOrchestrationIntent(intent *OrchestrationIntent) *OrchestrationIntent {
	if intent == nil {
		return nil
	}
	switch intent.State {
	case StateDraft:
		sealed := *intent
		sealed.State = StateSealed
		return &sealed
	case StateSealed:
		return intent
	case StateRejected:
		return nil
	default:
		return nil
	}
}

// DecideOrchestration runs the orchestration acceptance decision table,
// first match wins:
//
//  1. intent nil                         → REJECT
//  2. intent.state != SEALED             → REJECT
//  3. evidence_requirements empty        → REJECT
//  4. max risk = HIGH, no human present  → REJECT
//  5. otherwise                          → ACCEPT
func DecideOrchestration(intent *OrchestrationIntent, ctx OrchestrationContext) OrchestrationResult {
	if intent == nil {
		return OrchestrationResult{Decision: OrchestrationReject, Reason: "intent is None"}
	}
	if intent.State != StateSealed {
		return OrchestrationResult{Decision: OrchestrationReject, Reason: "intent is not SEALED"}
	}
	if len(intent.EvidenceRequirements) == 0 {
		return OrchestrationResult{Decision: OrchestrationReject, Reason: "evidence requirements are empty"}
	}

	maxRisk := planning.ValidatePlanRisk(intent.ExecutionPlan)
	if maxRisk == planning.RiskHigh && !ctx.HumanPresent {
		return OrchestrationResult{Decision: OrchestrationReject, Reason: "HIGH risk requires a present human"}
	}

	return OrchestrationResult{Decision: OrchestrationAccept, Reason: "sealed, evidenced, and within risk policy"}
}
