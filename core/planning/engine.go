package planning

import "strings"

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

// ValidatePlanStructure rejects a plan with an empty plan_id, no steps, or
// duplicate step_ids.
func ValidatePlanStructure(plan ExecutionPlan) bool {
	if isBlank(plan.PlanID) {
		return false
	}
	if len(plan.Steps) == 0 {
		return false
	}
	seen := make(map[string]bool, len(plan.Steps))
	for _, step := range plan.Steps {
		if seen[step.StepID] {
			return false
		}
		seen[step.StepID] = true
	}
	return true
}

// ValidatePlanCapabilities rejects any step whose action_type is not a
// member of allowed. An empty plan trivially passes.
func ValidatePlanCapabilities(plan ExecutionPlan, allowed map[ActionType]bool) bool {
	for _, step := range plan.Steps {
		if !allowed[step.ActionType] {
			return false
		}
	}
	return true
}

// ValidatePlanRisk returns the maximum risk level across the plan's steps.
// An empty plan is LOW risk.
func ValidatePlanRisk(plan ExecutionPlan) PlanRiskLevel {
	max := RiskLow
	for _, step := range plan.Steps {
		if step.RiskLevel > max {
			max = step.RiskLevel
		}
	}
	return max
}

// DecidePlanAcceptance runs the plan acceptance decision table, first match
// wins:
//
//  1. structure invalid            → REJECT
//  2. any action outside capabilities → REJECT
//  3. max risk = CRITICAL          → REJECT, even with a human present
//  4. max risk = HIGH, no human    → REQUIRES_HUMAN
//  5. max risk = HIGH, with human  → ACCEPT
//  6. max risk <= MEDIUM           → ACCEPT
func DecidePlanAcceptance(ctx PlanValidationContext) PlanValidationResult {
	if !ValidatePlanStructure(ctx.Plan) {
		return PlanValidationResult{Decision: PlanReject, Reason: "plan structure invalid"}
	}

	if !ValidatePlanCapabilities(ctx.Plan, ctx.Capabilities) {
		for _, step := range ctx.Plan.Steps {
			if !ctx.Capabilities[step.ActionType] {
				return PlanValidationResult{
					Decision: PlanReject,
					Reason:   "action type not in capability set: " + string(step.ActionType),
				}
			}
		}
	}

	maxRisk := ValidatePlanRisk(ctx.Plan)

	if maxRisk == RiskCritical {
		return PlanValidationResult{Decision: PlanReject, Reason: "maximum risk level is CRITICAL"}
	}

	if maxRisk == RiskHigh {
		if !ctx.HumanPresent {
			return PlanValidationResult{Decision: PlanRequiresHuman, Reason: "HIGH risk requires human approval"}
		}
		return PlanValidationResult{Decision: PlanAccept, Reason: "HIGH risk approved by present human"}
	}

	return PlanValidationResult{Decision: PlanAccept, Reason: "maximum risk level at or below MEDIUM"}
}
