package readiness

import (
	"veristack/core/orchestration"
	"veristack/core/planning"
)

// DecideReadiness runs the readiness decision table, first match wins:
//
//  1. orchestration_intent nil              → BLOCK, "Intent is None"
//  2. capability_result_accepted false      → BLOCK
//  3. sandbox_policy_allows false           → BLOCK
//  4. native_policy_accepts false           → BLOCK
//  5. evidence_verification_passed false    → BLOCK
//  6. intent.state != SEALED                → BLOCK
//  7. max_risk(plan) = HIGH, no human       → BLOCK
//  8. otherwise                             → ALLOW
//
// A nil or missing precondition never defaults to ALLOW; every branch
// that isn't an explicit pass-through returns BLOCK / NOT_READY.
func DecideReadiness(ctx ReadinessContext) ReadinessResult {
	if ctx.OrchestrationIntent == nil {
		return ReadinessResult{Decision: Block, State: NotReady, Reason: "Intent is None"}
	}
	if !ctx.CapabilityResultAccepted {
		return ReadinessResult{Decision: Block, State: NotReady, Reason: "capability result not accepted"}
	}
	if !ctx.SandboxPolicyAllows {
		return ReadinessResult{Decision: Block, State: NotReady, Reason: "sandbox policy does not allow"}
	}
	if !ctx.NativePolicyAccepts {
		return ReadinessResult{Decision: Block, State: NotReady, Reason: "native policy does not accept"}
	}
	if !ctx.EvidenceVerificationPassed {
		return ReadinessResult{Decision: Block, State: NotReady, Reason: "evidence verification failed"}
	}
	if ctx.OrchestrationIntent.State != orchestration.StateSealed {
		return ReadinessResult{Decision: Block, State: NotReady, Reason: "orchestration intent is not SEALED"}
	}

	maxRisk := planning.ValidatePlanRisk(ctx.OrchestrationIntent.ExecutionPlan)
	if maxRisk == planning.RiskHigh && !ctx.HumanPresent {
		return ReadinessResult{Decision: Block, State: NotReady, Reason: "HIGH risk requires a present human"}
	}

	return ReadinessResult{Decision: Allow, State: Ready, Reason: "all preconditions satisfied"}
}
