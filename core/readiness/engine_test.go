package readiness

import (
	"testing"

	"veristack/core/orchestration"
	"veristack/core/planning"
)

func sealedIntent(risk planning.PlanRiskLevel) *orchestration.OrchestrationIntent {
	return &orchestration.OrchestrationIntent{
		State: orchestration.StateSealed,
		ExecutionPlan: planning.ExecutionPlan{
			PlanID: "PLAN-1",
			Steps:  []planning.ActionPlanStep{{StepID: "s1", ActionType: planning.ActionClick, RiskLevel: risk}},
		},
		EvidenceRequirements: []string{"e1"},
	}
}

func readyContext(risk planning.PlanRiskLevel, humanPresent bool) ReadinessContext {
	return ReadinessContext{
		OrchestrationIntent:        sealedIntent(risk),
		CapabilityResultAccepted:   true,
		SandboxPolicyAllows:        true,
		NativePolicyAccepts:        true,
		EvidenceVerificationPassed: true,
		HumanPresent:               humanPresent,
	}
}

func TestDecideReadinessBlocksNilIntent(t *testing.T) {
	ctx := readyContext(planning.RiskLow, false)
	ctx.OrchestrationIntent = nil
	result := DecideReadiness(ctx)
	if result.Decision != Block || result.State != NotReady {
		t.Fatalf("expected BLOCK/NOT_READY, got %s/%s", result.Decision, result.State)
	}
}

func TestDecideReadinessBlocksOnEachFalseFlag(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ReadinessContext)
	}{
		{"capability not accepted", func(c *ReadinessContext) { c.CapabilityResultAccepted = false }},
		{"sandbox disallows", func(c *ReadinessContext) { c.SandboxPolicyAllows = false }},
		{"native rejects", func(c *ReadinessContext) { c.NativePolicyAccepts = false }},
		{"evidence unverified", func(c *ReadinessContext) { c.EvidenceVerificationPassed = false }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := readyContext(planning.RiskLow, false)
			tc.mutate(&ctx)
			result := DecideReadiness(ctx)
			if result.Decision != Block {
				t.Fatalf("expected BLOCK, got %s", result.Decision)
			}
		})
	}
}

func TestDecideReadinessBlocksWhenIntentNotSealed(t *testing.T) {
	ctx := readyContext(planning.RiskLow, false)
	ctx.OrchestrationIntent.State = orchestration.StateDraft
	result := DecideReadiness(ctx)
	if result.Decision != Block {
		t.Fatalf("expected BLOCK, got %s", result.Decision)
	}
}

func TestDecideReadinessBlocksHighRiskWithoutHuman(t *testing.T) {
	ctx := readyContext(planning.RiskHigh, false)
	result := DecideReadiness(ctx)
	if result.Decision != Block {
		t.Fatalf("expected BLOCK, got %s", result.Decision)
	}
}

func TestDecideReadinessAllowsHighRiskWithHuman(t *testing.T) {
	ctx := readyContext(planning.RiskHigh, true)
	result := DecideReadiness(ctx)
	if result.Decision != Allow || result.State != Ready {
		t.Fatalf("expected ALLOW/READY, got %s/%s", result.Decision, result.State)
	}
}

func TestDecideReadinessAllowsLowRiskWithoutHuman(t *testing.T) {
	ctx := readyContext(planning.RiskLow, false)
	result := DecideReadiness(ctx)
	if result.Decision != Allow || result.State != Ready {
		t.Fatalf("expected ALLOW/READY, got %s/%s", result.Decision, result.State)
	}
}
