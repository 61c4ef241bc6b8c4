package planning

import "testing"

func stepsPlan(steps ...ActionPlanStep) ExecutionPlan {
	return ExecutionPlan{PlanID: "PLAN-1", Steps: steps}
}

func TestValidatePlanStructureRejectsEmptyID(t *testing.T) {
	plan := ExecutionPlan{PlanID: "", Steps: []ActionPlanStep{{StepID: "s1"}}}
	if ValidatePlanStructure(plan) {
		t.Fatalf("expected rejection of empty plan_id")
	}
}

func TestValidatePlanStructureRejectsNoSteps(t *testing.T) {
	plan := ExecutionPlan{PlanID: "PLAN-1"}
	if ValidatePlanStructure(plan) {
		t.Fatalf("expected rejection of plan with no steps")
	}
}

func TestValidatePlanStructureRejectsDuplicateStepIDs(t *testing.T) {
	plan := stepsPlan(
		ActionPlanStep{StepID: "s1", ActionType: ActionClick},
		ActionPlanStep{StepID: "s1", ActionType: ActionNavigate},
	)
	if ValidatePlanStructure(plan) {
		t.Fatalf("expected rejection of duplicate step_id")
	}
}

func TestValidatePlanStructureAcceptsWellFormedPlan(t *testing.T) {
	plan := stepsPlan(
		ActionPlanStep{StepID: "s1", ActionType: ActionClick},
		ActionPlanStep{StepID: "s2", ActionType: ActionNavigate},
	)
	if !ValidatePlanStructure(plan) {
		t.Fatalf("expected well-formed plan to validate")
	}
}

func TestValidatePlanCapabilitiesRejectsForbiddenAction(t *testing.T) {
	plan := stepsPlan(ActionPlanStep{StepID: "s1", ActionType: ActionUpload})
	allowed := map[ActionType]bool{ActionClick: true, ActionNavigate: true}
	if ValidatePlanCapabilities(plan, allowed) {
		t.Fatalf("expected rejection of UPLOAD when not in capability set")
	}
}

func TestValidatePlanCapabilitiesEmptyPlanPasses(t *testing.T) {
	if !ValidatePlanCapabilities(ExecutionPlan{}, map[ActionType]bool{}) {
		t.Fatalf("expected empty plan to trivially pass capability check")
	}
}

func TestValidatePlanRiskTakesMaximum(t *testing.T) {
	plan := stepsPlan(
		ActionPlanStep{StepID: "s1", RiskLevel: RiskLow},
		ActionPlanStep{StepID: "s2", RiskLevel: RiskHigh},
		ActionPlanStep{StepID: "s3", RiskLevel: RiskMedium},
	)
	if got := ValidatePlanRisk(plan); got != RiskHigh {
		t.Fatalf("expected HIGH, got %s", got)
	}
}

func TestValidatePlanRiskEmptyPlanIsLow(t *testing.T) {
	if got := ValidatePlanRisk(ExecutionPlan{}); got != RiskLow {
		t.Fatalf("expected LOW for empty plan, got %s", got)
	}
}

func TestDecidePlanAcceptanceInvalidStructureRejects(t *testing.T) {
	ctx := PlanValidationContext{Plan: ExecutionPlan{}, Capabilities: map[ActionType]bool{}}
	result := DecidePlanAcceptance(ctx)
	if result.Decision != PlanReject {
		t.Fatalf("expected REJECT, got %s", result.Decision)
	}
}

func TestDecidePlanAcceptanceForbiddenActionRejects(t *testing.T) {
	plan := stepsPlan(ActionPlanStep{StepID: "s1", ActionType: ActionUpload, RiskLevel: RiskLow})
	ctx := PlanValidationContext{Plan: plan, Capabilities: map[ActionType]bool{ActionClick: true}}
	result := DecidePlanAcceptance(ctx)
	if result.Decision != PlanReject {
		t.Fatalf("expected REJECT, got %s", result.Decision)
	}
}

func TestDecidePlanAcceptanceCriticalAlwaysRejectsEvenWithHuman(t *testing.T) {
	plan := stepsPlan(ActionPlanStep{StepID: "s1", ActionType: ActionClick, RiskLevel: RiskCritical})
	ctx := PlanValidationContext{
		Plan:         plan,
		Capabilities: map[ActionType]bool{ActionClick: true},
		HumanPresent: true,
	}
	result := DecidePlanAcceptance(ctx)
	if result.Decision != PlanReject {
		t.Fatalf("expected REJECT for CRITICAL risk even with human present, got %s", result.Decision)
	}
}

func TestDecidePlanAcceptanceHighRiskRequiresHumanWhenAbsent(t *testing.T) {
	plan := stepsPlan(ActionPlanStep{StepID: "s1", ActionType: ActionClick, RiskLevel: RiskHigh})
	ctx := PlanValidationContext{
		Plan:         plan,
		Capabilities: map[ActionType]bool{ActionClick: true},
		HumanPresent: false,
	}
	result := DecidePlanAcceptance(ctx)
	if result.Decision != PlanRequiresHuman {
		t.Fatalf("expected REQUIRES_HUMAN, got %s", result.Decision)
	}
}

func TestDecidePlanAcceptanceHighRiskAcceptsWithHuman(t *testing.T) {
	plan := stepsPlan(ActionPlanStep{StepID: "s1", ActionType: ActionClick, RiskLevel: RiskHigh})
	ctx := PlanValidationContext{
		Plan:         plan,
		Capabilities: map[ActionType]bool{ActionClick: true},
		HumanPresent: true,
	}
	result := DecidePlanAcceptance(ctx)
	if result.Decision != PlanAccept {
		t.Fatalf("expected ACCEPT, got %s", result.Decision)
	}
}

func TestDecidePlanAcceptanceMediumOrBelowAccepts(t *testing.T) {
	plan := stepsPlan(ActionPlanStep{StepID: "s1", ActionType: ActionClick, RiskLevel: RiskMedium})
	ctx := PlanValidationContext{
		Plan:         plan,
		Capabilities: map[ActionType]bool{ActionClick: true},
		HumanPresent: false,
	}
	result := DecidePlanAcceptance(ctx)
	if result.Decision != PlanAccept {
		t.Fatalf("expected ACCEPT, got %s", result.Decision)
	}
}
