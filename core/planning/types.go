package planning

// -----------------------------------------------------------------------------
// Planning — CLASSIFY, NEVER EXECUTE
//
// This package judges a proposed ExecutionPlan against a capability set and
// a risk policy. It produces a verdict; it never dispatches a step.
// -----------------------------------------------------------------------------

// ActionType is the closed seven-member enum an ActionPlanStep's
// action_type must belong to.
type ActionType string

const (
	ActionClick      ActionType = "CLICK"
	ActionInputText  ActionType = "TYPE"
	ActionNavigate   ActionType = "NAVIGATE"
	ActionWait       ActionType = "WAIT"
	ActionScreenshot ActionType = "SCREENSHOT"
	ActionScroll     ActionType = "SCROLL"
	ActionUpload     ActionType = "UPLOAD"
)

// PlanRiskLevel is the closed four-member, totally ordered risk enum.
type PlanRiskLevel int

const (
	RiskLow      PlanRiskLevel = 1
	RiskMedium   PlanRiskLevel = 2
	RiskHigh     PlanRiskLevel = 3
	RiskCritical PlanRiskLevel = 4
)

func (r PlanRiskLevel) String() string {
	switch r {
	case RiskLow:
		return "LOW"
	case RiskMedium:
		return "MEDIUM"
	case RiskHigh:
		return "HIGH"
	case RiskCritical:
		return "CRITICAL"
	default:
		return "CRITICAL" // unknown risk defaults to the most conservative classification
	}
}

// ActionPlanStep is one step of a proposed ExecutionPlan.
type ActionPlanStep struct {
	StepID     string
	ActionType ActionType
	Parameters map[string]any
	RiskLevel  PlanRiskLevel
}

// ExecutionPlan is an ordered sequence of ActionPlanStep. step_id
// uniqueness is an invariant enforced by ValidatePlanStructure, not by
// this type itself.
type ExecutionPlan struct {
	PlanID string
	Steps  []ActionPlanStep
}

// PlanValidationDecision is the closed three-member decision
// decide_plan_acceptance returns.
type PlanValidationDecision string

const (
	PlanAccept        PlanValidationDecision = "ACCEPT"
	PlanReject        PlanValidationDecision = "REJECT"
	PlanRequiresHuman PlanValidationDecision = "REQUIRES_HUMAN"
)

// PlanValidationResult bundles the decision with the reason that produced
// it, for audit and human-facing display.
type PlanValidationResult struct {
	Decision PlanValidationDecision
	Reason   string
}

// PlanValidationContext is the full set of inputs decide_plan_acceptance
// needs: the plan itself, the capability set it is checked against, and
// whether a human is present to approve HIGH-risk plans.
type PlanValidationContext struct {
	Plan            ExecutionPlan
	Capabilities    map[ActionType]bool
	HumanPresent    bool
}
