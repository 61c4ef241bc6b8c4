package instructions

import "veristack/core/planning"

// -----------------------------------------------------------------------------
// Instructions — THE LAST HOP BEFORE AN EXECUTOR EVER SEES ANYTHING
//
// This package never invents a step; it only translates a sealed
// OrchestrationIntent's plan into an ordered, sealed envelope, dropping
// anything the executor surface cannot express.
// -----------------------------------------------------------------------------

// InstructionType is the strict six-member subset of planning.ActionType
// an executor can actually carry out. UPLOAD is intentionally absent;
// steps of that action_type are silently dropped during synthesis.
type InstructionType string

const (
	InstructionNavigate   InstructionType = "NAVIGATE"
	InstructionClick      InstructionType = "CLICK"
	InstructionInputText  InstructionType = "TYPE"
	InstructionWait       InstructionType = "WAIT"
	InstructionScroll     InstructionType = "SCROLL"
	InstructionScreenshot InstructionType = "SCREENSHOT"
)

var actionToInstruction = map[planning.ActionType]InstructionType{
	planning.ActionNavigate:   InstructionNavigate,
	planning.ActionClick:      InstructionClick,
	planning.ActionInputText:  InstructionInputText,
	planning.ActionWait:       InstructionWait,
	planning.ActionScroll:     InstructionScroll,
	planning.ActionScreenshot: InstructionScreenshot,
}

// ExecutionInstruction is one executable instruction derived from an
// ActionPlanStep.
type ExecutionInstruction struct {
	InstructionID    string
	PlanStepID       string
	InstructionType  InstructionType
	Parameters       map[string]any
	EvidenceRequired []string
}

// EnvelopeStatus is the closed three-member lifecycle state an
// InstructionEnvelope occupies: CREATED -> SEALED (terminal) or CREATED ->
// REJECTED (terminal).
type EnvelopeStatus string

const (
	EnvelopeCreated  EnvelopeStatus = "CREATED"
	EnvelopeSealed   EnvelopeStatus = "SEALED"
	EnvelopeRejected EnvelopeStatus = "REJECTED"
)

// InstructionEnvelope is the sealed bundle an executor ultimately
// receives.
type InstructionEnvelope struct {
	IntentID      string
	ReadinessHash string
	Instructions  []ExecutionInstruction
	Status        EnvelopeStatus
	EnvelopeHash  string
}
