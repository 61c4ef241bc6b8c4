package instructions

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"veristack/core/orchestration"
)

// SynthesizeInstructions derives an ordered instruction sequence from
// intent's sealed plan. Returns empty if intent is nil or not SEALED.
// Step order is preserved exactly; any step whose action_type has no
// InstructionType mapping (notably UPLOAD) is silently dropped (spec
// §4.7) — the caller must not assume len(result) == len(plan.Steps).
func SynthesizeInstructions(intent *orchestration.OrchestrationIntent) []ExecutionInstruction {
	if intent == nil || intent.State != orchestration.StateSealed {
		return nil
	}

	out := make([]ExecutionInstruction, 0, len(intent.ExecutionPlan.Steps))
	index := 0
	for _, step := range intent.ExecutionPlan.Steps {
		instructionType, ok := actionToInstruction[step.ActionType]
		if !ok {
			continue
		}
		out = append(out, ExecutionInstruction{
			InstructionID:    fmt.Sprintf("INSTR-%s-%03d", intent.IntentID, index),
			PlanStepID:       step.StepID,
			InstructionType:  instructionType,
			Parameters:       step.Parameters,
			EvidenceRequired: intent.EvidenceRequirements,
		})
		index++
	}
	return out
}

// CreateInstructionEnvelope bundles intent and its synthesized
// instructions into a CREATED envelope with an empty envelope_hash,
// awaiting seal.
func CreateInstructionEnvelope(intent *orchestration.OrchestrationIntent, instrs []ExecutionInstruction, readinessHash string) InstructionEnvelope {
	env := InstructionEnvelope{
		ReadinessHash: readinessHash,
		Instructions:  instrs,
		Status:        EnvelopeCreated,
		EnvelopeHash:  "",
	}
	if intent != nil {
		env.IntentID = intent.IntentID
	}
	return env
}

// SealInstructionEnvelope advances a CREATED envelope to SEALED, computing
// its envelope_hash. SEALED and REJECTED envelopes pass through
// unchanged.
func SealInstructionEnvelope(envelope InstructionEnvelope) InstructionEnvelope {
	if envelope.Status != EnvelopeCreated {
		return envelope
	}

	parts := []string{envelope.IntentID, envelope.ReadinessHash, fmt.Sprintf("%d", len(envelope.Instructions))}
	for _, instr := range envelope.Instructions {
		parts = append(parts, instr.InstructionID, instr.PlanStepID)
	}

	digest := sha256.Sum256([]byte(strings.Join(parts, ":")))
	envelope.Status = EnvelopeSealed
	envelope.EnvelopeHash = hex.EncodeToString(digest[:])
	return envelope
}

// ValidateInstructionEnvelope reports whether envelope is SEALED,
// references intent, and carries exactly as many instructions as the
// intent's plan has steps. Note: this rejects envelopes synthesized from
// a plan containing any dropped (e.g. UPLOAD) step, by design — a
// shortfall between instruction count and plan step count is exactly
// what distinguishes an envelope worth re-validating from one that
// silently lost a step.
func ValidateInstructionEnvelope(envelope InstructionEnvelope, intent *orchestration.OrchestrationIntent) bool {
	if envelope.Status != EnvelopeSealed {
		return false
	}
	if intent == nil {
		return false
	}
	if envelope.IntentID != intent.IntentID {
		return false
	}
	return len(envelope.Instructions) == len(intent.ExecutionPlan.Steps)
}
